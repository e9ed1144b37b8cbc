// Package storage uploads process documents to an S3-compatible bucket.
//
// Small files go up in a single request. Files above the resumable threshold
// are sent as a multipart upload in ChunkSize parts. Every attempt is retried
// on a fixed delay schedule; the first delay is normally zero.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/azulpack/juridico-backend/internal/config"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// objectStore is the subset of *minio.Client used here.
type objectStore interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

// Store uploads documents into one bucket.
type Store struct {
	client    objectStore
	bucket    string
	baseURL   string
	threshold int64
	chunkSize int64
	delays    []time.Duration
	log       *slog.Logger

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

// New connects to the configured endpoint and makes sure the bucket exists.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("storage: create bucket %q: %w", cfg.Bucket, err)
		}
		logger.Info("storage bucket created", slog.String("bucket", cfg.Bucket))
	}

	return newStore(client, cfg, logger), nil
}

func newStore(client objectStore, cfg config.StorageConfig, logger *slog.Logger) *Store {
	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}

	delays := cfg.RetryDelays
	if len(delays) == 0 {
		delays = []time.Duration{0}
	}

	return &Store{
		client:    client,
		bucket:    cfg.Bucket,
		baseURL:   strings.TrimRight(base, "/"),
		threshold: cfg.ResumableThreshold,
		chunkSize: cfg.ChunkSize,
		delays:    delays,
		log:       logger.With("adapter", "storage"),
		now:       time.Now,
		wait:      sleep,
	}
}

// Upload stores files in order under the owner's prefix and returns their
// references. The first file that fails every attempt aborts the batch with
// *domain.UploadFailedError; files already stored are removed.
func (s *Store) Upload(ctx context.Context, ownerID uuid.UUID, files []domain.Upload) ([]domain.FileRef, error) {
	refs := make([]domain.FileRef, 0, len(files))
	stored := make([]string, 0, len(files))

	for _, f := range files {
		object, err := s.objectName(ownerID, f.Name)
		if err != nil {
			return nil, fmt.Errorf("storage.Upload: %w", err)
		}

		if err := s.putWithRetry(ctx, object, f); err != nil {
			s.cleanup(ctx, stored)
			return nil, &domain.UploadFailedError{FileName: f.Name, Err: err}
		}

		stored = append(stored, object)
		refs = append(refs, domain.FileRef{Name: f.Name, URL: s.URL(object), Size: f.Size})
	}

	return refs, nil
}

// URL returns the public address of an object.
func (s *Store) URL(object string) string {
	return s.baseURL + "/" + s.bucket + "/" + object
}

func (s *Store) putWithRetry(ctx context.Context, object string, f domain.Upload) error {
	var lastErr error
	for attempt, delay := range s.delays {
		if err := s.wait(ctx, delay); err != nil {
			return err
		}

		lastErr = s.put(ctx, object, f)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}

		s.log.WarnContext(ctx, "upload attempt failed",
			slog.String("object", object),
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()),
		)
	}
	return lastErr
}

func (s *Store) put(ctx context.Context, object string, f domain.Upload) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %q: %w", f.Name, err)
	}
	defer rc.Close()

	opts := minio.PutObjectOptions{ContentType: f.ContentType}
	if f.Size > s.threshold {
		opts.PartSize = uint64(s.chunkSize)
	} else {
		opts.DisableMultipart = true
	}

	if _, err := s.client.PutObject(ctx, s.bucket, object, rc, f.Size, opts); err != nil {
		return fmt.Errorf("put %s: %w", object, err)
	}
	return nil
}

// Remove deletes previously uploaded documents, for a submission that failed
// after Upload returned. Refs outside this bucket are ignored. Failures are
// logged; the objects are orphaned at worst.
func (s *Store) Remove(ctx context.Context, refs []domain.FileRef) {
	prefix := s.URL("")
	objects := make([]string, 0, len(refs))
	for _, ref := range refs {
		object, ok := strings.CutPrefix(ref.URL, prefix)
		if !ok || object == "" {
			s.log.WarnContext(ctx, "remove: foreign file url", slog.String("url", ref.URL))
			continue
		}
		objects = append(objects, object)
	}
	s.cleanup(ctx, objects)
}

func (s *Store) cleanup(ctx context.Context, objects []string) {
	if len(objects) == 0 {
		return
	}
	// The request context may already be done; removal uses its own budget.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	for _, object := range objects {
		if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
			s.log.WarnContext(ctx, "remove orphaned object", slog.String("object", object), slog.String("error", err.Error()))
		}
	}
}

// objectName builds "<owner>/<unix-ms>_<random>.<ext>".
func (s *Store) objectName(ownerID uuid.UUID, fileName string) (string, error) {
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("random object suffix: %w", err)
	}

	name := ownerID.String() + "/" + strconv.FormatInt(s.now().UnixMilli(), 10) + "_" + hex.EncodeToString(buf[:])
	if ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), ".")); ext != "" {
		name += "." + ext
	}
	return name, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
