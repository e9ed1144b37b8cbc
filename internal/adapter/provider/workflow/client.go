// Package workflow calls the AI automation webhooks: text generation for a
// process and the document hand-off after a process is created.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/azulpack/juridico-backend/internal/config"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// maxDetail caps how much of an error body is kept in GenerationFailedError.
const maxDetail = 512

// Client talks to the workflow webhooks.
type Client struct {
	generateURL string
	fileURL     string
	generate    *http.Client
	files       *http.Client
	log         *slog.Logger
}

// New creates a Client from the webhook configuration.
func New(cfg config.WebhookConfig, logger *slog.Logger) *Client {
	return &Client{
		generateURL: cfg.GenerateURL,
		fileURL:     cfg.FileURL,
		generate:    &http.Client{Timeout: cfg.GenerateTimeout},
		files:       &http.Client{Timeout: cfg.FileTimeout},
		log:         logger.With("adapter", "workflow"),
	}
}

type generateRequest struct {
	ProcessID int64  `json:"process_id"`
	Action    string `json:"action"`
}

// Generate asks the workflow to produce text for a process. The response body
// is returned verbatim. Any transport error or non-2xx status yields
// *domain.GenerationFailedError; nothing is retried.
func (c *Client) Generate(ctx context.Context, processID int64, action domain.GenerationAction) (string, error) {
	payload, err := json.Marshal(generateRequest{ProcessID: processID, Action: action.WireValue()})
	if err != nil {
		return "", fmt.Errorf("workflow: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.generateURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("workflow: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "workflow generate", slog.Int64("process_id", processID), slog.String("action", string(action)))

	resp, err := c.generate.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "workflow generate failed",
			slog.Int64("process_id", processID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
		)
		return "", &domain.GenerationFailedError{Action: action, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.GenerationFailedError{Action: action, Status: resp.StatusCode, Detail: "read body: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "workflow generate rejected",
			slog.Int64("process_id", processID),
			slog.String("action", string(action)),
			slog.Int("status", resp.StatusCode),
		)
		return "", &domain.GenerationFailedError{Action: action, Status: resp.StatusCode, Detail: truncate(string(body))}
	}

	return string(body), nil
}

// NotifyFiles posts the process id and every document as one multipart form.
// The body is streamed, so files are read once more from Upload.Open.
func (c *Client) NotifyFiles(ctx context.Context, processID int64, files []domain.Upload) error {
	pr, pw := io.Pipe()
	// Unblocks writeForm if the transport stops reading the body early.
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, processID, files))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.fileURL, pr)
	if err != nil {
		return fmt.Errorf("workflow: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.files.Do(req)
	if err != nil {
		pr.CloseWithError(err)
		return fmt.Errorf("workflow: notify files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetail))
		return fmt.Errorf("workflow: notify files: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.log.InfoContext(ctx, "workflow files delivered", slog.Int64("process_id", processID), slog.Int("files", len(files)))
	return nil
}

func writeForm(mw *multipart.Writer, processID int64, files []domain.Upload) error {
	if err := mw.WriteField("process_id", strconv.FormatInt(processID, 10)); err != nil {
		return err
	}

	for _, f := range files {
		part, err := mw.CreateFormFile("file", f.Name)
		if err != nil {
			return err
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %q: %w", f.Name, err)
		}
		_, err = io.Copy(part, rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("copy %q: %w", f.Name, err)
		}
	}

	return mw.Close()
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxDetail {
		return s[:maxDetail]
	}
	return s
}
