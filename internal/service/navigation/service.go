// Package navigation persists the last route a user visited so clients can
// resume where they left off.
package navigation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
	"github.com/azulpack/juridico-backend/pkg/navstate"
)

type pathStore interface {
	SaveLastPath(ctx context.Context, userID uuid.UUID, path string) error
	LastPath(ctx context.Context, userID uuid.UUID) (string, bool, error)
	ClearLastPath(ctx context.Context, userID uuid.UUID) error
}

// Service implements last-visited route persistence.
type Service struct {
	log   *slog.Logger
	paths pathStore
}

// NewService creates a new navigation service.
func NewService(logger *slog.Logger, paths pathStore) *Service {
	return &Service{
		log:   logger.With("service", "navigation"),
		paths: paths,
	}
}

// SaveLastPath records path as the caller's last visited route.
func (s *Service) SaveLastPath(ctx context.Context, path string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !navstate.ValidPath(path) {
		return domain.NewValidationError("path", "must be an absolute in-app path")
	}

	if err := s.paths.SaveLastPath(ctx, userID, path); err != nil {
		return fmt.Errorf("navigation.SaveLastPath: %w", err)
	}
	return nil
}

// Restore returns the route the caller should be sent to after landing on
// landing. A store failure is logged and treated as nothing saved.
func (s *Service) Restore(ctx context.Context, landing string) (string, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", false, domain.ErrUnauthorized
	}

	saved, found, err := s.paths.LastPath(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "load last path", slog.String("error", err.Error()))
		return "", false, nil
	}
	if !found {
		return "", false, nil
	}

	path, restore := navstate.Restore(landing, saved)
	return path, restore, nil
}

// Clear forgets the caller's last visited route.
func (s *Service) Clear(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.paths.ClearLastPath(ctx, userID); err != nil {
		return fmt.Errorf("navigation.Clear: %w", err)
	}
	return nil
}
