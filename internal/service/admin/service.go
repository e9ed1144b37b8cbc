// Package admin implements the admin console: account provisioning and
// removal, the user listing and the overview dashboard.
package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

type userRepo interface {
	List(ctx context.Context) ([]domain.UserSummary, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, name string) (domain.Profile, error)
	SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type sessionRevoker interface {
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type activityLister interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

type processLister interface {
	List(ctx context.Context, caller uuid.UUID, scope domain.ProcessScope) ([]domain.Process, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin-only account operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	hasher      passwordHasher
	sessions    sessionRevoker
	activity    activityLister
	processes   processLister
	tx          txManager
	minPassword int
}

// NewService creates a new admin service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	sessions sessionRevoker,
	activity activityLister,
	processes processLister,
	tx txManager,
	minPasswordLength int,
) *Service {
	return &Service{
		log:         logger.With("service", "admin"),
		users:       users,
		hasher:      hasher,
		sessions:    sessions,
		activity:    activity,
		processes:   processes,
		tx:          tx,
		minPassword: minPasswordLength,
	}
}
