// Package activity lists the audit trail written by the database trigger,
// enriched with process names and user display names for the admin console.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/config"
	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

type activityRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.ActivityRecord, error)
}

type processLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Process, error)
}

type profileLookup interface {
	ProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

type emailLookup interface {
	EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error)
}

// Service implements the activity log listing.
type Service struct {
	log       *slog.Logger
	records   activityRepo
	processes processLookup
	profiles  profileLookup
	emails    emailLookup
	cfg       config.ActivityConfig
}

// NewService creates a new activity service.
func NewService(
	logger *slog.Logger,
	records activityRepo,
	processes processLookup,
	profiles profileLookup,
	emails emailLookup,
	cfg config.ActivityConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "activity"),
		records:   records,
		processes: processes,
		profiles:  profiles,
		emails:    emails,
		cfg:       cfg,
	}
}

// ListRecent returns the newest entries, admin only. Enrichment is best
// effort: a failed lookup leaves placeholders instead of failing the listing.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	records, err := s.records.ListRecent(ctx, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("activity.ListRecent: %w", err)
	}

	return s.enrich(ctx, records), nil
}

// ListForProcess returns the history of a single process, admin only.
func (s *Service) ListForProcess(ctx context.Context, processID int64, limit int) ([]domain.ActivityEntry, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if processID <= 0 {
		return nil, domain.NewValidationError("process_id", "must be positive")
	}

	records, err := s.records.ListByEntity(ctx, domain.EntityTypeProcess, strconv.FormatInt(processID, 10), s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("activity.ListForProcess: %w", err)
	}

	return s.enrich(ctx, records), nil
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		if s.cfg.DefaultLimit > 0 {
			return s.cfg.DefaultLimit
		}
		return domain.DefaultActivityLimit
	case s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	default:
		return limit
	}
}

func (s *Service) enrich(ctx context.Context, records []domain.ActivityRecord) []domain.ActivityEntry {
	l := newLoaders(s.processes, s.profiles, s.emails)

	// Processes first: a record without an actor falls back to the owner.
	processThunks := make([]func() (*domain.Process, error), len(records))
	for i := range records {
		if id, ok := records[i].ProcessID(); ok {
			processThunks[i] = l.processByID.Load(ctx, id)
		}
	}

	entries := make([]domain.ActivityEntry, len(records))
	for i, rec := range records {
		entries[i] = domain.ActivityEntry{
			Record:      rec,
			Label:       domain.ActivityLabel(rec.Action, rec.EntityType, domain.ParseActivityDetails(rec.EntityType, rec.Details)),
			ProcessName: "-",
			ActorID:     rec.UserID,
		}

		if processThunks[i] == nil {
			continue
		}
		p, err := processThunks[i]()
		if err != nil {
			s.log.WarnContext(ctx, "activity process lookup failed", slog.String("error", err.Error()))
			continue
		}
		if p == nil {
			continue
		}
		entries[i].ProcessName = p.DisplayName()
		if entries[i].ActorID == nil {
			owner := p.OwnerID
			entries[i].ActorID = &owner
		}
	}

	type userThunks struct {
		profile func() (*domain.Profile, error)
		email   func() (string, error)
	}
	// Emails come from the privileged directory and are resolved for admins only.
	withEmail := ctxutil.IsAdminCtx(ctx)
	users := make([]userThunks, len(entries))
	for i := range entries {
		id := entries[i].ActorID
		if id == nil {
			continue
		}
		users[i].profile = l.profileByUser.Load(ctx, *id)
		if withEmail {
			users[i].email = l.emailByUser.Load(ctx, *id)
		}
	}

	for i := range entries {
		if entries[i].ActorID == nil {
			entries[i].UserDisplay = domain.UserDisplay(nil, "", "")
			continue
		}

		var name, email string
		if prof, err := users[i].profile(); err != nil {
			s.log.WarnContext(ctx, "activity profile lookup failed", slog.String("error", err.Error()))
		} else if prof != nil {
			name = prof.Name
		}
		if users[i].email != nil {
			if e, err := users[i].email(); err != nil {
				s.log.WarnContext(ctx, "activity email lookup failed", slog.String("error", err.Error()))
			} else {
				email = e
			}
		}

		entries[i].UserDisplay = domain.UserDisplay(entries[i].ActorID, name, email)
	}

	return entries
}
