// Package sharing grants other users access to a process.
package sharing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

type shareRepo interface {
	Create(ctx context.Context, processID int64, sharedBy, sharedWith uuid.UUID) (domain.ShareGrant, error)
	Delete(ctx context.Context, caller, grantID uuid.UUID) error
	ListByProcess(ctx context.Context, processID int64) ([]domain.ShareGrant, error)
}

type processReader interface {
	Get(ctx context.Context, caller uuid.UUID, id int64) (domain.Process, error)
}

type directory interface {
	IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error)
	EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the sharing registry.
type Service struct {
	log       *slog.Logger
	shares    shareRepo
	processes processReader
	users     directory
	tx        txManager
}

// NewService creates a new sharing service.
func NewService(logger *slog.Logger, shares shareRepo, processes processReader, users directory, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "sharing"),
		shares:    shares,
		processes: processes,
		users:     users,
		tx:        tx,
	}
}

// Share grants the user registered under email access to the process.
//
// Errors: ErrValidation for a blank email, ErrNotFound when the caller cannot
// see the process, ErrRecipientNotFound for any email without an account
// (malformed ones included), ErrSelfShareForbidden when the
// recipient owns the process, ErrAlreadyShared for a repeated grant.
func (s *Service) Share(ctx context.Context, processID int64, email string) (domain.ShareRecipient, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ShareRecipient{}, domain.ErrUnauthorized
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ShareRecipient{}, domain.NewValidationError("email", "required")
	}

	p, err := s.processes.Get(ctx, caller, processID)
	if err != nil {
		return domain.ShareRecipient{}, fmt.Errorf("sharing.Share: %w", err)
	}

	found, err := s.users.IDsByEmails(ctx, []string{email})
	if err != nil {
		return domain.ShareRecipient{}, fmt.Errorf("sharing.Share lookup: %w", err)
	}
	if len(found) == 0 {
		return domain.ShareRecipient{}, domain.ErrRecipientNotFound
	}
	recipient := found[0]

	if p.IsOwnedBy(recipient.UserID) {
		return domain.ShareRecipient{}, domain.ErrSelfShareForbidden
	}

	var grant domain.ShareGrant
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		grant, err = s.shares.Create(ctx, processID, caller, recipient.UserID)
		return err
	})
	if err != nil {
		return domain.ShareRecipient{}, fmt.Errorf("sharing.Share: %w", err)
	}

	s.log.InfoContext(ctx, "process shared",
		slog.Int64("process_id", processID),
		slog.String("recipient_id", recipient.UserID.String()))

	return domain.ShareRecipient{Grant: grant, Email: recipient.Email}, nil
}

// Unshare revokes a grant. Revoking a grant that no longer exists succeeds.
func (s *Service) Unshare(ctx context.Context, grantID uuid.UUID) error {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.shares.Delete(ctx, caller, grantID)
	})
	if err != nil {
		return fmt.Errorf("sharing.Unshare: %w", err)
	}
	return nil
}

// ListShares returns the recipients of a process with their emails. A
// recipient whose email cannot be resolved carries domain.EmailNotFound.
func (s *Service) ListShares(ctx context.Context, processID int64) ([]domain.ShareRecipient, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.processes.Get(ctx, caller, processID); err != nil {
		return nil, fmt.Errorf("sharing.ListShares: %w", err)
	}

	grants, err := s.shares.ListByProcess(ctx, processID)
	if err != nil {
		return nil, fmt.Errorf("sharing.ListShares: %w", err)
	}
	if len(grants) == 0 {
		return []domain.ShareRecipient{}, nil
	}

	ids := make([]uuid.UUID, len(grants))
	for i, g := range grants {
		ids[i] = g.SharedWith
	}

	emails := make(map[uuid.UUID]string, len(ids))
	found, err := s.users.EmailsByIDs(ctx, ids)
	if err != nil {
		s.log.WarnContext(ctx, "share recipient emails unavailable",
			slog.Int64("process_id", processID),
			slog.String("error", err.Error()))
	}
	for _, ue := range found {
		emails[ue.UserID] = ue.Email
	}

	out := make([]domain.ShareRecipient, len(grants))
	for i, g := range grants {
		email, ok := emails[g.SharedWith]
		if !ok {
			email = domain.EmailNotFound
		}
		out[i] = domain.ShareRecipient{Grant: g, Email: email}
	}
	return out, nil
}
