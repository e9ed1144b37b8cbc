// Package directory resolves user ids and emails for clients.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

const maxLookup = 200

type userDirectory interface {
	EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error)
	IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error)
}

// Service implements the id/email directory.
type Service struct {
	users userDirectory
}

// NewService creates a new directory service.
func NewService(users userDirectory) *Service {
	return &Service{users: users}
}

// EmailsByIDs maps user ids to emails. Admin only. Unknown ids are omitted.
func (s *Service) EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if len(ids) > maxLookup {
		return nil, domain.NewValidationError("userIds", fmt.Sprintf("at most %d ids", maxLookup))
	}

	found, err := s.users.EmailsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("directory.EmailsByIDs: %w", err)
	}
	return found, nil
}

// IDsByEmails maps emails to user ids for any signed-in user. Matching
// ignores case and surrounding spaces; unknown emails are omitted.
func (s *Service) IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(emails) > maxLookup {
		return nil, domain.NewValidationError("userEmails", fmt.Sprintf("at most %d emails", maxLookup))
	}

	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = strings.TrimSpace(e); e != "" {
			normalized = append(normalized, domain.NormalizeEmail(e))
		}
	}
	if len(normalized) == 0 {
		return []domain.UserEmail{}, nil
	}

	found, err := s.users.IDsByEmails(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("directory.IDsByEmails: %w", err)
	}
	return found, nil
}
