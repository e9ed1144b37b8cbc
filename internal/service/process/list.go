package process

import (
	"context"
	"fmt"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// List returns the processes in scope, newest first, narrowed by the filter.
// Listing another user's processes requires the admin role.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Process, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Scope == "" {
		input.Scope = domain.ScopeMine
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Scope == domain.ScopeUser && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	processes, err := s.processes.List(ctx, caller, domain.ProcessScope{Kind: input.Scope, UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("process.List: %w", err)
	}

	return input.Filter.Apply(processes), nil
}

// Get returns a process the caller owns, administers, or received.
func (s *Service) Get(ctx context.Context, id int64) (domain.Process, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Process{}, domain.ErrUnauthorized
	}

	p, err := s.processes.Get(ctx, caller, id)
	if err != nil {
		return domain.Process{}, fmt.Errorf("process.Get: %w", err)
	}
	return p, nil
}
