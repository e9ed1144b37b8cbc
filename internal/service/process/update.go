package process

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// Update applies a partial update. Owners, admins and share recipients may
// edit; concurrent edits resolve as last write wins.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (domain.Process, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Process{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Process{}, err
	}

	var updated domain.Process
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.processes.Update(ctx, caller, id, input.patch())
		return err
	})
	if err != nil {
		return domain.Process{}, fmt.Errorf("process.Update: %w", err)
	}

	return updated, nil
}

// Delete removes a process. Only the owner or an admin may delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.processes.Delete(ctx, caller, id)
	})
	if err != nil {
		return fmt.Errorf("process.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "process deleted", slog.Int64("process_id", id))
	return nil
}
