package process

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// Create uploads the documents in order, stores the process with their URLs
// and then hands the documents to the workflow. A failed upload aborts before
// anything is stored, a failed insert removes the uploaded documents again,
// and a failed hand-off is only logged.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Process, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Process{}, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	input.CaseNumber = strings.TrimSpace(input.CaseNumber)
	if err := input.Validate(); err != nil {
		return domain.Process{}, err
	}

	refs, err := s.storage.Upload(ctx, caller, input.Files)
	if err != nil {
		return domain.Process{}, fmt.Errorf("process.Create: %w", err)
	}

	var created domain.Process
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.processes.Create(ctx, domain.Process{
			OwnerID:     caller,
			Title:       input.Title,
			CaseNumber:  input.CaseNumber,
			Description: input.Description,
			Status:      input.Status,
			Companies:   input.Companies,
			Labels:      input.Labels,
			FileURLs:    domain.FileURLs(refs),
		})
		return err
	})
	if err != nil {
		s.storage.Remove(ctx, refs)
		return domain.Process{}, fmt.Errorf("process.Create: %w", err)
	}

	s.log.InfoContext(ctx, "process created",
		slog.Int64("process_id", created.ID),
		slog.Int("files", len(refs)))

	// The hand-off must not be cut short by a client that disconnects right
	// after the process is stored.
	if err := s.notifier.NotifyFiles(context.WithoutCancel(ctx), created.ID, input.Files); err != nil {
		s.log.WarnContext(ctx, "workflow file notification failed",
			slog.Int64("process_id", created.ID),
			slog.String("error", err.Error()))
	}

	return created, nil
}
