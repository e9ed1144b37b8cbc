package process

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type processRepo interface {
	List(ctx context.Context, caller uuid.UUID, scope domain.ProcessScope) ([]domain.Process, error)
	Get(ctx context.Context, caller uuid.UUID, id int64) (domain.Process, error)
	Create(ctx context.Context, p domain.Process) (domain.Process, error)
	Update(ctx context.Context, caller uuid.UUID, id int64, patch domain.ProcessPatch) (domain.Process, error)
	Delete(ctx context.Context, caller uuid.UUID, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type uploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, files []domain.Upload) ([]domain.FileRef, error)
	Remove(ctx context.Context, refs []domain.FileRef)
}

type fileNotifier interface {
	NotifyFiles(ctx context.Context, processID int64, files []domain.Upload) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the process repository operations seen by callers:
// scoped listing with filters, access-checked reads and writes, and creation
// with document upload.
type Service struct {
	log       *slog.Logger
	processes processRepo
	tx        txManager
	storage   uploader
	notifier  fileNotifier
}

// NewService creates a new process service.
func NewService(
	logger *slog.Logger,
	processes processRepo,
	tx txManager,
	storage uploader,
	notifier fileNotifier,
) *Service {
	return &Service{
		log:       logger.With("service", "process"),
		processes: processes,
		tx:        tx,
		storage:   storage,
		notifier:  notifier,
	}
}
