// Package share implements the sharing registry using PostgreSQL.
package share

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/domain"
)

const (
	table  = "processo_compartilhamentos"
	entity = "compartilhamento"

	// PairConstraint enforces one grant per (process, recipient).
	PairConstraint = "uq_processo_compartilhamentos_pair"
)

var columns = []string{"id", "processo_id", "shared_by_user_id", "shared_with_user_id", "created_at"}

// Repo provides share grant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new share repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a grant. A second grant for the same (process, recipient)
// pair fails with domain.ErrAlreadyShared, detected from the unique constraint.
func (r *Repo) Create(ctx context.Context, processID int64, sharedBy, sharedWith uuid.UUID) (domain.ShareGrant, error) {
	sqlStr, args, err := postgres.Builder.Insert(table).
		Columns("processo_id", "shared_by_user_id", "shared_with_user_id").
		Values(processID, sharedBy, sharedWith).
		Suffix("RETURNING id, processo_id, shared_by_user_id, shared_with_user_id, created_at").
		ToSql()
	if err != nil {
		return domain.ShareGrant{}, fmt.Errorf("build insert compartilhamento: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		if postgres.IsUniqueViolation(err, PairConstraint) {
			return domain.ShareGrant{}, fmt.Errorf("%s %d: %w", entity, processID, domain.ErrAlreadyShared)
		}
		return domain.ShareGrant{}, postgres.MapError(err, entity, processID)
	}
	return rw.toDomain(), nil
}

// Delete removes a grant. Deleting a grant that no longer exists succeeds.
// The process owner, the granting user, the recipient and admins may delete;
// anyone else gets domain.ErrForbidden.
func (r *Repo) Delete(ctx context.Context, caller, grantID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": grantID}).
		Where(sq.Expr(`(shared_by_user_id = ? OR shared_with_user_id = ? OR is_admin(?)
			OR EXISTS (SELECT 1 FROM processos p WHERE p.id = processo_id AND p.user_id = ?))`,
			caller, caller, caller, caller)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete compartilhamento: %w", err)
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, entity, grantID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM processo_compartilhamentos WHERE id = $1)`, grantID).Scan(&exists); err != nil {
		return postgres.MapError(err, entity, grantID)
	}
	if exists {
		return fmt.Errorf("%s %s: %w", entity, grantID, domain.ErrForbidden)
	}
	return nil
}

// ListByProcess returns the grants on a process, oldest first.
func (r *Repo) ListByProcess(ctx context.Context, processID int64) ([]domain.ShareGrant, error) {
	sqlStr, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"processo_id": processID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list compartilhamentos: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list compartilhamentos: %w", err)
	}

	out := make([]domain.ShareGrant, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

type row struct {
	ID               uuid.UUID `db:"id"`
	ProcessoID       int64     `db:"processo_id"`
	SharedByUserID   uuid.UUID `db:"shared_by_user_id"`
	SharedWithUserID uuid.UUID `db:"shared_with_user_id"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r row) toDomain() domain.ShareGrant {
	return domain.ShareGrant{
		ID:         r.ID,
		ProcessID:  r.ProcessoID,
		SharedBy:   r.SharedByUserID,
		SharedWith: r.SharedWithUserID,
		CreatedAt:  r.CreatedAt,
	}
}
