// Package activity reads the append-only activity log written by the
// log_user_activity trigger. The application never inserts into it directly.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/domain"
)

var columns = []string{"id", "user_id", "action", "entity_type", "entity_id", "details", "created_at"}

// Repo provides activity log reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListRecent returns at most limit records, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	return r.list(ctx, nil, limit)
}

// ListByEntity returns at most limit records about one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.ActivityRecord, error) {
	return r.list(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit)
}

func (r *Repo) list(ctx context.Context, pred sq.Sqlizer, limit int) ([]domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = domain.DefaultActivityLimit
	}

	q := postgres.Builder.
		Select(columns...).
		From("user_activity_history").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	if pred != nil {
		q = q.Where(pred)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list user_activity_history: %w", err)
	}

	out := make([]domain.ActivityRecord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     *uuid.UUID `db:"user_id"`
	Action     string     `db:"action"`
	EntityType *string    `db:"entity_type"`
	EntityID   *string    `db:"entity_id"`
	Details    []byte     `db:"details"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.ActivityRecord {
	rec := domain.ActivityRecord{
		ID:        r.ID,
		Action:    domain.ActivityAction(r.Action),
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
	if r.EntityType != nil {
		rec.EntityType = domain.EntityType(*r.EntityType)
	}
	if r.EntityID != nil {
		rec.EntityID = *r.EntityID
	}
	if len(r.Details) > 0 {
		rec.Details = json.RawMessage(r.Details)
	}
	return rec
}
