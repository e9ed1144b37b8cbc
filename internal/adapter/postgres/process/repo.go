// Package process implements the process repository using PostgreSQL.
// Every read and write is filtered by the access predicate: the caller owns
// the process, holds the admin role, or has received a share grant.
package process

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/domain"
)

const (
	table  = "processos"
	entity = "processo"
)

var columns = []string{
	"id", "user_id", "titulo", "numero_processo", "descricao", "status",
	"empresas_envolvidas", "etiquetas", "resumo", "defesa", "analise_defesa", "arquivos_url",
	"created_at", "updated_at",
}

// Repo provides process persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new process repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// accessible restricts rows to those the caller may see.
func accessible(caller uuid.UUID) sq.Sqlizer {
	return sq.Expr("(user_id = ? OR is_admin(?) OR processo_compartilhado_com_usuario(id, ?))", caller, caller, caller)
}

// deletable restricts rows to those the caller may delete.
func deletable(caller uuid.UUID) sq.Sqlizer {
	return sq.Expr("(user_id = ? OR is_admin(?))", caller, caller)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the processes in scope, newest first.
func (r *Repo) List(ctx context.Context, caller uuid.UUID, scope domain.ProcessScope) ([]domain.Process, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC", "id DESC")

	switch scope.Kind {
	case domain.ScopeMine:
		q = q.Where(sq.Eq{"user_id": caller})
	case domain.ScopeUser:
		q = q.Where(sq.Eq{"user_id": scope.UserID}).Where(accessible(caller))
	case domain.ScopeShared:
		q = q.Where(sq.Expr("processo_compartilhado_com_usuario(id, ?)", caller))
	default:
		return nil, fmt.Errorf("list processos: unknown scope %q", scope.Kind)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list processos: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list processos: %w", err)
	}

	return toDomainList(rows), nil
}

// Get returns a process the caller may access. Inaccessible and missing
// processes are both reported as domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, caller uuid.UUID, id int64) (domain.Process, error) {
	sqlStr, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).
		Where(accessible(caller)).
		ToSql()
	if err != nil {
		return domain.Process{}, fmt.Errorf("build get processo: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return domain.Process{}, postgres.MapError(err, entity, id)
	}

	return rw.toDomain(), nil
}

// GetByIDs returns the processes with the given ids regardless of ownership.
// Missing ids are absent from the result. It serves the admin activity view.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Process, error) {
	if len(ids) == 0 {
		return []domain.Process{}, nil
	}

	sqlStr, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get processos by ids: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("get processos by ids: %w", err)
	}

	return toDomainList(rows), nil
}

// LockForUpdate takes a row lock on an accessible process for the rest of the
// current transaction.
func (r *Repo) LockForUpdate(ctx context.Context, caller uuid.UUID, id int64) error {
	sqlStr, args, err := postgres.Builder.Select("id").From(table).
		Where(sq.Eq{"id": id}).
		Where(accessible(caller)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock processo: %w", err)
	}

	var locked int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a process and returns it as stored.
func (r *Repo) Create(ctx context.Context, p domain.Process) (domain.Process, error) {
	status := p.Status
	if status == "" {
		status = domain.ProcessStatusInProgress
	}

	sqlStr, args, err := postgres.Builder.Insert(table).
		Columns("user_id", "titulo", "numero_processo", "descricao", "status",
			"empresas_envolvidas", "etiquetas", "resumo", "defesa", "arquivos_url").
		Values(p.OwnerID, nullString(p.Title), nullString(p.CaseNumber), nullString(p.Description), string(status),
			nonNil(p.Companies), nonNil(p.Labels), nullString(p.Summary), nullString(p.Defense), nonNil(p.FileURLs)).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return domain.Process{}, fmt.Errorf("build insert processo: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return domain.Process{}, postgres.MapError(err, entity, "new")
	}

	return rw.toDomain(), nil
}

// Update applies a partial update to an accessible process. Last write wins.
func (r *Repo) Update(ctx context.Context, caller uuid.UUID, id int64, patch domain.ProcessPatch) (domain.Process, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, caller, id)
	}

	q := postgres.Builder.Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(accessible(caller)).
		Suffix("RETURNING " + columnList())

	if patch.Title != nil {
		q = q.Set("titulo", nullString(*patch.Title))
	}
	if patch.CaseNumber != nil {
		q = q.Set("numero_processo", nullString(*patch.CaseNumber))
	}
	if patch.Description != nil {
		q = q.Set("descricao", nullString(*patch.Description))
	}
	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}
	if patch.Companies != nil {
		q = q.Set("empresas_envolvidas", patch.Companies)
	}
	if patch.Labels != nil {
		q = q.Set("etiquetas", patch.Labels)
	}
	if patch.Summary != nil {
		q = q.Set("resumo", nullString(*patch.Summary))
	}
	if patch.Defense != nil {
		q = q.Set("defesa", nullString(*patch.Defense))
	}
	if patch.Analysis != nil {
		q = q.Set("analise_defesa", nullString(*patch.Analysis))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return domain.Process{}, fmt.Errorf("build update processo: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sqlStr, args...); err != nil {
		return domain.Process{}, postgres.MapError(err, entity, id)
	}

	return rw.toDomain(), nil
}

// Delete removes a process owned by the caller, or any process for admins.
// Shares and history rows cascade. A process the caller can see but not
// delete yields domain.ErrForbidden.
func (r *Repo) Delete(ctx context.Context, caller uuid.UUID, id int64) error {
	sqlStr, args, err := postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id}).
		Where(deletable(caller)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete processo: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.Get(ctx, caller, id); err != nil {
		return err
	}
	return fmt.Errorf("%s %d: %w", entity, id, domain.ErrForbidden)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type row struct {
	ID                 int64     `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	Titulo             *string   `db:"titulo"`
	NumeroProcesso     *string   `db:"numero_processo"`
	Descricao          *string   `db:"descricao"`
	Status             string    `db:"status"`
	EmpresasEnvolvidas []string  `db:"empresas_envolvidas"`
	Etiquetas          []string  `db:"etiquetas"`
	Resumo             *string   `db:"resumo"`
	Defesa             *string   `db:"defesa"`
	AnaliseDefesa      *string   `db:"analise_defesa"`
	ArquivosURL        []string  `db:"arquivos_url"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Process {
	return domain.Process{
		ID:          r.ID,
		OwnerID:     r.UserID,
		Title:       deref(r.Titulo),
		CaseNumber:  deref(r.NumeroProcesso),
		Description: deref(r.Descricao),
		Status:      domain.ProcessStatus(r.Status),
		Companies:   nonNil(r.EmpresasEnvolvidas),
		Labels:      nonNil(r.Etiquetas),
		Summary:     deref(r.Resumo),
		Defense:     deref(r.Defesa),
		Analysis:    deref(r.AnaliseDefesa),
		FileURLs:    nonNil(r.ArquivosURL),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainList(rows []row) []domain.Process {
	out := make([]domain.Process, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}

func columnList() string {
	return strings.Join(columns, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullString stores empty text as NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
