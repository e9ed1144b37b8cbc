// Package history implements the insert-only defense and analysis version
// tables using PostgreSQL.
//
// Versions are assigned as max(versao)+1 per process. Callers serialize
// concurrent appends by holding the process row lock in the same transaction;
// the (processo_id, versao) unique constraint rejects anything that slips past.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// Repo provides defense history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Defenses
// ---------------------------------------------------------------------------

const insertDefense = `
INSERT INTO defesa_historico (processo_id, user_id, conteudo, versao)
VALUES ($1, $2, $3, get_next_defense_version($1))
RETURNING id, processo_id, user_id, conteudo, versao, created_at`

// AppendDefense stores content as the next defense version of the process.
func (r *Repo) AppendDefense(ctx context.Context, processID int64, userID uuid.UUID, content string) (domain.DefenseVersion, error) {
	var rw defenseRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insertDefense, processID, userID, content); err != nil {
		return domain.DefenseVersion{}, postgres.MapError(err, "defesa_historico", processID)
	}
	return rw.toDomain(), nil
}

const listDefenses = `
SELECT id, processo_id, user_id, conteudo, versao, created_at
FROM defesa_historico
WHERE processo_id = $1
ORDER BY versao DESC`

// ListDefenses returns the defense versions of a process, newest first.
func (r *Repo) ListDefenses(ctx context.Context, processID int64) ([]domain.DefenseVersion, error) {
	var rows []defenseRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listDefenses, processID); err != nil {
		return nil, fmt.Errorf("list defesa_historico: %w", err)
	}

	out := make([]domain.DefenseVersion, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Analyses
// ---------------------------------------------------------------------------

const insertAnalysis = `
INSERT INTO analise_defesa (processo_id, user_id, defesa_analisada, conteudo_analise, versao)
VALUES ($1, $2, $3, $4, get_next_analysis_version($1))
RETURNING id, processo_id, user_id, defesa_analisada, conteudo_analise, versao, created_at`

// AppendAnalysis stores an analysis, together with the defense it critiques,
// as the next analysis version of the process.
func (r *Repo) AppendAnalysis(ctx context.Context, processID int64, userID uuid.UUID, analyzedDefense, content string) (domain.AnalysisVersion, error) {
	var rw analysisRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insertAnalysis,
		processID, userID, analyzedDefense, content)
	if err != nil {
		return domain.AnalysisVersion{}, postgres.MapError(err, "analise_defesa", processID)
	}
	return rw.toDomain(), nil
}

const listAnalyses = `
SELECT id, processo_id, user_id, defesa_analisada, conteudo_analise, versao, created_at
FROM analise_defesa
WHERE processo_id = $1
ORDER BY versao DESC`

// ListAnalyses returns the analysis versions of a process, newest first.
func (r *Repo) ListAnalyses(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error) {
	var rows []analysisRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listAnalyses, processID); err != nil {
		return nil, fmt.Errorf("list analise_defesa: %w", err)
	}

	out := make([]domain.AnalysisVersion, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type defenseRow struct {
	ID         uuid.UUID `db:"id"`
	ProcessoID int64     `db:"processo_id"`
	UserID     uuid.UUID `db:"user_id"`
	Conteudo   string    `db:"conteudo"`
	Versao     int       `db:"versao"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r defenseRow) toDomain() domain.DefenseVersion {
	return domain.DefenseVersion{
		ID:        r.ID,
		ProcessID: r.ProcessoID,
		UserID:    r.UserID,
		Content:   r.Conteudo,
		Version:   r.Versao,
		CreatedAt: r.CreatedAt,
	}
}

type analysisRow struct {
	ID              uuid.UUID `db:"id"`
	ProcessoID      int64     `db:"processo_id"`
	UserID          uuid.UUID `db:"user_id"`
	DefesaAnalisada string    `db:"defesa_analisada"`
	ConteudoAnalise string    `db:"conteudo_analise"`
	Versao          int       `db:"versao"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r analysisRow) toDomain() domain.AnalysisVersion {
	return domain.AnalysisVersion{
		ID:              r.ID,
		ProcessID:       r.ProcessoID,
		UserID:          r.UserID,
		AnalyzedDefense: r.DefesaAnalisada,
		Content:         r.ConteudoAnalise,
		Version:         r.Versao,
		CreatedAt:       r.CreatedAt,
	}
}
