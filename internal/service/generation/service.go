// Package generation runs the AI workflow for a process and keeps the
// generated texts: summary and defense on the process record, every defense
// and every saved analysis as an immutable version.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

type processRepo interface {
	Get(ctx context.Context, caller uuid.UUID, id int64) (domain.Process, error)
	LockForUpdate(ctx context.Context, caller uuid.UUID, id int64) error
	Update(ctx context.Context, caller uuid.UUID, id int64, patch domain.ProcessPatch) (domain.Process, error)
}

type historyRepo interface {
	AppendDefense(ctx context.Context, processID int64, userID uuid.UUID, content string) (domain.DefenseVersion, error)
	AppendAnalysis(ctx context.Context, processID int64, userID uuid.UUID, analyzedDefense, content string) (domain.AnalysisVersion, error)
	ListDefenses(ctx context.Context, processID int64) ([]domain.DefenseVersion, error)
	ListAnalyses(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error)
}

type generator interface {
	Generate(ctx context.Context, processID int64, action domain.GenerationAction) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the AI generation gateway.
type Service struct {
	log       *slog.Logger
	processes processRepo
	history   historyRepo
	workflow  generator
	tx        txManager
	timeout   time.Duration
}

// NewService creates a new generation service. timeout bounds one workflow
// call; zero leaves it to the caller's context.
func NewService(
	logger *slog.Logger,
	processes processRepo,
	history historyRepo,
	workflow generator,
	tx txManager,
	timeout time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "generation"),
		processes: processes,
		history:   history,
		workflow:  workflow,
		tx:        tx,
		timeout:   timeout,
	}
}

// Generate invokes the workflow for one action. Summaries and defenses are
// written onto the process; a defense is also appended to the history.
// Analyses are returned only; SaveAnalysis stores one on request.
// A workflow failure is returned as *domain.GenerationFailedError and leaves
// the process untouched.
func (s *Service) Generate(ctx context.Context, processID int64, action domain.GenerationAction) (domain.GenerationResult, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.GenerationResult{}, domain.ErrUnauthorized
	}
	if !action.IsValid() {
		return domain.GenerationResult{}, domain.NewValidationError("action", "must be createSummary, createDefense or analyzeDefense")
	}

	if _, err := s.processes.Get(ctx, caller, processID); err != nil {
		return domain.GenerationResult{}, fmt.Errorf("generation.Generate: %w", err)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := s.workflow.Generate(callCtx, processID, action)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("generation.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "workflow generated text",
		slog.Int64("process_id", processID),
		slog.String("action", string(action)),
		slog.Int("chars", len(text)),
		slog.Duration("took", time.Since(started)))

	result := domain.GenerationResult{Action: action, Text: text}
	if !action.Persisted() {
		return result, nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.processes.LockForUpdate(ctx, caller, processID); err != nil {
			return err
		}

		patch := domain.ProcessPatch{}
		if action == domain.ActionCreateSummary {
			patch.Summary = &text
		} else {
			patch.Defense = &text
		}
		if _, err := s.processes.Update(ctx, caller, processID, patch); err != nil {
			return err
		}

		if action == domain.ActionCreateDefense {
			v, err := s.history.AppendDefense(ctx, processID, caller, text)
			if err != nil {
				return err
			}
			result.Version = v.Version
		}
		return nil
	})
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("generation.Generate persist: %w", err)
	}

	result.Persisted = true
	return result, nil
}

// SaveAnalysisInput holds an analysis to keep.
type SaveAnalysisInput struct {
	// AnalyzedDefense is the defense text the analysis critiques. Empty
	// means the process's current defense.
	AnalyzedDefense string
	Content         string
}

// SaveAnalysis stores an analysis as the next analysis version and as the
// process's current analysis.
func (s *Service) SaveAnalysis(ctx context.Context, processID int64, input SaveAnalysisInput) (domain.AnalysisVersion, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AnalysisVersion{}, domain.ErrUnauthorized
	}
	if strings.TrimSpace(input.Content) == "" {
		return domain.AnalysisVersion{}, domain.NewValidationError("conteudo_analise", "required")
	}

	var saved domain.AnalysisVersion
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.processes.LockForUpdate(ctx, caller, processID); err != nil {
			return err
		}

		defense := input.AnalyzedDefense
		if defense == "" {
			p, err := s.processes.Get(ctx, caller, processID)
			if err != nil {
				return err
			}
			defense = p.Defense
		}
		if defense == "" {
			return domain.NewValidationError("defesa_analisada", "process has no defense to analyze")
		}

		var err error
		saved, err = s.history.AppendAnalysis(ctx, processID, caller, defense, input.Content)
		if err != nil {
			return err
		}
		_, err = s.processes.Update(ctx, caller, processID, domain.ProcessPatch{Analysis: &input.Content})
		return err
	})
	if err != nil {
		return domain.AnalysisVersion{}, fmt.Errorf("generation.SaveAnalysis: %w", err)
	}

	return saved, nil
}

// ListDefenses returns the defense history of an accessible process, newest first.
func (s *Service) ListDefenses(ctx context.Context, processID int64) ([]domain.DefenseVersion, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.processes.Get(ctx, caller, processID); err != nil {
		return nil, fmt.Errorf("generation.ListDefenses: %w", err)
	}

	versions, err := s.history.ListDefenses(ctx, processID)
	if err != nil {
		return nil, fmt.Errorf("generation.ListDefenses: %w", err)
	}
	return versions, nil
}

// ListAnalyses returns the saved analyses of an accessible process, newest first.
func (s *Service) ListAnalyses(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.processes.Get(ctx, caller, processID); err != nil {
		return nil, fmt.Errorf("generation.ListAnalyses: %w", err)
	}

	versions, err := s.history.ListAnalyses(ctx, processID)
	if err != nil {
		return nil, fmt.Errorf("generation.ListAnalyses: %w", err)
	}
	return versions, nil
}
