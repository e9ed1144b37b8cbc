package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/internal/service/generation"
)

type generationService interface {
	Generate(ctx context.Context, processID int64, action domain.GenerationAction) (domain.GenerationResult, error)
	SaveAnalysis(ctx context.Context, processID int64, input generation.SaveAnalysisInput) (domain.AnalysisVersion, error)
	ListDefenses(ctx context.Context, processID int64) ([]domain.DefenseVersion, error)
	ListAnalyses(ctx context.Context, processID int64) ([]domain.AnalysisVersion, error)
}

// GenerationHandler serves AI generation and the defense history.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	Action string `json:"action"`
}

type generateResponse struct {
	Action    string `json:"action"`
	Text      string `json:"text"`
	Persisted bool   `json:"persisted"`
	Version   int    `json:"versao,omitempty"`
}

// Generate handles POST /processes/{id}/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	action := domain.GenerationAction(req.Action)
	if !action.IsValid() {
		handleError(w, r, h.log, domain.NewValidationError("action", "must be createSummary, createDefense or analyzeDefense"))
		return
	}

	res, err := h.svc.Generate(r.Context(), id, action)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Action:    res.Action.String(),
		Text:      res.Text,
		Persisted: res.Persisted,
		Version:   res.Version,
	})
}

// ListDefenses handles GET /processes/{id}/defenses.
func (h *GenerationHandler) ListDefenses(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	versions, err := h.svc.ListDefenses(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]defenseResponse, len(versions))
	for i, v := range versions {
		out[i] = toDefenseResponse(v)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListAnalyses handles GET /processes/{id}/analyses.
func (h *GenerationHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	versions, err := h.svc.ListAnalyses(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]analysisResponse, len(versions))
	for i, v := range versions {
		out[i] = toAnalysisResponse(v)
	}
	writeJSON(w, http.StatusOK, out)
}

type saveAnalysisRequest struct {
	AnalyzedDefense string `json:"defesa_analisada"`
	Content         string `json:"conteudo_analise"`
}

// SaveAnalysis handles POST /processes/{id}/analyses.
func (h *GenerationHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req saveAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	saved, err := h.svc.SaveAnalysis(r.Context(), id, generation.SaveAnalysisInput{
		AnalyzedDefense: req.AnalyzedDefense,
		Content:         req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnalysisResponse(saved))
}
