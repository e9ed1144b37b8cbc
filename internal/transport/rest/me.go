package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/azulpack/juridico-backend/pkg/navstate"
)

type navigationService interface {
	SaveLastPath(ctx context.Context, path string) error
	Restore(ctx context.Context, landing string) (string, bool, error)
	Clear(ctx context.Context) error
}

// NavigationHandler serves the caller's last visited route.
type NavigationHandler struct {
	svc navigationService
	log *slog.Logger
}

// NewNavigationHandler creates a NavigationHandler.
func NewNavigationHandler(svc navigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{svc: svc, log: logger.With("handler", "navigation")}
}

type lastPathRequest struct {
	Path string `json:"path"`
}

type lastPathResponse struct {
	Path    string `json:"path,omitempty"`
	Restore bool   `json:"restore"`
}

// Get handles GET /me/last-path?landing=/. landing defaults to the root route.
func (h *NavigationHandler) Get(w http.ResponseWriter, r *http.Request) {
	landing := r.URL.Query().Get("landing")
	if landing == "" {
		landing = navstate.RootPath
	}

	path, restore, err := h.svc.Restore(r.Context(), landing)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lastPathResponse{Path: path, Restore: restore})
}

// Put handles PUT /me/last-path.
func (h *NavigationHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req lastPathRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.SaveLastPath(r.Context(), req.Path); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /me/last-path.
func (h *NavigationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
