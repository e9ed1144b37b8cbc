package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

type sharingService interface {
	Share(ctx context.Context, processID int64, email string) (domain.ShareRecipient, error)
	Unshare(ctx context.Context, grantID uuid.UUID) error
	ListShares(ctx context.Context, processID int64) ([]domain.ShareRecipient, error)
}

// SharingHandler serves process share grants.
type SharingHandler struct {
	svc sharingService
	log *slog.Logger
}

// NewSharingHandler creates a SharingHandler.
func NewSharingHandler(svc sharingService, logger *slog.Logger) *SharingHandler {
	return &SharingHandler{svc: svc, log: logger.With("handler", "sharing")}
}

type shareRequest struct {
	Email string `json:"email"`
}

// List handles GET /processes/{id}/shares.
func (h *SharingHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	recipients, err := h.svc.ListShares(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]shareResponse, len(recipients))
	for i, rc := range recipients {
		out[i] = toShareResponse(rc)
	}
	writeJSON(w, http.StatusOK, out)
}

// Share handles POST /processes/{id}/shares.
func (h *SharingHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rc, err := h.svc.Share(r.Context(), id, req.Email)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toShareResponse(rc))
}

// Unshare handles DELETE /shares/{grantID}. Removing a missing grant succeeds.
func (h *SharingHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	grantID, err := pathUUID(r, "grantID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Unshare(r.Context(), grantID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
