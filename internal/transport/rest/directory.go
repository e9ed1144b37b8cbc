package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

type directoryService interface {
	EmailsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserEmail, error)
	IDsByEmails(ctx context.Context, emails []string) ([]domain.UserEmail, error)
}

// DirectoryHandler serves POST /users/lookup.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

type lookupRequest struct {
	UserIDs    []uuid.UUID `json:"userIds"`
	UserEmails []string    `json:"userEmails"`
}

type lookupResponse struct {
	Users []userEmailResponse `json:"users"`
}

// Lookup resolves either ids to emails (admin only) or emails to ids.
// Exactly one of userIds and userEmails must be given.
func (h *DirectoryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var (
		found []domain.UserEmail
		err   error
	)
	switch {
	case req.UserIDs != nil && req.UserEmails != nil:
		err = domain.NewValidationError("body", "give either userIds or userEmails")
	case req.UserIDs != nil:
		found, err = h.svc.EmailsByIDs(r.Context(), req.UserIDs)
	case req.UserEmails != nil:
		found, err = h.svc.IDsByEmails(r.Context(), req.UserEmails)
	default:
		err = domain.NewValidationError("body", "userIds or userEmails is required")
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{Users: toUserEmails(found)})
}
