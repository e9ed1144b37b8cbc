package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/internal/service/admin"
)

type adminService interface {
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	ProvisionUser(ctx context.Context, input admin.ProvisionUserInput) (domain.UserSummary, error)
	SetUserRole(ctx context.Context, target uuid.UUID, role domain.UserRole) error
	DeleteUser(ctx context.Context, target uuid.UUID) error
	ListProcessesForUser(ctx context.Context, target uuid.UUID) ([]domain.Process, error)
	Overview(ctx context.Context, activityLimit int) (admin.Overview, error)
}

type activityService interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	ListForProcess(ctx context.Context, processID int64, limit int) ([]domain.ActivityEntry, error)
}

// AdminHandler serves the /admin console.
type AdminHandler struct {
	admin    adminService
	activity activityService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(adminSvc adminService, activitySvc activityService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: adminSvc, activity: activitySvc, log: logger.With("handler", "admin")}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserSummaries(users))
}

type provisionUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"nome"`
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req provisionUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.admin.ProvisionUser(r.Context(), admin.ProvisionUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
		Name:     req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserSummaries([]domain.UserSummary{created})[0])
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PUT /admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	target, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req setRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.admin.SetUserRole(r.Context(), target, domain.UserRole(req.Role)); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	target, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.admin.DeleteUser(r.Context(), target); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UserProcesses handles GET /admin/users/{id}/processes.
func (h *AdminHandler) UserProcesses(w http.ResponseWriter, r *http.Request) {
	target, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	processes, err := h.admin.ListProcessesForUser(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessList(processes))
}

// Activity handles GET /admin/activity?limit=50&processId=. Without
// processId it returns the most recent entries across all processes.
func (h *AdminHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var entries []domain.ActivityEntry
	if raw := r.URL.Query().Get("processId"); raw != "" {
		processID, perr := queryInt(r, "processId")
		if perr != nil {
			handleError(w, r, h.log, perr)
			return
		}
		entries, err = h.activity.ListForProcess(r.Context(), int64(processID), limit)
	} else {
		entries, err = h.activity.ListRecent(r.Context(), limit)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityList(entries))
}

type overviewResponse struct {
	Users    []userSummaryResponse `json:"users"`
	Activity []activityResponse    `json:"activity"`
}

// Overview handles GET /admin/overview?limit=.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ov, err := h.admin.Overview(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Users:    toUserSummaries(ov.Users),
		Activity: toActivityList(ov.Activity),
	})
}
