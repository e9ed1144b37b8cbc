package rest

import (
	"net/http"

	"github.com/azulpack/juridico-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Navigation *NavigationHandler
	Directory  *DirectoryHandler
	Process    *ProcessHandler
	Generation *GenerationHandler
	Sharing    *SharingHandler
	Admin      *AdminHandler
}

// NewRouter mounts every route. Caller identity must already be resolved by
// middleware.Auth further out; credentialLimit throttles the login and
// refresh endpoints and may be nil.
func NewRouter(h Handlers, credentialLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler { return middleware.Chain(credentialLimit)(fn) }
	user := func(fn http.HandlerFunc) http.Handler { return middleware.RequireUser(fn) }
	admin := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAdmin(fn) }

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	mux.Handle("POST /auth/login", limited(h.Auth.SignIn))
	mux.Handle("POST /auth/refresh", limited(h.Auth.Refresh))
	mux.HandleFunc("POST /auth/logout", h.Auth.SignOut)
	mux.Handle("GET /me", user(h.Auth.Me))

	// Navigation state
	mux.Handle("GET /me/last-path", user(h.Navigation.Get))
	mux.Handle("PUT /me/last-path", user(h.Navigation.Put))
	mux.Handle("DELETE /me/last-path", user(h.Navigation.Delete))

	// Directory
	mux.Handle("POST /users/lookup", user(h.Directory.Lookup))

	// Processes
	mux.Handle("GET /processes", user(h.Process.List))
	mux.Handle("POST /processes", user(h.Process.Create))
	mux.Handle("GET /processes/{id}", user(h.Process.Get))
	mux.Handle("PATCH /processes/{id}", user(h.Process.Update))
	mux.Handle("DELETE /processes/{id}", user(h.Process.Delete))

	// Generation and history
	mux.Handle("POST /processes/{id}/generate", user(h.Generation.Generate))
	mux.Handle("GET /processes/{id}/defenses", user(h.Generation.ListDefenses))
	mux.Handle("GET /processes/{id}/analyses", user(h.Generation.ListAnalyses))
	mux.Handle("POST /processes/{id}/analyses", user(h.Generation.SaveAnalysis))

	// Sharing
	mux.Handle("GET /processes/{id}/shares", user(h.Sharing.List))
	mux.Handle("POST /processes/{id}/shares", user(h.Sharing.Share))
	mux.Handle("DELETE /shares/{grantID}", user(h.Sharing.Unshare))

	// Admin console
	mux.Handle("GET /admin/users", admin(h.Admin.ListUsers))
	mux.Handle("POST /admin/users", admin(h.Admin.CreateUser))
	mux.Handle("DELETE /admin/users/{id}", admin(h.Admin.DeleteUser))
	mux.Handle("PUT /admin/users/{id}/role", admin(h.Admin.SetRole))
	mux.Handle("GET /admin/users/{id}/processes", admin(h.Admin.UserProcesses))
	mux.Handle("GET /admin/activity", admin(h.Admin.Activity))
	mux.Handle("GET /admin/overview", admin(h.Admin.Overview))

	return mux
}
