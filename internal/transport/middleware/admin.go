package middleware

import (
	"net/http"

	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// RequireAdmin guards the admin console routes: 401 for anonymous callers,
// 403 for signed-in users without the admin role. Services re-check the role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
