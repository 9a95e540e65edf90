package middleware

import (
	"net/http"

	"shobukan/keikoban/internal/auth"
)

// IsManagementMiddleware gates routes reserved for management roles
// (anything above plain member). The finer role-hierarchy check runs
// per mutation inside the member management service, because it needs
// the target's role.
func IsManagementMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.Role().IsManagement() {
				http.Error(w, "Forbidden. Need a management role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
