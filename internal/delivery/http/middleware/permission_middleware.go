package middleware

import (
	"net/http"

	"go-hospital-management/internal/domain/policy"
	"go-hospital-management/pkg/response"
)

// RequirePermission creates a middleware that checks the authenticated
// user's role against the central permission table for the given resource
// and action. Authorization runs before any handler logic, so a forbidden
// role gets 403 even when the target row does not exist.
func RequirePermission(resource policy.Resource, action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !policy.Allowed(role, action, resource) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
