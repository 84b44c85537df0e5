package httpx

import (
	"net/http"
	"strings"
)

// RoleChecker decides whether a role may pass a gate restricted to the given
// allowed roles. The dashboard's access rules (the "all" wildcard, the
// Direktur bypass, the Sales piggyback on Marketing pages) live with the
// caller, which keeps this package free of business policy.
type RoleChecker func(role string, allowed []string) bool

// RequireRoles gates a handler behind the given allowed roles. The caller
// must already be authenticated (AuthnMiddleware runs before this).
func RequireRoles(check RoleChecker, allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromCtx(r.Context())
			if role == "" || !check(role, allowed) {
				writeRoleError(w, http.StatusForbidden, allowed...)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for insufficient role.
func writeRoleError(w http.ResponseWriter, code int, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", roles="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(code)
	_, _ = w.Write([]byte("insufficient_role"))
}
