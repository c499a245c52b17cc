package httpx

import (
	"net/http"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

// Authorize is the gate decision: may a caller with these claims perform an
// operation requiring the given role? Pure and side-effect free.
func Authorize(c jwtx.Claims, required jwtx.Role) bool {
	return c.Role.Can(required)
}

// RequireRole denies the request outright when the authenticated caller's
// role does not satisfy the requirement. The guarded handler never runs on
// deny. Must sit after AuthnMiddleware in the chain.
func RequireRole(required jwtx.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !roleFromContext(r.Context()).Can(required) {
				writeRoleError(w, required)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthenticated admits any caller that passed AuthnMiddleware,
// regardless of role.
func RequireAuthenticated() Middleware {
	return RequireRole("")
}

func writeRoleError(w http.ResponseWriter, required jwtx.Role) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+string(required)+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
