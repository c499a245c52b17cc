package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

// AuthnMiddleware validates the bearer token on each request and injects the
// decoded identity into the request context. The decision is self-contained
// in the token payload; no store lookup happens here.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("session token rejected", "err", err)
				return
			}

			ctx = contextWithClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	// Subject was validated during Verify, so the parse cannot fail here.
	id, _ := c.AccountID()
	ctx = context.WithValue(ctx, CtxKeyAccountID, id)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
