package httpx

import (
	"context"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyRole      ctxKey = "role"
	CtxKeyClaims    ctxKey = "claims"
)

// ClaimsFromContext returns the validated claims attached by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// AccountIDFromContext returns the authenticated account id, or 0.
func AccountIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(CtxKeyAccountID).(int64); ok {
		return id
	}
	return 0
}

func roleFromContext(ctx context.Context) jwtx.Role {
	if r, ok := ctx.Value(CtxKeyRole).(jwtx.Role); ok {
		return r
	}
	return ""
}
