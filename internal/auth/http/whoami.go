package http

import (
	"net/http"

	"github.com/AnikDM/SchoolManagement/pkg/httpx"
)

// WhoamiHandler serves GET /v1/whoami for any authenticated caller. It is the
// collaborator-facing view of the gate: everything in the response comes from
// the validated token, with no store round-trip.
func WhoamiHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.ClaimsFromContext(r.Context())
		if !ok {
			ErrServerError.WriteError(w)
			return
		}

		id, err := claims.AccountID()
		if err != nil {
			ErrServerError.WriteError(w)
			return
		}

		var exp int64
		if claims.ExpiresAt != nil {
			exp = claims.ExpiresAt.Unix()
		}

		httpx.WriteJSON(w, http.StatusOK, WhoamiResponse{
			AccountID:   id,
			Username:    claims.Username,
			DisplayName: claims.DisplayName,
			Role:        claims.Role.String(),
			ExpiresAt:   exp,
		})
	}
}
