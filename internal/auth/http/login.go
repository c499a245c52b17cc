package http

import (
	"errors"
	"net/http"

	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/pkg/httpx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

// LoginHandler serves POST /v1/auth/login.
type LoginHandler struct {
	SessionService *service.SessionService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	session, err := h.SessionService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		// Unknown username and wrong password produce the same response on
		// purpose; the split lives only in service-level logs.
		case errors.Is(err, service.ErrAccountNotFound),
			errors.Is(err, service.ErrWrongPassword):
			ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrProfileMissing):
			// Data-integrity violation, not a user error.
			log.Error("login hit inconsistent account state", "err", err)
			ErrServerError.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:       session.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(session.ExpiresIn.Seconds()),
		AccountID:   session.AccountID,
		Username:    session.Username,
		DisplayName: session.DisplayName,
		Role:        session.Role.String(),
		ProfileID:   session.ProfileID,
		EmployeeID:  session.EmployeeID,
	})
}
