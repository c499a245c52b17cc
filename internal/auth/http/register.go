package http

import (
	"errors"
	"net/http"

	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/pkg/httpx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	AccountService *service.AccountService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	account, profile, err := h.AccountService.Register(
		ctx, req.Username, req.DisplayName, req.Password, req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			ErrUsernameTaken.WriteError(w)
		case errors.Is(err, service.ErrInvalidInput):
			ErrInvalidRequest.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			ErrServerError.WriteError(w)
		}
		return
	}

	resp := RegisterResponse{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role.String(),
	}
	if profile != nil {
		resp.ProfileID = profile.ID
		resp.DisplayName = profile.DisplayName
	}

	httpx.WriteJSON(w, http.StatusCreated, resp)
}
