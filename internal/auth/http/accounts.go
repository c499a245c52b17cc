package http

import (
	"net/http"
	"time"

	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/pkg/httpx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

// AccountsHandler serves GET /v1/accounts, the admin-only account listing.
type AccountsHandler struct {
	AccountService *service.AccountService
}

func (h *AccountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		log.Error("failed to list accounts", "err", err)
		ErrServerError.WriteError(w)
		return
	}

	out := make([]AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountSummary{
			AccountID: a.ID,
			Username:  a.Username,
			Role:      a.Role.String(),
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
