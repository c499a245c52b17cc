package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/pkg/httpx"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

// Router owns the HTTP surface of the auth service.
type Router struct {
	Mux *http.ServeMux

	AccountService *service.AccountService
	SessionService *service.SessionService
	Store          store.Store
	Signer         *jwtx.HS256

	Version   string
	StartTime time.Time

	middlewares []httpx.Middleware
}

func NewRouter(
	logger *slog.Logger,
	accounts *service.AccountService,
	sessions *service.SessionService,
	st store.Store,
	signer *jwtx.HS256,
	version string,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		AccountService: accounts,
		SessionService: sessions,
		Store:          st,
		Signer:         signer,
		Version:        version,
		StartTime:      time.Now(),
		middlewares: []httpx.Middleware{
			slogx.HTTPMiddleware(logger),
		},
	}
	r.ApplyRoutes()
	return r
}

// ApplyRoutes mounts every endpoint with its per-route middleware chain.
// Credential endpoints are rate limited by client IP since the caller has no
// identity yet; authenticated endpoints key off the account id instead.
func (r *Router) ApplyRoutes() {
	r.Mux.Handle("POST /v1/auth/register", httpx.Chain(
		&RegisterHandler{AccountService: r.AccountService},
		httpx.RateLimitByIP(httpx.StrictLimit),
	))

	r.Mux.Handle("POST /v1/auth/login", httpx.Chain(
		&LoginHandler{SessionService: r.SessionService},
		httpx.RateLimitByIP(httpx.StrictLimit),
	))

	r.Mux.Handle("GET /v1/whoami", httpx.Chain(
		WhoamiHandler(),
		httpx.AuthnMiddleware(r.Signer),
		httpx.RequireAuthenticated(),
		httpx.RateLimitByAccount(httpx.LenientLimit),
	))

	r.Mux.Handle("GET /v1/accounts", httpx.Chain(
		&AccountsHandler{AccountService: r.AccountService},
		httpx.AuthnMiddleware(r.Signer),
		httpx.RequireRole(jwtx.RoleAdmin),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	))

	r.Mux.Handle("GET /livez", httpx.Chain(
		LivezHandler(r.StartTime, r.Version),
		httpx.RateLimitByIP(httpx.LenientLimit),
	))

	r.Mux.Handle("GET /readyz", httpx.Chain(
		ReadyzHandler(r.StartTime, r.Version, r.Store, r.Signer),
		httpx.RateLimitByIP(httpx.LenientLimit),
	))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}
