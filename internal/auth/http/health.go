package http

import (
	"net/http"
	"time"

	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/pkg/httpx"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

// LivezHandler always answers 200 while the process is up.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler checks the critical dependencies: the database connection and
// the configured signer.
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer *jwtx.HS256,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{Database: "ok", Signer: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if signer == nil {
			checks.Signer = "error: no signing key configured"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
