package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
	authhttp "github.com/AnikDM/SchoolManagement/internal/auth/http"
	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/internal/auth/store/drivers/sqlite"
	"github.com/AnikDM/SchoolManagement/pkg/cryptox"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

/*
 * End-to-end tests for the auth service HTTP surface. The full stack runs
 * in-process: embedded SQLite store, real migrations, real argon2id hashing
 * and real signed tokens behind an httptest server.
 */

const (
	teacherUsername = "t1"
	teacherName     = "Jane Doe"
	teacherPassword = "Teach123!"

	adminUsername = "admin"
	adminPassword = "Admin123!"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type testServer struct {
	*httptest.Server
	store store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL",
		filepath.Join(t.TempDir(), "auth.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256(
		[]byte("e2e-secret-e2e-secret-e2e-secret!"),
		jwtx.VerifyOptions{Issuer: "school-auth", Audience: "school-management"},
	)
	require.NoError(t, err)

	accounts := &service.AccountService{Store: st}
	sessions := &service.SessionService{Store: st, Signer: signer, TTL: time.Hour}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	router := authhttp.NewRouter(logger, accounts, sessions, st, signer, "e2e")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

func (ts *testServer) postJSON(t *testing.T, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *testServer) get(t *testing.T, path, token string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *testServer) do(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerTeacher(t *testing.T, ts *testServer) {
	t.Helper()
	resp, _ := ts.postJSON(t, "/v1/auth/register", map[string]any{
		"username":     teacherUsername,
		"display_name": teacherName,
		"password":     teacherPassword,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func login(t *testing.T, ts *testServer, username, password string) (int, map[string]any) {
	t.Helper()
	resp, body := ts.postJSON(t, "/v1/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, "")
	return resp.StatusCode, body
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	t.Run("register teacher", func(t *testing.T) {
		resp, body := ts.postJSON(t, "/v1/auth/register", map[string]any{
			"username":     teacherUsername,
			"display_name": teacherName,
			"password":     teacherPassword,
			"employee_id":  1042,
		}, "")

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, teacherUsername, body["username"])
		require.Equal(t, "teacher", body["role"])
		require.Equal(t, teacherName, body["display_name"])
		require.NotZero(t, body["account_id"])
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		resp, body := ts.postJSON(t, "/v1/auth/register", map[string]any{
			"username":     teacherUsername,
			"display_name": "Someone Else",
			"password":     "0therPass!",
		}, "")

		require.Equal(t, http.StatusConflict, resp.StatusCode)
		require.Equal(t, "username_taken", body["error"])
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		status, body := login(t, ts, teacherUsername, teacherPassword)

		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, body["token"])
		require.Equal(t, "Bearer", body["token_type"])
		require.Equal(t, "teacher", body["role"])
		require.Equal(t, teacherName, body["display_name"])
		require.EqualValues(t, 3600, body["expires_in"])
		require.EqualValues(t, 1042, body["employee_id"])
	})

	t.Run("wrong password is a generic credential failure", func(t *testing.T) {
		status, body := login(t, ts, teacherUsername, "WrongPass!")
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "invalid_credentials", body["error"])
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		status, body := login(t, ts, "nobody", "WrongPass!")
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "invalid_credentials", body["error"])
	})
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing username", map[string]any{
			"display_name": teacherName, "password": teacherPassword}},
		{"short username", map[string]any{
			"username": "a", "display_name": teacherName, "password": teacherPassword}},
		{"missing password", map[string]any{
			"username": teacherUsername, "display_name": teacherName}},
		{"short password", map[string]any{
			"username": teacherUsername, "display_name": teacherName, "password": "pw"}},
		{"unknown field", map[string]any{
			"username": teacherUsername, "display_name": teacherName,
			"password": teacherPassword, "is_admin": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ts.postJSON(t, "/v1/auth/register", tt.body, "")
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.Equal(t, "invalid_request", body["error"])
		})
	}
}

func TestWhoami(t *testing.T) {
	ts := newTestServer(t)
	registerTeacher(t, ts)

	status, loginBody := login(t, ts, teacherUsername, teacherPassword)
	require.Equal(t, http.StatusOK, status)
	token := loginBody["token"].(string)

	t.Run("with valid token", func(t *testing.T) {
		resp, body := ts.get(t, "/v1/whoami", token)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, teacherUsername, body["username"])
		require.Equal(t, teacherName, body["display_name"])
		require.Equal(t, "teacher", body["role"])
		require.NotZero(t, body["expires_at"])
	})

	t.Run("without token", func(t *testing.T) {
		resp, _ := ts.get(t, "/v1/whoami", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with garbage token", func(t *testing.T) {
		resp, _ := ts.get(t, "/v1/whoami", "not-a-token")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAccountsListingIsAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	registerTeacher(t, ts)

	resp, _ := ts.postJSON(t, "/v1/auth/register", map[string]any{
		"username": adminUsername,
		"password": adminPassword,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("teacher forbidden", func(t *testing.T) {
		status, body := login(t, ts, teacherUsername, teacherPassword)
		require.Equal(t, http.StatusOK, status)

		resp, _ := ts.get(t, "/v1/accounts", body["token"].(string))
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		status, body := login(t, ts, adminUsername, adminPassword)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "admin", body["role"])
		require.Equal(t, "Administrator", body["display_name"])

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/accounts", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+body["token"].(string))

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var accounts []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&accounts))
		require.Len(t, accounts, 2)

		usernames := []string{
			accounts[0]["username"].(string),
			accounts[1]["username"].(string),
		}
		require.Contains(t, usernames, teacherUsername)
		require.Contains(t, usernames, adminUsername)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		resp, _ := ts.get(t, "/v1/accounts", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLoginWithMissingProfileFails(t *testing.T) {
	ts := newTestServer(t)

	// A teacher account with no profile row is corrupt state. Login must fail
	// loudly as a server error, not hand back a half-empty session.
	hash, err := cryptox.HashPassword(teacherPassword)
	require.NoError(t, err)
	_, err = ts.store.Accounts().CreateAccount(t.Context(), domain.Account{
		Username:     "orphan",
		PasswordHash: hash,
		Role:         jwtx.RoleTeacher,
	})
	require.NoError(t, err)

	status, body := login(t, ts, "orphan", teacherPassword)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "server_error", body["error"])
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("livez", func(t *testing.T) {
		resp, body := ts.get(t, "/livez", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["status"])
	})

	t.Run("readyz", func(t *testing.T) {
		resp, body := ts.get(t, "/readyz", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["status"])

		checks := body["checks"].(map[string]any)
		require.Equal(t, "ok", checks["database"])
		require.Equal(t, "ok", checks["signer"])
	})
}
