package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnikDM/SchoolManagement/internal/auth/service"
	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/internal/auth/store/drivers/sqlite"
	"github.com/AnikDM/SchoolManagement/pkg/cryptox"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

var dbSeq int

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", dbSeq)

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestRegister_Teacher(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	employeeID := int64(1042)
	account, profile, err := svc.Register(ctx, "jdoe", "Jane Doe", "str0ng-pass!", &employeeID)
	require.NoError(t, err)

	require.Positive(t, account.ID)
	require.Equal(t, "jdoe", account.Username)
	require.Equal(t, jwtx.RoleTeacher, account.Role)

	// Plaintext never stored; the hash must verify.
	require.NotEqual(t, "str0ng-pass!", account.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("str0ng-pass!", account.PasswordHash))

	require.NotNil(t, profile)
	require.Equal(t, account.ID, profile.AccountID)
	require.Equal(t, "Jane Doe", profile.DisplayName)
	require.NotNil(t, profile.EmployeeID)
	require.Equal(t, employeeID, *profile.EmployeeID)
}

func TestRegister_Admin(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	account, profile, err := svc.Register(ctx, "admin", "", "str0ng-pass!", nil)
	require.NoError(t, err)

	require.Equal(t, jwtx.RoleAdmin, account.Role)
	require.Nil(t, profile, "admin accounts carry no profile")
}

func TestRegister_CustomAdminUsername(t *testing.T) {
	svc := &service.AccountService{
		Store:         newTestStore(t),
		AdminUsername: "principal",
	}
	ctx := context.Background()

	account, profile, err := svc.Register(ctx, "principal", "", "str0ng-pass!", nil)
	require.NoError(t, err)
	require.Equal(t, jwtx.RoleAdmin, account.Role)
	require.Nil(t, profile)

	// The default name is just a teacher now.
	account, profile, err = svc.Register(ctx, "admin", "Ada Min", "str0ng-pass!", nil)
	require.NoError(t, err)
	require.Equal(t, jwtx.RoleTeacher, account.Role)
	require.NotNil(t, profile)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "jdoe", "Jane Doe", "str0ng-pass!", nil)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "jdoe", "John Doe", "0ther-pass!", nil)
	require.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	tests := []struct {
		name        string
		username    string
		displayName string
		password    string
	}{
		{"empty username", "", "Jane Doe", "str0ng-pass!"},
		{"whitespace username", "   ", "Jane Doe", "str0ng-pass!"},
		{"empty password", "jdoe", "Jane Doe", ""},
		{"teacher without display name", "jdoe", "", "str0ng-pass!"},
		{"teacher with whitespace display name", "jdoe", "   ", "str0ng-pass!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.username, tt.displayName, tt.password, nil)
			require.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestGetAccountByID(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	account, _, err := svc.Register(ctx, "jdoe", "Jane Doe", "str0ng-pass!", nil)
	require.NoError(t, err)

	got, err := svc.GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Username, got.Username)

	_, err = svc.GetAccountByID(ctx, 9999)
	require.ErrorIs(t, err, service.ErrAccountMissing)
}

func TestListAccounts(t *testing.T) {
	svc := &service.AccountService{Store: newTestStore(t)}
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "admin", "", "str0ng-pass!", nil)
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "jdoe", "Jane Doe", "str0ng-pass!", nil)
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
}
