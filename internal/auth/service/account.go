package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/pkg/cryptox"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

var (
	ErrInvalidInput   = errors.New("invalid_input")
	ErrUsernameTaken  = errors.New("username_taken")
	ErrAccountMissing = errors.New("account_not_found")
)

// DefaultAdminUsername is the username that denotes the administrator
// account when no override is configured.
const DefaultAdminUsername = "admin"

// AccountService owns account registration.
type AccountService struct {
	Store store.Store

	// AdminUsername denotes the administrator account. Registration under
	// this name yields an admin account with no profile.
	AdminUsername string
}

func (s *AccountService) adminUsername() string {
	if s.AdminUsername != "" {
		return s.AdminUsername
	}
	return DefaultAdminUsername
}

// Register creates an Account with a hashed password and, for non-admin
// usernames, the linked Profile. The two inserts run in one transaction; the
// username UNIQUE index resolves concurrent duplicates by failing the second
// insert, which surfaces here as ErrUsernameTaken exactly like the pre-check.
func (s *AccountService) Register(
	ctx context.Context,
	username, displayName, password string,
	employeeID *int64,
) (domain.Account, *domain.Profile, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)
	if username == "" || password == "" {
		return domain.Account{}, nil, ErrInvalidInput
	}

	role := jwtx.RoleTeacher
	if username == s.adminUsername() {
		role = jwtx.RoleAdmin
	}
	if role == jwtx.RoleTeacher && displayName == "" {
		return domain.Account{}, nil, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, nil, err
	}

	var account domain.Account
	var profile *domain.Profile

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Pre-check for a friendly conflict; the index remains the authority
		// under races.
		if _, err := tx.Accounts().GetAccountByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		account = domain.Account{
			Username:     username,
			PasswordHash: hash,
			Role:         role,
		}
		id, err := tx.Accounts().CreateAccount(ctx, account)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}
		account.ID = id

		if role == jwtx.RoleAdmin {
			return nil
		}

		p := domain.Profile{
			AccountID:   id,
			DisplayName: displayName,
			EmployeeID:  employeeID,
		}
		pid, err := tx.Profiles().CreateProfile(ctx, p)
		if err != nil {
			return err
		}
		p.ID = pid
		profile = &p
		return nil
	})
	if err != nil {
		return domain.Account{}, nil, err
	}

	log.Info("account registered",
		"account_id", account.ID,
		"username", account.Username,
		"role", account.Role.String(),
	)
	return account, profile, nil
}

// GetAccountByID fetches an account by id.
func (s *AccountService) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountMissing
	}
	return a, err
}

// ListAccounts returns every account. Admin-only at the HTTP boundary.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccounts(ctx)
}
