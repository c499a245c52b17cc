package store

import (
	"context"
	"errors"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Accounts() Accounts
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns nil
	// and rolling back otherwise. Use it for multi-step operations that must
	// be atomic, e.g. account + profile creation at registration.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account and returns the assigned id.
	// A duplicate username surfaces as ErrAlreadyExists: the UNIQUE index is
	// the authority that resolves concurrent check-then-insert races.
	CreateAccount(ctx context.Context, a domain.Account) (int64, error)

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)

	// GetAccountByUsername matches the stored username exactly
	// (case-sensitive). Used during login.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// ListAccounts returns all accounts ordered by id.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdatePasswordHash rotates the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID int64, newHash string) error
}

type Profiles interface {
	// CreateProfile inserts the profile linked to a freshly created account
	// and returns the assigned id. At most one profile per account.
	CreateProfile(ctx context.Context, p domain.Profile) (int64, error)

	// GetProfileByAccountID returns the profile linked to an account.
	GetProfileByAccountID(ctx context.Context, accountID int64) (domain.Profile, error)
}
