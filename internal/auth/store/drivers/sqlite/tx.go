package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AnikDM/SchoolManagement/internal/auth/store"
)

// txStore scopes the repositories to a single transaction.
type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore { return &txStore{tx: tx} }

func (t *txStore) Accounts() store.Accounts { return &accountsRepo{db: t.tx} }
func (t *txStore) Profiles() store.Profiles { return &profilesRepo{db: t.tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) ApplyMigrations() error {
	return errors.New("sqlite: migrations cannot run inside a transaction")
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }
