package sqlite

import (
	"context"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, password_hash, role, created_at, updated_at`

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (username, password_hash, role) VALUES (?, ?, ?)`,
		a.Username, a.PasswordHash, string(a.Role),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	// Usernames are stored and matched with BINARY collation, so this lookup
	// is case-sensitive by construction.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
	return scanAccount(row)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, accountID int64, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newHash, accountID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	var role string
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	parsed, err := jwtx.ParseRole(role)
	if err != nil {
		return domain.Account{}, err
	}
	a.Role = parsed
	return a, nil
}
