package sqlite

import (
	"context"
	"database/sql"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (account_id, display_name, employee_id) VALUES (?, ?, ?)`,
		p.AccountID, p.DisplayName, toNullInt64(p.EmployeeID),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *profilesRepo) GetProfileByAccountID(ctx context.Context, accountID int64) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, display_name, employee_id, created_at, updated_at
		   FROM profiles WHERE account_id = ?`, accountID)

	var p domain.Profile
	var empID sql.NullInt64
	if err := row.Scan(&p.ID, &p.AccountID, &p.DisplayName, &empID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.EmployeeID = fromNullInt64(empID)
	return p, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	val := v.Int64
	return &val
}
