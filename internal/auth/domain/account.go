package domain

import (
	"time"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

// Account is the authentication identity. The id and username are immutable
// once assigned; only the password hash may be rotated (out of band).
type Account struct {
	ID           int64
	Username     string // unique, matched case-sensitively as stored
	PasswordHash string // argon2id PHC string, never logged
	Role         jwtx.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Admin reports whether this account holds the administrator role.
func (a Account) Admin() bool { return a.Role.Admin() }
