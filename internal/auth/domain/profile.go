package domain

import "time"

// AdminDisplayName is the fixed display label for administrator accounts,
// which carry no Profile row.
const AdminDisplayName = "Administrator"

// Profile is the display/business record linked 1:1 to every non-admin
// account. It is created atomically with its Account at registration and is
// never duplicated. An admin account has no Profile; a teacher account
// missing one is a data-integrity violation.
type Profile struct {
	ID          int64
	AccountID   int64
	DisplayName string
	EmployeeID  *int64 // optional external identifier
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
