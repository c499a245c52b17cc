package domain

import (
	"time"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

// Session is the result of a successful login: the signed token plus the
// identity summary the presentation layer caches. Nothing here is persisted
// server-side; the token alone carries the session.
type Session struct {
	Token     string
	ExpiresIn time.Duration

	AccountID   int64
	Username    string
	DisplayName string
	Role        jwtx.Role

	// ProfileID and EmployeeID are set for teacher accounts only.
	ProfileID  int64
	EmployeeID *int64
}
