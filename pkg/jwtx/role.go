package jwtx

import "fmt"

// Role is the authorization level carried in session claims. The original
// schema modelled this as an is-admin boolean; it is an enumerated type here
// so adding a third role is not a breaking migration.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

// ParseRole maps a claim value onto a known role. Unknown values are rejected
// so a token minted against a future schema fails closed.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTeacher:
		return RoleTeacher, nil
	default:
		return "", fmt.Errorf("jwtx: unknown role %q", s)
	}
}

// Admin reports whether the role is the administrator role.
func (r Role) Admin() bool { return r == RoleAdmin }

// Can is the pure authorization decision: a caller with role r may perform an
// operation requiring the given role. Admins satisfy every requirement; an
// empty requirement means any authenticated caller.
func (r Role) Can(required Role) bool {
	if required == "" {
		return r != ""
	}
	if r == RoleAdmin {
		return true
	}
	return r == required
}

func (r Role) String() string { return string(r) }
