package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the fallback session lifetime when none is configured.
// School staff tend to stay signed in for a working day.
const DefaultSessionTTL = 8 * time.Hour

// Claims is the session token payload. It is a tagged, explicit structure
// rather than a free-form map so validation can reject missing or unknown
// fields deterministically. Once signed, claims are immutable; validity is a
// function of the signature and the embedded expiry only.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated account, exactly as stored.
	Username string `json:"username,omitempty"`

	// DisplayName resolved at login time (profile full name, or the fixed
	// administrator label).
	DisplayName string `json:"display_name,omitempty"`

	// Role of the account at issuance time. Demoting an account does not
	// touch tokens already in flight; they ride out their expiry.
	Role Role `json:"role,omitempty"`
}

// NewSessionClaims builds claims for a freshly authenticated account.
// Issuer and audience are opaque labels passed through from configuration.
func NewSessionClaims(
	accountID int64,
	username, displayName string,
	role Role,
	ttl time.Duration,
	issuer, audience string,
	now time.Time,
) Claims {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(accountID, 10),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username:    username,
		DisplayName: displayName,
		Role:        role,
	}
}

// AccountID decodes the subject claim back into the numeric account id.
func (c *Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaim
	}
	return id, nil
}

// Validate implements jwt.ClaimsValidator, so the parser rejects tokens whose
// payload does not match the expected shape: subject, username and a known
// role are all mandatory.
func (c *Claims) Validate() error {
	if c.Subject == "" || c.Username == "" {
		return ErrInvalidClaim
	}
	if _, err := c.AccountID(); err != nil {
		return err
	}
	if _, err := ParseRole(string(c.Role)); err != nil {
		return ErrInvalidClaim
	}
	return nil
}
