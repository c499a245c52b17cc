package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the smallest signing secret accepted. HS256 security
// degrades quickly below the hash output size.
const MinSecretLength = 32

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrWeakSecret   = errors.New("jwtx: signing secret too short")
)

// Verifier validates a session token and returns the claims if it is legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures the expectations enforced on every verified token.
type VerifyOptions struct {
	// Issuer the token must carry. Empty means "don't care".
	Issuer string

	// Audience the token must contain. Empty means "don't care".
	Audience string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// TimeFunc overrides the clock, mostly for tests. Defaults to time.Now.
	TimeFunc func() time.Time
}

// HS256 signs and verifies session tokens with a single shared secret. The
// secret is process-wide configuration loaded once at startup; there is no
// rotation and no issuer/verifier separation in this design, so anyone
// holding the secret can do both.
type HS256 struct {
	secret []byte
	opts   VerifyOptions
}

// NewHS256 builds the signer/verifier. The secret is copied, so the caller's
// slice can be discarded.
func NewHS256(secret []byte, opts VerifyOptions) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if opts.TimeFunc == nil {
		opts.TimeFunc = time.Now
	}
	s := &HS256{
		secret: append([]byte(nil), secret...),
		opts:   opts,
	}
	return s, nil
}

// Issuer returns the configured issuer label, passed through opaquely into
// every signed token.
func (s *HS256) Issuer() string { return s.opts.Issuer }

// Audience returns the configured audience label.
func (s *HS256) Audience() string { return s.opts.Audience }

// Sign produces the compact serialized token for the given claims.
func (s *HS256) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(s.secret)
}

// Verify parses and validates a token. A token issued at T with lifetime L
// verifies at any instant in [T, T+L) and is rejected at or after T+L
// (modulo configured leeway). Verification is pure: no store lookups, no
// shared mutable state, safe from any number of goroutines.
func (s *HS256) Verify(token string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.opts.TimeFunc() }),
	}
	if s.opts.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(s.opts.Leeway))
	}
	if s.opts.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.opts.Issuer))
	}
	if s.opts.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.opts.Audience))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		opts...,
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

// mapParseError collapses jwt library errors onto the package sentinels so
// callers never depend on the underlying implementation.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudience
	case errors.Is(err, ErrInvalidClaim):
		return ErrInvalidClaim
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrMalformed
	}
}
