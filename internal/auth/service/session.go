package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnikDM/SchoolManagement/internal/auth/domain"
	"github.com/AnikDM/SchoolManagement/internal/auth/store"
	"github.com/AnikDM/SchoolManagement/pkg/cryptox"
	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
	"github.com/AnikDM/SchoolManagement/pkg/slogx"
)

var (
	// ErrAccountNotFound and ErrWrongPassword stay distinct at this layer so
	// operators can tell them apart in logs; the HTTP boundary collapses both
	// into one generic credential failure so account existence never leaks.
	ErrAccountNotFound = errors.New("account_not_found")
	ErrWrongPassword   = errors.New("wrong_password")

	// ErrProfileMissing reports a teacher account without its 1:1 profile
	// row. That state is only reachable through data corruption or a partial
	// write, so it is fatal for the request, never a null-valued success.
	ErrProfileMissing = errors.New("profile_missing")
)

// SessionService is the login half of the authorization gate: it verifies
// credentials and mints stateless session tokens. The signer is built once at
// startup from configuration and is immutable for the life of the process.
type SessionService struct {
	Store  store.Store
	Signer *jwtx.HS256
	TTL    time.Duration

	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// Login authenticates a username/password pair and returns the session:
// a signed token plus the identity summary the client caches. Admin accounts
// surface the fixed administrator label; teacher accounts join their Profile
// for the display name and employee id.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login failed: unknown username", "username", username)
			return domain.Session{}, ErrAccountNotFound
		}
		return domain.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login failed: wrong password", "account_id", account.ID)
			return domain.Session{}, ErrWrongPassword
		}
		return domain.Session{}, err
	}

	session := domain.Session{
		ExpiresIn:   s.ttl(),
		AccountID:   account.ID,
		Username:    account.Username,
		DisplayName: domain.AdminDisplayName,
		Role:        account.Role,
	}

	if !account.Admin() {
		profile, err := s.Store.Profiles().GetProfileByAccountID(ctx, account.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Error("teacher account has no profile", "account_id", account.ID)
				return domain.Session{}, fmt.Errorf("%w: account %d", ErrProfileMissing, account.ID)
			}
			return domain.Session{}, err
		}
		session.DisplayName = profile.DisplayName
		session.ProfileID = profile.ID
		session.EmployeeID = profile.EmployeeID
	}

	token, err := s.Issue(account, session.DisplayName)
	if err != nil {
		return domain.Session{}, err
	}
	session.Token = token

	log.Info("login succeeded", "account_id", account.ID, "role", account.Role.String())
	return session, nil
}

// Issue mints a signed session token for the account. Claims embed the
// identity and role as of now; the token is immutable and self-contained
// once signed, so later account changes do not touch it before expiry.
func (s *SessionService) Issue(account domain.Account, displayName string) (string, error) {
	claims := jwtx.NewSessionClaims(
		account.ID,
		account.Username,
		displayName,
		account.Role,
		s.ttl(),
		s.Signer.Issuer(),
		s.Signer.Audience(),
		s.now(),
	)
	return s.Signer.Sign(claims)
}
