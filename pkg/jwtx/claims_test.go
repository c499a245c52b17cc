package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	c := jwtx.NewSessionClaims(
		42, "jdoe", "Jane Doe", jwtx.RoleTeacher,
		8*time.Hour, "school-auth", "school-management", now,
	)

	require.Equal(t, "42", c.Subject)
	require.Equal(t, "jdoe", c.Username)
	require.Equal(t, "Jane Doe", c.DisplayName)
	require.Equal(t, jwtx.RoleTeacher, c.Role)
	require.Equal(t, "school-auth", c.Issuer)
	require.Equal(t, jwt.ClaimStrings{"school-management"}, c.Audience)
	require.Equal(t, now.Unix(), c.IssuedAt.Unix())
	require.Equal(t, now.Add(8*time.Hour).Unix(), c.ExpiresAt.Unix())

	id, err := c.AccountID()
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestNewSessionClaims_DefaultTTL(t *testing.T) {
	now := time.Now().UTC()

	c := jwtx.NewSessionClaims(1, "jdoe", "Jane Doe", jwtx.RoleTeacher, 0, "", "", now)
	require.Equal(t, now.Add(jwtx.DefaultSessionTTL).Unix(), c.ExpiresAt.Unix())
}

func TestClaimsAccountID(t *testing.T) {
	t.Run("non-numeric subject", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "jdoe"}}
		_, err := c.AccountID()
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("zero subject", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "0"}}
		_, err := c.AccountID()
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("negative subject", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "-5"}}
		_, err := c.AccountID()
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}

func TestClaimsValidate(t *testing.T) {
	valid := func() jwtx.Claims {
		return jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
			Username:         "jdoe",
			Role:             jwtx.RoleTeacher,
		}
	}

	t.Run("well-formed", func(t *testing.T) {
		c := valid()
		require.NoError(t, c.Validate())
	})

	t.Run("missing subject", func(t *testing.T) {
		c := valid()
		c.Subject = ""
		require.ErrorIs(t, c.Validate(), jwtx.ErrInvalidClaim)
	})

	t.Run("missing username", func(t *testing.T) {
		c := valid()
		c.Username = ""
		require.ErrorIs(t, c.Validate(), jwtx.ErrInvalidClaim)
	})

	t.Run("unknown role", func(t *testing.T) {
		c := valid()
		c.Role = "superuser"
		require.ErrorIs(t, c.Validate(), jwtx.ErrInvalidClaim)
	})

	t.Run("missing role", func(t *testing.T) {
		c := valid()
		c.Role = ""
		require.ErrorIs(t, c.Validate(), jwtx.ErrInvalidClaim)
	})
}
