package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "notes-service"}}

	require.NoError(t, c.ValidateIssuer("notes-service"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"notes-api", "admin"}}}

	require.NoError(t, c.ValidateAudience([]string{"notes-api"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "admin"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"billing"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}}
		require.NoError(t, c.ValidateExpiry(now, 0))
	})

	t.Run("expired token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}}
		require.ErrorIs(t, c.ValidateExpiry(now, 0), jwtx.ErrExpired)
	})

	t.Run("expired but within leeway", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second))}}
		require.NoError(t, c.ValidateExpiry(now, 30*time.Second))
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{NotBefore: jwt.NewNumericDate(now.Add(time.Minute))}}
		require.ErrorIs(t, c.ValidateExpiry(now, 0), jwtx.ErrNotYetValid)
	})
}

func TestValidateIdentity(t *testing.T) {
	good := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		UserID:           "u1",
		Role:             "ADMIN",
		TenantID:         "t1",
	}
	require.NoError(t, good.ValidateIdentity())

	noTenant := good
	noTenant.TenantID = ""
	require.ErrorIs(t, noTenant.ValidateIdentity(), jwtx.ErrInvalidClaim)

	mismatch := good
	mismatch.Subject = "u2"
	require.ErrorIs(t, mismatch.ValidateIdentity(), jwtx.ErrInvalidClaim)
}

func TestNewAccessClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	c := jwtx.NewAccessClaims(jwtx.Subject{
		UserID:     "u1",
		Email:      "admin@acme.test",
		Role:       "ADMIN",
		TenantID:   "t1",
		TenantSlug: "acme",
	}, "iss", []string{"aud"}, jwtx.DefaultAccessTokenTTL, now)

	require.Equal(t, "u1", c.Subject)
	require.Equal(t, "acme", c.TenantSlug)
	require.Equal(t, now.Add(24*time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
}
