package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultAccessTokenTTL is the lifetime of an access token. There is no
	// refresh flow, clients log in again once it runs out.
	DefaultAccessTokenTTL = 24 * time.Hour

	DefaultIssuer   = "notes-service"
	DefaultAudience = "notes-api"
)

// Claims are the access-token claims. The tenant fields are what every
// handler scopes its queries by, so a token without them is rejected.
type Claims struct {
	jwt.RegisteredClaims

	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenantId"`
	TenantSlug string `json:"tenantSlug"`
}

// Subject identifies who a token is minted for.
type Subject struct {
	UserID     string
	Email      string
	Role       string
	TenantID   string
	TenantSlug string
}

// NewAccessClaims builds claims for sub valid from now for ttl.
func NewAccessClaims(sub Subject, issuer string, audience []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID:     sub.UserID,
		Email:      sub.Email,
		Role:       sub.Role,
		TenantID:   sub.TenantID,
		TenantSlug: sub.TenantSlug,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer. An empty expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks that at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf against now, allowing leeway either way.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateIdentity makes sure the custom claims handlers depend on are set
// and agree with the registered subject.
func (c *Claims) ValidateIdentity() error {
	if c.UserID == "" || c.TenantID == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	if c.Subject != "" && c.Subject != c.UserID {
		return ErrInvalidClaim
	}
	return nil
}
