package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and returns its claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier checks tokens produced by HS256Signer.
type HS256Verifier struct {
	secret   []byte
	issuer   string
	audience []string
	leeway   time.Duration

	now func() time.Time
}

// NewHS256Verifier returns a verifier that also enforces issuer and audience.
func NewHS256Verifier(secret []byte, issuer string, audience []string) *HS256Verifier {
	return &HS256Verifier{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		leeway:   5 * time.Second,
		now:      time.Now,
	}
}

// Verify parses tokenStr, checks the signature then every claim requirement.
// Time based checks are done here rather than by the jwt parser so the error
// values stay ours.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.now().UTC(), v.leeway); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIdentity(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
