package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// Session is the result of a successful login or invitation acceptance.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
	Tenant    domain.Tenant
}

type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	TenantSlug string `json:"tenantSlug"`
}

type AuthService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TokenTTL time.Duration
	Now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// Login checks credentials and issues an access token. Emails are unique per
// tenant only, so when the same email and password match accounts in more
// than one tenant the caller must name the tenant.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	log := slogx.FromContext(ctx)
	in.Email = normalizeEmail(in.Email)

	// 1. Validate input
	if err := validateInput(in); err != nil {
		return Session{}, err
	}

	// 2. Collect candidate accounts
	candidates, err := s.candidates(ctx, in.Email, in.TenantSlug)
	if err != nil {
		return Session{}, err
	}

	// 3. Verify the password against each candidate. Unknown emails still
	// pay for one verification.
	if len(candidates) == 0 {
		if hash := s.missingUserHash(ctx); hash != "" {
			_ = s.Hasher.Verify(in.Password, hash)
		}
	}
	var matched []domain.User
	for _, u := range candidates {
		err := s.Hasher.Verify(in.Password, u.PasswordHash)
		switch {
		case err == nil:
			matched = append(matched, u)
		case errors.Is(err, cryptox.ErrPasswordMismatch):
		default:
			log.Error("failed to verify password hash", slog.String("user_id", u.ID), slog.Any("error", err))
			return Session{}, err
		}
	}

	switch len(matched) {
	case 0:
		log.Info("login failed", slog.String("email", in.Email))
		return Session{}, ErrInvalidCredentials
	case 1:
	default:
		return Session{}, ErrTenantSlugRequired
	}

	// 4. Load the tenant and mint the token
	user := matched[0]
	tenant, err := s.Store.Tenants().GetTenantByID(ctx, user.TenantID)
	if err != nil {
		log.Error("failed to load tenant for user", slog.String("user_id", user.ID), slog.Any("error", err))
		return Session{}, err
	}

	sess, err := s.IssueSession(user, tenant)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("login succeeded",
		slog.String("user_id", user.ID),
		slog.String("tenant_id", tenant.ID),
	)
	return sess, nil
}

// missingUserHash returns a placeholder hash made once with the live
// parameters. Logins for unknown emails verify against it.
func (s *AuthService) missingUserHash(ctx context.Context) string {
	s.dummyOnce.Do(func() {
		hash, err := s.Hasher.Hash("not a real password")
		if err != nil {
			slogx.FromContext(ctx).Error("failed to hash placeholder password", slog.Any("error", err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *AuthService) candidates(ctx context.Context, email, tenantSlug string) ([]domain.User, error) {
	if tenantSlug == "" {
		return s.Store.Users().FindUsersByEmail(ctx, email)
	}

	tenant, err := s.Store.Tenants().GetTenantBySlug(ctx, tenantSlug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, tenant.ID, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []domain.User{u}, nil
}

// IssueSession signs an access token for user in tenant.
func (s *AuthService) IssueSession(user domain.User, tenant domain.Tenant) (Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(jwtx.Subject{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		TenantID:   tenant.ID,
		TenantSlug: tenant.Slug,
	}, s.Issuer, s.Audience, ttl, clock(s.Now))

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
		Tenant:    tenant,
	}, nil
}

// Me reloads the caller's user and tenant. A token for a user that no longer
// exists is treated as unauthenticated.
func (s *AuthService) Me(ctx context.Context, id domain.Identity) (domain.User, domain.Tenant, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id.TenantID, id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.Tenant{}, domain.Unauthenticated("Account no longer exists")
	}
	if err != nil {
		return domain.User{}, domain.Tenant{}, err
	}

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, id.TenantID)
	if err != nil {
		return domain.User{}, domain.Tenant{}, err
	}
	return user, tenant, nil
}
