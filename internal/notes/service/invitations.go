package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

type InviteInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}

type AcceptInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// IssuedInvitation carries the raw token, which is never stored and only
// returned to the inviter once.
type IssuedInvitation struct {
	Invitation domain.Invitation
	Token      string
	AcceptURL  string
}

// InvitationDetails is what an invitee may see before accepting.
type InvitationDetails struct {
	Email      string
	Role       domain.Role
	TenantName string
	TenantSlug string
	ExpiresAt  time.Time
}

type InvitationService struct {
	Store         store.Store
	Subscriptions *SubscriptionService
	Auth          *AuthService
	Hasher        *cryptox.PasswordHasher

	// PublicURL, when set, is used to build an accept link.
	PublicURL string
	Now       func() time.Time
}

func (s *InvitationService) Invite(ctx context.Context, id domain.Identity, in InviteInput) (IssuedInvitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Permission and input
	if err := domain.CanPerformAction(id, domain.PermInviteUsers, ""); err != nil {
		return IssuedInvitation{}, err
	}
	in.Email = normalizeEmail(in.Email)
	in.Role = strings.ToUpper(strings.TrimSpace(in.Role))
	if err := validateInput(in); err != nil {
		return IssuedInvitation{}, err
	}
	role := domain.RoleMember
	if in.Role != "" {
		role = domain.Role(in.Role)
	}

	now := clock(s.Now)

	// 2. No existing member and no open invitation for the address
	_, err := s.Store.Users().GetUserByEmail(ctx, id.TenantID, in.Email)
	switch {
	case err == nil:
		return IssuedInvitation{}, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return IssuedInvitation{}, err
	}
	pending, err := s.Store.Invitations().HasPendingInvitation(ctx, id.TenantID, in.Email, now)
	if err != nil {
		return IssuedInvitation{}, err
	}
	if pending {
		return IssuedInvitation{}, ErrInvitationPending
	}

	// 3. Seat quota
	if err := s.Subscriptions.CanInviteUser(ctx, id.TenantID); err != nil {
		return IssuedInvitation{}, err
	}

	// 4. Mint the token and store only its fingerprint
	token, fingerprint, err := cryptox.NewOpaqueToken()
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return IssuedInvitation{}, err
	}

	inv := domain.Invitation{
		ID:        idx.NewAt(now).String(),
		Email:     in.Email,
		Role:      role,
		TokenHash: fingerprint,
		Status:    domain.InvitationPending,
		TenantID:  id.TenantID,
		InvitedBy: id.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InvitationTTL),
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation", slog.Any("error", err))
		return IssuedInvitation{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("role", string(inv.Role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return IssuedInvitation{Invitation: inv, Token: token, AcceptURL: s.acceptURL(token)}, nil
}

func (s *InvitationService) acceptURL(token string) string {
	if s.PublicURL == "" {
		return ""
	}
	return strings.TrimRight(s.PublicURL, "/") + "/users/invite/accept?token=" + url.QueryEscape(token)
}

// usable resolves a raw token to a PENDING, unexpired invitation. An expired
// invitation still marked PENDING is flipped to EXPIRED on the way out and
// returned alongside ErrInvitationExpired.
func (s *InvitationService) usable(ctx context.Context, st store.Store, token string, now time.Time) (domain.Invitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invitation{}, domain.Invalid("token is required")
	}

	inv, err := st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, ErrInvitationNotFound
	}
	if err != nil {
		return domain.Invitation{}, err
	}

	if inv.IsUsable(now) {
		return inv, nil
	}
	if inv.Status != domain.InvitationPending {
		return domain.Invitation{}, ErrInvitationNotUsable
	}
	markExpired(ctx, st, inv.ID, now)
	return inv, ErrInvitationExpired
}

// markExpired flips one PENDING invitation to EXPIRED. Losing the race to
// another transition is fine; anything else is logged.
func markExpired(ctx context.Context, st store.Store, invitationID string, now time.Time) {
	err := st.Invitations().TransitionInvitation(ctx, invitationID, domain.InvitationPending, domain.InvitationExpired, now)
	if err != nil && !errors.Is(err, store.ErrConflict) {
		slogx.FromContext(ctx).Warn("failed to mark invitation expired",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
	}
}

// Lookup returns the details of a usable invitation. It needs no
// authentication, the token is the credential.
func (s *InvitationService) Lookup(ctx context.Context, token string) (InvitationDetails, error) {
	inv, err := s.usable(ctx, s.Store, token, clock(s.Now))
	if err != nil {
		return InvitationDetails{}, err
	}

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, inv.TenantID)
	if err != nil {
		return InvitationDetails{}, err
	}
	return InvitationDetails{
		Email:      inv.Email,
		Role:       inv.Role,
		TenantName: tenant.Name,
		TenantSlug: tenant.Slug,
		ExpiresAt:  inv.ExpiresAt,
	}, nil
}

// Accept redeems a token: it creates the user and marks the invitation
// ACCEPTED in one transaction, then logs the new user in.
func (s *InvitationService) Accept(ctx context.Context, in AcceptInput) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Input
	if err := validateInput(in); err != nil {
		return Session{}, err
	}

	// 2. Hash outside the transaction, argon2 is slow
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	now := clock(s.Now)
	var (
		user   domain.User
		tenant domain.Tenant
	)

	// 3. Create user and flip the invitation atomically
	var expiredID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := s.usable(ctx, tx, in.Token, now)
		if err != nil {
			if errors.Is(err, ErrInvitationExpired) {
				expiredID = inv.ID
			}
			return err
		}

		tenant, err = tx.Tenants().GetTenantByID(ctx, inv.TenantID)
		if err != nil {
			return err
		}

		user = domain.User{
			ID:           idx.NewAt(now).String(),
			Email:        inv.Email,
			PasswordHash: hash,
			Role:         inv.Role,
			TenantID:     inv.TenantID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserExists
			}
			return err
		}

		err = tx.Invitations().TransitionInvitation(ctx, inv.ID, domain.InvitationPending, domain.InvitationAccepted, now)
		if errors.Is(err, store.ErrConflict) {
			return ErrInvitationAccepted
		}
		return err
	})
	if expiredID != "" {
		// The rollback discarded the EXPIRED flip, redo it outside the tx.
		markExpired(ctx, s.Store, expiredID, now)
	}
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			log.Error("failed to accept invitation", slog.Any("error", err))
		}
		return Session{}, err
	}

	log.Info("invitation accepted",
		slog.String("user_id", user.ID),
		slog.String("tenant_id", tenant.ID),
	)
	return s.Auth.IssueSession(user, tenant)
}

func (s *InvitationService) ListPending(ctx context.Context, id domain.Identity) ([]domain.Invitation, error) {
	if err := domain.CanPerformAction(id, domain.PermManageInvitations, ""); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListPendingInvitations(ctx, id.TenantID, clock(s.Now))
}

// Cancel withdraws a PENDING invitation in the caller's tenant.
func (s *InvitationService) Cancel(ctx context.Context, id domain.Identity, invitationID string) error {
	log := slogx.FromContext(ctx)

	if err := domain.CanPerformAction(id, domain.PermManageInvitations, ""); err != nil {
		return err
	}
	if !idx.Valid(invitationID) {
		return ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitation(ctx, id.TenantID, invitationID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvitationNotFound
	}
	if err != nil {
		return err
	}
	if !domain.CanTransition(inv.Status, domain.InvitationCancelled) {
		return domain.Invalidf("Cannot cancel an invitation that is %s", strings.ToLower(string(inv.Status)))
	}

	err = s.Store.Invitations().TransitionInvitation(ctx, inv.ID, inv.Status, domain.InvitationCancelled, clock(s.Now))
	if errors.Is(err, store.ErrConflict) {
		return domain.Conflict("Invitation changed while cancelling")
	}
	if err != nil {
		log.Error("failed to cancel invitation", slog.String("invitation_id", inv.ID), slog.Any("error", err))
		return err
	}

	log.Info("invitation cancelled", slog.String("invitation_id", inv.ID))
	return nil
}
