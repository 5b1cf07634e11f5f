package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// Usage is a tenant's consumption against its plan.
type Usage struct {
	Plan               domain.Plan
	Notes              int
	Users              int
	PendingInvitations int
	Limits             domain.Limits
}

// SubscriptionService enforces plan quotas. Checks read counts and return
// without holding a lock, so two concurrent creates at the limit can both
// pass.
type SubscriptionService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *SubscriptionService) Usage(ctx context.Context, tenantID string) (Usage, error) {
	return usage(ctx, s.Store, tenantID, clock(s.Now))
}

func usage(ctx context.Context, st store.Store, tenantID string, now time.Time) (Usage, error) {
	tenant, err := st.Tenants().GetTenantByID(ctx, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		return Usage{}, ErrTenantNotFound
	}
	if err != nil {
		return Usage{}, err
	}

	notes, err := st.Notes().CountNotes(ctx, tenantID, "")
	if err != nil {
		return Usage{}, err
	}
	users, err := st.Users().CountUsers(ctx, tenantID)
	if err != nil {
		return Usage{}, err
	}
	pending, err := st.Invitations().CountPendingInvitations(ctx, tenantID, now)
	if err != nil {
		return Usage{}, err
	}

	return Usage{
		Plan:               tenant.Plan,
		Notes:              notes,
		Users:              users,
		PendingInvitations: pending,
		Limits:             tenant.Plan.Limits(),
	}, nil
}

// CanCreateNote returns ErrNoteLimitReached when the tenant is at its note quota.
func (s *SubscriptionService) CanCreateNote(ctx context.Context, tenantID string) error {
	u, err := s.Usage(ctx, tenantID)
	if err != nil {
		return err
	}
	if !u.Limits.AllowsNotes(u.Notes) {
		return ErrNoteLimitReached
	}
	return nil
}

// CanInviteUser counts pending invitations as seats, so a tenant cannot
// overshoot its user quota by inviting in bulk.
func (s *SubscriptionService) CanInviteUser(ctx context.Context, tenantID string) error {
	u, err := s.Usage(ctx, tenantID)
	if err != nil {
		return err
	}
	if !u.Limits.AllowsUsers(u.Users + u.PendingInvitations) {
		return ErrUserLimitReached
	}
	return nil
}

// Upgrade moves the caller's tenant to PRO. Upgrading an already PRO tenant
// is a no-op.
func (s *SubscriptionService) Upgrade(ctx context.Context, id domain.Identity, slug string) (domain.Tenant, error) {
	log := slogx.FromContext(ctx)

	// 1. Only admins of this very tenant
	if err := domain.CanPerformAction(id, domain.PermUpgradeSubscription, ""); err != nil {
		return domain.Tenant{}, err
	}
	if slug != id.TenantSlug {
		log.Warn("cross-tenant upgrade attempt",
			slog.String("tenant_id", id.TenantID),
			slog.String("target_slug", slug),
		)
		return domain.Tenant{}, ErrCrossTenant
	}

	// 2. Load and flip the plan
	tenant, err := s.Store.Tenants().GetTenantByID(ctx, id.TenantID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Tenant{}, ErrTenantNotFound
	}
	if err != nil {
		return domain.Tenant{}, err
	}
	if tenant.Plan == domain.PlanPro {
		return tenant, nil
	}

	now := clock(s.Now)
	if err := s.Store.Tenants().UpdateTenantPlan(ctx, tenant.ID, domain.PlanPro, now); err != nil {
		log.Error("failed to upgrade tenant", slog.String("tenant_id", tenant.ID), slog.Any("error", err))
		return domain.Tenant{}, err
	}
	tenant.Plan = domain.PlanPro
	tenant.UpdatedAt = now

	log.Info("tenant upgraded", slog.String("tenant_id", tenant.ID), slog.String("plan", string(tenant.Plan)))
	return tenant, nil
}
