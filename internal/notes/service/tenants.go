package service

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
)

type TenantOverview struct {
	Tenant domain.Tenant
	Usage  Usage
}

type TenantService struct {
	Store         store.Store
	Subscriptions *SubscriptionService
}

// Get returns the caller's tenant and its usage. Any other slug reads as not
// found so tenant existence does not leak across organizations.
func (s *TenantService) Get(ctx context.Context, id domain.Identity, slug string) (TenantOverview, error) {
	if err := domain.CanPerformAction(id, domain.PermViewTenant, ""); err != nil {
		return TenantOverview{}, err
	}
	if slug != id.TenantSlug {
		return TenantOverview{}, ErrTenantNotFound
	}

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, id.TenantID)
	if err != nil {
		return TenantOverview{}, mapMissing(err, ErrTenantNotFound)
	}
	usage, err := s.Subscriptions.Usage(ctx, tenant.ID)
	if err != nil {
		return TenantOverview{}, err
	}
	return TenantOverview{Tenant: tenant, Usage: usage}, nil
}
