package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type tenantsRepo struct {
	q *gen.Queries
}

func (r *tenantsRepo) CreateTenant(ctx context.Context, t domain.Tenant) error {
	err := r.q.CreateTenant(ctx, gen.CreateTenantParams{
		ID:        t.ID,
		Slug:      t.Slug,
		Name:      t.Name,
		Plan:      string(t.Plan),
		CreatedAt: utc(t.CreatedAt),
		UpdatedAt: utc(t.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *tenantsRepo) GetTenantByID(ctx context.Context, id string) (domain.Tenant, error) {
	row, err := r.q.GetTenantByID(ctx, id)
	if err != nil {
		return domain.Tenant{}, mapNotFound(err)
	}
	return mapTenant(row), nil
}

func (r *tenantsRepo) GetTenantBySlug(ctx context.Context, slug string) (domain.Tenant, error) {
	row, err := r.q.GetTenantBySlug(ctx, slug)
	if err != nil {
		return domain.Tenant{}, mapNotFound(err)
	}
	return mapTenant(row), nil
}

func (r *tenantsRepo) UpdateTenantPlan(ctx context.Context, id string, plan domain.Plan, now time.Time) error {
	return notFoundIfNone(r.q.UpdateTenantPlan(ctx, gen.UpdateTenantPlanParams{
		Plan:      string(plan),
		UpdatedAt: utc(now),
		ID:        id,
	}))
}

func (r *tenantsRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.q.CountTenants(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

var _ store.Tenants = (*tenantsRepo)(nil)
