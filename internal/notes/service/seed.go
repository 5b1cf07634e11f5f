package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

var ErrAlreadySeeded = errors.New("store already has tenants")

// DefaultSeedPassword is used for demo accounts when none is configured.
const DefaultSeedPassword = "password"

type seedTenant struct {
	slug string
	name string
	plan domain.Plan
}

var demoTenants = []seedTenant{
	{slug: "acme", name: "Acme", plan: domain.PlanFree},
	{slug: "globex", name: "Globex", plan: domain.PlanPro},
}

// SeedService creates demo tenants on an empty store: acme on FREE and
// globex on PRO, each with admin@<slug>.test and user@<slug>.test.
type SeedService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Password string
	Now      func() time.Time
}

func (s *SeedService) Seed(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	// 1. Only an empty store is seeded
	empty, err := s.Store.Tenants().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return ErrAlreadySeeded
	}

	password := s.Password
	if password == "" {
		password = DefaultSeedPassword
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return err
	}

	// 2. Everything in one transaction
	now := clock(s.Now)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, t := range demoTenants {
			tenant := domain.Tenant{
				ID:        idx.NewAt(now).String(),
				Slug:      t.slug,
				Name:      t.name,
				Plan:      t.plan,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Tenants().CreateTenant(ctx, tenant); err != nil {
				return err
			}

			for _, u := range []struct {
				local string
				role  domain.Role
			}{
				{"admin", domain.RoleAdmin},
				{"user", domain.RoleMember},
			} {
				err := tx.Users().CreateUser(ctx, domain.User{
					ID:           idx.NewAt(now).String(),
					Email:        u.local + "@" + t.slug + ".test",
					PasswordHash: hash,
					Role:         u.role,
					TenantID:     tenant.ID,
					CreatedAt:    now,
					UpdatedAt:    now,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to seed demo data", slog.Any("error", err))
		return err
	}

	log.Info("seeded demo tenants", slog.Int("tenants", len(demoTenants)))
	return nil
}
