package service

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
)

type UserService struct {
	Store store.Store
}

// List returns the members of the caller's tenant.
func (s *UserService) List(ctx context.Context, id domain.Identity) ([]domain.User, error) {
	if err := domain.CanPerformAction(id, domain.PermViewUsers, ""); err != nil {
		return nil, err
	}
	return s.Store.Users().ListUsers(ctx, id.TenantID)
}
