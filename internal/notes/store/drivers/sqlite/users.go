package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		TenantID:     u.TenantID,
		CreatedAt:    utc(u.CreatedAt),
		UpdatedAt:    utc(u.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, tenantID, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, gen.GetUserByIDParams{TenantID: tenantID, ID: id})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, tenantID, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, gen.GetUserByEmailParams{TenantID: tenantID, Email: email})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) FindUsersByEmail(ctx context.Context, email string) ([]domain.User, error) {
	rows, err := r.q.FindUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows), nil
}

func (r *usersRepo) ListUsers(ctx context.Context, tenantID string) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows), nil
}

func (r *usersRepo) CountUsers(ctx context.Context, tenantID string) (int, error) {
	n, err := r.q.CountUsers(ctx, tenantID)
	return int(n), err
}

func mapUsers(rows []gen.User) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out
}
