package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	err := r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		TokenHash: inv.TokenHash,
		Status:    string(inv.Status),
		TenantID:  inv.TenantID,
		InvitedBy: inv.InvitedBy,
		CreatedAt: utc(inv.CreatedAt),
		ExpiresAt: utc(inv.ExpiresAt),
	})
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitation(ctx context.Context, tenantID, id string) (domain.Invitation, error) {
	row, err := r.q.GetInvitation(ctx, gen.GetInvitationParams{TenantID: tenantID, ID: id})
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) ListPendingInvitations(ctx context.Context, tenantID string, now time.Time) ([]domain.Invitation, error) {
	rows, err := r.q.ListPendingInvitations(ctx, gen.ListPendingInvitationsParams{
		TenantID:  tenantID,
		ExpiresAt: utc(now),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvitation(row))
	}
	return out, nil
}

func (r *invitationsRepo) CountPendingInvitations(ctx context.Context, tenantID string, now time.Time) (int, error) {
	n, err := r.q.CountPendingInvitations(ctx, gen.CountPendingInvitationsParams{
		TenantID:  tenantID,
		ExpiresAt: utc(now),
	})
	return int(n), err
}

func (r *invitationsRepo) HasPendingInvitation(ctx context.Context, tenantID, email string, now time.Time) (bool, error) {
	n, err := r.q.CountPendingInvitationsForEmail(ctx, gen.CountPendingInvitationsForEmailParams{
		TenantID:  tenantID,
		Email:     email,
		ExpiresAt: utc(now),
	})
	return n > 0, err
}

func (r *invitationsRepo) TransitionInvitation(ctx context.Context, id string, from, to domain.InvitationStatus, at time.Time) error {
	n, err := r.q.TransitionInvitation(ctx, gen.TransitionInvitationParams{
		ToStatus:   string(to),
		At:         utc(at),
		ID:         id,
		FromStatus: string(from),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *invitationsRepo) ExpireInvitations(ctx context.Context, now time.Time) (int64, error) {
	return r.q.ExpireInvitations(ctx, utc(now))
}
