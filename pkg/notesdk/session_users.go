package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// The calls below are admin only.

func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	return do[[]User](ctx, s.client, http.MethodGet, "/users", s.token, nil)
}

func (s *Session) Invite(ctx context.Context, req InviteRequest) (*InviteResponse, error) {
	inv, err := do[InviteResponse](ctx, s.client, http.MethodPost, "/users/invite", s.token, req)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Session) ListInvitations(ctx context.Context) ([]Invitation, error) {
	return do[[]Invitation](ctx, s.client, http.MethodGet, "/users/invitations", s.token, nil)
}

func (s *Session) CancelInvitation(ctx context.Context, id string) error {
	_, err := do[MessageResponse](ctx, s.client, http.MethodDelete, "/users/invitations/"+url.PathEscape(id), s.token, nil)
	return err
}
