package notesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Session is an authenticated handle. Tokens are not refreshed, log in
// again once ExpiresAt has passed.
type Session struct {
	client *Client
	token  string

	// Auth is the login or acceptance response that created the session,
	// zero for sessions built with Client.NewSession.
	Auth AuthResponse
}

func newSession(c *Client, auth AuthResponse) *Session {
	return &Session{client: c, token: auth.Token, Auth: auth}
}

func (s *Session) Token() string { return s.token }

func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	me, err := do[MeResponse](ctx, s.client, http.MethodGet, "/auth/me", s.token, nil)
	if err != nil {
		return nil, err
	}
	return &me, nil
}

func (s *Session) CreateNote(ctx context.Context, req NoteRequest) (*Note, error) {
	n, err := do[Note](ctx, s.client, http.MethodPost, "/notes", s.token, req)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) GetNote(ctx context.Context, id string) (*Note, error) {
	n, err := do[Note](ctx, s.client, http.MethodGet, "/notes/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) UpdateNote(ctx context.Context, id string, req NoteRequest) (*Note, error) {
	n, err := do[Note](ctx, s.client, http.MethodPut, "/notes/"+url.PathEscape(id), s.token, req)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) DeleteNote(ctx context.Context, id string) error {
	_, err := do[MessageResponse](ctx, s.client, http.MethodDelete, "/notes/"+url.PathEscape(id), s.token, nil)
	return err
}

func (s *Session) ListNotes(ctx context.Context, p ListNotesParams) (*NoteListResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	path := "/notes"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	list, err := do[NoteListResponse](ctx, s.client, http.MethodGet, path, s.token, nil)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *Session) Tenant(ctx context.Context, slug string) (*TenantResponse, error) {
	t, err := do[TenantResponse](ctx, s.client, http.MethodGet, "/tenants/"+url.PathEscape(slug), s.token, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Upgrade moves the tenant to the PRO plan. Admin only.
func (s *Session) Upgrade(ctx context.Context, slug string) (*UpgradeResponse, error) {
	u, err := do[UpgradeResponse](ctx, s.client, http.MethodPost, "/tenants/"+url.PathEscape(slug)+"/upgrade", s.token, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
