package notesdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the public endpoints of the notes service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	auth, err := do[AuthResponse](ctx, c, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// LookupInvitation shows what an invitation token grants without redeeming it.
func (c *Client) LookupInvitation(ctx context.Context, token string) (*InvitationDetails, error) {
	d, err := do[InvitationDetails](ctx, c, http.MethodGet, "/users/invite/accept?token="+url.QueryEscape(token), "", nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// AcceptInvitation redeems a token, creating the account, and returns a
// Session for the new user.
func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*Session, error) {
	auth, err := do[AuthResponse](ctx, c, http.MethodPost, "/users/invite/accept", "", req)
	if err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	h, err := do[HealthResponse](ctx, c, http.MethodGet, "/livez", "", nil)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Readyz returns the health report. On 503 the report is returned alongside
// the *APIError.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	h, err := do[HealthResponse](ctx, c, http.MethodGet, "/readyz", "", nil)
	return &h, err
}

// NewSession wraps an existing token.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
