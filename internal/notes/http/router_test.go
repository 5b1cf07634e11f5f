package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	notesapi "github.com/aussiebroadwan/notes/internal/notes/http"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse"

var testSecret = []byte(strings.Repeat("s", 32))

func generousLimits() httpx.RateLimitProfiles {
	open := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	return httpx.RateLimitProfiles{Strict: open, Moderate: open, Lenient: open, Public: open}
}

// newTestServer serves a freshly seeded store through the full router.
func newTestServer(t *testing.T, limits httpx.RateLimitProfiles) *notesdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "notes.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)
	verifier := jwtx.NewHS256Verifier(testSecret, jwtx.DefaultIssuer, []string{jwtx.DefaultAudience})
	hasher := cryptox.NewPasswordHasher("pepper")

	auth := &service.AuthService{
		Store:    st,
		Hasher:   hasher,
		Signer:   signer,
		Issuer:   jwtx.DefaultIssuer,
		Audience: []string{jwtx.DefaultAudience},
	}
	subs := &service.SubscriptionService{Store: st}

	r := notesapi.NewRouter(verifier, limits, "test", st, slogx.Discard())
	r.AuthService = auth
	r.SubscriptionService = subs
	r.NoteService = &service.NoteService{Store: st, Subscriptions: subs}
	r.TenantService = &service.TenantService{Store: st, Subscriptions: subs}
	r.UserService = &service.UserService{Store: st}
	r.InvitationService = &service.InvitationService{
		Store:         st,
		Subscriptions: subs,
		Auth:          auth,
		Hasher:        hasher,
		PublicURL:     "https://notes.example",
	}
	r.ApplyRoutes()

	seed := &service.SeedService{Store: st, Hasher: hasher, Password: testPassword}
	require.NoError(t, seed.Seed(context.Background()))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return notesdk.NewClient(srv.URL)
}

func login(t *testing.T, c *notesdk.Client, email string) *notesdk.Session {
	t.Helper()
	sess, err := c.Login(context.Background(), notesdk.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	return sess
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, notesdk.StatusCode(err), err.Error())
}

func TestAcmeGlobexScenario(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())

	acmeAdmin := login(t, c, "admin@acme.test")
	acmeUser := login(t, c, "user@acme.test")
	globexUser := login(t, c, "user@globex.test")

	require.Equal(t, "acme", acmeAdmin.Auth.Tenant.Slug)
	require.Equal(t, "FREE", acmeAdmin.Auth.Tenant.Plan)
	require.Equal(t, "ADMIN", acmeAdmin.Auth.User.Role)
	require.Equal(t, "MEMBER", acmeUser.Auth.User.Role)

	// FREE plan allows three notes
	var acmeNotes []*notesdk.Note
	for i := range 3 {
		n, err := acmeUser.CreateNote(ctx, notesdk.NoteRequest{Title: "note " + string(rune('a'+i))})
		require.NoError(t, err)
		require.Equal(t, acmeUser.Auth.User.Email, n.AuthorEmail)
		acmeNotes = append(acmeNotes, n)
	}
	_, err := acmeUser.CreateNote(ctx, notesdk.NoteRequest{Title: "one too many"})
	requireStatus(t, err, http.StatusForbidden)
	require.Contains(t, err.Error(), "Upgrade to Pro")

	// Tenants cannot see each other's notes
	globexNote, err := globexUser.CreateNote(ctx, notesdk.NoteRequest{Title: "globex secret"})
	require.NoError(t, err)
	_, err = acmeAdmin.GetNote(ctx, globexNote.ID)
	requireStatus(t, err, http.StatusNotFound)
	err = acmeAdmin.DeleteNote(ctx, globexNote.ID)
	requireStatus(t, err, http.StatusNotFound)

	list, err := acmeAdmin.ListNotes(ctx, notesdk.ListNotesParams{})
	require.NoError(t, err)
	require.Len(t, list.Notes, 3)
	require.Equal(t, 3, list.Pagination.Total)
	for _, n := range list.Notes {
		require.Equal(t, acmeAdmin.Auth.Tenant.ID, n.TenantID)
	}

	// Only an admin of the tenant itself may upgrade
	_, err = acmeUser.Upgrade(ctx, "acme")
	requireStatus(t, err, http.StatusForbidden)
	_, err = acmeAdmin.Upgrade(ctx, "globex")
	requireStatus(t, err, http.StatusForbidden)

	up, err := acmeAdmin.Upgrade(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "PRO", up.Tenant.Plan)

	_, err = acmeUser.CreateNote(ctx, notesdk.NoteRequest{Title: "now allowed"})
	require.NoError(t, err)

	tenant, err := acmeUser.Tenant(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, 4, tenant.Usage.Notes)
	require.Equal(t, -1, tenant.Usage.Limits.MaxNotes)

	_, err = acmeUser.Tenant(ctx, "globex")
	requireStatus(t, err, http.StatusNotFound)

	// Members only modify their own notes; admins modify any
	adminNote, err := acmeAdmin.CreateNote(ctx, notesdk.NoteRequest{Title: "admin note"})
	require.NoError(t, err)
	_, err = acmeUser.UpdateNote(ctx, adminNote.ID, notesdk.NoteRequest{Title: "hijack"})
	requireStatus(t, err, http.StatusForbidden)
	err = acmeUser.DeleteNote(ctx, adminNote.ID)
	requireStatus(t, err, http.StatusForbidden)

	updated, err := acmeAdmin.UpdateNote(ctx, acmeNotes[0].ID, notesdk.NoteRequest{Title: "edited", Content: "by admin"})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Title)
	require.NoError(t, acmeAdmin.DeleteNote(ctx, acmeNotes[1].ID))

	_, err = acmeUser.GetNote(ctx, acmeNotes[1].ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestAuthenticationRequired(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())

	_, err := c.NewSession("").ListNotes(ctx, notesdk.ListNotesParams{})
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = c.NewSession("not-a-jwt").Me(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = c.Login(ctx, notesdk.LoginRequest{Email: "admin@acme.test", Password: "wrong"})
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = c.Login(ctx, notesdk.LoginRequest{Email: "not-an-email", Password: "x"})
	requireStatus(t, err, http.StatusBadRequest)

	me, err := login(t, c, "user@globex.test").Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "globex", me.Tenant.Slug)
	require.Equal(t, "PRO", me.Tenant.Plan)
}

func TestAdminOnlyRoutes(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())
	member := login(t, c, "user@acme.test")
	admin := login(t, c, "admin@acme.test")

	_, err := member.ListUsers(ctx)
	requireStatus(t, err, http.StatusForbidden)
	_, err = member.Invite(ctx, notesdk.InviteRequest{Email: "x@acme.test"})
	requireStatus(t, err, http.StatusForbidden)
	_, err = member.ListInvitations(ctx)
	requireStatus(t, err, http.StatusForbidden)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestInvitationFlow(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())
	admin := login(t, c, "admin@acme.test")

	issued, err := admin.Invite(ctx, notesdk.InviteRequest{Email: "New@Acme.test"})
	require.NoError(t, err)
	require.Equal(t, "new@acme.test", issued.Invitation.Email)
	require.Equal(t, "MEMBER", issued.Invitation.Role)
	require.Equal(t, "PENDING", issued.Invitation.Status)
	require.NotEmpty(t, issued.Token)
	require.True(t, strings.HasPrefix(issued.AcceptURL, "https://notes.example/"))

	_, err = admin.Invite(ctx, notesdk.InviteRequest{Email: "new@acme.test"})
	requireStatus(t, err, http.StatusConflict)

	pending, err := admin.ListInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	details, err := c.LookupInvitation(ctx, issued.Token)
	require.NoError(t, err)
	require.Equal(t, "acme", details.TenantSlug)

	_, err = c.LookupInvitation(ctx, "unknown")
	requireStatus(t, err, http.StatusNotFound)

	_, err = c.AcceptInvitation(ctx, notesdk.AcceptInvitationRequest{Token: issued.Token, Password: "short"})
	requireStatus(t, err, http.StatusBadRequest)

	sess, err := c.AcceptInvitation(ctx, notesdk.AcceptInvitationRequest{Token: issued.Token, Password: "a-long-password"})
	require.NoError(t, err)
	require.Equal(t, "new@acme.test", sess.Auth.User.Email)
	require.Equal(t, "acme", sess.Auth.Tenant.Slug)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "MEMBER", me.User.Role)

	// A used token stays used
	_, err = c.AcceptInvitation(ctx, notesdk.AcceptInvitationRequest{Token: issued.Token, Password: "a-long-password"})
	requireStatus(t, err, http.StatusBadRequest)

	pending, err = admin.ListInvitations(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	// Cancel
	other, err := admin.Invite(ctx, notesdk.InviteRequest{Email: "other@acme.test", Role: "admin"})
	require.NoError(t, err)
	require.Equal(t, "ADMIN", other.Invitation.Role)
	require.NoError(t, admin.CancelInvitation(ctx, other.Invitation.ID))
	err = admin.CancelInvitation(ctx, other.Invitation.ID)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = c.LookupInvitation(ctx, other.Token)
	requireStatus(t, err, http.StatusBadRequest)

	globexAdmin := login(t, c, "admin@globex.test")
	err = globexAdmin.CancelInvitation(ctx, other.Invitation.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestListNotesQuery(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())
	sess := login(t, c, "user@globex.test")

	for _, title := range []string{"Banana", "apple", "Cherry pie"} {
		_, err := sess.CreateNote(ctx, notesdk.NoteRequest{Title: title, Content: "fruit"})
		require.NoError(t, err)
	}

	list, err := sess.ListNotes(ctx, notesdk.ListNotesParams{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, list.Notes, 3)
	require.Equal(t, "apple", list.Notes[0].Title)
	require.Equal(t, "Cherry pie", list.Notes[2].Title)

	list, err = sess.ListNotes(ctx, notesdk.ListNotesParams{Search: "PIE"})
	require.NoError(t, err)
	require.Len(t, list.Notes, 1)

	list, err = sess.ListNotes(ctx, notesdk.ListNotesParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list.Notes, 1)
	require.Equal(t, 2, list.Pagination.TotalPages)
	require.True(t, list.Pagination.HasPrev)
	require.False(t, list.Pagination.HasNext)

	_, err = sess.ListNotes(ctx, notesdk.ListNotesParams{SortBy: "author"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestMalformedRequests(t *testing.T) {
	c := newTestServer(t, generousLimits())
	sess := login(t, c, "admin@acme.test")

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/notes", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+sess.Token())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err = http.NewRequest(http.MethodGet, c.BaseURL+"/notes?page=abc", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+sess.Token())
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(slogx.RequestIDHeader))
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	c := newTestServer(t, generousLimits())
	ctx := context.Background()
	sess := login(t, c, "admin@acme.test")

	_, err := sess.GetNote(ctx, "not-a-ulid")
	requireStatus(t, err, http.StatusNotFound)
	_, err = sess.UpdateNote(ctx, "not-a-ulid", notesdk.NoteRequest{Title: "x"})
	requireStatus(t, err, http.StatusNotFound)
	requireStatus(t, sess.DeleteNote(ctx, "not-a-ulid"), http.StatusNotFound)
	requireStatus(t, sess.CancelInvitation(ctx, "not-a-ulid"), http.StatusNotFound)
}

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t, generousLimits())

	live, err := c.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestLoginRateLimited(t *testing.T) {
	ctx := context.Background()
	limits := generousLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Hour, Burst: 2}
	c := newTestServer(t, limits)

	for range 2 {
		_, err := c.Login(ctx, notesdk.LoginRequest{Email: "admin@acme.test", Password: "wrong"})
		requireStatus(t, err, http.StatusUnauthorized)
	}
	_, err := c.Login(ctx, notesdk.LoginRequest{Email: "admin@acme.test", Password: testPassword})
	requireStatus(t, err, http.StatusTooManyRequests)

	// Buckets are per email, so another account is unaffected
	login(t, c, "user@acme.test")
}
