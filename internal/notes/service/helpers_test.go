package service_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse"

var testSecret = []byte(strings.Repeat("k", 32))

// fakeClock is a settable time source shared by every service in an env.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type env struct {
	store    *sqlite.Store
	clock    *fakeClock
	hasher   *cryptox.PasswordHasher
	verifier jwtx.Verifier

	auth          *service.AuthService
	subscriptions *service.SubscriptionService
	notes         *service.NoteService
	invitations   *service.InvitationService
	users         *service.UserService
	tenants       *service.TenantService
	seed          *service.SeedService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "notes.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	clk := &fakeClock{t: time.Now().UTC()}
	hasher := cryptox.NewPasswordHasher("pepper")

	e := &env{
		store:    st,
		clock:    clk,
		hasher:   hasher,
		verifier: jwtx.NewHS256Verifier(testSecret, jwtx.DefaultIssuer, []string{jwtx.DefaultAudience}),
	}
	e.auth = &service.AuthService{
		Store:    st,
		Hasher:   hasher,
		Signer:   signer,
		Issuer:   jwtx.DefaultIssuer,
		Audience: []string{jwtx.DefaultAudience},
		Now:      clk.Now,
	}
	e.subscriptions = &service.SubscriptionService{Store: st, Now: clk.Now}
	e.notes = &service.NoteService{Store: st, Subscriptions: e.subscriptions, Now: clk.Now}
	e.invitations = &service.InvitationService{
		Store:         st,
		Subscriptions: e.subscriptions,
		Auth:          e.auth,
		Hasher:        hasher,
		PublicURL:     "https://notes.example",
		Now:           clk.Now,
	}
	e.users = &service.UserService{Store: st}
	e.tenants = &service.TenantService{Store: st, Subscriptions: e.subscriptions}
	e.seed = &service.SeedService{Store: st, Hasher: hasher, Password: testPassword, Now: clk.Now}

	require.NoError(t, e.seed.Seed(context.Background()))
	return e
}

// login returns the identity of a seeded account, e.g. "admin@acme.test".
func (e *env) login(t *testing.T, email string) domain.Identity {
	t.Helper()

	sess, err := e.auth.Login(context.Background(), service.LoginInput{Email: email, Password: testPassword})
	require.NoError(t, err)
	return domain.Identity{
		UserID:     sess.User.ID,
		Email:      sess.User.Email,
		Role:       sess.User.Role,
		TenantID:   sess.Tenant.ID,
		TenantSlug: sess.Tenant.Slug,
	}
}

func requireKind(t *testing.T, err error, kind domain.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind.String(), domain.KindOf(err).String(), err.Error())
}
