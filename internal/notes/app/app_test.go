package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "NOTES_ISSUER", "NOTES_AUDIENCE", "SEED_DEMO_DATA", "HOUSEKEEPING_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "notes-service", cfg.Issuer)
	require.Equal(t, []string{"notes-api"}, cfg.Audience)
	require.False(t, cfg.SeedDemoData)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, 5, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NOTES_AUDIENCE", "a, b")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")

	cfg := LoadConfig()
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, []string{"a", "b"}, cfg.Audience)
	require.True(t, cfg.SeedDemoData)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 50, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestLoadJWTSecret(t *testing.T) {
	_, err := loadJWTSecret(Config{JWTSecret: "short"}, slogx.Discard())
	require.ErrorIs(t, err, errShortSecret)

	path := filepath.Join(t.TempDir(), "jwt")
	first, err := loadJWTSecret(Config{JWTSecretFile: path}, slogx.Discard())
	require.NoError(t, err)
	second, err := loadJWTSecret(Config{JWTSecretFile: path}, slogx.Discard())
	require.NoError(t, err)
	require.Equal(t, first, second)

	random, err := loadJWTSecret(Config{}, slogx.Discard())
	require.NoError(t, err)
	require.Len(t, random, jwtSecretSize)
}

func TestNewSeedsAndServes(t *testing.T) {
	dir := t.TempDir()
	cfg := LoadConfig()
	cfg.DatabaseFile = filepath.Join(dir, "notes.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.SeedDemoData = true
	cfg.LogFormat = "text"

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Seeding a second time is a no-op
	require.NoError(t, a.seed(t.Context()))
}
