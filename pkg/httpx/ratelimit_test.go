package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("first forwarded hop wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("x-real-ip fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestJSONFieldKeyExtractorRestoresBody(t *testing.T) {
	body := `{"email":" Alice@Example.COM ","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

	key := httpx.JSONFieldKeyExtractor("email")(req)
	require.Equal(t, "alice@example.com", key)

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(rest))
}

func TestJSONFieldKeyExtractorIgnoresBadBodies(t *testing.T) {
	for _, body := range []string{"", "not json", `{"email":42}`, `[]`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req), body)
	}
}

func TestCompositeKeyExtractorSkipsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?token=abc", nil)
	req.RemoteAddr = "10.0.0.1:1"

	token := func(r *http.Request) string { return r.URL.Query().Get("token") }
	ex := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.UserIDKeyExtractor, token)
	require.Equal(t, "10.0.0.1:abc", ex(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	h := httpx.RateLimitByIP(cfg)(okHandler())

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for range 3 {
		require.Equal(t, http.StatusOK, do("10.0.0.1:1").Code)
	}

	rec := do("10.0.0.1:1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	require.Contains(t, rec.Body.String(), `"success":false`)

	// Separate bucket per IP.
	require.Equal(t, http.StatusOK, do("10.0.0.2:1").Code)
}

func TestRateLimitMiddlewareEmptyKeyBypasses(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1}
	h := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler())

	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "10")
	t.Setenv("RATELIMIT_TEST_BURST", "-1")

	cfg := httpx.ParseRateLimitFromEnv("TEST", def)
	require.Equal(t, 50, cfg.RequestsPerWindow)
	require.Equal(t, 10*time.Second, cfg.Window)
	require.Equal(t, 5, cfg.Burst)
}
