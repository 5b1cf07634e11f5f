package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// identityFromContext converts the verified claims into the caller identity
// passed to services.
func identityFromContext(ctx context.Context) (domain.Identity, bool) {
	c, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		return domain.Identity{}, false
	}
	return domain.Identity{
		UserID:     c.UserID,
		Email:      c.Email,
		Role:       domain.Role(c.Role),
		TenantID:   c.TenantID,
		TenantSlug: c.TenantSlug,
	}, true
}

// RequirePermission rejects callers whose role lacks perm. It must run after
// httpx.AuthnMiddleware.
func RequirePermission(perm domain.Permission) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identityFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !domain.HasPermission(id.Role, perm) {
				slogx.FromContext(r.Context()).Warn("permission denied",
					slog.String("permission", perm.String()),
					slog.String("role", string(id.Role)),
				)
				httpx.WriteError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// withIdentity adapts a handler that needs the caller identity.
func withIdentity(w http.ResponseWriter, r *http.Request, fn func(domain.Identity)) {
	id, ok := identityFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	fn(id)
}

// writeServiceError maps err to its status and public message. Internal
// failures are logged and masked.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
	}
	httpx.WriteError(w, kind.HTTPStatus(), domain.PublicMessage(err))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
