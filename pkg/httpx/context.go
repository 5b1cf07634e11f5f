package httpx

import (
	"context"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyClaims ctxKey = "claims"
	ctxKeyUserID ctxKey = "user_id"
)

func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, c.UserID)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the verified claims placed by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}
