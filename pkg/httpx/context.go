package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the token subject (user id) set by AuthnMiddleware.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyClaims holds the full jwtx.Claims.
	CtxKeyClaims ctxKey = "claims"
	// CtxKeyRole holds the authorization role resolved from the credential
	// store, not the (possibly stale) role claim inside the token.
	CtxKeyRole ctxKey = "role"
)

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
