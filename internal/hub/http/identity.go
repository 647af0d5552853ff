package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/cfohub/cfohub/pkg/slogx"
)

type userCtxKey struct{}

// IdentityMiddleware resolves the verified token subject against the user
// store. It rejects tokens whose account no longer exists or has been
// deactivated, and publishes the account's current role; a token minted
// before a role change carries a stale role claim.
func IdentityMiddleware(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := httpx.UserIDFromContext(ctx)
			if !ok {
				hubsdk.ErrInvalidToken.WriteError(w)
				return
			}

			u, err := st.Users().GetUserByID(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					hubsdk.ErrInvalidToken.WriteError(w)
					return
				}
				slogx.FromContext(ctx).Error("identity lookup failed", "err", err)
				hubsdk.ErrServerError.WriteError(w)
				return
			}

			if !u.Active {
				hubsdk.ErrAccountInactive.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, userCtxKey{}, u)
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, u.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userFromContext returns the account loaded by IdentityMiddleware.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}
