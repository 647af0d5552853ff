package httpx

import (
	"net/http"
	"strings"
)

// RequireRole narrows access to callers whose resolved role matches exactly.
// Run it after whatever middleware sets CtxKeyRole from the credential store.
func RequireRole(role string) Middleware {
	return RequireAnyRole(role)
}

// RequireAnyRole narrows access to callers holding one of the given roles.
func RequireAnyRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := roleFromCtx(r.Context())
			if _, ok := want[have]; !ok {
				writeRoleError(w, roles...)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeRoleError(w http.ResponseWriter, required ...string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+strings.Join(required, " ")+`"`)
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"error":             "forbidden",
		"error_description": "insufficient privileges",
	})
}
