package http

import (
	"net/http"

	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/hubsdk"
)

// MeHandler serves GET /v1/auth/me. The profile is the account loaded by
// the identity middleware, so it reflects the database rather than the
// token's claims.
type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current user profile
//	@Description	Returns the authenticated user's profile.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	hubsdk.UserProfile		"Profile"
//	@Failure		401	{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		403	{object}	hubsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := userFromContext(r.Context())
	if !ok {
		hubsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}
