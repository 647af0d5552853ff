package http

import (
	"encoding/json"
	"net/http"

	"github.com/cfohub/cfohub/internal/hub/service"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/cfohub/cfohub/pkg/slogx"
)

// LogoutHandler serves POST /v1/auth/logout.
type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Revokes the presented refresh token if it belongs to the authenticated user. Idempotent: unknown or already-revoked tokens still return 200.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		hubsdk.LogoutRequest	true	"Refresh token to revoke"
//	@Success		200		{object}	hubsdk.MessageResponse	"message"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		hubsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req hubsdk.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.RefreshToken == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(ctx, userID, req.RefreshToken); err != nil {
		log.Error("logout failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "logged out"})
}
