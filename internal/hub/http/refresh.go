package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cfohub/cfohub/internal/hub/service"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/cfohub/cfohub/pkg/slogx"
)

// RefreshHandler serves POST /v1/auth/refresh.
type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh token pair
//	@Description	Exchanges a refresh token for a new pair. The presented token is consumed; a token can be rotated at most once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		hubsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	hubsdk.TokenResponse	"access_token, refresh_token, token_type, access_expires_in, refresh_expires_in"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		429		{object}	hubsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.RefreshToken == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			hubsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrTokenExpiredOrRevoked):
			hubsdk.ErrTokenExpired.WriteError(w)
		case errors.Is(err, service.ErrAccountInactive):
			hubsdk.ErrAccountInactive.WriteError(w)
		default:
			log.Error("refresh failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubsdk.TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		TokenType:        pair.TokenType,
		AccessExpiresIn:  pair.AccessExpiresIn,
		RefreshExpiresIn: pair.RefreshExpiresIn,
	})
}
