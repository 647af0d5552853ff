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

// LoginHandler serves POST /v1/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Authenticates with email and password, returning a JWT access token and a single-use refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		hubsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	hubsdk.TokenResponse	"access_token, refresh_token, token_type, access_expires_in, refresh_expires_in"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		429		{object}	hubsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			hubsdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrAccountInactive):
			hubsdk.ErrAccountInactive.WriteError(w)
		default:
			log.Error("login failed", "err", err)
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
