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

// ChangePasswordHandler serves POST /v1/auth/change-password.
type ChangePasswordHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Change password
//	@Description	Replaces the authenticated user's password after re-verifying the current one. Existing sessions stay valid.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		hubsdk.ChangePasswordRequest	true	"Current and new passwords"
//	@Success		200		{object}	hubsdk.MessageResponse			"message"
//	@Failure		400		{object}	hubsdk.ErrorResponse			"error, message"
//	@Failure		401		{object}	hubsdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/v1/auth/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		hubsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req hubsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.UserService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		var policyErr *service.PasswordPolicyError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidCredentials,
				"current password is incorrect").WriteError(w)
		case errors.As(err, &policyErr):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeWeakPassword, policyErr.Reason).WriteError(w)
		case errors.Is(err, service.ErrPasswordReuse):
			hubsdk.ErrPasswordReuse.WriteError(w)
		default:
			log.Error("change password failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "password changed"})
}
