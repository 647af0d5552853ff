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

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Creates a new account. The password must satisfy the strength policy, including not containing segments of the account's own email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		hubsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	hubsdk.UserProfile		"Created profile"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, message"
//	@Failure		429		{object}	hubsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.UserService.Register(ctx, service.RegisterParams{
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		Role:           req.Role,
		EmploymentType: req.EmploymentType,
		JobTitle:       req.JobTitle,
		Department:     req.Department,
		Phone:          req.Phone,
	})
	if err != nil {
		var policyErr *service.PasswordPolicyError
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			hubsdk.ErrEmailTaken.WriteError(w)
		case errors.As(err, &policyErr):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeWeakPassword, policyErr.Reason).WriteError(w)
		case errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrInvalidEmploymentType):
			hubsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProfile(u))
}
