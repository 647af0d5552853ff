package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cfohub/cfohub/internal/hub/service"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/httpx"
	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/cfohub/cfohub/pkg/slogx"
)

// PermissionsHandler serves the role feature-flag endpoints.
type PermissionsHandler struct {
	PermissionService *service.PermissionService
}

// HandleGet godoc
//
//	@Summary		Role permissions
//	@Description	Returns the feature flags of a role.
//	@Tags			Permissions
//	@Produce		json
//	@Param			role	path		string							true	"Role name"
//	@Success		200		{object}	hubsdk.RolePermissionsResponse	"role, features"
//	@Failure		401		{object}	hubsdk.ErrorResponse			"error, message"
//	@Failure		404		{object}	hubsdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/v1/permissions/{role} [get].
func (h *PermissionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := r.PathValue("role")

	perms, err := h.PermissionService.GetRolePermissions(ctx, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			hubsdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("get permissions failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.RolePermissionsResponse{
		Role:     perms.Role.String(),
		Features: perms.Features,
	})
}

// HandleUpdate godoc
//
//	@Summary		Update role permissions
//	@Description	Updates feature flags for a role. Keys omitted from the body keep their stored value. Admin only.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			role	path		string								true	"Role name"
//	@Param			body	body		hubsdk.UpdatePermissionsRequest		true	"Feature flags"
//	@Success		200		{object}	hubsdk.RolePermissionsResponse		"role, features"
//	@Failure		400		{object}	hubsdk.ErrorResponse				"error, message"
//	@Failure		401		{object}	hubsdk.ErrorResponse				"error, message"
//	@Failure		403		{object}	hubsdk.ErrorResponse				"error, message"
//	@Failure		404		{object}	hubsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/permissions/{role} [put].
func (h *PermissionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	role := r.PathValue("role")

	var req hubsdk.UpdatePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if len(req.Features) == 0 {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.PermissionService.UpdateRolePermissions(ctx, role, req.Features); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			hubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrUnknownFeature):
			hubsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("update permissions failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	perms, err := h.PermissionService.GetRolePermissions(ctx, role)
	if err != nil {
		log.Error("reload permissions failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.RolePermissionsResponse{
		Role:     perms.Role.String(),
		Features: perms.Features,
	})
}
