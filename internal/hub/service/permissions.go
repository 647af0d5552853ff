package service

import (
	"context"
	"slices"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
)

type PermissionService struct {
	Store store.Store
}

// GetRolePermissions returns the feature map for a role.
func (s *PermissionService) GetRolePermissions(ctx context.Context, role string) (domain.RolePermissions, error) {
	if !domain.Role(role).Valid() {
		return domain.RolePermissions{}, store.ErrNotFound
	}
	return s.Store.RolePermissions().GetRolePermissions(ctx, role)
}

// ListRolePermissions returns the feature maps of all roles.
func (s *PermissionService) ListRolePermissions(ctx context.Context) ([]domain.RolePermissions, error) {
	return s.Store.RolePermissions().ListRolePermissions(ctx)
}

// UpdateRolePermissions replaces a role's feature map. Every key must be a
// known feature; missing keys keep their stored value.
func (s *PermissionService) UpdateRolePermissions(ctx context.Context, role string, features map[string]bool) error {
	if !domain.Role(role).Valid() {
		return store.ErrNotFound
	}

	for key := range features {
		if !slices.Contains(domain.FeatureKeys, key) {
			return ErrUnknownFeature
		}
	}

	current, err := s.Store.RolePermissions().GetRolePermissions(ctx, role)
	if err != nil {
		return err
	}

	merged := current.Features
	if merged == nil {
		merged = map[string]bool{}
	}
	for key, enabled := range features {
		merged[key] = enabled
	}

	return s.Store.RolePermissions().UpdateRolePermissions(ctx, role, merged)
}
