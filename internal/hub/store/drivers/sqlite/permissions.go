package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
)

type rolePermissionsRepo struct {
	db dbtx
}

func (r *rolePermissionsRepo) GetRolePermissions(
	ctx context.Context,
	role string,
) (domain.RolePermissions, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT role, features, created_at, updated_at
		 FROM role_permissions WHERE role = ?`, role)

	var (
		p   domain.RolePermissions
		raw []byte
	)
	if err := row.Scan(&p.Role, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.RolePermissions{}, mapNotFound(err)
	}

	if err := json.Unmarshal(raw, &p.Features); err != nil {
		return domain.RolePermissions{}, fmt.Errorf("decode features for role %q: %w", role, err)
	}
	return p, nil
}

func (r *rolePermissionsRepo) ListRolePermissions(
	ctx context.Context,
) ([]domain.RolePermissions, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role, features, created_at, updated_at
		 FROM role_permissions ORDER BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RolePermissions
	for rows.Next() {
		var (
			p   domain.RolePermissions
			raw []byte
		)
		if err := rows.Scan(&p.Role, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &p.Features); err != nil {
			return nil, fmt.Errorf("decode features for role %q: %w", p.Role, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *rolePermissionsRepo) UpdateRolePermissions(
	ctx context.Context,
	role string,
	features map[string]bool,
) error {
	raw, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE role_permissions SET features = ?, updated_at = ? WHERE role = ?`,
		raw, time.Now().UTC(), role)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
