package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
)

type refreshTokensRepo struct {
	db dbtx
}

const refreshTokenColumns = `id, user_id, token_hash, expires_at, revoked,
	last_used_at, created_at, updated_at`

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (
			id, user_id, token_hash, expires_at, revoked, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.UserID,
		t.TokenHash,
		t.ExpiresAt.UTC(),
		t.Revoked,
		now,
		now,
	)
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(
	ctx context.Context,
	hash string,
) (domain.RefreshToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE token_hash = ?`, hash)
	return scanRefreshToken(row)
}

func (r *refreshTokensRepo) GetRefreshTokenByHashAndUser(
	ctx context.Context,
	hash, userID string,
) (domain.RefreshToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens
		 WHERE token_hash = ? AND user_id = ?`, hash, userID)
	return scanRefreshToken(row)
}

func (r *refreshTokensRepo) RevokeRefreshToken(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked = 1, updated_at = ? WHERE token_hash = ?`,
		time.Now().UTC(), hash)
	return err
}

// RevokeRefreshTokenIfActive is the rotation race guard: the conditional
// update lets at most one of two concurrent rotations of the same token
// observe a row change.
func (r *refreshTokensRepo) RevokeRefreshTokenIfActive(
	ctx context.Context,
	hash string,
) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked = 1, updated_at = ?
		 WHERE token_hash = ? AND revoked = 0`,
		time.Now().UTC(), hash)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *refreshTokensRepo) TouchLastUsed(ctx context.Context, hash string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET last_used_at = ?, updated_at = ? WHERE token_hash = ?`,
		at.UTC(), time.Now().UTC(), hash)
	return err
}

// DeleteExpiredRefreshTokens removes tokens past their expiry. Revoked but
// unexpired tokens stay around for audit until they age out.
func (r *refreshTokensRepo) DeleteExpiredRefreshTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < ?`, time.Now().UTC())
	return err
}

func scanRefreshToken(row *sql.Row) (domain.RefreshToken, error) {
	var (
		t        domain.RefreshToken
		lastUsed sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.Revoked,
		&lastUsed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}

	t.LastUsedAt = mapNullTimePtr(lastUsed)
	return t, nil
}
