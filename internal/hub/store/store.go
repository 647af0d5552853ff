package store

import (
	"context"
	"errors"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever outgrow it) implement this. Sub-repositories keep the
// surface tidy and make it obvious when a call needs a transaction.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	RolePermissions() RolePermissions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. Use it for multi-step operations that must be
	// atomic, e.g. refresh-token rotation.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. The lookup is case-sensitive
	// against the stored value.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash replaces the password hash, clears the
	// first-login-pending flag, and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateLastLogin stamps last_login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// SetUserActive toggles the active flag. Deactivated users keep their
	// row and sessions; token issuance checks the flag at use time.
	SetUserActive(ctx context.Context, userID string, active bool) error

	// DeleteUser removes the user; refresh_tokens cascade per schema.
	DeleteUser(ctx context.Context, userID string) error
}

type RefreshTokens interface {
	// CreateRefreshToken stores a new session record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the record by the token's SHA-256
	// fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// GetRefreshTokenByHashAndUser is the owner-scoped lookup used by
	// logout: a caller can only revoke tokens it owns.
	GetRefreshTokenByHashAndUser(ctx context.Context, hash, userID string) (domain.RefreshToken, error)

	// RevokeRefreshToken flips revoked=1 unconditionally (logout).
	RevokeRefreshToken(ctx context.Context, hash string) error

	// RevokeRefreshTokenIfActive flips revoked=1 only when the token is
	// still unrevoked, reporting whether this call won. Two concurrent
	// rotations of the same token race on this update; exactly one wins.
	RevokeRefreshTokenIfActive(ctx context.Context, hash string) (bool, error)

	// TouchLastUsed stamps last_used_at on a rotation attempt.
	TouchLastUsed(ctx context.Context, hash string, at time.Time) error

	// DeleteExpiredRefreshTokens is housekeeping; tokens are otherwise
	// retained for audit.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}

type RolePermissions interface {
	// GetRolePermissions returns the feature map for one role.
	GetRolePermissions(ctx context.Context, role string) (domain.RolePermissions, error)

	// ListRolePermissions returns the full matrix.
	ListRolePermissions(ctx context.Context) ([]domain.RolePermissions, error)

	// UpdateRolePermissions replaces the feature map for a role.
	UpdateRolePermissions(ctx context.Context, role string, features map[string]bool) error
}
