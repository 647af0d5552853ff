package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s *Store) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        "ana.souza@example.com",
		Name:         "Ana Souza",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleColaborador,

		Active:            true,
		FirstLoginPending: true,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s)

	got, err := s.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Name, got.Name)
	require.True(t, got.Active)
	require.True(t, got.FirstLoginPending)
	require.Nil(t, got.LastLogin)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Duplicate email must be rejected by the unique index.
	dup := u
	dup.ID = idx.New().String()
	err = s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdatePasswordHashClearsFirstLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s)
	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$argon2id$v=19$m=19456,t=2,p=1$bmV3$bmV3"))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.FirstLoginPending)
}

func TestRevokeRefreshTokenIfActive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s)

	rt := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "fingerprint-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, rt))

	// First revocation wins, second observes an already-revoked row.
	won, err := s.RefreshTokens().RevokeRefreshTokenIfActive(ctx, rt.TokenHash)
	require.NoError(t, err)
	require.True(t, won)

	won, err = s.RefreshTokens().RevokeRefreshTokenIfActive(ctx, rt.TokenHash)
	require.NoError(t, err)
	require.False(t, won)

	got, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, rt.TokenHash)
	require.NoError(t, err)
	require.True(t, got.Revoked)
}

func TestDeleteExpiredRefreshTokens(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s)
	now := time.Now().UTC()

	expired := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "expired",
		ExpiresAt: now.Add(-time.Minute),
	}
	live := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "live",
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, expired))
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, live))

	require.NoError(t, s.RefreshTokens().DeleteExpiredRefreshTokens(ctx))

	_, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
}

func TestRolePermissionsSeededAndUpdatable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.RolePermissions().ListRolePermissions(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(domain.Roles()))

	admin, err := s.RolePermissions().GetRolePermissions(ctx, domain.RoleAdmin.String())
	require.NoError(t, err)
	for _, key := range domain.FeatureKeys {
		require.True(t, admin.Features[key], "admin should have %s", key)
	}

	features := admin.Features
	features["relatorios"] = false
	require.NoError(t, s.RolePermissions().UpdateRolePermissions(ctx, domain.RoleAdmin.String(), features))

	got, err := s.RolePermissions().GetRolePermissions(ctx, domain.RoleAdmin.String())
	require.NoError(t, err)
	require.False(t, got.Features["relatorios"])

	err = s.RolePermissions().UpdateRolePermissions(ctx, "diretor", features)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		rt := domain.RefreshToken{
			ID:        idx.New().String(),
			UserID:    u.ID,
			TokenHash: "tx-token",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "tx-token")
	require.ErrorIs(t, err, store.ErrNotFound)
}
