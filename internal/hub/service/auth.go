package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/cryptox"
	"github.com/cfohub/cfohub/pkg/idx"
	"github.com/cfohub/cfohub/pkg/jwtx"
	"github.com/cfohub/cfohub/pkg/slogx"
)

var (
	ErrInvalidCredentials    = errors.New("invalid_credentials")
	ErrAccountInactive       = errors.New("account_inactive")
	ErrInvalidToken          = errors.New("invalid_token")
	ErrTokenExpiredOrRevoked = errors.New("token_expired_or_revoked")
	ErrEmailTaken            = errors.New("email_taken")
	ErrPasswordReuse         = errors.New("password_reuse")
	ErrInvalidRole           = errors.New("invalid_role")
	ErrInvalidEmploymentType = errors.New("invalid_employment_type")
	ErrUnknownFeature        = errors.New("unknown_feature")
)

// PasswordPolicyError carries the first policy rule the candidate password
// violated, as a stable machine-readable reason string.
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string {
	return fmt.Sprintf("weak_password: %s", e.Reason)
}

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Signer jwtx.Signer

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// dummyHash is verified against when the login email matches no user,
	// so the miss path costs the same as a real verification.
	dummyOnce sync.Once
	dummyHash string
}

// Login authenticates a user by email and password and, on success, issues
// an access/refresh token pair. Unknown email and wrong password produce the
// same error so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	now := time.Now().UTC()
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash verification so the miss path takes as long
			// as the hit path.
			_ = s.Hasher.Verify(password, s.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login password verification failed", slog.String("user_id", u.ID))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.Active {
		l.Info("login rejected for inactive account", slog.String("user_id", u.ID))
		return nil, ErrAccountInactive
	}

	pair, err := s.issuePair(ctx, u, now)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Users().UpdateLastLogin(ctx, u.ID, now); err != nil {
		l.Error("failed to update last login", slog.Any("error", err), slog.String("user_id", u.ID))
	}

	return pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. A token can be rotated at most
// once; the conditional revoke makes the second of two concurrent rotations
// fail instead of minting a duplicate session.
func (s *AuthService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	now := time.Now().UTC()

	fp := cryptox.FingerprintToken(refreshOpaque)

	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if !rt.ValidAt(now) {
		return nil, ErrTokenExpiredOrRevoked
	}

	u, err := s.Store.Users().GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !u.Active {
		return nil, ErrAccountInactive
	}

	accessToken, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}

	newOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	newRT := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(newOpaque),
		ExpiresAt: now.Add(s.RefreshTTL),
	}

	// Revoke old and insert new atomically. If another request rotated the
	// same token first, the conditional revoke loses and the whole
	// transaction rolls back.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().TouchLastUsed(ctx, fp, now); err != nil {
			return err
		}
		won, err := tx.RefreshTokens().RevokeRefreshTokenIfActive(ctx, fp)
		if err != nil {
			return err
		}
		if !won {
			return ErrTokenExpiredOrRevoked
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, newRT)
	})
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     newOpaque,
		TokenType:        "bearer",
		AccessExpiresIn:  int(s.AccessTTL.Seconds()),
		RefreshExpiresIn: int(s.RefreshTTL.Seconds()),
	}, nil
}

// Logout revokes the given refresh token if it belongs to the user. Unknown,
// already-revoked, and foreign tokens are all treated as a successful logout.
func (s *AuthService) Logout(ctx context.Context, userID, refreshOpaque string) error {
	fp := cryptox.FingerprintToken(refreshOpaque)

	_, err := s.Store.RefreshTokens().GetRefreshTokenByHashAndUser(ctx, fp, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.Store.RefreshTokens().RevokeRefreshToken(ctx, fp)
}

func (s *AuthService) issuePair(ctx context.Context, u domain.User, now time.Time) (*domain.TokenPair, error) {
	accessToken, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}

	refreshOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	rt := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refreshOpaque),
		ExpiresAt: now.Add(s.RefreshTTL),
	}

	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshOpaque,
		TokenType:        "bearer",
		AccessExpiresIn:  int(s.AccessTTL.Seconds()),
		RefreshExpiresIn: int(s.RefreshTTL.Seconds()),
	}, nil
}

func (s *AuthService) signAccess(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		u.ID,
		u.Email,
		u.Role.String(),
		s.AccessTTL,
		s.Issuer,
		now,
	)
	return s.Signer.Sign(claims)
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("correct-horse-battery-staple")
		if err != nil {
			// Hash only fails on empty or oversized input, neither of
			// which applies here.
			panic(err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
