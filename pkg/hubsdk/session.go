package hubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated CFO Hub session. Its methods refresh the
// access token transparently when it nears expiry; since refresh tokens are
// single use, the stored pair is replaced on every rotation.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// newSession creates an authenticated session from a token response.
func newSession(client *Client, tokens *TokenResponse) *Session {
	return &Session{
		client:       client,
		accessToken:  tokens.AccessToken,
		refreshToken: tokens.RefreshToken,

		// Refresh 30 seconds before actual expiry.
		expiresAt: time.Now().Add(time.Duration(tokens.AccessExpiresIn)*time.Second - 30*time.Second),
	}
}

// Me returns the profile of the authenticated user.
func (s *Session) Me(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	err := s.doJSON(ctx, http.MethodGet, "/v1/auth/me", nil, &profile, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout revokes this session's refresh token. The access token stays valid
// until it expires; callers should discard the session.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	body := LogoutRequest{RefreshToken: refreshToken}
	return s.doJSON(ctx, http.MethodPost, "/v1/auth/logout", body, nil, http.StatusOK)
}

// ChangePassword replaces the authenticated user's password.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	body := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return s.doJSON(ctx, http.MethodPost, "/v1/auth/change-password", body, nil, http.StatusOK)
}

// GetRolePermissions fetches the feature map of a role.
func (s *Session) GetRolePermissions(ctx context.Context, role string) (*RolePermissionsResponse, error) {
	var perms RolePermissionsResponse
	err := s.doJSON(ctx, http.MethodGet, "/v1/permissions/"+role, nil, &perms, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &perms, nil
}

// UpdateRolePermissions updates feature flags for a role. Requires the
// admin role.
func (s *Session) UpdateRolePermissions(ctx context.Context, role string, features map[string]bool) error {
	body := UpdatePermissionsRequest{Features: features}
	return s.doJSON(ctx, http.MethodPut, "/v1/permissions/"+role, body, nil, http.StatusOK)
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// getValidToken returns a valid access token, rotating the pair if the
// current one is near expiry.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if s.refreshToken == "" {
		return "", fmt.Errorf("access token expired and no refresh token available")
	}

	tokens, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(tokens.AccessExpiresIn)*time.Second - 30*time.Second)

	return s.accessToken, nil
}

func (s *Session) doJSON(
	ctx context.Context,
	method, path string,
	body, target any,
	expectedStatus int,
) error {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}
