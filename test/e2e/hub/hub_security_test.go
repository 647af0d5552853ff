package hub_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/stretchr/testify/require"
)

// TestBearerTokenRequired verifies that authenticated endpoints reject
// missing, malformed, and tampered access tokens.
func TestBearerTokenRequired(t *testing.T) {
	baseURL, cleanup := setupHubContainer(t)
	defer cleanup()

	client := hubsdk.NewClient(baseURL)
	ctx := t.Context()

	registerUser(t, client)
	session, err := client.Login(ctx, userEmail, userPassword)
	require.NoError(t, err)

	get := func(token string) *http.Response {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/auth/me", nil)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("missing token", func(t *testing.T) {
		resp := get("")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := get("not-a-jwt")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("tampered token", func(t *testing.T) {
		parts := strings.Split(session.AccessToken(), ".")
		require.Len(t, parts, 3)

		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
		resp := get(tampered)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		resp := get(session.AccessToken())
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

// TestErrorResponsesDoNotLeakAccountExistence verifies the login error body
// is byte-identical for unknown email and wrong password.
func TestErrorResponsesDoNotLeakAccountExistence(t *testing.T) {
	baseURL, cleanup := setupHubContainer(t)
	defer cleanup()

	client := hubsdk.NewClient(baseURL)
	ctx := t.Context()

	registerUser(t, client)

	post := func(email string) string {
		body := strings.NewReader(`{"email":"` + email + `","senha":"Wrong.Password9"}`)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/auth/login", body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		payload, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(payload)
	}

	unknown := post("nobody@cfohub.test")
	wrongPassword := post(userEmail)
	require.Equal(t, unknown, wrongPassword,
		"unknown-email and wrong-password responses must be indistinguishable")
}

// TestRefreshTokenIsOpaque verifies refresh tokens are not JWTs and carry
// no decodable structure.
func TestRefreshTokenIsOpaque(t *testing.T) {
	baseURL, cleanup := setupHubContainer(t)
	defer cleanup()

	client := hubsdk.NewClient(baseURL)
	ctx := t.Context()

	registerUser(t, client)
	session, err := client.Login(ctx, userEmail, userPassword)
	require.NoError(t, err)

	refresh := session.RefreshToken()
	require.Len(t, refresh, 43, "32 random bytes base64url encode to 43 chars")
	require.NotContains(t, refresh, ".", "refresh token must not be a JWT")

	// A refresh token is not accepted as an access token.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+refresh)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
