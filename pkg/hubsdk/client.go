package hubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a CFO Hub instance. It exposes the unauthenticated
// endpoints and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new CFO Hub client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email and password and returns an authenticated
// session that refreshes its access token automatically.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var tokens TokenResponse
	err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password},
		&tokens, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newSession(c, &tokens), nil
}

// Refresh exchanges a refresh token for a new token pair. The presented
// token is consumed; keep the returned one.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var tokens TokenResponse
	err := c.postJSON(ctx, "/v1/auth/refresh", RefreshRequest{RefreshToken: refreshToken},
		&tokens, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new account and returns its profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserProfile, error) {
	var profile UserProfile
	err := c.postJSON(ctx, "/v1/auth/register", req, &profile, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz reports whether the service can reach its database.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// postJSON sends a JSON body to an unauthenticated endpoint and decodes the
// response into target.
func (c *Client) postJSON(ctx context.Context, path string, body, target any, expectedStatus int) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}

// decodeJSON decodes a JSON response into the target, returning a typed
// *APIError when the status is unexpected.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
