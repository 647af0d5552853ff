package hub_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/cfohub/cfohub/pkg/hubsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for hub service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "cfohub-test:latest"

	testJWTSecret = "e2e-test-secret-0123456789abcdefghij"

	adminEmail    = "admin@cfohub.test"
	adminName     = "Administrator"
	adminPassword = "Admin.Secret1"

	userEmail    = "ana.souza@cfohub.test"
	userName     = "Ana Souza"
	userPassword = "Usuario.Forte2"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Hub Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Hub Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/hub/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupHubContainer starts the hub service in a container with relaxed
// rate limits and returns the base URL. Most tests should use this; the
// rate-limit test uses setupHubContainerWithDefaultRateLimits.
func setupHubContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"HUB_LOGIN_RATE_LIMIT":    "1000",
		"HUB_REFRESH_RATE_LIMIT":  "1000",
		"HUB_REGISTER_RATE_LIMIT": "1000",
	})
}

// setupHubContainerWithDefaultRateLimits starts the hub service with the
// production rate limits, for testing that limiting actually works.
func setupHubContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"HUB_JWT_SECRET":    testJWTSecret,
		"HUB_ISSUER":        "cfohub-e2e",
		"HUB_DATABASE_FILE": "/tmp/hub.db",
		"HUB_PEPPER_FILE":   "/tmp/pepper",
		"ENV":               "test",
		"LOG_LEVEL":         "info",
		"LOG_FORMAT":        "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAdmin creates the admin account used by permission tests.
func registerAdmin(t *testing.T, client *hubsdk.Client) *hubsdk.UserProfile {
	t.Helper()

	profile, err := client.Register(t.Context(), hubsdk.RegisterRequest{
		Email:    adminEmail,
		Name:     adminName,
		Password: adminPassword,
		Role:     "admin",
	})
	require.NoError(t, err, "admin registration should succeed")
	return profile
}

// registerUser creates a regular colaborador account.
func registerUser(t *testing.T, client *hubsdk.Client) *hubsdk.UserProfile {
	t.Helper()

	profile, err := client.Register(t.Context(), hubsdk.RegisterRequest{
		Email:    userEmail,
		Name:     userName,
		Password: userPassword,
	})
	require.NoError(t, err, "user registration should succeed")
	return profile
}

// assertTokenResponse verifies a token response has all required fields.
func assertTokenResponse(t *testing.T, resp *hubsdk.TokenResponse) {
	t.Helper()
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, resp.RefreshToken, "Refresh token should not be empty")
	require.Equal(t, "bearer", resp.TokenType, "Token type should be bearer")
	require.Positive(t, resp.AccessExpiresIn)
	require.Positive(t, resp.RefreshExpiresIn)
}

// assertAPIError checks that an error is an APIError with the given status
// and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *hubsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
