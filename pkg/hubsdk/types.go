package hubsdk

import "time"

// ErrorResponse is the wire shape of every non-2xx CFO Hub response. Client
// code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// RefreshRequest is the body of POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest is the body of POST /v1/auth/logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest is the body of POST /v1/auth/register. Role defaults to
// colaborador server-side; the remaining profile fields are optional.
type RegisterRequest struct {
	Email          string `json:"email"`
	Name           string `json:"nome"`
	Password       string `json:"senha"`
	Role           string `json:"role,omitempty"`
	EmploymentType string `json:"tipo,omitempty"`
	JobTitle       string `json:"cargo,omitempty"`
	Department     string `json:"setor,omitempty"`
	Phone          string `json:"telefone,omitempty"`
}

// ChangePasswordRequest is the body of POST /v1/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"senha_nova"`
}

// TokenResponse is returned by the login and refresh endpoints.
type TokenResponse struct {
	// AccessToken is the JWT access token used to authenticate API requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// AccessExpiresIn is the lifetime in seconds of the access token
	AccessExpiresIn int `json:"access_expires_in"`

	// RefreshExpiresIn is the lifetime in seconds of the refresh token
	RefreshExpiresIn int `json:"refresh_expires_in"`
}

// UserProfile is the public projection of a user account. The password hash
// never leaves the server.
type UserProfile struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"nome"`
	Role              string     `json:"role"`
	EmploymentType    string     `json:"tipo,omitempty"`
	JobTitle          string     `json:"cargo,omitempty"`
	Department        string     `json:"setor,omitempty"`
	Phone             string     `json:"telefone,omitempty"`
	Active            bool       `json:"ativo"`
	FirstLoginPending bool       `json:"primeiro_acesso"`
	LastLogin         *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// RolePermissionsResponse maps a role to its feature flags.
type RolePermissionsResponse struct {
	Role     string          `json:"role"`
	Features map[string]bool `json:"features"`
}

// UpdatePermissionsRequest is the body of PUT /v1/permissions/{role}. Keys
// omitted from Features keep their stored value.
type UpdatePermissionsRequest struct {
	Features map[string]bool `json:"features"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
