package hubsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cfohub/cfohub/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountInactive    = "account_inactive"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeTokenExpired       = "token_expired_or_revoked"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeWeakPassword       = "weak_password"
	ErrorCodePasswordReuse      = "password_reuse"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeRateLimited        = "rate_limited"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error envelope every non-2xx CFO Hub response carries. It
// implements the error interface so the SDK client can return it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used to probe which accounts exist.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid credentials",
	}

	// ErrAccountInactive is returned when the credentials are correct but
	// the account has been deactivated.
	ErrAccountInactive = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeAccountInactive,
		Message:    "account is deactivated",
	}

	// ErrInvalidToken is returned when a token is missing, malformed, or
	// was never issued.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidToken,
		Message:    "the token is missing or invalid",
	}

	// ErrTokenExpired is returned when a refresh token has expired or was
	// already rotated or revoked.
	ErrTokenExpired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeTokenExpired,
		Message:    "the refresh token has expired or been revoked",
	}

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeEmailTaken,
		Message:    "an account with this email already exists",
	}

	// ErrPasswordReuse is returned when the replacement password matches
	// the current one.
	ErrPasswordReuse = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodePasswordReuse,
		Message:    "the new password must differ from the current one",
	}

	// ErrForbidden is returned when the authenticated user's role does not
	// permit the operation.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "insufficient role for this operation",
	}

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrServerError is returned on unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewAPIError creates an APIError with the given status code, error code,
// and message. Useful for errors that carry request-specific details, like
// the violated password rule.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
