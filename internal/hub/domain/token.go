package domain

import "time"

// TokenPair is what the auth endpoints return: the short-lived access JWT
// and the opaque refresh token, with their lifetimes in seconds.
type TokenPair struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"` // always "bearer"
	AccessExpiresIn  int    `json:"access_expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
}

// RefreshToken models the stored session record. The opaque value itself is
// never persisted, only its SHA-256 fingerprint.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	// LastUsedAt is stamped each time the token is presented for rotation.
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidAt reports whether the token may still be exchanged at the given
// instant: not revoked and not past its expiry. Revocation is one-way.
func (t RefreshToken) ValidAt(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
