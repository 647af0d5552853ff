package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "cfohub"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	h, err := NewHS256(testSecret, testIssuer)
	require.NoError(t, err)
	return h
}

func TestNewHS256_RejectsShortSecret(t *testing.T) {
	_, err := NewHS256([]byte("too-short"), testIssuer)
	require.Error(t, err)
}

func TestSignAndVerify(t *testing.T) {
	h := newTestHS256(t)
	now := time.Now().UTC()

	claims := NewAccessClaims("user-1", "alice@x.com", "admin", 15*time.Minute, testIssuer, now)
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWS has three segments")

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@x.com", got.Email)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, TokenTypeAccess, got.TokenType)
	require.WithinDuration(t, now.Add(15*time.Minute), got.ExpiresAt.Time, time.Second)
}

func TestVerify_Expired(t *testing.T) {
	h := newTestHS256(t)

	// Issued 2 seconds ago with a 1-second TTL: already expired even though
	// the signature is intact.
	past := time.Now().UTC().Add(-2 * time.Second)
	claims := NewAccessClaims("user-1", "alice@x.com", "admin", time.Second, testIssuer, past)
	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_Tampered(t *testing.T) {
	h := newTestHS256(t)
	claims := NewAccessClaims("user-1", "alice@x.com", "colaborador", time.Minute, testIssuer, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = h.Verify(tampered)
	require.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	h := newTestHS256(t)
	other, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)
	require.NoError(t, err)

	token, err := other.Sign(NewAccessClaims("user-1", "a@x.com", "admin", time.Minute, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_WrongIssuer(t *testing.T) {
	h := newTestHS256(t)
	foreign, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)

	token, err := foreign.Sign(NewAccessClaims("user-1", "a@x.com", "admin", time.Minute, "someone-else", time.Now().UTC()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerify_WrongTokenType(t *testing.T) {
	h := newTestHS256(t)

	claims := NewAccessClaims("user-1", "a@x.com", "admin", time.Minute, testIssuer, time.Now().UTC())
	claims.TokenType = "refresh"
	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrTokenType)
}

func TestVerify_AlgNone(t *testing.T) {
	h := newTestHS256(t)

	// An unsigned token must never verify, even with a valid payload.
	claims := NewAccessClaims("user-1", "a@x.com", "admin", time.Minute, testIssuer, time.Now().UTC())
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	h := newTestHS256(t)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := h.Verify(token)
		require.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}
