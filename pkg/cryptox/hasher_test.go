package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testHasher() *Hasher {
	return NewHasherWithPepper("test-pepper")
}

func TestHash(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// Verify PHC format
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Contains(t, parts[3], "m=", "should contain memory parameter")
			require.Contains(t, parts[3], "t=", "should contain iterations parameter")
			require.Contains(t, parts[3], "p=", "should contain parallelism parameter")
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")
		})
	}
}

func TestHash_RejectsEmptyAndOversized(t *testing.T) {
	h := testHasher()

	_, err := h.Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)

	_, err = h.Hash(strings.Repeat("x", MaxPasswordLength+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHash_UniqueSalts(t *testing.T) {
	h := testHasher()
	password := "samepassword"

	hash1, err := h.Hash(password)
	require.NoError(t, err)
	hash2, err := h.Hash(password)
	require.NoError(t, err)

	// Each hash should differ due to unique salts, but both verify.
	require.NotEqual(t, hash1, hash2)
	require.NoError(t, h.Verify(password, hash1))
	require.NoError(t, h.Verify(password, hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "correct-passwor", "correct-password ", "CORRECT-PASSWORD"} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrPasswordMismatch, "password %q", wrong)
	}
}

func TestVerify_DifferentPepper(t *testing.T) {
	hash, err := NewHasherWithPepper("pepper-a").Hash("Secure1!pass")
	require.NoError(t, err)

	// Same password, different pepper: must not verify.
	err = NewHasherWithPepper("pepper-b").Verify("Secure1!pass", hash)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerify_MalformedHash(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plaintext"},
		{"wrong scheme", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify("anything", tt.hash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestNewHasher_PersistsPepper(t *testing.T) {
	pepperFile := filepath.Join(t.TempDir(), "pepper")

	h1, err := NewHasher(pepperFile)
	require.NoError(t, err)

	hash, err := h1.Hash("Secure1!pass")
	require.NoError(t, err)

	// A second hasher from the same file must verify hashes from the first.
	h2, err := NewHasher(pepperFile)
	require.NoError(t, err)
	require.NoError(t, h2.Verify("Secure1!pass", hash))

	info, err := os.Stat(pepperFile)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}
