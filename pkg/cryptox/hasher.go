package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. 19 MiB / 2 iterations / 1 lane follows the OWASP
// minimum recommendation for interactive logins.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16

	// MaxPasswordLength bounds hashing input so a hostile client cannot
	// burn CPU with megabyte passwords.
	MaxPasswordLength = 1024
)

var (
	ErrEmptyPassword    = errors.New("cryptox: empty password")
	ErrPasswordTooLong  = errors.New("cryptox: password exceeds maximum length")
	ErrPasswordMismatch = errors.New("cryptox: password does not match")
)

// Hasher hashes and verifies passwords using Argon2id with a per-hash
// random salt and a file-backed pepper. Construct one at startup and pass
// it to whatever needs it; there is no package-level hashing state.
type Hasher struct {
	pepper string
}

// NewHasher loads the pepper from pepperFile, generating and persisting a
// fresh one on first run.
func NewHasher(pepperFile string) (*Hasher, error) {
	pepper, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		return nil, fmt.Errorf("cryptox: pepper: %w", err)
	}
	return &Hasher{pepper: pepper}, nil
}

// NewHasherWithPepper builds a Hasher from an in-memory pepper. Meant for
// tests that don't want to touch the filesystem.
func NewHasherWithPepper(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string embedding the salt and
// parameters. Empty and oversized passwords are rejected.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// Verify compares a plaintext password against a PHC-style Argon2id hash in
// constant time. It returns ErrPasswordMismatch for a failed comparison and
// a descriptive error only for malformed hashes.
func (h *Hasher) Verify(password, encodedHash string) error {
	// PHC format: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
	parts := make([]string, 0, 6)
	start := 0
	for i := range len(encodedHash) {
		if encodedHash[i] == '$' {
			parts = append(parts, encodedHash[start:i])
			start = i + 1
		}
	}
	parts = append(parts, encodedHash[start:])

	if len(parts) != 6 {
		return errors.New("cryptox: invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("cryptox: invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("cryptox: invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: invalid hash format: failed to decode salt: %w", err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("cryptox: invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expectedHash) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

// loadOrGeneratePepper reads the pepper file, creating it with fresh random
// material if it does not exist yet.
func loadOrGeneratePepper(pepperFile string) (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		pepperBytes := make([]byte, keyLength)
		if _, err := rand.Read(pepperBytes); err != nil {
			return "", err
		}
		pepper := base64.RawURLEncoding.EncodeToString(pepperBytes)

		if err := os.WriteFile(pepperFile, []byte(pepper), 0600); err != nil {
			return "", err
		}
		return pepper, nil
	}

	pepperBytes, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}
	return string(pepperBytes), nil
}
