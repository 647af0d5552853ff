package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrTokenType   = errors.New("jwtx: wrong token type")

	errShortSecret = errors.New("jwtx: secret must be at least 32 bytes")
)

// Signer signs access-token claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and returns the claims if it's legit. Callers
// must treat every failure identically; the distinct sentinel errors exist
// for logging, never for client responses.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies access tokens with a shared server secret.
// It implements both Signer and Verifier since HMAC has no key split.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 constructs an HS256 signer/verifier. The secret must carry at
// least 256 bits so it isn't weaker than the signature it produces.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < 32 {
		return nil, errShortSecret
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign turns claims into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify parses and validates a compact JWT. It enforces the HMAC
// algorithm, signature, exp/nbf, issuer, and the access-token type
// discriminator.
func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if claims.TokenType != TokenTypeAccess {
		return Claims{}, ErrTokenType
	}

	return claims, nil
}
