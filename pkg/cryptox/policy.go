package cryptox

import (
	"strings"
	"unicode"
)

// Password policy reasons, in the exact order the checks run. Callers get
// the first failing reason and nothing else.
const (
	ReasonTooShort        = "password must be at least 8 characters long"
	ReasonMissingUpper    = "password must contain at least one uppercase letter"
	ReasonMissingLower    = "password must contain at least one lowercase letter"
	ReasonMissingDigit    = "password must contain at least one digit"
	ReasonMissingSymbol   = "password must contain at least one special character"
	ReasonTooCommon       = "password is too common, choose a stronger one"
	ReasonContainsEmail   = "password must not contain parts of your email address"
)

// commonPasswords is a fixed deny-list matched case-insensitively.
var commonPasswords = []string{
	"password", "senha", "admin123", "12345678", "qwerty",
	"abc123", "password123", "senha123", "admin", "root",
}

// ValidateStrength checks a password against the static strength rules:
// length, deny-list, uppercase, lowercase, digit, symbol. Checks
// short-circuit in that order so the reported reason is deterministic.
// The deny-list runs before the character classes so a known-bad password
// is called out as such instead of as a missing character class.
func ValidateStrength(password string) (bool, string) {
	if len(password) < 8 {
		return false, ReasonTooShort
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if lowered == common {
			return false, ReasonTooCommon
		}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return false, ReasonMissingUpper
	case !hasLower:
		return false, ReasonMissingLower
	case !hasDigit:
		return false, ReasonMissingDigit
	case !hasSymbol:
		return false, ReasonMissingSymbol
	}

	return true, ""
}

// ValidatePolicy runs the strength check and additionally rejects passwords
// containing any local-part segment of the owner's email longer than three
// characters (case-insensitive substring, email split on "@" then ".").
func ValidatePolicy(password, ownerEmail string) (bool, string) {
	if ok, reason := ValidateStrength(password); !ok {
		return false, reason
	}

	if ownerEmail != "" {
		local, _, _ := strings.Cut(strings.ToLower(ownerEmail), "@")
		lowered := strings.ToLower(password)
		for _, part := range strings.Split(local, ".") {
			if len(part) > 3 && strings.Contains(lowered, part) {
				return false, ReasonContainsEmail
			}
		}
	}

	return true, ""
}
