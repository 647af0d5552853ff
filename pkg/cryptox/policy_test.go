package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
		reason   string
	}{
		{"too short", "short1!", false, ReasonTooShort},
		{"missing uppercase", "alllowercase1!", false, ReasonMissingUpper},
		{"missing lowercase", "ALLUPPER1!", false, ReasonMissingLower},
		{"missing digit", "NoDigits!", false, ReasonMissingDigit},
		{"missing symbol", "NoSymbol1", false, ReasonMissingSymbol},
		{"deny-listed", "password", false, ReasonTooCommon},
		{"deny-listed uppercase", "QWERTY", false, ReasonTooShort}, // length fires first
		{"valid", "Secure1!pass", true, ""},
		{"valid with unicode symbol", "Secure1§pass", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidateStrength(tt.password)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateStrength_DenyList(t *testing.T) {
	// Exact matches only, case-insensitive.
	for _, p := range []string{"password", "PASSWORD", "12345678", "Admin123"} {
		ok, reason := ValidateStrength(p)
		require.False(t, ok, "password %q", p)
		require.Equal(t, ReasonTooCommon, reason, "password %q", p)
	}

	// Supersets of deny-list entries are not deny-listed.
	ok, _ := ValidateStrength("Password123!")
	require.True(t, ok)
}

func TestValidatePolicy_EmailParts(t *testing.T) {
	tests := []struct {
		name     string
		password string
		email    string
		wantOK   bool
	}{
		{"contains local part", "Alice1!pass-joao.silva", "joao.silva@x.com", false},
		{"contains one segment", "Silva1!pass", "joao.silva@x.com", false},
		{"case-insensitive match", "JOAO1!passx", "joao.silva@x.com", false},
		{"short segments ignored", "Joa1!passwd", "joa.sil@x.com", true},
		{"no email overlap", "Secure1!pass", "joao.silva@x.com", true},
		{"empty email skips check", "Secure1!pass", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidatePolicy(tt.password, tt.email)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				require.Equal(t, ReasonContainsEmail, reason)
			}
		})
	}
}

func TestValidatePolicy_StrengthFirst(t *testing.T) {
	// Strength failures surface before the email rule.
	ok, reason := ValidatePolicy("joao", "joao.pedro@x.com")
	require.False(t, ok)
	require.Equal(t, ReasonTooShort, reason)
}
