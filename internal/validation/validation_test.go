package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "alice", false},
		{"valid with underscore and digits", "alice_99", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 32), false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 33), true},
		{"with space", "alice smith", true},
		{"with dash", "alice-smith", true},
		{"non latin", "алиса", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateSongTitle(t *testing.T) {
	assert.Error(t, ValidateSongTitle(""))
	assert.Error(t, ValidateSongTitle("   "))
	assert.NoError(t, ValidateSongTitle("Ne me quitte pas"))
	assert.Error(t, ValidateSongTitle(strings.Repeat("x", 257)))
	// Rune count, not byte count.
	assert.NoError(t, ValidateSongTitle(strings.Repeat("ё", 256)))
}
