package carpet_test

import (
	"testing"

	"github.com/Ohad-Ma/carpet-maker-2/carpet"
	"github.com/stretchr/testify/assert"
)

// TestIsForbidden_Range sweeps every byte and checks the 33..126 window.
func TestIsForbidden_Range(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := c < 33 || c > 126
		assert.Equal(t, want, carpet.IsForbidden(byte(c)), "byte %d", c)
	}
}

// TestIsForbidden_Listed covers the characters the original driver rejected by name.
func TestIsForbidden_Listed(t *testing.T) {
	for _, c := range []byte{'\n', '\r', '\t', 0, ' ', 127} {
		assert.True(t, carpet.IsForbidden(c), "%q must be forbidden", c)
	}
	for _, c := range []byte{'!', '#', '@', 'a', 'Z', '~'} {
		assert.False(t, carpet.IsForbidden(c), "%q must be allowed", c)
	}
}

func TestValidateSymbol(t *testing.T) {
	assert.NoError(t, carpet.ValidateSymbol('@'))
	err := carpet.ValidateSymbol(' ')
	assert.ErrorIs(t, err, carpet.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "0x20")
}
