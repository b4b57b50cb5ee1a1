package urlview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// isSchemeCharSlow is the readable definition the bit table must match.
func isSchemeCharSlow(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '+', b == '-', b == '.':
		return true
	}
	return false
}

func TestIsSchemeCharTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equal(t, isSchemeCharSlow(b), isSchemeChar(b), "byte 0x%02X", b)
	}
}

func TestIsDigit(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equal(t, b >= '0' && b <= '9', isDigit(b), "byte 0x%02X", b)
	}
}

func TestIsASCIIAlpha(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		assert.Equal(t, want, isASCIIAlpha(b), "byte 0x%02X", b)
	}
}
