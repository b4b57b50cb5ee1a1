package urlview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanPacking(t *testing.T) {
	s := newSpan(3, 17)
	assert.Equal(t, 3, s.start())
	assert.Equal(t, 17, s.end())
	assert.Equal(t, 14, s.len())
	assert.False(t, s.isEmpty())

	s = newSpan(0xFFFF, 0xFFFF)
	assert.True(t, s.isEmpty())
	assert.Equal(t, 0, s.len())

	// Inverted ranges count as empty, never negative length.
	s = newSpan(10, 5)
	assert.True(t, s.isEmpty())
	assert.Equal(t, 0, s.len())

	var zero span
	assert.True(t, zero.isEmpty())
}
