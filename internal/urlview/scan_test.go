package urlview

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The wide path is only ever a performance substitution, so it must agree
// with the scalar path on every input. Lengths straddle the 16-byte word
// boundary on purpose.
func TestFindByteDifferential(t *testing.T) {
	lengths := []int{0, 1, 2, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65}
	targets := []byte{':', '/', '?', '#', '@', ']', 0x00, 0xFF}

	for _, n := range lengths {
		base := strings.Repeat("a", n)
		for _, c := range targets {
			// Target absent.
			assert.Equal(t, findByteScalar(base, c), findByteWide(base, c),
				"len=%d target=%q absent", n, c)

			// Target at every position. Build via []byte so high bytes
			// like 0xFF stay a single byte instead of UTF-8 expanding.
			for pos := 0; pos < n; pos++ {
				s := base[:pos] + string([]byte{c}) + base[pos+1:]
				want := findByteScalar(s, c)
				require.Equal(t, pos, want)
				assert.Equal(t, want, findByteWide(s, c),
					"len=%d target=%q pos=%d", n, c, pos)
			}
		}
	}
}

func TestFindByteDifferentialRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("abc:/?#@[]xyz")

	for i := 0; i < 2000; i++ {
		n := rng.Intn(80)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(buf)
		c := alphabet[rng.Intn(len(alphabet))]
		assert.Equal(t, findByteScalar(s, c), findByteWide(s, c), "input=%q target=%q", s, c)
	}
}

func TestFindByteFirstMatchWins(t *testing.T) {
	s := strings.Repeat("x", 20) + "::" + strings.Repeat("x", 20)
	assert.Equal(t, 20, findByte(s, ':'))
	assert.Equal(t, 20, findByteScalar(s, ':'))
	assert.Equal(t, 20, findByteWide(s, ':'))
}

func TestFindInRange(t *testing.T) {
	s := "user:pass@host:8080"

	assert.Equal(t, 4, findInRange(s, 0, 9, ':'))
	assert.Equal(t, 14, findInRange(s, 10, len(s), ':'))
	assert.Equal(t, -1, findInRange(s, 0, 4, ':'))
	assert.Equal(t, -1, findInRange(s, 5, 5, ':'))
	assert.Equal(t, -1, findInRange(s, 9, 4, ':'))
}

func TestScanAuthorityEnd(t *testing.T) {
	tests := []struct {
		input string
		start int
		want  int
	}{
		{"host/path", 0, 4},
		{"host?query", 0, 4},
		{"host#frag", 0, 4},
		{"host", 0, 4},
		{"", 0, 0},
		// Long enough for the 16-byte lanes.
		{strings.Repeat("h", 40) + "/p", 0, 40},
		{strings.Repeat("h", 40) + "?q", 0, 40},
		{strings.Repeat("h", 40) + "#f", 0, 40},
		{strings.Repeat("h", 40), 0, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scanAuthorityEnd(tt.input, tt.start), "input=%q", tt.input)
	}
}

func BenchmarkFindByteWide(b *testing.B) {
	s := strings.Repeat("a", 256) + ":"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if findByteWide(s, ':') != 256 {
			b.Fatal("wrong index")
		}
	}
}

func BenchmarkFindByteScalar(b *testing.B) {
	s := strings.Repeat("a", 256) + ":"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if findByteScalar(s, ':') != 256 {
			b.Fatal("wrong index")
		}
	}
}
