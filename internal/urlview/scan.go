package urlview

import "math/bits"

// SWAR constants for the zero-byte trick: a lane of x has its high bit set
// in (x - lo64) &^ x & hi64 exactly when the lane is zero.
const (
	lo64 = 0x0101_0101_0101_0101
	hi64 = 0x8080_8080_8080_8080
)

// load64 reads 8 bytes of s starting at i as a little-endian word.
// The compiler turns this into a single unaligned load on the
// architectures that enable the wide path.
func load64(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// matchMask returns a word with the high bit set in every lane of w equal
// to the broadcast pattern pat.
func matchMask(w, pat uint64) uint64 {
	x := w ^ pat
	return (x - lo64) &^ x & hi64
}

func broadcast(c byte) uint64 {
	return uint64(c) * lo64
}

// findByte returns the index of the first occurrence of c in s, or -1.
// The wide path is a verified performance substitution for the scalar
// path: the two must return identical results for every input.
func findByte(s string, c byte) int {
	if useWide && len(s) >= 16 {
		return findByteWide(s, c)
	}
	return findByteScalar(s, c)
}

// findByteWide compares 16 bytes per iteration as two 64-bit SWAR lanes
// and hands any remainder to the scalar scan.
func findByteWide(s string, c byte) int {
	pat := broadcast(c)
	i := 0
	for ; i+16 <= len(s); i += 16 {
		if m := matchMask(load64(s, i), pat); m != 0 {
			return i + bits.TrailingZeros64(m)>>3
		}
		if m := matchMask(load64(s, i+8), pat); m != 0 {
			return i + 8 + bits.TrailingZeros64(m)>>3
		}
	}
	if j := findByteScalar(s[i:], c); j >= 0 {
		return i + j
	}
	return -1
}

func findByteScalar(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// findInRange scans s[start:end] for c and returns an absolute index,
// or -1. An empty or inverted window finds nothing.
func findInRange(s string, start, end int, c byte) int {
	if start >= end {
		return -1
	}
	if i := findByte(s[start:end], c); i >= 0 {
		return start + i
	}
	return -1
}
