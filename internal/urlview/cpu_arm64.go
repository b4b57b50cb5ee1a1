//go:build arm64

package urlview

// armv8 handles unaligned word loads natively.
var useWide = true
