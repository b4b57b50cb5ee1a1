//go:build !amd64 && !arm64

package urlview

// Stay on the scalar path where unaligned multi-byte loads may trap or
// be emulated.
var useWide = false
