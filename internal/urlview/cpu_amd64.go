//go:build amd64

package urlview

import "golang.org/x/sys/cpu"

// Unaligned 8-byte loads are cheap on any amd64 part that reports SSE2,
// which in practice is all of them; the probe exists so the wide path can
// be masked off in the same way as the other architectures.
var useWide = cpu.X86.HasSSE2
