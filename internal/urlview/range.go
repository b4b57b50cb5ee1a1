package urlview

// Component indices into the range table.
const (
	idxScheme = iota
	idxUsername
	idxPassword
	idxHost
	idxPort
	idxPath
	idxQuery
	idxFragment
)

// Presence flags. Optional components get a flag so that "absent" can be
// told apart from "present but empty".
const (
	flagUsername uint16 = 1 << iota
	flagPassword
	flagPort
	flagQuery
	flagFragment
	flagIPv6
)

// span is a half-open [start, end) byte range packed into one 32-bit word:
// high 16 bits hold start, low 16 bits hold end. The packing caps input
// length at 65535 bytes, which Parse checks once up front.
type span uint32

func newSpan(start, end int) span {
	return span(uint32(start)<<16 | uint32(end)&0xFFFF)
}

func (s span) start() int { return int(s >> 16) }

func (s span) end() int { return int(s & 0xFFFF) }

func (s span) isEmpty() bool { return s.start() >= s.end() }

func (s span) len() int {
	if s.isEmpty() {
		return 0
	}
	return s.end() - s.start()
}
