package urlview

// schemeBits is a 256-bit membership table of the bytes allowed in a
// scheme token after the leading letter: ASCII letters, digits, '+', '-'
// and '.'. Indexed by (b>>5, b&31).
var schemeBits = [8]uint32{
	0x0000_0000, // 0x00-0x1F
	0x03FF_6800, // 0x20-0x3F: digits, '+', '-', '.'
	0x07FF_FFFE, // 0x40-0x5F: A-Z
	0x07FF_FFFE, // 0x60-0x7F: a-z
	0x0000_0000,
	0x0000_0000,
	0x0000_0000,
	0x0000_0000,
}

func isSchemeChar(b byte) bool {
	return schemeBits[b>>5]>>(b&31)&1 != 0
}

func isDigit(b byte) bool {
	return b-'0' <= 9
}

func isASCIIAlpha(b byte) bool {
	return (b|0x20)-'a' <= 25
}
