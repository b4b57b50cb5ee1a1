package urlview

import "math/bits"

// maxInput is the largest input the 16-bit packed ranges can address.
const maxInput = 0xFFFF

// Parse locates the components of input in five ordered, non-backtracking
// phases: scheme, "://" marker, authority (userinfo, host, port), path,
// then query and fragment. It returns the first violated precondition as
// an error and never a partial result.
func Parse(input string) (*URL, error) {
	if len(input) == 0 {
		return nil, ErrEmptyURL
	}
	if len(input) > maxInput {
		return nil, ErrTooLong
	}
	u := &URL{input: input}
	if err := u.locate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *URL) locate() error {
	s := u.input
	n := len(s)

	colon, err := scanScheme(s)
	if err != nil {
		return err
	}
	u.ranges[idxScheme] = newSpan(0, colon)
	pos := colon

	if pos+3 > n || s[pos:pos+3] != "://" {
		return ErrMalformedURL
	}
	pos += 3

	pos, err = u.locateAuthority(s, pos)
	if err != nil {
		return err
	}

	u.locateTail(s, pos)

	if u.ranges[idxHost].isEmpty() {
		return ErrInvalidHost
	}
	// An empty path reads back as root.
	if u.ranges[idxPath].isEmpty() {
		u.ranges[idxPath] = newSpan(n, n)
	}
	return nil
}

// scanScheme returns the index of the colon terminating the scheme token.
// The first byte must be an ASCII letter and every byte before the colon
// a scheme character. Word-parallel colon search runs while at least 8
// bytes remain; the byte scanner covers the tail.
func scanScheme(s string) (int, error) {
	if !isASCIIAlpha(s[0]) {
		return 0, ErrInvalidScheme
	}
	colonPat := broadcast(':')
	colon := -1
	pos := 1
	for pos+8 <= len(s) {
		if m := matchMask(load64(s, pos), colonPat); m != 0 {
			colon = pos + bits.TrailingZeros64(m)>>3
			break
		}
		pos += 8
	}
	if colon < 0 {
		i := findByte(s[pos:], ':')
		if i < 0 {
			return 0, ErrInvalidScheme
		}
		colon = pos + i
	}
	for i := 1; i < colon; i++ {
		if !isSchemeChar(s[i]) {
			return 0, ErrInvalidScheme
		}
	}
	return colon, nil
}

// locateAuthority records userinfo if an '@' occurs inside the authority
// span, then hands off to host/port parsing. It returns the position just
// past the authority.
func (u *URL) locateAuthority(s string, start int) (int, error) {
	end := scanAuthorityEnd(s, start)
	pos := start

	if at := findInRange(s, pos, end, '@'); at >= 0 {
		if colon := findInRange(s, pos, at, ':'); colon >= 0 {
			u.ranges[idxUsername] = newSpan(pos, colon)
			u.ranges[idxPassword] = newSpan(colon+1, at)
			u.flags |= flagUsername | flagPassword
		} else {
			u.ranges[idxUsername] = newSpan(pos, at)
			u.flags |= flagUsername
		}
		pos = at + 1
	}

	return u.locateHost(s, pos, end)
}

// scanAuthorityEnd finds the first '/', '?' or '#' at or after start, or
// the end of input. 16 bytes are examined per iteration by combining the
// match masks of all three delimiters.
func scanAuthorityEnd(s string, start int) int {
	slashPat := broadcast('/')
	queryPat := broadcast('?')
	hashPat := broadcast('#')

	pos := start
	for pos+16 <= len(s) {
		w := load64(s, pos)
		m := matchMask(w, slashPat) | matchMask(w, queryPat) | matchMask(w, hashPat)
		if m != 0 {
			return pos + bits.TrailingZeros64(m)>>3
		}
		w = load64(s, pos+8)
		m = matchMask(w, slashPat) | matchMask(w, queryPat) | matchMask(w, hashPat)
		if m != 0 {
			return pos + 8 + bits.TrailingZeros64(m)>>3
		}
		pos += 16
	}
	for pos < len(s) {
		switch s[pos] {
		case '/', '?', '#':
			return pos
		}
		pos++
	}
	return pos
}

func (u *URL) locateHost(s string, start, end int) (int, error) {
	if start >= end {
		return 0, ErrInvalidHost
	}
	pos := start

	if s[pos] == '[' {
		// IPv6 literal; the host range covers the brackets.
		u.flags |= flagIPv6
		closing := findInRange(s, pos+1, end, ']')
		if closing < 0 {
			return 0, ErrInvalidHost
		}
		pos = closing + 1
		u.ranges[idxHost] = newSpan(start, pos)

		if pos < end && s[pos] == ':' {
			if pos+1 >= end {
				return 0, ErrInvalidPort
			}
			return u.locatePort(s, pos+1, end)
		}
		return pos, nil
	}

	colon := findInRange(s, pos, end, ':')
	hostEnd := end
	if colon >= 0 {
		hostEnd = colon
	}
	if hostEnd == pos {
		return 0, ErrInvalidHost
	}
	u.ranges[idxHost] = newSpan(pos, hostEnd)

	if colon >= 0 {
		if colon+1 >= end {
			return 0, ErrInvalidPort
		}
		return u.locatePort(s, colon+1, end)
	}
	return hostEnd, nil
}

// locatePort validates 1-5 ASCII digits decoding to a value in [1,65535].
// Direct digit arithmetic, no general integer parser.
func (u *URL) locatePort(s string, start, end int) (int, error) {
	n := end - start
	if n < 1 || n > 5 {
		return 0, ErrInvalidPort
	}
	v := 0
	for i := start; i < end; i++ {
		d := s[i] - '0'
		if d > 9 {
			return 0, ErrInvalidPort
		}
		v = v*10 + int(d)
	}
	if v == 0 || v > 65535 {
		return 0, ErrInvalidPort
	}
	u.ranges[idxPort] = newSpan(start, end)
	u.flags |= flagPort
	return end, nil
}

// locateTail records path, query and fragment. Query and fragment flags
// are set only for non-empty spans: a bare trailing '?' or '#' reads back
// as absent.
func (u *URL) locateTail(s string, start int) {
	pos := start
	for pos < len(s) && s[pos] != '?' && s[pos] != '#' {
		pos++
	}
	u.ranges[idxPath] = newSpan(start, pos)

	if pos < len(s) && s[pos] == '?' {
		pos++
		qs := pos
		for pos < len(s) && s[pos] != '#' {
			pos++
		}
		if qs < pos {
			u.ranges[idxQuery] = newSpan(qs, pos)
			u.flags |= flagQuery
		}
	}

	if pos < len(s) && s[pos] == '#' {
		pos++
		if pos < len(s) {
			u.ranges[idxFragment] = newSpan(pos, len(s))
			u.flags |= flagFragment
		}
	}
}
