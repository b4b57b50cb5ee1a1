// Package urlview locates the components of a URL in a single forward
// pass and exposes them as borrowed views into the original input. It
// never copies, percent-decodes or normalizes; the input must carry an
// explicit "scheme://" marker.
package urlview

// URL holds the input text and the byte ranges of its components.
// Instances are built only by Parse and are immutable afterwards, so a
// URL is safe to share across goroutines without synchronization.
type URL struct {
	input  string
	ranges [8]span
	flags  uint16
}

func (u *URL) component(idx int) string {
	s := u.ranges[idx]
	if s.isEmpty() {
		return ""
	}
	return u.input[s.start():s.end()]
}

func (u *URL) has(flag uint16) bool {
	return u.flags&flag != 0
}

// Scheme returns the scheme token without the "://" marker.
func (u *URL) Scheme() string {
	return u.component(idxScheme)
}

// Username returns the userinfo username, or "" when absent.
func (u *URL) Username() string {
	if u.has(flagUsername) {
		return u.component(idxUsername)
	}
	return ""
}

// Password returns the userinfo password, or "" when absent.
func (u *URL) Password() string {
	if u.has(flagPassword) {
		return u.component(idxPassword)
	}
	return ""
}

// Host returns the host, brackets included for IPv6 literals.
func (u *URL) Host() string {
	return u.component(idxHost)
}

// HostStr returns the host and whether it is non-empty.
func (u *URL) HostStr() (string, bool) {
	s := u.ranges[idxHost]
	if s.isEmpty() {
		return "", false
	}
	return u.component(idxHost), true
}

// Port returns the decoded port. Parse has already validated the digits
// and the [1,65535] range.
func (u *URL) Port() (uint16, bool) {
	if !u.has(flagPort) {
		return 0, false
	}
	s := u.ranges[idxPort]
	var v uint32
	for i := s.start(); i < s.end(); i++ {
		v = v*10 + uint32(u.input[i]-'0')
	}
	return uint16(v), true
}

// PortString returns the undecoded port digits.
func (u *URL) PortString() (string, bool) {
	if !u.has(flagPort) {
		return "", false
	}
	return u.component(idxPort), true
}

// Path returns the path, reporting root for an empty one.
func (u *URL) Path() string {
	if u.ranges[idxPath].isEmpty() {
		return "/"
	}
	return u.component(idxPath)
}

// Query returns the query without its '?'. A bare trailing '?' counts as
// absent.
func (u *URL) Query() (string, bool) {
	if !u.has(flagQuery) {
		return "", false
	}
	return u.component(idxQuery), true
}

// Fragment returns the fragment without its '#'. A bare trailing '#'
// counts as absent.
func (u *URL) Fragment() (string, bool) {
	if !u.has(flagFragment) {
		return "", false
	}
	return u.component(idxFragment), true
}

// IsIPv6 reports whether the host is a bracketed IPv6 literal.
func (u *URL) IsIPv6() bool {
	return u.has(flagIPv6)
}

// String returns the original input.
func (u *URL) String() string {
	return u.input
}
