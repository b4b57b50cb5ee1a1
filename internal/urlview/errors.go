package urlview

import (
	"errors"
	"fmt"
)

// Parse failures form a closed set. A failed parse returns exactly one of
// these and never a partial URL; whether a bad input aborts a batch or is
// skipped is the caller's policy.
var (
	ErrEmptyURL      = errors.New("empty url")
	ErrInvalidScheme = errors.New("invalid scheme")
	ErrMalformedURL  = errors.New("malformed url")
	ErrInvalidHost   = errors.New("invalid host")
	ErrInvalidPort   = errors.New("invalid port")
	ErrTooLong       = errors.New("url longer than 65535 bytes")
)

// InvalidCharacterError reports a byte that is not allowed where it was
// found. Reserved for finer-grained diagnostics than the sentinel errors.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}
