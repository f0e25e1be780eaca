// Package hexdigits validates and decodes the hexadecimal text a bit
// pattern is written in.
package hexdigits

import (
	"errors"
	"fmt"
)

// ErrInvalidDigit is wrapped by every InvalidDigitError.
var ErrInvalidDigit = errors.New("invalid hexadecimal digit")

// InvalidDigitError reports the first character of a pattern that is not a
// hexadecimal digit.
type InvalidDigitError struct {
	Pos  int  // byte position in the pattern text
	Char byte // offending byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// Value returns the nibble a hexadecimal digit stands for. Both cases are
// accepted.
func Value(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Check returns an *InvalidDigitError for the first byte of s that is not a
// hexadecimal digit, or nil.
func Check(s string) error {
	for i := 0; i < len(s); i++ {
		if _, ok := Value(s[i]); !ok {
			return &InvalidDigitError{Pos: i, Char: s[i]}
		}
	}
	return nil
}

// Count returns how many digits are needed to hold nbits bits.
func Count(nbits int) int {
	return nbits/4 + (nbits%4+3)/4
}
