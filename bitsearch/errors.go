package bitsearch

import (
	"errors"
	"fmt"

	"github.com/mhr3/bitmatch/internal/hexdigits"
)

var (
	ErrBitCount      = errors.New("bit count out of range")
	ErrShortPattern  = errors.New("not enough pattern data")
	ErrInputTooLarge = errors.New("input too large to address by bit")

	// ErrInvalidDigit is wrapped by the *InvalidDigitError NewPattern
	// returns for a character that is not a hexadecimal digit.
	ErrInvalidDigit = hexdigits.ErrInvalidDigit
)

// InvalidDigitError reports the position of the first non-hexadecimal
// character in a pattern.
type InvalidDigitError = hexdigits.InvalidDigitError

// ShortPatternError is returned when the pattern data holds fewer bits than
// requested.
type ShortPatternError struct {
	Bits  int // requested bit count
	Avail int // bits the pattern data can supply
}

func (e *ShortPatternError) Error() string {
	return fmt.Sprintf("can't obtain %d bits from a pattern of %d bits", e.Bits, e.Avail)
}

func (e *ShortPatternError) Unwrap() error { return ErrShortPattern }
