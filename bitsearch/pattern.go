package bitsearch

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/icza/bitio"

	"github.com/mhr3/bitmatch/internal/bitalg"
	"github.com/mhr3/bitmatch/internal/hexdigits"
)

const (
	// MaxBits is the largest bit count a Pattern accepts. Keeping nbits+7
	// within int lets byte lengths and window ends be computed without
	// overflow.
	MaxBits = math.MaxInt - 7

	// maxInputLen is the longest input whose bit length fits in an int.
	maxInputLen = math.MaxInt / 8
)

// Pattern is a bit string prepared for searching. It is immutable once
// built and safe for concurrent use.
//
// The zero Pattern is empty: it matches every input, including an empty
// one, at offset 0.
type Pattern struct {
	bits   []byte // packed MSB-first, pad bits of the last byte are zero
	nbits  int
	hash   uint32 // bits as a base-2 numeral mod bitalg.Prime
	cancel uint32 // removes a leading 1 from an nbits wide window hash
}

// NewPattern builds a Pattern of nbits bits written in hexadecimal text.
// Digits are read left to right, four bits each, until nbits bits are
// taken. When nbits is not a multiple of 4 the last digit gives its
// low-order bits, so ("1", 1) is the single bit 1 and ("5", 3) is 101.
// Digits past the last one needed are ignored. Both upper and lower case
// digits are accepted.
//
// An nbits of 0 yields the empty pattern without looking at hex.
func NewPattern(hex string, nbits int) (*Pattern, error) {
	if err := checkBitCount(nbits); err != nil {
		return nil, err
	}
	if nbits == 0 {
		return &Pattern{}, nil
	}

	ndigits := hexdigits.Count(nbits)
	if len(hex) < ndigits {
		return nil, &ShortPatternError{Bits: nbits, Avail: 4 * len(hex)}
	}
	if err := hexdigits.Check(hex[:ndigits]); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(byteLen(nbits))
	w := bitio.NewWriter(&buf)

	p := &Pattern{nbits: nbits}
	acc := uint32(bitalg.InvTwo)
	for i, left := 0, nbits; left > 0; i++ {
		v, _ := hexdigits.Value(hex[i])
		width := min(4, left)
		v &= 1<<width - 1

		p.hash = bitalg.Fold(p.hash, width, uint32(v))
		acc = bitalg.Shift(acc, width)
		if err := w.WriteBits(uint64(v), uint8(width)); err != nil {
			return nil, err
		}
		left -= width
	}
	// Close pads the last byte with zeroes.
	if err := w.Close(); err != nil {
		return nil, err
	}

	p.bits = buf.Bytes()
	p.cancel = bitalg.Cancel(acc)
	return p, nil
}

// PatternFromBytes builds a Pattern from the first nbits bits of data.
// data is copied.
func PatternFromBytes(data []byte, nbits int) (*Pattern, error) {
	if err := checkBitCount(nbits); err != nil {
		return nil, err
	}
	if nbits == 0 {
		return &Pattern{}, nil
	}

	n := byteLen(nbits)
	if len(data) < n {
		return nil, &ShortPatternError{Bits: nbits, Avail: 8 * len(data)}
	}

	p := &Pattern{nbits: nbits, bits: make([]byte, n)}
	copy(p.bits, data)
	if pad := 8*n - nbits; pad > 0 {
		p.bits[n-1] &^= byte(1)<<pad - 1
	}

	acc := uint32(bitalg.InvTwo)
	for off := 0; off < nbits; {
		width := min(8, nbits-off)
		p.hash = bitalg.Fold(p.hash, width, uint32(bitalg.Field(p.bits, off, width)))
		acc = bitalg.Shift(acc, width)
		off += width
	}
	p.cancel = bitalg.Cancel(acc)
	return p, nil
}

// MustPattern is like NewPattern but panics on error. It simplifies
// initialization of package level patterns.
func MustPattern(hex string, nbits int) *Pattern {
	p, err := NewPattern(hex, nbits)
	if err != nil {
		panic("bitsearch: MustPattern(" + hex + "): " + err.Error())
	}
	return p
}

// Len returns the number of bits in the pattern.
func (p *Pattern) Len() int { return p.nbits }

// Bytes returns a copy of the packed pattern bits. Bits past Len in the
// last byte are zero.
func (p *Pattern) Bytes() []byte {
	return bytes.Clone(p.bits)
}

// String returns the pattern as a string of '0' and '1'.
func (p *Pattern) String() string {
	var b strings.Builder
	b.Grow(p.nbits)
	for i := 0; i < p.nbits; i++ {
		b.WriteByte('0' + byte(bitalg.Bit(p.bits, i)))
	}
	return b.String()
}

func checkBitCount(nbits int) error {
	if nbits < 0 || nbits > MaxBits {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrBitCount, nbits, MaxBits)
	}
	return nil
}

// byteLen returns ceil(nbits/8) without forming nbits+7.
func byteLen(nbits int) int {
	return nbits/8 + (nbits%8+7)/8
}
