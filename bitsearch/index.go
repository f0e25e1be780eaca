package bitsearch

import "github.com/mhr3/bitmatch/internal/bitalg"

// Result is the outcome of a search. Offset is meaningful only when Found.
type Result struct {
	Offset int // bit offset of the first occurrence
	Found  bool
}

var notFound = Result{Offset: -1}

// Find returns the lowest bit offset at which the pattern occurs in data.
//
// The only error is ErrInputTooLarge, for an input whose length in bits
// does not fit in an int. Not finding the pattern is not an error.
func (p *Pattern) Find(data []byte) (Result, error) {
	if p.nbits == 0 {
		return Result{Offset: 0, Found: true}, nil
	}
	total, err := bitLen(len(data))
	if err != nil {
		return notFound, err
	}
	if total < p.nbits {
		return notFound, nil
	}
	return p.scan(data, total), nil
}

// Index returns the bit offset of the first occurrence of the pattern in
// data, or -1 if it does not occur.
//
// Index panics if data is too large to be addressed by bit; use Find to get
// that condition as an error.
func (p *Pattern) Index(data []byte) int {
	r, err := p.Find(data)
	if err != nil {
		panic("bitsearch: " + err.Error())
	}
	if !r.Found {
		return -1
	}
	return r.Offset
}

// Contains reports whether the pattern occurs anywhere in data.
func (p *Pattern) Contains(data []byte) bool {
	return p.Index(data) >= 0
}

// Index builds the pattern given by hex and nbits and returns the bit offset
// of its first occurrence in data, or -1.
func Index(data []byte, hex string, nbits int) (int, error) {
	p, err := NewPattern(hex, nbits)
	if err != nil {
		return -1, err
	}
	r, err := p.Find(data)
	if err != nil || !r.Found {
		return -1, err
	}
	return r.Offset, nil
}

// scan is a Rabin-Karp search over bit windows of p.nbits bits. total is
// the bit length of data and is at least p.nbits.
func (p *Pattern) scan(data []byte, total int) Result {
	n := p.nbits

	var h uint32
	for off := 0; off < n; {
		width := min(8, n-off)
		h = bitalg.Fold(h, width, uint32(bitalg.Field(data, off, width)))
		off += width
	}

	last := total - n
	for s := 0; ; s++ {
		if h == p.hash && p.match(data, s) {
			return Result{Offset: s, Found: true}
		}
		if s == last {
			return notFound
		}
		h = bitalg.Roll(h, p.cancel, bitalg.Bit(data, s), bitalg.Bit(data, s+n))
	}
}

// bitLen returns the length in bits of an nbytes long input.
func bitLen(nbytes int) (int, error) {
	if nbytes > maxInputLen {
		return 0, ErrInputTooLarge
	}
	return 8 * nbytes, nil
}
