package bitsearch

import "github.com/mhr3/bitmatch/internal/bitalg"

// MatchAt reports whether data holds the pattern starting at bit offset.
// It is false when the pattern would not fit at offset.
func (p *Pattern) MatchAt(data []byte, offset int) bool {
	if offset < 0 || len(data) > maxInputLen || offset > 8*len(data)-p.nbits {
		return false
	}
	return p.match(data, offset)
}

// match compares the pattern with data at offset, up to 8 bits at a time.
// The caller guarantees offset+p.nbits <= 8*len(data).
func (p *Pattern) match(data []byte, offset int) bool {
	for off := 0; off < p.nbits; {
		width := min(8, p.nbits-off)
		if bitalg.Field(data, offset+off, width) != bitalg.Field(p.bits, off, width) {
			return false
		}
		off += width
	}
	return true
}
