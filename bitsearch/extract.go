package bitsearch

import (
	"fmt"

	"github.com/mhr3/bitmatch/internal/bitalg"
)

// Extract returns count bits of buf starting at bit offset as an unsigned
// integer: the first bit read is the most significant bit of the result.
// The run may straddle a byte boundary.
//
// Extract panics if count is not in [1, 8] or the run does not lie within
// buf. Callers are expected to know the length of what they read from.
func Extract(buf []byte, offset, count int) uint8 {
	if count < 1 || count > 8 {
		panic(fmt.Sprintf("bitsearch: extract count %d out of range [1, 8]", count))
	}
	if offset < 0 || len(buf) > maxInputLen || offset > 8*len(buf)-count {
		panic(fmt.Sprintf("bitsearch: extract of %d bits at offset %d out of range for %d bytes", count, offset, len(buf)))
	}
	return bitalg.Field(buf, offset, count)
}
