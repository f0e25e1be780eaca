package bitalg

// Field returns count bits of buf starting at bit offset, packed into the
// low-order bits of the result. Bit 0 of a byte is its most significant bit.
// A run that straddles a byte boundary takes its high-order bits from the
// tail of the first byte and its low-order bits from the head of the next.
//
// No contract checks are made beyond Go's own bounds checks: count must be
// in [1, 8] and offset+count must not exceed 8*len(buf).
func Field(buf []byte, offset, count int) uint8 {
	idx := offset >> 3
	shift := offset & 7
	mask := uint16(1)<<count - 1

	if shift+count <= 8 {
		return uint8(uint16(buf[idx]>>(8-shift-count)) & mask)
	}

	// straddle: load both bytes as one big-endian 16 bit word
	_ = buf[idx+1]
	w := uint16(buf[idx])<<8 | uint16(buf[idx+1])
	return uint8((w >> (16 - shift - count)) & mask)
}

// Bit returns the single bit of buf at offset.
func Bit(buf []byte, offset int) uint32 {
	return uint32(buf[offset>>3]>>(7-offset&7)) & 1
}
