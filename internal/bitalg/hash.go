package bitalg

// The rolling hash treats a window of bits as a base-2 numeral reduced
// modulo Prime, most significant bit first.
//
// Changing Prime requires changing InvTwo: InvTwo*2 must be 1 mod Prime so
// that shifting InvTwo left once per consumed bit yields 2^(n-1) mod Prime
// after n bits.
const (
	Prime  = 167
	InvTwo = 84
)

// Fold appends the width low-order bits of v to the numeral hashed in h.
// width must be at most 8 so that h<<width stays far below 2^32.
func Fold(h uint32, width int, v uint32) uint32 {
	return (h<<width + v) % Prime
}

// Shift advances the cancellation accumulator by width bits.
func Shift(acc uint32, width int) uint32 {
	return (acc << width) % Prime
}

// Cancel turns the accumulated 2^(n-1) mod Prime into the constant that,
// added to a window hash, removes a leading 1 bit of an n bit window.
func Cancel(acc uint32) uint32 {
	return (Prime - acc) % Prime
}

// Roll slides an n bit window hash h by one bit: out is the bit leaving the
// window at the front, in the bit entering at the back, and cancel is the
// constant derived for n by Cancel.
func Roll(h, cancel, out, in uint32) uint32 {
	if out == 1 {
		h = (h + cancel) % Prime
	}
	return (h<<1 + in) % Prime
}
