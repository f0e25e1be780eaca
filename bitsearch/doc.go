// Package bitsearch finds the first occurrence of a bit pattern in a byte
// slice at any bit offset.
//
// Bits are numbered from 0, most significant bit of each byte first:
//
//	byte   0               1
//	      +---------------+---------------+-
//	      |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|
//	      +---------------+---------------+-
//	bit    0 1 2 3 4 5 6 7 8 9 ...
//
// A Pattern is built once, with NewPattern from hexadecimal text or with
// PatternFromBytes, and can then be searched for in any number of inputs.
// The search is a Rabin-Karp scan over a bit-wide window whose hash is
// rolled one bit at a time; candidates with a matching hash are confirmed by
// an exact comparison, so hash collisions never produce a false match.
//
//	p, err := bitsearch.NewPattern("A", 4) // 1010
//	if err != nil {
//		return err
//	}
//	off := p.Index([]byte{0x5A, 0x0F}) // 4
package bitsearch
