package bitalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvTwo(t *testing.T) {
	require.True(t, big.NewInt(Prime).ProbablyPrime(0))
	assert.EqualValues(t, 1, (2*InvTwo)%Prime)
}

// hashNaive hashes a string of '0' and '1' with big integers.
func hashNaive(bits string) uint32 {
	if bits == "" {
		return 0
	}
	n, _ := new(big.Int).SetString(bits, 2)
	return uint32(n.Mod(n, big.NewInt(Prime)).Uint64())
}

func TestFold(t *testing.T) {
	bits := "1011001110001111010101"
	var h uint32
	for i := 0; i < len(bits); i++ {
		h = Fold(h, 1, uint32(bits[i]-'0'))
		assert.Equal(t, hashNaive(bits[:i+1]), h, bits[:i+1])
	}

	// wider chunks reach the same value
	h = 0
	h = Fold(h, 8, 0xB3)
	h = Fold(h, 8, 0x8F)
	h = Fold(h, 6, 0x15)
	assert.Equal(t, hashNaive(bits), h)
}

func TestCancel(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		acc := uint32(InvTwo)
		for left := n; left > 0; {
			w := min(4, left)
			acc = Shift(acc, w)
			left -= w
		}

		pow := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(n-1)), big.NewInt(Prime))
		require.EqualValues(t, pow.Uint64(), acc, "n=%d", n)

		c := Cancel(acc)
		assert.Less(t, c, uint32(Prime))
		assert.EqualValues(t, 0, (uint64(c)+pow.Uint64())%Prime, "n=%d", n)
	}
}

func TestRoll(t *testing.T) {
	data := "0110100110010110100101101001011001101001"
	const n = 11

	acc := uint32(InvTwo)
	for i := 0; i < n; i++ {
		acc = Shift(acc, 1)
	}
	cancel := Cancel(acc)

	h := hashNaive(data[:n])
	for s := 1; s+n <= len(data); s++ {
		h = Roll(h, cancel, uint32(data[s-1]-'0'), uint32(data[s+n-1]-'0'))
		assert.Equal(t, hashNaive(data[s:s+n]), h, "window %d", s)
	}
}
