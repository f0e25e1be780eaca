package bitalg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fieldNaive reads the run one bit at a time.
func fieldNaive(buf []byte, offset, count int) uint8 {
	var v uint8
	for i := offset; i < offset+count; i++ {
		v = v<<1 | buf[i/8]>>(7-i%8)&1
	}
	return v
}

func TestField(t *testing.T) {
	// 1010_0101 0011_1100
	buf := []byte{0xA5, 0x3C}

	tests := []struct {
		offset, count int
		want          uint8
	}{
		{0, 1, 1},
		{1, 1, 0},
		{0, 4, 0xA},
		{4, 4, 0x5},
		{0, 8, 0xA5},
		{8, 8, 0x3C},
		{4, 8, 0x53},
		{6, 4, 0x4},
		{7, 2, 0x2},
		{15, 1, 0},
		{10, 4, 0xF},
		{3, 8, 0x29},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d+%d", tt.offset, tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, Field(buf, tt.offset, tt.count))
		})
	}
}

func TestFieldEverySubPosition(t *testing.T) {
	bufs := [][]byte{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0x5A, 0x0F, 0xC3},
		{0x80, 0x01, 0x80},
		{0x96, 0x69, 0xE1},
	}

	for _, buf := range bufs {
		for count := 1; count <= 8; count++ {
			for offset := 0; offset+count <= 8*len(buf); offset++ {
				want := fieldNaive(buf, offset, count)
				got := Field(buf, offset, count)
				assert.Equal(t, want, got, "Field(% x, %d, %d)", buf, offset, count)
				assert.Less(t, int(got), 1<<count)
			}
		}
	}
}

func TestFieldOutOfRange(t *testing.T) {
	buf := []byte{0xFF}
	assert.Panics(t, func() { Field(buf, 4, 8) })
	assert.Panics(t, func() { Field(buf, 8, 1) })
}

func TestBit(t *testing.T) {
	buf := []byte{0x40, 0x01}
	for i := 0; i < 16; i++ {
		assert.Equal(t, uint32(fieldNaive(buf, i, 1)), Bit(buf, i), "bit %d", i)
	}
}

func BenchmarkField(b *testing.B) {
	buf := []byte{0x5A, 0x0F, 0xC3, 0x96}

	b.Run("aligned", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Field(buf, 8, 8)
		}
	})

	b.Run("straddle", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Field(buf, 13, 8)
		}
	})

	b.Run("naive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fieldNaive(buf, 13, 8)
		}
	})
}
