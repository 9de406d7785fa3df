package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitCount(t *testing.T) {
	tests := []struct {
		name string
		c    Const
		want uint64
	}{
		{"zero", FromUint64(0), 0},
		{"one bit", FromUint64(1), 1},
		{"0xFF", FromUint64(0xFF), 8},
		{"all ones 128-bit pattern", FromInt64(-1), 128}, // -1 is all-ones across the full 128 bits
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.BitCount()
			assert.True(t, got.Equal(FromUint64(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestBitScanForward(t *testing.T) {
	tests := []struct {
		name string
		c    Const
		want uint64
	}{
		{"zero has no set bit", FromUint64(0), 128},
		{"low bit set", FromUint64(1), 0},
		{"bit 4 set", FromUint64(0b10000), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.BitScanForward()
			assert.True(t, got.Equal(FromUint64(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestBitScanReverse(t *testing.T) {
	tests := []struct {
		name string
		c    Const
		want uint64
	}{
		{"zero has no set bit", FromUint64(0), 128},
		{"low bit set", FromUint64(1), 0},
		{"bit 4 set", FromUint64(0b10000), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.BitScanReverse()
			assert.True(t, got.Equal(FromUint64(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestBitScanReverse_HighBit(t *testing.T) {
	c := FromUint64(0x8000000000000000)
	got := c.BitScanReverse()
	assert.True(t, got.Equal(FromUint64(63)), "got %s, want 63", got)
}
