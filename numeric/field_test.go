package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_ZeroExtends(t *testing.T) {
	// A 16-bit type field at offset 80, with bit 80+15 (the sign bit a
	// signed read would care about) set: Apply must still zero-extend.
	var c Const
	c = FromUint64(0)
	c = c.Store(FromUint64(0xFFFF), TypeField)

	got := c.Apply(TypeField)
	assert.False(t, got.IsSigned())
	assert.True(t, got.Equal(FromUint64(0xFFFF)))
}

func TestApplySigned_TopBitIsPureSignFlag(t *testing.T) {
	f := FieldSelector{Offset: 0, Length: 8}

	// 0b10000101: sign bit set, magnitude = 0b0000101 = 5 -> Signed(-5).
	c := FromUint64(0).Store(FromUint64(0b10000101), f)
	got := c.ApplySigned(f)
	assert.True(t, got.IsSigned())
	assert.True(t, got.Equal(FromInt64(-5)), "got %s", got)

	// Sign bit clear: magnitude alone, Unsigned.
	c2 := FromUint64(0).Store(FromUint64(0b00000101), f)
	got2 := c2.ApplySigned(f)
	assert.False(t, got2.IsSigned())
	assert.True(t, got2.Equal(FromUint64(5)))
}

func TestApplySigned_OneBitFieldIsUnsigned(t *testing.T) {
	f := FieldSelector{Offset: 3, Length: 1}
	c := FromUint64(0).Store(FromUint64(1), f)
	got := c.ApplySigned(f)
	assert.False(t, got.IsSigned())
	assert.True(t, got.Equal(FromUint64(1)))
}

func TestStore_MaskedMergePreservesOtherBits(t *testing.T) {
	f := FieldSelector{Offset: 8, Length: 8}
	base := FromUint64(0xFFFF) // bits 0-15 all set
	merged := base.Store(FromUint64(0x00), f)

	// Bits 8-15 cleared, bits 0-7 untouched.
	assert.True(t, merged.Apply(FieldSelector{Offset: 0, Length: 8}).Equal(FromUint64(0xFF)))
	assert.True(t, merged.Apply(FieldSelector{Offset: 8, Length: 8}).Equal(FromUint64(0x00)))
}

func TestStore_PreservesVariantOfDestination(t *testing.T) {
	base := FromInt64(-1)
	merged := base.Store(FromUint64(0), FieldSelector{Offset: 0, Length: 4})
	assert.True(t, merged.IsSigned(), "Store should keep the destination's own variant tag")
}

func TestFieldSelectorWireRoundTrip(t *testing.T) {
	for _, f := range []FieldSelector{TypeField, HeaderField, DataField, {Offset: 5, Length: 3}} {
		got := UnmarshalFieldSelector(f.MarshalWire())
		assert.Equal(t, f, got)
	}
}
