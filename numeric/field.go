package numeric

import "math/big"

// FieldSelector names a contiguous bit range within a 96-bit atom
// payload: Length bits starting at Offset.
type FieldSelector struct {
	Offset uint8
	Length uint8
}

// The three standard selectors every compiled object's field map is
// pre-populated with (spec §4.2).
var (
	TypeField   = FieldSelector{Offset: 80, Length: 16}
	HeaderField = FieldSelector{Offset: 71, Length: 25}
	DataField   = FieldSelector{Offset: 0, Length: 71}
)

// MarshalWire encodes f as the little-endian u16 the object format uses
// (the one little-endian element in an otherwise big-endian format).
func (f FieldSelector) MarshalWire() uint16 {
	return uint16(f.Offset) | uint16(f.Length)<<8
}

// UnmarshalFieldSelector decodes a wire-format u16 into a FieldSelector.
func UnmarshalFieldSelector(v uint16) FieldSelector {
	return FieldSelector{Offset: uint8(v & 0xFF), Length: uint8(v >> 8)}
}

func fieldMask(length uint8) *big.Int {
	if length == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(length)), big.NewInt(1))
}

// Apply extracts the Length-bit field at Offset from c's raw
// representation, zero-extended, always returning an Unsigned Const.
// A zero-length field yields zero; a field positioned beyond the 128
// stored bits yields zero.
func (c Const) Apply(f FieldSelector) Const {
	if f.Length == 0 || f.Offset >= 128 {
		return ZeroUnsigned()
	}
	bp := bitPattern(c)
	shifted := new(big.Int).Rsh(bp, uint(f.Offset))
	extracted := new(big.Int).And(shifted, fieldMask(f.Length))
	return Const{variant: Unsigned, mag: *extracted}
}

// ApplySigned extracts the Length-bit field at Offset from c's raw
// representation using sign-magnitude decoding: the field's top bit is
// a pure sign flag and the remaining Length-1 bits are the magnitude
// (spec §3/§8 property 2 — this is not two's-complement sign
// extension). A zero-length field yields zero.
func (c Const) ApplySigned(f FieldSelector) Const {
	if f.Length == 0 || f.Offset >= 128 {
		return ZeroUnsigned()
	}
	bp := bitPattern(c)
	shifted := new(big.Int).Rsh(bp, uint(f.Offset))
	masked := new(big.Int).And(shifted, fieldMask(f.Length))

	if f.Length == 1 {
		// A single-bit field has no magnitude bits left once the sign
		// bit is removed; treat it as unsigned 0 or 1.
		return Const{variant: Unsigned, mag: *masked}
	}

	signBit := masked.Bit(int(f.Length) - 1)
	magMask := fieldMask(f.Length - 1)
	magnitude := new(big.Int).And(masked, magMask)
	if signBit == 0 {
		return Const{variant: Unsigned, mag: *magnitude}
	}
	neg := new(big.Int).Neg(magnitude)
	return Const{variant: Signed, mag: *neg}
}

// Store masked-merges the low Length bits of src's raw representation
// into c at Offset, preserving all other bits of c, and preserving c's
// own variant tag (spec §3 — this is the canonical masked-merge
// behavior, not the OR-in variant one legacy source flavor used; see
// SPEC_FULL.md Open Questions).
func (c Const) Store(src Const, f FieldSelector) Const {
	if f.Length == 0 || f.Offset >= 128 {
		return c
	}
	selfBits := bitPattern(c)
	srcBits := bitPattern(src)

	mask := new(big.Int).Lsh(fieldMask(f.Length), uint(f.Offset))
	srcField := new(big.Int).Lsh(new(big.Int).And(srcBits, fieldMask(f.Length)), uint(f.Offset))

	cleared := new(big.Int).AndNot(selfBits, mask)
	merged := new(big.Int).Or(cleared, srcField)
	merged.Mod(merged, twoPow128)

	return fromBitPattern(merged, c.variant)
}
