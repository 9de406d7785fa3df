// Package numeric implements the saturating multi-width integer and
// bit-field algebra shared by the EWAL compiler and runtime. Both sides
// must agree on this package's behavior to the bit; see SPEC_FULL.md.
package numeric

import "math/big"

// Variant tags a Const as carrying unsigned or signed semantics.
type Variant uint8

const (
	Unsigned Variant = iota
	Signed
)

func (v Variant) String() string {
	if v == Signed {
		return "signed"
	}
	return "unsigned"
}

// Const is a tagged 128-bit integer. mag always holds the true
// mathematical value: non-negative and in [0, 2^128) for Unsigned,
// possibly negative and in [-2^127, 2^127) for Signed. Keeping the real
// value (rather than a raw two's-complement word) makes comparison and
// arithmetic exact; bitwise operations reconstruct the raw 128-bit
// two's-complement pattern on demand via bitPattern.
type Const struct {
	variant Variant
	mag     big.Int
}

var (
	twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)
	twoPow127 = new(big.Int).Lsh(big.NewInt(1), 127)

	uMin = big.NewInt(0)
	uMax = new(big.Int).Sub(twoPow128, big.NewInt(1))
	sMin = new(big.Int).Neg(twoPow127)
	sMax = new(big.Int).Sub(twoPow127, big.NewInt(1))
)

func bounds(v Variant) (lo, hi *big.Int) {
	if v == Signed {
		return sMin, sMax
	}
	return uMin, uMax
}

// saturate clamps v into variant's range and returns the resulting Const.
// v is consumed (not copied further) by the caller's convention: callers
// pass a big.Int they no longer need.
func saturate(v *big.Int, variant Variant) Const {
	lo, hi := bounds(variant)
	if v.Cmp(lo) < 0 {
		v = new(big.Int).Set(lo)
	} else if v.Cmp(hi) > 0 {
		v = new(big.Int).Set(hi)
	}
	return Const{variant: variant, mag: *v}
}

// ZeroUnsigned is the additive identity, tagged Unsigned.
func ZeroUnsigned() Const { return Const{variant: Unsigned} }

// ZeroSigned is the additive identity, tagged Signed.
func ZeroSigned() Const { return Const{variant: Signed} }

// MaxUnsigned returns Unsigned(2^128 - 1).
func MaxUnsigned() Const { return Const{variant: Unsigned, mag: *new(big.Int).Set(uMax)} }

// MinSigned returns Signed(-2^127).
func MinSigned() Const { return Const{variant: Signed, mag: *new(big.Int).Set(sMin)} }

// MaxSigned returns Signed(2^127 - 1).
func MaxSigned() Const { return Const{variant: Signed, mag: *new(big.Int).Set(sMax)} }

func FromUint64(v uint64) Const { return Const{variant: Unsigned, mag: *new(big.Int).SetUint64(v)} }
func FromUint32(v uint32) Const { return FromUint64(uint64(v)) }
func FromUint16(v uint16) Const { return FromUint64(uint64(v)) }
func FromUint8(v uint8) Const   { return FromUint64(uint64(v)) }

func FromInt64(v int64) Const { return Const{variant: Signed, mag: *big.NewInt(v)} }
func FromInt32(v int32) Const { return FromInt64(int64(v)) }
func FromInt16(v int16) Const { return FromInt64(int64(v)) }
func FromInt8(v int8) Const   { return FromInt64(int64(v)) }

// Variant reports whether c is Unsigned or Signed.
func (c Const) Variant() Variant { return c.variant }

// IsSigned reports whether c carries signed semantics.
func (c Const) IsSigned() bool { return c.variant == Signed }

// IsZero reports whether c's value is zero.
func (c Const) IsZero() bool { return c.mag.Sign() == 0 }

// IsNeg reports whether c's value is negative.
func (c Const) IsNeg() bool { return c.mag.Sign() < 0 }

// Cmp gives a total, cross-variant order: c.mag always holds the true
// value, so ordinary integer comparison already satisfies spec's rule
// that a negative Signed sorts below every Unsigned value.
func (c Const) Cmp(o Const) int { return c.mag.Cmp(&o.mag) }

// Equal reports whether c and o compare equal under Cmp.
func (c Const) Equal(o Const) bool { return c.Cmp(o) == 0 }

// Neg returns -c, always tagged Signed, saturating at the Signed bounds.
func (c Const) Neg() Const {
	v := new(big.Int).Neg(&c.mag)
	return saturate(v, Signed)
}

// Abs returns the absolute value of c, preserving c's variant, except
// that the most-negative Signed value saturates to Unsigned(2^127 - 1)
// per spec (the one case where Abs changes variant).
func (c Const) Abs() Const {
	if c.variant == Signed && c.mag.Cmp(sMin) == 0 {
		return Const{variant: Unsigned, mag: *new(big.Int).Set(sMax)}
	}
	v := new(big.Int).Abs(&c.mag)
	return saturate(v, c.variant)
}

// ToUint64 truncates c's raw 128-bit representation to its low 64 bits.
func (c Const) ToUint64() uint64 {
	lo := new(big.Int).And(bitPattern(c), mask64)
	return lo.Uint64()
}

// ToInt64 truncates c's raw 128-bit representation to its low 64 bits,
// reinterpreted as two's-complement signed.
func (c Const) ToInt64() int64 {
	return truncateSigned(bitPattern(c), 64)
}

// ToUint32 truncates c's raw representation to its low 32 bits.
func (c Const) ToUint32() uint32 { return uint32(c.ToUint64()) }

// ToInt32 truncates c's raw representation to its low 32 bits, signed.
func (c Const) ToInt32() int32 { return int32(truncateSigned(bitPattern(c), 32)) }

// ToUint8 truncates c's raw representation to its low 8 bits.
func (c Const) ToUint8() uint8 { return uint8(c.ToUint64()) }

func truncateSigned(bp *big.Int, width uint) int64 {
	m := new(big.Int).Lsh(big.NewInt(1), width)
	low := new(big.Int).Mod(bp, m)
	if low.Bit(int(width)-1) == 1 {
		low.Sub(low, m)
	}
	return low.Int64()
}

var mask64 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))

// String renders c in the form "Unsigned(42)" / "Signed(-3)", matching
// the teacher's Dump-style debug formatting rather than a bare number so
// the variant is never ambiguous in logs.
func (c Const) String() string {
	if c.variant == Signed {
		return "Signed(" + c.mag.String() + ")"
	}
	return "Unsigned(" + c.mag.String() + ")"
}
