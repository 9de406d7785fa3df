package numeric

import "math/big"

// combine prepares the two operands of a binary arithmetic op for exact
// big.Int computation. When both operands share a variant, it is a
// no-op copy. When they differ, the Unsigned operand is widened to
// Signed by saturating at i128::MAX (spec §3); the result variant is the
// left operand's original variant, per spec's "result's sign follows the
// left operand" rule.
func combine(a, b Const) (av, bv *big.Int, result Variant) {
	result = a.variant
	av = new(big.Int).Set(&a.mag)
	bv = new(big.Int).Set(&b.mag)

	if a.variant == b.variant {
		return av, bv, result
	}

	// Mixed variants: widen whichever operand is Unsigned into Signed
	// range by clamping at sMax (an Unsigned value is never negative, so
	// only the upper bound can be exceeded).
	if a.variant == Unsigned {
		if av.Cmp(sMax) > 0 {
			av = new(big.Int).Set(sMax)
		}
	} else {
		if bv.Cmp(sMax) > 0 {
			bv = new(big.Int).Set(sMax)
		}
	}
	return av, bv, result
}

// Add returns a+b, saturating at the result variant's bounds.
func (a Const) Add(b Const) Const {
	av, bv, rv := combine(a, b)
	return saturate(new(big.Int).Add(av, bv), rv)
}

// Sub returns a-b, saturating at the result variant's bounds.
func (a Const) Sub(b Const) Const {
	av, bv, rv := combine(a, b)
	return saturate(new(big.Int).Sub(av, bv), rv)
}

// Mul returns a*b, saturating at the result variant's bounds.
func (a Const) Mul(b Const) Const {
	av, bv, rv := combine(a, b)
	return saturate(new(big.Int).Mul(av, bv), rv)
}

// Div returns a/b truncated toward zero, saturating at the result
// variant's bounds. Division by zero saturates toward the sign of the
// dividend (positive dividend saturates high, negative saturates low,
// zero dividend yields zero) rather than panicking — Const is a total,
// panic-free value type and spec is silent on this case.
func (a Const) Div(b Const) Const {
	av, bv, rv := combine(a, b)
	if bv.Sign() == 0 {
		return saturate(divByZero(av), rv)
	}
	return saturate(new(big.Int).Quo(av, bv), rv)
}

// Mod returns a%b with the sign of the dividend (Go/Rust-style
// truncating remainder), saturating at the result variant's bounds.
// Modulus by zero yields zero.
func (a Const) Mod(b Const) Const {
	av, bv, rv := combine(a, b)
	if bv.Sign() == 0 {
		return saturate(big.NewInt(0), rv)
	}
	return saturate(new(big.Int).Rem(av, bv), rv)
}

func divByZero(dividend *big.Int) *big.Int {
	switch dividend.Sign() {
	case 1:
		return new(big.Int).Set(uMax) // saturate() below clamps to the real bound
	case -1:
		return new(big.Int).Set(sMin)
	default:
		return big.NewInt(0)
	}
}

// RawBits exposes c's raw 128-bit two's-complement representation as a
// non-negative value in [0, 2^128), for packages that need to
// serialize a Const's bit pattern directly (e.g. the object-file
// writer's truncated 96-bit constant encoding).
func RawBits(c Const) *big.Int { return bitPattern(c) }

// bitPattern returns the raw 128-bit two's-complement representation of
// c as a non-negative big.Int in [0, 2^128). big.Int's Mod is Euclidean
// (always non-negative for a positive modulus), which is exactly the
// two's-complement truncation rule for negative Signed values.
func bitPattern(c Const) *big.Int {
	return new(big.Int).Mod(&c.mag, twoPow128)
}

// FromRawBits reconstructs a Const of the given variant from a raw
// 128-bit two's-complement pattern, for packages (objfile) that decode
// a Const's bit pattern directly off the wire.
func FromRawBits(bp *big.Int, variant Variant) Const { return fromBitPattern(bp, variant) }

// fromBitPattern reconstructs a Const of the given variant from a raw
// 128-bit pattern (assumed already reduced into [0, 2^128)).
func fromBitPattern(bp *big.Int, variant Variant) Const {
	if variant == Unsigned {
		return Const{variant: Unsigned, mag: *new(big.Int).Set(bp)}
	}
	v := new(big.Int).Set(bp)
	if bp.Bit(127) == 1 {
		v.Sub(v, twoPow128)
	}
	return Const{variant: Signed, mag: *v}
}

// And returns the bitwise AND of the raw representations, tagged with
// the left operand's variant.
func (a Const) And(b Const) Const {
	return fromBitPattern(new(big.Int).And(bitPattern(a), bitPattern(b)), a.variant)
}

// Or returns the bitwise OR of the raw representations, tagged with the
// left operand's variant.
func (a Const) Or(b Const) Const {
	return fromBitPattern(new(big.Int).Or(bitPattern(a), bitPattern(b)), a.variant)
}

// Xor returns the bitwise XOR of the raw representations, tagged with
// the left operand's variant.
func (a Const) Xor(b Const) Const {
	return fromBitPattern(new(big.Int).Xor(bitPattern(a), bitPattern(b)), a.variant)
}

// shiftCount clamps a shift amount to [0, 128]: any larger count zeroes
// (Shl) or drains (Shr) every bit of a 128-bit word, so clamping avoids
// building an oversized big.Int for pathological shift operands.
func shiftCount(n Const) uint {
	if n.IsNeg() {
		return 0
	}
	if n.mag.Cmp(big.NewInt(128)) > 0 {
		return 128
	}
	return uint(n.mag.Uint64())
}

// Shl shifts the raw representation left by n bits, tagged with the
// left operand's variant.
func (a Const) Shl(n Const) Const {
	shifted := new(big.Int).Lsh(bitPattern(a), shiftCount(n))
	return fromBitPattern(new(big.Int).Mod(shifted, twoPow128), a.variant)
}

// Shr shifts the raw representation right by n bits (logical, not
// arithmetic — it operates on the two's-complement bit pattern per
// spec §3), tagged with the left operand's variant.
func (a Const) Shr(n Const) Const {
	shifted := new(big.Int).Rsh(bitPattern(a), shiftCount(n))
	return fromBitPattern(shifted, a.variant)
}

// Less reports whether a orders before b under the cross-variant total
// order (spec §8 property 4).
func (a Const) Less(b Const) bool { return a.Cmp(b) < 0 }

// LessEqual reports whether a orders at or before b.
func (a Const) LessEqual(b Const) bool { return a.Cmp(b) <= 0 }
