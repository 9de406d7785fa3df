package vm

import "github.com/ewal-lang/ewal/numeric"

// execArith implements the arithmetic, bitwise, and comparison family
// (opcodes 67..83). All of it follows numeric.Const's own saturating
// contracts; this file only handles stack shuffling and the boolean
// encoding comparisons use (0/1 as Unsigned).
//
// LShift and RShift preserve the wire format's swapped mnemonics:
// LShift pops (a,b) and pushes a>>b; RShift pops (a,b) and pushes
// a<<b. This is intentional — see ast.LShift/ast.RShift — not a bug.
func execArith(cur *Cursor, op Op) error {
	switch op.Code {
	case OpNeg:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.Neg())
		return nil

	case OpBitCount:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.BitCount())
		return nil

	case OpBitScanForward:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.BitScanForward())
		return nil

	case OpBitScanReverse:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.BitScanReverse())
		return nil
	}

	a, b, err := cur.pop2()
	if err != nil {
		return err
	}

	switch op.Code {
	case OpAdd:
		cur.push(a.Add(b))
	case OpSub:
		cur.push(a.Sub(b))
	case OpMod:
		cur.push(a.Mod(b))
	case OpMul:
		cur.push(a.Mul(b))
	case OpDiv:
		cur.push(a.Div(b))
	case OpLess:
		cur.push(boolConst(a.Less(b)))
	case OpLessEqual:
		cur.push(boolConst(a.LessEqual(b)))
	case OpOr:
		cur.push(a.Or(b))
	case OpAnd:
		cur.push(a.And(b))
	case OpXor:
		cur.push(a.Xor(b))
	case OpEqual:
		cur.push(boolConst(a.Equal(b)))
	case OpLShift:
		cur.push(a.Shr(b))
	case OpRShift:
		cur.push(a.Shl(b))
	default:
		return newError(ErrNotImplemented, "arithmetic opcode %d", op.Code)
	}
	return nil
}

func boolConst(v bool) numeric.Const {
	if v {
		return numeric.FromUint64(1)
	}
	return numeric.FromUint64(0)
}
