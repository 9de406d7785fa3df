package vm

import "github.com/ewal-lang/ewal/numeric"

// execJumpRelative implements JumpRelativeOffset (opcode 85): pops a
// displacement and moves ip by it, saturating at the uint16 range. A
// zero displacement is disallowed since it would otherwise spin in
// place forever without making progress.
func execJumpRelative(cur *Cursor) error {
	d, err := cur.pop()
	if err != nil {
		return err
	}
	if d.IsZero() {
		return newError(ErrInvalidJump, "zero jump offset")
	}

	// Clamp the magnitude before narrowing it, so that huge
	// displacements saturate instead of wrapping.
	mag := int64(0x10000)
	if a := d.Abs(); a.Less(numeric.FromUint64(0x10000)) {
		mag = int64(a.ToUint64())
	}

	var next int64
	if d.IsNeg() {
		next = int64(cur.ip) - mag
	} else {
		next = int64(cur.ip) + mag
	}

	switch {
	case next < 0:
		next = 0
	case next > 0xFFFF:
		next = 0xFFFF
	}
	cur.ip = uint16(next)
	return nil
}

// execJumpConditional implements JumpZero and JumpNonZero (86, 87):
// pops the tested value and reports whether the branch was taken, so
// the caller knows whether to suppress the usual post-increment.
func execJumpConditional(cur *Cursor, op Op) (taken bool, err error) {
	x, err := cur.pop()
	if err != nil {
		return false, err
	}
	switch op.Code {
	case OpJumpZero:
		taken = x.IsZero()
	case OpJumpNonZero:
		taken = !x.IsZero()
	default:
		return false, newError(ErrNotImplemented, "conditional jump opcode %d", op.Code)
	}
	if taken {
		cur.ip = op.Target
	}
	return taken, nil
}
