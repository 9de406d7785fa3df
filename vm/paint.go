package vm

import "github.com/ewal-lang/ewal/numeric"

// execPaint implements SetPaint, GetPaint, and Rand (opcodes 88, 89,
// 90): the three opcodes that read or write window-scoped state
// outside the 41-site neighborhood rather than an individual atom.
func execPaint(ew EventWindow, cur *Cursor, op Op) error {
	switch op.Code {
	case OpSetPaint:
		v, err := cur.pop()
		if err != nil {
			return err
		}
		ew.SetPaint(v.ToUint32())
		return nil

	case OpGetPaint:
		cur.push(numeric.FromUint32(ew.GetPaint()))
		return nil

	case OpRand:
		cur.push(ew.Rand())
		return nil

	default:
		return newError(ErrNotImplemented, "paint opcode %d", op.Code)
	}
}
