package vm

// execStack implements the Forth-style rearrangement opcodes: Pop,
// Dup, Over, Swap, Rot.
func execStack(cur *Cursor, op Op) error {
	switch op.Code {
	case OpPop:
		_, err := cur.pop()
		return err

	case OpDup:
		top, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(top)
		cur.push(top)
		return nil

	case OpOver:
		b, err := cur.pop()
		if err != nil {
			return err
		}
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a)
		cur.push(b)
		cur.push(a)
		return nil

	case OpSwap:
		a, b, err := cur.pop2()
		if err != nil {
			return err
		}
		cur.push(b)
		cur.push(a)
		return nil

	case OpRot:
		c, err := cur.pop()
		if err != nil {
			return err
		}
		b, err := cur.pop()
		if err != nil {
			return err
		}
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(b)
		cur.push(c)
		cur.push(a)
		return nil

	default:
		return newError(ErrNotImplemented, "stack opcode %d", op.Code)
	}
}
