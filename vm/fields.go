package vm

// execField implements the Get/SetField family (opcodes 4, 5, 7, 8,
// 9, 10): masked-merge writes and zero-/sign-extended reads, either
// against a popped value directly or against a site the stack's index
// operand maps to.
func execField(ew EventWindow, cur *Cursor, op Op) error {
	switch op.Code {
	case OpSetField:
		base, src, err := cur.pop2()
		if err != nil {
			return err
		}
		cur.push(base.Store(src, op.Field))
		return nil

	case OpSetSiteField:
		i, src, err := cur.pop2()
		if err != nil {
			return err
		}
		site := mapSiteOperand(cur, i)
		ew.Set(site, ew.Get(site).Store(src, op.Field))
		return nil

	case OpGetField:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.Apply(op.Field))
		return nil

	case OpGetSiteField:
		i, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(ew.Get(mapSiteOperand(cur, i)).Apply(op.Field))
		return nil

	case OpGetSignedField:
		a, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(a.ApplySigned(op.Field))
		return nil

	case OpGetSignedSiteField:
		i, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(ew.Get(mapSiteOperand(cur, i)).ApplySigned(op.Field))
		return nil

	default:
		return newError(ErrNotImplemented, "field opcode %d", op.Code)
	}
}
