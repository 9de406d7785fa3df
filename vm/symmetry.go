package vm

// execSymmetry implements SaveSymmetries, UseSymmetries, and
// RestoreSymmetries (opcodes 14, 15, 16): pushing/popping the
// cursor's symmetry stack and, for UseSymmetries, resolving the
// instruction's fixed symmetry set down to one concrete orientation
// via the event window's randomness source.
func execSymmetry(ew EventWindow, cur *Cursor, op Op) error {
	switch op.Code {
	case OpSaveSymmetries:
		cur.saveSymmetry()
	case OpUseSymmetries:
		cur.sym = op.Symmetries.Select(ew.RandU32())
	case OpRestoreSymmetries:
		cur.restoreSymmetry()
	default:
		return newError(ErrNotImplemented, "symmetry opcode %d", op.Code)
	}
	return nil
}
