package vm

import "github.com/ewal-lang/ewal/numeric"

// mapSiteOperand resolves a popped logical site index through the
// cursor's current symmetry, per spec §4.4's site mapping rule: look
// up OFFSETS[i], transform it by cur.sym, and reverse-look-up the
// result. Returns -1 if i is out of the 0..40 event-window range; the
// caller passes that straight through to the EventWindow, which per
// spec §6 treats an out-of-range site as a no-op/zero read rather than
// a VM-level error.
func mapSiteOperand(cur *Cursor, i numeric.Const) int {
	if i.IsNeg() || !i.Less(numeric.FromUint64(uint64(len(numeric.Offsets)))) {
		return -1
	}
	return numeric.MapSite(int(i.ToUint64()), cur.sym)
}

// execSite implements SwapSites, SetSite, and GetSite (opcodes 2, 3,
// 6): the three opcodes that touch the event window through a
// symmetry-mapped site index but don't also carry a field selector.
func execSite(ew EventWindow, cur *Cursor, op Op) error {
	switch op.Code {
	case OpSwapSites:
		i, j, err := cur.pop2()
		if err != nil {
			return err
		}
		ew.Swap(mapSiteOperand(cur, i), mapSiteOperand(cur, j))
		return nil

	case OpSetSite:
		i, v, err := cur.pop2()
		if err != nil {
			return err
		}
		ew.Set(mapSiteOperand(cur, i), v)
		return nil

	case OpGetSite:
		i, err := cur.pop()
		if err != nil {
			return err
		}
		cur.push(ew.Get(mapSiteOperand(cur, i)))
		return nil

	default:
		return newError(ErrNotImplemented, "site opcode %d", op.Code)
	}
}
