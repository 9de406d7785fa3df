package vm

import "github.com/ewal-lang/ewal/numeric"

// Execute runs cur to completion against ew, using rt's code tables:
// it reads the center atom's type, looks up that type's program, and
// dispatches instructions one at a time per spec §4.4, returning on
// Exit, on running off the end with an empty call stack, or on the
// first error. Errors propagate without any rollback of effects
// Execute already applied to ew — there is no snapshot/restore.
func Execute(ew EventWindow, cur *Cursor, rt *Runtime) error {
	center := ew.Get(0)
	typeID := uint16(center.Apply(numeric.TypeField).ToUint64())

	code, ok := rt.code[typeID]
	if !ok {
		return newError(ErrUnknownElement, "type id %d", typeID)
	}

	for {
		if int(cur.ip) >= len(code) {
			resumeAt, halt := cur.popCall()
			if halt {
				return nil
			}
			cur.ip = resumeAt
			continue
		}

		op := code[cur.ip]
		branched, halt, err := dispatch(ew, cur, op)
		if err != nil {
			return err
		}
		if halt || op.Code == OpExit {
			return nil
		}
		if !branched {
			cur.ip++
		}
	}
}

// dispatch executes a single decoded Op. branched reports whether it
// already set cur.ip itself (call/jump/branch-taken/return), in which
// case Execute must not post-increment; halt reports whether a Ret
// popped the call-stack sentinel and execution should stop now.
func dispatch(ew EventWindow, cur *Cursor, op Op) (branched, halt bool, err error) {
	switch {
	case op.Code == OpNop || op.Code == OpExit:
		return false, false, nil

	case op.Code == OpSwapSites || op.Code == OpSetSite || op.Code == OpGetSite:
		return false, false, execSite(ew, cur, op)

	case op.Code == OpSetField || op.Code == OpSetSiteField ||
		op.Code == OpGetField || op.Code == OpGetSiteField ||
		op.Code == OpGetSignedField || op.Code == OpGetSignedSiteField:
		return false, false, execField(ew, cur, op)

	case op.Code == OpGetType:
		cur.push(numeric.FromUint64(uint64(op.TypeID)))
		return false, false, nil

	case op.Code == OpGetParameter || op.Code == OpPush:
		cur.push(op.Const)
		return false, false, nil

	case op.Code >= OpPush0 && op.Code <= OpPush40:
		cur.push(numeric.FromUint64(uint64(op.Small)))
		return false, false, nil

	case op.Code == OpScan || op.Code == OpChecksum:
		return false, false, newError(ErrNotImplemented, "opcode %d reserved", op.Code)

	case op.Code == OpSaveSymmetries || op.Code == OpUseSymmetries || op.Code == OpRestoreSymmetries:
		return false, false, execSymmetry(ew, cur, op)

	case op.Code == OpPop || op.Code == OpDup || op.Code == OpOver ||
		op.Code == OpSwap || op.Code == OpRot:
		return false, false, execStack(cur, op)

	case op.Code == OpCall:
		cur.pushCall(cur.ip)
		cur.ip = op.Target
		return true, false, nil

	case op.Code == OpRet:
		resumeAt, h := cur.popCall()
		if h {
			return true, true, nil
		}
		cur.ip = resumeAt
		return true, false, nil

	case op.Code >= OpAdd && op.Code <= OpRShift:
		return false, false, execArith(cur, op)

	case op.Code == OpJump:
		cur.ip = op.Target
		return true, false, nil

	case op.Code == OpJumpRelativeOffset:
		err := execJumpRelative(cur)
		return true, false, err

	case op.Code == OpJumpZero || op.Code == OpJumpNonZero:
		taken, err := execJumpConditional(cur, op)
		return taken, false, err

	case op.Code == OpSetPaint || op.Code == OpGetPaint || op.Code == OpRand:
		return false, false, execPaint(ew, cur, op)

	default:
		return false, false, newError(ErrNotImplemented, "opcode %d", op.Code)
	}
}
