package encoder

import (
	"bytes"
	"encoding/binary"

	"github.com/ewal-lang/ewal/ast"
)

// emitInstruction writes one body instruction: its opcode byte (fixed
// for most mnemonics, value-dependent for PushSmall) followed by any
// resolved operand. Name lookups (field/type/parameter/label) are
// resolved here, against the tables Pass 1/2 already built; an unknown
// name is a fatal compile error per spec §4.2.
func (st *symbolTables) emitInstruction(buf *bytes.Buffer, n ast.Node) error {
	if n.IsLabel() {
		return nil
	}
	inst := n.Instruction
	buf.WriteByte(inst.Opcode())

	switch ins := inst.(type) {
	case ast.SetField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.SetSiteField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.GetField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.GetSiteField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.GetSignedField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.GetSignedSiteField:
		return st.writeFieldOperand(buf, ins.Field)
	case ast.GetType:
		id, ok := st.types[ins.Type]
		if !ok {
			return newError(n.Pos, ErrUndefinedType, "undefined type: "+ins.Type)
		}
		return binary.Write(buf, binary.BigEndian, id)
	case ast.GetParameter:
		c, ok := st.consts[ins.Param]
		if !ok {
			return newError(n.Pos, ErrUndefinedParameter, "undefined parameter: "+ins.Param)
		}
		return writeConst96(buf, c)
	case ast.UseSymmetries:
		buf.WriteByte(uint8(ins.Value))
		return nil
	case ast.Push:
		return writeConst96(buf, ins.Value)
	case ast.Call:
		return st.writeLabelOperand(buf, n.Pos, ins.Label)
	case ast.Jump:
		return st.writeLabelOperand(buf, n.Pos, ins.Label)
	case ast.JumpZero:
		return st.writeLabelOperand(buf, n.Pos, ins.Label)
	case ast.JumpNonZero:
		return st.writeLabelOperand(buf, n.Pos, ins.Label)
	default:
		// Every remaining mnemonic (Nop, Exit, SwapSites, SetSite,
		// GetSite, Scan, Save/RestoreSymmetries, PushSmall, Pop, Dup,
		// Over, Swap, Rot, Ret, Checksum, the arithmetic/bitwise/compare
		// family, JumpRelativeOffset, SetPaint, GetPaint, Rand) takes no
		// operand.
		return nil
	}
}

func (st *symbolTables) writeFieldOperand(buf *bytes.Buffer, name string) error {
	f, ok := st.fields[name]
	if !ok {
		return newError(Position{}, ErrUndefinedField, "undefined field: "+name)
	}
	// Field selectors are the one little-endian element in an
	// otherwise big-endian format (spec §3); binary.BigEndian, used
	// for every other operand, would be the wrong byte order here.
	return binary.Write(buf, binary.LittleEndian, f.MarshalWire())
}

func (st *symbolTables) writeLabelOperand(buf *bytes.Buffer, pos Position, name string) error {
	idx, ok := st.labels[name]
	if !ok {
		return newError(pos, ErrUndefinedLabel, "undefined label: "+name)
	}
	return binary.Write(buf, binary.BigEndian, idx)
}
