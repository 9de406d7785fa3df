package encoder

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/ewal-lang/ewal/ast"
	"github.com/ewal-lang/ewal/numeric"
)

// writeConst96 encodes a Const as the wire's u96 form: a sign byte (0
// unsigned, 1 signed) followed by the value's raw 96-bit magnitude
// split into a big-endian hi32/lo64 pair. Values whose raw
// representation needs more than 96 bits are truncated to the low 96
// bits, matching the atom layout's TYPE/HEADER/DATA fields, which
// together span exactly bits 0..95.
func writeConst96(buf *bytes.Buffer, c numeric.Const) error {
	signByte := byte(0)
	if c.IsSigned() {
		signByte = 1
	}
	buf.WriteByte(signByte)

	raw := new(big.Int).Mod(numeric.RawBits(c), twoPow96)
	lo := new(big.Int).And(raw, mask64Bits)
	hi := new(big.Int).Rsh(raw, 64)

	if err := binary.Write(buf, binary.BigEndian, uint32(hi.Uint64())); err != nil {
		return wrapError(Position{}, ErrIO, "write const hi32", err)
	}
	if err := binary.Write(buf, binary.BigEndian, lo.Uint64()); err != nil {
		return wrapError(Position{}, ErrIO, "write const lo64", err)
	}
	return nil
}

var (
	twoPow96   = new(big.Int).Lsh(big.NewInt(1), 96)
	mask64Bits = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
)

// emitMetadataRecord writes one header record: its opcode byte
// followed by its payload, and (for Field/Parameter) registers the
// name into the symbol tables the way original_source/src/code.rs's
// write_metadata does inline.
func (st *symbolTables) emitMetadataRecord(buf *bytes.Buffer, m ast.Metadata) error {
	buf.WriteByte(m.Opcode())

	switch d := m.(type) {
	case ast.NameDirective:
		return writeU8String(buf, d.Value)
	case ast.SymbolDirective:
		return writeU8String(buf, d.Value)
	case ast.DescDirective:
		return writeU8String(buf, d.Value)
	case ast.AuthorDirective:
		return writeU8String(buf, d.Value)
	case ast.LicenseDirective:
		return writeU8String(buf, d.Value)
	case ast.RadiusDirective:
		buf.WriteByte(d.Value)
		return nil
	case ast.BgColorDirective:
		rgba, err := parseColor(d.Value)
		if err != nil {
			return err
		}
		return binary.Write(buf, binary.BigEndian, rgba)
	case ast.FgColorDirective:
		rgba, err := parseColor(d.Value)
		if err != nil {
			return err
		}
		return binary.Write(buf, binary.BigEndian, rgba)
	case ast.SymmetriesDirective:
		buf.WriteByte(uint8(d.Value))
		return nil
	case ast.FieldDirective:
		st.fields[d.Name] = d.Selector
		if err := writeU8String(buf, d.Name); err != nil {
			return err
		}
		// Field selectors serialize little-endian, the one exception to
		// the format's big-endian byte order (spec §3).
		return binary.Write(buf, binary.LittleEndian, d.Selector.MarshalWire())
	case ast.ParameterDirective:
		st.consts[d.Name] = d.Value
		if err := writeU8String(buf, d.Name); err != nil {
			return err
		}
		return writeConst96(buf, d.Value)
	default:
		return newError(Position{}, ErrIO, "unknown metadata directive")
	}
}
