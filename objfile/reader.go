package objfile

import (
	"encoding/binary"
	"io"
	"math/big"
	"unicode/utf8"

	"github.com/ewal-lang/ewal/numeric"
)

const (
	magicNumber  uint32 = 0x02030741
	minorVersion uint16 = 1
	majorVersion uint16 = 0
)

// reader wraps an io.Reader with the handful of fixed-width and
// length-prefixed reads the object format needs, each wrapping its
// underlying I/O error into objfile.Error the way encoding/binary.Read
// would be wrapped by hand in the teacher's own loader.
type reader struct {
	r io.Reader
}

func (rd *reader) u8() (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, wrapError(ErrIO, err, "read u8")
	}
	return b[0], nil
}

func (rd *reader) u16() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, wrapError(ErrIO, err, "read u16")
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func (rd *reader) u16le() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, wrapError(ErrIO, err, "read u16 (le)")
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (rd *reader) u32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, wrapError(ErrIO, err, "read u32")
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (rd *reader) u64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		return 0, wrapError(ErrIO, err, "read u64")
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (rd *reader) str() (string, error) {
	n, err := rd.u8()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return "", wrapError(ErrIO, err, "read string body")
	}
	if !utf8.Valid(buf) {
		return "", newError(ErrUTF8, "string payload is not valid UTF-8")
	}
	return string(buf), nil
}

// constValue reads the wire's u96 constant encoding: a sign byte (0
// unsigned, 1 signed) followed by a big-endian hi32/lo64 pair giving
// the value's raw 96-bit magnitude.
func (rd *reader) constValue() (numeric.Const, error) {
	sign, err := rd.u8()
	if err != nil {
		return numeric.Const{}, err
	}
	var variant numeric.Variant
	switch sign {
	case 0:
		variant = numeric.Unsigned
	case 1:
		variant = numeric.Signed
	default:
		return numeric.Const{}, newError(ErrBadConstantType, "sign byte %d is neither 0 nor 1", sign)
	}
	hi, err := rd.u32()
	if err != nil {
		return numeric.Const{}, err
	}
	lo, err := rd.u64()
	if err != nil {
		return numeric.Const{}, err
	}
	raw := new(big.Int).Lsh(big.NewInt(int64(hi)), 64)
	raw.Or(raw, new(big.Int).SetUint64(lo))
	return numeric.FromRawBits(raw, variant), nil
}

// Parse decodes one object-file record stream: the fixed header, one
// metadata record, and one instruction vector, matching spec §6's
// field order exactly. It validates magic/major/minor and rejects
// unknown metadata and instruction opcodes, per spec §4.4's reader
// contract.
func Parse(r io.Reader) (*Object, error) {
	rd := &reader{r: r}

	magic, err := rd.u32()
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, newError(ErrBadMagicNumber, "got 0x%08X, want 0x%08X", magic, magicNumber)
	}

	minor, err := rd.u16()
	if err != nil {
		return nil, err
	}
	if minor != minorVersion {
		return nil, newError(ErrBadMinorVersion, "got %d, want %d", minor, minorVersion)
	}

	major, err := rd.u16()
	if err != nil {
		return nil, err
	}
	if major != majorVersion {
		return nil, newError(ErrBadMajorVersion, "got %d, want %d", major, majorVersion)
	}

	buildTag, err := rd.str()
	if err != nil {
		return nil, err
	}

	typeID, err := rd.u16()
	if err != nil {
		return nil, err
	}

	headerCount, err := rd.u8()
	if err != nil {
		return nil, err
	}

	md := Metadata{
		Fields:     map[string]numeric.FieldSelector{},
		Parameters: map[string]numeric.Const{},
	}
	for i := 0; i < int(headerCount); i++ {
		if err := rd.readMetadataRecord(&md); err != nil {
			return nil, err
		}
	}

	// code_index_count is reserved; current writers always emit 0 and
	// current readers always discard it.
	if _, err := rd.u16(); err != nil {
		return nil, err
	}

	codeLen, err := rd.u16()
	if err != nil {
		return nil, err
	}

	code := make([]Op, 0, codeLen)
	for i := 0; i < int(codeLen); i++ {
		op, err := rd.readOp()
		if err != nil {
			return nil, err
		}
		code = append(code, op)
	}

	return &Object{
		TypeID:   typeID,
		Metadata: md,
		Code:     code,
		BuildTag: buildTag,
	}, nil
}

func (rd *reader) readMetadataRecord(md *Metadata) error {
	op, err := rd.u8()
	if err != nil {
		return err
	}
	switch op {
	case 0: // Name
		md.Name, err = rd.str()
	case 1: // Symbol
		md.Symbol, err = rd.str()
	case 2: // Desc
		var s string
		s, err = rd.str()
		md.Descs = append(md.Descs, s)
	case 3: // Author
		var s string
		s, err = rd.str()
		md.Authors = append(md.Authors, s)
	case 4: // License
		var s string
		s, err = rd.str()
		md.Licenses = append(md.Licenses, s)
	case 5: // Radius
		md.Radius, err = rd.u8()
	case 6: // BgColor
		md.BgColor, err = rd.u32()
	case 7: // FgColor
		md.FgColor, err = rd.u32()
	case 8: // Symmetries
		var b uint8
		b, err = rd.u8()
		md.Symmetries = numeric.Symmetry(b)
	case 9: // Field
		var name string
		name, err = rd.str()
		if err != nil {
			return err
		}
		var wire uint16
		wire, err = rd.u16le()
		if err == nil {
			md.Fields[name] = numeric.UnmarshalFieldSelector(wire)
		}
	case 10: // Parameter
		var name string
		name, err = rd.str()
		if err != nil {
			return err
		}
		var c numeric.Const
		c, err = rd.constValue()
		if err == nil {
			md.Parameters[name] = c
		}
	default:
		return newError(ErrBadMetadataOpCode, "opcode %d", op)
	}
	return err
}

func (rd *reader) readOp() (Op, error) {
	code, err := rd.u8()
	if err != nil {
		return Op{}, err
	}

	switch {
	case code == OpSetField || code == OpSetSiteField || code == OpGetField ||
		code == OpGetSiteField || code == OpGetSignedField || code == OpGetSignedSiteField:
		// u16 field selector, little-endian.
		wire, err := rd.u16le()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, Field: numeric.UnmarshalFieldSelector(wire)}, nil

	case code == OpGetType:
		id, err := rd.u16()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, TypeID: id}, nil

	case code == OpGetParameter:
		c, err := rd.constValue()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, Const: c}, nil

	case code == OpUseSymmetries:
		b, err := rd.u8()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, Symmetries: numeric.Symmetry(b)}, nil

	case code >= OpPush0 && code <= OpPush40:
		return Op{Code: code, Small: uint8(code - OpPush0)}, nil

	case code == OpPush:
		c, err := rd.constValue()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, Const: c}, nil

	case code == OpCall || code == OpJump || code == OpJumpZero || code == OpJumpNonZero:
		target, err := rd.u16()
		if err != nil {
			return Op{}, err
		}
		return Op{Code: code, Target: target}, nil

	case code <= OpRand:
		// Every other defined opcode takes no operand: Nop, Exit,
		// SwapSites, SetSite, GetSite, Scan, Save/RestoreSymmetries, Pop,
		// Dup, Over, Swap, Rot, Ret, Checksum, the arithmetic/bitwise/
		// compare family, JumpRelativeOffset, SetPaint, GetPaint, Rand.
		return Op{Code: code}, nil

	default:
		return Op{}, newError(ErrBadInstructionOpCode, "opcode %d", code)
	}
}
