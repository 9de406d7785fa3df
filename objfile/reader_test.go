package objfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validHeader writes a minimal, otherwise-valid object stream prefix:
// magic, minor, major, empty build tag, type id 0, zero header
// records, zero reserved code-index count, and a caller-supplied code
// length — everything Parse needs before it starts reading individual
// instructions.
func validHeader(t *testing.T, codeLen uint16) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0x02030741)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(1))) // minor
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(0))) // major
	buf.WriteByte(0)                                                    // empty build tag
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(0))) // type id
	buf.WriteByte(0)                                                    // header count
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(0))) // reserved code index count
	require.NoError(t, binary.Write(&buf, binary.BigEndian, codeLen))
	return &buf
}

func TestParse_EmptyProgram(t *testing.T) {
	buf := validHeader(t, 0)
	obj, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), obj.TypeID)
	assert.Empty(t, obj.Code)
}

func TestParse_NopAndExit(t *testing.T) {
	buf := validHeader(t, 2)
	buf.WriteByte(OpNop)
	buf.WriteByte(OpExit)

	obj, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, obj.Code, 2)
	assert.Equal(t, OpNop, obj.Code[0].Code)
	assert.Equal(t, OpExit, obj.Code[1].Code)
}

func TestParse_BadMagicNumber(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0xDEADBEEF)))

	_, err := Parse(&buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrBadMagicNumber, oErr.Kind)
}

func TestParse_BadMinorVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0x02030741)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(99)))

	_, err := Parse(&buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrBadMinorVersion, oErr.Kind)
}

func TestParse_BadMajorVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0x02030741)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(1)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(7)))

	_, err := Parse(&buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrBadMajorVersion, oErr.Kind)
}

func TestParse_UnknownInstructionOpcode(t *testing.T) {
	buf := validHeader(t, 1)
	buf.WriteByte(0xFE) // not a defined opcode

	_, err := Parse(buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrBadInstructionOpCode, oErr.Kind)
}

func TestParse_UnknownMetadataOpcode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0x02030741)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(1)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(0)))
	buf.WriteByte(0) // build tag
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(0)))
	buf.WriteByte(1)    // header count 1
	buf.WriteByte(0xFE) // undefined metadata opcode

	_, err := Parse(&buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrBadMetadataOpCode, oErr.Kind)
}

func TestParse_TruncatedStreamIsIOError(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x02, 0x03}) // magic cut short
	_, err := Parse(buf)
	require.Error(t, err)
	var oErr *Error
	require.ErrorAs(t, err, &oErr)
	assert.Equal(t, ErrIO, oErr.Kind)
}

func TestParse_FieldSelectorOperandIsLittleEndian(t *testing.T) {
	buf := validHeader(t, 1)
	buf.WriteByte(OpGetField)
	// offset=16, length=16 packed little-endian: low byte is offset.
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint16(16)|uint16(16)<<8))

	obj, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, obj.Code, 1)
	assert.Equal(t, uint8(16), obj.Code[0].Field.Offset)
	assert.Equal(t, uint8(16), obj.Code[0].Field.Length)
}

func TestParse_PushSmallRange(t *testing.T) {
	buf := validHeader(t, 1)
	buf.WriteByte(OpPush0 + 5)

	obj, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, obj.Code, 1)
	assert.Equal(t, uint8(5), obj.Code[0].Small)
}
