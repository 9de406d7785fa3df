package encoder

import (
	"bytes"
	"encoding/binary"
)

const magicNumber uint32 = 0x02030741

const (
	minorVersion uint16 = 1
	majorVersion uint16 = 0
)

// writeU8String writes a len8+bytes string, the format every string
// payload in the object format shares.
func writeU8String(buf *bytes.Buffer, s string) error {
	if len(s) > 0xFF {
		return newError(Position{}, ErrIO, "string payload exceeds 255 bytes")
	}
	buf.WriteByte(byte(len(s)))
	buf.WriteString(s)
	return nil
}

// emitHeader writes the fixed preamble: magic, minor, major, build
// tag, and the type id this compilation unit was assigned in Pass 1.
// header_count and the header records themselves are written by the
// caller immediately after, since their count isn't known until Pass 1
// has finished walking the header.
func emitHeader(buf *bytes.Buffer, buildTag string, typeID uint16) error {
	if err := binary.Write(buf, binary.BigEndian, magicNumber); err != nil {
		return wrapError(Position{}, ErrIO, "write magic", err)
	}
	if err := binary.Write(buf, binary.BigEndian, minorVersion); err != nil {
		return wrapError(Position{}, ErrIO, "write minor version", err)
	}
	if err := binary.Write(buf, binary.BigEndian, majorVersion); err != nil {
		return wrapError(Position{}, ErrIO, "write major version", err)
	}
	if err := writeU8String(buf, buildTag); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, typeID); err != nil {
		return wrapError(Position{}, ErrIO, "write type id", err)
	}
	return nil
}
