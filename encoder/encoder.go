// Package encoder compiles a parsed EWAL program into the compact
// binary object format the runtime loads, mirroring the teacher's
// encoder/encoder.go + loader/loader.go two-phase shape (build an
// address/symbol map, then encode) specialized to this format's three
// compiler passes.
package encoder

import (
	"bytes"
	"encoding/binary"

	"github.com/ewal-lang/ewal/ast"
)

// Compile translates file into the object format's byte stream,
// tagging it with buildTag. It is the Go analog of
// original_source/src/code.rs's compile_to_bytes.
func Compile(file *ast.File, buildTag string) ([]byte, error) {
	st := newSymbolTables()

	typeID, err := indexMetadata(st, file.Header)
	if err != nil {
		return nil, err
	}

	if err := indexLabels(st, file.Body); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := emitHeader(&buf, buildTag, typeID); err != nil {
		return nil, err
	}

	if len(file.Header) > 0xFF {
		return nil, newError(Position{}, ErrIO, "too many header records")
	}
	buf.WriteByte(byte(len(file.Header)))
	for _, m := range file.Header {
		if err := st.emitMetadataRecord(&buf, m); err != nil {
			return nil, err
		}
	}

	// code_index_count is reserved; this writer always emits 0 (spec §6).
	if err := binary.Write(&buf, binary.BigEndian, uint16(0)); err != nil {
		return nil, wrapError(Position{}, ErrIO, "write code index count", err)
	}

	instructionCount := 0
	for _, n := range file.Body {
		if !n.IsLabel() {
			instructionCount++
		}
	}
	if instructionCount > 0xFFFE {
		return nil, newError(Position{}, ErrMaxCodeSize, "code length exceeds u16::MAX-1")
	}
	if err := binary.Write(&buf, binary.BigEndian, uint16(instructionCount)); err != nil {
		return nil, wrapError(Position{}, ErrIO, "write code length", err)
	}

	for _, n := range file.Body {
		if err := st.emitInstruction(&buf, n); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// indexMetadata is Pass 1: walk the header in order, assigning the
// element a type id (and the "Self" alias) on .name, and registering
// field/parameter names as they're declared so later instructions can
// reference them. Field and parameter registration actually happens in
// emitMetadataRecord (mirroring original_source/src/code.rs, which
// registers while writing); indexMetadata only resolves the type id,
// since GetType can reference a name declared anywhere in the header,
// including forward of its own .name record in principle, and the
// type id must be known before Pass 3 starts emitting.
func indexMetadata(st *symbolTables, header []ast.Metadata) (uint16, error) {
	var typeID uint16
	var named bool
	for _, m := range header {
		if nd, ok := m.(ast.NameDirective); ok {
			typeID = st.assignType(nd.Value)
			st.types["Self"] = typeID
			named = true
		}
	}
	if !named {
		return 0, newError(Position{}, ErrIO, "element has no .name directive")
	}
	return typeID, nil
}

// indexLabels is Pass 2: walk the body counting only instructions,
// binding each label to the index of the instruction that follows it.
// Duplicate labels are a compile error (spec §9's recommended choice,
// not last-wins).
func indexLabels(st *symbolTables, body []ast.Node) error {
	var ln uint16
	for _, n := range body {
		if n.IsLabel() {
			if _, dup := st.labels[n.Label]; dup {
				return newError(n.Pos, ErrDuplicateLabel, "duplicate label: "+n.Label)
			}
			st.labels[n.Label] = ln
			continue
		}
		ln++
	}
	return nil
}
