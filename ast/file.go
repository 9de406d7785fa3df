// Package ast defines the parsed representation of an EWAL source
// program: a header of metadata directives followed by a body of
// labels and instructions. Nothing in this package touches the wire
// format directly, though every Metadata and Instruction carries the
// stable opcode byte the encoder writes verbatim.
package ast

// Position records where a node came from in source, for diagnostics.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// File is the root of a parsed program: metadata directives that
// describe the element, followed by the instruction body that defines
// its behavior.
type File struct {
	Header []Metadata
	Body   []Node
}

// Node is one entry in a program's body: either a label definition or
// an instruction, mirroring the teacher's optional-label-on-directive
// shape. Exactly one of Label or Instruction is set.
type Node struct {
	Label       string
	Instruction Instruction
	Pos         Position
}

// IsLabel reports whether n defines a label rather than an instruction.
func (n Node) IsLabel() bool { return n.Label != "" }
