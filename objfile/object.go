package objfile

import "github.com/ewal-lang/ewal/numeric"

// Metadata is the decoded, per-type descriptive record: name, display
// info, default symmetries, and the named field/parameter tables an
// element's own code can reference at runtime via GetType-style
// lookups baked in at compile time.
type Metadata struct {
	Name       string
	Symbol     string
	Descs      []string
	Authors    []string
	Licenses   []string
	Radius     uint8
	BgColor    uint32
	FgColor    uint32
	Symmetries numeric.Symmetry
	Fields     map[string]numeric.FieldSelector
	Parameters map[string]numeric.Const
}

// Op is one decoded, fully-resolved instruction: operand names are
// already gone by the time bytes are on the wire, so Op carries
// resolved indices/values directly rather than the ast package's
// name-carrying Instruction types.
type Op struct {
	Code byte
	// Field is populated for the Get/SetField family.
	Field numeric.FieldSelector
	// TypeID is populated for GetType.
	TypeID uint16
	// Const is populated for GetParameter and Push.
	Const numeric.Const
	// Symmetries is populated for UseSymmetries.
	Symmetries numeric.Symmetry
	// Target is populated for Call, Jump, JumpZero, and JumpNonZero: the
	// instruction index to transfer control to.
	Target uint16
	// Small is populated for PushSmall, 0..40.
	Small uint8
}

// Object is one successfully parsed compilation unit: a type id, its
// metadata record, its resolved code vector, and the build tag it was
// compiled under.
type Object struct {
	TypeID   uint16
	Metadata Metadata
	Code     []Op
	BuildTag string
}
