package ast

import "github.com/ewal-lang/ewal/numeric"

// Instruction is a sealed sum type over the VM's mnemonics, one
// concrete type per row of the wire opcode table. PushSmall collapses
// Push0..Push40 (wire opcodes 17..57) into a single type carrying the
// embedded value, rather than 41 distinct zero-field types — the same
// generalization the teacher's own parser.Instruction (one struct,
// string mnemonic plus operand slice) makes instead of one Go type per
// ARM condition/flag combination.
type Instruction interface {
	Opcode() byte
	isInstruction()
}

type Nop struct{ Pos Position }
type Exit struct{ Pos Position }
type SwapSites struct{ Pos Position }
type SetSite struct{ Pos Position }

// SetField masked-merges the low Field.Length bits of the popped
// constant into the popped base value at Field.Offset.
type SetField struct {
	Field string
	Pos   Position
}

// SetSiteField is SetField applied to a mapped site instead of a
// popped base value.
type SetSiteField struct {
	Field string
	Pos   Position
}

type GetSite struct{ Pos Position }

// GetField zero-extends the named field out of the popped value.
type GetField struct {
	Field string
	Pos   Position
}

// GetSiteField zero-extends the named field out of a mapped site.
type GetSiteField struct {
	Field string
	Pos   Position
}

// GetSignedField sign-extends the named field out of the popped value.
type GetSignedField struct {
	Field string
	Pos   Position
}

// GetSignedSiteField sign-extends the named field out of a mapped site.
type GetSignedSiteField struct {
	Field string
	Pos   Position
}

// GetType pushes the resolved type id of the named element as a Const.
type GetType struct {
	Type string
	Pos  Position
}

// GetParameter pushes the compile-time-resolved value of a named
// parameter.
type GetParameter struct {
	Param string
	Pos   Position
}

type Scan struct{ Pos Position }
type SaveSymmetries struct{ Pos Position }

// UseSymmetries sets the cursor's current symmetry to one drawn from
// Value using the event window's RNG.
type UseSymmetries struct {
	Value numeric.Symmetry
	Pos   Position
}

type RestoreSymmetries struct{ Pos Position }

// PushSmall pushes N (0..40 inclusive) as an Unsigned Const, using its
// own dedicated wire opcode (17+N) rather than the general Push
// opcode's inline 13-byte constant.
type PushSmall struct {
	N   int
	Pos Position
}

// Push pushes an arbitrary inline constant.
type Push struct {
	Value numeric.Const
	Pos   Position
}

type Pop struct{ Pos Position }
type Dup struct{ Pos Position }
type Over struct{ Pos Position }
type Swap struct{ Pos Position }
type Rot struct{ Pos Position }

// Call pushes the current ip onto the call stack and jumps to Label.
type Call struct {
	Label string
	Pos   Position
}

type Ret struct{ Pos Position }
type Checksum struct{ Pos Position }
type Add struct{ Pos Position }
type Sub struct{ Pos Position }
type Neg struct{ Pos Position }
type Mod struct{ Pos Position }
type Mul struct{ Pos Position }
type Div struct{ Pos Position }
type Less struct{ Pos Position }
type LessEqual struct{ Pos Position }
type Or struct{ Pos Position }
type And struct{ Pos Position }
type Xor struct{ Pos Position }
type Equal struct{ Pos Position }
type BitCount struct{ Pos Position }
type BitScanForward struct{ Pos Position }
type BitScanReverse struct{ Pos Position }

// LShift and RShift preserve the source format's swapped mnemonics:
// LShift pops (a,b) and pushes a>>b; RShift pops (a,b) and pushes
// a<<b. Wire-compatible with existing object files; not "fixed".
type LShift struct{ Pos Position }
type RShift struct{ Pos Position }

// Jump sets ip=Label unconditionally.
type Jump struct {
	Label string
	Pos   Position
}

// JumpRelativeOffset pops a displacement and adds (Unsigned) or
// subtracts (negative Signed) it from ip; a displacement of zero is
// disallowed by the VM.
type JumpRelativeOffset struct{ Pos Position }

// JumpZero branches to Label if the popped value is zero.
type JumpZero struct {
	Label string
	Pos   Position
}

// JumpNonZero branches to Label if the popped value is non-zero.
type JumpNonZero struct {
	Label string
	Pos   Position
}

type SetPaint struct{ Pos Position }
type GetPaint struct{ Pos Position }
type Rand struct{ Pos Position }

func (Nop) Opcode() byte                { return 0 }
func (Exit) Opcode() byte               { return 1 }
func (SwapSites) Opcode() byte          { return 2 }
func (SetSite) Opcode() byte            { return 3 }
func (SetField) Opcode() byte           { return 4 }
func (SetSiteField) Opcode() byte       { return 5 }
func (GetSite) Opcode() byte            { return 6 }
func (GetField) Opcode() byte           { return 7 }
func (GetSiteField) Opcode() byte       { return 8 }
func (GetSignedField) Opcode() byte     { return 9 }
func (GetSignedSiteField) Opcode() byte { return 10 }
func (GetType) Opcode() byte            { return 11 }
func (GetParameter) Opcode() byte       { return 12 }
func (Scan) Opcode() byte               { return 13 }
func (SaveSymmetries) Opcode() byte     { return 14 }
func (UseSymmetries) Opcode() byte      { return 15 }
func (RestoreSymmetries) Opcode() byte  { return 16 }

// Opcode returns PushSmall's dedicated wire byte, 17+N.
func (p PushSmall) Opcode() byte { return byte(17 + p.N) }

func (Push) Opcode() byte               { return 58 }
func (Pop) Opcode() byte                { return 59 }
func (Dup) Opcode() byte                { return 60 }
func (Over) Opcode() byte               { return 61 }
func (Swap) Opcode() byte               { return 62 }
func (Rot) Opcode() byte                { return 63 }
func (Call) Opcode() byte               { return 64 }
func (Ret) Opcode() byte                { return 65 }
func (Checksum) Opcode() byte           { return 66 }
func (Add) Opcode() byte                { return 67 }
func (Sub) Opcode() byte                { return 68 }
func (Neg) Opcode() byte                { return 69 }
func (Mod) Opcode() byte                { return 70 }
func (Mul) Opcode() byte                { return 71 }
func (Div) Opcode() byte                { return 72 }
func (Less) Opcode() byte               { return 73 }
func (LessEqual) Opcode() byte          { return 74 }
func (Or) Opcode() byte                 { return 75 }
func (And) Opcode() byte                { return 76 }
func (Xor) Opcode() byte                { return 77 }
func (Equal) Opcode() byte              { return 78 }
func (BitCount) Opcode() byte           { return 79 }
func (BitScanForward) Opcode() byte     { return 80 }
func (BitScanReverse) Opcode() byte     { return 81 }
func (LShift) Opcode() byte             { return 82 }
func (RShift) Opcode() byte             { return 83 }
func (Jump) Opcode() byte               { return 84 }
func (JumpRelativeOffset) Opcode() byte { return 85 }
func (JumpZero) Opcode() byte           { return 86 }
func (JumpNonZero) Opcode() byte        { return 87 }
func (SetPaint) Opcode() byte           { return 88 }
func (GetPaint) Opcode() byte           { return 89 }
func (Rand) Opcode() byte               { return 90 }

func (Nop) isInstruction()                {}
func (Exit) isInstruction()               {}
func (SwapSites) isInstruction()          {}
func (SetSite) isInstruction()            {}
func (SetField) isInstruction()           {}
func (SetSiteField) isInstruction()       {}
func (GetSite) isInstruction()            {}
func (GetField) isInstruction()           {}
func (GetSiteField) isInstruction()       {}
func (GetSignedField) isInstruction()     {}
func (GetSignedSiteField) isInstruction() {}
func (GetType) isInstruction()            {}
func (GetParameter) isInstruction()       {}
func (Scan) isInstruction()               {}
func (SaveSymmetries) isInstruction()     {}
func (UseSymmetries) isInstruction()      {}
func (RestoreSymmetries) isInstruction()  {}
func (PushSmall) isInstruction()          {}
func (Push) isInstruction()               {}
func (Pop) isInstruction()                {}
func (Dup) isInstruction()                {}
func (Over) isInstruction()               {}
func (Swap) isInstruction()               {}
func (Rot) isInstruction()                {}
func (Call) isInstruction()               {}
func (Ret) isInstruction()                {}
func (Checksum) isInstruction()           {}
func (Add) isInstruction()                {}
func (Sub) isInstruction()                {}
func (Neg) isInstruction()                {}
func (Mod) isInstruction()                {}
func (Mul) isInstruction()                {}
func (Div) isInstruction()                {}
func (Less) isInstruction()               {}
func (LessEqual) isInstruction()          {}
func (Or) isInstruction()                 {}
func (And) isInstruction()                {}
func (Xor) isInstruction()                {}
func (Equal) isInstruction()              {}
func (BitCount) isInstruction()           {}
func (BitScanForward) isInstruction()     {}
func (BitScanReverse) isInstruction()     {}
func (LShift) isInstruction()             {}
func (RShift) isInstruction()             {}
func (Jump) isInstruction()               {}
func (JumpRelativeOffset) isInstruction() {}
func (JumpZero) isInstruction()           {}
func (JumpNonZero) isInstruction()        {}
func (SetPaint) isInstruction()           {}
func (GetPaint) isInstruction()           {}
func (Rand) isInstruction()               {}
