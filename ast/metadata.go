package ast

import "github.com/ewal-lang/ewal/numeric"

// Metadata is a sealed sum type over the eleven header directive
// kinds. Opcode returns the wire byte spec'd for that directive; the
// unexported marker method keeps the set closed to this package.
type Metadata interface {
	Opcode() byte
	isMetadata()
}

// NameDirective sets the element's name and assigns it a fresh type
// id (and the "Self" alias) at compile time.
type NameDirective struct {
	Value string
	Pos   Position
}

// SymbolDirective sets the element's display glyph.
type SymbolDirective struct {
	Value string
	Pos   Position
}

// DescDirective appends one description line.
type DescDirective struct {
	Value string
	Pos   Position
}

// AuthorDirective appends one author credit.
type AuthorDirective struct {
	Value string
	Pos   Position
}

// LicenseDirective appends one license line.
type LicenseDirective struct {
	Value string
	Pos   Position
}

// RadiusDirective sets the element's event-window radius hint.
type RadiusDirective struct {
	Value uint8
	Pos   Position
}

// BgColorDirective sets the element's background color from a source
// literal ("#RGB", "#RRGGBB", or "#RRGGBBAA"); the encoder resolves it
// to packed RGBA at compile time.
type BgColorDirective struct {
	Value string
	Pos   Position
}

// FgColorDirective sets the element's foreground color from a source
// literal, resolved the same way as BgColorDirective.
type FgColorDirective struct {
	Value string
	Pos   Position
}

// SymmetriesDirective sets the element's default symmetry set.
type SymmetriesDirective struct {
	Value numeric.Symmetry
	Pos   Position
}

// FieldDirective binds a name to a bit-range selector, usable from the
// body via SetField/GetField and friends.
type FieldDirective struct {
	Name     string
	Selector numeric.FieldSelector
	Pos      Position
}

// ParameterDirective binds a name to a constant value, usable from the
// body via GetParameter.
type ParameterDirective struct {
	Name  string
	Value numeric.Const
	Pos   Position
}

func (NameDirective) Opcode() byte       { return 0 }
func (SymbolDirective) Opcode() byte     { return 1 }
func (DescDirective) Opcode() byte       { return 2 }
func (AuthorDirective) Opcode() byte     { return 3 }
func (LicenseDirective) Opcode() byte    { return 4 }
func (RadiusDirective) Opcode() byte     { return 5 }
func (BgColorDirective) Opcode() byte    { return 6 }
func (FgColorDirective) Opcode() byte    { return 7 }
func (SymmetriesDirective) Opcode() byte { return 8 }
func (FieldDirective) Opcode() byte      { return 9 }
func (ParameterDirective) Opcode() byte  { return 10 }

func (NameDirective) isMetadata()       {}
func (SymbolDirective) isMetadata()     {}
func (DescDirective) isMetadata()       {}
func (AuthorDirective) isMetadata()     {}
func (LicenseDirective) isMetadata()    {}
func (RadiusDirective) isMetadata()     {}
func (BgColorDirective) isMetadata()    {}
func (FgColorDirective) isMetadata()    {}
func (SymmetriesDirective) isMetadata() {}
func (FieldDirective) isMetadata()      {}
func (ParameterDirective) isMetadata()  {}
