package encoder

import "github.com/ewal-lang/ewal/numeric"

// symbolTables holds the name resolution state built up over passes 1
// and 2 of Compile: type ids, constant parameters, field selectors,
// and instruction labels, scoped to one compilation unit the way
// original_source/src/code.rs's Compiler scopes its maps to one
// source file.
type symbolTables struct {
	types  map[string]uint16
	consts map[string]numeric.Const
	fields map[string]numeric.FieldSelector
	labels map[string]uint16
}

// newSymbolTables pre-seeds the type and field maps exactly as
// original_source/src/code.rs's Compiler::new does: "Empty" is always
// type id 0, and the three standard field selectors are always
// available under their canonical names.
func newSymbolTables() *symbolTables {
	return &symbolTables{
		types: map[string]uint16{"Empty": 0},
		consts: map[string]numeric.Const{},
		fields: map[string]numeric.FieldSelector{
			"type":   numeric.TypeField,
			"header": numeric.HeaderField,
			"data":   numeric.DataField,
		},
		labels: map[string]uint16{},
	}
}

// assignType hands out a fresh type id, used by Pass 1 when it sees a
// .name directive.
func (st *symbolTables) assignType(name string) uint16 {
	id := uint16(len(st.types))
	st.types[name] = id
	return id
}
