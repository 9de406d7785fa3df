package vm

import (
	"io"

	"github.com/ewal-lang/ewal/objfile"
)

// Op is the decoded, fully-resolved instruction shape Execute
// dispatches on. It is objfile.Op verbatim: by the time an instruction
// is on the wire its operand names are already gone, so the reader
// produces the execution-ready shape directly instead of handing back
// a second, vm-specific decode step.
type Op = objfile.Op

// Runtime owns the process-lifetime type and code tables: metadata
// and compiled programs, keyed by type id, installed by successive
// Load calls and read-only once installed. Type id 0 is always
// "Empty," reserved at construction with an empty program, so that
// Execute against an Empty-typed center atom runs zero instructions
// and returns immediately rather than failing with UnknownElement.
type Runtime struct {
	buildTag string
	tagSet   bool

	types map[uint16]objfile.Metadata
	code  map[uint16][]Op
}

// NewRuntime creates a Runtime with type id 0 pre-registered as the
// empty element.
func NewRuntime() *Runtime {
	return &Runtime{
		types: map[uint16]objfile.Metadata{0: {}},
		code:  map[uint16][]Op{0: {}},
	}
}

// Load parses one object-file byte stream and installs its metadata
// and code into the runtime's tables, keyed by the type id the object
// declares. The first successful Load fixes the runtime's build tag;
// every later Load whose tag differs fails with ErrBuildTagMismatch
// without installing anything (spec §4.4/§8, §9 item 9).
func (rt *Runtime) Load(r io.Reader) error {
	obj, err := objfile.Parse(r)
	if err != nil {
		return err
	}

	if !rt.tagSet {
		rt.buildTag = obj.BuildTag
		rt.tagSet = true
	} else if obj.BuildTag != rt.buildTag {
		return newError(ErrBuildTagMismatch, "want %q, got %q", rt.buildTag, obj.BuildTag)
	}

	rt.types[obj.TypeID] = obj.Metadata
	rt.code[obj.TypeID] = obj.Code
	return nil
}

// BuildTag reports the tag the runtime has pinned, and whether any
// object has been loaded yet.
func (rt *Runtime) BuildTag() (tag string, ok bool) {
	return rt.buildTag, rt.tagSet
}

// Metadata returns the metadata record for a loaded type id.
func (rt *Runtime) Metadata(typeID uint16) (objfile.Metadata, bool) {
	m, ok := rt.types[typeID]
	return m, ok
}
