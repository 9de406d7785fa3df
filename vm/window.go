package vm

import "github.com/ewal-lang/ewal/numeric"

// EventWindow is the grid-storage collaborator Execute drives: a
// read/write view of the 41-site neighborhood centered on the element
// currently being stepped, plus its paint channel and its RNG. The VM
// never owns an RNG directly — it always asks the window for entropy,
// which is what lets tests inject a deterministic step-RNG.
type EventWindow interface {
	// Get reads the Const stored at the given physical site index
	// (0..40, already symmetry-mapped by the caller).
	Get(site int) numeric.Const
	// Set writes v to the given physical site index.
	Set(site int, v numeric.Const)
	// Swap exchanges the values at two physical site indices.
	Swap(i, j int)
	// GetPaint reads the 32-bit RGBA paint color at the cursor's origin.
	GetPaint() uint32
	// SetPaint writes the 32-bit RGBA paint color at the cursor's origin.
	SetPaint(c uint32)
	// RandU32 returns one pseudorandom 32-bit value, used by
	// UseSymmetries to draw a symmetry from a set.
	RandU32() uint32
	// Rand returns a pseudorandom Const for the Rand opcode.
	Rand() numeric.Const
}
