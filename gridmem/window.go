// Package gridmem provides a minimal in-memory EventWindow for driving
// vm.Execute in tests and in the single-step cmd/ewalrun demo. It is
// deliberately not a grid-storage backend: it holds exactly the 41
// sites one event touches, nothing more.
package gridmem

import (
	"math/big"

	"github.com/ewal-lang/ewal/numeric"
)

// Window is a dense, self-contained stand-in for the 41-site event
// window a real grid-storage backend would carve out of a much larger
// field.
type Window struct {
	sites [41]numeric.Const
	paint uint32

	// RandFn supplies entropy for RandU32/Rand. Tests can override it
	// for a deterministic sequence; New wires up a default LCG so a
	// caller that never touches RandFn still gets reproducible,
	// non-zero output across calls.
	RandFn func() uint32

	lcgState uint32
}

// New returns a Window with every site zeroed (type id 0, "Empty")
// and a default deterministic RandFn.
func New() *Window {
	w := &Window{lcgState: 0x2545F491}
	w.RandFn = w.nextLCG
	return w
}

// nextLCG is a Numerical-Recipes-style 32-bit linear congruential
// generator: not cryptographic, only deterministic and cheap.
func (w *Window) nextLCG() uint32 {
	w.lcgState = w.lcgState*1664525 + 1013904223
	return w.lcgState
}

// Get reads the Const at site, or a zero Unsigned Const if site falls
// outside 0..40 (spec §6: "zero for out-of-range").
func (w *Window) Get(site int) numeric.Const {
	if !w.inRange(site) {
		return numeric.ZeroUnsigned()
	}
	return w.sites[site]
}

// Set writes v to site, silently doing nothing if site falls outside
// 0..40 (spec §6: "silently ignored for out-of-range").
func (w *Window) Set(site int, v numeric.Const) {
	if !w.inRange(site) {
		return
	}
	w.sites[site] = v
}

// Swap exchanges the values at i and j, silently doing nothing if
// either index is out of range or i == j (spec §6: "no-op when equal
// or out of range").
func (w *Window) Swap(i, j int) {
	if i == j || !w.inRange(i) || !w.inRange(j) {
		return
	}
	w.sites[i], w.sites[j] = w.sites[j], w.sites[i]
}

func (w *Window) GetPaint() uint32 { return w.paint }

func (w *Window) SetPaint(c uint32) { w.paint = c }

func (w *Window) RandU32() uint32 { return w.RandFn() }

// Rand draws a full 96-bit pseudorandom magnitude, the same hi32/lo64
// shape the wire format's u96 constant encoding uses (see
// encoder/metadata.go's writeConst96 and objfile/reader.go's
// constValue): one 32-bit draw for the high word, two more combined
// into the 64-bit low word, so all 96 bits carry entropy rather than
// zero-extending a single 32-bit draw.
func (w *Window) Rand() numeric.Const {
	hi := w.RandFn()
	loHi := w.RandFn()
	loLo := w.RandFn()
	lo := uint64(loHi)<<32 | uint64(loLo)

	raw := new(big.Int).Lsh(big.NewInt(int64(hi)), 64)
	raw.Or(raw, new(big.Int).SetUint64(lo))
	return numeric.FromRawBits(raw, numeric.Unsigned)
}

func (w *Window) inRange(site int) bool {
	return site >= 0 && site < len(w.sites)
}
