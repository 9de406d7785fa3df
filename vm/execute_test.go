package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewal-lang/ewal/ast"
	"github.com/ewal-lang/ewal/encoder"
	"github.com/ewal-lang/ewal/gridmem"
	"github.com/ewal-lang/ewal/numeric"
)

func counterProgram() *ast.File {
	return &ast.File{
		Header: []ast.Metadata{
			ast.NameDirective{Value: "Counter"},
			ast.FieldDirective{Name: "count", Selector: numeric.FieldSelector{Offset: 16, Length: 16}},
		},
		Body: []ast.Node{
			{Instruction: ast.PushSmall{N: 0}},
			{Instruction: ast.Dup{}},
			{Instruction: ast.GetSiteField{Field: "count"}},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.Add{}},
			{Instruction: ast.SetSiteField{Field: "count"}},
			{Instruction: ast.Exit{}},
		},
	}
}

func loadRuntime(t *testing.T, file *ast.File, buildTag string) *Runtime {
	t.Helper()
	data, err := encoder.Compile(file, buildTag)
	require.NoError(t, err)
	rt := NewRuntime()
	require.NoError(t, rt.Load(bytes.NewReader(data)))
	return rt
}

func TestExecute_CounterIncrementsItsOwnField(t *testing.T) {
	rt := loadRuntime(t, counterProgram(), "t")

	window := gridmem.New()
	center := numeric.FromUint64(0).Store(numeric.FromUint64(1), numeric.TypeField)
	window.Set(0, center)

	cur := NewCursor(numeric.R000L)
	require.NoError(t, Execute(window, cur, rt))

	count := window.Get(0).Apply(numeric.FieldSelector{Offset: 16, Length: 16})
	assert.True(t, count.Equal(numeric.FromUint64(1)), "got %s", count)

	// A second step against the same window increments again.
	cur2 := NewCursor(numeric.R000L)
	require.NoError(t, Execute(window, cur2, rt))
	count2 := window.Get(0).Apply(numeric.FieldSelector{Offset: 16, Length: 16})
	assert.True(t, count2.Equal(numeric.FromUint64(2)), "got %s", count2)
}

func TestExecute_EmptyTypeRunsZeroInstructions(t *testing.T) {
	rt := NewRuntime()
	window := gridmem.New()
	window.Set(0, numeric.FromUint64(0)) // type id 0, "Empty"

	cur := NewCursor(numeric.R000L)
	assert.NoError(t, Execute(window, cur, rt))
}

func TestExecute_UnknownTypeErrors(t *testing.T) {
	rt := NewRuntime()
	window := gridmem.New()
	center := numeric.FromUint64(0).Store(numeric.FromUint64(99), numeric.TypeField)
	window.Set(0, center)

	cur := NewCursor(numeric.R000L)
	err := Execute(window, cur, rt)
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ErrUnknownElement, vErr.Kind)
}

func TestLoad_BuildTagMismatchRejectsSecondLoad(t *testing.T) {
	rt := NewRuntime()

	data1, err := encoder.Compile(counterProgram(), "tag-a")
	require.NoError(t, err)
	require.NoError(t, rt.Load(bytes.NewReader(data1)))

	other := &ast.File{Header: []ast.Metadata{ast.NameDirective{Value: "Other"}}}
	data2, err := encoder.Compile(other, "tag-b")
	require.NoError(t, err)

	err = rt.Load(bytes.NewReader(data2))
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ErrBuildTagMismatch, vErr.Kind)
}

func TestExecute_JumpLoopTerminatesOnExit(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Looper"}},
		Body: []ast.Node{
			{Instruction: ast.PushSmall{N: 3}},
			{Label: "check"},
			{Instruction: ast.Dup{}},
			{Instruction: ast.JumpZero{Label: "done"}},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.Sub{}},
			{Instruction: ast.Jump{Label: "check"}},
			{Label: "done"},
			{Instruction: ast.Exit{}},
		},
	}
	rt := loadRuntime(t, file, "t")
	window := gridmem.New()
	window.Set(0, numeric.FromUint64(0).Store(numeric.FromUint64(1), numeric.TypeField))

	cur := NewCursor(numeric.R000L)
	require.NoError(t, Execute(window, cur, rt))
}

func TestExecute_OutOfRangeSiteIsSilentlyIgnored(t *testing.T) {
	// GetSite/SetSite on an out-of-range index must not fail the
	// cursor: the EventWindow contract (spec §6) tolerates it, reading
	// zero and discarding the write rather than erroring.
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "OutOfRange"}},
		Body: []ast.Node{
			{Instruction: ast.PushSmall{N: 40}},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.Add{}}, // site index 41: one past the window
			{Instruction: ast.PushSmall{N: 9}},
			{Instruction: ast.SetSite{}}, // (41, 9) -> silently discarded
			{Instruction: ast.PushSmall{N: 40}},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.Add{}},
			{Instruction: ast.GetSite{}}, // reads site 41 -> zero, not an error
			{Instruction: ast.Exit{}},
		},
	}
	rt := loadRuntime(t, file, "t")
	window := gridmem.New()
	window.Set(0, numeric.FromUint64(0).Store(numeric.FromUint64(1), numeric.TypeField))

	cur := NewCursor(numeric.R000L)
	require.NoError(t, Execute(window, cur, rt))
}

func TestCursor_StackUnderflowErrors(t *testing.T) {
	rt := NewRuntime()
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body:   []ast.Node{{Instruction: ast.Add{}}},
	}
	data, err := encoder.Compile(file, "t")
	require.NoError(t, err)
	require.NoError(t, rt.Load(bytes.NewReader(data)))

	window := gridmem.New()
	center := numeric.FromUint64(0).Store(numeric.FromUint64(1), numeric.TypeField)
	window.Set(0, center)

	cur := NewCursor(numeric.R000L)
	err = Execute(window, cur, rt)
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, ErrStackUnderflow, vErr.Kind)
}

func TestExecute_SwapSitesExchangesValues(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Swapper"}},
		Body: []ast.Node{
			{Instruction: ast.PushSmall{N: 0}},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.SwapSites{}},
			{Instruction: ast.Exit{}},
		},
	}
	rt := loadRuntime(t, file, "t")
	window := gridmem.New()
	center := numeric.FromUint64(10).Store(numeric.FromUint64(1), numeric.TypeField)
	window.Set(0, center)
	window.Set(1, numeric.FromUint64(20))

	cur := NewCursor(numeric.R000L)
	require.NoError(t, Execute(window, cur, rt))

	assert.True(t, window.Get(0).Equal(numeric.FromUint64(20)))
	assert.True(t, window.Get(1).Equal(center))
}
