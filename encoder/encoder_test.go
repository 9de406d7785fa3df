package encoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewal-lang/ewal/ast"
	"github.com/ewal-lang/ewal/numeric"
	"github.com/ewal-lang/ewal/objfile"
)

func counterProgram() *ast.File {
	return &ast.File{
		Header: []ast.Metadata{
			ast.NameDirective{Value: "Counter"},
			ast.SymbolDirective{Value: "C"},
			ast.RadiusDirective{Value: 1},
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

func TestCompile_RoundTripsThroughObjfileParse(t *testing.T) {
	data, err := Compile(counterProgram(), "test-build")
	require.NoError(t, err)

	obj, err := objfile.Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, uint16(1), obj.TypeID) // 0 is always "Empty"
	assert.Equal(t, "Counter", obj.Metadata.Name)
	assert.Equal(t, "C", obj.Metadata.Symbol)
	assert.Equal(t, uint8(1), obj.Metadata.Radius)
	assert.Equal(t, "test-build", obj.BuildTag)

	require.Contains(t, obj.Metadata.Fields, "count")
	assert.Equal(t, numeric.FieldSelector{Offset: 16, Length: 16}, obj.Metadata.Fields["count"])

	require.Len(t, obj.Code, 7)
	assert.Equal(t, byte(17), obj.Code[0].Code) // PushSmall(0)
	assert.Equal(t, byte(1), obj.Code[6].Code)  // Exit
}

func TestCompile_LabelsResolveToInstructionIndices(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Looper"}},
		Body: []ast.Node{
			{Label: "top"},
			{Instruction: ast.PushSmall{N: 1}},
			{Instruction: ast.Jump{Label: "top"}},
		},
	}

	data, err := Compile(file, "t")
	require.NoError(t, err)

	obj, err := objfile.Parse(bytes.NewReader(data))
	require.NoError(t, err)

	require.Len(t, obj.Code, 2)
	assert.Equal(t, uint16(0), obj.Code[1].Target, "label 'top' binds to instruction index 0")
}

func TestCompile_UndefinedLabelErrors(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body: []ast.Node{
			{Instruction: ast.Jump{Label: "nowhere"}},
		},
	}

	_, err := Compile(file, "t")
	require.Error(t, err)
	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ErrUndefinedLabel, encErr.Kind)
}

func TestCompile_DuplicateLabelErrors(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body: []ast.Node{
			{Label: "x"},
			{Instruction: ast.Nop{}},
			{Label: "x"},
			{Instruction: ast.Exit{}},
		},
	}

	_, err := Compile(file, "t")
	require.Error(t, err)
	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ErrDuplicateLabel, encErr.Kind)
}

func TestCompile_UndefinedFieldErrors(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body: []ast.Node{
			{Instruction: ast.GetField{Field: "nope"}},
		},
	}

	_, err := Compile(file, "t")
	require.Error(t, err)
	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ErrUndefinedField, encErr.Kind)
}

func TestCompile_UndefinedTypeErrors(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body: []ast.Node{
			{Instruction: ast.GetType{Type: "Ghost"}},
		},
	}

	_, err := Compile(file, "t")
	require.Error(t, err)
	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ErrUndefinedType, encErr.Kind)
}

func TestCompile_UndefinedParameterErrors(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Bad"}},
		Body: []ast.Node{
			{Instruction: ast.GetParameter{Param: "k"}},
		},
	}

	_, err := Compile(file, "t")
	require.Error(t, err)
	var encErr *Error
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, ErrUndefinedParameter, encErr.Kind)
}

func TestCompile_MissingNameDirectiveErrors(t *testing.T) {
	file := &ast.File{
		Body: []ast.Node{{Instruction: ast.Exit{}}},
	}

	_, err := Compile(file, "t")
	assert.Error(t, err)
}

func TestCompile_StandardFieldsPreRegistered(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "UsesStd"}},
		Body: []ast.Node{
			{Instruction: ast.GetField{Field: "type"}},
			{Instruction: ast.GetField{Field: "header"}},
			{Instruction: ast.GetField{Field: "data"}},
			{Instruction: ast.Exit{}},
		},
	}

	_, err := Compile(file, "t")
	assert.NoError(t, err)
}

func TestCompile_SelfAliasResolvesToOwnTypeID(t *testing.T) {
	file := &ast.File{
		Header: []ast.Metadata{ast.NameDirective{Value: "Recursive"}},
		Body: []ast.Node{
			{Instruction: ast.GetType{Type: "Self"}},
			{Instruction: ast.Exit{}},
		},
	}

	data, err := Compile(file, "t")
	require.NoError(t, err)

	obj, err := objfile.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint16(1), obj.Code[0].TypeID)
}
