package vm

import "github.com/ewal-lang/ewal/numeric"

// callSentinel is a call-stack value that means "no caller". Call only
// ever pushes a real instruction index, and the wire format caps code
// length at u16::MAX-1, so a genuine return address can never equal
// this value. popCall treats popping it exactly like popping an empty
// stack (both halt), so Ret and fall-off share one pop routine.
const callSentinel uint16 = 0xFFFF

// Cursor is the VM's execution state for one event step: instruction
// pointer, current symmetry, a stack of saved symmetries, a call
// stack of return addresses, and an operand stack of Const values. A
// Cursor is created for exactly one Execute call and discarded
// afterward; it never outlives that call and is never part of an
// atom's persistent state.
type Cursor struct {
	ip        uint16
	sym       numeric.Symmetry
	symStack  []numeric.Symmetry
	callStack []uint16
	stack     []numeric.Const
}

// NewCursor creates a fresh Cursor with the given starting symmetry,
// ip 0, and empty stacks.
func NewCursor(sym numeric.Symmetry) *Cursor {
	return &Cursor{sym: sym}
}

func (c *Cursor) push(v numeric.Const) {
	c.stack = append(c.stack, v)
}

func (c *Cursor) pop() (numeric.Const, error) {
	if len(c.stack) == 0 {
		return numeric.Const{}, newError(ErrStackUnderflow, "pop from empty operand stack")
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v, nil
}

// pop2 pops b then a, so the caller sees them in push order: a was
// pushed first, b second, matching every binary opcode's "(a, b -> …)"
// stack-effect notation.
func (c *Cursor) pop2() (a, b numeric.Const, err error) {
	b, err = c.pop()
	if err != nil {
		return
	}
	a, err = c.pop()
	return
}

func (c *Cursor) pushCall(returnIP uint16) {
	c.callStack = append(c.callStack, returnIP)
}

// popCall pops the call stack and reports whether execution should
// halt: an empty stack or the callSentinel both mean "no caller,"
// matching spec's "Ret with an empty call stack halts" note.
func (c *Cursor) popCall() (resumeAt uint16, halt bool) {
	if len(c.callStack) == 0 {
		return 0, true
	}
	top := c.callStack[len(c.callStack)-1]
	c.callStack = c.callStack[:len(c.callStack)-1]
	if top == callSentinel {
		return 0, true
	}
	return top + 1, false
}

func (c *Cursor) saveSymmetry() {
	c.symStack = append(c.symStack, c.sym)
}

func (c *Cursor) restoreSymmetry() {
	if len(c.symStack) == 0 {
		return
	}
	c.sym = c.symStack[len(c.symStack)-1]
	c.symStack = c.symStack[:len(c.symStack)-1]
}
