package frame

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// Frame is one activation record. Code is immutable
// for the frame's lifetime even if the function object it came from
// is later rebound to different code — the frame always finishes
// executing what it started with.
type Frame struct {
	Code    CodeObject
	Func    object.Value // the callable this frame is executing, if any
	Globals object.Value // module-level namespace; a mapping-protocol object
	Locals  object.Value // local namespace; a mapping-protocol object, or None for a plain call frame using Slots
	Slots   []object.Value
	Back    *Frame
	Thread  *ThreadState
}

// NewFrame builds a frame for code, not yet pushed onto any thread.
func NewFrame(code CodeObject, fn object.Value, globals, locals object.Value) *Frame {
	return &Frame{Code: code, Func: fn, Globals: globals, Locals: locals}
}

// Push installs this frame as ts's new top frame.
func (f *Frame) Push(ts *ThreadState) *exc.Exception {
	return ts.Push(f)
}

// Pop removes this frame from ts, which must currently have it on top.
func (f *Frame) Pop() *exc.Exception {
	if f.Thread == nil {
		return exc.New(exc.InterpreterError, "frame stack corruption: popping a frame that was never pushed")
	}
	return f.Thread.Pop(f)
}
