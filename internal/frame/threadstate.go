package frame

import (
	"github.com/google/uuid"

	"github.com/vire-lang/vire/internal/exc"
)

// ThreadState is the per-thread frame stack. Each interpreter
// thread gets a UUID identity so diagnostics and cross-interpreter
// tooling can tell two concurrently-running threads' frame stacks
// apart without relying on a Go goroutine ID, which the runtime
// deliberately does not expose.
type ThreadState struct {
	ID           uuid.UUID
	CurrentFrame *Frame
	Depth        int
	MaxDepth     int
}

// NewThreadState creates a fresh thread with no active frame.
// maxDepth is the recursion limit.
func NewThreadState(maxDepth int) *ThreadState {
	return &ThreadState{ID: uuid.New(), MaxDepth: maxDepth}
}

// Push installs f as the new top frame, linking it to the previous
// top via f.Back. It raises RecursionError rather than pushing past
// MaxDepth.
func (ts *ThreadState) Push(f *Frame) *exc.Exception {
	if ts.MaxDepth > 0 && ts.Depth >= ts.MaxDepth {
		return exc.New(exc.RecursionError, "maximum recursion depth exceeded (thread %s, depth %d)", ts.ID, ts.Depth)
	}
	f.Back = ts.CurrentFrame
	f.Thread = ts
	ts.CurrentFrame = f
	ts.Depth++
	return nil
}

// Pop removes f from the top of the stack. Popping a frame that is
// not currently on top is a runtime invariant violation — it
// indicates a bug in the core itself, never something Language code
// can trigger, so it is reported as InterpreterError rather than any
// user-visible kind.
func (ts *ThreadState) Pop(f *Frame) *exc.Exception {
	if ts.CurrentFrame != f {
		return exc.New(exc.InterpreterError, "frame stack corruption: popping a frame that is not on top of thread %s", ts.ID)
	}
	ts.CurrentFrame = f.Back
	ts.Depth--
	return nil
}
