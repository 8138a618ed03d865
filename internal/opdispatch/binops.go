// Package opdispatch implements the reflected-operand dispatch rule
// for binary arithmetic and comparison operations:
// given op(v, w) with reflected form rop, decide whether to try
// w.rop(v) before v.op(w), and raise TypeError only once both sides
// have declined via the NotImplemented sentinel.
package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Handle is the shape every binary-operation Operations slot has.
type Handle func(self, other object.Value) (object.Value, error)

// Slot extracts a Handle from an Operations table — e.g. func(ops
// *object.Operations) Handle { return ops.Add }.
type Slot func(ops *object.Operations) Handle

// BinaryOp implements the three-step rule for op(v, w)
// where op/rop are extracted from the Operations table via getOp and
// getROp. name is used only to compose the TypeError message if both
// sides decline.
func BinaryOp(name string, getOp, getROp Slot, v, w object.Value) (object.Value, *exc.Exception) {
	vOps, err := types.OpsOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	wOps, err := types.OpsOf(w)
	if err != nil {
		return nil, wrap(err)
	}
	vt, err := types.TypeOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	wt, err := types.TypeOf(w)
	if err != nil {
		return nil, wrap(err)
	}

	// Step 1: if w's type is a proper subtype of v's type and
	// overrides rop, try w.rop(v) first.
	tryReflectedFirst := vt != wt && types.IsSubTypeOf(wt, vt) && getROp(wOps) != nil

	if tryReflectedFirst {
		res, handled, exception := try(getROp(wOps), w, v)
		if exception != nil {
			return nil, exception
		}
		if handled {
			return res, nil
		}
	}

	// Step 2: try v.op(w).
	res, handled, exception := try(getOp(vOps), v, w)
	if exception != nil {
		return nil, exception
	}
	if handled {
		return res, nil
	}

	// Step 2 continued: if we haven't already tried it, try w.rop(v).
	if !tryReflectedFirst {
		res, handled, exception = try(getROp(wOps), w, v)
		if exception != nil {
			return nil, exception
		}
		if handled {
			return res, nil
		}
	}

	// Step 3: both declined.
	return nil, exc.New(exc.TypeErrorKind, "unsupported operand type(s) for %s: %q and %q", name, vt.Name, wt.Name)
}

// try calls h(self, other) if h is non-nil, reporting whether the
// call produced a real (non-NotImplemented) result.
func try(h Handle, self, other object.Value) (res object.Value, handled bool, exception *exc.Exception) {
	if h == nil {
		return nil, false, nil
	}
	res, err := h(self, other)
	if err != nil {
		return nil, false, wrap(err)
	}
	if object.IsNotImplemented(res) {
		return nil, false, nil
	}
	return res, true, nil
}

func wrap(err error) *exc.Exception {
	if e, ok := err.(*exc.Exception); ok {
		return e
	}
	return exc.New(exc.InterpreterError, "opdispatch: %v", err)
}

// Slot accessors for every paired binary operation in the operations
// Operations table.
func AddSlot(ops *object.Operations) Handle  { return ops.Add }
func RAddSlot(ops *object.Operations) Handle { return ops.RAdd }
func SubSlot(ops *object.Operations) Handle  { return ops.Sub }
func RSubSlot(ops *object.Operations) Handle { return ops.RSub }
func MulSlot(ops *object.Operations) Handle  { return ops.Mul }
func RMulSlot(ops *object.Operations) Handle { return ops.RMul }
func AndSlot(ops *object.Operations) Handle  { return ops.And }
func RAndSlot(ops *object.Operations) Handle { return ops.RAnd }
func XorSlot(ops *object.Operations) Handle  { return ops.Xor }
func RXorSlot(ops *object.Operations) Handle { return ops.RXor }
func OrSlot(ops *object.Operations) Handle   { return ops.Or }
func ROrSlot(ops *object.Operations) Handle  { return ops.ROr }

// Add, Sub, Mul, And, Xor, Or are the convenience entry points a VM or
// builtin would call; each wires up its op/rop pair.
func Add(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("+", AddSlot, RAddSlot, v, w) }
func Sub(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("-", SubSlot, RSubSlot, v, w) }
func Mul(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("*", MulSlot, RMulSlot, v, w) }
func And(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("&", AndSlot, RAndSlot, v, w) }
func Xor(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("^", XorSlot, RXorSlot, v, w) }
func Or(v, w object.Value) (object.Value, *exc.Exception)  { return BinaryOp("|", OrSlot, ROrSlot, v, w) }
