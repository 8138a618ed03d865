// Package callproto implements the call protocol: the
// arity-specialised FastCall surface, vectorcall dispatch, and the
// classic-call fallback that every callable must ultimately agree
// with. call(args, names) is ground truth; every other entry point in
// this package either IS that ground truth or routes through it.
package callproto

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// FastCall is the canonical entry every callable object must support
// as ground truth").
type FastCall interface {
	Call(args []object.Value, names []string) (object.Value, *exc.Exception)
}

// Arity-specialised entries are optional optimisations a callable may
// additionally implement; Invoke uses whichever the callee exposes
// that matches the call shape, and falls back to FastCall.Call
// otherwise. Spec.md requires only that the result agree with
// call(args, names) for the same payload — these interfaces exist so
// a hot call site that already knows its argument count can skip
// building a slice.
type Call0 interface {
	Call0() (object.Value, *exc.Exception)
}
type Call1 interface {
	Call1(a0 object.Value) (object.Value, *exc.Exception)
}
type Call2 interface {
	Call2(a0, a1 object.Value) (object.Value, *exc.Exception)
}
type Call3 interface {
	Call3(a0, a1, a2 object.Value) (object.Value, *exc.Exception)
}

// Vectorcaller is the PEP-590-style entry: arguments
// live in a shared stack slice rather than an allocated tuple/dict
// pair. A callable that doesn't implement it gets the default
// behaviour in Vectorcall below: copy the relevant slice and dispatch
// through Invoke.
type Vectorcaller interface {
	Vectorcall(stack []object.Value, sp, n int, names []string) (object.Value, *exc.Exception)
}

// Invoke is the call-site dispatcher: it consults callee's Operations
// table by way of the most specific interface callee implements,
// never requiring the caller to know callee's concrete type.
func Invoke(callee object.Value, args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) == 0 {
		switch len(args) {
		case 0:
			if c, ok := callee.(Call0); ok {
				return c.Call0()
			}
		case 1:
			if c, ok := callee.(Call1); ok {
				return c.Call1(args[0])
			}
		case 2:
			if c, ok := callee.(Call2); ok {
				return c.Call2(args[0], args[1])
			}
		case 3:
			if c, ok := callee.(Call3); ok {
				return c.Call3(args[0], args[1], args[2])
			}
		}
	}
	if c, ok := callee.(FastCall); ok {
		return c.Call(args, names)
	}

	ops, err := types.OpsOf(callee)
	if err != nil {
		return nil, exc.New(exc.InterpreterError, "callproto: %v", err)
	}
	if ops == nil || ops.Call == nil {
		t, terr := types.TypeOf(callee)
		name := "?"
		if terr == nil {
			name = t.Name
		}
		return nil, exc.New(exc.TypeErrorKind, "%q object is not callable", name)
	}
	res, goErr := ops.Call(callee, args, names)
	if goErr != nil {
		return nil, asException(goErr)
	}
	return res, nil
}

// Vectorcall dispatches through callee's Vectorcaller implementation
// if present; otherwise it copies stack[sp:sp+n] into a fresh slice
// and calls Invoke.
func Vectorcall(callee object.Value, stack []object.Value, sp, n int, names []string) (object.Value, *exc.Exception) {
	if c, ok := callee.(Vectorcaller); ok {
		return c.Vectorcall(stack, sp, n, names)
	}
	args := make([]object.Value, n)
	copy(args, stack[sp:sp+n])
	return Invoke(callee, args, names)
}

func asException(err error) *exc.Exception {
	if e, ok := err.(*exc.Exception); ok {
		return e
	}
	return exc.New(exc.InterpreterError, "%v", err)
}
