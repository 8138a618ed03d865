package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Iter dispatches v's Operations.Iter handle, producing the iterator
// value.
func Iter(v object.Value) (object.Value, *exc.Exception) {
	ops, err := types.OpsOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	t, err := types.TypeOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	if ops == nil || ops.Iter == nil {
		return nil, exc.New(exc.TypeErrorKind, "%q object is not iterable", t.Name)
	}
	res, goErr := ops.Iter(v)
	if goErr != nil {
		return nil, wrap(goErr)
	}
	return res, nil
}

// Next advances iterator it one step, reporting (value, true) or
// (nil, false) at exhaustion — object.ErrIterationDone is reported as
// (nil, false, nil), so no exception is allocated per exhausted loop.
func Next(it object.Value) (object.Value, bool, *exc.Exception) {
	ops, err := types.OpsOf(it)
	if err != nil {
		return nil, false, wrap(err)
	}
	t, err := types.TypeOf(it)
	if err != nil {
		return nil, false, wrap(err)
	}
	if ops == nil || ops.Next == nil {
		return nil, false, exc.New(exc.TypeErrorKind, "%q object is not an iterator", t.Name)
	}
	v, goErr := ops.Next(it)
	if goErr != nil {
		if goErr == object.ErrIterationDone {
			return nil, false, nil
		}
		return nil, false, wrap(goErr)
	}
	return v, true, nil
}

// Drain fully consumes an iterable into a slice (the shape max/min and
// other native builtins need for their single-iterable-argument form,
// e.g. "min(iter([]), default=-1)".
func Drain(iterable object.Value) ([]object.Value, *exc.Exception) {
	it, exception := Iter(iterable)
	if exception != nil {
		return nil, exception
	}
	var out []object.Value
	for {
		v, ok, exception := Next(it)
		if exception != nil {
			return nil, exception
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
