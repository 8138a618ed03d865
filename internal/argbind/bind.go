package argbind

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// Result is the outcome of a successful Bind: Slots holds one entry
// per named parameter (length ap.Arity()), and VarArgs/VarKwargs hold
// the collected overflow when the ArgParser declares a collector.
type Result struct {
	Slots    []object.Value
	VarArgs  *object.Tuple // nil unless ap.HasVarArgs
	VarKwargs *object.Map  // nil unless ap.HasVarKwargs
}

// Bind fuses a call payload (values, names) against ap, implementing
// exactly: `values[:np]` are positional (np =
// len(values)-len(names)), the tail `values[np:]` pairs positionally
// with `names` as keyword arguments. newMap must build an empty
// mapping carrier (internal/argbind has no reason to depend on the
// hashing machinery internal/object.Map needs, so the caller supplies
// a ready constructor) — it is invoked whenever ap.HasVarKwargs, so
// Result.VarKwargs is an empty map when no keyword argument overflows.
func Bind(ap *ArgParser, values []object.Value, names []string, newMap func() *object.Map) (*Result, *exc.Exception) {
	np := len(values) - len(names)
	if np < 0 {
		return nil, exc.New(exc.InterpreterError, "argbind: negative positional count (values=%d names=%d)", len(values), len(names))
	}

	slots := make([]object.Value, ap.Arity())
	filled := make([]bool, ap.Arity())

	var varArgs []object.Value

	// Fill positional-only + regular parameters by position.
	posLimit := ap.PositionalOnly + ap.RegularCount
	for i := 0; i < np; i++ {
		if i < posLimit {
			slots[i] = values[i]
			filled[i] = true
			continue
		}
		if ap.HasVarArgs {
			varArgs = append(varArgs, values[i])
			continue
		}
		return nil, exc.New(exc.TypeErrorKind, "%s() takes at most %d positional arguments but %d were given", ap.Name, posLimit, np)
	}

	var kwOverflow *object.Map

	// Bind keyword arguments.
	for i, name := range names {
		idx, known := ap.nameIndex[name]
		switch {
		case known && idx < ap.PositionalOnly:
			return nil, exc.New(exc.TypeErrorKind, "%s() got a positional-only argument %q passed as keyword", ap.Name, name)
		case known && idx < posLimit+ap.KeywordOnly:
			if filled[idx] {
				return nil, exc.New(exc.TypeErrorKind, "%s() got multiple values for argument %q", ap.Name, name)
			}
			slots[idx] = values[np+i]
			filled[idx] = true
		case ap.HasVarKwargs:
			if kwOverflow == nil {
				kwOverflow = newMap()
			}
			if err := kwOverflow.Set(object.Str(name), values[np+i]); err != nil {
				return nil, exc.New(exc.InterpreterError, "argbind: %v", err)
			}
		default:
			return nil, exc.New(exc.TypeErrorKind, "%s() got an unexpected keyword argument %q", ap.Name, name)
		}
	}

	// Apply defaults, then report any parameter still unfilled.
	for i, p := range ap.Params {
		if filled[i] {
			continue
		}
		if p.HasDefault {
			slots[i] = p.Default
			filled[i] = true
			continue
		}
		return nil, exc.New(exc.TypeErrorKind, "%s() missing required argument: %q", ap.Name, p.Name)
	}

	res := &Result{Slots: slots}
	if ap.HasVarArgs {
		res.VarArgs = object.NewTuple(varArgs...)
	}
	if ap.HasVarKwargs {
		if kwOverflow == nil {
			kwOverflow = newMap()
		}
		res.VarKwargs = kwOverflow
	}
	return res, nil
}
