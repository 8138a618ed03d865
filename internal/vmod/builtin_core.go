// Package vmod implements the native ("builtin") modules this runtime
// ships with: the core free functions every module sees without an
// import (max, min, len, repr), plus two
// modules demonstrating the exposer against real third-party
// dependencies (net.rpc over grpc/protobuf, store over sqlite).
package vmod

import (
	"github.com/dustin/go-humanize"

	"github.com/vire-lang/vire/internal/callproto"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/opdispatch"
	"github.com/vire-lang/vire/internal/types"
)

// BuiltinsMembers populates a frame.Module's globals with the core
// free functions.
func BuiltinsMembers(set func(name string, v object.Value) error) error {
	fns := map[string]object.Value{
		"max":  nativeFunc(builtinMax),
		"min":  nativeFunc(builtinMin),
		"len":  nativeFunc(builtinLen),
		"repr": nativeFunc(builtinRepr),
	}
	for name, fn := range fns {
		if err := set(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// nativeFunc adapts a plain Go function into something satisfying
// internal/callproto.FastCall, so it can sit directly in a module's
// globals and be called like any other Language callable.
type nativeFunc func(args []object.Value, names []string) (object.Value, *exc.Exception)

func (f nativeFunc) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return f(args, names)
}

func builtinMax(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return extremum("max", args, names, opdispatch.Gt)
}

func builtinMin(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return extremum("min", args, names, opdispatch.Lt)
}

// extremum implements the shared max/min contract: called
// with several positional arguments, those ARE the candidates; called
// with exactly one, it is drained as an iterable. default= only
// applies to the single-iterable form; key= maps each candidate
// before comparing, but the candidate itself — not its key — is what
// gets returned.
func extremum(name string, args []object.Value, names []string, better func(a, b object.Value) (object.Value, *exc.Exception)) (object.Value, *exc.Exception) {
	np := len(args) - len(names)
	if np < 0 {
		return nil, exc.New(exc.InterpreterError, "%s: negative positional count", name)
	}
	positional := args[:np]

	var keyFn object.Value
	var def object.Value
	hasDefault := false
	for i, n := range names {
		switch n {
		case "key":
			keyFn = args[np+i]
		case "default":
			def = args[np+i]
			hasDefault = true
		default:
			return nil, exc.New(exc.TypeErrorKind, "%s() got an unexpected keyword argument %q", name, n)
		}
	}

	var items []object.Value
	switch {
	case len(positional) == 1:
		drained, exception := opdispatch.Drain(positional[0])
		if exception != nil {
			return nil, exception
		}
		items = drained
	case len(positional) > 1:
		if hasDefault {
			return nil, exc.New(exc.TypeErrorKind, "%s() cannot accept more than one positional argument with the default keyword argument", name)
		}
		items = positional
	default:
		return nil, exc.New(exc.TypeErrorKind, "%s() expected at least 1 argument, got 0", name)
	}

	if len(items) == 0 {
		if hasDefault {
			return def, nil
		}
		return nil, exc.New(exc.ValueErrorKind, "%s() arg is an empty sequence", name)
	}

	keyOf := func(v object.Value) (object.Value, *exc.Exception) {
		if keyFn == nil {
			return v, nil
		}
		return callproto.Invoke(keyFn, []object.Value{v}, nil)
	}

	best := items[0]
	bestKey, exception := keyOf(best)
	if exception != nil {
		return nil, exception
	}
	for _, item := range items[1:] {
		k, exception := keyOf(item)
		if exception != nil {
			return nil, exception
		}
		betterThanBest, exception := better(k, bestKey)
		if exception != nil {
			return nil, exception
		}
		ok, exception := opdispatch.Truthy(betterThanBest)
		if exception != nil {
			return nil, exception
		}
		if ok {
			best, bestKey = item, k
		}
	}
	return best, nil
}

func builtinLen(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "len() takes exactly one positional argument")
	}
	ops, err := types.OpsOf(args[0])
	if err != nil {
		return nil, exc.New(exc.InterpreterError, "len: %v", err)
	}
	if ops == nil || ops.Len == nil {
		t, _ := types.TypeOf(args[0])
		name := "?"
		if t != nil {
			name = t.Name
		}
		return nil, exc.New(exc.TypeErrorKind, "object of type %q has no len()", name)
	}
	n, goErr := ops.Len(args[0])
	if goErr != nil {
		return nil, exc.New(exc.InterpreterError, "len: %v", goErr)
	}
	return int64(n), nil
}

// builtinRepr formats RecursionError-scale container sizes with
// github.com/dustin/go-humanize when a repr grows implausibly large,
// rather than ever truncating silently.
func builtinRepr(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "repr() takes exactly one positional argument")
	}
	s, exception := opdispatch.Repr(args[0])
	if exception != nil {
		return nil, exception
	}
	if len(s) > 1<<20 {
		return nil, exc.New(exc.ValueErrorKind, "repr() result too long (%s characters)", humanize.Comma(int64(len(s))))
	}
	return object.Str(s), nil
}
