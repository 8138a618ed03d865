package frame

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Exec implements the exec(source, globals, locals, closure) built-in
//, a six-step contract that resolves namespaces before
// ever looking at source.
func Exec(rt *Runtime, source object.Value, globalsArg, localsArg object.Value, closure []object.Value) (object.Value, *exc.Exception) {
	// Step 1: resolve globals.
	globalsGiven := !isNilOrNone(globalsArg)
	var globals object.Value
	if globalsGiven {
		globals = globalsArg
	} else if top := rt.Thread.CurrentFrame; top != nil {
		globals = top.Globals
	} else {
		return nil, exc.New(exc.SystemError, "exec: no globals given and no active frame")
	}

	// Step 2: resolve locals.
	localsGiven := !isNilOrNone(localsArg)
	var locals object.Value
	switch {
	case localsGiven:
		locals = localsArg
	case globalsGiven:
		locals = globals
	default:
		// globals came from the top frame, so the top frame exists.
		locals = rt.Thread.CurrentFrame.Locals
	}

	// Step 3: reject non-mapping locals.
	if !isMapping(locals) {
		t, _ := types.TypeOf(locals)
		name := "?"
		if t != nil {
			name = t.Name
		}
		return nil, exc.New(exc.TypeErrorKind, "exec() locals must be a mapping, not %q", name)
	}

	// Step 4: ensure __builtins__ in globals.
	globalsMap, ok := globals.(*object.Map)
	if !ok {
		return nil, exc.New(exc.SystemError, "exec: globals must be a dict-like mapping")
	}
	if err := EnsureBuiltins(globalsMap, rt.Builtins); err != nil {
		return nil, wrapGo(err)
	}

	switch src := source.(type) {
	case CodeObject:
		return execCode(rt, src, globals, locals, closure)
	case object.Str:
		return execSource(rt, string(src), globals, locals, closure)
	case string:
		return execSource(rt, src, globals, locals, closure)
	default:
		return nil, exc.New(exc.TypeErrorKind, "exec() source must be a string or a code object")
	}
}

// Step 5: source is a code object. Arity-check closure against its
// free variables, then build a function, build a frame, evaluate.
func execCode(rt *Runtime, code CodeObject, globals, locals object.Value, closure []object.Value) (object.Value, *exc.Exception) {
	free := code.FreeVars()
	switch {
	case len(free) == 0 && len(closure) != 0:
		return nil, exc.New(exc.TypeErrorKind, "exec() closure is not allowed for a code object with no free variables")
	case len(free) != 0 && len(closure) != len(free):
		return nil, exc.New(exc.TypeErrorKind, "exec() closure must have exactly %d values, got %d", len(free), len(closure))
	}

	fn := &Function{Code: code, Closure: closure, Globals: globals}
	f := NewFrame(code, fn, globals, locals)
	return runFrame(rt, f)
}

// Step 6: source is a string. No closure is permitted; compile via
// the external compiler collaborator and evaluate.
func execSource(rt *Runtime, src string, globals, locals object.Value, closure []object.Value) (object.Value, *exc.Exception) {
	if len(closure) != 0 {
		return nil, exc.New(exc.TypeErrorKind, "exec() closure is not allowed when source is a string")
	}
	if rt.Compiler == nil {
		return nil, exc.New(exc.SystemError, "exec: no compiler collaborator configured")
	}
	code, err := rt.Compiler.Compile(src)
	if err != nil {
		return nil, wrapGo(err)
	}
	fn := &Function{Code: code, Globals: globals}
	f := NewFrame(code, fn, globals, locals)
	return runFrame(rt, f)
}

func runFrame(rt *Runtime, f *Frame) (object.Value, *exc.Exception) {
	if rt.Interpreter == nil {
		return nil, exc.New(exc.SystemError, "exec: no interpreter collaborator configured")
	}
	if exception := f.Push(rt.Thread); exception != nil {
		return nil, exception
	}
	defer f.Pop()
	return rt.Interpreter.Eval(f)
}

func isNilOrNone(v object.Value) bool {
	return v == nil || object.IsNone(v)
}

// isMapping applies the mapping protocol's own definition: a value is
// a mapping if its Operations table answers both GetItem and SetItem.
func isMapping(v object.Value) bool {
	ops, err := types.OpsOf(v)
	if err != nil || ops == nil {
		return false
	}
	return ops.GetItem != nil && ops.SetItem != nil
}

func wrapGo(err error) *exc.Exception {
	if e, ok := err.(*exc.Exception); ok {
		return e
	}
	return exc.New(exc.InterpreterError, "%v", err)
}
