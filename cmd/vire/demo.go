package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vire-lang/vire/internal/callproto"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/frame"
	"github.com/vire-lang/vire/internal/object"
)

// This file supplies the two collaborators the core deliberately
// leaves to a host: a Compiler and an Interpreter. The core's job is
// the object/type/call machinery exec() drives, not a grammar, so
// this demonstrator accepts exactly one line of the form
// name(arg, arg, ...) — enough to exercise the call protocol end to
// end against the builtins internal/vmod registers, without
// pretending to be a real language front end.

// demoCode is the CodeObject exec() builds a Frame around. It carries
// the single parsed call, pre-resolved to nothing but literal values
// (no free variables — this toy grammar has no nested scopes).
type demoCode struct {
	name string
	args []object.Value
}

func (c *demoCode) Name() string                                        { return c.name }
func (c *demoCode) VarNames() []string                                  { return nil }
func (c *demoCode) FreeVars() []string                                  { return nil }
func (c *demoCode) ParamCounts() (positionalOnly, regular, keywordOnly int) { return 0, 0, 0 }
func (c *demoCode) HasVarArgs() bool                                    { return false }
func (c *demoCode) HasVarKwargs() bool                                  { return false }

// demoCompiler implements frame.Compiler against the one-line call
// grammar above.
type demoCompiler struct{}

func (demoCompiler) Compile(source string) (frame.CodeObject, error) {
	line := strings.TrimSpace(source)
	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return nil, fmt.Errorf("expected name(arg, ...), got %q", line)
	}
	name := strings.TrimSpace(line[:open])
	if name == "" {
		return nil, fmt.Errorf("missing function name in %q", line)
	}
	body := strings.TrimSpace(line[open+1 : len(line)-1])
	var args []object.Value
	if body != "" {
		for _, raw := range strings.Split(body, ",") {
			v, err := parseLiteral(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	}
	return &demoCode{name: name, args: args}, nil
}

func parseLiteral(raw string) (object.Value, error) {
	switch {
	case raw == "None":
		return object.None, nil
	case raw == "True":
		return true, nil
	case raw == "False":
		return false, nil
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		return object.Str(raw[1 : len(raw)-1]), nil
	default:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("unparseable literal %q", raw)
	}
}

// demoInterpreter implements frame.Interpreter: look the called name
// up in the frame's globals and invoke it through the call protocol
// (internal/callproto), the same path any real bytecode loop would
// use for a CALL instruction.
type demoInterpreter struct{}

func (demoInterpreter) Eval(f *frame.Frame) (object.Value, *exc.Exception) {
	code, ok := f.Code.(*demoCode)
	if !ok {
		return nil, exc.New(exc.InterpreterError, "demo interpreter given a non-demo code object")
	}
	globals, ok := f.Globals.(*object.Map)
	if !ok {
		return nil, exc.New(exc.InterpreterError, "demo interpreter requires map globals")
	}
	callee, present, err := globals.Get(object.Str(code.name))
	if err != nil {
		return nil, exc.New(exc.InterpreterError, "%v", err)
	}
	if !present {
		return nil, exc.New(exc.NameError, "name %q is not defined", code.name)
	}
	return callproto.Invoke(callee, code.args, nil)
}
