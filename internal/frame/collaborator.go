// Package frame implements execution frames, per-thread frame stacks,
// modules, and the exec() built-in. The compiler and
// the bytecode interpreter loop are out of scope for the core; this file is their contract, made concrete enough to write
// against and test without pulling either collaborator in.
package frame

import "github.com/vire-lang/vire/internal/object"
import "github.com/vire-lang/vire/internal/exc"

// CodeObject is what the core needs from a compiled unit of source
//: enough to build a Frame and to
// arity-check a closure against its free variables.
type CodeObject interface {
	Name() string
	VarNames() []string
	FreeVars() []string
	ParamCounts() (positionalOnly, regular, keywordOnly int)
	HasVarArgs() bool
	HasVarKwargs() bool
}

// Compiler turns source text into a CodeObject.
type Compiler interface {
	Compile(source string) (CodeObject, error)
}

// Interpreter evaluates a pushed Frame to completion, returning either
// a value or a raised exception. The core does not mandate bytecode format.").
type Interpreter interface {
	Eval(f *Frame) (object.Value, *exc.Exception)
}
