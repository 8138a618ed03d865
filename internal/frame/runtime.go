package frame

import "github.com/vire-lang/vire/internal/object"

// Runtime bundles exec()'s external dependencies: the
// compiler and interpreter collaborators, the thread whose frame stack
// exec() reads and extends, the builtins namespace to inject, and the
// hash/eq pair internal/object.Map needs for any namespace exec()
// builds itself.
type Runtime struct {
	Thread      *ThreadState
	Compiler    Compiler
	Interpreter Interpreter
	Builtins    object.Value
	Hash        func(object.Value) (uint64, error)
	Eq          func(a, b object.Value) bool
}

// Function is the minimal callable exec() builds around a code object
// plus its resolved closure. A full function object additionally
// carries defaults, a name, and __dict__; those belong to whatever
// builds ordinary (non-exec) functions and are out of the core's
// scope.
type Function struct {
	Code    CodeObject
	Closure []object.Value
	Globals object.Value
}
