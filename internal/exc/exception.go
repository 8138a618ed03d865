// Package exc implements the built-in exception hierarchy. Every exception is both a Language value
// (its Type chains to BaseException through the type registry) and a
// native Go throwable (*Exception implements error), which is what
// lets internal/object's Operations handles propagate a raised
// exception simply by returning it as their error result without this
// package needing to be imported by internal/object at all.
package exc

import (
	"fmt"
	"sync"

	"github.com/vire-lang/vire/internal/types"
)

// Kind identifies a built-in exception class by name, independent of
// the *types.Type pointer identity, so call sites can test "is this a
// KeyError" without importing a Type global for every leaf class.
type Kind string

const (
	BaseException      Kind = "BaseException"
	ExceptionKind      Kind = "Exception"
	ArithmeticError    Kind = "ArithmeticError"
	ZeroDivisionError  Kind = "ZeroDivisionError"
	OverflowError      Kind = "OverflowError"
	LookupError        Kind = "LookupError"
	KeyErrorKind       Kind = "KeyError"
	IndexError         Kind = "IndexError"
	NameError          Kind = "NameError"
	UnboundLocalError  Kind = "UnboundLocalError"
	RuntimeError       Kind = "RuntimeError"
	RecursionError     Kind = "RecursionError"
	StopIterationKind  Kind = "StopIteration"
	SystemError        Kind = "SystemError"
	InterpreterError   Kind = "InterpreterError"
	TypeErrorKind      Kind = "TypeError"
	ValueErrorKind     Kind = "ValueError"
	AttributeErrorKind Kind = "AttributeError"
	NotImplementedErr  Kind = "NotImplementedError"
	MissingFeature     Kind = "MissingFeature"
	Warning            Kind = "Warning"
	DeprecationWarning Kind = "DeprecationWarning"
	RuntimeWarning     Kind = "RuntimeWarning"
)

// Exception is the concrete representation for every built-in
// exception class. Message formatting is deferred until Message() is
// called, so raising an exception on a hot error path costs one
// allocation, not an eager Sprintf.
type Exception struct {
	kind   Kind
	typ    *types.Type
	format string
	args   []any

	mu     sync.Mutex
	cached string
	done   bool

	// attrs holds any Language-visible attributes set after
	// construction.
	attrs map[string]any
}

// New constructs an exception of the given kind with a deferred
// format string and arguments.
func New(kind Kind, format string, args ...any) *Exception {
	return &Exception{kind: kind, typ: typeOf(kind), format: format, args: args}
}

// Kind reports which built-in exception class this is.
func (e *Exception) Kind() Kind { return e.kind }

// Type returns the exception's registered *types.Type.
func (e *Exception) Type() *types.Type { return e.typ }

// Message formats and caches the exception's message.
func (e *Exception) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.done {
		e.cached = fmt.Sprintf(e.format, e.args...)
		e.done = true
	}
	return e.cached
}

// Error implements the Go error interface, which is what lets an
// *Exception propagate through any API that returns a plain `error` —
// including internal/object's Operations handles — without those
// packages depending on exc.
func (e *Exception) Error() string { return string(e.kind) + ": " + e.Message() }

// Attr returns a previously-set attribute.
func (e *Exception) Attr(name string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr is the sole mutator for an exception's attribute dict.
func (e *Exception) SetAttr(name string, v any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.attrs == nil {
		e.attrs = make(map[string]any)
	}
	e.attrs[name] = v
}

// Is reports whether e's kind is k or a descendant of k in the
// built-in hierarchy.
func (e *Exception) Is(k Kind) bool {
	return IsSubKind(e.kind, k)
}
