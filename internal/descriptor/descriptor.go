// Package descriptor implements the owner-bound attribute values that
// bridge native Go code to Language attribute semantics: method descriptors, getset descriptors, member descriptors,
// and the classmethod/staticmethod variants. Every descriptor answers
// Get(ownerType, instance), and some answer Set/Delete.
package descriptor

import (
	"github.com/vire-lang/vire/internal/argbind"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// NativeMethod is the ground-truth handle every method descriptor
// ultimately calls: self, the positional/keyword payload in, a
// result or exception out. Arity-specialised fast paths in
// internal/callproto are pure optimisations that must agree with this
// handle, never a second source of truth.
type NativeMethod func(self object.Value, args []object.Value, names []string) (object.Value, *exc.Exception)

// MethodDescriptor is a callable attribute bound to an owner type.
type MethodDescriptor struct {
	Name   string
	Owner  *types.Type
	Doc    string
	Parser *argbind.ArgParser
	Tag    argbind.OptTag
	Handle NativeMethod

	// Static is true for a staticmethod descriptor: Get never
	// prepends self.
	Static bool
	// IsClassMethod is true for a classmethod descriptor: Get binds
	// the owner *type* rather than an instance.
	IsClassMethod bool
}

// Get implements the descriptor protocol: `instance ==
// None` returns the descriptor itself (unbound, e.g. for introspection
// or an explicit `OwnerType.method(instance, ...)` call); otherwise it
// returns a BoundMethod that prepends instance (or, for a classmethod,
// the owner type) ahead of the caller's positional payload.
func (d *MethodDescriptor) Get(owner *types.Type, instance object.Value) (object.Value, *exc.Exception) {
	if d.Static {
		return d, nil
	}
	if object.IsNone(instance) {
		return d, nil
	}
	bound := instance
	if d.IsClassMethod {
		bound = owner
	}
	return &BoundMethod{Self: bound, Descriptor: d}, nil
}

// Call lets a MethodDescriptor be invoked directly while unbound:
// args[0] is treated as self.
func (d *MethodDescriptor) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if d.Static {
		return d.Handle(nil, args, names)
	}
	if len(args) == 0 {
		return nil, exc.New(exc.TypeErrorKind, "unbound method %s() needs an argument", d.Name)
	}
	return d.Handle(args[0], args[1:], names)
}

// BoundMethod prepends its captured receiver ahead of the incoming
// positional payload, then delegates to the descriptor's ground-truth
// handle.
type BoundMethod struct {
	Self       object.Value
	Descriptor *MethodDescriptor
}

// Call implements the FastCall ground truth (internal/callproto.FastCall
// is satisfied structurally; this package does not need to import
// callproto to participate in the call protocol).
func (b *BoundMethod) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return b.Descriptor.Handle(b.Self, args, names)
}
