// Package types implements the type registry: Type
// construction from a Spec, C3-linearised MRO, subtype checks, and the
// process-wide carrier -> (Type, Operations) maps that let
// internal/object values resolve "what am I" and "what can I do" in
// O(1).
package types

import (
	"reflect"

	"github.com/vire-lang/vire/internal/object"
)

// Flags describes type-level capability bits.
type Flags uint32

const (
	// FlagBaseType marks a type as subclassable by user-defined
	// classes. Cleared on a handful of bootstrap types (e.g. `bool`)
	// that must never gain subclasses.
	FlagBaseType Flags = 1 << iota
	// FlagInstantiable marks a type as directly constructible via a
	// call to the type object itself (`int(...)`, `MyClass(...)`).
	// Abstract bootstrap types (e.g. a hypothetical numeric tower
	// root) may clear this.
	FlagInstantiable
)

// Type is a Language-visible type: bootstrap (object, int, str, ...)
// or user-defined (a class statement evaluated at runtime). Once
// created, Name, Bases, MRO and the adopted-carrier set are immutable;
// Dict is mutable under the guard in guard.go.
type Type struct {
	Name  string
	Bases []*Type
	MRO   []*Type
	Flags Flags

	// Dict holds the type's own named attributes: descriptors, nested
	// types, constants. Lookups that fall through to a base type walk
	// MRO explicitly; Dict itself is never merged across the
	// hierarchy.
	Dict map[string]object.Value

	// AdoptedCarriers are the native Go types recognised as canonical
	// instances of this Type without wrapping. OperandCompatible carriers are accepted only
	// as the right-hand operand of a binary operation (e.g. bool as
	// the right operand of integer arithmetic) and are never returned
	// by TypeOf for a bare carrier value.
	AdoptedCarriers   []reflect.Type
	OperandCompatible []reflect.Type

	// opsByCarrier holds the fully-inherited Operations table for each
	// adopted carrier, computed once in FromSpec and never mutated
	// afterward.
	opsByCarrier map[reflect.Type]*object.Operations

	guard guard
}

// Spec is the data record used to construct a Type.
type Spec struct {
	Name string

	// NativeToken is an opaque authorisation handle bootstrap types
	// pass to prove they're allowed to register a carrier that isn't
	// backed by a user-defined class statement. User-defined types
	// leave this nil.
	NativeToken any

	// Bases defaults to []*Type{Object} when empty (except for Object
	// itself, which must pass an explicit empty slice).
	Bases []*Type

	AdoptedCarriers   []reflect.Type
	OperandCompatible []reflect.Type
	Flags             Flags

	// LocalOnlyCarriers gets an Operations table computed and stored
	// exactly like AdoptedCarriers, but is never published into the
	// process-wide carrier map. Use this for a Go carrier shared by
	// many distinct Language types at once: each Type keeps its own local Operations entry, and
	// instances report their own Type directly via types.Typed
	// instead of being looked up by Go type.
	LocalOnlyCarriers []reflect.Type

	// Attrs holds descriptors, nested types and constants produced by
	// the exposer (internal/expose) or, for user-defined types, by
	// evaluating a class body. FromSpec copies this into the Type's
	// Dict.
	Attrs map[string]object.Value

	// CarrierOps holds the operations this Spec itself contributes,
	// keyed by adopted carrier. FromSpec merges each entry with the
	// inherited table from Bases (MRO order) to fill unset slots. A
	// Spec with a single carrier may supply one entry under any carrier
	// key; FromSpec uses it for every adopted carrier that has no more
	// specific entry.
	CarrierOps map[reflect.Type]*object.Operations
}

// Ops returns the fully-inherited Operations table for carrier, or nil
// if carrier was never adopted by t.
func (t *Type) Ops(carrier reflect.Type) *object.Operations {
	return t.opsByCarrier[carrier]
}

// PrimaryOps returns the Operations table for t's first adopted
// carrier, for types (the overwhelming majority) that adopt exactly
// one.
func (t *Type) PrimaryOps() *object.Operations {
	if len(t.AdoptedCarriers) == 0 {
		return nil
	}
	return t.opsByCarrier[t.AdoptedCarriers[0]]
}

// Attr looks up name in t.Dict only (no MRO walk); callers that want
// inherited lookup use LookupAttr in registry.go.
func (t *Type) Attr(name string) (object.Value, bool) {
	t.guard.RLock()
	defer t.guard.RUnlock()
	v, ok := t.Dict[name]
	return v, ok
}

// SetAttr mutates t.Dict under t's per-type guard.
func (t *Type) SetAttr(name string, v object.Value) {
	t.guard.Lock()
	defer t.guard.Unlock()
	if t.Dict == nil {
		t.Dict = make(map[string]object.Value)
	}
	t.Dict[name] = v
}
