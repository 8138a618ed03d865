// Package object defines the runtime value representation shared by
// every Vire value: the tagged carriers (int, float, bool, str, bytes,
// tuple, list, dict), the canonical singletons, and the per-carrier
// Operations table that the type registry (internal/types) fills in
// and that the call protocol (internal/callproto) and operator
// dispatch (internal/opdispatch) read.
//
// This package intentionally knows nothing about types, descriptors,
// or exceptions: a Value is just whatever Go value a carrier happens
// to be, and "what type is this" / "what can I do with it" are
// answered elsewhere via a carrier -> (Type, Operations) lookup. That
// split is what lets the core adopt a carrier class it does not
// control (a bare host int64, a bare host string) without wrapping it.
package object

// Value is the universal handle for anything Vire code can hold: a
// local variable, a stack slot, a dict key, an attribute. Carriers are
// plain Go values; identity and behaviour come from the registry that
// maps a carrier's reflect.Type to a Type/Operations pair, not from
// any interface a carrier must implement.
type Value = any

// Str adopts a Go string as the String carrier. It is a distinct named
// type (rather than a bare `string`) only so the carrier map can tell
// "a Vire string" apart from an arbitrary host string passed in from
// native code; RuneLen and byte access both look through Go's UTF-8
// string machinery.
type Str string

// Ellipsis, None and NotImplemented are represented by distinct empty
// struct types so that type_of() can distinguish them from one
// another through the carrier map while each remains a zero-allocation
// singleton (see singletons.go).
type noneType struct{}
type ellipsisType struct{}
type notImplementedType struct{}

func (noneType) String() string           { return "None" }
func (ellipsisType) String() string       { return "Ellipsis" }
func (notImplementedType) String() string { return "NotImplemented" }
