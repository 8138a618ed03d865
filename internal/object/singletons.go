package object

// None, Ellipsis and NotImplemented are canonical unique values: every
// caller that needs "no value", "the slice-all marker", or "this
// operation declines to handle its operand" gets back the exact same
// pointer, so identity comparison ("None is None") holds across every
// call path without special-casing equality.
//
// True and False mirror the same idea for the two Boolean values: Go's
// bool is adopted directly as a carrier (see numeric.go), but call
// sites that want the canonical boxed form — e.g. returning a Boolean
// result from an Operations handle — use these vars so repeated
// True/False results don't need a fresh allocation.
var (
	None           Value = noneType{}
	Ellipsis       Value = ellipsisType{}
	NotImplemented Value = notImplementedType{}

	True  Value = true
	False Value = false
)

// IsNone reports whether v is the None singleton.
func IsNone(v Value) bool {
	_, ok := v.(noneType)
	return ok
}

// IsNotImplemented reports whether v is the NotImplemented sentinel
// returned by a binary-operation handle that declines to handle its
// operand; the reflected-op dispatch rule pivots on this check.
func IsNotImplemented(v Value) bool {
	_, ok := v.(notImplementedType)
	return ok
}

// IsEllipsis reports whether v is the Ellipsis singleton.
func IsEllipsis(v Value) bool {
	_, ok := v.(ellipsisType)
	return ok
}

// Bool converts a Go bool into the canonical True/False singleton,
// so callers never allocate a fresh Boolean.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}
