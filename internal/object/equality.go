package object

// Equal is the structural-equality predicate behind every carrier's
// Eq Operations handle. It lives in this package, not opdispatch, so
// List and Tuple can recurse into their own elements without an
// import cycle (opdispatch dispatches through the type registry,
// which itself imports object).
//
// Unlike the numeric tower's arithmetic, equality never declines: two
// values of unrelated carriers simply compare unequal rather than
// raising, matching the common "== is total" convention.
func Equal(a, b Value) bool {
	if r, ok := NumericCompare(a, b); ok {
		return r == 0
	}
	switch x := a.(type) {
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case noneType:
		_, ok := b.(noneType)
		return ok
	case ellipsisType:
		_, ok := b.(ellipsisType)
		return ok
	case notImplementedType:
		_, ok := b.(notImplementedType)
		return ok
	case *Tuple:
		y, ok := b.(*Tuple)
		return ok && sameItems(x.items, y.items)
	case *List:
		y, ok := b.(*List)
		return ok && x.Eq(y, Equal)
	case *Bytes:
		y, ok := b.(*Bytes)
		return ok && sameBytes(x.b, y.b)
	default:
		return a == b
	}
}

func sameItems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
