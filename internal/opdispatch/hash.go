package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Hash and ObjectEq are the canonical hash/eq pair object.Map needs,
// dispatched through a value's Operations table rather than
// hand-rolled per call site. Any component wiring up a Map outside a
// test (internal/frame's module construction, internal/vmod's native
// modules) should use this pair so two equal dict keys always hash
// the same way no matter which package built the map.
func Hash(v object.Value) (uint64, error) {
	ops, err := types.OpsOf(v)
	if err != nil {
		return 0, err
	}
	if ops == nil || ops.Hash == nil {
		t, _ := types.TypeOf(v)
		name := "?"
		if t != nil {
			name = t.Name
		}
		return 0, exc.New(exc.TypeErrorKind, "unhashable type: %q", name)
	}
	return ops.Hash(v)
}

// ObjectEq adapts Eq's exception-returning comparison to the plain
// bool object.Map's eq function needs. A comparison that raises is
// treated as "not equal" — a hash-consistent map can't propagate an
// exception from deep inside a bucket probe, and an object whose
// Eq genuinely fails for two given values isn't usable as a dict key
// regardless.
func ObjectEq(a, b object.Value) bool {
	result, exception := Eq(a, b)
	if exception != nil {
		return false
	}
	truthy, exception := Truthy(result)
	if exception != nil {
		return false
	}
	return truthy
}
