package opdispatch

import (
	"reflect"
	"testing"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// fixtureInstance is a carrier shared by several throwaway Types built
// via LocalOnlyCarriers: each instance reports its own Type through
// types.Typed rather than being looked up by Go type, exactly the
// escape hatch user-defined class instances use.
type fixtureInstance struct {
	typ *types.Type
}

func (f *fixtureInstance) VireType() *types.Type { return f.typ }

// newFixtureTypes builds a base type T and a subtype S sharing the
// fixtureInstance carrier: T defines Add, S overrides only RAdd.
func newFixtureTypes(t *testing.T) (tType, sType *types.Type) {
	t.Helper()
	carrier := reflect.TypeOf(&fixtureInstance{})

	tType, err := types.FromSpec(types.Spec{
		Name:              "opdispatch_fixture_T",
		Bases:             []*types.Type{types.Object},
		LocalOnlyCarriers: []reflect.Type{carrier},
		CarrierOps: map[reflect.Type]*object.Operations{
			carrier: {
				Add: func(self, other object.Value) (object.Value, error) {
					return object.Str("T.add"), nil
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("FromSpec(T): %v", err)
	}

	sType, err = types.FromSpec(types.Spec{
		Name:              "opdispatch_fixture_S",
		Bases:             []*types.Type{tType},
		LocalOnlyCarriers: []reflect.Type{carrier},
		CarrierOps: map[reflect.Type]*object.Operations{
			carrier: {
				RAdd: func(self, other object.Value) (object.Value, error) {
					return object.Str("S.radd"), nil
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("FromSpec(S): %v", err)
	}
	return tType, sType
}

// A proper subtype that overrides the reflected operation is tried
// before the base type's own forward operation.
func TestBinaryOpTriesSubtypeReflectedOperationFirst(t *testing.T) {
	tType, sType := newFixtureTypes(t)
	tVal := &fixtureInstance{typ: tType}
	sVal := &fixtureInstance{typ: sType}

	res, exception := Add(tVal, sVal)
	if exception != nil {
		t.Fatalf("Add(T, S): %v", exception)
	}
	if res != object.Str("S.radd") {
		t.Fatalf("Add(T, S) = %v, want S.radd", res)
	}
}

// S inherits T's forward Add (via the shared-carrier Operations
// merge), so S + T falls through to it instead of raising.
func TestBinaryOpFallsBackToInheritedForwardOperation(t *testing.T) {
	tType, sType := newFixtureTypes(t)
	tVal := &fixtureInstance{typ: tType}
	sVal := &fixtureInstance{typ: sType}

	res, exception := Add(sVal, tVal)
	if exception != nil {
		t.Fatalf("Add(S, T): %v", exception)
	}
	if res != object.Str("T.add") {
		t.Fatalf("Add(S, T) = %v, want T.add", res)
	}
}

// Neither T nor S define Sub/RSub, so both steps of the dispatch rule
// decline and the call must raise rather than panic on a nil handle.
func TestBinaryOpRaisesTypeErrorWhenBothSidesDecline(t *testing.T) {
	_, sType := newFixtureTypes(t)
	sVal := &fixtureInstance{typ: sType}

	_, exception := Sub(sVal, int64(1))
	if exception == nil || exception.Kind() != exc.TypeErrorKind {
		t.Fatalf("Sub(S, int) = %v, want TypeError", exception)
	}
}

func TestBoolIntFloatNumericTowerProperties(t *testing.T) {
	sum, exception := Add(true, true)
	if exception != nil {
		t.Fatalf("True + True: %v", exception)
	}
	if sum != int64(2) {
		t.Fatalf("True + True = %v, want 2 (int)", sum)
	}

	orRes, exception := Or(true, int64(2))
	if exception != nil {
		t.Fatalf("True | 2: %v", exception)
	}
	if orRes != int64(3) {
		t.Fatalf("True | 2 = %v, want 3", orRes)
	}

	andRes, exception := And(true, false)
	if exception != nil {
		t.Fatalf("True & False: %v", exception)
	}
	if andRes != false {
		t.Fatalf("True & False = %v (%T), want the False singleton", andRes, andRes)
	}

	mixed, exception := Add(int64(1), 2.5)
	if exception != nil {
		t.Fatalf("1 + 2.5: %v", exception)
	}
	if mixed != 3.5 {
		t.Fatalf("1 + 2.5 = %v, want 3.5", mixed)
	}
}
