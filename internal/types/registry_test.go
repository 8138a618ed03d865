package types

import (
	"reflect"
	"testing"

	"github.com/vire-lang/vire/internal/object"
)

func TestIntIsSubTypeOfObject(t *testing.T) {
	if !IsSubTypeOf(IntType, Object) {
		t.Fatal("int should be a subtype of object")
	}
}

func TestBoolIsSubTypeOfInt(t *testing.T) {
	if !IsSubTypeOf(BoolType, IntType) {
		t.Fatal("bool should be a subtype of int")
	}
	if IsSubTypeOf(IntType, BoolType) {
		t.Fatal("int should not be a subtype of bool")
	}
}

func TestCheckAndCheckExact(t *testing.T) {
	ok, err := Check(IntType, int64(3))
	if err != nil || !ok {
		t.Fatalf("Check(int, 3) = %v, %v; want true, nil", ok, err)
	}
	ok, err = Check(IntType, true)
	if err != nil || !ok {
		t.Fatalf("Check(int, true) = %v, %v; want true, nil (bool is-a int)", ok, err)
	}
	ok, err = CheckExact(IntType, true)
	if err != nil || ok {
		t.Fatal("CheckExact(int, true) should be false: true's exact type is bool")
	}
}

func TestTypeOfSynthesizesDefaultForUnknownCarrier(t *testing.T) {
	type fresh struct{ N int }
	v := &fresh{N: 1}
	tp, err := TypeOf(v)
	if err != nil {
		t.Fatalf("TypeOf: %v", err)
	}
	if tp == nil {
		t.Fatal("TypeOf should synthesise a default type, not nil")
	}
	if !IsSubTypeOf(tp, Object) {
		t.Fatal("a default-adopted type must still chain up to object")
	}

	// a second TypeOf on the same carrier returns the same Type,
	// not a freshly synthesised one.
	v2 := &fresh{N: 2}
	tp2, err := TypeOf(v2)
	if err != nil {
		t.Fatalf("TypeOf: %v", err)
	}
	if tp != tp2 {
		t.Fatal("AdoptDefault should be idempotent per carrier")
	}
}

func TestOpsOfKnownCarrier(t *testing.T) {
	ops, err := OpsOf(int64(5))
	if err != nil {
		t.Fatalf("OpsOf: %v", err)
	}
	if ops == nil || ops.Repr == nil {
		t.Fatal("int's Operations table should have a Repr handle")
	}
	s, rerr := ops.Repr(int64(5))
	if rerr != nil || s != "5" {
		t.Fatalf("Repr(5) = %q, %v; want 5, nil", s, rerr)
	}
}

func TestLookupAttrWalksMRO(t *testing.T) {
	base, err := FromSpec(Spec{
		Name:  "lookup_base",
		Bases: []*Type{Object},
		Attrs: map[string]object.Value{"greeting": object.Str("hi")},
	})
	if err != nil {
		t.Fatalf("FromSpec(base): %v", err)
	}
	derived, err := FromSpec(Spec{
		Name:  "lookup_derived",
		Bases: []*Type{base},
	})
	if err != nil {
		t.Fatalf("FromSpec(derived): %v", err)
	}

	v, owner, ok := LookupAttr(derived, "greeting")
	if !ok || v != object.Str("hi") || owner != base {
		t.Fatalf("LookupAttr = %v, %v, %v; want hi, base, true", v, owner, ok)
	}

	if _, _, ok := LookupAttr(derived, "missing"); ok {
		t.Fatal("LookupAttr should report false for an absent name")
	}
}

func TestAttrDoesNotWalkMRO(t *testing.T) {
	base, err := FromSpec(Spec{
		Name:  "attr_base",
		Bases: []*Type{Object},
		Attrs: map[string]object.Value{"x": int64(1)},
	})
	if err != nil {
		t.Fatalf("FromSpec(base): %v", err)
	}
	derived, err := FromSpec(Spec{
		Name:  "attr_derived",
		Bases: []*Type{base},
	})
	if err != nil {
		t.Fatalf("FromSpec(derived): %v", err)
	}
	if _, ok := derived.Attr("x"); ok {
		t.Fatal("Attr should only look at the type's own Dict, not its bases")
	}
}

func TestSetAttrIsVisibleToAttr(t *testing.T) {
	tp, err := FromSpec(Spec{Name: "settable", Bases: []*Type{Object}})
	if err != nil {
		t.Fatalf("FromSpec: %v", err)
	}
	tp.SetAttr("n", int64(42))
	v, ok := tp.Attr("n")
	if !ok || v != int64(42) {
		t.Fatalf("Attr(n) after SetAttr = %v, %v; want 42, true", v, ok)
	}
}

func TestFromSpecRejectsDoubleCarrierAdoption(t *testing.T) {
	type onceOnly struct{}
	carrier := reflect.TypeOf(onceOnly{})

	_, err := FromSpec(Spec{
		Name:            "first_owner",
		Bases:           []*Type{Object},
		AdoptedCarriers: []reflect.Type{carrier},
		CarrierOps:      map[reflect.Type]*object.Operations{carrier: {}},
	})
	if err != nil {
		t.Fatalf("first FromSpec: %v", err)
	}

	_, err = FromSpec(Spec{
		Name:            "second_owner",
		Bases:           []*Type{Object},
		AdoptedCarriers: []reflect.Type{carrier},
		CarrierOps:      map[reflect.Type]*object.Operations{carrier: {}},
	})
	if err == nil {
		t.Fatal("a second type adopting an already-published carrier should fail")
	}
}

// LocalOnlyCarriers get a computed Operations table inherited through
// the MRO exactly like AdoptedCarriers, but are never published into
// the process-wide carrier map, so a subtype can safely reuse a base's
// shared carrier.
func TestLocalOnlyCarrierInheritsUnsetSlotsFromBase(t *testing.T) {
	type sharedCarrier struct{ object.Value }
	carrier := reflect.TypeOf(&sharedCarrier{})

	base, err := FromSpec(Spec{
		Name:              "shared_base",
		Bases:             []*Type{Object},
		LocalOnlyCarriers: []reflect.Type{carrier},
		CarrierOps: map[reflect.Type]*object.Operations{
			carrier: {
				Repr: func(object.Value) (string, error) { return "base-repr", nil },
				Len:  func(object.Value) (int, error) { return 1, nil },
			},
		},
	})
	if err != nil {
		t.Fatalf("FromSpec(base): %v", err)
	}

	derived, err := FromSpec(Spec{
		Name:              "shared_derived",
		Bases:             []*Type{base},
		LocalOnlyCarriers: []reflect.Type{carrier},
		CarrierOps: map[reflect.Type]*object.Operations{
			carrier: {
				Repr: func(object.Value) (string, error) { return "derived-repr", nil },
			},
		},
	})
	if err != nil {
		t.Fatalf("FromSpec(derived): %v", err)
	}

	ops := derived.Ops(carrier)
	if ops == nil {
		t.Fatal("derived should have a computed Operations table for its local-only carrier")
	}
	s, _ := ops.Repr(nil)
	if s != "derived-repr" {
		t.Fatalf("Repr override = %q, want derived-repr (own slot wins)", s)
	}
	if ops.Len == nil {
		t.Fatal("Len should be inherited from base since derived left it unset")
	}
	n, _ := ops.Len(nil)
	if n != 1 {
		t.Fatalf("inherited Len = %d, want 1", n)
	}

	// LocalOnlyCarriers are never published: a second, unrelated type
	// reusing the same Go carrier must not collide.
	_, err = FromSpec(Spec{
		Name:              "shared_third",
		Bases:             []*Type{Object},
		LocalOnlyCarriers: []reflect.Type{carrier},
		CarrierOps:        map[reflect.Type]*object.Operations{carrier: {}},
	})
	if err != nil {
		t.Fatalf("a third type reusing a local-only carrier should not collide: %v", err)
	}
}
