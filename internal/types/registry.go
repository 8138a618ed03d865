package types

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/vire-lang/vire/internal/object"
)

// registryMu guards writes to carrierTyp/carrierOps. Reads after
// publication are lock-free — achieved here by storing
// both maps behind a sync.Map, whose Load is safe for concurrent use
// with any number of writers and needs no read-side lock at all.
var (
	registryMu sync.Mutex // serialises writers only; see sync.Map below
	carrierTyp sync.Map   // reflect.Type -> *Type
	carrierOps sync.Map   // reflect.Type -> *object.Operations
)

// Object is the root of every MRO; it is nil until bootstrap.go's
// init runs, matching the requirement that Object terminates
// every MRO once the type system is up.
var Object *Type

// FromSpec is the canonical Type constructor.
func FromSpec(spec Spec) (*Type, error) {
	bases := spec.Bases
	if bases == nil && Object != nil && spec.Name != "object" {
		bases = []*Type{Object}
	}

	t := &Type{
		Name:              spec.Name,
		Bases:             bases,
		Flags:             spec.Flags,
		Dict:              spec.Attrs,
		AdoptedCarriers:   spec.AdoptedCarriers,
		OperandCompatible: spec.OperandCompatible,
	}
	if t.Dict == nil {
		t.Dict = make(map[string]object.Value)
	}

	mro, err := c3Linearize(t, bases)
	if err != nil {
		return nil, err
	}
	t.MRO = mro

	allCarriers := append(append([]reflect.Type{}, spec.AdoptedCarriers...), spec.LocalOnlyCarriers...)
	t.opsByCarrier = make(map[reflect.Type]*object.Operations, len(allCarriers))
	for _, carrier := range allCarriers {
		own := spec.CarrierOps[carrier]
		if own == nil {
			// A Spec with exactly one carrier may describe its
			// operations under any single key; fall back to it.
			for _, v := range spec.CarrierOps {
				own = v
				break
			}
		}
		inherited := own
		// Walk the MRO (excluding self, already folded into `own`)
		// from nearest to furthest base, inheriting unset slots from
		// any ancestor that adopts this same carrier. An ancestor that adopts a *different* carrier for
		// the same logical type (e.g. a subtype sharing only part of
		// a multi-carrier base) contributes nothing here: its handles
		// type-assert their own carrier and would panic on a
		// mismatched one.
		for _, anc := range mro[1:] {
			inherited = inherited.Merge(anc.Ops(carrier))
		}
		t.opsByCarrier[carrier] = inherited
	}

	if err := publish(t); err != nil {
		return nil, err
	}
	return t, nil
}

// publish installs t's carriers into the process-wide maps. Each
// carrier key is write-once: a second type attempting to adopt a
// carrier already owned by a published type is a registration error,
// since the carrier map is "write-once per key".
func publish(t *Type) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, carrier := range t.AdoptedCarriers {
		if existing, ok := carrierTyp.Load(carrier); ok {
			return fmt.Errorf("types: carrier %s already adopted by %q, cannot also register %q",
				carrier, existing.(*Type).Name, t.Name)
		}
	}
	for _, carrier := range t.AdoptedCarriers {
		carrierTyp.Store(carrier, t)
		carrierOps.Store(carrier, t.opsByCarrier[carrier])
	}
	return nil
}

// Typed is implemented by carriers that know their own Type at the
// instance level rather than the Go-type level: exceptions (many
// exception classes share the single *exc.Exception Go struct) and
// user-defined class instances (many classes share one generic
// "instance" struct carrying a pointer to the class's Type). TypeOf
// and OpsOf check this escape hatch before falling back to the
// process-wide carrier map, which only works when one Go type maps to
// exactly one Language type.
type Typed interface {
	VireType() *Type
}

// TypeOf returns v's registered Type, synthesising a default wrapper
// type via AdoptDefault if v's carrier was never registered.
func TypeOf(v object.Value) (*Type, error) {
	if v == nil {
		return nil, fmt.Errorf("types: TypeOf(nil)")
	}
	if tv, ok := v.(Typed); ok {
		return tv.VireType(), nil
	}
	carrier := reflect.TypeOf(v)
	if t, ok := carrierTyp.Load(carrier); ok {
		return t.(*Type), nil
	}
	return AdoptDefault(carrier)
}

// OpsOf returns the Operations table for v's carrier.
func OpsOf(v object.Value) (*object.Operations, error) {
	if v == nil {
		return nil, fmt.Errorf("types: OpsOf(nil)")
	}
	if tv, ok := v.(Typed); ok {
		return tv.VireType().Ops(reflect.TypeOf(v)), nil
	}
	carrier := reflect.TypeOf(v)
	if ops, ok := carrierOps.Load(carrier); ok {
		return ops.(*object.Operations), nil
	}
	if _, err := AdoptDefault(carrier); err != nil {
		return nil, err
	}
	ops, _ := carrierOps.Load(carrier)
	return ops.(*object.Operations), nil
}

// defaultAdoptionMu serialises AdoptDefault so two goroutines racing
// to adopt the same unfamiliar carrier don't both call FromSpec.
var defaultAdoptionMu sync.Mutex

// AdoptDefault synthesises a minimal Type wrapping an arbitrary
// native Go carrier the core does not control: non-instantiable,
// base-only. Hosts embedding the core are
// expected to override carrier adoption for classes they care about
// before any value of that carrier reaches the runtime; AdoptDefault
// is the fallback seam, not the primary path.
func AdoptDefault(carrier reflect.Type) (*Type, error) {
	defaultAdoptionMu.Lock()
	defer defaultAdoptionMu.Unlock()

	if t, ok := carrierTyp.Load(carrier); ok {
		return t.(*Type), nil
	}
	if carrier == nil {
		return nil, fmt.Errorf("types: MissingFeature: cannot adopt a nil carrier")
	}

	spec := Spec{
		Name:            fmt.Sprintf("<native %s>", carrier),
		Bases:           []*Type{Object},
		AdoptedCarriers: []reflect.Type{carrier},
		Flags:           0,
		CarrierOps:      map[reflect.Type]*object.Operations{carrier: {}},
	}
	return FromSpec(spec)
}

// IsSubTypeOf is a linear scan of t's MRO.
func IsSubTypeOf(t, u *Type) bool {
	if t == nil || u == nil {
		return false
	}
	for _, anc := range t.MRO {
		if anc == u {
			return true
		}
	}
	return false
}

// Check reports whether v is an instance of t or one of t's subtypes.
func Check(t *Type, v object.Value) (bool, error) {
	vt, err := TypeOf(v)
	if err != nil {
		return false, err
	}
	return IsSubTypeOf(vt, t), nil
}

// CheckExact reports whether v's type is exactly t (no subtype match).
func CheckExact(t *Type, v object.Value) (bool, error) {
	vt, err := TypeOf(v)
	if err != nil {
		return false, err
	}
	return vt == t, nil
}

// LookupAttr walks t's MRO looking for name, returning the first hit
// and the type that defines it.
func LookupAttr(t *Type, name string) (object.Value, *Type, bool) {
	for _, anc := range t.MRO {
		if v, ok := anc.Attr(name); ok {
			return v, anc, true
		}
	}
	return nil, nil, false
}
