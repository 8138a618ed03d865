package expose

import (
	"reflect"

	"github.com/vire-lang/vire/internal/descriptor"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// MemberSpec declares one "member" annotation. Supply either FieldName, to reach the native struct
// field by reflection, or Get/Set/Empty/Clear directly when the field
// needs translation beyond a plain reflect.Value round-trip.
type MemberSpec struct {
	Name      string
	Doc       string
	ReadOnly  bool
	Optional  bool
	FieldName string

	Get   func(self object.Value) object.Value
	Set   func(self object.Value, v object.Value)
	Empty func(self object.Value) bool
	Clear func(self object.Value)
}

func buildMemberDescriptor(owner *types.Type, m MemberSpec) *descriptor.MemberDescriptor {
	get, set := m.Get, m.Set
	if get == nil && m.FieldName != "" {
		get, set = reflectFieldAccessors(m.FieldName)
	}
	if m.Optional {
		return descriptor.NewOptionalMemberDescriptor(m.Name, owner, m.ReadOnly, get, set, m.Empty, m.Clear)
	}
	return descriptor.NewMemberDescriptor(m.Name, owner, m.ReadOnly, get, set)
}

// reflectFieldAccessors builds get/set closures over a named field of
// self's underlying struct, resolving the pointer indirection every
// adopted carrier in this runtime uses. The field's static Go
// type must already be object.Value (i.e. `any`) or directly
// assignable from one; this is the same boundary a
// Operations.computeValue open question marks as a collaborator
// contract, not a core behaviour — a field needing real conversion
// supplies explicit Get/Set instead.
func reflectFieldAccessors(fieldName string) (func(object.Value) object.Value, func(object.Value, object.Value)) {
	get := func(self object.Value) object.Value {
		v := reflect.ValueOf(self)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		return v.FieldByName(fieldName).Interface()
	}
	set := func(self object.Value, val object.Value) {
		v := reflect.ValueOf(self)
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		fv := v.FieldByName(fieldName)
		fv.Set(reflect.ValueOf(val))
	}
	return get, set
}
