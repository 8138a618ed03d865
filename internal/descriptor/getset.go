package descriptor

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// GetSetDescriptor implements the get/set/delete triple for a
// computed attribute.
type GetSetDescriptor struct {
	Name   string
	Owner  *types.Type
	Doc    string
	Getter func(self object.Value) (object.Value, *exc.Exception)
	Setter func(self object.Value, v object.Value) *exc.Exception
	Deleter func(self object.Value) *exc.Exception
}

func (d *GetSetDescriptor) Get(owner *types.Type, instance object.Value) (object.Value, *exc.Exception) {
	if object.IsNone(instance) {
		return d, nil
	}
	if d.Getter == nil {
		return nil, exc.New(exc.AttributeErrorKind, "unreadable attribute %q", d.Name)
	}
	return d.Getter(instance)
}

func (d *GetSetDescriptor) Set(instance object.Value, v object.Value) *exc.Exception {
	if d.Setter == nil {
		return exc.New(exc.AttributeErrorKind, "can't set attribute %q", d.Name)
	}
	return d.Setter(instance, v)
}

// Delete raises AttributeError when the underlying storage disallows
// deletion.
func (d *GetSetDescriptor) Delete(instance object.Value) *exc.Exception {
	if d.Deleter == nil {
		return exc.New(exc.AttributeErrorKind, "can't delete attribute %q", d.Name)
	}
	return d.Deleter(instance)
}

// MemberDescriptor reflects a native struct field. Delete on a plain member sets the field back
// to None; on an Optional member it instead marks the slot empty so a
// subsequent Get raises AttributeError.
type MemberDescriptor struct {
	Name     string
	Owner    *types.Type
	Doc      string
	ReadOnly bool
	Optional bool

	get func(self object.Value) object.Value
	set func(self object.Value, v object.Value)
	// empty reports, and clear marks, the Optional "no value" slot.
	// Both are nil for a non-Optional member.
	empty func(self object.Value) bool
	clear func(self object.Value)
}

// NewMemberDescriptor builds a non-optional member descriptor backed
// by plain get/set accessors into the native field.
func NewMemberDescriptor(name string, owner *types.Type, readOnly bool, get func(object.Value) object.Value, set func(object.Value, object.Value)) *MemberDescriptor {
	return &MemberDescriptor{Name: name, Owner: owner, ReadOnly: readOnly, get: get, set: set}
}

// NewOptionalMemberDescriptor builds an Optional member descriptor:
// empty/clear back the "deleted" semantics.
func NewOptionalMemberDescriptor(name string, owner *types.Type, readOnly bool, get func(object.Value) object.Value, set func(object.Value, object.Value), empty func(object.Value) bool, clear func(object.Value)) *MemberDescriptor {
	return &MemberDescriptor{Name: name, Owner: owner, ReadOnly: readOnly, Optional: true, get: get, set: set, empty: empty, clear: clear}
}

func (d *MemberDescriptor) Get(owner *types.Type, instance object.Value) (object.Value, *exc.Exception) {
	if object.IsNone(instance) {
		return d, nil
	}
	if d.Optional && d.empty != nil && d.empty(instance) {
		return nil, exc.New(exc.AttributeErrorKind, "%q", d.Name)
	}
	return d.get(instance), nil
}

func (d *MemberDescriptor) Set(instance object.Value, v object.Value) *exc.Exception {
	if d.ReadOnly {
		return exc.New(exc.AttributeErrorKind, "readonly attribute %q", d.Name)
	}
	d.set(instance, v)
	return nil
}

func (d *MemberDescriptor) Delete(instance object.Value) *exc.Exception {
	if d.ReadOnly {
		return exc.New(exc.AttributeErrorKind, "readonly attribute %q", d.Name)
	}
	if d.Optional {
		if d.clear == nil {
			return exc.New(exc.InterpreterError, "member %q declared Optional without a clear function", d.Name)
		}
		d.clear(instance)
		return nil
	}
	// A plain member's "delete" is "set to None".
	d.set(instance, object.None)
	return nil
}
