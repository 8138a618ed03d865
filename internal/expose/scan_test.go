package expose

import (
	"testing"

	"github.com/vire-lang/vire/internal/descriptor"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

type point struct {
	X int64
}

func TestBuildExposesMethodAndMember(t *testing.T) {
	spec := ClassSpec{
		Name: "Point",
		Methods: []MethodSpec{
			{
				Name: "get_x",
				Fn: func(self object.Value, slots []object.Value, varArgs *object.Tuple, varKwargs *object.Map) (object.Value, *exc.Exception) {
					return self.(*point).X, nil
				},
			},
		},
		Members: []MemberSpec{
			{Name: "x", FieldName: "X"},
		},
	}

	attrs, exception := Build(types.Object, spec, nil)
	if exception != nil {
		t.Fatalf("Build: %v", exception)
	}

	md, ok := attrs["get_x"].(*descriptor.MethodDescriptor)
	if !ok {
		t.Fatalf("get_x is %T, want *descriptor.MethodDescriptor", attrs["get_x"])
	}
	res, exception := md.Handle(&point{X: 5}, nil, nil)
	if exception != nil {
		t.Fatalf("Handle: %v", exception)
	}
	if res != int64(5) {
		t.Fatalf("get_x() = %v, want 5", res)
	}

	member, ok := attrs["x"].(*descriptor.MemberDescriptor)
	if !ok {
		t.Fatalf("x is %T, want *descriptor.MemberDescriptor", attrs["x"])
	}
	v, exception := member.Get(types.Object, &point{X: 7})
	if exception != nil {
		t.Fatalf("Get: %v", exception)
	}
	if v != int64(7) {
		t.Fatalf("x = %v, want 7", v)
	}
}

func TestBuildRejectsAmbiguousPrimary(t *testing.T) {
	spec := ClassSpec{
		Methods: []MethodSpec{
			{Name: "dup", Primary: true, Fn: noop},
			{Name: "dup", Primary: true, Fn: noop},
		},
	}
	_, exception := Build(types.Object, spec, nil)
	if exception == nil {
		t.Fatalf("expected an error for two primary declarations of the same name")
	}
}

func noop(self object.Value, slots []object.Value, varArgs *object.Tuple, varKwargs *object.Map) (object.Value, *exc.Exception) {
	return object.None, nil
}
