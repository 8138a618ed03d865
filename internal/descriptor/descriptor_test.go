package descriptor

import (
	"testing"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

func echoHandle(self object.Value, args []object.Value, names []string) (object.Value, *exc.Exception) {
	return self, nil
}

func TestMethodDescriptorGetUnboundWhenInstanceIsNone(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle}
	v, exn := d.Get(nil, object.None)
	if exn != nil {
		t.Fatalf("Get: %v", exn)
	}
	if v != d {
		t.Fatal("Get(owner, None) should return the descriptor itself, unbound")
	}
}

func TestMethodDescriptorGetBindsInstance(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle}
	instance := object.Str("obj")
	v, exn := d.Get(nil, instance)
	if exn != nil {
		t.Fatalf("Get: %v", exn)
	}
	bm, ok := v.(*BoundMethod)
	if !ok {
		t.Fatalf("Get(owner, instance) = %T, want *BoundMethod", v)
	}
	if bm.Self != instance {
		t.Fatalf("BoundMethod.Self = %v, want %v", bm.Self, instance)
	}
}

func TestMethodDescriptorGetStaticNeverBinds(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle, Static: true}
	v, exn := d.Get(nil, object.Str("obj"))
	if exn != nil {
		t.Fatalf("Get: %v", exn)
	}
	if v != d {
		t.Fatal("a static method descriptor should never bind, even given a real instance")
	}
}

func TestMethodDescriptorGetClassMethodBindsOwner(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle, IsClassMethod: true}
	v, exn := d.Get(nil, object.Str("obj"))
	if exn != nil {
		t.Fatalf("Get: %v", exn)
	}
	bm := v.(*BoundMethod)
	if owner, ok := bm.Self.(*types.Type); !ok || owner != nil {
		t.Fatalf("classmethod should bind the owner type (nil in this test), got %v", bm.Self)
	}
}

func TestBoundMethodCallDelegatesWithSelf(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle}
	bm := &BoundMethod{Self: object.Str("recv"), Descriptor: d}
	v, exn := bm.Call(nil, nil)
	if exn != nil {
		t.Fatalf("Call: %v", exn)
	}
	if v != object.Str("recv") {
		t.Fatalf("Call() = %v, want recv", v)
	}
}

func TestMethodDescriptorCallUnboundTreatsFirstArgAsSelf(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle}
	v, exn := d.Call([]object.Value{object.Str("self-arg"), int64(1)}, nil)
	if exn != nil {
		t.Fatalf("Call: %v", exn)
	}
	if v != object.Str("self-arg") {
		t.Fatalf("Call() = %v, want self-arg", v)
	}
}

func TestMethodDescriptorCallUnboundWithNoArgsFails(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Handle: echoHandle}
	_, exn := d.Call(nil, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("Call() = %v, want a TypeError", exn)
	}
}

func TestMethodDescriptorCallStaticPassesNilSelf(t *testing.T) {
	d := &MethodDescriptor{Name: "m", Static: true, Handle: echoHandle}
	v, exn := d.Call([]object.Value{int64(1)}, nil)
	if exn != nil {
		t.Fatalf("Call: %v", exn)
	}
	if v != nil {
		t.Fatalf("Call() for a staticmethod = %v, want nil self echoed back", v)
	}
}
