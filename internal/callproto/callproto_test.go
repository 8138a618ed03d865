package callproto

import (
	"testing"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

type fastOnly struct{ calledWith []object.Value }

func (f *fastOnly) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	f.calledWith = args
	return object.Str("fastcall"), nil
}

type call0Capable struct{}

func (call0Capable) Call0() (object.Value, *exc.Exception) { return object.Str("call0"), nil }
func (call0Capable) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return object.Str("fallback"), nil
}

type call1Capable struct{}

func (call1Capable) Call1(a0 object.Value) (object.Value, *exc.Exception) { return a0, nil }
func (call1Capable) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return object.Str("fallback"), nil
}

type vectorcallCapable struct{ seen []object.Value }

func (v *vectorcallCapable) Call(args []object.Value, names []string) (object.Value, *exc.Exception) {
	return nil, exc.New(exc.InterpreterError, "Call should not be reached when Vectorcall is present")
}
func (v *vectorcallCapable) Vectorcall(stack []object.Value, sp, n int, names []string) (object.Value, *exc.Exception) {
	v.seen = append([]object.Value(nil), stack[sp:sp+n]...)
	return object.Str("vectorcalled"), nil
}

func TestInvokePrefersArityMatchedCallN(t *testing.T) {
	v, exn := Invoke(call0Capable{}, nil, nil)
	if exn != nil || v != object.Str("call0") {
		t.Fatalf("Invoke() = %v, %v; want call0, nil", v, exn)
	}
	v, exn = Invoke(call1Capable{}, []object.Value{int64(9)}, nil)
	if exn != nil || v != int64(9) {
		t.Fatalf("Invoke(9) = %v, %v; want 9, nil", v, exn)
	}
}

func TestInvokeSkipsCallNWhenNamesPresent(t *testing.T) {
	// call0Capable's Call0 only applies to a zero-arg, zero-name call;
	// with a keyword name present it must fall back to FastCall.Call.
	v, exn := Invoke(call0Capable{}, nil, []string{"k"})
	if exn != nil || v != object.Str("fallback") {
		t.Fatalf("Invoke() = %v, %v; want fallback, nil", v, exn)
	}
}

func TestInvokeFallsBackToFastCall(t *testing.T) {
	f := &fastOnly{}
	v, exn := Invoke(f, []object.Value{int64(1), int64(2)}, nil)
	if exn != nil || v != object.Str("fastcall") {
		t.Fatalf("Invoke() = %v, %v; want fastcall, nil", v, exn)
	}
	if len(f.calledWith) != 2 {
		t.Fatalf("FastCall.Call received %d args, want 2", len(f.calledWith))
	}
}

func TestInvokeOnNonCallableRaisesTypeError(t *testing.T) {
	_, exn := Invoke(int64(5), nil, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("Invoke(5) = %v, want a TypeError", exn)
	}
}

func TestVectorcallUsesVectorcallerWhenPresent(t *testing.T) {
	vc := &vectorcallCapable{}
	stack := []object.Value{int64(1), int64(2), int64(3)}
	v, exn := Vectorcall(vc, stack, 1, 2, nil)
	if exn != nil || v != object.Str("vectorcalled") {
		t.Fatalf("Vectorcall() = %v, %v; want vectorcalled, nil", v, exn)
	}
	if len(vc.seen) != 2 || vc.seen[0] != int64(2) || vc.seen[1] != int64(3) {
		t.Fatalf("Vectorcaller saw %v, want [2 3]", vc.seen)
	}
}

func TestVectorcallDefaultCopiesSliceAndDispatches(t *testing.T) {
	f := &fastOnly{}
	stack := []object.Value{int64(9), int64(1), int64(2)}
	v, exn := Vectorcall(f, stack, 1, 2, nil)
	if exn != nil || v != object.Str("fastcall") {
		t.Fatalf("Vectorcall() = %v, %v; want fastcall, nil", v, exn)
	}
	if len(f.calledWith) != 2 || f.calledWith[0] != int64(1) || f.calledWith[1] != int64(2) {
		t.Fatalf("default Vectorcall slice = %v, want [1 2]", f.calledWith)
	}
}
