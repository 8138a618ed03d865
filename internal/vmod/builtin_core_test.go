package vmod

import (
	"testing"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

func TestBuiltinsMembersPopulatesCoreFunctions(t *testing.T) {
	got := map[string]bool{}
	err := BuiltinsMembers(func(name string, v object.Value) error {
		got[name] = true
		return nil
	})
	if err != nil {
		t.Fatalf("BuiltinsMembers: %v", err)
	}
	for _, want := range []string{"max", "min", "len", "repr"} {
		if !got[want] {
			t.Fatalf("BuiltinsMembers did not register %q", want)
		}
	}
}

func TestBuiltinMaxOfPositionalArgs(t *testing.T) {
	v, exn := builtinMax([]object.Value{int64(1), int64(5), int64(3)}, nil)
	if exn != nil || v != int64(5) {
		t.Fatalf("max(1,5,3) = %v, %v; want 5, nil", v, exn)
	}
}

func TestBuiltinMinOfPositionalArgs(t *testing.T) {
	v, exn := builtinMin([]object.Value{int64(1), int64(5), int64(3)}, nil)
	if exn != nil || v != int64(1) {
		t.Fatalf("min(1,5,3) = %v, %v; want 1, nil", v, exn)
	}
}

func TestBuiltinMaxDrainsSingleIterable(t *testing.T) {
	l := object.NewListFromSlice([]object.Value{int64(2), int64(9), int64(4)})
	v, exn := builtinMax([]object.Value{l}, nil)
	if exn != nil || v != int64(9) {
		t.Fatalf("max([2,9,4]) = %v, %v; want 9, nil", v, exn)
	}
}

func TestBuiltinMaxEmptyIterableWithoutDefaultRaisesValueError(t *testing.T) {
	l := object.NewListFromSlice(nil)
	_, exn := builtinMax([]object.Value{l}, nil)
	if exn == nil || exn.Kind() != exc.ValueErrorKind {
		t.Fatalf("max([]) = %v, want ValueError", exn)
	}
}

func TestBuiltinMaxEmptyIterableWithDefaultReturnsIt(t *testing.T) {
	l := object.NewListFromSlice(nil)
	v, exn := builtinMax([]object.Value{l, object.Str("fallback")}, []string{"default"})
	if exn != nil || v != object.Str("fallback") {
		t.Fatalf("max([], default=fallback) = %v, %v; want fallback, nil", v, exn)
	}
}

func TestBuiltinMaxRejectsUnknownKeyword(t *testing.T) {
	_, exn := builtinMax([]object.Value{int64(1), int64(2), int64(3)}, []string{"bogus"})
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("max(1,2,bogus=3) = %v, want TypeError", exn)
	}
}

func TestBuiltinMaxNoArgumentsRaisesTypeError(t *testing.T) {
	_, exn := builtinMax(nil, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("max() = %v, want TypeError", exn)
	}
}

func TestBuiltinLenOfString(t *testing.T) {
	v, exn := builtinLen([]object.Value{object.Str("hello")}, nil)
	if exn != nil || v != int64(5) {
		t.Fatalf("len(\"hello\") = %v, %v; want 5, nil", v, exn)
	}
}

func TestBuiltinLenRejectsWrongArity(t *testing.T) {
	_, exn := builtinLen(nil, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("len() = %v, want TypeError", exn)
	}
}

func TestBuiltinLenOnLenlessTypeRaisesTypeError(t *testing.T) {
	_, exn := builtinLen([]object.Value{int64(5)}, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("len(5) = %v, want TypeError", exn)
	}
}

func TestBuiltinReprOfString(t *testing.T) {
	v, exn := builtinRepr([]object.Value{object.Str("hi")}, nil)
	if exn != nil || v != object.Str(`"hi"`) {
		t.Fatalf("repr(\"hi\") = %v, %v; want \"hi\", nil", v, exn)
	}
}

func TestBuiltinReprRejectsWrongArity(t *testing.T) {
	_, exn := builtinRepr([]object.Value{int64(1), int64(2)}, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("repr(1, 2) = %v, want TypeError", exn)
	}
}
