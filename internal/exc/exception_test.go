package exc

import "testing"

func TestMessageFormatsLazilyAndCaches(t *testing.T) {
	e := New(ValueErrorKind, "bad value: %d", 7)
	if got := e.Message(); got != "bad value: 7" {
		t.Fatalf("Message() = %q, want %q", got, "bad value: 7")
	}
	// second call must return the cached result, not reformat.
	if got := e.Message(); got != "bad value: 7" {
		t.Fatalf("second Message() = %q, want %q", got, "bad value: 7")
	}
}

func TestErrorIncludesKindAndMessage(t *testing.T) {
	e := New(TypeErrorKind, "expected %s, got %s", "int", "str")
	want := "TypeError: expected int, got str"
	if got := e.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAttrRoundTrip(t *testing.T) {
	e := New(RuntimeError, "boom")
	if _, ok := e.Attr("missing"); ok {
		t.Fatal("Attr on an unset name should report false")
	}
	e.SetAttr("code", int64(3))
	v, ok := e.Attr("code")
	if !ok || v != int64(3) {
		t.Fatalf("Attr(code) = %v, %v; want 3, true", v, ok)
	}
}

func TestKindReportsConstructedKind(t *testing.T) {
	e := New(IndexError, "out of range")
	if e.Kind() != IndexError {
		t.Fatalf("Kind() = %v, want %v", e.Kind(), IndexError)
	}
}

func TestTypeChainsToBaseException(t *testing.T) {
	e := New(ZeroDivisionError, "division by zero")
	typ := e.Type()
	if typ == nil {
		t.Fatal("Type() should never be nil for a built-in kind")
	}
	found := false
	for _, anc := range typ.MRO {
		if anc.Name == string(BaseException) {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("ZeroDivisionError's MRO should chain up to BaseException")
	}
}

func TestVireTypeSatisfiesTypedEscapeHatch(t *testing.T) {
	a := New(KeyErrorKind, "missing")
	b := New(IndexError, "out of range")
	if a.VireType() == b.VireType() {
		t.Fatal("distinct exception kinds sharing *Exception must report distinct Types")
	}
}
