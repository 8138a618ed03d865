package exc

import "testing"

func TestNewKeyErrorRetainsRawKeyAndQuotesStringInMessage(t *testing.T) {
	e := NewKeyError("missing")
	key, ok := e.Key()
	if !ok || key != "missing" {
		t.Fatalf("Key() = %v, %v; want missing, true", key, ok)
	}
	if got := e.Message(); got != `"missing"` {
		t.Fatalf("Message() = %q, want %q", got, `"missing"`)
	}
}

func TestNewKeyErrorNonStringKeyIsNotQuoted(t *testing.T) {
	e := NewKeyError(int64(5))
	if got := e.Message(); got != "5" {
		t.Fatalf("Message() = %q, want %q", got, "5")
	}
}

func TestKeyReturnsFalseForNonKeyError(t *testing.T) {
	e := New(IndexError, "out of range")
	if _, ok := e.Key(); ok {
		t.Fatal("Key() should report false on a non-KeyError exception")
	}
}

func TestKeyErrorDuplicateCarriesKeyAndFlag(t *testing.T) {
	e := KeyErrorDuplicate("dup")
	if !e.IsDuplicate() {
		t.Fatal("KeyErrorDuplicate should report IsDuplicate() == true")
	}
	key, ok := e.Key()
	if !ok || key != "dup" {
		t.Fatalf("Key() = %v, %v; want dup, true", key, ok)
	}
}

func TestIsDuplicateFalseForOrdinaryKeyError(t *testing.T) {
	e := NewKeyError("k")
	if e.IsDuplicate() {
		t.Fatal("a plain NewKeyError should not report IsDuplicate()")
	}
}
