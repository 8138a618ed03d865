package vmod

import (
	"testing"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	v, exn := storeOpen([]object.Value{object.Str(":memory:")}, nil)
	if exn != nil {
		t.Fatalf("open: %v", exn)
	}
	return v.(*Store)
}

func TestStoreSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if _, exn := storeSet([]object.Value{s, object.Str("k"), object.Str("v")}, nil); exn != nil {
		t.Fatalf("set: %v", exn)
	}
	v, exn := storeGet([]object.Value{s, object.Str("k")}, nil)
	if exn != nil || v != object.Str("v") {
		t.Fatalf("get(k) = %v, %v; want v, nil", v, exn)
	}
}

func TestStoreSetOverwritesExistingKey(t *testing.T) {
	s := openTestStore(t)
	_, _ = storeSet([]object.Value{s, object.Str("k"), object.Str("first")}, nil)
	_, _ = storeSet([]object.Value{s, object.Str("k"), object.Str("second")}, nil)
	v, exn := storeGet([]object.Value{s, object.Str("k")}, nil)
	if exn != nil || v != object.Str("second") {
		t.Fatalf("get(k) after overwrite = %v, %v; want second, nil", v, exn)
	}
}

func TestStoreGetMissingKeyRaisesKeyError(t *testing.T) {
	s := openTestStore(t)
	_, exn := storeGet([]object.Value{s, object.Str("missing")}, nil)
	if exn == nil || exn.Kind() != exc.KeyErrorKind {
		t.Fatalf("get(missing) = %v, want KeyError", exn)
	}
}

func TestStoreSetNoneStoresSQLNull(t *testing.T) {
	s := openTestStore(t)
	if _, exn := storeSet([]object.Value{s, object.Str("k"), object.None}, nil); exn != nil {
		t.Fatalf("set(k, None): %v", exn)
	}
	v, exn := storeGet([]object.Value{s, object.Str("k")}, nil)
	if exn != nil || v != object.None {
		t.Fatalf("get(k) after set(None) = %v, %v; want None, nil", v, exn)
	}
}

func TestStoreDeleteRemovesKey(t *testing.T) {
	s := openTestStore(t)
	_, _ = storeSet([]object.Value{s, object.Str("k"), object.Str("v")}, nil)
	if _, exn := storeDelete([]object.Value{s, object.Str("k")}, nil); exn != nil {
		t.Fatalf("delete: %v", exn)
	}
	if _, exn := storeGet([]object.Value{s, object.Str("k")}, nil); exn == nil || exn.Kind() != exc.KeyErrorKind {
		t.Fatalf("get after delete = %v, want KeyError", exn)
	}
}

func TestStoreDeleteMissingKeyRaisesKeyError(t *testing.T) {
	s := openTestStore(t)
	_, exn := storeDelete([]object.Value{s, object.Str("missing")}, nil)
	if exn == nil || exn.Kind() != exc.KeyErrorKind {
		t.Fatalf("delete(missing) = %v, want KeyError", exn)
	}
}

func TestStoreSetRejectsNonStringValue(t *testing.T) {
	s := openTestStore(t)
	_, exn := storeSet([]object.Value{s, object.Str("k"), int64(5)}, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("set(k, 5) = %v, want TypeError", exn)
	}
}

func TestStoreCloseThenOperationFails(t *testing.T) {
	s := openTestStore(t)
	if _, exn := storeClose([]object.Value{s}, nil); exn != nil {
		t.Fatalf("close: %v", exn)
	}
	if _, exn := storeGet([]object.Value{s, object.Str("k")}, nil); exn == nil {
		t.Fatal("get() after close should fail")
	}
}

func TestStoreOpenRejectsNonStringPath(t *testing.T) {
	_, exn := storeOpen([]object.Value{int64(1)}, nil)
	if exn == nil || exn.Kind() != exc.TypeErrorKind {
		t.Fatalf("open(1) = %v, want TypeError", exn)
	}
}
