package object

import (
	"fmt"
	"hash/fnv"
	"testing"
)

func intHash(v Value) (uint64, error) {
	switch x := v.(type) {
	case int64:
		return uint64(x), nil
	case Str:
		h := fnv.New64a()
		h.Write([]byte(x))
		return h.Sum64(), nil
	default:
		return 0, fmt.Errorf("unhashable: %T", v)
	}
}
func intEq(a, b Value) bool { return a == b }

// insertion order is preserved across set/delete.
func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap(intHash, intEq)
	_ = m.Set(int64(2), Str("b"))
	_ = m.Set(int64(1), Str("a"))
	_ = m.Set(int64(3), Str("c"))

	it := NewIterator(m)
	var keys []Value
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	want := []Value{int64(2), int64(1), int64(3)}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestMapSetReplacesValueNotPosition(t *testing.T) {
	m := NewMap(intHash, intEq)
	_ = m.Set(int64(1), Str("a"))
	_ = m.Set(int64(2), Str("b"))
	_ = m.Set(int64(1), Str("a2"))

	v, ok, err := m.Get(int64(1))
	if err != nil || !ok || v != Str("a2") {
		t.Fatalf("Get(1) = %v, %v, %v; want a2, true, nil", v, ok, err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

// deleting through the iterator's remove
// removes the entry from the backing map.
func TestIteratorRemoveDeletesFromBackingMap(t *testing.T) {
	m := NewMap(intHash, intEq)
	_ = m.Set(int64(1), Str("a"))
	_ = m.Set(int64(2), Str("b"))

	it := NewIterator(m)
	_, _, _ = it.Next() // positions past key 1
	removed, err := it.Remove()
	if err != nil || !removed {
		t.Fatalf("Remove() = %v, %v; want true, nil", removed, err)
	}
	if _, ok, _ := m.Get(int64(1)); ok {
		t.Fatal("key 1 should have been removed from the backing map")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	// remaining iteration should still reach key 2 without skipping.
	k, _, ok := it.Next()
	if !ok || k != int64(2) {
		t.Fatalf("Next() after Remove = %v, %v; want 2, true", k, ok)
	}
}

func TestIteratorRemoveBeforeNextFails(t *testing.T) {
	m := NewMap(intHash, intEq)
	_ = m.Set(int64(1), Str("a"))
	it := NewIterator(m)
	if _, err := it.Remove(); err == nil {
		t.Fatal("Remove() before any Next() should fail")
	}
}

func TestMapDeleteMissingKeyIsNoop(t *testing.T) {
	m := NewMap(intHash, intEq)
	removed, err := m.Delete(int64(1))
	if err != nil || removed {
		t.Fatalf("Delete of missing key = %v, %v; want false, nil", removed, err)
	}
}
