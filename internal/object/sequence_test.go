package object

import "testing"

func TestListSetItemBoundsChecks(t *testing.T) {
	l := NewListFromSlice([]Value{int64(1), int64(2), int64(3)})
	if err := l.SetItem(1, int64(9)); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if l.At(1) != int64(9) {
		t.Fatalf("At(1) = %v, want 9", l.At(1))
	}
	if err := l.SetItem(5, int64(0)); err == nil {
		t.Fatal("SetItem(5, ...) should fail on an out-of-range index")
	}
}

func TestListAppendGrows(t *testing.T) {
	l := NewList(0)
	l.Append(int64(1))
	l.Append(int64(2))
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
}

func TestListEqIsElementwise(t *testing.T) {
	a := NewListFromSlice([]Value{int64(1), int64(2)})
	b := NewListFromSlice([]Value{int64(1), int64(2)})
	c := NewListFromSlice([]Value{int64(1), int64(3)})
	eq := func(x, y Value) bool { return x == y }
	if !a.Eq(b, eq) {
		t.Fatal("equal-content lists compared unequal")
	}
	if a.Eq(c, eq) {
		t.Fatal("different-content lists compared equal")
	}
}

// bytes concatenation, repetition, indexing.
func TestBytesConcatAndRepeat(t *testing.T) {
	a := NewBytes([]byte{1, 2})
	b := NewBytes([]byte{3, 4})
	cat := a.Concat(b)
	if cat.Len() != 4 || cat.At(0) != 1 || cat.At(3) != 4 {
		t.Fatalf("Concat result wrong: %v", cat.Raw())
	}
	rep := a.Repeat(3)
	if rep.Len() != 6 {
		t.Fatalf("Repeat(3) len = %d, want 6", rep.Len())
	}
	if rep.Repeat(0).Len() != 0 {
		t.Fatal("Repeat(0) should be empty")
	}
}

func TestNewBytesFromIntsTruncates(t *testing.T) {
	b := NewBytesFromInts([]int64{65, 256 + 66})
	if b.At(0) != 65 {
		t.Fatalf("At(0) = %d, want 65", b.At(0))
	}
	if b.At(1) != 66 {
		t.Fatalf("At(1) = %d, want 66 (truncated)", b.At(1))
	}
}

func TestTupleIsFixedLength(t *testing.T) {
	tup := NewTuple(int64(1), int64(2), int64(3))
	if tup.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tup.Len())
	}
	if tup.At(1) != int64(2) {
		t.Fatalf("At(1) = %v, want 2", tup.At(1))
	}
}
