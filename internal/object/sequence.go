package object

import "fmt"

// Tuple is the immutable fixed-length sequence carrier. Unlike List it
// has no growth path: construction fixes its length for the tuple's
// lifetime.
type Tuple struct {
	items []Value
}

// NewTuple adopts items as a Tuple's backing storage without copying;
// callers that don't own items exclusively should pass a copy.
func NewTuple(items ...Value) *Tuple { return &Tuple{items: items} }

func (t *Tuple) Len() int          { return len(t.items) }
func (t *Tuple) At(i int) Value    { return t.items[i] }
func (t *Tuple) Items() []Value    { return t.items }

func (t *Tuple) Inspect() string {
	out := "("
	for i, v := range t.items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(v)
	}
	if len(t.items) == 1 {
		out += ","
	}
	return out + ")"
}

// List is the mutable growable sequence carrier. The open question in
// the richer of two historical constructor shapes is
// resolved here by giving List both a capacity constructor and a
// slice constructor, plus __eq__ and __setitem__ from day one rather
// than as a later patch.
type List struct {
	items []Value
}

// NewList builds an empty list with the given initial capacity.
func NewList(capacity int) *List {
	return &List{items: make([]Value, 0, capacity)}
}

// NewListFromSlice adopts s as a List's backing storage without
// copying; the richer of the two historical constructors
// implementers to keep.
func NewListFromSlice(s []Value) *List {
	return &List{items: s}
}

func (l *List) Len() int       { return len(l.items) }
func (l *List) At(i int) Value { return l.items[i] }

// SetItem implements the setitem Operations slot for List: it bounds-
// checks and replaces the element at i.
func (l *List) SetItem(i int, v Value) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("list assignment index out of range")
	}
	l.items[i] = v
	return nil
}

// Append grows the list by one element, amortising the way append()
// does on the underlying Go slice.
func (l *List) Append(v Value) { l.items = append(l.items, v) }

// Items returns the list's backing slice. Callers must not retain it
// across a mutation of l.
func (l *List) Items() []Value { return l.items }

func (l *List) Inspect() string {
	out := "["
	for i, v := range l.items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(v)
	}
	return out + "]"
}

// Eq implements the richer __eq__ List carries:
// element-wise comparison using a caller-supplied equality predicate
// (Values here have no single canonical equals; opdispatch supplies
// one that understands every carrier, including nested containers).
func (l *List) Eq(other *List, eq func(a, b Value) bool) bool {
	if l.Len() != other.Len() {
		return false
	}
	for i := range l.items {
		if !eq(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Bytes is the immutable byte-sequence carrier.
type Bytes struct {
	b []byte
}

// NewBytes adopts b as a Bytes carrier's backing storage without
// copying.
func NewBytes(b []byte) *Bytes { return &Bytes{b: b} }

// NewBytesFromInts builds a Bytes carrier from a slice of 0..255
// integer values, truncating each to a byte (the Language-level
// constructor rejects out-of-range values before reaching here;
// truncation documents the wire-level behaviour of the carrier
// itself).
func NewBytesFromInts(vals []int64) *Bytes {
	b := make([]byte, len(vals))
	for i, v := range vals {
		b[i] = byte(v)
	}
	return &Bytes{b: b}
}

func (b *Bytes) Len() int      { return len(b.b) }
func (b *Bytes) Raw() []byte   { return b.b }
func (b *Bytes) At(i int) int64 { return int64(b.b[i]) }

// Concat implements the add Operations slot: bytes + bytes.
func (b *Bytes) Concat(other *Bytes) *Bytes {
	out := make([]byte, 0, len(b.b)+len(other.b))
	out = append(out, b.b...)
	out = append(out, other.b...)
	return &Bytes{b: out}
}

// Repeat implements the mul Operations slot: bytes * n.
func (b *Bytes) Repeat(n int) *Bytes {
	if n <= 0 {
		return &Bytes{b: nil}
	}
	out := make([]byte, 0, len(b.b)*n)
	for i := 0; i < n; i++ {
		out = append(out, b.b...)
	}
	return &Bytes{b: out}
}

func (b *Bytes) Inspect() string { return fmt.Sprintf("b%q", string(b.b)) }
