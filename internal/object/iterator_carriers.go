package object

// SeqIterator iterates a fixed snapshot of values, backing the
// Operations.Iter handle of both Tuple and List`, and the general "sequences are iterable" rule §4.1
// implies but never states as a standalone carrier).
type SeqIterator struct {
	vals []Value
	pos  int
}

// NewSeqIterator wraps vals for sequential consumption. The caller
// passes a defensive copy when the source is mutable (List.Items
// returns the backing slice, so the list's Iter handle copies it).
func NewSeqIterator(vals []Value) *SeqIterator { return &SeqIterator{vals: vals} }

// Next returns the next value and true, or (nil, false) once
// exhausted.
func (it *SeqIterator) Next() (Value, bool) {
	if it.pos >= len(it.vals) {
		return nil, false
	}
	v := it.vals[it.pos]
	it.pos++
	return v, true
}

// MapPairIterator adapts Iterator to yield (key, value) pairs as
// Tuples and (\"b\",2) ... in insertion order").
type MapPairIterator struct {
	it *Iterator
}

// NewMapPairIterator builds a pair iterator over m.
func NewMapPairIterator(m *Map) *MapPairIterator { return &MapPairIterator{it: NewIterator(m)} }

// Next returns the next (key, value) Tuple and true, or (nil, false)
// once exhausted.
func (it *MapPairIterator) Next() (*Tuple, bool) {
	k, v, ok := it.it.Next()
	if !ok {
		return nil, false
	}
	return NewTuple(k, v), true
}

// Remove deletes the pair most recently returned by Next from the
// backing Map.
func (it *MapPairIterator) Remove() (bool, error) { return it.it.Remove() }
