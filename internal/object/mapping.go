package object

import "fmt"

// Map is the mutable mapping carrier backing the Language's `dict`.
// It preserves insertion order with a plain Go map plus a slice
// recording key order: this mapping is an ordinary mutable mapping,
// not a value the language treats as structurally shared.
type Map struct {
	index map[uint64]int // key hash -> index into order/keys, for O(1) membership
	keys  []Value
	vals  []Value
	hash  func(Value) (uint64, error)
	eq    func(a, b Value) bool
}

// NewMap builds an empty Map. hash and eq are supplied by the caller
// (internal/opdispatch) since hashing/equality of an arbitrary Value
// requires dispatching through the Operations table, which this
// package does not know about.
func NewMap(hash func(Value) (uint64, error), eq func(a, b Value) bool) *Map {
	return &Map{index: make(map[uint64]int), hash: hash, eq: eq}
}

func (m *Map) Len() int { return len(m.keys) }

func (m *Map) find(key Value) (int, error) {
	h, err := m.hash(key)
	if err != nil {
		return -1, err
	}
	i, ok := m.index[h]
	if !ok || !m.eq(m.keys[i], key) {
		return -1, nil
	}
	return i, nil
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key Value) (Value, bool, error) {
	i, err := m.find(key)
	if err != nil {
		return nil, false, err
	}
	if i < 0 {
		return nil, false, nil
	}
	return m.vals[i], true, nil
}

// Set inserts or replaces key's value, preserving the original
// insertion position on replace.
func (m *Map) Set(key, val Value) error {
	i, err := m.find(key)
	if err != nil {
		return err
	}
	if i >= 0 {
		m.vals[i] = val
		return nil
	}
	h, err := m.hash(key)
	if err != nil {
		return err
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	m.index[h] = len(m.keys) - 1
	return nil
}

// Delete removes key, compacting the order slices so iteration order
// for the remaining keys is unaffected. Returns whether key was
// present.
func (m *Map) Delete(key Value) (bool, error) {
	i, err := m.find(key)
	if err != nil {
		return false, err
	}
	if i < 0 {
		return false, nil
	}
	h, _ := m.hash(key)
	delete(m.index, h)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	// Every index recorded after the removed slot shifted down by one.
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
	return true, nil
}

func (m *Map) Inspect() string {
	out := "{"
	for i, k := range m.keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%v: %v", k, m.vals[i])
	}
	return out + "}"
}

// Iterator walks a Map in insertion order. Its Remove method deletes
// through to the backing map,
// which is why Iterator holds a pointer back to the Map rather than a
// private snapshot.
type Iterator struct {
	m   *Map
	pos int
}

// NewIterator returns an iterator positioned before the first entry.
func NewIterator(m *Map) *Iterator { return &Iterator{m: m} }

// Next returns the next (key, value) pair and advances the iterator;
// ok is false once exhausted.
func (it *Iterator) Next() (key, val Value, ok bool) {
	if it.pos >= len(it.m.keys) {
		return nil, nil, false
	}
	key, val = it.m.keys[it.pos], it.m.vals[it.pos]
	it.pos++
	return key, val, true
}

// Remove deletes the entry most recently returned by Next from the
// backing Map, adjusting the iterator's position so subsequent Next
// calls don't skip an entry.
func (it *Iterator) Remove() (bool, error) {
	if it.pos <= 0 {
		return false, fmt.Errorf("iterator: Remove called before Next")
	}
	key := it.m.keys[it.pos-1]
	removed, err := it.m.Delete(key)
	if err != nil {
		return false, err
	}
	if removed {
		it.pos--
	}
	return removed, nil
}
