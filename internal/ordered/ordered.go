// Package ordered provides a generic key-value container that iterates in
// key insertion order.
package ordered

// A Map stores values under comparable keys, like a built-in map, but its
// Values method walks entries in the order the keys were first inserted.
// Setting an existing key replaces its value in place without moving it;
// deleting a key and setting it again counts as a fresh insertion at the
// end. It is backed by a doubly-linked list and a lookup map into that
// list.
//
// The zero Map is not usable; create one with New. A Map is not safe for
// concurrent use.
type Map[K comparable, V any] struct {
	lookup   map[K]*entry[K, V]
	oldest   *entry[K, V]
	youngest *entry[K, V]
}

type entry[K comparable, V any] struct {
	k       K
	v       V
	older   *entry[K, V]
	younger *entry[K, V]
}

// New creates and returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{lookup: make(map[K]*entry[K, V])}
}

// Set stores v under k and reports whether an existing entry was replaced.
// A replaced entry keeps its position; a new entry becomes the youngest.
func (m *Map[K, V]) Set(k K, v V) (replaced bool) {
	if e, ok := m.lookup[k]; ok {
		e.v = v
		return true
	}

	e := &entry[K, V]{k: k, v: v, older: m.youngest}
	if m.youngest != nil {
		m.youngest.younger = e
	} else {
		m.oldest = e
	}
	m.youngest = e
	m.lookup[k] = e

	return false
}

// Get returns the value stored under k. The second result is false when k
// is not present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e, ok := m.lookup[k]; ok {
		return e.v, true
	}

	var zero V
	return zero, false
}

// Delete removes the entry under k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	e, ok := m.lookup[k]
	if !ok {
		return false
	}

	if e.older != nil {
		e.older.younger = e.younger
	} else {
		m.oldest = e.younger
	}
	if e.younger != nil {
		e.younger.older = e.older
	} else {
		m.youngest = e.older
	}
	delete(m.lookup, k)

	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.lookup) }

// Values returns the stored values from oldest to youngest key. The slice
// is freshly allocated on every call.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.lookup))
	for e := m.oldest; e != nil; e = e.younger {
		out = append(out, e.v)
	}

	return out
}
