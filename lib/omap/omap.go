package omap

// --------------------------------------------------------------------------
// Ordered Identity Map
// --------------------------------------------------------------------------

// Map is an insertion-ordered mapping from a unique identity to an element.
// Iteration (Values, IDs, Range) always follows insertion order; replacing an
// element keeps its original position. Identity removal (Delete, DeleteFunc)
// preserves the order of the surviving elements.
//
// Thread-safety: Map is NOT thread-safe. It is designed to be exclusively
// owned by a single store instance that serializes all access (see mstore).
type Map[ID comparable, E any] struct {
	ids  []ID
	byID map[ID]E
}

// New creates an empty Map.
func New[ID comparable, E any]() *Map[ID, E] {
	return &Map[ID, E]{
		byID: make(map[ID]E),
	}
}

// --------------------------------------------------------------------------
// Query Operations
// --------------------------------------------------------------------------

// Load returns the element stored for the given identity.
// The boolean return value indicates whether the identity was found.
func (m *Map[ID, E]) Load(id ID) (E, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// Has returns whether an element is stored for the given identity.
func (m *Map[ID, E]) Has(id ID) bool {
	_, ok := m.byID[id]
	return ok
}

// Len returns the number of stored elements.
func (m *Map[ID, E]) Len() int {
	return len(m.ids)
}

// Values returns all elements in insertion order.
// The returned slice is a copy and safe to retain.
func (m *Map[ID, E]) Values() []E {
	values := make([]E, 0, len(m.ids))
	for _, id := range m.ids {
		values = append(values, m.byID[id])
	}
	return values
}

// IDs returns all identities in insertion order.
// The returned slice is a copy and safe to retain.
func (m *Map[ID, E]) IDs() []ID {
	ids := make([]ID, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Range calls fn for each identity/element pair in insertion order.
// Iteration stops early if fn returns false.
// The map must not be mutated during Range.
func (m *Map[ID, E]) Range(fn func(id ID, e E) bool) {
	for _, id := range m.ids {
		if !fn(id, m.byID[id]) {
			return
		}
	}
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

// Append inserts a new element under the given identity.
// It returns false (and leaves the map unchanged) if the identity is
// already present - the caller decides whether that is an error.
func (m *Map[ID, E]) Append(id ID, e E) bool {
	if _, ok := m.byID[id]; ok {
		return false
	}
	m.ids = append(m.ids, id)
	m.byID[id] = e
	return true
}

// Store inserts or replaces the element for the given identity.
// A replaced element keeps its original position in the iteration order;
// a new one is appended at the end.
func (m *Map[ID, E]) Store(id ID, e E) {
	if _, ok := m.byID[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.byID[id] = e
}

// Delete removes the element for the given identity.
// It returns whether an element was removed. Absent identities are a no-op.
func (m *Map[ID, E]) Delete(id ID) bool {
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)

	// linear scan is fine at the sizes a simulation store holds
	for i, known := range m.ids {
		if known == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return true
}

// DeleteFunc removes every element for which pred returns true and reports
// how many were removed. The order of the surviving elements is preserved.
func (m *Map[ID, E]) DeleteFunc(pred func(e E) bool) int {
	removed := 0
	survivors := m.ids[:0]
	for _, id := range m.ids {
		if pred(m.byID[id]) {
			delete(m.byID, id)
			removed++
			continue
		}
		survivors = append(survivors, id)
	}
	m.ids = survivors
	return removed
}

// Clear removes all elements.
func (m *Map[ID, E]) Clear() {
	m.ids = m.ids[:0]
	m.byID = make(map[ID]E)
}
