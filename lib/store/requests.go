package store

// --------------------------------------------------------------------------
// Conversion Capabilities
// --------------------------------------------------------------------------

// The four request interfaces decouple a store from the shape of the
// requests its callers use. A host application defines its own request
// types (e.g. "insert a task with this description", "fetch all completed
// tasks") and the store only ever sees the capability, never the concrete
// type. Requests are short-lived values carrying intent; they are never
// stored.

// InsertRequest turns a caller-defined request into a new element.
// Transform is pure and runs once per insert attempt, before the
// uniqueness check.
type InsertRequest[E any] interface {
	Transform() E
}

// FetchRequest projects the full ordered element set onto a subset.
// Fetch must be pure and order-preserving; it must not mutate all.
type FetchRequest[E any] interface {
	Fetch(all []E) []E
}

// FetchOneRequest selects at most one element from the full ordered set.
// The boolean return value indicates whether a match was found.
type FetchOneRequest[E any] interface {
	FetchOne(all []E) (E, bool)
}

// UpdateRequest mutates an element in place. Apply receives a copy of the
// stored element; the store writes the copy back only after Apply returns.
// Apply must not change the element's identity.
type UpdateRequest[E any] interface {
	Apply(element *E)
}

// --------------------------------------------------------------------------
// Built-in Request Adapters
// --------------------------------------------------------------------------

type fetchAll[E any] struct{}

func (fetchAll[E]) Fetch(all []E) []E { return all }

// FetchAll returns the identity projection: every element, in order.
func FetchAll[E any]() FetchRequest[E] {
	return fetchAll[E]{}
}

type fetchWhere[E any] struct {
	pred func(E) bool
}

func (f fetchWhere[E]) Fetch(all []E) []E {
	out := make([]E, 0, len(all))
	for _, e := range all {
		if f.pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// FetchWhere returns a projection keeping exactly the elements for which
// pred is true, in their original order.
func FetchWhere[E any](pred func(e E) bool) FetchRequest[E] {
	return fetchWhere[E]{pred: pred}
}

type fetchFirst[E any] struct{}

func (fetchFirst[E]) FetchOne(all []E) (E, bool) {
	if len(all) == 0 {
		var zero E
		return zero, false
	}
	return all[0], true
}

// FetchFirst selects the first element of the ordered set, if any.
func FetchFirst[E any]() FetchOneRequest[E] {
	return fetchFirst[E]{}
}

type fetchLast[E any] struct{}

func (fetchLast[E]) FetchOne(all []E) (E, bool) {
	if len(all) == 0 {
		var zero E
		return zero, false
	}
	return all[len(all)-1], true
}

// FetchLast selects the last element of the ordered set, if any.
func FetchLast[E any]() FetchOneRequest[E] {
	return fetchLast[E]{}
}

type fetchOneWhere[E any] struct {
	pred func(E) bool
}

func (f fetchOneWhere[E]) FetchOne(all []E) (E, bool) {
	for _, e := range all {
		if f.pred(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// FetchOneWhere selects the first element for which pred is true, if any.
func FetchOneWhere[E any](pred func(e E) bool) FetchOneRequest[E] {
	return fetchOneWhere[E]{pred: pred}
}

type insertFunc[E any] func() E

func (f insertFunc[E]) Transform() E { return f() }

// InsertOf adapts a plain constructor function into an InsertRequest.
func InsertOf[E any](fn func() E) InsertRequest[E] {
	return insertFunc[E](fn)
}

type updateFunc[E any] func(*E)

func (f updateFunc[E]) Apply(element *E) { f(element) }

// UpdateOf adapts a plain mutation function into an UpdateRequest.
func UpdateOf[E any](fn func(element *E)) UpdateRequest[E] {
	return updateFunc[E](fn)
}
