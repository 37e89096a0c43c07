package mstore

import (
	"context"
	"sync"

	"github.com/ValentinKolb/stubDB/lib/omap"
	"github.com/ValentinKolb/stubDB/lib/store"
)

type storeImpl[ID comparable, E any] struct {
	mu       sync.Mutex
	elements *omap.Map[ID, E]
	identity func(E) ID
	profile  *store.DelayProfile
}

// New creates a memory store over the given initial elements. The identity
// function derives the unique identity from an element; the profile
// configures the simulated latency (nil means no delay).
//
// Duplicate identities in the initial snapshot are resolved like Set:
// the later element replaces the earlier one in place, no error is raised.
func New[ID comparable, E any](initial []E, identity func(E) ID, profile *store.DelayProfile) store.IStore[ID, E] {
	s := &storeImpl[ID, E]{
		elements: omap.New[ID, E](),
		identity: identity,
		profile:  profile,
	}
	for _, e := range initial {
		s.elements.Store(identity(e), e)
	}
	return s
}

// NewIdentified creates a memory store for element types that carry their
// own identity (see store.Identifiable).
func NewIdentified[ID comparable, E store.Identifiable[ID]](initial []E, profile *store.DelayProfile) store.IStore[ID, E] {
	return New(initial, func(e E) ID { return e.Identity() }, profile)
}

// wait pays the simulated delay for op and records it in the metrics.
func (s *storeImpl[ID, E]) wait(ctx context.Context, op store.Operation) error {
	return timeDelay(func() error {
		return s.profile.Wait(ctx, op)
	})
}

// snapshot returns an ordered copy of the current contents.
func (s *storeImpl[ID, E]) snapshot() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elements.Values()
}

// --------------------------------------------------------------------------
// Interface Methods - Write Operations (docu see store/interface.go)
// --------------------------------------------------------------------------

// Note on ordering: every mutation completes inside the exclusive section
// BEFORE the simulated delay is paid. Cancelling the delay therefore fails
// the caller, but the mutation is retained - the simulated backend "already
// processed the request" when the caller gave up. This mirrors how a real
// remote backend behaves when a client times out.

func (s *storeImpl[ID, E]) Delete(ctx context.Context, id ID) error {
	countOp(store.OpDelete)

	s.mu.Lock()
	s.elements.Delete(id)
	s.mu.Unlock()

	return s.wait(ctx, store.OpDelete)
}

func (s *storeImpl[ID, E]) DeleteWhere(ctx context.Context, pred func(e E) bool) error {
	countOp(store.OpDelete)

	s.mu.Lock()
	s.elements.DeleteFunc(pred)
	s.mu.Unlock()

	return s.wait(ctx, store.OpDelete)
}

func (s *storeImpl[ID, E]) Insert(ctx context.Context, element E) (E, error) {
	return s.insert(ctx, element)
}

func (s *storeImpl[ID, E]) InsertWith(ctx context.Context, req store.InsertRequest[E]) (E, error) {
	// the transformation runs before the uniqueness check
	return s.insert(ctx, req.Transform())
}

// insert is the shared check-then-insert step behind Insert and InsertWith.
// The existence check and the append are one atomic section.
func (s *storeImpl[ID, E]) insert(ctx context.Context, element E) (E, error) {
	countOp(store.OpInsert)
	id := s.identity(element)

	s.mu.Lock()
	if !s.elements.Append(id, element) {
		s.mu.Unlock()
		countErr()
		var zero E
		return zero, &store.ExistsError[ID]{ID: id}
	}
	s.mu.Unlock()

	if err := s.wait(ctx, store.OpInsert); err != nil {
		return element, err
	}
	return element, nil
}

func (s *storeImpl[ID, E]) Set(_ context.Context, elements []E) ([]E, error) {
	countOp(store.OpInsert)

	s.mu.Lock()
	s.elements.Clear()
	for _, e := range elements {
		s.elements.Store(s.identity(e), e)
	}
	s.mu.Unlock()

	return elements, nil
}

func (s *storeImpl[ID, E]) Update(ctx context.Context, element E) (E, error) {
	countOp(store.OpUpdate)
	id := s.identity(element)

	s.mu.Lock()
	if !s.elements.Has(id) {
		known := s.elements.IDs()
		s.mu.Unlock()
		countErr()
		var zero E
		return zero, &store.NotFoundError[ID]{ID: id, KnownIDs: known}
	}
	s.elements.Store(id, element)
	s.mu.Unlock()

	if err := s.wait(ctx, store.OpUpdate); err != nil {
		return element, err
	}
	return element, nil
}

func (s *storeImpl[ID, E]) UpdateWith(ctx context.Context, id ID, req store.UpdateRequest[E]) (E, error) {
	countOp(store.OpUpdate)
	var zero E

	s.mu.Lock()
	current, ok := s.elements.Load(id)
	if !ok {
		known := s.elements.IDs()
		s.mu.Unlock()
		countErr()
		return zero, &store.NotFoundError[ID]{ID: id, KnownIDs: known}
	}

	// the request mutates a copy; only a valid copy is written back
	updated := current
	req.Apply(&updated)
	if newID := s.identity(updated); newID != id {
		s.mu.Unlock()
		countErr()
		return zero, &store.IdentityChangedError[ID]{From: id, To: newID}
	}
	s.elements.Store(id, updated)
	s.mu.Unlock()

	if err := s.wait(ctx, store.OpUpdate); err != nil {
		return updated, err
	}
	return updated, nil
}

// --------------------------------------------------------------------------
// Interface Methods - Read Operations (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl[ID, E]) Fetch(ctx context.Context) ([]E, error) {
	countOp(store.OpFetch)

	if err := s.wait(ctx, store.OpFetch); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

func (s *storeImpl[ID, E]) FetchWith(ctx context.Context, req store.FetchRequest[E]) ([]E, error) {
	countOp(store.OpFetch)

	if err := s.wait(ctx, store.OpFetch); err != nil {
		return nil, err
	}
	return req.Fetch(s.snapshot()), nil
}

func (s *storeImpl[ID, E]) FetchOne(ctx context.Context, id ID) (E, bool, error) {
	countOp(store.OpFetch)
	var zero E

	if err := s.wait(ctx, store.OpFetch); err != nil {
		return zero, false, err
	}

	s.mu.Lock()
	e, ok := s.elements.Load(id)
	s.mu.Unlock()
	return e, ok, nil
}

func (s *storeImpl[ID, E]) FetchOneWith(ctx context.Context, req store.FetchOneRequest[E]) (E, bool, error) {
	countOp(store.OpFetch)
	var zero E

	if err := s.wait(ctx, store.OpFetch); err != nil {
		return zero, false, err
	}
	e, ok := req.FetchOne(s.snapshot())
	return e, ok, nil
}

func (s *storeImpl[ID, E]) WithValues(_ context.Context, fn func(values []E) (any, error)) (any, error) {
	// escape hatch: the callback sees a snapshot outside the exclusive
	// section, so it can never mutate the store or block other callers
	return fn(s.snapshot())
}
