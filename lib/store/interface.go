package store

import (
	"context"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Identifiable can be implemented by element types that carry their own
// identity. Stores over such types can derive the identity function
// automatically (see mstore.NewIdentified).
type Identifiable[ID comparable] interface {
	// Identity returns the unique identity of the element.
	Identity() ID
}

// IStore is the generic interface for an identity-keyed simulation store.
// An implementation owns an ordered set of elements with unique identities,
// serializes all access, and applies the simulated latency of its
// DelayProfile per operation category.
//
// All operations take a context; the simulated delay is the only suspension
// point and is cancellable through it. For write operations the mutation is
// applied BEFORE the delay, so cancelling the delay fails the caller but
// does not roll the mutation back (see mstore for details).
type IStore[ID comparable, E any] interface {
	// Delete removes the element with the given identity and then applies
	// the delete delay. Deleting an absent identity is not an error.
	Delete(ctx context.Context, id ID) error

	// DeleteWhere removes every element for which pred returns true,
	// preserving the order of the survivors, and applies the delete delay.
	DeleteWhere(ctx context.Context, pred func(e E) bool) error

	// Insert appends a new element and returns the stored value after the
	// insert delay. It fails with *ExistsError if the identity is already
	// present; the check and the append are a single atomic step.
	Insert(ctx context.Context, element E) (E, error)

	// InsertWith transforms the request into an element and inserts it
	// exactly like Insert. The transformation runs before the uniqueness
	// check.
	InsertWith(ctx context.Context, req InsertRequest[E]) (E, error)

	// Fetch applies the fetch delay and returns all elements in insertion
	// order. The returned slice is a snapshot and safe to retain.
	Fetch(ctx context.Context) ([]E, error)

	// FetchWith applies the fetch delay and returns the request's
	// order-preserving projection of the current snapshot.
	FetchWith(ctx context.Context, req FetchRequest[E]) ([]E, error)

	// FetchOne applies the fetch delay and returns the element for the
	// given identity. The boolean indicates whether it was found.
	FetchOne(ctx context.Context, id ID) (E, bool, error)

	// FetchOneWith applies the fetch delay and evaluates the request
	// against the current snapshot.
	FetchOneWith(ctx context.Context, req FetchOneRequest[E]) (E, bool, error)

	// Set replaces the store's contents wholesale with the given elements
	// and returns them. No delay is applied and no existence checks are
	// performed - Set is meant for test setup and reset.
	Set(ctx context.Context, elements []E) ([]E, error)

	// Stream asynchronously yields every element present at call time, in
	// order, applying the fetch delay before each element, then closes the
	// channel. The stream is not live: mutations after the call are not
	// reflected. Cancelling the context closes the channel early.
	Stream(ctx context.Context) <-chan E

	// StreamWith computes the request's projection of the call-time
	// snapshot (paying one fetch delay for the projection) and then yields
	// each element with an additional per-element fetch delay.
	StreamWith(ctx context.Context, req FetchRequest[E]) <-chan E

	// Update replaces the element with the same identity wholesale,
	// applies the update delay and returns the new value. It fails with
	// *NotFoundError (carrying all known identities) if the identity is
	// absent.
	Update(ctx context.Context, element E) (E, error)

	// UpdateWith loads the element for the given identity, applies the
	// request's mutation to a copy, writes the copy back and returns it
	// after the update delay. It fails with *NotFoundError if the identity
	// is absent and with *IdentityChangedError if the mutation altered the
	// identity.
	UpdateWith(ctx context.Context, id ID, req UpdateRequest[E]) (E, error)

	// WithValues hands an ordered read-only snapshot to fn and returns its
	// result. A failure of fn propagates unmodified; the store is never
	// mutated and no delay is applied.
	WithValues(ctx context.Context, fn func(values []E) (any, error)) (any, error)
}
