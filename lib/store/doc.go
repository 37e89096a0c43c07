// Package store defines the contract surface of an identity-keyed
// simulation store: an in-memory stand-in for a remote backend used during
// testing and UI preview work. It provides the generic store interface,
// the conversion request capabilities, the simulated latency configuration
// and a unified, typed error vocabulary.
//
// The package focuses on:
//   - A unified interface (IStore) for identity-keyed CRUD plus streaming,
//     generic over both the element and the identity type, so one engine
//     serves arbitrary domain models
//   - Conversion capabilities (InsertRequest, FetchRequest, FetchOneRequest,
//     UpdateRequest): single-method contracts that translate a caller's
//     intent into store behavior without the store knowing the caller's
//     concrete request types, plus closure-based adapters for the common
//     cases (FetchAll, FetchWhere, FetchFirst, FetchLast, InsertOf, UpdateOf)
//   - DelayProfile: per-operation-category simulated latency with a single
//     cancellable Wait primitive, so host applications can exercise their
//     loading states and timeout handling against realistic round-trips
//   - Errors as data: *NotFoundError carries the full known identity set,
//     *ExistsError the conflicting identity, *IdentityChangedError the
//     before/after pair - enough context for a failing test to explain
//     itself without the store keeping a logging side channel
//   - Registry: a concurrent name-to-store map for sessions that juggle
//     several independent simulated backends
//
// Implementations:
//
//	The canonical implementation is the memory store in the
//	"github.com/ValentinKolb/stubDB/lib/store/mstore" package, which owns an
//	ordered identity map, serializes every operation through one exclusive
//	section and pays the simulated delay outside of it. Alternative
//	implementations can be validated against the shared conformance suite in
//	"github.com/ValentinKolb/stubDB/lib/store/testing".
//
// The store is a deterministic simulation primitive: failures are returned
// to the caller as typed errors, never retried and never logged.
package store
