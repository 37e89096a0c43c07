// Package testing provides a shared conformance suite for store
// implementations.
//
// Any implementation of the store.IStore interface can be validated by
// wiring a StoreFactory into RunStoreTests and RunStoreBenchmarks from a
// regular _test.go file:
//
//	func TestStore(t *testing.T) {
//		storetesting.RunStoreTests(t, "mstore", func(initial []storetesting.Item, profile *store.DelayProfile) store.IStore[string, storetesting.Item] {
//			return mstore.NewIdentified(initial, profile)
//		})
//	}
//
// The suite covers identity uniqueness, insertion-order preservation,
// conversion request handling, idempotent deletion, wholesale replacement,
// snapshot streaming, simulated delay timing and cancellation semantics,
// plus concurrent usage of a single store instance.
package testing
