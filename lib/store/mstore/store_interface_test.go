package mstore

import (
	"testing"

	"github.com/ValentinKolb/stubDB/lib/store"
	storetesting "github.com/ValentinKolb/stubDB/lib/store/testing"
)

func Test(t *testing.T) {
	storetesting.RunStoreTests(t, "MemoryStore", func(initial []storetesting.Item, profile *store.DelayProfile) store.IStore[string, storetesting.Item] {
		return NewIdentified(initial, profile)
	})
}

func Benchmark(b *testing.B) {
	storetesting.RunStoreBenchmarks(b, "MemoryStore", func(initial []storetesting.Item, profile *store.DelayProfile) store.IStore[string, storetesting.Item] {
		return NewIdentified(initial, profile)
	})
}
