package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/ValentinKolb/stubDB/lib/store"
)

// RunStoreBenchmarks runs all benchmarks for a store implementation.
// The stores are created without a delay profile so the benchmarks measure
// the engine, not the simulated latency.
func RunStoreBenchmarks(b *testing.B, name string, factory StoreFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Insert", func(b *testing.B) {
			benchmarkInsert(b, factory(nil, nil))
		})

		b.Run("Fetch", func(b *testing.B) {
			benchmarkFetch(b, factory(benchSeed(1000), nil))
		})

		b.Run("FetchOne", func(b *testing.B) {
			benchmarkFetchOne(b, factory(benchSeed(1000), nil))
		})

		b.Run("FetchWhere", func(b *testing.B) {
			benchmarkFetchWhere(b, factory(benchSeed(1000), nil))
		})

		b.Run("Update", func(b *testing.B) {
			benchmarkUpdate(b, factory(benchSeed(1000), nil))
		})

		b.Run("Stream", func(b *testing.B) {
			benchmarkStream(b, factory(benchSeed(100), nil))
		})

		b.Run("MixedUsage", func(b *testing.B) {
			benchmarkMixedUsage(b, factory(nil, nil))
		})
	})
}

// benchSeed creates n items with deterministic identities.
func benchSeed(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: fmt.Sprintf("item-%06d", i), Complete: i%2 == 0}
	}
	return items
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkInsert(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Insert(ctx, Item{ID: fmt.Sprintf("bench-%d", i)}); err != nil {
			b.Fatalf("insert failed: %v", err)
		}
	}
}

func benchmarkFetch(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Fetch(ctx); err != nil {
			b.Fatalf("fetch failed: %v", err)
		}
	}
}

func benchmarkFetchOne(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := fmt.Sprintf("item-%06d", i%1000)
		if _, ok, err := s.FetchOne(ctx, id); err != nil || !ok {
			b.Fatalf("fetch of %s failed: ok=%v err=%v", id, ok, err)
		}
	}
}

func benchmarkFetchWhere(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()
	req := store.FetchWhere(func(e Item) bool { return !e.Complete })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.FetchWith(ctx, req); err != nil {
			b.Fatalf("fetch failed: %v", err)
		}
	}
}

func benchmarkUpdate(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := fmt.Sprintf("item-%06d", i%1000)
		if _, err := s.UpdateWith(ctx, id, store.UpdateOf(func(e *Item) {
			e.Complete = !e.Complete
		})); err != nil {
			b.Fatalf("update of %s failed: %v", id, err)
		}
	}
}

func benchmarkStream(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for range s.Stream(ctx) {
			count++
		}
		if count != 100 {
			b.Fatalf("expected 100 streamed elements, got %d", count)
		}
	}
}

func benchmarkMixedUsage(b *testing.B, s store.IStore[string, Item]) {
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := fmt.Sprintf("mixed-%d", i)
		if _, err := s.Insert(ctx, Item{ID: id}); err != nil {
			b.Fatalf("insert failed: %v", err)
		}
		if _, ok, err := s.FetchOne(ctx, id); err != nil || !ok {
			b.Fatalf("fetch failed: ok=%v err=%v", ok, err)
		}
		if i%10 == 9 {
			if err := s.Delete(ctx, id); err != nil {
				b.Fatalf("delete failed: %v", err)
			}
		}
	}
}
