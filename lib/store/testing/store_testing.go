package testing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ValentinKolb/stubDB/lib/store"
)

// Item is the element type the conformance suite exercises stores with.
type Item struct {
	ID          string
	Description string
	Complete    bool
}

// Identity implements store.Identifiable.
func (i Item) Identity() string {
	return i.ID
}

// StoreFactory is a function that creates a new store instance seeded with
// the given elements and delay profile (nil profile means no delay).
type StoreFactory func(initial []Item, profile *store.DelayProfile) store.IStore[string, Item]

// RunStoreTests runs the conformance test suite for a store implementation.
func RunStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Insert&Fetch", func(t *testing.T) {
			testInsertFetch(t, factory)
		})

		t.Run("InsertDuplicate", func(t *testing.T) {
			testInsertDuplicate(t, factory)
		})

		t.Run("InsertWith", func(t *testing.T) {
			testInsertWith(t, factory)
		})

		t.Run("FetchOne", func(t *testing.T) {
			testFetchOne(t, factory)
		})

		t.Run("FetchOneWith", func(t *testing.T) {
			testFetchOneWith(t, factory)
		})

		t.Run("FetchWith", func(t *testing.T) {
			testFetchWith(t, factory)
		})

		t.Run("Update", func(t *testing.T) {
			testUpdate(t, factory)
		})

		t.Run("UpdateWith", func(t *testing.T) {
			testUpdateWith(t, factory)
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory)
		})

		t.Run("DeleteWhere", func(t *testing.T) {
			testDeleteWhere(t, factory)
		})

		t.Run("Set", func(t *testing.T) {
			testSet(t, factory)
		})

		t.Run("Stream", func(t *testing.T) {
			testStream(t, factory)
		})

		t.Run("StreamWith", func(t *testing.T) {
			testStreamWith(t, factory)
		})

		t.Run("WithValues", func(t *testing.T) {
			testWithValues(t, factory)
		})

		t.Run("DelayTiming", func(t *testing.T) {
			testDelayTiming(t, factory)
		})

		t.Run("CancelledRead", func(t *testing.T) {
			testCancelledRead(t, factory)
		})

		t.Run("CancelledWriteRetainsMutation", func(t *testing.T) {
			testCancelledWriteRetainsMutation(t, factory)
		})

		t.Run("CancelledStream", func(t *testing.T) {
			testCancelledStream(t, factory)
		})

		t.Run("ConcurrentUsage", func(t *testing.T) {
			testConcurrentUsage(t, factory)
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// seed returns the shared two-element starting snapshot.
func seed() []Item {
	return []Item{
		{ID: "a", Description: "Buy milk", Complete: true},
		{ID: "b", Description: "Walk dog", Complete: false},
	}
}

// assertIDs checks that the elements carry exactly the expected identities
// in the expected order.
func assertIDs(t *testing.T, elements []Item, want ...string) {
	t.Helper()

	if len(elements) != len(want) {
		t.Fatalf("Expected %d elements, got %d (%v)", len(want), len(elements), elements)
	}
	for i, id := range want {
		if elements[i].ID != id {
			t.Errorf("Expected element %d to be %q, got %q", i, id, elements[i].ID)
		}
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testInsertFetch(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(nil, nil)

	inserted, err := s.Insert(ctx, Item{ID: "a", Description: "Buy milk"})
	if err != nil {
		t.Fatalf("Expected insert to succeed, got %v", err)
	}
	if inserted.ID != "a" {
		t.Errorf("Expected inserted element to be returned, got %v", inserted)
	}

	if _, err := s.Insert(ctx, Item{ID: "b", Description: "Walk dog"}); err != nil {
		t.Fatalf("Expected insert to succeed, got %v", err)
	}

	all, err := s.Fetch(ctx)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	assertIDs(t, all, "a", "b")
}

func testInsertDuplicate(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	_, err := s.Insert(ctx, Item{ID: "a", Description: "Buy oat milk"})
	if err == nil {
		t.Fatalf("Expected duplicate insert to fail")
	}
	if !store.IsExists[string](err) {
		t.Errorf("Expected an exists error, got %v", err)
	}

	// the store must be unchanged after the rejected insert
	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "a", "b")
	if all[0].Description != "Buy milk" {
		t.Errorf("Expected rejected insert to leave element untouched, got %q", all[0].Description)
	}
}

func testInsertWith(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(nil, nil)

	inserted, err := s.InsertWith(ctx, store.InsertOf(func() Item {
		return Item{ID: "gen-1", Description: "Generated"}
	}))
	if err != nil {
		t.Fatalf("Expected insert request to succeed, got %v", err)
	}
	if inserted.ID != "gen-1" {
		t.Errorf("Expected generated element, got %v", inserted)
	}

	// the request runs again and produces the same identity, so the
	// uniqueness check has to reject it
	_, err = s.InsertWith(ctx, store.InsertOf(func() Item {
		return Item{ID: "gen-1"}
	}))
	if !store.IsExists[string](err) {
		t.Errorf("Expected an exists error, got %v", err)
	}
}

func testFetchOne(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	e, ok, err := s.FetchOne(ctx, "b")
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if !ok || e.Description != "Walk dog" {
		t.Errorf("Expected to find b, got ok=%v e=%v", ok, e)
	}

	_, ok, err = s.FetchOne(ctx, "missing")
	if err != nil {
		t.Fatalf("Expected fetch of absent identity to succeed, got %v", err)
	}
	if ok {
		t.Errorf("Expected absent identity to report ok=false")
	}
}

func testFetchOneWith(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	first, ok, err := s.FetchOneWith(ctx, store.FetchFirst[Item]())
	if err != nil || !ok || first.ID != "a" {
		t.Errorf("Expected first element a, got ok=%v e=%v err=%v", ok, first, err)
	}

	last, ok, err := s.FetchOneWith(ctx, store.FetchLast[Item]())
	if err != nil || !ok || last.ID != "b" {
		t.Errorf("Expected last element b, got ok=%v e=%v err=%v", ok, last, err)
	}

	incomplete, ok, err := s.FetchOneWith(ctx, store.FetchOneWhere(func(e Item) bool {
		return !e.Complete
	}))
	if err != nil || !ok || incomplete.ID != "b" {
		t.Errorf("Expected first incomplete element b, got ok=%v e=%v err=%v", ok, incomplete, err)
	}

	// empty store: First and Last must report ok=false, not panic
	empty := factory(nil, nil)
	if _, ok, _ := empty.FetchOneWith(ctx, store.FetchFirst[Item]()); ok {
		t.Errorf("Expected First on empty store to report ok=false")
	}
	if _, ok, _ := empty.FetchOneWith(ctx, store.FetchLast[Item]()); ok {
		t.Errorf("Expected Last on empty store to report ok=false")
	}
}

func testFetchWith(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	incomplete, err := s.FetchWith(ctx, store.FetchWhere(func(e Item) bool {
		return !e.Complete
	}))
	if err != nil {
		t.Fatalf("Expected filtered fetch to succeed, got %v", err)
	}
	assertIDs(t, incomplete, "b")

	complete, err := s.FetchWith(ctx, store.FetchWhere(func(e Item) bool {
		return e.Complete
	}))
	if err != nil {
		t.Fatalf("Expected filtered fetch to succeed, got %v", err)
	}
	assertIDs(t, complete, "a")

	all, err := s.FetchWith(ctx, store.FetchAll[Item]())
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	assertIDs(t, all, "a", "b")
}

func testUpdate(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	updated, err := s.Update(ctx, Item{ID: "a", Description: "Buy oat milk", Complete: false})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}
	if updated.Description != "Buy oat milk" {
		t.Errorf("Expected updated element to be returned, got %v", updated)
	}

	// updating must not change the element's position
	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "a", "b")
	if all[0].Description != "Buy oat milk" || all[0].Complete {
		t.Errorf("Expected update to replace the element, got %v", all[0])
	}

	_, err = s.Update(ctx, Item{ID: "missing"})
	if !store.IsNotFound[string](err) {
		t.Fatalf("Expected a not-found error, got %v", err)
	}
	var notFound *store.NotFoundError[string]
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected to unwrap the not-found error, got %v", err)
	}
	if len(notFound.KnownIDs) != 2 || notFound.KnownIDs[0] != "a" || notFound.KnownIDs[1] != "b" {
		t.Errorf("Expected known identities [a b], got %v", notFound.KnownIDs)
	}
}

func testUpdateWith(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	updated, err := s.UpdateWith(ctx, "b", store.UpdateOf(func(e *Item) {
		e.Complete = true
	}))
	if err != nil {
		t.Fatalf("Expected update request to succeed, got %v", err)
	}
	if !updated.Complete || updated.Description != "Walk dog" {
		t.Errorf("Expected only Complete to change, got %v", updated)
	}

	_, err = s.UpdateWith(ctx, "missing", store.UpdateOf(func(e *Item) {}))
	if !store.IsNotFound[string](err) {
		t.Errorf("Expected a not-found error, got %v", err)
	}

	// a request must not be able to move an element to a new identity
	_, err = s.UpdateWith(ctx, "a", store.UpdateOf(func(e *Item) {
		e.ID = "z"
	}))
	if !store.IsIdentityChanged[string](err) {
		t.Fatalf("Expected an identity-changed error, got %v", err)
	}
	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "a", "b")
}

func testDelete(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}
	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "b")

	// deleting an absent identity is a no-op, not an error
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("Expected repeated delete to succeed, got %v", err)
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Expected delete of unknown identity to succeed, got %v", err)
	}
}

func testDeleteWhere(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory([]Item{
		{ID: "a", Complete: true},
		{ID: "b", Complete: false},
		{ID: "c", Complete: true},
		{ID: "d", Complete: false},
	}, nil)

	if err := s.DeleteWhere(ctx, func(e Item) bool { return e.Complete }); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "b", "d")
}

func testSet(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	replacement := []Item{
		{ID: "x", Description: "New world"},
		{ID: "y", Description: "New order"},
		{ID: "z", Description: "New rules"},
	}
	returned, err := s.Set(ctx, replacement)
	if err != nil {
		t.Fatalf("Expected set to succeed, got %v", err)
	}
	assertIDs(t, returned, "x", "y", "z")

	all, _ := s.Fetch(ctx)
	assertIDs(t, all, "x", "y", "z")
}

func testStream(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	ch := s.Stream(ctx)

	// mutations after the call must not leak into the stream
	if _, err := s.Insert(ctx, Item{ID: "c"}); err != nil {
		t.Fatalf("Expected insert to succeed, got %v", err)
	}

	var got []Item
	for e := range ch {
		got = append(got, e)
	}
	assertIDs(t, got, "a", "b")
}

func testStreamWith(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory([]Item{
		{ID: "a", Complete: true},
		{ID: "b", Complete: false},
		{ID: "c", Complete: false},
	}, nil)

	var got []Item
	for e := range s.StreamWith(ctx, store.FetchWhere(func(e Item) bool {
		return !e.Complete
	})) {
		got = append(got, e)
	}
	assertIDs(t, got, "b", "c")
}

func testWithValues(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(seed(), nil)

	result, err := s.WithValues(ctx, func(values []Item) (any, error) {
		count := 0
		for _, e := range values {
			if !e.Complete {
				count++
			}
		}
		return count, nil
	})
	if err != nil {
		t.Fatalf("Expected computation to succeed, got %v", err)
	}
	if count, ok := result.(int); !ok || count != 1 {
		t.Errorf("Expected 1 incomplete element, got %v", result)
	}

	wantErr := fmt.Errorf("computation failed")
	_, err = s.WithValues(ctx, func(values []Item) (any, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("Expected the callback error to be returned verbatim, got %v", err)
	}
}

func testDelayTiming(t *testing.T, factory StoreFactory) {
	if testing.Short() {
		t.Skip()
	}

	ctx := context.Background()
	delay := 50 * time.Millisecond
	profile, err := store.NewDelayProfile(delay)
	if err != nil {
		t.Fatalf("Expected profile creation to succeed, got %v", err)
	}
	s := factory(seed(), profile)

	start := time.Now()
	if _, err := s.Fetch(ctx); err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Expected fetch to take at least %s, took %s", delay, elapsed)
	}

	start = time.Now()
	if _, err := s.Insert(ctx, Item{ID: "c"}); err != nil {
		t.Fatalf("Expected insert to succeed, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Expected insert to take at least %s, took %s", delay, elapsed)
	}
}

func testCancelledRead(t *testing.T, factory StoreFactory) {
	profile, err := store.NewDelayProfile(time.Minute)
	if err != nil {
		t.Fatalf("Expected profile creation to succeed, got %v", err)
	}
	s := factory(seed(), profile)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.Fetch(ctx); err == nil {
		t.Errorf("Expected cancelled fetch to fail")
	}
}

func testCancelledWriteRetainsMutation(t *testing.T, factory StoreFactory) {
	profile, err := store.NewDelayProfileFor(0, 0, time.Minute, 0)
	if err != nil {
		t.Fatalf("Expected profile creation to succeed, got %v", err)
	}
	s := factory(nil, profile)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.Insert(ctx, Item{ID: "a"}); err == nil {
		t.Fatalf("Expected cancelled insert to report an error")
	}

	// the mutation was applied before the delay, so it survives
	all, fetchErr := s.Fetch(context.Background())
	if fetchErr != nil {
		t.Fatalf("Expected fetch to succeed, got %v", fetchErr)
	}
	assertIDs(t, all, "a")
}

func testCancelledStream(t *testing.T, factory StoreFactory) {
	profile, err := store.NewDelayProfile(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("Expected profile creation to succeed, got %v", err)
	}

	initial := make([]Item, 100)
	for i := range initial {
		initial[i] = Item{ID: fmt.Sprintf("item-%03d", i)}
	}
	s := factory(initial, profile)

	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Stream(ctx)

	// consume a few elements, then walk away without draining
	for i := 0; i < 3; i++ {
		if _, ok := <-ch; !ok {
			t.Fatalf("Expected stream to deliver at least 3 elements")
		}
	}
	cancel()

	// the channel must close even though nobody drains the remainder
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("Stream channel did not close after cancellation")
		}
	}
}

func testConcurrentUsage(t *testing.T, factory StoreFactory) {
	ctx := context.Background()
	s := factory(nil, nil)

	numWorkers := 8
	perWorker := 50

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("w%d-%d", worker, i)
				if _, err := s.Insert(ctx, Item{ID: id}); err != nil {
					t.Errorf("Expected insert of %s to succeed, got %v", id, err)
					return
				}
				if _, ok, err := s.FetchOne(ctx, id); err != nil || !ok {
					t.Errorf("Expected to find %s after insert, got ok=%v err=%v", id, ok, err)
					return
				}
				if _, err := s.UpdateWith(ctx, id, store.UpdateOf(func(e *Item) {
					e.Complete = true
				})); err != nil {
					t.Errorf("Expected update of %s to succeed, got %v", id, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	all, err := s.Fetch(ctx)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if len(all) != numWorkers*perWorker {
		t.Errorf("Expected %d elements, got %d", numWorkers*perWorker, len(all))
	}
	for _, e := range all {
		if !e.Complete {
			t.Errorf("Expected all elements to be updated, %s is not", e.ID)
		}
	}
}

func testRealisticUsage(t *testing.T, factory StoreFactory) {
	ctx := context.Background()

	// a small todo list session: seed, filter, complete, re-check
	s := factory(seed(), nil)

	open, err := s.FetchWith(ctx, store.FetchWhere(func(e Item) bool {
		return !e.Complete
	}))
	if err != nil {
		t.Fatalf("Expected filtered fetch to succeed, got %v", err)
	}
	assertIDs(t, open, "b")

	if _, err := s.UpdateWith(ctx, "b", store.UpdateOf(func(e *Item) {
		e.Complete = true
	})); err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	open, err = s.FetchWith(ctx, store.FetchWhere(func(e Item) bool {
		return !e.Complete
	}))
	if err != nil {
		t.Fatalf("Expected filtered fetch to succeed, got %v", err)
	}
	if len(open) != 0 {
		t.Errorf("Expected no open items, got %v", open)
	}

	if _, err := s.Insert(ctx, Item{ID: "c", Description: "Water plants"}); err != nil {
		t.Fatalf("Expected insert to succeed, got %v", err)
	}
	if err := s.DeleteWhere(ctx, func(e Item) bool { return e.Complete }); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	all, err := s.Fetch(ctx)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	assertIDs(t, all, "c")
}
