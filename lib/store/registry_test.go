package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

// nopStore is a minimal IStore used to populate the registry in tests
type nopStore struct{}

func (nopStore) Delete(context.Context, string) error                   { return nil }
func (nopStore) DeleteWhere(context.Context, func(e int) bool) error    { return nil }
func (nopStore) Insert(context.Context, int) (int, error)               { return 0, nil }
func (nopStore) InsertWith(context.Context, InsertRequest[int]) (int, error) {
	return 0, nil
}
func (nopStore) Fetch(context.Context) ([]int, error) { return nil, nil }
func (nopStore) FetchWith(context.Context, FetchRequest[int]) ([]int, error) {
	return nil, nil
}
func (nopStore) FetchOne(context.Context, string) (int, bool, error) { return 0, false, nil }
func (nopStore) FetchOneWith(context.Context, FetchOneRequest[int]) (int, bool, error) {
	return 0, false, nil
}
func (nopStore) Set(context.Context, []int) ([]int, error) { return nil, nil }
func (nopStore) Stream(context.Context) <-chan int {
	ch := make(chan int)
	close(ch)
	return ch
}
func (nopStore) StreamWith(context.Context, FetchRequest[int]) <-chan int {
	ch := make(chan int)
	close(ch)
	return ch
}
func (nopStore) Update(context.Context, int) (int, error) { return 0, nil }
func (nopStore) UpdateWith(context.Context, string, UpdateRequest[int]) (int, error) {
	return 0, nil
}
func (nopStore) WithValues(context.Context, func(values []int) (any, error)) (any, error) {
	return nil, nil
}

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry[string, int]()

	if err := r.Register("primary", nopStore{}); err != nil {
		t.Fatalf("Expected registration to succeed, got %v", err)
	}

	if _, ok := r.Lookup("primary"); !ok {
		t.Errorf("Expected to find registered store")
	}
	if _, ok := r.Lookup("unknown"); ok {
		t.Errorf("Expected unknown name to miss")
	}

	// a name can only be taken once
	if err := r.Register("primary", nopStore{}); err == nil {
		t.Errorf("Expected duplicate registration to fail")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry[string, int]()

	_ = r.Register("primary", nopStore{})
	r.Remove("primary")

	if _, ok := r.Lookup("primary"); ok {
		t.Errorf("Expected store to be removed")
	}

	// removing twice must not panic
	r.Remove("primary")

	// the name is free again
	if err := r.Register("primary", nopStore{}); err != nil {
		t.Errorf("Expected re-registration after removal to succeed, got %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry[string, int]()

	_ = r.Register("c", nopStore{})
	_ = r.Register("a", nopStore{})
	_ = r.Register("b", nopStore{})

	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected sorted names [a b c], got %v", got)
	}
	if r.Len() != 3 {
		t.Errorf("Expected 3 registered stores, got %d", r.Len())
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				name := fmt.Sprintf("w%d-%d", worker, j)
				if err := r.Register(name, nopStore{}); err != nil {
					t.Errorf("Expected registration of %s to succeed, got %v", name, err)
					return
				}
				if _, ok := r.Lookup(name); !ok {
					t.Errorf("Expected to find %s after registration", name)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if r.Len() != 1000 {
		t.Errorf("Expected 1000 registered stores, got %d", r.Len())
	}
}
