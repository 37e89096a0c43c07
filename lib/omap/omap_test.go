package omap

import (
	"reflect"
	"testing"
)

func TestAppendAndLoad(t *testing.T) {
	m := New[string, int]()

	if !m.Append("a", 1) {
		t.Errorf("Expected Append to succeed for new identity")
	}
	if m.Append("a", 2) {
		t.Errorf("Expected Append to fail for duplicate identity")
	}

	v, ok := m.Load("a")
	if !ok || v != 1 {
		t.Errorf("Expected to load 1 for 'a', got %d (found=%v)", v, ok)
	}

	if _, ok := m.Load("b"); ok {
		t.Errorf("Expected Load to report absent identity")
	}

	if !m.Has("a") || m.Has("b") {
		t.Errorf("Has reported wrong presence")
	}
}

func TestOrderPreserved(t *testing.T) {
	m := New[string, string]()
	m.Append("c", "charlie")
	m.Append("a", "alpha")
	m.Append("b", "bravo")

	wantIDs := []string{"c", "a", "b"}
	if got := m.IDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("Expected IDs %v, got %v", wantIDs, got)
	}

	wantValues := []string{"charlie", "alpha", "bravo"}
	if got := m.Values(); !reflect.DeepEqual(got, wantValues) {
		t.Errorf("Expected values %v, got %v", wantValues, got)
	}

	// replacement keeps the original position
	m.Store("a", "updated")
	wantValues = []string{"charlie", "updated", "bravo"}
	if got := m.Values(); !reflect.DeepEqual(got, wantValues) {
		t.Errorf("Expected values %v after replace, got %v", wantValues, got)
	}

	// new identities are appended at the end
	m.Store("d", "delta")
	if got := m.IDs(); !reflect.DeepEqual(got, []string{"c", "a", "b", "d"}) {
		t.Errorf("Expected 'd' appended at the end, got %v", got)
	}
}

func TestDelete(t *testing.T) {
	m := New[string, int]()
	m.Append("a", 1)
	m.Append("b", 2)
	m.Append("c", 3)

	if !m.Delete("b") {
		t.Errorf("Expected Delete to report removal")
	}
	if m.Delete("b") {
		t.Errorf("Expected second Delete to be a no-op")
	}
	if m.Delete("nonexistent") {
		t.Errorf("Expected Delete of absent identity to be a no-op")
	}

	if got := m.IDs(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Expected survivors [a c], got %v", got)
	}
	if m.Len() != 2 {
		t.Errorf("Expected Len 2, got %d", m.Len())
	}
}

func TestDeleteFunc(t *testing.T) {
	m := New[string, int]()
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		m.Append(id, i)
	}

	removed := m.DeleteFunc(func(v int) bool { return v%2 == 0 })
	if removed != 3 {
		t.Errorf("Expected 3 removals, got %d", removed)
	}

	if got := m.Values(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Expected survivors [1 3] in order, got %v", got)
	}
}

func TestRange(t *testing.T) {
	m := New[int, string]()
	m.Append(1, "one")
	m.Append(2, "two")
	m.Append(3, "three")

	var seen []int
	m.Range(func(id int, _ string) bool {
		seen = append(seen, id)
		return id < 2
	})

	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Errorf("Expected Range to stop after id 2, saw %v", seen)
	}
}

func TestClear(t *testing.T) {
	m := New[string, int]()
	m.Append("a", 1)
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Expected empty map after Clear, got len %d", m.Len())
	}
	if m.Has("a") {
		t.Errorf("Expected 'a' to be gone after Clear")
	}

	// the map must be usable after Clear
	if !m.Append("a", 2) {
		t.Errorf("Expected Append to succeed after Clear")
	}
}
