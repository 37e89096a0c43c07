package mstore

import (
	"context"
	"testing"

	"github.com/ValentinKolb/stubDB/lib/store"
)

// tests for behavior specific to the constructors, the shared conformance
// suite covers the interface semantics

type account struct {
	Number  int
	Owner   string
	Balance int
}

func TestNewWithIdentityFunc(t *testing.T) {
	ctx := context.Background()
	s := New([]account{
		{Number: 1, Owner: "alice"},
		{Number: 2, Owner: "bob"},
	}, func(a account) int { return a.Number }, nil)

	e, ok, err := s.FetchOne(ctx, 2)
	if err != nil || !ok {
		t.Fatalf("Expected to find account 2, got ok=%v err=%v", ok, err)
	}
	if e.Owner != "bob" {
		t.Errorf("Expected owner bob, got %q", e.Owner)
	}

	_, err = s.Insert(ctx, account{Number: 1, Owner: "mallory"})
	if !store.IsExists[int](err) {
		t.Errorf("Expected an exists error for duplicate number, got %v", err)
	}
}

func TestNewResolvesDuplicateSeeds(t *testing.T) {
	ctx := context.Background()

	s := New([]account{
		{Number: 1, Owner: "alice", Balance: 10},
		{Number: 2, Owner: "bob"},
		{Number: 1, Owner: "alice", Balance: 99},
	}, func(a account) int { return a.Number }, nil)

	all, err := s.Fetch(ctx)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected duplicate seed to collapse to 2 elements, got %d", len(all))
	}
	if all[0].Number != 1 || all[0].Balance != 99 {
		t.Errorf("Expected the later seed to win in place, got %v", all[0])
	}
	if all[1].Number != 2 {
		t.Errorf("Expected order 1, 2, got %v", all)
	}
}
