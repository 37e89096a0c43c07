package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Operation Categories
// --------------------------------------------------------------------------

// Operation names the four latency categories of a store.
type Operation uint8

const (
	OpDelete Operation = iota // delete and delete-where
	OpFetch                   // fetch, fetch-one and streaming
	OpInsert                  // insert (plain and via request)
	OpUpdate                  // update (plain and via request)
)

func (op Operation) String() string {
	switch op {
	case OpDelete:
		return "delete"
	case OpFetch:
		return "fetch"
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Delay Profile
// --------------------------------------------------------------------------

// DelayProfile configures the simulated latency a store applies per
// operation category, standing in for the network round-trip of the remote
// backend being simulated. A nil *DelayProfile is valid everywhere and
// means "no delay".
type DelayProfile struct {
	delete time.Duration
	fetch  time.Duration
	insert time.Duration
	update time.Duration
}

// NewDelayProfile creates a profile applying the same duration to all four
// operation categories. Negative durations are rejected.
func NewDelayProfile(d time.Duration) (*DelayProfile, error) {
	return NewDelayProfileFor(d, d, d, d)
}

// NewDelayProfileFor creates a profile with an explicit duration per
// operation category. Negative durations are rejected.
func NewDelayProfileFor(deleteD, fetchD, insertD, updateD time.Duration) (*DelayProfile, error) {
	for _, d := range []time.Duration{deleteD, fetchD, insertD, updateD} {
		if d < 0 {
			return nil, fmt.Errorf("delay must not be negative, got %s", d)
		}
	}
	return &DelayProfile{
		delete: deleteD,
		fetch:  fetchD,
		insert: insertD,
		update: updateD,
	}, nil
}

// For returns the configured duration for an operation category.
// Safe to call on a nil profile (returns 0).
func (p *DelayProfile) For(op Operation) time.Duration {
	if p == nil {
		return 0
	}
	switch op {
	case OpDelete:
		return p.delete
	case OpFetch:
		return p.fetch
	case OpInsert:
		return p.insert
	case OpUpdate:
		return p.update
	default:
		return 0
	}
}

// Wait sleeps for the duration configured for op. It is the single
// suspension point of a store operation and is cancellable through ctx, in
// which case the context's error is returned. A zero duration (including a
// nil profile) returns immediately without consulting the context.
func (p *DelayProfile) Wait(ctx context.Context, op Operation) error {
	d := p.For(op)
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// String returns a formatted string representation of the profile.
func (p *DelayProfile) String() string {
	var sb strings.Builder

	addField := func(name string, d time.Duration) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, d))
	}

	sb.WriteString("\nDELAY PROFILE\n")
	if p == nil {
		sb.WriteString("  (no simulated delay)\n")
		return sb.String()
	}
	addField("Delete", p.delete)
	addField("Fetch", p.fetch)
	addField("Insert", p.insert)
	addField("Update", p.update)
	return sb.String()
}
