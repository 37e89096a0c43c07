package store

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewDelayProfileRejectsNegative(t *testing.T) {
	if _, err := NewDelayProfile(-time.Second); err == nil {
		t.Errorf("Expected negative delay to be rejected")
	}
	if _, err := NewDelayProfileFor(0, 0, -1, 0); err == nil {
		t.Errorf("Expected negative delay to be rejected")
	}
}

func TestDelayProfileFor(t *testing.T) {
	p, err := NewDelayProfileFor(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("Expected profile creation to succeed, got %v", err)
	}

	expected := map[Operation]time.Duration{
		OpDelete: 1,
		OpFetch:  2,
		OpInsert: 3,
		OpUpdate: 4,
	}
	for op, want := range expected {
		if got := p.For(op); got != want {
			t.Errorf("Expected %s delay %d, got %d", op, want, got)
		}
	}
}

func TestNilProfile(t *testing.T) {
	var p *DelayProfile

	if d := p.For(OpFetch); d != 0 {
		t.Errorf("Expected nil profile to return 0, got %d", d)
	}

	// Wait on a nil profile must return immediately, even with a
	// cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx, OpFetch); err != nil {
		t.Errorf("Expected nil profile wait to succeed, got %v", err)
	}

	if !strings.Contains(p.String(), "no simulated delay") {
		t.Errorf("Expected nil profile string to say so, got %q", p.String())
	}
}

func TestWaitSleepsAtLeastTheConfiguredDuration(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	delay := 50 * time.Millisecond
	p, _ := NewDelayProfile(delay)

	start := time.Now()
	if err := p.Wait(context.Background(), OpInsert); err != nil {
		t.Fatalf("Expected wait to succeed, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Expected wait of at least %s, took %s", delay, elapsed)
	}
}

func TestWaitCancellation(t *testing.T) {
	p, _ := NewDelayProfile(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Wait(ctx, OpFetch)
	if err == nil {
		t.Fatalf("Expected cancelled wait to fail")
	}
	if err != context.DeadlineExceeded {
		t.Errorf("Expected deadline error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Expected wait to return promptly after cancellation, took %s", elapsed)
	}
}

func TestOperationString(t *testing.T) {
	cases := map[Operation]string{
		OpDelete:       "delete",
		OpFetch:        "fetch",
		OpInsert:       "insert",
		OpUpdate:       "update",
		Operation(200): "unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestProfileString(t *testing.T) {
	p, _ := NewDelayProfileFor(time.Second, 2*time.Second, 0, 500*time.Millisecond)
	s := p.String()

	for _, want := range []string{"DELAY PROFILE", "Delete", "1s", "Fetch", "2s", "Update", "500ms"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected profile string to contain %q, got:\n%s", want, s)
		}
	}
}
