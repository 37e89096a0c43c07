package util

import (
	"testing"
	"time"
)

func TestBufferDeliversInOrder(t *testing.T) {
	b := NewBuffer[int]()

	numItems := 1000
	go func() {
		for i := 0; i < numItems; i++ {
			if !b.Push(i) {
				t.Errorf("Push %d failed on open buffer", i)
				return
			}
		}
		b.Close()
	}()

	next := 0
	for v := range b.Recv() {
		if v != next {
			t.Fatalf("Expected %d, got %d", next, v)
		}
		next++
	}

	if next != numItems {
		t.Errorf("Expected %d items, received %d", numItems, next)
	}
}

func TestBufferCloseFlushes(t *testing.T) {
	b := NewBuffer[string]()

	// push without a consumer, then close
	b.Push("a")
	b.Push("b")
	b.Close()

	var got []string
	for v := range b.Recv() {
		got = append(got, v)
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected buffered values to be flushed on Close, got %v", got)
	}

	if b.Push("c") {
		t.Errorf("Expected Push to fail after Close")
	}
}

func TestBufferAbortDiscards(t *testing.T) {
	b := NewBuffer[int]()

	for i := 0; i < 100; i++ {
		b.Push(i)
	}
	b.Abort()

	// the channel must close without requiring the consumer to drain
	// all hundred values
	deadline := time.After(time.Second)
	received := 0
	for {
		select {
		case _, ok := <-b.Recv():
			if !ok {
				if received > 1 {
					t.Errorf("Expected at most the in-flight value after Abort, got %d", received)
				}
				return
			}
			received++
		case <-deadline:
			t.Fatalf("Buffer did not close after Abort")
		}
	}
}

func TestBufferAbortUnblocksPendingSend(t *testing.T) {
	b := NewBuffer[int]()
	b.Push(1)

	// give the consumer goroutine time to park on the unread send
	time.Sleep(10 * time.Millisecond)
	b.Abort()

	select {
	case _, ok := <-b.Recv():
		if ok {
			// the in-flight value may still arrive, the close must follow
			if _, ok := <-b.Recv(); ok {
				t.Errorf("Expected channel to close after Abort")
			}
		}
	case <-time.After(time.Second):
		t.Fatalf("Recv channel did not close after Abort")
	}
}

func TestBufferCloseIdempotent(t *testing.T) {
	b := NewBuffer[int]()
	b.Close()
	b.Close()
	b.Abort()

	if _, ok := <-b.Recv(); ok {
		t.Errorf("Expected closed empty buffer to deliver nothing")
	}
}
