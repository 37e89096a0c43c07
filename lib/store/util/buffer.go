// Package util provides the unbounded streaming buffer used by the store
// implementations to decouple stream producers from consumers.
//
// Features and Guarantees:
//
//   - Unbounded Size: the buffer grows as needed, so a producer never blocks
//     on a slow consumer; only available memory limits it
//   - Single Producer: designed for exactly one goroutine to Push values
//   - Single Consumer: values are consumed through the Recv() channel
//   - FIFO: values are delivered in the order they were pushed
//   - Graceful and immediate shutdown: Close flushes buffered values before
//     closing the channel, Abort drops them and closes right away
package util

import (
	"sync"
)

// Buffer is an unbounded FIFO buffer connecting one producer goroutine to
// one consumer channel. A dedicated goroutine drains the internal slice
// into the output channel so Push never blocks.
type Buffer[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []T
	closed  bool
	aborted bool

	out  chan T
	stop chan struct{}
}

// NewBuffer creates a new buffer and starts its consumer goroutine.
func NewBuffer[T any]() *Buffer[T] {
	b := &Buffer[T]{
		out:  make(chan T),
		stop: make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)

	go b.consume()

	return b
}

// Push appends a value to the buffer.
// Returns false if the buffer is already closed.
//
// Thread-safety: Push must only be called from a single producer goroutine.
func (b *Buffer[T]) Push(value T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}
	b.items = append(b.items, value)
	b.cond.Signal()
	return true
}

// consume drains the internal slice into the output channel until the
// buffer is closed and empty, or aborted.
func (b *Buffer[T]) consume() {
	defer close(b.out)

	for {
		b.mu.Lock()
		for len(b.items) == 0 && !b.closed {
			b.cond.Wait()
		}
		if b.aborted || (b.closed && len(b.items) == 0) {
			b.mu.Unlock()
			return
		}

		value := b.items[0]
		b.items = b.items[1:]
		b.mu.Unlock()

		select {
		case b.out <- value:
		case <-b.stop:
			// consumer went away, drop the value
			return
		}
	}
}

// Recv returns the receive-only channel delivering the buffered values.
// The channel is closed once the buffer is closed and drained, or aborted.
func (b *Buffer[T]) Recv() <-chan T {
	return b.out
}

// Close closes the buffer for writing. Values already buffered are still
// delivered to the consumer before the channel is closed. Close is
// idempotent and safe to call after Abort.
func (b *Buffer[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.cond.Signal()
}

// Abort closes the buffer immediately, discarding any buffered values and
// unblocking a pending delivery. Used when the consumer cancelled and will
// not drain the channel.
func (b *Buffer[T]) Abort() {
	b.mu.Lock()
	if b.closed && b.aborted {
		b.mu.Unlock()
		return
	}
	b.closed = true
	if !b.aborted {
		b.aborted = true
		close(b.stop)
	}
	b.items = nil
	b.cond.Signal()
	b.mu.Unlock()
}
