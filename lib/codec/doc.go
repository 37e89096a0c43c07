// Package codec provides encoding for store snapshots. It defines a common
// interface and multiple implementations for writing seed data to disk and
// loading it back into a store.
//
// The package focuses on:
//   - Providing a consistent interface for different encoding formats
//   - Working with arbitrary element types, so any store content can be
//     seeded from or dumped to a file
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//
//   - jsonCodecImpl: Implementation using JSON encoding. Human-readable,
//     the natural choice for hand-written seed files.
//
//   - gobCodecImpl: Implementation using Go's built-in gob encoding. Compact
//     and type-faithful, but only readable by Go programs.
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
package codec
