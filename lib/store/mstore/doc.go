// Package mstore implements the canonical in-memory simulation store.
//
// The package focuses on:
//   - Insertion order: elements live in an ordered identity map, so every
//     read returns them in the order they were first inserted
//   - One exclusive section: a single mutex serializes all map access, the
//     whole store behaves like a single-writer backend
//   - Realistic latency: every operation pays the configured simulated
//     delay OUTSIDE the exclusive section, so slow round-trips never make
//     the store itself a bottleneck
//   - Remote-backend ordering: writes mutate first and delay after, reads
//     delay first and snapshot after; a caller that cancels a write delay
//     gets an error while the mutation is retained, exactly like a real
//     backend that processed a request whose client timed out
//   - Per-element streaming: Stream and StreamWith deliver a call-time
//     snapshot through an unbounded buffer, paying one fetch delay per
//     element, so UI code can exercise incremental rendering
//
// Create stores with New (explicit identity function) or NewIdentified
// (element types implementing store.Identifiable). Both return the generic
// store.IStore interface; the implementation type stays private.
package mstore
