// Package omap provides the ordered identity map that backs the stubDB
// stores: a mapping from a unique, comparable identity to an element that
// preserves insertion order for iteration.
//
// The package focuses on:
//   - Identity uniqueness: Append refuses duplicate identities so the store
//     layer can surface them as typed errors
//   - Stable ordering: Values and IDs always reflect insertion order;
//     replacement keeps an element's position, removal keeps the order of
//     the survivors
//   - Simplicity: the map is a plain slice+map pair with no internal
//     synchronization - exclusive ownership and serialization are the job
//     of the store that embeds it
//
// The Map is intentionally not an engine in its own right. It is never
// handed to callers directly; all access goes through a store implementation
// such as mstore, which funnels every read and write through a single
// exclusive section.
package omap
