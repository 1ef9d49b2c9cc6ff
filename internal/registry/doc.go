// Package registry implements the type table: per-type, ordered
// collections of value selectors the matching engine draws its
// candidates from.
//
// Key functions:
//   - Register: append selectors under their target types
//   - Selectors: priority-ranked candidates for a type
//   - Base: the first-registered selector for a type
package registry
