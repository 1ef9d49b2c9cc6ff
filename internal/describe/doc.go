// Package describe provides the populate-time view of Go types.
//
// It derives writable-field descriptors from the runtime type once per
// type and caches them, so the populator drives off an explicit
// descriptor table instead of re-inspecting types on every call.
//
// Key types:
//   - Descriptor: a struct type's writable fields
//   - Kind: structural classification steering the populator
//   - Path: object-graph position rendering for trace logs
package describe
