// Package scenario provides declarative YAML generation profiles: which
// prototype types to generate, how many, and which catalog generators to
// pin on individual fields.
//
// Resolution pipeline:
//  1. Parse YAML → Config (defaults applied)
//  2. Validate against the prototype registry and the generator catalog,
//     with did-you-mean hints for near-miss names
//  3. Run: one seeded source for the whole scenario, one Filler per block
//     carrying that block's field overrides
package scenario
