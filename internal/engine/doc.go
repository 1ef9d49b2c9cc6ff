// Package engine implements the population walk: it fills every writable
// field of a target from the ranked selectors of a registry, constructs
// nested objects and collections where no selector serves, and degrades to
// zero values instead of failing.
//
// Key types:
//   - Engine: binds a registry and a factory set to one population run
//   - Config: depth budget, randomness source, logger
//   - Factory, FactorySet: reflectively parsed constructors
package engine
