// Package bind implements a bound-call-site cache for Go methods.
//
// This package contains:
//   - Name/signature method resolution with type-variable inference
//   - A concurrent resolution cache keyed by (owner, name, signature)
//   - Receiver capture: inline value copies vs. pinned references
//   - Arity-specialized dispatch with a zero-allocation fast path
//   - Handle lifecycle: bind, wrap, clone, equality, dispose
//
// A method is resolved once, packaged with its receiver into a Handle, and
// invoked repeatedly through the Call family without repeating the lookup
// and without per-call heap allocation.
package bind
