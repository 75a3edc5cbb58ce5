// Package kernel contains shared domain primitives used across aggregates.
// It currently provides the UUID value object that identifies orders in
// storage. Value objects here are immutable and validate themselves, so
// aggregates can rely on them without re-checking invariants.
package kernel
