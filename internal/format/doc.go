// Package format holds the requested output format: a strongly typed Options
// snapshot, the mutable Spec that owns one, YAML loading, and the error kinds
// shared by the resolution engine.
//
// Types:
//   - Options: immutable view of every output option (codecs, container,
//     frame rate, aspect ratio, dimensions, padding, stream disables).
//   - Spec: caller-owned holder with validating setters and Replace.
//
// Errors:
//   - ErrConfiguration: the requested format cannot be honored (bad ratio,
//     both streams disabled, non-positive sizes).
//   - ErrGeometry: source geometry needed for a computation is unknown.
package format
