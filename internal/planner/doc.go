// Package planner resolves a requested output format against a probed
// source into the final encode options.
//
// Resolve runs a fixed pipeline; each stage takes an options snapshot and
// returns a new one:
//   - ValidateStreams: apply extraction flags, reject both streams disabled (conflict.go)
//   - FillSplitCodecs: default codecs from the source when splitting (split.go)
//   - DetectStillSequence: gif output becomes a numbered png sequence (sequence.go)
//   - CorrectAspect: width follows the requested aspect ratio (aspect.go)
//   - FitDimensions: never-upscale sizing and padding (dimensions.go)
//
// The caller's format.Spec is only updated when every stage succeeds.
package planner
