// Package naming builds output paths: the still-sequence pattern written in
// place of an animated-image destination, the ffmpeg form of that pattern,
// and per-run output claims for batch mode.
package naming
