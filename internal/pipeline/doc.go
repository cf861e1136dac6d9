// Package pipeline runs the save flow around the resolver: probe a source,
// resolve a fresh copy of the requested format against it, and build the
// ffmpeg arguments. Run does this for every media file under a directory.
package pipeline
