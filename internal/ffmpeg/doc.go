// Package ffmpeg turns resolved output options into an ordered ffmpeg
// argument list. It never runs ffmpeg.
//
//   - Command: ordered (flag, value) pairs (command.go)
//   - Build: shared skeleton plus stream, geometry and container flags (builder.go)
package ffmpeg
