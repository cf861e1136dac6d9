// Package probe inspects source media and reduces it to the Source snapshot
// the resolver consumes.
//
// Types:
//   - ProbeResult: typed view of one ffprobe JSON call (format, primary video,
//     audio streams).
//   - Source: immutable measurements (size, frame rate, stream presence,
//     codec names) taken once per resolution.
//
// Probers:
//   - FFprobe: runs ffprobe through ffmpeg-go and parses its JSON.
//   - MP4: reads ISO-BMFF boxes directly with mp4ff; no external binary.
//   - Auto: MP4 for .mp4/.m4v/.mov, FFprobe otherwise or when MP4 fails.
//   - Cached: wraps any Prober with a Cache (MemoryCache or RedisCache).
package probe
