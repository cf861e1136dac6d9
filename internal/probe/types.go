package probe

import "strconv"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64
	Size       int64
	BitRate    int64
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Profile       string
	PixFmt        string
	Width         int
	Height        int
	BitRate       int64
	IsAttachedPic bool
	AvgFrameRate  string
	RFrameRate    string
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index      int
	Codec      string
	Channels   int
	SampleRate int
	Language   string
}

// ProbeResult is the fully parsed output of a single probe.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type ProbeResult struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// HasAudio reports whether the source carries at least one audio stream.
func (p *ProbeResult) HasAudio() bool {
	return len(p.AudioStreams) > 0
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (p *ProbeResult) Resolution() string {
	if p.PrimaryVideo == nil || p.PrimaryVideo.Width <= 0 || p.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(p.PrimaryVideo.Width) + "x" + strconv.Itoa(p.PrimaryVideo.Height)
}

// FrameRate returns the primary video frame rate in frames per second,
// preferring avg_frame_rate over r_frame_rate. Zero means unknown.
func (p *ProbeResult) FrameRate() float64 {
	if p.PrimaryVideo == nil {
		return 0
	}
	if fps := ParseFrameRate(p.PrimaryVideo.AvgFrameRate); fps > 0 {
		return fps
	}
	return ParseFrameRate(p.PrimaryVideo.RFrameRate)
}
