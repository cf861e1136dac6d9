package probe

import (
	"strconv"
	"strings"
)

// Source is the measured state of a source file as seen by the resolver.
// Zero Width/Height/FrameRate mean "unknown". A Source is a value; it is
// taken once per resolution and never refreshed mid-pipeline.
type Source struct {
	Width      int
	Height     int
	FrameRate  float64
	HasAudio   bool
	VideoCodec string
	AudioCodec string
}

// HasDimensions reports whether both sides of the picture are known.
func (s Source) HasDimensions() bool {
	return s.Width > 0 && s.Height > 0
}

// Source reduces p to the snapshot the resolver consumes.
func (p *ProbeResult) Source() Source {
	s := Source{
		FrameRate: p.FrameRate(),
		HasAudio:  p.HasAudio(),
	}
	if v := p.PrimaryVideo; v != nil {
		s.Width = v.Width
		s.Height = v.Height
		s.VideoCodec = v.Codec
	}
	if len(p.AudioStreams) > 0 {
		s.AudioCodec = p.AudioStreams[0].Codec
	}
	return s
}

// ParseFrameRate parses ffprobe rates such as "30000/1001", "25/1" or "29.97".
// Unparseable input and "0/0" yield 0.
func ParseFrameRate(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 || n <= 0 {
			return 0
		}
		return n / d
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return f
}
