package planner

import (
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/probe"
)

// FillSplitCodecs sets codecs the segmenter needs explicitly. An unset audio
// codec takes the source's audio codec when the source has audio; an unset
// video codec takes the source's video codec. Disabled streams are left
// alone.
func FillSplitCodecs(o format.Options, src probe.Source) format.Options {
	if o.AudioCodec == "" && !o.DisableAudio && src.HasAudio && src.AudioCodec != "" {
		o = o.WithAudioCodec(src.AudioCodec)
	}
	if o.VideoCodec == "" && !o.DisableVideo && src.VideoCodec != "" {
		o = o.WithVideoCodec(src.VideoCodec)
	}
	return o
}
