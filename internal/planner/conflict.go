package planner

import (
	"github.com/backmassage/muxshape/internal/format"
	"github.com/pkg/errors"
)

// ValidateStreams applies the extraction flags to o: audio-only extraction
// disables video, single-frame extraction disables audio. A snapshot with
// both streams disabled is rejected with format.ErrConfiguration.
func ValidateStreams(o format.Options, f Flags) (format.Options, error) {
	if f.ExtractingAudioOnly {
		o = o.WithDisabledVideo()
	}
	if f.ExtractingSingleFrame {
		o = o.WithDisabledAudio()
	}
	if o.DisableAudio && o.DisableVideo {
		return o, errors.Wrap(format.ErrConfiguration, "both audio and video are disabled")
	}
	return o, nil
}
