package planner

import (
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/naming"
	"github.com/backmassage/muxshape/internal/probe"
)

// StillSequenceFrameRate caps the frame rate of an animated-image export
// when none was requested.
const StillSequenceFrameRate = 12

// DetectStillSequence turns gif output into a numbered png sequence. It
// triggers when Format is "gif", or Format is empty and dst has a gif
// extension. When triggered, Format is cleared, an unset frame rate is
// capped at StillSequenceFrameRate for faster sources, and dst becomes
// <dir>/<name>-%12index.png. The returned bool reports whether it fired.
func DetectStillSequence(o format.Options, src probe.Source, dst string) (format.Options, string, bool) {
	if !(o.Format == "gif" || (o.Format == "" && naming.IsGIF(dst))) {
		return o, dst, false
	}

	if o.VideoFrameRate == 0 && src.FrameRate > StillSequenceFrameRate {
		o = o.WithVideoFrameRate(StillSequenceFrameRate)
	}
	o = o.WithFormat("")
	return o, naming.SequencePath(dst), true
}
