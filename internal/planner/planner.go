package planner

import (
	"fmt"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/probe"
)

// Resolve derives the final output options for one save.
//
// Flow:
//  1. Apply extraction flags and reject a snapshot with no streams
//  2. Fill codecs from the source when splitting
//  3. Detect still-sequence output (may rewrite format and dst)
//  4. Correct the width for a requested aspect ratio
//  5. Fit dimensions against the source and compute padding
//
// The resolved snapshot is committed to spec only when every stage
// succeeds; on error spec is untouched.
func Resolve(src probe.Source, spec *format.Spec, dst string, f Flags) (Result, error) {
	o := spec.Options()
	res := Result{Destination: dst}

	// --- 1. Stream conflicts ---
	o, err := ValidateStreams(o, f)
	if err != nil {
		return Result{}, err
	}

	// --- 2. Split codecs ---
	if f.Splitting {
		before := o
		o = FillSplitCodecs(o, src)
		if o.AudioCodec != before.AudioCodec {
			res.note("audio codec %s copied from source", o.AudioCodec)
		}
		if o.VideoCodec != before.VideoCodec {
			res.note("video codec %s copied from source", o.VideoCodec)
		}
	}

	// --- 3. Still sequence ---
	fps := o.VideoFrameRate
	o, res.Destination, res.StillSequence = DetectStillSequence(o, src, dst)
	if res.StillSequence {
		res.note("gif output written as png sequence %s", res.Destination)
		if o.VideoFrameRate != fps {
			res.note("frame rate capped at %g", o.VideoFrameRate)
		}
	}

	// --- 4. Aspect ratio ---
	before := o.VideoDimensions
	if o, err = CorrectAspect(o, src); err != nil {
		return Result{}, err
	}
	if d := o.VideoDimensions; d != nil && (before == nil || d.Width != before.Width) {
		res.note("width %d for aspect ratio %s", d.Width, o.VideoAspectRatio.Ratio)
	}

	// --- 5. Dimensions and padding ---
	pad := o.VideoPadding
	if o, err = FitDimensions(o, src); err != nil {
		return Result{}, err
	}
	if p := o.VideoPadding; p != nil && (pad == nil || *p != *pad) {
		res.note("padded to %dx%d (top %d, right %d, bottom %d, left %d)",
			p.PaddedWidth, p.PaddedHeight, p.Top, p.Right, p.Bottom, p.Left)
	}

	if err := spec.Replace(o); err != nil {
		return Result{}, err
	}
	res.Options = spec.Options()
	return res, nil
}

func (r *Result) note(f string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(f, args...))
}
