package planner

import (
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/geometry"
	"github.com/backmassage/muxshape/internal/probe"
)

// CorrectAspect recomputes the output width so it matches the requested
// aspect ratio at the current height. Without explicit dimensions the
// source size is used, carrying the ratio's AutoAdjust flag and
// ForceAspect=true. The snapshot is only changed when the width moves.
// Nothing happens when no ratio is requested or no size is known.
func CorrectAspect(o format.Options, src probe.Source) (format.Options, error) {
	if o.VideoAspectRatio == nil {
		return o, nil
	}

	var dims format.Dimensions
	switch {
	case o.VideoDimensions != nil:
		dims = *o.VideoDimensions
	case src.HasDimensions():
		dims = format.Dimensions{
			Width:       src.Width,
			Height:      src.Height,
			AutoAdjust:  o.VideoAspectRatio.AutoAdjust,
			ForceAspect: true,
		}
	default:
		return o, nil
	}

	ratio, err := geometry.ParseRatio(o.VideoAspectRatio.Ratio)
	if err != nil {
		return o, err
	}

	width := ratio.WidthFor(dims.Height)
	if width == dims.Width {
		return o, nil
	}
	dims.Width = width
	return o.WithVideoDimensions(dims), nil
}
