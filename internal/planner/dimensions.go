package planner

import (
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/geometry"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/pkg/errors"
)

// FitDimensions sizes the output against the source when the requested
// dimensions ask for auto adjustment. The requested size is the target and
// the source size the original; see geometry.Optimal. Dimensions change
// when the padded canvas differs from the request, and padding is set when
// any side is positive. The AutoAdjust and ForceAspect flags are kept.
func FitDimensions(o format.Options, src probe.Source) (format.Options, error) {
	d := o.VideoDimensions
	if d == nil || !d.AutoAdjust {
		return o, nil
	}
	if !src.HasDimensions() {
		return o, errors.Wrap(format.ErrGeometry, "source dimensions unknown")
	}

	res, err := geometry.Optimal(
		geometry.Size{Width: src.Width, Height: src.Height},
		geometry.Size{Width: d.Width, Height: d.Height},
		d.ForceAspect,
	)
	if err != nil {
		return o, err
	}

	if res.PaddedWidth != d.Width || res.PaddedHeight != d.Height {
		nd := *d
		nd.Width = res.PaddedWidth
		nd.Height = res.PaddedHeight
		o = o.WithVideoDimensions(nd)
	}
	if res.HasPadding() {
		o = o.WithVideoPadding(res.Padding())
	}
	return o, nil
}
