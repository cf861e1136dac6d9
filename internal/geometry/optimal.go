package geometry

import (
	"math"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/pkg/errors"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Valid reports whether both sides are positive.
func (s Size) Valid() bool { return s.Width > 0 && s.Height > 0 }

// Result is the outcome of Optimal. PaddedWidth/PaddedHeight is the canvas
// handed to the encoder; VideoWidth/VideoHeight is the scaled picture
// placed inside it.
type Result struct {
	PaddedWidth  int
	PaddedHeight int
	VideoWidth   int
	VideoHeight  int
	PadTop       int
	PadRight     int
	PadBottom    int
	PadLeft      int
}

// HasPadding reports whether any side is padded.
func (r Result) HasPadding() bool {
	return r.PadTop > 0 || r.PadRight > 0 || r.PadBottom > 0 || r.PadLeft > 0
}

// Padding converts r into the format option representation.
func (r Result) Padding() format.Padding {
	return format.Padding{
		Top:          r.PadTop,
		Right:        r.PadRight,
		Bottom:       r.PadBottom,
		Left:         r.PadLeft,
		PaddedWidth:  r.PaddedWidth,
		PaddedHeight: r.PaddedHeight,
	}
}

// Optimal fits target against orig and never upscales: along the
// constraining axis the smaller of the two sizes wins. With forceAspect the
// canvas keeps the target ratio and the picture is padded symmetrically;
// without it the canvas is the scaled picture itself.
//
// Ratios are compared with exact float equality.
func Optimal(orig, target Size, forceAspect bool) (Result, error) {
	if !orig.Valid() {
		return Result{}, errors.Wrapf(format.ErrGeometry, "source dimensions unavailable (%dx%d)", orig.Width, orig.Height)
	}
	if !target.Valid() {
		return Result{}, errors.Wrapf(format.ErrConfiguration, "invalid target dimensions %dx%d", target.Width, target.Height)
	}

	ow, oh := float64(orig.Width), float64(orig.Height)
	tw, th := float64(target.Width), float64(target.Height)

	var r Result

	aspect := tw / th
	raspect := th / tw

	if ow/oh != aspect {
		if ow/oh > aspect {
			// Source is relatively wider: width constrains.
			if ow < tw {
				tw = ow
				th = math.Round(raspect * tw)
			}
			oh = math.Round(oh / ow * tw)
			ow = tw
			if forceAspect {
				dif := int(math.Round((th - oh) / 2))
				r.PadTop = dif
				r.PadBottom = dif
			}
		} else {
			// Source is relatively taller: height constrains.
			if oh < th {
				th = oh
				tw = math.Round(aspect * th)
			}
			ow = math.Round(ow / oh * th)
			oh = th
			if forceAspect {
				dif := int(math.Round((tw - ow) / 2))
				r.PadLeft = dif
				r.PadRight = dif
			}
		}
	} else if ow != tw {
		if ow < tw {
			tw, th = ow, oh
		} else {
			ow, oh = tw, th
		}
	}

	r.VideoWidth = int(ow)
	r.VideoHeight = int(oh)
	if r.VideoWidth == 0 || r.VideoHeight == 0 {
		return Result{}, errors.Wrapf(format.ErrGeometry, "%dx%d scaled into %dx%d leaves no picture",
			orig.Width, orig.Height, target.Width, target.Height)
	}
	if forceAspect {
		r.PaddedWidth = int(tw)
		r.PaddedHeight = int(th)
	} else {
		r.PaddedWidth = int(ow)
		r.PaddedHeight = int(oh)
	}
	return r, nil
}
