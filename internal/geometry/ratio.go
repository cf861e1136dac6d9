package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/pkg/errors"
)

// Ratio is a parsed aspect ratio. Rounded is set for "W:H" ratios, whose
// derived widths are rounded to a whole pixel before the even rule applies.
type Ratio struct {
	Value   float64
	Rounded bool
}

// ParseRatio accepts "W:H" with positive integer sides or a positive
// decimal such as "1.777" or "2".
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, ":"); ok {
		n, errN := strconv.Atoi(strings.TrimSpace(num))
		d, errD := strconv.Atoi(strings.TrimSpace(den))
		if errN != nil || errD != nil || n <= 0 || d <= 0 {
			return Ratio{}, errors.Wrapf(format.ErrConfiguration, "invalid aspect ratio %q", s)
		}
		return Ratio{Value: float64(n) / float64(d), Rounded: true}, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return Ratio{}, errors.Wrapf(format.ErrConfiguration, "invalid aspect ratio %q", s)
	}
	return Ratio{Value: v}, nil
}

// WidthFor returns the even width matching r at the given height. The
// ceiling of the raw width is used unless it is odd, in which case the
// next even value below it is taken.
func (r Ratio) WidthFor(height int) int {
	w := float64(height) * r.Value
	if r.Rounded {
		w = math.Round(w)
	}
	return EvenWidth(w)
}

// EvenWidth rounds a fractional width to an even pixel count of at least 2.
func EvenWidth(w float64) int {
	ceiled := int(math.Ceil(w))
	if ceiled%2 != 0 {
		ceiled--
	}
	if ceiled < 2 {
		return 2
	}
	return ceiled
}
