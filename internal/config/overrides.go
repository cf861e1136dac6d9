package config

import (
	"strconv"
	"strings"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/pkg/errors"
)

// FormatOverrides are the per-run format flags. Set fields replace the
// matching option of the loaded format document.
type FormatOverrides struct {
	VideoCodec    string
	AudioCodec    string
	Format        string
	Size          string // "WxH"
	Aspect        string // "W:H" or decimal
	FPS           float64
	AutoAdjust    bool
	NoForceAspect bool
	DisableAudio  bool
	DisableVideo  bool
}

// Apply merges o into spec. --auto-adjust and --no-force-aspect also act on
// dimensions that came from the format document.
func (o FormatOverrides) Apply(spec *format.Spec) error {
	if o.VideoCodec != "" {
		spec.SetVideoCodec(o.VideoCodec)
	}
	if o.AudioCodec != "" {
		spec.SetAudioCodec(o.AudioCodec)
	}
	if o.Format != "" {
		spec.SetFormat(o.Format)
	}
	if o.FPS != 0 {
		if err := spec.SetVideoFrameRate(o.FPS); err != nil {
			return err
		}
	}
	if o.DisableAudio {
		spec.DisableAudio()
	}
	if o.DisableVideo {
		spec.DisableVideo()
	}

	cur := spec.Options()
	switch {
	case o.Size != "":
		w, h, err := ParseSize(o.Size)
		if err != nil {
			return err
		}
		if err := spec.SetVideoDimensions(w, h, o.AutoAdjust, !o.NoForceAspect); err != nil {
			return err
		}
	case cur.VideoDimensions != nil && (o.AutoAdjust || o.NoForceAspect):
		d := *cur.VideoDimensions
		if o.AutoAdjust {
			d.AutoAdjust = true
		}
		if o.NoForceAspect {
			d.ForceAspect = false
		}
		if err := spec.SetVideoDimensions(d.Width, d.Height, d.AutoAdjust, d.ForceAspect); err != nil {
			return err
		}
	}

	if o.Aspect != "" {
		auto := o.AutoAdjust
		if cur.VideoAspectRatio != nil {
			auto = auto || cur.VideoAspectRatio.AutoAdjust
		}
		if err := spec.SetVideoAspectRatio(o.Aspect, auto); err != nil {
			return err
		}
	}
	return nil
}

// ParseSize parses "WxH" (also "W:H" or "W*H") into positive dimensions.
func ParseSize(s string) (int, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var ws, hs string
	var ok bool
	for _, sep := range []string{"x", ":", "*"} {
		if ws, hs, ok = strings.Cut(s, sep); ok {
			break
		}
	}
	if !ok {
		return 0, 0, errors.Wrapf(format.ErrConfiguration, "invalid size %q (use WxH, e.g. 640x360)", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.Wrapf(format.ErrConfiguration, "invalid size %q (use WxH, e.g. 640x360)", s)
	}
	return w, h, nil
}
