package format

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Spec is the caller-owned, mutable output format. It holds a single Options
// value; setters validate their input and Options returns a detached
// snapshot. A Spec is not safe for concurrent use.
type Spec struct {
	opts Options
}

// NewSpec returns an empty Spec (no codecs, no geometry, both streams on).
func NewSpec() *Spec {
	return &Spec{}
}

// FromOptions builds a Spec around a copy of o after validating it.
func FromOptions(o Options) (*Spec, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Spec{opts: o.Clone()}, nil
}

// Options returns a deep-copied snapshot of the current options.
func (s *Spec) Options() Options {
	return s.opts.Clone()
}

// Clone returns an independent Spec with the same options.
func (s *Spec) Clone() *Spec {
	return &Spec{opts: s.opts.Clone()}
}

// Replace commits o as the current options.
func (s *Spec) Replace(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.opts = o.Clone()
	return nil
}

func (s *Spec) DisableAudio() { s.opts.DisableAudio = true }

func (s *Spec) DisableVideo() { s.opts.DisableVideo = true }

func (s *Spec) SetVideoCodec(codec string) { s.opts.VideoCodec = strings.TrimSpace(codec) }

func (s *Spec) SetAudioCodec(codec string) { s.opts.AudioCodec = strings.TrimSpace(codec) }

// SetFormat sets the container name; an empty name clears it.
func (s *Spec) SetFormat(name string) {
	s.opts.Format = strings.ToLower(strings.TrimSpace(name))
}

// SetVideoFrameRate sets the output frame rate. Zero clears it.
func (s *Spec) SetVideoFrameRate(fps float64) error {
	if err := validateFrameRate(fps); err != nil {
		return err
	}
	s.opts.VideoFrameRate = fps
	return nil
}

func (s *Spec) SetVideoAspectRatio(ratio string, autoAdjust bool) error {
	ar := AspectRatio{Ratio: strings.TrimSpace(ratio), AutoAdjust: autoAdjust}
	if err := ar.validate(); err != nil {
		return err
	}
	s.opts.VideoAspectRatio = &ar
	return nil
}

func (s *Spec) SetVideoDimensions(width, height int, autoAdjust, forceAspect bool) error {
	d := Dimensions{Width: width, Height: height, AutoAdjust: autoAdjust, ForceAspect: forceAspect}
	if err := d.validate(); err != nil {
		return err
	}
	s.opts.VideoDimensions = &d
	return nil
}

func (s *Spec) SetVideoPadding(top, right, bottom, left, paddedWidth, paddedHeight int) error {
	p := Padding{
		Top: top, Right: right, Bottom: bottom, Left: left,
		PaddedWidth: paddedWidth, PaddedHeight: paddedHeight,
	}
	if err := p.validate(); err != nil {
		return err
	}
	s.opts.VideoPadding = &p
	return nil
}

// Validate checks the invariants every committed snapshot must hold.
func (o Options) Validate() error {
	if err := validateFrameRate(o.VideoFrameRate); err != nil {
		return err
	}
	if o.VideoAspectRatio != nil {
		if err := o.VideoAspectRatio.validate(); err != nil {
			return err
		}
	}
	if o.VideoDimensions != nil {
		if err := o.VideoDimensions.validate(); err != nil {
			return err
		}
	}
	if o.VideoPadding != nil {
		if err := o.VideoPadding.validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateFrameRate(fps float64) error {
	if fps < 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return errors.Wrapf(ErrConfiguration, "invalid video frame rate %v", fps)
	}
	return nil
}

func (ar AspectRatio) validate() error {
	if ar.Ratio == "" {
		return errors.Wrap(ErrConfiguration, "aspect ratio must not be empty")
	}
	return nil
}

func (d Dimensions) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.Wrapf(ErrConfiguration, "invalid video dimensions %dx%d", d.Width, d.Height)
	}
	return nil
}

func (p Padding) validate() error {
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 || p.PaddedWidth < 0 || p.PaddedHeight < 0 {
		return errors.Wrapf(ErrConfiguration, "negative padding %+v", p)
	}
	return nil
}
