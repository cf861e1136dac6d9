package format

// Dimensions is a requested output size. AutoAdjust asks the resolver to fit
// the size against the source; ForceAspect pads to the requested canvas
// instead of shrinking the canvas to the source ratio.
type Dimensions struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	AutoAdjust  bool `yaml:"auto_adjust_dimensions"`
	ForceAspect bool `yaml:"force_aspect"`
}

// AspectRatio is a requested display ratio, either "W:H" or a decimal string.
type AspectRatio struct {
	Ratio      string `yaml:"ratio"`
	AutoAdjust bool   `yaml:"auto_adjust_dimensions"`
}

// Padding describes letterbox/pillarbox bars around the scaled video.
// PaddedWidth and PaddedHeight are the full canvas size.
type Padding struct {
	Top          int
	Right        int
	Bottom       int
	Left         int
	PaddedWidth  int
	PaddedHeight int
}

// Any reports whether at least one side carries padding.
func (p Padding) Any() bool {
	return p.Top > 0 || p.Right > 0 || p.Bottom > 0 || p.Left > 0
}

// Options is a snapshot of every output option. The With* helpers return a
// modified copy and never share pointer fields with the receiver, so stages
// of the resolver can pass snapshots along without aliasing.
type Options struct {
	DisableAudio bool
	DisableVideo bool

	VideoCodec string
	AudioCodec string
	Format     string // container/output type, e.g. "mp4", "gif"; empty = infer

	VideoFrameRate float64 // 0 = unset

	VideoAspectRatio *AspectRatio
	VideoDimensions  *Dimensions
	VideoPadding     *Padding
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	c := o
	if o.VideoAspectRatio != nil {
		ar := *o.VideoAspectRatio
		c.VideoAspectRatio = &ar
	}
	if o.VideoDimensions != nil {
		d := *o.VideoDimensions
		c.VideoDimensions = &d
	}
	if o.VideoPadding != nil {
		p := *o.VideoPadding
		c.VideoPadding = &p
	}
	return c
}

// WithDisabledAudio returns a copy with the audio stream disabled.
func (o Options) WithDisabledAudio() Options {
	c := o.Clone()
	c.DisableAudio = true
	return c
}

// WithDisabledVideo returns a copy with the video stream disabled.
func (o Options) WithDisabledVideo() Options {
	c := o.Clone()
	c.DisableVideo = true
	return c
}

func (o Options) WithVideoCodec(codec string) Options {
	c := o.Clone()
	c.VideoCodec = codec
	return c
}

func (o Options) WithAudioCodec(codec string) Options {
	c := o.Clone()
	c.AudioCodec = codec
	return c
}

// WithFormat returns a copy with the container format set; "" clears it.
func (o Options) WithFormat(name string) Options {
	c := o.Clone()
	c.Format = name
	return c
}

func (o Options) WithVideoFrameRate(fps float64) Options {
	c := o.Clone()
	c.VideoFrameRate = fps
	return c
}

func (o Options) WithVideoDimensions(d Dimensions) Options {
	c := o.Clone()
	c.VideoDimensions = &d
	return c
}

func (o Options) WithVideoPadding(p Padding) Options {
	c := o.Clone()
	c.VideoPadding = &p
	return c
}
