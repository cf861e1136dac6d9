package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/naming"
)

// Binary is the program name placed in front of the arguments.
const Binary = "ffmpeg"

// Build constructs the complete ffmpeg argument slice, binary first, for
// converting input into output with resolved options o.
//
// Order: preamble, input, stream selection and codecs, frame rate,
// geometry (scale+pad filter or -s), aspect, container, output. A
// still-sequence output is written with the image2 muxer and ffmpeg's
// %012d numbering.
func Build(input string, o format.Options, output string) []string {
	c := &Command{}

	// --- Preamble ---
	c.AddFlag(Binary).AddFlag("-hide_banner").AddFlag("-nostdin").AddFlag("-y")

	// --- Input ---
	c.Add("-i", input)

	// --- Streams and codecs ---
	if o.DisableVideo {
		c.AddFlag("-vn")
	} else if o.VideoCodec != "" {
		c.Add("-vcodec", o.VideoCodec)
	}
	if o.DisableAudio {
		c.AddFlag("-an")
	} else if o.AudioCodec != "" {
		c.Add("-acodec", o.AudioCodec)
	}

	if !o.DisableVideo {
		appendVideo(c, o)
	}

	// --- Container ---
	switch {
	case o.Format != "":
		c.Add("-f", o.Format)
	case naming.IsSequencePath(output):
		c.Add("-f", "image2")
	}

	// --- Output ---
	c.AddFlag(naming.FFmpegPattern(output))

	return c.Args()
}

func appendVideo(c *Command, o format.Options) {
	if o.VideoFrameRate > 0 {
		c.Add("-r", strconv.FormatFloat(o.VideoFrameRate, 'f', -1, 64))
	}

	if p := o.VideoPadding; p != nil && p.Any() {
		c.Add("-vf", PadFilter(*p))
	} else if d := o.VideoDimensions; d != nil {
		c.Add("-s", fmt.Sprintf("%dx%d", d.Width, d.Height))
	}

	if ar := o.VideoAspectRatio; ar != nil {
		c.Add("-aspect", ar.Ratio)
	}
}

// PadFilter scales the picture to the canvas minus the bars and pads it
// back out to the full canvas in black. Bars are rounded per side, so an
// odd leftover drops one pixel from the picture, never from the canvas.
func PadFilter(p format.Padding) string {
	w := p.PaddedWidth - p.Left - p.Right
	h := p.PaddedHeight - p.Top - p.Bottom
	return fmt.Sprintf("scale=%d:%d,pad=%d:%d:%d:%d:black", w, h, p.PaddedWidth, p.PaddedHeight, p.Left, p.Top)
}
