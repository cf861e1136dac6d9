package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/probe"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatBitrate returns a short label for a bitrate in bits per second
// (e.g. "800 kbps", "8.0 Mbps").
func FormatBitrate(bps int64) string {
	kbps := bps / 1000
	if kbps < 1000 {
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}

// FormatFPS renders a frame rate with at most three decimals; 0 is "source".
func FormatFPS(fps float64) string {
	if fps <= 0 {
		return "source"
	}
	s := strconv.FormatFloat(fps, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatDimensions renders "WxH" plus the fit flags; nil is "source".
func FormatDimensions(d *format.Dimensions) string {
	if d == nil {
		return "source"
	}
	s := fmt.Sprintf("%dx%d", d.Width, d.Height)
	var flags []string
	if d.AutoAdjust {
		flags = append(flags, "auto-adjust")
	}
	if d.ForceAspect {
		flags = append(flags, "force-aspect")
	}
	if len(flags) > 0 {
		s += " (" + strings.Join(flags, ", ") + ")"
	}
	return s
}

// FormatPadding renders padding as "top/right/bottom/left on WxH"; nil or
// all-zero padding is "none".
func FormatPadding(p *format.Padding) string {
	if p == nil || !p.Any() {
		return "none"
	}
	return fmt.Sprintf("%d/%d/%d/%d on %dx%d", p.Top, p.Right, p.Bottom, p.Left, p.PaddedWidth, p.PaddedHeight)
}

// FormatSource is a one-line description of a probed file.
func FormatSource(pr *probe.ProbeResult) string {
	parts := []string{}
	if v := pr.PrimaryVideo; v != nil {
		parts = append(parts, fmt.Sprintf("%s %s @ %s fps", v.Codec, pr.Resolution(), FormatFPS(pr.FrameRate())))
	} else {
		parts = append(parts, "no video")
	}
	if pr.HasAudio() {
		parts = append(parts, pr.AudioStreams[0].Codec+" audio")
	} else {
		parts = append(parts, "no audio")
	}
	if pr.Format.Size > 0 {
		parts = append(parts, FormatBytes(pr.Format.Size))
	}
	if pr.Format.BitRate > 0 {
		parts = append(parts, FormatBitrate(pr.Format.BitRate))
	}
	return strings.Join(parts, ", ")
}

// DescribeOptions lists resolved options as "key: value" lines in a fixed
// order.
func DescribeOptions(o format.Options) []string {
	stream := func(disabled bool, codec string) string {
		switch {
		case disabled:
			return "disabled"
		case codec == "":
			return "default codec"
		default:
			return codec
		}
	}
	container := o.Format
	if container == "" {
		container = "from output path"
	}
	aspect := "source"
	if ar := o.VideoAspectRatio; ar != nil {
		aspect = ar.Ratio
	}
	return []string{
		"video: " + stream(o.DisableVideo, o.VideoCodec),
		"audio: " + stream(o.DisableAudio, o.AudioCodec),
		"format: " + container,
		"frame rate: " + FormatFPS(o.VideoFrameRate),
		"aspect: " + aspect,
		"size: " + FormatDimensions(o.VideoDimensions),
		"padding: " + FormatPadding(o.VideoPadding),
	}
}

// QuoteArgs joins args into a line a POSIX shell would split back into
// the same words.
func QuoteArgs(args []string) string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = quote(a)
	}
	return strings.Join(out, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./:=,+@%", r):
		return false
	}
	return true
}
