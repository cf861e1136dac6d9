package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/probe"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical file 700 MiB", 734003200, "700.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatBitrate(t *testing.T) {
	tests := []struct {
		name string
		bps  int64
		want string
	}{
		{"sub-megabit", 800000, "800 kbps"},
		{"exactly 1 Mbps", 1000000, "1.0 Mbps"},
		{"typical video", 8000000, "8.0 Mbps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBitrate(tt.bps); got != tt.want {
				t.Errorf("FormatBitrate(%d) = %q, want %q", tt.bps, got, tt.want)
			}
		})
	}
}

func TestFormatFPS(t *testing.T) {
	tests := []struct {
		fps  float64
		want string
	}{
		{0, "source"},
		{12, "12"},
		{12.5, "12.5"},
		{30000.0 / 1001.0, "29.97"},
		{23.976, "23.976"},
	}
	for _, tt := range tests {
		if got := FormatFPS(tt.fps); got != tt.want {
			t.Errorf("FormatFPS(%v) = %q, want %q", tt.fps, got, tt.want)
		}
	}
}

func TestFormatGeometry(t *testing.T) {
	if got := FormatDimensions(nil); got != "source" {
		t.Errorf("FormatDimensions(nil) = %q", got)
	}
	d := &format.Dimensions{Width: 640, Height: 360, AutoAdjust: true, ForceAspect: true}
	if got := FormatDimensions(d); got != "640x360 (auto-adjust, force-aspect)" {
		t.Errorf("FormatDimensions = %q", got)
	}
	if got := FormatPadding(&format.Padding{}); got != "none" {
		t.Errorf("FormatPadding(zero) = %q", got)
	}
	p := &format.Padding{Top: 140, Bottom: 140, PaddedWidth: 640, PaddedHeight: 640}
	if got := FormatPadding(p); got != "140/0/140/0 on 640x640" {
		t.Errorf("FormatPadding = %q", got)
	}
}

func TestFormatSource(t *testing.T) {
	pr := &probe.ProbeResult{
		Format:       probe.FormatInfo{Size: 1024 * 1024, BitRate: 8000000},
		PrimaryVideo: &probe.VideoStream{Codec: "h264", Width: 1920, Height: 1080, AvgFrameRate: "25/1"},
		AudioStreams: []probe.AudioStream{{Codec: "aac"}},
	}
	want := "h264 1920x1080 @ 25 fps, aac audio, 1.0 MiB, 8.0 Mbps"
	if got := FormatSource(pr); got != want {
		t.Errorf("FormatSource = %q, want %q", got, want)
	}
	if got := FormatSource(&probe.ProbeResult{}); got != "no video, no audio" {
		t.Errorf("FormatSource(empty) = %q", got)
	}
}

func TestDescribeOptions(t *testing.T) {
	lines := DescribeOptions(format.Options{DisableAudio: true, VideoCodec: "libx264", VideoFrameRate: 12})
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"video: libx264", "audio: disabled", "format: from output path", "frame rate: 12", "padding: none"} {
		if !strings.Contains(joined, want) {
			t.Errorf("DescribeOptions missing %q:\n%s", want, joined)
		}
	}
}

func TestQuoteArgs(t *testing.T) {
	got := QuoteArgs([]string{"ffmpeg", "-i", "my clip.mkv", "-vf", "scale=640:360,pad=640:640:0:140:black", "it's.mp4", ""})
	want := `ffmpeg -i 'my clip.mkv' -vf scale=640:360,pad=640:640:0:140:black 'it'\''s.mp4' ''`
	if got != want {
		t.Errorf("QuoteArgs =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintBanner(t *testing.T) {
	var b bytes.Buffer
	PrintBanner(&b)
	if b.Len() == 0 {
		t.Error("banner is empty")
	}
}
