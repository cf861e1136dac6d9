package probe

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Prober inspects a media file.
type Prober interface {
	Probe(ctx context.Context, path string) (*ProbeResult, error)
}

// FFprobe runs a single ffprobe JSON call (-show_format -show_streams) per
// file through ffmpeg-go. A zero Timeout means no limit beyond ctx.
type FFprobe struct {
	Timeout time.Duration
}

// Probe runs ffprobe against path and returns the parsed result.
func (p FFprobe) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := p.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout == 0 || left < timeout {
			timeout = left
		}
	}

	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{"v": "quiet"})
	if err != nil {
		return nil, errors.Wrapf(err, "ffprobe %q", path)
	}
	return ParseJSON([]byte(out))
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse ffprobe JSON")
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	NbStreams  int    `json:"nb_streams"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type ffprobeStream struct {
	Index        int               `json:"index"`
	CodecName    string            `json:"codec_name"`
	CodecType    string            `json:"codec_type"`
	Profile      string            `json:"profile"`
	PixFmt       string            `json:"pix_fmt"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	BitRate      string            `json:"bit_rate"`
	AvgFrameRate string            `json:"avg_frame_rate"`
	RFrameRate   string            `json:"r_frame_rate"`
	Channels     int               `json:"channels"`
	SampleRate   string            `json:"sample_rate"`
	Disposition  map[string]int    `json:"disposition"`
	Tags         map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Format: FormatInfo{
			Filename:   raw.Format.Filename,
			NbStreams:  raw.Format.NbStreams,
			FormatName: raw.Format.FormatName,
			Duration:   parseFloat(raw.Format.Duration),
			Size:       parseInt64(raw.Format.Size),
			BitRate:    parseInt64(raw.Format.BitRate),
		},
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			vs := VideoStream{
				Index:         s.Index,
				Codec:         s.CodecName,
				Profile:       s.Profile,
				PixFmt:        s.PixFmt,
				Width:         s.Width,
				Height:        s.Height,
				BitRate:       parseInt64(s.BitRate),
				IsAttachedPic: s.Disposition["attached_pic"] == 1,
				AvgFrameRate:  s.AvgFrameRate,
				RFrameRate:    s.RFrameRate,
			}
			if !vs.IsAttachedPic && pr.PrimaryVideo == nil {
				pr.PrimaryVideo = &vs
			}
		case "audio":
			pr.AudioStreams = append(pr.AudioStreams, AudioStream{
				Index:      s.Index,
				Codec:      s.CodecName,
				Channels:   s.Channels,
				SampleRate: parseInt(s.SampleRate),
				Language:   s.Tags["language"],
			})
		}
	}
	return pr
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
