package probe

import (
	"context"
	"path/filepath"
	"strings"
)

var isoBMFFExtensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
}

// Auto reads ISO-BMFF files natively and falls back to ffprobe for every
// other container, or when the native read fails or finds no video.
type Auto struct {
	Native   Prober
	Fallback Prober
}

// NewAuto returns an Auto prober using MP4 and the given ffprobe settings.
func NewAuto(ff FFprobe) Auto {
	return Auto{Native: MP4{}, Fallback: ff}
}

func (a Auto) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	if isoBMFFExtensions[strings.ToLower(filepath.Ext(path))] {
		pr, err := a.Native.Probe(ctx, path)
		if err == nil && pr.PrimaryVideo != nil && pr.PrimaryVideo.Width > 0 {
			return pr, nil
		}
	}
	return a.Fallback.Probe(ctx, path)
}
