package format

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a format file. Keys mirror the option
// names used throughout the resolver.
type document struct {
	DisableAudio     bool         `yaml:"disable_audio"`
	DisableVideo     bool         `yaml:"disable_video"`
	VideoCodec       string       `yaml:"video_codec"`
	AudioCodec       string       `yaml:"audio_codec"`
	Format           string       `yaml:"format"`
	VideoFrameRate   float64      `yaml:"video_frame_rate"`
	VideoAspectRatio *AspectRatio `yaml:"video_aspect_ratio"`
	VideoDimensions  *Dimensions  `yaml:"video_dimensions"`
}

// Load decodes a YAML format document. Unknown keys are rejected. An empty
// document yields an empty Spec. Padding is never read from input; it is
// derived by the resolver.
func Load(r io.Reader) (*Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrConfiguration, "decode format document: %v", err)
	}

	o := Options{
		DisableAudio:     doc.DisableAudio,
		DisableVideo:     doc.DisableVideo,
		VideoCodec:       strings.TrimSpace(doc.VideoCodec),
		AudioCodec:       strings.TrimSpace(doc.AudioCodec),
		Format:           strings.ToLower(strings.TrimSpace(doc.Format)),
		VideoFrameRate:   doc.VideoFrameRate,
		VideoAspectRatio: doc.VideoAspectRatio,
		VideoDimensions:  doc.VideoDimensions,
	}
	return FromOptions(o)
}

// LoadFile reads and decodes the format document at path.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open format file")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}
