package naming

import (
	"path/filepath"
	"strconv"
	"strings"
)

// SequenceIndexWidth is the zero-padded width of the frame counter in a
// still-sequence pattern.
const SequenceIndexWidth = 12

const (
	sequenceToken = "%12index"
	sequenceExt   = ".png"
)

// IsGIF reports whether path names a gif file (case-insensitive).
func IsGIF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gif")
}

// SequencePath rewrites <dir>/<name>.<ext> into <dir>/<name>-%12index.png.
// The directory is kept as given, so a bare "clip.gif" yields
// "./clip-%12index.png".
func SequencePath(dst string) string {
	dir := filepath.Dir(dst)
	base := filepath.Base(dst)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return dir + string(filepath.Separator) + name + "-" + sequenceToken + sequenceExt
}

// IsSequencePath reports whether path carries the still-sequence token.
func IsSequencePath(path string) bool {
	return strings.Contains(filepath.Base(path), sequenceToken)
}

// FFmpegPattern translates the still-sequence token into ffmpeg's image2
// numbering (%012d). Other paths are returned unchanged.
func FFmpegPattern(path string) string {
	return strings.Replace(path, sequenceToken, "%0"+strconv.Itoa(SequenceIndexWidth)+"d", 1)
}

// OutputPath maps an input file to <outputDir>/<stem>.<ext>. An empty ext
// keeps the input's extension.
func OutputPath(input, outputDir, ext string) string {
	base := filepath.Base(input)
	inExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, inExt)
	if ext == "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(outputDir, stem+"."+strings.TrimPrefix(ext, "."))
}
