package probe

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/pkg/errors"
)

// MP4 probes ISO-BMFF files (mp4, m4v, mov) by reading the moov box.
// Fragmented files carry no sample table in moov, so their frame rate is
// reported as unknown.
type MP4 struct{}

// Probe decodes the box structure of path.
func (MP4) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	moov, err := decodeMoov(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode mp4 %q", path)
	}

	pr := resultFromMoov(moov)
	pr.Format.Filename = path
	if fi, err := f.Stat(); err == nil {
		pr.Format.Size = fi.Size()
	}
	return pr, nil
}

// decodeMoov reads the box tree without loading mdat payloads, so large
// masters cost only their header size.
func decodeMoov(r io.ReadSeeker) (*mp4.MoovBox, error) {
	mf, err := mp4.DecodeFile(r, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return nil, err
	}
	moov := mf.Moov
	if moov == nil && mf.Init != nil {
		moov = mf.Init.Moov
	}
	if moov == nil {
		return nil, errors.New("no moov box")
	}
	return moov, nil
}

func resultFromMoov(moov *mp4.MoovBox) *ProbeResult {
	pr := &ProbeResult{Format: FormatInfo{FormatName: "mov,mp4,m4a,3gp,3g2,mj2"}}

	for i, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
			continue
		}
		pr.Format.NbStreams++

		switch trak.Mdia.Hdlr.HandlerType {
		case "vide":
			if pr.PrimaryVideo != nil {
				continue
			}
			vs := &VideoStream{Index: i, Codec: sampleEntryType(trak)}
			if trak.Tkhd != nil {
				vs.Width = int(trak.Tkhd.Width >> 16)
				vs.Height = int(trak.Tkhd.Height >> 16)
			}
			vs.AvgFrameRate = sampleRate(trak)
			pr.PrimaryVideo = vs
		case "soun":
			pr.AudioStreams = append(pr.AudioStreams, AudioStream{
				Index: i,
				Codec: sampleEntryType(trak),
			})
		}
	}
	return pr
}

// sampleRate derives "<samples*timescale>/<duration>" from the stts table.
func sampleRate(trak *mp4.TrakBox) string {
	if trak.Mdia.Mdhd == nil || trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stts == nil {
		return ""
	}
	stts := trak.Mdia.Minf.Stbl.Stts

	var samples, duration uint64
	for i, n := range stts.SampleCount {
		samples += uint64(n)
		if i < len(stts.SampleTimeDelta) {
			duration += uint64(n) * uint64(stts.SampleTimeDelta[i])
		}
	}
	if samples == 0 || duration == 0 {
		return ""
	}
	return formatRational(samples*uint64(trak.Mdia.Mdhd.Timescale), duration)
}

func sampleEntryType(trak *mp4.TrakBox) string {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ""
	}
	stsd := trak.Mdia.Minf.Stbl.Stsd
	if len(stsd.Children) == 0 {
		return ""
	}
	return stsd.Children[0].Type()
}

func formatRational(num, den uint64) string {
	return strconv.FormatUint(num, 10) + "/" + strconv.FormatUint(den, 10)
}
