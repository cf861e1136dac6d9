package config

// This file defines the urfave/cli flags. Global flags write straight into
// Config; their defaults are taken from cfg, so build them after LoadEnv.
// --color/--no-color are applied after parsing by ApplyColorFlags.

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Version is shown by --version; override at build time with
// -ldflags "-X github.com/backmassage/muxshape/internal/config.Version=...".
var Version = "0.1.0-dev"

func init() {
	// -v is --verbose here.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Aliases: []string{"V"}, Usage: "print version and exit"}
}

// GlobalFlags registers --verbose, --color, --no-color, --log, --prober,
// --cache, --probe-timeout, --redis-addr, --sentry-dsn.
func GlobalFlags(cfg *Config) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose output", Value: cfg.Verbose, Destination: &cfg.Verbose},
		&cli.BoolFlag{Name: "color", Usage: "force colored logs"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored logs"},
		&cli.StringFlag{Name: "log", Aliases: []string{"l"}, Usage: "append logs to `FILE`", Value: cfg.LogFile, Destination: &cfg.LogFile},
		&cli.GenericFlag{Name: "prober", Usage: "source prober: auto | ffprobe | mp4", Value: &proberValue{&cfg.Prober}},
		&cli.GenericFlag{Name: "cache", Usage: "probe cache: none | memory | redis", Value: &cacheValue{&cfg.Cache}},
		&cli.DurationFlag{Name: "probe-timeout", Usage: "limit per ffprobe call (0 = none)", Value: cfg.ProbeTimeout, Destination: &cfg.ProbeTimeout},
		&cli.StringFlag{Name: "redis-addr", Usage: "redis `HOST:PORT` for --cache redis", Value: cfg.Redis.Addr, Destination: &cfg.Redis.Addr},
		&cli.StringFlag{Name: "sentry-dsn", Usage: "report failures to Sentry", Value: cfg.SentryDSN, Destination: &cfg.SentryDSN},
	}
}

// FormatFlags registers the format document, per-run overrides and
// extraction modes used by resolve and batch.
func FormatFlags(cfg *Config) []cli.Flag {
	o := &cfg.Overrides
	return []cli.Flag{
		&cli.StringFlag{Name: "spec", Aliases: []string{"s"}, Usage: "YAML format document `FILE`", Value: cfg.FormatFile, Destination: &cfg.FormatFile},
		&cli.StringFlag{Name: "vcodec", Usage: "video codec", Destination: &o.VideoCodec},
		&cli.StringFlag{Name: "acodec", Usage: "audio codec", Destination: &o.AudioCodec},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output container (gif writes a png sequence)", Destination: &o.Format},
		&cli.StringFlag{Name: "size", Usage: "target size `WxH`", Destination: &o.Size},
		&cli.StringFlag{Name: "aspect", Usage: "aspect ratio `W:H` or decimal", Destination: &o.Aspect},
		&cli.Float64Flag{Name: "fps", Usage: "output frame rate", Destination: &o.FPS},
		&cli.BoolFlag{Name: "auto-adjust", Usage: "fit the size against the source (never upscale)", Destination: &o.AutoAdjust},
		&cli.BoolFlag{Name: "no-force-aspect", Usage: "shrink the canvas instead of padding", Destination: &o.NoForceAspect},
		&cli.BoolFlag{Name: "disable-audio", Usage: "drop the audio stream", Destination: &o.DisableAudio},
		&cli.BoolFlag{Name: "disable-video", Usage: "drop the video stream", Destination: &o.DisableVideo},
		&cli.BoolFlag{Name: "audio-only", Usage: "extract audio only", Destination: &cfg.AudioOnly},
		&cli.BoolFlag{Name: "single-frame", Usage: "extract a single frame", Destination: &cfg.SingleFrame},
		&cli.BoolFlag{Name: "split", Usage: "segmented output; copy codecs from the source when unset", Destination: &cfg.Split},
	}
}

// ApplyColorFlags copies --color/--no-color into cfg. --no-color wins.
func ApplyColorFlags(c *cli.Context, cfg *Config) {
	if c.Bool("no-color") {
		cfg.ColorMode = ColorNever
	} else if c.Bool("color") {
		cfg.ColorMode = ColorAlways
	}
}

// cli.Generic adapters so we can use enum types (ProberMode, CacheMode) as flags.

type proberValue struct{ p *ProberMode }

func (v *proberValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *proberValue) Set(s string) error {
	switch m := ProberMode(strings.ToLower(s)); m {
	case ProberAuto, ProberFFprobe, ProberMP4:
		*v.p = m
	default:
		return errors.Errorf("invalid prober %q (use 'auto', 'ffprobe' or 'mp4')", s)
	}
	return nil
}

type cacheValue struct{ p *CacheMode }

func (v *cacheValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *cacheValue) Set(s string) error {
	switch m := CacheMode(strings.ToLower(s)); m {
	case CacheNone, CacheMemory, CacheRedis:
		*v.p = m
	default:
		return errors.Errorf("invalid cache %q (use 'none', 'memory' or 'redis')", s)
	}
	return nil
}
