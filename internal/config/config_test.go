package config

import (
	"testing"
	"time"

	"github.com/backmassage/muxshape/internal/format"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/library", "/media/library"},
		{"single trailing slash", "/media/library/", "/media/library"},
		{"multiple trailing slashes", "/media/library///", "/media/library"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"relative with slash", "output/", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Enums(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"prober ffprobe", func(c *Config) { c.Prober = ProberFFprobe }, false},
		{"prober mp4", func(c *Config) { c.Prober = ProberMP4 }, false},
		{"prober unknown", func(c *Config) { c.Prober = "mediainfo" }, true},
		{"cache none", func(c *Config) { c.Cache = CacheNone }, false},
		{"cache redis", func(c *Config) { c.Cache = CacheRedis }, false},
		{"cache redis without addr", func(c *Config) { c.Cache = CacheRedis; c.Redis.Addr = "" }, true},
		{"cache unknown", func(c *Config) { c.Cache = "disk" }, true},
		{"color empty", func(c *Config) { c.ColorMode = "" }, true},
		{"negative timeout", func(c *Config) { c.ProbeTimeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.ProbeTimeout = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequirePaths(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.RequirePaths("input and output"); err == nil {
		t.Error("RequirePaths() should fail when paths are empty")
	}
	cfg.Input = "/in/clip.mkv"
	cfg.Output = "/out/clip.gif"
	if err := cfg.RequirePaths("input and output"); err != nil {
		t.Errorf("RequirePaths() unexpected error: %v", err)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"separate directories", "/media/in", "/media/out", false},
		{"output equals input", "/media/lib", "/media/lib", true},
		{"output inside input", "/media/lib", "/media/lib/output", true},
		{"output is parent of input", "/media/lib/sub", "/media/lib", false},
		{"similar prefix not nested", "/media/library", "/media/library2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.input, tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Prober != ProberAuto {
		t.Errorf("default Prober = %q, want %q", cfg.Prober, ProberAuto)
	}
	if cfg.Cache != CacheMemory {
		t.Errorf("default Cache = %q, want %q", cfg.Cache, CacheMemory)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.ProbeTimeout != 30*time.Second {
		t.Errorf("default ProbeTimeout = %s, want 30s", cfg.ProbeTimeout)
	}
	if cfg.Verbose {
		t.Error("default Verbose should be false")
	}
}

func TestPlannerFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AudioOnly = true
	cfg.Split = true
	f := cfg.PlannerFlags()
	if !f.ExtractingAudioOnly || f.ExtractingSingleFrame || !f.Splitting {
		t.Errorf("PlannerFlags() = %+v", f)
	}
}

// --- Environment ---

func TestLoadEnv(t *testing.T) {
	t.Setenv("MUXSHAPE_PROBER", "ffprobe")
	t.Setenv("MUXSHAPE_CACHE", "redis")
	t.Setenv("MUXSHAPE_PROBE_TIMEOUT", "5s")
	t.Setenv("MUXSHAPE_REDIS_ADDR", "cache.internal:6380")
	t.Setenv("MUXSHAPE_REDIS_TTL", "1h")
	t.Setenv("MUXSHAPE_VERBOSE", "true")

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}

	if cfg.Prober != ProberFFprobe {
		t.Errorf("Prober = %q, want ffprobe", cfg.Prober)
	}
	if cfg.Cache != CacheRedis {
		t.Errorf("Cache = %q, want redis", cfg.Cache)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %s, want 5s", cfg.ProbeTimeout)
	}
	if cfg.Redis.Addr != "cache.internal:6380" || cfg.Redis.TTL != time.Hour {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Redis.PoolSize != 4 {
		t.Errorf("unset MUXSHAPE_REDIS_POOL_SIZE changed PoolSize to %d", cfg.Redis.PoolSize)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("unset MUXSHAPE_COLOR_MODE changed ColorMode to %q", cfg.ColorMode)
	}
}

func TestLoadEnv_IgnoresUnprefixed(t *testing.T) {
	t.Setenv("PASSWORD", "hunter2")
	t.Setenv("DB", "7")
	t.Setenv("ADDR", "elsewhere:6379")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("VERBOSE", "true")
	t.Setenv("CACHE", "redis")

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Redis != want.Redis {
		t.Errorf("Redis = %+v, want defaults %+v", cfg.Redis, want.Redis)
	}
	if cfg.Environment != want.Environment || cfg.Verbose || cfg.Cache != want.Cache {
		t.Errorf("bare variables leaked: env=%q verbose=%v cache=%q", cfg.Environment, cfg.Verbose, cfg.Cache)
	}
}

func TestLoadEnv_SplitWords(t *testing.T) {
	t.Setenv("MUXSHAPE_REDIS_PASSWORD", "s3cret")
	t.Setenv("MUXSHAPE_REDIS_DIAL_TIMEOUT", "2s")
	t.Setenv("MUXSHAPE_SENTRY_DSN", "https://key@example.invalid/1")
	t.Setenv("MUXSHAPE_LOG_FILE", "/tmp/muxshape.log")

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if cfg.Redis.Password != "s3cret" || cfg.Redis.DialTimeout != 2*time.Second {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.SentryDSN != "https://key@example.invalid/1" {
		t.Errorf("SentryDSN = %q", cfg.SentryDSN)
	}
	if cfg.LogFile != "/tmp/muxshape.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadEnv_BadValue(t *testing.T) {
	t.Setenv("MUXSHAPE_PROBE_TIMEOUT", "soon")
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg); err == nil {
		t.Error("LoadEnv() should fail on an unparseable duration")
	}
}

// --- Flags ---

func runFlags(t *testing.T, cfg *Config, args ...string) *cli.Context {
	t.Helper()
	var got *cli.Context
	app := &cli.App{
		Name:  "muxshape",
		Flags: append(GlobalFlags(cfg), FormatFlags(cfg)...),
		Action: func(c *cli.Context) error {
			got = c
			return nil
		},
	}
	if err := app.Run(append([]string{"muxshape"}, args...)); err != nil {
		t.Fatalf("Run(%v) error: %v", args, err)
	}
	return got
}

func TestFlags_KeepDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = "/var/log/muxshape.log"
	runFlags(t, &cfg)

	if cfg.LogFile != "/var/log/muxshape.log" {
		t.Errorf("LogFile = %q, flag default must not clear it", cfg.LogFile)
	}
	if cfg.Prober != ProberAuto || cfg.ProbeTimeout != 30*time.Second {
		t.Errorf("defaults changed: prober %q timeout %s", cfg.Prober, cfg.ProbeTimeout)
	}
}

func TestFlags_Parse(t *testing.T) {
	cfg := DefaultConfig()
	c := runFlags(t, &cfg,
		"-v", "--no-color", "--prober", "MP4", "--cache", "none", "--probe-timeout", "2s",
		"--size", "640x360", "--aspect", "16:9", "--fps", "12.5", "--auto-adjust",
		"--format", "gif", "--single-frame",
	)
	ApplyColorFlags(c, &cfg)

	if !cfg.Verbose || cfg.ColorMode != ColorNever {
		t.Errorf("verbose %v color %q", cfg.Verbose, cfg.ColorMode)
	}
	if cfg.Prober != ProberMP4 || cfg.Cache != CacheNone || cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("prober %q cache %q timeout %s", cfg.Prober, cfg.Cache, cfg.ProbeTimeout)
	}
	o := cfg.Overrides
	if o.Size != "640x360" || o.Aspect != "16:9" || o.FPS != 12.5 || !o.AutoAdjust || o.Format != "gif" {
		t.Errorf("Overrides = %+v", o)
	}
	if !cfg.SingleFrame {
		t.Error("SingleFrame should be set")
	}
}

func TestFlags_RejectsBadEnum(t *testing.T) {
	cfg := DefaultConfig()
	app := &cli.App{Name: "muxshape", Flags: GlobalFlags(&cfg), Action: func(*cli.Context) error { return nil }}
	if err := app.Run([]string{"muxshape", "--cache", "disk"}); err == nil {
		t.Error("--cache disk should be rejected")
	}
}

// --- Format overrides ---

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"640x360", 640, 360, false},
		{"1280X720", 1280, 720, false},
		{" 320:240 ", 320, 240, false},
		{"100*50", 100, 50, false},
		{"640", 0, 0, true},
		{"0x360", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, format.ErrConfiguration) {
				t.Errorf("ParseSize(%q) error kind = %v", tt.in, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestFormatOverrides_Apply(t *testing.T) {
	spec := format.NewSpec()
	o := FormatOverrides{
		VideoCodec: "libx264", AudioCodec: "aac", Format: "MP4",
		Size: "640x360", Aspect: "4:3", FPS: 25, AutoAdjust: true, DisableAudio: true,
	}
	if err := o.Apply(spec); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	got := spec.Options()
	if got.VideoCodec != "libx264" || got.AudioCodec != "aac" || got.Format != "mp4" {
		t.Errorf("codecs/format = %q %q %q", got.VideoCodec, got.AudioCodec, got.Format)
	}
	if got.VideoFrameRate != 25 || !got.DisableAudio || got.DisableVideo {
		t.Errorf("fps %v disableAudio %v disableVideo %v", got.VideoFrameRate, got.DisableAudio, got.DisableVideo)
	}
	want := format.Dimensions{Width: 640, Height: 360, AutoAdjust: true, ForceAspect: true}
	if got.VideoDimensions == nil || *got.VideoDimensions != want {
		t.Errorf("VideoDimensions = %+v, want %+v", got.VideoDimensions, want)
	}
	if got.VideoAspectRatio == nil || *got.VideoAspectRatio != (format.AspectRatio{Ratio: "4:3", AutoAdjust: true}) {
		t.Errorf("VideoAspectRatio = %+v", got.VideoAspectRatio)
	}
}

func TestFormatOverrides_AdjustsLoadedDimensions(t *testing.T) {
	spec := format.NewSpec()
	if err := spec.SetVideoDimensions(320, 240, false, true); err != nil {
		t.Fatal(err)
	}
	if err := (FormatOverrides{AutoAdjust: true, NoForceAspect: true}).Apply(spec); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	want := format.Dimensions{Width: 320, Height: 240, AutoAdjust: true, ForceAspect: false}
	if got := spec.Options().VideoDimensions; got == nil || *got != want {
		t.Errorf("VideoDimensions = %+v, want %+v", got, want)
	}
}

func TestFormatOverrides_Empty(t *testing.T) {
	spec := format.NewSpec()
	if err := (FormatOverrides{}).Apply(spec); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	got := spec.Options()
	if got.VideoDimensions != nil || got.VideoAspectRatio != nil || got.VideoCodec != "" {
		t.Errorf("empty overrides changed options: %+v", got)
	}
}

func TestFormatOverrides_BadSize(t *testing.T) {
	err := FormatOverrides{Size: "big"}.Apply(format.NewSpec())
	if !errors.Is(err, format.ErrConfiguration) {
		t.Errorf("Apply() error = %v, want configuration error", err)
	}
}
