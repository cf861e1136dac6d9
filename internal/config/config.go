// Package config holds runtime configuration: defaults, environment
// overrides, CLI flags, and validation.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/muxshape/internal/planner"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/pkg/errors"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ProberMode selects how source files are inspected.
type ProberMode string

const (
	ProberAuto    ProberMode = "auto"    // Native mp4/mov reader, ffprobe for the rest (default).
	ProberFFprobe ProberMode = "ffprobe" // Always ffprobe.
	ProberMP4     ProberMode = "mp4"     // Native ISO-BMFF reader only.
)

// CacheMode selects where probe results are cached.
type CacheMode string

const (
	CacheNone   CacheMode = "none"
	CacheMemory CacheMode = "memory" // Per-process (default).
	CacheRedis  CacheMode = "redis"  // Shared across runs; needs Redis.Addr.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadEnv], then CLI flags, before being passed by pointer to the
// packages that need it. Fields tagged ignored are never read from the
// environment; the rest are read as MUXSHAPE_<FIELD_NAME> only.
type Config struct {
	// Paths (set from positional args).
	Input      string `ignored:"true"`     // file for resolve, directory for batch
	Output     string `ignored:"true"`
	FormatFile string `split_words:"true"` // YAML format document; empty = flags only

	// Probing.
	Prober       ProberMode        `split_words:"true"`
	Cache        CacheMode         `split_words:"true"`
	ProbeTimeout time.Duration     `split_words:"true"` // Default: 30s. 0 = no limit.
	Redis        probe.RedisConfig `split_words:"true"`

	// Per-run format overrides and extraction modes.
	Overrides   FormatOverrides `ignored:"true"`
	AudioOnly   bool            `ignored:"true"`
	SingleFrame bool            `ignored:"true"`
	Split       bool            `ignored:"true"`

	// Error reporting.
	SentryDSN   string `split_words:"true"`
	Environment string `split_words:"true"` // Default: "development".

	// Display and logging.
	Verbose   bool      `split_words:"true"`
	ColorMode ColorMode `split_words:"true"` // Default: "auto".
	LogFile   string    `split_words:"true"` // Optional log file path.
}

// DefaultConfig returns a Config with every default set. Used as the base
// before [LoadEnv] and the CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		Prober:       ProberAuto,
		Cache:        CacheMemory,
		ProbeTimeout: 30 * time.Second,
		Redis: probe.RedisConfig{
			Addr:        "127.0.0.1:6379",
			PoolSize:    4,
			DialTimeout: 5 * time.Second,
			TTL:         24 * time.Hour,
		},
		Environment: "development",
		ColorMode:   ColorAuto,
	}
}

// PlannerFlags returns the extraction modes for the resolver.
func (c *Config) PlannerFlags() planner.Flags {
	return planner.Flags{
		ExtractingAudioOnly:   c.AudioOnly,
		ExtractingSingleFrame: c.SingleFrame,
		Splitting:             c.Split,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the cache
// backend has what it needs.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	switch c.Prober {
	case ProberAuto, ProberFFprobe, ProberMP4:
		// valid
	default:
		return errors.Errorf("invalid prober %q (use 'auto', 'ffprobe' or 'mp4')", c.Prober)
	}

	switch c.Cache {
	case CacheNone, CacheMemory:
		// valid
	case CacheRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis cache needs an address (--redis-addr or MUXSHAPE_REDIS_ADDR)")
		}
	default:
		return errors.Errorf("invalid cache %q (use 'none', 'memory' or 'redis')", c.Cache)
	}

	if c.ProbeTimeout < 0 {
		return errors.Errorf("probe timeout must not be negative (got %s)", c.ProbeTimeout)
	}
	return nil
}

// RequirePaths fails unless both positional paths are set.
func (c *Config) RequirePaths(what string) error {
	if c.Input == "" || c.Output == "" {
		return errors.Errorf("need exactly %s", what)
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents a batch run from
// discovering its own output files. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
