// Package check provides system diagnostics (the check command) and
// pre-run dependency validation (CheckDeps) for ffmpeg, ffprobe and the
// probe cache.
package check

import (
	"os/exec"
	"strings"

	"github.com/backmassage/muxshape/internal/config"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/pkg/errors"
)

// Sentinel errors for missing tools. CheckDeps returns ErrFfprobeNotFound
// and only warns with ErrFfmpegNotFound.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// lookPath and output are swapped out in tests.
var (
	lookPath = exec.LookPath
	output   = func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}
)

// RunCheck runs the interactive check flow: ffmpeg and ffprobe versions,
// the encoders still-sequence output relies on, and the probe cache. It is
// informational only and does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool("ffmpeg", log)
	checkTool("ffprobe", log)
	checkEncoders(log)
	checkCache(cfg, log)
}

// checkTool verifies name is on PATH and logs its version string.
func checkTool(name string, log Logger) {
	if _, err := lookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := output(name, "-version")
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	log.Success("%s: %s", name, firstLine(string(out)))
}

// checkEncoders reports the png and gif encoders.
func checkEncoders(log Logger) {
	out, err := output("ffmpeg", "-hide_banner", "-encoders")
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, enc := range []string{"png", "gif"} {
		if hasEncoder(string(out), enc) {
			log.Success("encoder %s available", enc)
		} else {
			log.Warn("encoder %s missing", enc)
		}
	}
}

// checkCache pings the Redis probe cache when one is configured.
func checkCache(cfg *config.Config, log Logger) {
	if cfg.Cache != config.CacheRedis {
		log.Info("probe cache: %s", cfg.Cache)
		return
	}
	rc, err := probe.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Error("probe cache: %v", err)
		return
	}
	defer rc.Close()
	log.Success("probe cache: redis at %s", cfg.Redis.Addr)
}

// CheckDeps is the pre-run validation. ffprobe must be on PATH unless only
// the native mp4 prober is used. A missing ffmpeg is only a warning: the
// emitted arguments are printed, not run.
func CheckDeps(cfg *config.Config, log Logger) error {
	if _, err := lookPath("ffmpeg"); err != nil {
		log.Warn("%v; printed commands cannot be run on this host", ErrFfmpegNotFound)
	}
	if cfg.Prober != config.ProberMP4 {
		if _, err := lookPath("ffprobe"); err != nil {
			return ErrFfprobeNotFound
		}
	}
	return nil
}

// --- internal helpers ---

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}

// hasEncoder scans `ffmpeg -encoders` output, whose rows look like
// " V....D png    PNG (Portable Network Graphics) image".
func hasEncoder(list, name string) bool {
	for _, line := range strings.Split(list, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}
