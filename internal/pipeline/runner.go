package pipeline

import (
	"context"
	"path/filepath"

	"github.com/backmassage/muxshape/internal/config"
	"github.com/backmassage/muxshape/internal/display"
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/logging"
	"github.com/backmassage/muxshape/internal/naming"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/backmassage/muxshape/internal/report"
)

// Run is the batch entry point. It discovers media files under cfg.Input,
// resolves each one sequentially against template into cfg.Output, and
// returns aggregate stats. Failures are logged, reported through rep, and
// do not stop the run.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, p probe.Prober, template *format.Spec, rep report.Reporter) RunStats {
	var stats RunStats

	files, err := Discover(cfg.Input)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	claims := naming.NewClaims()
	ext := OutputExtension(template.Options())
	flags := cfg.PlannerFlags()

	log.Info("Found %d files", stats.Total)
	for _, line := range display.DescribeOptions(template.Options()) {
		log.Debug(cfg.Verbose, "  %s", line)
	}

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(path))
		output := claims.Claim(path, naming.OutputPath(path, cfg.Output, ext))

		out, err := ResolveFile(ctx, p, path, output, template, flags)
		if err != nil {
			log.Error("%v", err)
			rep.Report(err, map[string]string{"input": path})
			stats.Failed++
			continue
		}

		logOutcome(cfg, log, out)
		stats.Resolved++
		if out.Result.StillSequence {
			stats.Sequences++
		}
		if out.Result.Options.VideoPadding != nil {
			stats.Padded++
		}
	}

	logSummary(log, &stats)
	return stats
}

// OutputExtension is the extension batch outputs get: the container name,
// or "" to keep each input's own extension when no format is set.
func OutputExtension(o format.Options) string {
	return o.Format
}

func logOutcome(cfg *config.Config, log *logging.Logger, out Outcome) {
	log.Debug(cfg.Verbose, "  Source: %s", display.FormatSource(out.Probe))
	for _, n := range out.Result.Notes {
		log.Debug(cfg.Verbose, "  %s", n)
	}
	log.Success("  -> %s", out.Result.Destination)
	log.Info("  %s", display.QuoteArgs(out.Args))
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("Resolved %d of %d (%d still sequences, %d padded)", stats.Resolved, stats.Total, stats.Sequences, stats.Padded)
	if stats.Failed > 0 {
		log.Warn("%d failed", stats.Failed)
	}
}
