// Command muxshape resolves output formats against source media and prints
// the ffmpeg invocation that would produce them.
//
// Configuration is layered: defaults, then MUXSHAPE_* environment
// variables, then CLI flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/muxshape/internal/check"
	"github.com/backmassage/muxshape/internal/config"
	"github.com/backmassage/muxshape/internal/display"
	"github.com/backmassage/muxshape/internal/format"
	"github.com/backmassage/muxshape/internal/logging"
	"github.com/backmassage/muxshape/internal/pipeline"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/backmassage/muxshape/internal/report"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// errFailed signals a run that already logged its own errors.
var errFailed = errors.New("run failed")

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	// Bootstrap: the logger doesn't exist yet, so errors go to stderr.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "muxshape: %v\n", err)
		return 1
	}

	var log *logging.Logger
	defer func() {
		if log != nil {
			log.Close()
		}
	}()

	app := &cli.App{
		Name:    "muxshape",
		Usage:   "resolve output formats and geometry for ffmpeg",
		Version: config.Version,
		Flags:   config.GlobalFlags(&cfg),
		Before: func(c *cli.Context) error {
			config.ApplyColorFlags(c, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			l, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "resolve one source file against a format",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     config.FormatFlags(&cfg),
				Action: func(c *cli.Context) error {
					cfg.Input, cfg.Output = c.Args().Get(0), c.Args().Get(1)
					if err := cfg.RequirePaths("INPUT and OUTPUT files"); err != nil {
						return err
					}
					return resolveOne(c.Context, &cfg, log)
				},
			},
			{
				Name:      "batch",
				Usage:     "resolve every media file under a directory",
				ArgsUsage: "INPUT_DIR OUTPUT_DIR",
				Flags:     config.FormatFlags(&cfg),
				Action: func(c *cli.Context) error {
					cfg.Input = config.NormalizeDirArg(c.Args().Get(0))
					cfg.Output = config.NormalizeDirArg(c.Args().Get(1))
					if err := cfg.RequirePaths("INPUT_DIR and OUTPUT_DIR"); err != nil {
						return err
					}
					return batch(c.Context, &cfg, log)
				},
			},
			{
				Name:  "check",
				Usage: "report ffmpeg, ffprobe and cache availability",
				Action: func(c *cli.Context) error {
					display.PrintBanner(os.Stdout)
					check.RunCheck(&cfg, log)
					return nil
				},
			},
		},
	}

	// Cancel on SIGINT/SIGTERM so batch runs stop between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, args); err != nil {
		if err != errFailed {
			if log != nil {
				log.Error("%v", err)
			} else {
				fmt.Fprintf(os.Stderr, "muxshape: %v\n", err)
			}
		}
		return 1
	}
	return 0
}

// setup builds everything a resolve or batch run shares: the format
// template, the error reporter and the prober.
func setup(cfg *config.Config, log *logging.Logger) (*format.Spec, report.Reporter, probe.Prober, func(), error) {
	if err := check.CheckDeps(cfg, log); err != nil {
		return nil, nil, nil, nil, err
	}

	template, err := loadTemplate(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rep, err := report.New(cfg.SentryDSN, cfg.Environment, config.Version)
	if err != nil {
		log.Warn("Error reporting disabled: %v", err)
		rep = report.Noop{}
	}

	p, closeProber, err := pipeline.NewProber(cfg, func(err error) {
		log.Debug(cfg.Verbose, "probe cache: %v", err)
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cleanup := func() {
		if err := closeProber(); err != nil {
			log.Warn("Closing probe cache: %v", err)
		}
	}
	return template, rep, p, cleanup, nil
}

// loadTemplate reads the format document, if any, and applies the flag
// overrides on top of it.
func loadTemplate(cfg *config.Config) (*format.Spec, error) {
	spec := format.NewSpec()
	if cfg.FormatFile != "" {
		s, err := format.LoadFile(cfg.FormatFile)
		if err != nil {
			return nil, err
		}
		spec = s
	}
	if err := cfg.Overrides.Apply(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func resolveOne(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	template, rep, p, cleanup, err := setup(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := pipeline.ResolveFile(ctx, p, cfg.Input, cfg.Output, template, cfg.PlannerFlags())
	if err != nil {
		rep.Report(err, map[string]string{"input": cfg.Input})
		return err
	}

	log.Info("Source: %s", display.FormatSource(out.Probe))
	for _, line := range display.DescribeOptions(out.Result.Options) {
		log.Info("  %s", line)
	}
	for _, n := range out.Result.Notes {
		log.Debug(cfg.Verbose, "  %s", n)
	}
	log.Success("-> %s", out.Result.Destination)
	fmt.Fprintln(os.Stdout, display.QuoteArgs(out.Args))
	return nil
}

func batch(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	// Input must exist, output is created if needed, and output must not be
	// inside input.
	inputAbs, err := absPath(cfg.Input)
	if err != nil {
		return errors.Errorf("input not found: %s", cfg.Input)
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", cfg.Output)
	}
	outputAbs, err := absPath(cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "resolve output path %s", cfg.Output)
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return err
	}

	template, rep, p, cleanup, err := setup(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info("=== muxshape v%s ===", config.Version)
	log.Info("In:  %s", cfg.Input)
	log.Info("Out: %s", cfg.Output)

	stats := pipeline.Run(ctx, cfg, log, p, template, rep)
	if !stats.OK() || ctx.Err() != nil {
		return errFailed
	}
	return nil
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
