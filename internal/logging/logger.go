// Package logging provides the leveled console logger. Lines look like
// "2006-01-02 15:04:05 [LEVEL] message"; ERROR goes to stderr, everything
// else to stdout, and an optional log file receives uncolored copies.
package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/backmassage/muxshape/internal/config"
	"github.com/backmassage/muxshape/internal/term"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const labelKey = "label"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	log     *logrus.Logger
	console *consoleHook
	file    *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		log: logrus.New(),
		console: &consoleHook{
			stdout: os.Stdout,
			stderr: os.Stderr,
			format: &lineFormatter{color: term.Enabled()},
		},
	}
	l.log.SetOutput(io.Discard)
	l.log.SetLevel(logrus.DebugLevel)
	l.log.AddHook(l.console)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		l.file = f
		l.log.AddHook(&fileHook{w: f, format: &lineFormatter{}})
	}
	return l, nil
}

// SetOutput redirects console output; used by tests.
func (l *Logger) SetOutput(stdout, stderr io.Writer) {
	l.console.mu.Lock()
	defer l.console.mu.Unlock()
	l.console.stdout = stdout
	l.console.stderr = stderr
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(labelKey, "SUCCESS").Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.log.Debugf(format, args...)
}

// --- logrus plumbing ---

// lineFormatter renders "<ts> [LEVEL] msg\n", coloring the level tag when
// color is set.
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	label, tint := levelLabel(e)
	var b bytes.Buffer
	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	b.WriteByte(' ')
	if f.color && tint != "" {
		b.WriteString(tint + "[" + label + "]" + term.NC)
	} else {
		b.WriteString("[" + label + "]")
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelLabel(e *logrus.Entry) (string, string) {
	if s, ok := e.Data[labelKey].(string); ok && s == "SUCCESS" {
		return s, term.Green
	}
	switch e.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG", term.Cyan
	case logrus.WarnLevel:
		return "WARN", term.Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR", term.Red
	default:
		return "INFO", term.Blue
	}
}

type consoleHook struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	format logrus.Formatter
}

func (h *consoleHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *consoleHook) Fire(e *logrus.Entry) error {
	line, err := h.format.Format(e)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.stdout
	if e.Level <= logrus.ErrorLevel {
		out = h.stderr
	}
	_, err = out.Write(line)
	return err
}

type fileHook struct {
	mu     sync.Mutex
	w      io.Writer
	format logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(e *logrus.Entry) error {
	line, err := h.format.Format(e)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}
