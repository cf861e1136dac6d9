package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/muxshape/internal/config"
)

func quietLogger(t *testing.T, cfg config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	return l, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	l, out, _ := quietLogger(t, config.DefaultConfig())
	defer l.Close()
	l.Info("test message")
	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestLogger_LevelsAndStreams(t *testing.T) {
	l, out, errOut := quietLogger(t, config.DefaultConfig())
	defer l.Close()

	l.Success("done %d", 3)
	l.Warn("careful")
	l.Error("broke")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	for _, want := range []string{"[SUCCESS] done 3", "[WARN] careful", "[DEBUG] shown"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q: %q", want, out.String())
		}
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug(false) must not log")
	}
	if strings.Contains(out.String(), "broke") || !strings.Contains(errOut.String(), "[ERROR] broke") {
		t.Errorf("ERROR must go to stderr only; stdout=%q stderr=%q", out.String(), errOut.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "muxshape.log")
	l, _, _ := quietLogger(t, cfg)
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("\033[")) {
		t.Error("log file must not contain ANSI codes")
	}
}
