package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseArgsDefault(t *testing.T) {
	got := ParseArgs([]string{})
	if got.ConfigPath != "config.yaml" || got.Command != CommandGenerate {
		t.Fatalf("unexpected args: %+v", got)
	}
}

func TestParseArgsShortFlag(t *testing.T) {
	got := ParseArgs([]string{"-c", "x.yaml"})
	if got.ConfigPath != "x.yaml" {
		t.Fatalf("want x.yaml, got %s", got.ConfigPath)
	}
}

func TestParseArgsLongFlag(t *testing.T) {
	got := ParseArgs([]string{"--config", "x.yaml"})
	if got.ConfigPath != "x.yaml" {
		t.Fatalf("want x.yaml, got %s", got.ConfigPath)
	}
}

func TestParseArgsMissingValueFallsBack(t *testing.T) {
	got := ParseArgs([]string{"--config"})
	if got.ConfigPath != "config.yaml" {
		t.Fatalf("want config.yaml, got %s", got.ConfigPath)
	}
}

func TestParseArgsCommand(t *testing.T) {
	got := ParseArgs([]string{"-c", "serve.yaml", "serve"})
	if got.Command != CommandServe || got.ConfigPath != "serve.yaml" {
		t.Fatalf("unexpected args: %+v", got)
	}
	got = ParseArgs([]string{"serve", "--config", "x.yaml", "extra"})
	if got.Command != CommandServe || got.ConfigPath != "x.yaml" {
		t.Fatalf("unexpected args: %+v", got)
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogOptions{Out: &buf})
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	l.Success("s")
	l.Failure("f")

	out := buf.String()
	for _, want := range []string{
		`level=info msg=i`,
		`level=warning msg=w`,
		`level=error msg=e`,
		`level=info msg=s status=ok`,
		`level=warning msg=f status=fail`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestLoggerLevelAndJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LogOptions{Out: &buf, Level: "warn", Format: "json"})
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("missing json output: %q", out)
	}
}

func TestLoggerWritesFile(t *testing.T) {
	var buf bytes.Buffer
	p := filepath.Join(t.TempDir(), "videoname.log")
	l := NewLogger(LogOptions{Out: &buf, File: p})
	l.Info("to file")

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "to file") {
		t.Fatalf("missing file output: %q", b)
	}
}

func TestProgressStepAndStop(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress("inputs", 3)
	p.out = &buf
	p.enabled = true

	p.Step()
	p.Step()
	p.Stop()

	out := buf.String()
	if !strings.Contains(out, "inputs: 2/3") {
		t.Fatalf("missing progress output: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("stop should print newline: %q", out)
	}
}

func TestProgressDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress("inputs", 1)
	p.out = &buf
	p.enabled = false
	p.Step()
	p.Stop()
	if buf.Len() != 0 {
		t.Fatalf("want no output, got %q", buf.String())
	}
}

func TestExit(t *testing.T) {
	if os.Getenv("VIDEONAME_TEST_EXIT") == "1" {
		Exit(7)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExit")
	cmd.Env = append(os.Environ(), "VIDEONAME_TEST_EXIT=1")
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected process to exit with code")
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("want exit code 7, got %d", exitErr.ExitCode())
	}
}
