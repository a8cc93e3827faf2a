package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, "inputs:\n  - accountName: 男主播A\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Jobs != 2 {
		t.Fatalf("want jobs=2, got %d", c.Jobs)
	}
	if c.Listen != ":8080" || c.MaxBodyBytes != 64<<10 {
		t.Fatalf("unexpected server defaults: %+v", c)
	}
	if c.Log.Level != "info" || c.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", c.Log)
	}
	if len(c.Inputs) != 1 || c.Inputs[0].AccountName != "男主播A" {
		t.Fatalf("unexpected inputs: %+v", c.Inputs)
	}
}

func TestLoadInputs(t *testing.T) {
	body := `
timezone: Asia/Shanghai
inputs:
  - accountName: 男主播A
    frameworks:
      - {label: 信任, value: 信任}
      - 价格
    plannedPublishDate: [1748736000000]
    scriptName: Polo衫面料深度解析
    editorName: 张三
  - accountName: 女主播B
    frameworkMode: {label: 使用自定义选项, value: custom}
    customFrameworks: 性价比,实用性
    plannedPublishDate: "2025-06-02"
    scriptName: 夏季新品
`
	c, err := Load(writeConfig(t, body))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Inputs) != 2 {
		t.Fatalf("want 2 inputs, got %d", len(c.Inputs))
	}
	if got := len(c.Inputs[0].Frameworks); got != 2 {
		t.Fatalf("want 2 frameworks, got %d", got)
	}
	if !c.Inputs[1].FrameworkMode.Is("custom") {
		t.Fatalf("want custom mode, got %+v", c.Inputs[1].FrameworkMode)
	}
	loc, err := c.Location()
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc.String() != "Asia/Shanghai" {
		t.Fatalf("want Asia/Shanghai, got %s", loc)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VIDEONAME_JOBS", "5")
	t.Setenv("VIDEONAME_LISTEN", "127.0.0.1:9000")
	t.Setenv("VIDEONAME_LOG_FORMAT", "json")
	c, err := Load(writeConfig(t, "jobs: 3\nlisten: \":7000\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Jobs != 5 || c.Listen != "127.0.0.1:9000" || c.Log.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", c)
	}
}

func TestLoadDotEnvNextToConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(p, []byte("jobs: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("VIDEONAME_MAX_BODY_BYTES=1024\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	// godotenv sets process variables; clear it when the test ends.
	t.Setenv("VIDEONAME_MAX_BODY_BYTES", "")
	os.Unsetenv("VIDEONAME_MAX_BODY_BYTES")

	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.MaxBodyBytes != 1024 {
		t.Fatalf("want maxBodyBytes=1024, got %d", c.MaxBodyBytes)
	}
}

func TestLocationDefaultsToLocal(t *testing.T) {
	loc, err := Config{}.Location()
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("want time.Local, got %s", loc)
	}
}
