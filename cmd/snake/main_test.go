package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the config search at empty directories and resets flags.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagDifficulty = "", ""
	flagWidth, flagHeight = 0, 0
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		flagWidth, flagHeight = 0, 0
	})
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if cfg.Grid.Width != 50 || cfg.Grid.Height != 30 {
		t.Errorf("grid = %dx%d, expected 50x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.InitialIntervalMS != 150 {
		t.Errorf("initial interval = %d, expected 150", cfg.Speed.InitialIntervalMS)
	}
}

func TestLoadSettingsFlags(t *testing.T) {
	isolate(t)
	flagDifficulty = "hard"
	flagWidth, flagHeight = 20, 10

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 10 {
		t.Errorf("grid = %dx%d, expected 20x10", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.InitialIntervalMS != 110 || cfg.Speed.StepMS != 2 {
		t.Errorf("hard preset not applied: %+v", cfg.Speed)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	isolate(t)

	flagDifficulty = "insane"
	if _, err := loadSettings(); err == nil {
		t.Error("unknown difficulty should fail")
	}

	flagDifficulty = ""
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadSettings(); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	if !strings.Contains(out.String(), "width: 12") {
		t.Errorf("expected overridden width in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "height: 30") {
		t.Errorf("expected default height in output:\n%s", out.String())
	}
}
