package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "dragon:\n  wake_range: 200\n  default_count: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Dragon.WakeRange != 200 {
		t.Errorf("WakeRange = %v, expected 200", cfg.Dragon.WakeRange)
	}
	if cfg.Dragon.DefaultCount != 3 {
		t.Errorf("DefaultCount = %d, expected 3", cfg.Dragon.DefaultCount)
	}
	if cfg.Player.MaxSpeed != 7 {
		t.Errorf("unrelated keys should keep defaults, MaxSpeed = %v", cfg.Player.MaxSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Player.MaxSpeed = 0
	cfg.Dragon.DefaultCount = 9
	cfg.Controls.HoldTicks = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	for _, want := range []string{"player.max_speed", "dragon.default_count", "controls.hold_ticks"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestScrollThresh(t *testing.T) {
	w := Default().World
	if got := w.ScrollThresh(); got != 266 {
		t.Errorf("ScrollThresh() = %v, expected 266", got)
	}
	w.ScrollThreshold = 0
	if got := w.ScrollThresh(); got != 266 {
		t.Errorf("derived ScrollThresh() = %v, expected 266", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		dragons int
		fireMS  int
	}{
		{DifficultyEasy, 1, 2500},
		{DifficultyNormal, 2, 2000},
		{DifficultyHard, 3, 1500},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			p, err := ParsePreset(string(tc.preset))
			if err != nil {
				t.Fatalf("ParsePreset() error: %v", err)
			}
			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Dragon.DefaultCount != tc.dragons {
				t.Errorf("DefaultCount = %d, expected %d", cfg.Dragon.DefaultCount, tc.dragons)
			}
			if cfg.Dragon.FireIntervalMS != tc.fireMS {
				t.Errorf("FireIntervalMS = %d, expected %d", cfg.Dragon.FireIntervalMS, tc.fireMS)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset() should reject unknown presets")
	}
}
