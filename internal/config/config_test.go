package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultsToSettings(t *testing.T) {
	st, err := DefaultSnakeConfig().ToSettings()
	if err != nil {
		t.Fatalf("ToSettings() failed: %v", err)
	}
	if st != snake.DefaultSettings() {
		t.Errorf("ToSettings() = %+v, want %+v", st, snake.DefaultSettings())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  columns: 30\nspeed:\n  initial_interval: 100ms\nfruit:\n  policy: anywhere\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Columns != 30 || cfg.Board.Rows != 20 {
		t.Errorf("board = %+v, want 30x20", cfg.Board)
	}
	if cfg.Speed.InitialInterval != 100*time.Millisecond || cfg.Speed.SpeedUpEvery != 5 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
	if cfg.Fruit.Policy != "anywhere" {
		t.Errorf("policy = %q", cfg.Fruit.Policy)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path succeeded")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML succeeded")
	}
}

func TestResolveAppliesFilePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  preset: hard\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		override string
		interval time.Duration
		every    int
	}{
		{"file preset", "", 150 * time.Millisecond, 5},
		{"flag wins", "easy", 300 * time.Millisecond, 5},
		{"flag fixed", "fixed", 250 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(path, tt.override)
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			st, err := cfg.ToSettings()
			if err != nil {
				t.Fatalf("ToSettings() failed: %v", err)
			}
			if st.InitialInterval != tt.interval || st.SpeedUpEvery != tt.every {
				t.Errorf("settings interval %s every %d, want %s every %d",
					st.InitialInterval, st.SpeedUpEvery, tt.interval, tt.every)
			}
		})
	}

	if _, err := Resolve(path, "insane"); err == nil {
		t.Error("Resolve() accepted an unknown override")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval time.Duration
		every    int
	}{
		{DifficultyEasy, 300 * time.Millisecond, 5},
		{DifficultyNormal, 250 * time.Millisecond, 5},
		{DifficultyHard, 150 * time.Millisecond, 5},
		{DifficultyFixed, 250 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Speed.InitialInterval != tt.interval || cfg.Speed.SpeedUpEvery != tt.every {
				t.Errorf("speed = %+v, want interval %s every %d", cfg.Speed, tt.interval, tt.every)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny board", func(c *SnakeConfig) { c.Board.Rows = 1 }},
		{"zero cell", func(c *SnakeConfig) { c.Board.CellSize = 0 }},
		{"zero interval", func(c *SnakeConfig) { c.Speed.InitialInterval = 0 }},
		{"factor zero", func(c *SnakeConfig) { c.Speed.SpeedUpFactor = 0 }},
		{"factor above one", func(c *SnakeConfig) { c.Speed.SpeedUpFactor = 1.1 }},
		{"negative floor", func(c *SnakeConfig) { c.Speed.MinInterval = -time.Second }},
		{"unknown policy", func(c *SnakeConfig) { c.Fruit.Policy = "sometimes" }},
		{"unknown preset", func(c *SnakeConfig) { c.Difficulty.Preset = "insane" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted invalid config")
			}
			if _, err := cfg.ToSettings(); err == nil {
				t.Error("ToSettings() accepted invalid config")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

func TestSpeedSchedule(t *testing.T) {
	s := NewSpeedSchedule(DefaultSnakeConfig().Speed)

	tests := []struct {
		score    int
		level    int
		next     int
		interval time.Duration
	}{
		{0, 0, 5, 250 * time.Millisecond},
		{4, 0, 5, 250 * time.Millisecond},
		{5, 1, 10, 225 * time.Millisecond},
		{10, 2, 15, 202500 * time.Microsecond},
	}
	for _, tt := range tests {
		if got := s.Level(tt.score); got != tt.level {
			t.Errorf("Level(%d) = %d, want %d", tt.score, got, tt.level)
		}
		if got := s.NextAt(tt.score); got != tt.next {
			t.Errorf("NextAt(%d) = %d, want %d", tt.score, got, tt.next)
		}
		if got := s.Interval(tt.score); got != tt.interval {
			t.Errorf("Interval(%d) = %s, want %s", tt.score, got, tt.interval)
		}
	}

	fixed := NewSpeedSchedule(SpeedConfig{InitialInterval: time.Second, SpeedUpFactor: 0.5})
	if fixed.IsEnabled() || fixed.NextAt(100) != 0 || fixed.Interval(100) != time.Second {
		t.Error("schedule without speed_up_every changed the interval")
	}
}
