// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Fruit      FruitConfig      `yaml:"fruit"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // Pixels per cell
}

// SpeedConfig defines the tick interval and its progression.
type SpeedConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	SpeedUpEvery    int           `yaml:"speed_up_every"`  // 0 disables speed-ups
	SpeedUpFactor   float64       `yaml:"speed_up_factor"` // Applied to the interval on each speed-up
	MinInterval     time.Duration `yaml:"min_interval"`    // 0 means no floor
}

// FruitConfig defines fruit placement.
type FruitConfig struct {
	Policy string `yaml:"policy"` // "anywhere" or "avoid_snake"
}

// DifficultyConfig selects a preset applied on top of the file values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialIntervalForPreset returns the starting interval a preset imposes,
// or 0 if the preset keeps the configured value.
func InitialIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 300 * time.Millisecond
	case DifficultyHard:
		return 150 * time.Millisecond
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables speed-ups.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects configurations the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Columns < 2 || c.Board.Rows < 2:
		return fmt.Errorf("board must be at least 2x2, got %dx%d", c.Board.Columns, c.Board.Rows)
	case c.Board.CellSize < 1:
		return fmt.Errorf("cell_size must be positive, got %d", c.Board.CellSize)
	case c.Speed.InitialInterval <= 0:
		return fmt.Errorf("initial_interval must be positive, got %s", c.Speed.InitialInterval)
	case c.Speed.SpeedUpEvery < 0:
		return fmt.Errorf("speed_up_every must not be negative, got %d", c.Speed.SpeedUpEvery)
	case c.Speed.SpeedUpFactor <= 0 || c.Speed.SpeedUpFactor > 1:
		return fmt.Errorf("speed_up_factor must be in (0, 1], got %g", c.Speed.SpeedUpFactor)
	case c.Speed.MinInterval < 0:
		return fmt.Errorf("min_interval must not be negative, got %s", c.Speed.MinInterval)
	}
	if _, err := snake.ParseFruitPolicy(c.Fruit.Policy); err != nil {
		return err
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// ToSettings converts the configuration into game settings.
func (c SnakeConfig) ToSettings() (snake.Settings, error) {
	if err := c.Validate(); err != nil {
		return snake.Settings{}, err
	}
	policy, _ := snake.ParseFruitPolicy(c.Fruit.Policy)
	return snake.Settings{
		Columns:         c.Board.Columns,
		Rows:            c.Board.Rows,
		CellSize:        c.Board.CellSize,
		InitialInterval: c.Speed.InitialInterval,
		SpeedUpEvery:    c.Speed.SpeedUpEvery,
		SpeedUpFactor:   c.Speed.SpeedUpFactor,
		MinInterval:     c.Speed.MinInterval,
		FruitPolicy:     policy,
	}, nil
}
