package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 20x20 board of
// 20 px cells starting at 250ms and speeding up by 10% every 5 points.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Columns:  20,
			Rows:     20,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			InitialInterval: 250 * time.Millisecond,
			SpeedUpEvery:    5,
			SpeedUpFactor:   0.9,
		},
		Fruit: FruitConfig{
			Policy: "avoid_snake",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
