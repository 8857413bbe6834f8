package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagShowEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in snake.yaml. Save it to ~/.snake/configs/snake.yaml
or ./configs/snake.yaml and edit it, or pass it with --config.

With --effective, prints the settings the game would actually use
after the config search and --difficulty are applied.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowEffective, "effective", false, "Print the resolved settings instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagShowEffective {
		_, _ = os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	pw, ph := s.Grid().PixelSize()
	fmt.Printf("board:        %dx%d cells (%dx%d px canvas)\n", s.Columns, s.Rows, pw, ph)
	fmt.Printf("interval:     %s\n", s.InitialInterval)
	if s.SpeedUpEvery > 0 {
		fmt.Printf("speed-up:     x%g every %d points\n", s.SpeedUpFactor, s.SpeedUpEvery)
	} else {
		fmt.Println("speed-up:     off")
	}
	if s.MinInterval > 0 {
		fmt.Printf("min interval: %s\n", s.MinInterval)
	}
	fmt.Printf("fruit:        %s\n", s.FruitPolicy)
}
