package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagName       string
	flagVariant    string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start playing Snake.

Controls:
  Arrows/WASD/HJKL - Steer
  Mouse            - Click the on-screen pad (touch variant)
  P                - Pause
  Tab              - Leaderboard
  Enter            - Start / play again
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow (300ms per step), speeds up every 5 points
  normal - Start at the configured interval
  hard   - Start fast (150ms per step)
  fixed  - Never speed up

Examples:
  snake play
  snake play --name Alice
  snake play --difficulty hard
  snake play --variant touch
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (prefills the prompt)")
	playCmd.Flags().StringVar(&flagVariant, "variant", registry.DefaultID, "Front-end variant (see 'snake variants')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadSettings reads the config file and applies its difficulty preset,
// or the --difficulty override.
func loadSettings() (snake.Settings, error) {
	cfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		return snake.Settings{}, err
	}
	return cfg.ToSettings()
}

func runPlay(_ *cobra.Command, _ []string) {
	variant, err := registry.Create(flagVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake variants' to see available variants.")
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	be, err := openBackend(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Settings: settings,
		Variant:  variant,
		Board:    be.load(context.Background()),
		Saver:    be.repo,
		Logger:   logger,
		Seed:     flagSeed,
		Player:   defaultPlayerName(),
	}
	if be.store != nil {
		opts.Results = be.store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	be.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// defaultPlayerName prefers --name, then the login name.
func defaultPlayerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
