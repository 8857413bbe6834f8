// snake is a terminal Snake game with a persistent leaderboard.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake scores             - Show the leaderboard
//	snake variants           - List front-end variants
//	snake serve              - Start SSH server for remote play
//	snake import <file>      - Merge a browser highScores export
//	snake export [file]      - Write the leaderboard as browser JSON
//	snake config             - Print the default configuration
//
// Global flags:
//
//	--db <path>       - Set database path (default: ~/.snake/snake.db, "" for memory)
//	--seed <value>    - Set RNG seed for reproducible fruit placement
//	--codec <name>    - Leaderboard encoding: json or msgpack
//	--log-file <path> - Write logs to a file
//	--debug           - Enable debug logging
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/storage"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-snake/internal/variants/classic"
	_ "github.com/vovakirdan/tui-snake/internal/variants/touch"
)

var (
	// Global flags
	flagDBPath  string
	flagSeed    int64
	flagCodec   string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game. Steer the snake
to the fruit, grow longer, and avoid biting your own tail. The board
wraps around at the edges and the game speeds up as you score.

Available commands:
  play     - Play in this terminal
  scores   - View the leaderboard
  variants - List front-end variants
  serve    - Start SSH server for remote play
  import   - Merge a browser highScores export
  export   - Write the leaderboard as browser JSON
  config   - Print the default configuration

Examples:
  snake play --name Alice
  snake play --variant touch --difficulty hard
  snake serve --ssh :2222
  snake scores --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to scores database (empty keeps scores in memory)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagCodec, "codec", "json", "Leaderboard encoding: json or msgpack")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set, and to
// fallback otherwise. The returned close func releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := storage.ExpandPath(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// backend bundles the leaderboard repository with the optional SQLite store.
type backend struct {
	repo  *leaderboard.Repository
	store *storage.Store // nil when running in memory
}

// openBackend opens the database named by --db. When it cannot be opened the
// game continues with an in-memory store.
func openBackend(logger *log.Logger) (*backend, error) {
	codec, err := leaderboard.CodecByName(flagCodec)
	if err != nil {
		return nil, err
	}

	if flagDBPath == "" {
		return &backend{repo: leaderboard.NewRepository(storage.NewMemoryKV(), codec, logger)}, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("falling back to in-memory scores", "error", err)
		return &backend{repo: leaderboard.NewRepository(storage.NewMemoryKV(), codec, logger)}, nil
	}
	return &backend{repo: leaderboard.NewRepository(store, codec, logger), store: store}, nil
}

// load reads the leaderboard. A failing store is reported and yields an empty board.
func (b *backend) load(ctx context.Context) *leaderboard.Board {
	board, err := b.repo.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return board
}

func (b *backend) Close() {
	if b.store != nil {
		_ = b.store.Close()
	}
}
