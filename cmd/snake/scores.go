package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores, highest first.

With --interactive, opens a full-screen view of the leaderboard and the
recent game history side by side in tabs.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show (0 = all)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and game history interactively")
}

func runScores(_ *cobra.Command, _ []string) {
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
	defer be.Close()

	ctx := context.Background()
	board := be.load(ctx)
	entries := board.Top(flagLimit)

	var (
		games []storage.GameRecord
		stats *storage.Stats
	)
	if be.store != nil {
		if games, err = be.store.RecentGames(ctx, 50); err != nil {
			logger.Warn("cannot read game history", "error", err)
		}
		if stats, err = be.store.Stats(ctx); err != nil {
			logger.Warn("cannot read game stats", "error", err)
		}
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(entries, games, stats, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Name", "Score", "When")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "----", "-----", "----")

	for i, e := range entries {
		when := "-"
		if !e.PlayedAt.IsZero() {
			when = humanize.Time(e.PlayedAt)
		}
		fmt.Printf("  %-4d  %-20s  %-6d  %s\n", i+1, e.Name, e.Score, when)
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("%s games played, average score %.1f, last played %s\n",
			humanize.Comma(int64(stats.GamesCount)), stats.AvgScore, humanize.Time(stats.LastPlayed))
	}
}
