package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Merge a browser highScores export into the leaderboard",
	Long: `Reads a JSON array of {"name": ..., "score": ...} objects, the format
the browser game keeps in localStorage under "highScores", and adds
every valid entry to the leaderboard. Use "-" to read standard input.

Examples:
  snake import highScores.json
  pbpaste | snake import -`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the leaderboard as browser-compatible JSON",
	Long: `Writes the ranked leaderboard as a JSON array of {"name", "score"}
objects. Without a file argument the JSON goes to standard output.

Examples:
  snake export
  snake export highScores.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func runImport(_ *cobra.Command, args []string) {
	data, err := readInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	added, total, board, err := importScores(context.Background(), be, data)
	be.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d of %d entries (%d on the leaderboard)\n", added, total, board.Len())
}

// importScores merges browser JSON into the stored leaderboard and saves it.
func importScores(ctx context.Context, be *backend, data []byte) (added, total int, board *leaderboard.Board, err error) {
	entries, err := leaderboard.JSONCodec{}.Unmarshal(data)
	if err != nil {
		return 0, 0, nil, err
	}

	board = be.load(ctx)
	added = board.Merge(entries)
	if err := be.repo.Save(ctx, board); err != nil {
		return 0, len(entries), nil, err
	}
	return added, len(entries), board, nil
}

func runExport(_ *cobra.Command, args []string) {
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

	dest := ""
	if len(args) > 0 {
		dest = args[0]
	}
	path, err := exportScores(context.Background(), be, dest, os.Stdout)
	be.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if path != "" {
		fmt.Printf("Exported leaderboard to %s\n", path)
	}
}

// exportScores writes the leaderboard as browser JSON to dest, or to stdout
// when dest is empty or "-". It returns the written file path, if any.
func exportScores(ctx context.Context, be *backend, dest string, stdout io.Writer) (string, error) {
	data, err := leaderboard.JSONCodec{}.Marshal(be.load(ctx).Ranked())
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	if dest == "" || dest == "-" {
		_, err := stdout.Write(data)
		return "", err
	}

	path, err := storage.ExpandPath(dest)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// readInput reads a file, or standard input for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	path, err := storage.ExpandPath(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
