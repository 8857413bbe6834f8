package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreKV(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Put(ctx, "highScores", []byte(`[{"name":"a","score":1}]`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put(ctx, "highScores", []byte(`[]`)); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "highScores")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if string(got) != "[]" {
		t.Errorf("Get() = %q, want overwritten value", got)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := leaderboard.NewRepository(store, leaderboard.MsgpackCodec{}, nil)
	board := leaderboard.New()
	board.Record("Alice", 5)
	board.Record("Bob", 9)
	if err := repo.Save(ctx, board); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	loaded, err := leaderboard.NewRepository(store, nil, nil).Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	ranked := loaded.Ranked()
	if len(ranked) != 2 || ranked[0].Name != "Bob" || ranked[1].Name != "Alice" {
		t.Errorf("reloaded board = %+v", ranked)
	}
}

func TestStoreGameHistory(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	results := []snake.GameResult{
		{SessionID: "s1", Player: "Alice", Score: 5, Length: 5, Interval: 225 * time.Millisecond, Ticks: 40, EndReason: "self_collision", StartedAt: started, Duration: 9 * time.Second},
		{SessionID: "s2", Player: "Bob", Score: 10, Length: 10, Interval: 202500 * time.Microsecond, Ticks: 90, EndReason: "self_collision", StartedAt: started, Duration: 20 * time.Second},
		{SessionID: "s3", Player: "Alice", Score: 0, Ticks: 3, EndReason: "board_full"},
	}
	for _, r := range results {
		if err := store.SaveGameResult(ctx, r); err != nil {
			t.Fatalf("SaveGameResult(%s) failed: %v", r.SessionID, err)
		}
	}

	if err := store.SaveGameResult(ctx, results[0]); err == nil {
		t.Error("duplicate session ID was accepted")
	}

	stats, err = store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 10 || stats.TotalScore != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 5 {
		t.Errorf("AvgScore = %v, want 5", stats.AvgScore)
	}

	recent, err := store.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "s3" || recent[1].SessionID != "s2" {
		t.Fatalf("RecentGames() = %+v", recent)
	}
	bob := recent[1]
	if bob.Interval != 202500*time.Microsecond {
		t.Errorf("Interval = %s, want 202.5ms", bob.Interval)
	}
	if bob.Duration != 20*time.Second || bob.Ticks != 90 {
		t.Errorf("Duration %s Ticks %d", bob.Duration, bob.Ticks)
	}
	if !bob.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", bob.StartedAt, started)
	}
	if !recent[0].StartedAt.IsZero() {
		t.Errorf("unset StartedAt read back as %v", recent[0].StartedAt)
	}
}

func TestMemoryKVCopies(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	value := []byte("abc")
	if err := kv.Put(ctx, "k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'x'

	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Errorf("Get() = %q, stored value was aliased", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.snake/snake.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".snake", "snake.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
