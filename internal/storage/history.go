package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// GameRecord is one row of the finished-game history.
type GameRecord struct {
	ID        int64
	SessionID string
	Player    string
	Score     int
	Length    int
	Interval  time.Duration
	Ticks     uint64
	EndReason string
	StartedAt time.Time
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics over the history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Ensure Store implements ResultSaver
var _ snake.ResultSaver = (*Store)(nil)

// SaveGameResult implements snake.ResultSaver.
func (s *Store) SaveGameResult(ctx context.Context, r snake.GameResult) error {
	var startedAt any
	if !r.StartedAt.IsZero() {
		startedAt = r.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games
		 (session_id, player, score, length, interval_ms, ticks, end_reason, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.Player,
		r.Score,
		r.Length,
		float64(r.Interval)/float64(time.Millisecond),
		int64(r.Ticks),
		r.EndReason,
		startedAt,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// RecentGames returns the most recent finished games, newest first.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, player, score, length, interval_ms, ticks,
		        end_reason, started_at, duration_ms, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var (
			r          GameRecord
			intervalMs float64
			ticks      int64
			durationMs int64
			startedAt  any
			createdAt  any
		)
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Player,
			&r.Score,
			&r.Length,
			&intervalMs,
			&ticks,
			&r.EndReason,
			&startedAt,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Interval = time.Duration(intervalMs * float64(time.Millisecond))
		r.Ticks = uint64(ticks)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.StartedAt = parseTime(startedAt)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates the whole history. An empty history gives zero stats.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at FROM games ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
