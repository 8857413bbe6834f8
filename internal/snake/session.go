package snake

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings holds the tunables for one game.
type Settings struct {
	Columns         int
	Rows            int
	CellSize        int           // Pixels per cell on a pixel canvas
	InitialInterval time.Duration // Tick period at score 0
	SpeedUpEvery    int           // Points per speed-up; 0 disables speed-ups
	SpeedUpFactor   float64       // Interval multiplier applied on each speed-up
	MinInterval     time.Duration // Floor for the interval; 0 means none
	FruitPolicy     FruitPolicy
}

// DefaultSettings matches the classic 400x400 px canvas with 20 px cells.
func DefaultSettings() Settings {
	return Settings{
		Columns:         20,
		Rows:            20,
		CellSize:        20,
		InitialInterval: 250 * time.Millisecond,
		SpeedUpEvery:    5,
		SpeedUpFactor:   0.9,
		FruitPolicy:     FruitAvoidSnake,
	}
}

// Validate checks the settings for values the loop cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Columns < 1 || s.Rows < 1:
		return fmt.Errorf("snake: board must be at least 1x1, got %dx%d", s.Columns, s.Rows)
	case s.InitialInterval <= 0:
		return fmt.Errorf("snake: initial interval must be positive, got %s", s.InitialInterval)
	case s.SpeedUpEvery < 0:
		return fmt.Errorf("snake: speed_up_every must not be negative, got %d", s.SpeedUpEvery)
	case s.SpeedUpFactor <= 0 || s.SpeedUpFactor > 1:
		return fmt.Errorf("snake: speed_up_factor must be in (0, 1], got %g", s.SpeedUpFactor)
	case s.MinInterval < 0:
		return fmt.Errorf("snake: min interval must not be negative, got %s", s.MinInterval)
	}
	if _, err := ParseFruitPolicy(string(s.FruitPolicy)); err != nil {
		return err
	}
	return nil
}

// Bounds returns the board bounds.
func (s Settings) Bounds() core.Bounds {
	return core.NewBounds(s.Columns, s.Rows)
}

// Grid returns the pixel grid for the board.
func (s Settings) Grid() core.Grid {
	return core.NewGrid(s.Columns, s.Rows, s.CellSize)
}

// EndReason says why a game finished.
type EndReason string

const (
	EndNone          EndReason = ""
	EndSelfCollision EndReason = "self_collision"
	EndBoardFull     EndReason = "board_full"
)

// Session is the state of a single game, from start to game over.
type Session struct {
	ID        uuid.UUID
	Player    string
	Snake     *Snake
	Fruit     Fruit
	Score     int
	Interval  time.Duration
	Ticks     uint64
	Bounds    core.Bounds
	StartedAt time.Time
	EndedAt   time.Time
	EndReason EndReason
}

func newSession(player string, st Settings) *Session {
	return &Session{
		ID:       uuid.New(),
		Player:   player,
		Snake:    NewSnake(core.Position{}, core.DirRight),
		Score:    0,
		Interval: st.InitialInterval,
		Bounds:   st.Bounds(),
	}
}

// Duration returns how long the game ran. It is zero before the game ends.
func (s *Session) Duration() time.Duration {
	if s.EndedAt.IsZero() || s.StartedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Result converts a finished session into a history record.
func (s *Session) Result() GameResult {
	return GameResult{
		SessionID: s.ID.String(),
		Player:    s.Player,
		Score:     s.Score,
		Length:    s.Snake.Len(),
		Interval:  s.Interval,
		Ticks:     s.Ticks,
		EndReason: string(s.EndReason),
		StartedAt: s.StartedAt,
		Duration:  s.Duration(),
	}
}

// GameResult is a finished game as stored in the history.
type GameResult struct {
	SessionID string
	Player    string
	Score     int
	Length    int
	Interval  time.Duration // Interval in effect when the game ended
	Ticks     uint64
	EndReason string
	StartedAt time.Time
	Duration  time.Duration
}
