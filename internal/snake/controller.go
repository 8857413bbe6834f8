package snake

import (
	"context"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// minInterval keeps repeated speed-ups from collapsing the period to zero.
const minInterval = time.Millisecond

// saveTimeout bounds persistence at game over.
const saveTimeout = 5 * time.Second

// NameRequiredMessage is shown when a game is started without a player name.
const NameRequiredMessage = "Please enter your name to start playing!"

// ValidationError reports input the controller refused. Message is meant for
// the player.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Ticker schedules periodic calls to Controller.Tick.
type Ticker interface {
	// Arm starts delivering ticks every interval until the handle is cancelled.
	Arm(interval time.Duration) TickHandle
}

// TickHandle cancels one armed Ticker. Cancel must be safe to call twice.
type TickHandle interface {
	Cancel()
}

// Renderer draws the session.
type Renderer interface {
	Render(s *Session)
	GameOver(s *Session)
}

// ScoreDisplay shows the running score.
type ScoreDisplay interface {
	ShowScore(score int)
}

// LeaderboardView shows the ranked leaderboard after a game.
type LeaderboardView interface {
	ShowLeaderboard(entries []leaderboard.Entry)
}

// BoardSaver persists the full leaderboard.
type BoardSaver interface {
	Save(ctx context.Context, b *leaderboard.Board) error
}

// ResultSaver records finished games.
type ResultSaver interface {
	SaveGameResult(ctx context.Context, r GameResult) error
}

// Deps are the controller's collaborators. Every field except Ticker is
// optional.
type Deps struct {
	Ticker      Ticker
	Renderer    Renderer
	Score       ScoreDisplay
	View        LeaderboardView
	Leaderboard BoardSaver
	Results     ResultSaver
	Logger      *log.Logger
	Seed        int64
	Clock       func() time.Time
}

// Controller runs the game loop. It is not safe for concurrent use; all calls
// must come from the goroutine that delivers ticks.
type Controller struct {
	settings Settings
	deps     Deps
	logger   *log.Logger
	rng      *rand.Rand
	board    *leaderboard.Board

	state   State
	session *Session
	handle  TickHandle
	paused  bool
}

// NewController creates an idle controller. A nil board starts empty.
func NewController(settings Settings, board *leaderboard.Board, deps Deps) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.FruitPolicy == "" {
		settings.FruitPolicy = FruitAvoidSnake
	}
	if board == nil {
		board = leaderboard.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		settings: settings,
		deps:     deps,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		board:    board,
	}
	c.Reset()
	return c, nil
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Session returns the current session. It is replaced on Reset and Start.
func (c *Controller) Session() *Session { return c.session }

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() Settings { return c.settings }

// Interval returns the current tick period.
func (c *Controller) Interval() time.Duration { return c.session.Interval }

// Leaderboard returns the in-memory leaderboard.
func (c *Controller) Leaderboard() *leaderboard.Board { return c.board }

// Paused reports whether a running game is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Reset stops any scheduled tick and prepares a fresh session.
func (c *Controller) Reset() {
	c.cancelTick()
	c.paused = false
	c.session = newSession("", c.settings)
	c.placeFruit()
	c.state = StateIdle
}

// Start begins a new game for name. An empty name returns a *ValidationError
// and leaves the controller untouched.
func (c *Controller) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Message: NameRequiredMessage}
	}

	c.Reset()
	s := c.session
	s.Player = name
	s.StartedAt = c.deps.Clock()
	c.state = StateRunning

	c.logger.Info("game started", "session", s.ID, "player", name, "interval", s.Interval)

	if c.deps.Score != nil {
		c.deps.Score.ShowScore(0)
	}
	if !s.Fruit.Placed {
		c.endGame(EndBoardFull)
		return nil
	}
	c.arm()
	if c.deps.Renderer != nil {
		c.deps.Renderer.Render(s)
	}
	return nil
}

// SetDirection steers the snake of a running game.
func (c *Controller) SetDirection(d core.Direction) bool {
	if c.state != StateRunning || c.paused {
		return false
	}
	return c.session.Snake.SetDirection(d)
}

// Tick advances a running game by one step.
func (c *Controller) Tick() {
	if c.state != StateRunning || c.paused {
		return
	}
	s := c.session
	s.Ticks++
	s.Snake.Move(s.Bounds)

	if s.Fruit.Placed && s.Snake.TryEat(s.Fruit.Position) {
		s.Score++
		if c.deps.Score != nil {
			c.deps.Score.ShowScore(s.Score)
		}
		if !c.placeFruit() && c.settings.FruitPolicy == FruitAvoidSnake {
			c.endGame(EndBoardFull)
			return
		}
		if c.settings.SpeedUpEvery > 0 && s.Score%c.settings.SpeedUpEvery == 0 {
			c.speedUp()
		}
	}

	if s.Snake.CheckSelfCollision() {
		c.endGame(EndSelfCollision)
		return
	}

	if c.deps.Renderer != nil {
		c.deps.Renderer.Render(s)
	}
}

// Pause suspends a running game by cancelling its ticker.
func (c *Controller) Pause() {
	if c.state != StateRunning || c.paused {
		return
	}
	c.cancelTick()
	c.paused = true
	c.logger.Debug("game paused", "session", c.session.ID)
}

// Resume re-arms the ticker of a paused game at the current interval.
func (c *Controller) Resume() {
	if c.state != StateRunning || !c.paused {
		return
	}
	c.paused = false
	c.arm()
	c.logger.Debug("game resumed", "session", c.session.ID)
}

// TogglePause flips between Pause and Resume.
func (c *Controller) TogglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

func (c *Controller) placeFruit() bool {
	s := c.session
	return s.Fruit.Relocate(c.rng, s.Bounds, c.settings.FruitPolicy.Forbidden(s.Snake))
}

func (c *Controller) speedUp() {
	s := c.session
	next := time.Duration(math.Round(float64(s.Interval) * c.settings.SpeedUpFactor))
	next = max(next, c.settings.MinInterval, minInterval)
	if next == s.Interval {
		return
	}
	c.logger.Debug("speed up", "session", s.ID, "score", s.Score, "from", s.Interval, "to", next)
	s.Interval = next
	c.arm()
}

// arm replaces the live handle with one at the current interval. The old
// handle is always cancelled first.
func (c *Controller) arm() {
	c.cancelTick()
	if c.deps.Ticker != nil {
		c.handle = c.deps.Ticker.Arm(c.session.Interval)
	}
}

func (c *Controller) cancelTick() {
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
}

func (c *Controller) endGame(reason EndReason) {
	c.cancelTick()
	s := c.session
	s.EndReason = reason
	s.EndedAt = c.deps.Clock()
	c.state = StateEnded

	if err := c.board.RecordAt(s.Player, s.Score, s.EndedAt); err != nil {
		c.logger.Warn("leaderboard record failed", "session", s.ID, "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if c.deps.Leaderboard != nil {
		if err := c.deps.Leaderboard.Save(ctx, c.board); err != nil {
			c.logger.Error("leaderboard save failed", "session", s.ID, "err", err)
		}
	}
	if c.deps.Results != nil {
		if err := c.deps.Results.SaveGameResult(ctx, s.Result()); err != nil {
			c.logger.Error("game history save failed", "session", s.ID, "err", err)
		}
	}

	c.logger.Info("game over",
		"session", s.ID,
		"player", s.Player,
		"score", s.Score,
		"reason", reason,
		"rank", c.board.RankOf(s.Player, s.Score),
		"ticks", s.Ticks,
	)

	if c.deps.View != nil {
		c.deps.View.ShowLeaderboard(c.board.Ranked())
	}
	if c.deps.Renderer != nil {
		c.deps.Renderer.GameOver(s)
	}
}
