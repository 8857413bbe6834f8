package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Layout constants for the side panel
const (
	sidePanelGap   = 3
	sidePanelWidth = 34
	maxNameLength  = 24
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type phase int

const (
	phaseName phase = iota
	phasePlaying
	phaseScores
)

// Options configure a game model.
type Options struct {
	Settings snake.Settings
	Variant  registry.Variant
	Board    *leaderboard.Board // Shared leaderboard; nil starts empty
	Saver    snake.BoardSaver   // Optional leaderboard persistence
	Results  snake.ResultSaver  // Optional game history
	Logger   *log.Logger
	Seed     int64
	Player   string // Prefills the name prompt
}

// display collects controller notifications for the next View.
type display struct {
	score  int
	final  []leaderboard.Entry // Ranking handed over at game over
	over   bool
	frames uint64
}

func (d *display) Render(*snake.Session) { d.frames++ }
func (d *display) GameOver(*snake.Session) { d.over = true }
func (d *display) ShowScore(score int) { d.score = score }
func (d *display) ShowLeaderboard(entries []leaderboard.Entry) { d.final = entries }

// Model is the Bubble Tea model for a single player: name prompt, game and
// leaderboard screens around one controller.
type Model struct {
	ctrl     *snake.Controller
	ticker   *Ticker
	display  *display
	variant  registry.Variant
	schedule *config.SpeedSchedule
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	screen   *core.Screen
	layout   Layout
	logger   *log.Logger

	phase    phase
	prev     phase // Screen to return to from the leaderboard
	errMsg   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and its controller.
func NewModel(opts Options) (Model, error) {
	if opts.Variant == nil {
		v, err := registry.Create(registry.DefaultID)
		if err != nil {
			return Model{}, err
		}
		opts.Variant = v
	}
	if opts.Board == nil {
		opts.Board = leaderboard.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ticker := NewTicker()
	disp := &display{}

	ctrl, err := snake.NewController(opts.Settings, opts.Board, snake.Deps{
		Ticker:      ticker,
		Renderer:    disp,
		Score:       disp,
		View:        disp,
		Leaderboard: opts.Saver,
		Results:     opts.Results,
		Logger:      opts.Logger,
		Seed:        opts.Seed,
	})
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.Prompt = "Name: "
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(opts.Player)
	ti.Focus()

	layout := NewLayout(opts.Settings.Columns, opts.Settings.Rows, opts.Variant.ShowDPad())

	return Model{
		ctrl:    ctrl,
		ticker:  ticker,
		display: disp,
		variant: opts.Variant,
		schedule: config.NewSpeedSchedule(config.SpeedConfig{
			InitialInterval: opts.Settings.InitialInterval,
			SpeedUpEvery:    opts.Settings.SpeedUpEvery,
			SpeedUpFactor:   opts.Settings.SpeedUpFactor,
			MinInterval:     opts.Settings.MinInterval,
		}),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		screen: core.NewScreen(layout.Width, layout.Height),
		layout: layout,
		logger: opts.Logger,
	}, nil
}

// Controller exposes the game controller.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Init starts the cursor blink on the name prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.phase {
		case phaseName:
			return m.handleNameKey(msg)
		case phaseScores:
			return m.handleScoresKey(msg)
		default:
			return m.handleGameKey(msg)
		}
	}

	if m.phase == phaseName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the game if the tick belongs to the live timer.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Live(msg.Gen) {
		return m, nil
	}
	m.ctrl.Tick()
	return m, m.ticker.After(msg.Gen)
}

// handleMouse steers with the on-screen D-pad.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if dir, ok := m.layout.HitTest(msg.X, msg.Y).Direction(); ok {
		m.ctrl.SetDirection(dir)
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.quit()
	case "enter":
		return m.startGame()
	case "tab":
		return m.openScores()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if dir, ok := action.Direction(); ok {
		m.ctrl.SetDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionPause:
		m.ctrl.TogglePause()
		return m, m.ticker.Flush()
	case core.ActionScoreboard:
		m.ctrl.Pause()
		return m.openScores()
	case core.ActionConfirm, core.ActionBack:
		if m.ctrl.State() == snake.StateEnded {
			m.phase = phaseName
			m.input.Reset()
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionScoreboard, core.ActionBack, core.ActionConfirm:
		m.phase = m.prev
		if m.phase == phaseName {
			return m, m.input.Focus()
		}
	}
	return m, nil
}

// startGame starts a game with the typed name, or shows why it cannot.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.display.over = false
	m.display.final = nil
	err := m.ctrl.Start(m.input.Value())
	var verr *snake.ValidationError
	if errors.As(err, &verr) {
		m.errMsg = verr.Message
		return m, nil
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.phase = phasePlaying
	m.input.Blur()
	return m, m.ticker.Flush()
}

func (m Model) openScores() (tea.Model, tea.Cmd) {
	m.prev = m.phase
	m.phase = phaseScores
	m.input.Blur()
	return m, nil
}

// quit stops the ticker so no tick outlives the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctrl.Reset()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseName:
		return m.nameView()
	case phaseScores:
		return m.scoresView()
	}
	return m.gameView()
}

func (m Model) nameView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SNAKE"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: start • tab: scores • esc: quit"))
	return b.String()
}

func (m Model) scoresView() string {
	height := m.height - 2
	if height <= 0 {
		height = 20
	}
	board := m.variant.RenderLeaderboard(m.ctrl.Leaderboard().Ranked(), m.highlight(), m.width, height)
	return board + "\n" + helpStyle.Render("tab/esc: back • q: quit")
}

func (m Model) gameView() string {
	s := m.ctrl.Session()

	m.screen.Clear()
	DrawHeader(m.screen, m.layout, m.hud())
	DrawBoard(m.screen, m.layout, s)
	if m.variant.ShowDPad() {
		DrawDPad(m.screen, m.layout)
	}

	if m.display.over {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Game Over! Your score: %d", s.Score),
		}
		if rank := rankIn(m.display.final, s.Player, s.Score); rank > 0 {
			lines = append(lines, fmt.Sprintf("Rank #%d of %d", rank, len(m.display.final)))
		}
		lines = append(lines, "", "enter: play again")
		DrawOverlay(m.screen, m.layout, lines, core.ColorBrightYellow)
	}

	view := RenderScreen(m.screen)

	// Show the leaderboard beside the board when there is room.
	if m.width >= m.layout.Width+sidePanelGap+sidePanelWidth {
		panel := m.variant.RenderLeaderboard(m.ctrl.Leaderboard().Ranked(), m.highlight(), sidePanelWidth, m.layout.Height)
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, strings.Repeat(" ", sidePanelGap), panel)
	}

	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) hud() HUD {
	s := m.ctrl.Session()
	best := m.display.score
	if e, ok := m.ctrl.Leaderboard().Best(); ok && e.Score > best {
		best = e.Score
	}

	h := HUD{
		Player:   s.Player,
		Score:    m.display.score,
		Best:     best,
		Interval: SpeedLine(m.schedule, s.Interval.String(), s.Score),
	}
	if m.ctrl.Paused() {
		h.Status = "PAUSED - press p to resume"
	}
	return h
}

// highlight returns the rank of the finished game, or 0 while playing.
func (m Model) highlight() int {
	if m.ctrl.State() != snake.StateEnded {
		return 0
	}
	s := m.ctrl.Session()
	return m.ctrl.Leaderboard().RankOf(s.Player, s.Score)
}

// rankIn returns the 1-based rank of the last entry matching name and score.
func rankIn(entries []leaderboard.Entry, name string, score int) int {
	rank := 0
	for i, e := range entries {
		if e.Name == name && e.Score == score {
			rank = i + 1
		}
	}
	return rank
}

// Run starts the Bubble Tea program for one local player.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses drive the D-pad
	)

	_, err = p.Run()
	return err
}
