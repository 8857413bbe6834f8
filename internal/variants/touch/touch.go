// Package touch registers the pointer-friendly variant: a clickable direction
// pad under the board and a tabular leaderboard.
package touch

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry identifier.
const ID = "touch"

// Table layout constants
const (
	rankWidth  = 5
	scoreWidth = 7
	whenWidth  = 16
	minName    = 8
	chrome     = 4 // Border and padding around the table
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// Variant is the touch front end.
type Variant struct{}

func init() {
	registry.Register(ID, func() registry.Variant {
		return Variant{}
	})
}

// ID returns the variant identifier.
func (Variant) ID() string { return ID }

// Title returns the display name.
func (Variant) Title() string { return "Touch" }

// Description returns a one-line summary.
func (Variant) Description() string {
	return "Clickable on-screen D-pad, table leaderboard"
}

// ShowDPad reports true.
func (Variant) ShowDPad() bool { return true }

// RenderLeaderboard draws the entries as a table with the finished game
// selected.
func (Variant) RenderLeaderboard(entries []leaderboard.Entry, highlight, width, height int) string {
	title := titleStyle.Render("High Scores")
	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			frameStyle.Render(emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")))
	}

	t := NewTable(entries, width, height)
	if highlight > 0 {
		t.SetCursor(highlight - 1)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, frameStyle.Render(t.View()))
}

// NewTable builds the leaderboard table sized to width x height.
func NewTable(entries []leaderboard.Entry, width, height int) table.Model {
	nameWidth := width - chrome - rankWidth - scoreWidth - whenWidth - 6
	if nameWidth < minName {
		nameWidth = minName
	}

	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "When", Width: whenWidth},
	}

	// Title, header and borders
	rows := height - 5
	if rows < 3 {
		rows = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(Rows(entries)),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Rows converts ranked entries to table rows.
func Rows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		when := "-"
		if !e.PlayedAt.IsZero() {
			when = humanize.Time(e.PlayedAt)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			when,
		}
	}
	return rows
}
