// Package classic registers the keyboard-only variant with a plain numbered
// leaderboard.
package classic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry identifier.
const ID = "classic"

// maxNameWidth truncates long player names in the list.
const maxNameWidth = 16

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	rowStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Variant is the classic front end.
type Variant struct{}

func init() {
	registry.Register(ID, func() registry.Variant {
		return Variant{}
	})
}

// ID returns the variant identifier.
func (Variant) ID() string { return ID }

// Title returns the display name.
func (Variant) Title() string { return "Classic" }

// Description returns a one-line summary.
func (Variant) Description() string {
	return "Keyboard only, numbered high score list"
}

// ShowDPad reports false: steering is keyboard only.
func (Variant) ShowDPad() bool { return false }

// RenderLeaderboard draws a numbered list, one entry per line.
func (Variant) RenderLeaderboard(entries []leaderboard.Entry, highlight, width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("High Scores"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("No scores yet."))
		return b.String()
	}

	// Title line plus a possible "more" line
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	// Keep the highlighted entry visible on short terminals.
	start := core.Clamp(highlight-rows, 0, max(len(entries)-rows, 0))
	end := min(start+rows, len(entries))

	for i := start; i < end; i++ {
		line := FormatEntry(i+1, entries[i])
		if width > 0 && utf8.RuneCountInString(line) > width {
			line = string([]rune(line)[:width])
		}
		style := rowStyle
		if i+1 == highlight {
			style = highlightStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	if rest := len(entries) - end; rest > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", rest)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatEntry renders one list line: "1. Alice - 5 (3 minutes ago)".
func FormatEntry(rank int, e leaderboard.Entry) string {
	name := e.Name
	if utf8.RuneCountInString(name) > maxNameWidth {
		name = string([]rune(name)[:maxNameWidth-1]) + "…"
	}
	line := fmt.Sprintf("%d. %s - %d", rank, name, e.Score)
	if !e.PlayedAt.IsZero() {
		line += " (" + humanize.Time(e.PlayedAt) + ")"
	}
	return line
}
