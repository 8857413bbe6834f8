package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Layout constants
const (
	cellWidth    = 2 // Terminal columns per board cell, so cells look square
	headerHeight = 2
	buttonW      = 5
	buttonH      = 3
	dpadGap      = 1
)

// Board glyphs
const (
	glyphBody  = '█'
	glyphTail  = '▒'
	glyphFruit = '●'
)

var headGlyphs = map[core.Direction]rune{
	core.DirUp:    '▲',
	core.DirDown:  '▼',
	core.DirLeft:  '◀',
	core.DirRight: '▶',
}

// Layout places the header, the bordered board and the optional D-pad on
// the screen. Coordinates are terminal cells from the top-left corner.
type Layout struct {
	Width   int
	Height  int
	Header  core.Rect
	Board   core.Rect // Includes the border
	Buttons map[core.Action]core.Rect
}

// NewLayout computes the layout for a columns x rows board.
func NewLayout(columns, rows int, dpad bool) Layout {
	boardW := columns*cellWidth + 2
	boardH := rows + 2
	width := max(boardW, 3*buttonW+2)

	l := Layout{
		Width:  width,
		Height: headerHeight + boardH,
		Header: core.NewRect(0, 0, width, headerHeight),
		Board:  core.NewRect(0, headerHeight, boardW, boardH),
	}
	if !dpad {
		return l
	}

	//      [▲]
	// [◀] [▼] [▶]
	top := l.Board.Bottom() + dpadGap
	mid := width/2 - buttonW/2
	l.Buttons = map[core.Action]core.Rect{
		core.ActionUp:    core.NewRect(mid, top, buttonW, buttonH),
		core.ActionLeft:  core.NewRect(mid-buttonW-1, top+buttonH, buttonW, buttonH),
		core.ActionDown:  core.NewRect(mid, top+buttonH, buttonW, buttonH),
		core.ActionRight: core.NewRect(mid+buttonW+1, top+buttonH, buttonW, buttonH),
	}
	l.Height = top + 2*buttonH
	return l
}

// HitTest returns the D-pad action under (x, y), or ActionNone.
func (l Layout) HitTest(x, y int) core.Action {
	for action, r := range l.Buttons {
		if r.Contains(x, y) {
			return action
		}
	}
	return core.ActionNone
}

// cellOrigin returns the screen position of a board cell's first column.
func (l Layout) cellOrigin(p core.Position) (int, int) {
	return l.Board.X + 1 + p.X*cellWidth, l.Board.Y + 1 + p.Y
}

// HUD is the status shown above the board.
type HUD struct {
	Player   string
	Score    int
	Best     int
	Interval string
	Status   string // Replaces the speed line when set, e.g. "PAUSED"
}

// DrawHeader draws the two status lines.
func DrawHeader(dst *core.Screen, l Layout, h HUD) {
	dst.DrawTextColored(l.Header.X, l.Header.Y, "SNAKE", core.ColorBrightGreen)
	info := fmt.Sprintf("%s  Score: %d  Best: %d", h.Player, h.Score, h.Best)
	dst.DrawText(l.Header.Right()-len([]rune(info)), l.Header.Y, info)

	line := h.Interval
	color := core.ColorGray
	if h.Status != "" {
		line = h.Status
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(l.Header.X, l.Header.Y+1, line, color)
}

// SpeedLine describes the current interval, the move rate and the next speed-up.
func SpeedLine(schedule *config.SpeedSchedule, interval string, score int) string {
	line := fmt.Sprintf("Speed %s · %.1f/s", interval, schedule.TicksPerSecond(score))
	if next := schedule.NextAt(score); next > 0 {
		line += fmt.Sprintf(" · faster at %d", next)
	}
	return line
}

// DrawBoard draws the border, the fruit and the snake.
func DrawBoard(dst *core.Screen, l Layout, s *snake.Session) {
	dst.DrawBox(l.Board, core.ColorGray)

	if s.Fruit.Placed {
		x, y := l.cellOrigin(s.Fruit.Position)
		dst.SetColored(x, y, glyphFruit, core.ColorBrightRed)
	}

	segments := s.Snake.Segments()
	for i, seg := range segments {
		glyph := glyphBody
		if i == 0 {
			glyph = glyphTail
		}
		x, y := l.cellOrigin(seg)
		for dx := range cellWidth {
			dst.SetColored(x+dx, y, glyph, core.ColorGreen)
		}
	}

	x, y := l.cellOrigin(s.Snake.Head())
	dst.SetColored(x, y, headGlyphs[s.Snake.Direction()], core.ColorBrightGreen)
	dst.SetColored(x+1, y, ' ', core.ColorDefault)
}

// DrawDPad draws the on-screen direction buttons.
func DrawDPad(dst *core.Screen, l Layout) {
	for action, r := range l.Buttons {
		dir, _ := action.Direction()
		dst.DrawBox(r, core.ColorCyan)
		cx, cy := r.Center()
		dst.SetColored(cx, cy, headGlyphs[dir], core.ColorBrightYellow)
	}
}

// DrawOverlay draws centered lines in the middle of the board, clearing a
// band behind them.
func DrawOverlay(dst *core.Screen, l Layout, lines []string, c core.Color) {
	inner := core.NewRect(l.Board.X+1, l.Board.Y+1, l.Board.W-2, l.Board.H-2)
	top := inner.Y + (inner.H-len(lines))/2
	for i, line := range lines {
		y := top + i
		if y < inner.Y || y >= inner.Bottom() {
			continue
		}
		dst.DrawRect(core.NewRect(inner.X, y, inner.W, 1), ' ')
		n := len([]rune(line))
		if n > inner.W {
			line = string([]rune(line)[:inner.W])
			n = inner.W
		}
		dst.DrawTextColored(inner.X+(inner.W-n)/2, y, line, c)
	}
}
