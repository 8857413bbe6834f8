package core

// Direction is one of the four axis-aligned headings on the board.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Velocity returns the per-tick cell delta for the direction.
// Exactly one component is nonzero.
func (d Direction) Velocity() Velocity {
	switch d {
	case DirUp:
		return Velocity{DX: 0, DY: -1}
	case DirDown:
		return Velocity{DX: 0, DY: 1}
	case DirLeft:
		return Velocity{DX: -1, DY: 0}
	default:
		return Velocity{DX: 1, DY: 0}
	}
}

// Velocity is a movement delta in cell units.
type Velocity struct {
	DX, DY int
}

// Position is a board cell address.
type Position struct {
	X, Y int
}

// Add returns p moved by v.
func (p Position) Add(v Velocity) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Bounds describes a board of Columns x Rows cells.
type Bounds struct {
	Columns int
	Rows    int
}

// NewBounds creates bounds for a board of the given size.
func NewBounds(columns, rows int) Bounds {
	return Bounds{Columns: columns, Rows: rows}
}

// Contains reports whether p lies on the board.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Columns && p.Y >= 0 && p.Y < b.Rows
}

// Wrap folds p onto the board so that leaving one edge enters the opposite one.
func (b Bounds) Wrap(p Position) Position {
	return Position{X: wrap(p.X, b.Columns), Y: wrap(p.Y, b.Rows)}
}

// Cells returns the number of cells on the board.
func (b Bounds) Cells() int {
	return b.Columns * b.Rows
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Grid converts between pixel coordinates and cells for a fixed cell edge.
type Grid struct {
	Bounds
	CellSize int // Edge length of a cell in pixels
}

// NewGrid creates a grid for a board of the given size.
func NewGrid(columns, rows, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{Bounds: NewBounds(columns, rows), CellSize: cellSize}
}

// PixelSize returns the board dimensions in pixels.
func (g Grid) PixelSize() (int, int) {
	return g.Columns * g.CellSize, g.Rows * g.CellSize
}

// CellAt returns the cell containing pixel (px, py).
func (g Grid) CellAt(px, py int) Position {
	return Position{X: floorDiv(px, g.CellSize), Y: floorDiv(py, g.CellSize)}
}

// PixelOf returns the top-left pixel of a cell.
func (g Grid) PixelOf(p Position) (int, int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
