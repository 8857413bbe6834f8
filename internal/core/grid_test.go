package core

import "testing"

func TestBoundsWrap(t *testing.T) {
	b := NewBounds(20, 15)

	tests := []struct {
		name     string
		in       Position
		expected Position
	}{
		{"inside unchanged", Position{X: 5, Y: 5}, Position{X: 5, Y: 5}},
		{"right edge to left", Position{X: 20, Y: 3}, Position{X: 0, Y: 3}},
		{"left edge to right", Position{X: -1, Y: 3}, Position{X: 19, Y: 3}},
		{"bottom edge to top", Position{X: 7, Y: 15}, Position{X: 7, Y: 0}},
		{"top edge to bottom", Position{X: 7, Y: -1}, Position{X: 7, Y: 14}},
		{"corner", Position{X: -1, Y: -1}, Position{X: 19, Y: 14}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Wrap(tc.in)
			if got != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
			if !b.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside the board", tc.in, got)
			}
		})
	}
}

func TestDirectionVelocity(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		v := d.Velocity()
		nonzero := 0
		if v.DX != 0 {
			nonzero++
		}
		if v.DY != 0 {
			nonzero++
		}
		if nonzero != 1 {
			t.Errorf("%s velocity %v should have exactly one nonzero component", d, v)
		}

		o := d.Opposite().Velocity()
		if o.DX != -v.DX || o.DY != -v.DY {
			t.Errorf("%s opposite velocity %v is not the negation of %v", d, o, v)
		}
	}
}

func TestGridPixelConversion(t *testing.T) {
	g := NewGrid(20, 20, 20)

	w, h := g.PixelSize()
	if w != 400 || h != 400 {
		t.Errorf("PixelSize() = (%d, %d), expected (400, 400)", w, h)
	}

	if got := g.CellAt(45, 399); got != (Position{X: 2, Y: 19}) {
		t.Errorf("CellAt(45, 399) = %v, expected (2, 19)", got)
	}
	if got := g.CellAt(-1, 0); got != (Position{X: -1, Y: 0}) {
		t.Errorf("CellAt(-1, 0) = %v, expected (-1, 0)", got)
	}

	px, py := g.PixelOf(Position{X: 3, Y: 4})
	if px != 60 || py != 80 {
		t.Errorf("PixelOf(3, 4) = (%d, %d), expected (60, 80)", px, py)
	}
}
