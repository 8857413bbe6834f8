package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSnakeMoveWraps(t *testing.T) {
	b := core.NewBounds(20, 20)

	tests := []struct {
		name  string
		start core.Position
		dir   core.Direction
		want  core.Position
	}{
		{"right edge", core.Position{X: 19, Y: 5}, core.DirRight, core.Position{X: 0, Y: 5}},
		{"left edge", core.Position{X: 0, Y: 5}, core.DirLeft, core.Position{X: 19, Y: 5}},
		{"bottom edge", core.Position{X: 7, Y: 19}, core.DirDown, core.Position{X: 7, Y: 0}},
		{"top edge", core.Position{X: 7, Y: 0}, core.DirUp, core.Position{X: 7, Y: 19}},
		{"interior", core.Position{X: 3, Y: 3}, core.DirDown, core.Position{X: 3, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(tt.start, tt.dir)
			s.Move(b)
			if got := s.Head(); got != tt.want {
				t.Errorf("Head() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)

	if s.SetDirection(core.DirLeft) {
		t.Error("reversal to left accepted while moving right")
	}
	if !s.SetDirection(core.DirUp) {
		t.Error("turn to up rejected")
	}
	// Left is still a reversal of the applied heading, so Up stays buffered.
	if s.SetDirection(core.DirLeft) {
		t.Error("left accepted before the buffered turn was applied")
	}

	s.Move(core.NewBounds(20, 20))
	if s.Direction() != core.DirUp {
		t.Errorf("Direction() = %v, want up", s.Direction())
	}
	if got := s.Head(); got != (core.Position{X: 5, Y: 4}) {
		t.Errorf("Head() = %+v, want (5,4)", got)
	}
}

func TestSnakeLastDirectionWins(t *testing.T) {
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)
	s.SetDirection(core.DirUp)
	s.SetDirection(core.DirDown)
	s.Move(core.NewBounds(20, 20))

	if s.Direction() != core.DirDown {
		t.Errorf("Direction() = %v, want down", s.Direction())
	}
}

func TestSnakeNeverReverses(t *testing.T) {
	b := core.NewBounds(10, 10)
	rng := rand.New(rand.NewSource(7))
	s := NewSnake(core.Position{}, core.DirRight)
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for i := 0; i < 2000; i++ {
		for n := rng.Intn(4); n >= 0; n-- {
			s.SetDirection(dirs[rng.Intn(len(dirs))])
		}
		prev := s.Velocity()
		s.Move(b)
		v := s.Velocity()
		if v.DX == -prev.DX && v.DY == -prev.DY {
			t.Fatalf("step %d: velocity reversed from %+v to %+v", i, prev, v)
		}
	}
}

func TestSnakeGrowth(t *testing.T) {
	b := core.NewBounds(20, 20)
	s := NewSnake(core.Position{X: 2, Y: 2}, core.DirRight)

	if s.TryEat(core.Position{X: 9, Y: 9}) {
		t.Fatal("TryEat succeeded away from the fruit")
	}
	if !s.TryEat(core.Position{X: 2, Y: 2}) {
		t.Fatal("TryEat failed on the fruit cell")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d before the move, want 0", s.Len())
	}

	s.Move(b)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after growth move, want 1", s.Len())
	}
	if seg := s.Segments()[0]; seg != (core.Position{X: 2, Y: 2}) {
		t.Errorf("new segment = %+v, want old head (2,2)", seg)
	}

	s.Move(b)
	if s.Len() != 1 {
		t.Errorf("Len() = %d after plain move, want 1", s.Len())
	}
	if seg := s.Segments()[0]; seg != (core.Position{X: 3, Y: 2}) {
		t.Errorf("segment = %+v, want (3,2)", seg)
	}
}

func TestSnakeSegmentsShiftOldestFirst(t *testing.T) {
	b := core.NewBounds(20, 20)
	s := NewSnake(core.Position{}, core.DirRight)
	for i := 0; i < 3; i++ {
		s.TryEat(s.Head())
		s.Move(b)
	}
	// head (3,0), body (0,0) (1,0) (2,0)
	s.Move(b)

	want := []core.Position{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	b := core.NewBounds(20, 20)
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)
	if s.CheckSelfCollision() {
		t.Fatal("new snake reports a collision")
	}

	for i := 0; i < 4; i++ {
		s.TryEat(s.Head())
		s.Move(b)
	}
	for _, d := range []core.Direction{core.DirDown, core.DirLeft, core.DirUp} {
		if s.CheckSelfCollision() {
			t.Fatalf("collision before the loop closed, head %+v", s.Head())
		}
		s.SetDirection(d)
		s.Move(b)
	}
	if !s.CheckSelfCollision() {
		t.Errorf("no collision with head %+v on body %v", s.Head(), s.Segments())
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	s := NewSnake(core.Position{}, core.DirRight)
	s.TryEat(s.Head())
	s.Move(core.NewBounds(5, 5))

	segs := s.Segments()
	segs[0] = core.Position{X: 4, Y: 4}
	if s.Segments()[0] == segs[0] {
		t.Error("mutating Segments() result changed the snake")
	}
}

func TestFruitRelocate(t *testing.T) {
	b := core.NewBounds(4, 4)
	rng := rand.New(rand.NewSource(1))
	s := NewSnake(core.Position{X: 1, Y: 1}, core.DirRight)
	for i := 0; i < 3; i++ {
		s.TryEat(s.Head())
		s.Move(b)
	}

	var f Fruit
	for i := 0; i < 200; i++ {
		if !f.Relocate(rng, b, FruitAvoidSnake.Forbidden(s)) {
			t.Fatal("Relocate found no cell on a mostly empty board")
		}
		if !b.Contains(f.Position) {
			t.Fatalf("fruit %+v off the board", f.Position)
		}
		if s.Occupies(f.Position) {
			t.Fatalf("fruit %+v placed on the snake", f.Position)
		}
	}
}

func TestFruitAnywhereOnlyAvoidsHead(t *testing.T) {
	b := core.NewBounds(2, 1)
	s := NewSnake(core.Position{}, core.DirRight)
	s.TryEat(s.Head())
	s.Move(b)
	// head (1,0), body (0,0): only the body cell is allowed

	var f Fruit
	if !f.Relocate(rand.New(rand.NewSource(3)), b, FruitAnywhere.Forbidden(s)) {
		t.Fatal("Relocate failed under anywhere policy")
	}
	if f.Position != (core.Position{X: 0, Y: 0}) {
		t.Errorf("fruit at %+v, want (0,0)", f.Position)
	}

	if f.Relocate(rand.New(rand.NewSource(3)), b, FruitAvoidSnake.Forbidden(s)) {
		t.Error("Relocate succeeded on a full board")
	}
	if f.Placed {
		t.Error("fruit still placed after a failed relocate")
	}
}

func TestParseFruitPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    FruitPolicy
		wantErr bool
	}{
		{"", FruitAvoidSnake, false},
		{"anywhere", FruitAnywhere, false},
		{"avoid_snake", FruitAvoidSnake, false},
		{"under_snake", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFruitPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFruitPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFruitPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
