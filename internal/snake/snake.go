// Package snake implements the game simulation: the snake and fruit entities,
// the per-game session and the tick-driven loop controller. It knows nothing
// about terminals; rendering, input and persistence are collaborators.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player-controlled entity.
//
// The velocity always has exactly one nonzero component because it is only
// ever derived from a core.Direction, so a reversal is exactly "the opposite
// direction" and the guard in SetDirection is a single comparison.
type Snake struct {
	head       core.Position
	dir        core.Direction // Direction applied on the last move
	pending    core.Direction // Buffered direction for the next move
	hasPending bool
	segments   []core.Position // Oldest (tail) at index 0, newest last
	growth     int             // Moves that keep the tail instead of dropping it
}

// NewSnake creates a snake with no body at head, heading in dir.
func NewSnake(head core.Position, dir core.Direction) *Snake {
	return &Snake{
		head:    head,
		dir:     dir,
		pending: dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Position {
	return s.head
}

// Direction returns the heading applied on the last move.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Velocity returns the per-tick delta applied on the last move.
func (s *Snake) Velocity() core.Velocity {
	return s.dir.Velocity()
}

// Segments returns a copy of the body, oldest first.
func (s *Snake) Segments() []core.Position {
	return append([]core.Position(nil), s.segments...)
}

// Len returns the number of body segments (the head is not counted).
func (s *Snake) Len() int {
	return len(s.segments)
}

// SetDirection buffers a heading for the next move. A request that would
// reverse the last applied heading is rejected and leaves the buffer as is.
// Only the last accepted call before a move takes effect.
func (s *Snake) SetDirection(d core.Direction) bool {
	if !d.Valid() || d == s.dir.Opposite() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Move advances the snake one cell, wrapping around the board edges.
func (s *Snake) Move(b core.Bounds) {
	if s.hasPending {
		s.dir = s.pending
		s.hasPending = false
	}

	switch n := len(s.segments); {
	case s.growth > 0:
		s.segments = append(s.segments, s.head)
		s.growth--
	case n > 0:
		// segment[i] = segment[i+1]; the newest takes the old head cell
		copy(s.segments, s.segments[1:])
		s.segments[n-1] = s.head
	}

	s.head = b.Wrap(s.head.Add(s.dir.Velocity()))
}

// CheckSelfCollision reports whether the head overlaps any body segment.
func (s *Snake) CheckSelfCollision() bool {
	for _, seg := range s.segments {
		if seg == s.head {
			return true
		}
	}
	return false
}

// TryEat reports whether the head is on the fruit cell and, if so, schedules
// one cell of growth for the next move.
func (s *Snake) TryEat(fruit core.Position) bool {
	if s.head != fruit {
		return false
	}
	s.growth++
	return true
}

// Occupies reports whether p is the head or any body segment.
func (s *Snake) Occupies(p core.Position) bool {
	return p == s.head || s.onBody(p)
}

func (s *Snake) onBody(p core.Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}
