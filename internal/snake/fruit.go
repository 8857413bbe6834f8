package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FruitPolicy selects which cells a fruit may be placed on.
type FruitPolicy string

const (
	// FruitAnywhere only keeps the fruit off the head, so it may appear under
	// the body. This is how the classic browser version behaves.
	FruitAnywhere FruitPolicy = "anywhere"

	// FruitAvoidSnake keeps the fruit off the head and every body segment.
	FruitAvoidSnake FruitPolicy = "avoid_snake"
)

// ParseFruitPolicy validates a policy name. Empty means FruitAvoidSnake.
func ParseFruitPolicy(s string) (FruitPolicy, error) {
	switch FruitPolicy(s) {
	case "":
		return FruitAvoidSnake, nil
	case FruitAnywhere, FruitAvoidSnake:
		return FruitPolicy(s), nil
	}
	return "", fmt.Errorf("snake: unknown fruit policy %q (want %s or %s)", s, FruitAnywhere, FruitAvoidSnake)
}

// Forbidden returns the placement filter for the policy against s.
func (p FruitPolicy) Forbidden(s *Snake) func(core.Position) bool {
	if p == FruitAnywhere {
		return func(c core.Position) bool { return c == s.Head() }
	}
	return s.Occupies
}

// Fruit is the single piece of food on the board.
type Fruit struct {
	Position core.Position
	Placed   bool // False when no allowed cell was left
}

// Relocate moves the fruit to a uniformly random cell for which forbidden is
// false. It returns false, leaving the fruit unplaced, if no such cell exists.
func (f *Fruit) Relocate(rng *rand.Rand, b core.Bounds, forbidden func(core.Position) bool) bool {
	free := make([]core.Position, 0, b.Cells())
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Columns; x++ {
			p := core.Position{X: x, Y: y}
			if forbidden == nil || !forbidden(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		f.Placed = false
		return false
	}

	f.Position = free[rng.Intn(len(free))]
	f.Placed = true
	return true
}
