// Package registry provides a global registry of front-end variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// DefaultID is the variant used when none is requested.
const DefaultID = "classic"

// Variant is a front-end flavour of the game. The simulation is shared; a
// variant only decides how the leaderboard looks and which inputs are offered.
type Variant interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary for the variants command.
	Description() string

	// ShowDPad reports whether the clickable direction pad is drawn under
	// the board.
	ShowDPad() bool

	// RenderLeaderboard formats the ranked entries to fit width x height.
	// highlight is the 1-based rank of the game just finished, or 0.
	RenderLeaderboard(entries []leaderboard.Entry, highlight, width, height int) string
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
	DPad        bool
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]VariantInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	v := f()
	infos[id] = VariantInfo{
		ID:          id,
		Title:       v.Title(),
		Description: v.Description(),
		DPad:        v.ShowDPad(),
	}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID. An empty ID selects DefaultID.
// Returns an error if the ID is not registered.
func Create(id string) (Variant, error) {
	if id == "" {
		id = DefaultID
	}

	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
