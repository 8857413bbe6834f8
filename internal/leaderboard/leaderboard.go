// Package leaderboard keeps the ranked list of finished games and persists it
// as a single serialized value under a fixed key.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrInvalidEntry is returned for entries with an empty name or a negative score.
var ErrInvalidEntry = errors.New("leaderboard: invalid entry")

// Entry is one recorded game.
// The JSON form matches the browser highScores array: {"name": ..., "score": ...}.
type Entry struct {
	Name     string    `json:"name" msgpack:"name"`
	Score    int       `json:"score" msgpack:"score"`
	PlayedAt time.Time `json:"played_at,omitzero" msgpack:"played_at,omitempty"`
}

// Validate checks the entry invariants.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if e.Score < 0 {
		return fmt.Errorf("%w: negative score %d for %q", ErrInvalidEntry, e.Score, e.Name)
	}
	return nil
}

// Board is an append-only collection of entries kept ranked by score, highest
// first. Equal scores keep the order in which they were recorded.
// A Board is safe for concurrent use, so SSH sessions can share one.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates a board from entries in the order given, then ranks it.
// Invalid entries are not filtered here; see Repository.Load.
func New(entries ...Entry) *Board {
	b := &Board{entries: append([]Entry(nil), entries...)}
	b.rank()
	return b
}

// Record appends a game result stamped with the current time.
func (b *Board) Record(name string, score int) error {
	return b.RecordAt(name, score, time.Now())
}

// RecordAt appends a game result with an explicit timestamp.
func (b *Board) RecordAt(name string, score int, at time.Time) error {
	e := Entry{Name: strings.TrimSpace(name), Score: score, PlayedAt: at}
	if err := e.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	b.rank()
	return nil
}

// Merge appends every valid entry and returns how many were added.
func (b *Board) Merge(entries []Entry) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	added := 0
	for _, e := range entries {
		if e.Validate() != nil {
			continue
		}
		e.Name = strings.TrimSpace(e.Name)
		b.entries = append(b.entries, e)
		added++
	}
	if added > 0 {
		b.rank()
	}
	return added
}

// rank re-sorts the whole list. The stable sort keeps insertion order for ties.
func (b *Board) rank() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
}

// Ranked returns a copy of all entries, best first.
func (b *Board) Ranked() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Entry(nil), b.entries...)
}

// Top returns at most n entries, best first. n <= 0 returns everything.
func (b *Board) Top(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if n <= 0 || n > len(b.entries) {
		n = len(b.entries)
	}
	return append([]Entry(nil), b.entries[:n]...)
}

// Len returns the number of recorded entries.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Best returns the highest entry, if any.
func (b *Board) Best() (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[0], true
}

// RankOf returns the 1-based rank of the most recent entry matching name and
// score, or 0 if there is none.
func (b *Board) RankOf(name string, score int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rank := 0
	for i, e := range b.entries {
		if e.Name == name && e.Score == score {
			rank = i + 1
		}
	}
	return rank
}
