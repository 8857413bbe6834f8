package leaderboard

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Key is the fixed storage key holding the serialized leaderboard.
const Key = "highScores"

// KV is the key/value persistence the leaderboard is stored in.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// Repository loads and saves a Board through a KV store and a Codec.
type Repository struct {
	mu     sync.Mutex // Orders concurrent saves
	kv     KV
	codec  Codec
	logger *log.Logger
}

// NewRepository creates a repository. A nil codec means JSON; a nil logger
// discards output.
func NewRepository(kv KV, codec Codec, logger *log.Logger) *Repository {
	if codec == nil {
		codec = JSONCodec{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repository{kv: kv, codec: codec, logger: logger}
}

// Codec returns the codec used for writes.
func (r *Repository) Codec() Codec {
	return r.codec
}

// Load reads the stored board. A missing key or malformed data yields an empty
// board; only a failing store returns an error, together with an empty board.
func (r *Repository) Load(ctx context.Context) (*Board, error) {
	data, ok, err := r.kv.Get(ctx, Key)
	if err != nil {
		return New(), fmt.Errorf("leaderboard: load: %w", err)
	}
	if !ok || len(data) == 0 {
		return New(), nil
	}

	codec := DetectCodec(data)
	if codec.Name() != r.codec.Name() {
		r.logger.Info("stored leaderboard uses a different codec", "stored", codec.Name(), "configured", r.codec.Name())
	}

	entries, err := codec.Unmarshal(data)
	if err != nil {
		r.logger.Warn("ignoring malformed leaderboard data", "error", err, "bytes", len(data))
		return New(), nil
	}

	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if verr := e.Validate(); verr != nil {
			r.logger.Warn("skipping leaderboard entry", "error", verr)
			continue
		}
		valid = append(valid, e)
	}

	return New(valid...), nil
}

// Save writes the full ranked list under Key.
func (r *Repository) Save(ctx context.Context, b *Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.codec.Marshal(b.Ranked())
	if err != nil {
		return fmt.Errorf("leaderboard: encode: %w", err)
	}
	if err := r.kv.Put(ctx, Key, data); err != nil {
		return fmt.Errorf("leaderboard: save: %w", err)
	}
	return nil
}
