/*
Package history
File: store.go
Description:
    In-memory record of finished runs. Summaries live in an LRU with a
    time-to-live, so the store stays bounded and nothing survives a
    process restart.
*/

package history

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/everforgeworks/umami-lab/internal/game"
)

// Config sizes the store.
type Config struct {
	Size int           // Maximum number of runs kept
	TTL  time.Duration // How long a run is kept after it finished
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{Size: 100, TTL: 24 * time.Hour}
}

// Stats counts lookups since the store was created.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// Store keeps recent run summaries. It satisfies game.Recorder.
type Store struct {
	lru    *expirable.LRU[string, game.RunSummary]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewStore creates a store. Non-positive values fall back to DefaultConfig.
func NewStore(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	return &Store{
		lru: expirable.NewLRU[string, game.RunSummary](cfg.Size, nil, cfg.TTL),
	}
}

// Record stores a finished run, keyed by run ID.
func (s *Store) Record(run game.RunSummary) {
	s.lru.Add(run.RunID, run)
}

// Get looks up one run.
func (s *Store) Get(runID string) (game.RunSummary, bool) {
	run, ok := s.lru.Get(runID)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return run, ok
}

// List returns the stored runs, most recent first.
func (s *Store) List() []game.RunSummary {
	values := s.lru.Values()
	out := make([]game.RunSummary, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out = append(out, values[i])
	}
	return out
}

// Len returns the number of unexpired runs.
func (s *Store) Len() int {
	return s.lru.Len()
}

// Clear removes every run.
func (s *Store) Clear() {
	s.lru.Purge()
}

// GetStats reports hit/miss counters and current size.
func (s *Store) GetStats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   s.lru.Len(),
	}
}
