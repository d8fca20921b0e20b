package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/umami-lab/internal/game"
)

var _ game.Recorder = (*Store)(nil)

func TestStoreRecordAndGet(t *testing.T) {
	store := NewStore(Config{Size: 10, TTL: time.Minute})

	run := game.RunSummary{RunID: "run-1", Outcome: game.OutcomeVictory, Day: 15, Reputation: 85}
	store.Record(run)

	got, ok := store.Get("run-1")
	require.True(t, ok)
	assert.Equal(t, run, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	stats := store.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestStoreListNewestFirst(t *testing.T) {
	store := NewStore(Config{Size: 10, TTL: time.Minute})
	for _, id := range []string{"a", "b", "c"} {
		store.Record(game.RunSummary{RunID: id})
	}

	runs := store.List()
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].RunID)
	assert.Equal(t, "a", runs[2].RunID)
}

func TestStoreEvictsLeastRecent(t *testing.T) {
	store := NewStore(Config{Size: 2, TTL: time.Minute})
	store.Record(game.RunSummary{RunID: "a"})
	store.Record(game.RunSummary{RunID: "b"})
	store.Record(game.RunSummary{RunID: "c"})

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(Config{Size: 10, TTL: 50 * time.Millisecond})
	store.Record(game.RunSummary{RunID: "short-lived"})

	assert.Eventually(t, func() bool {
		_, ok := store.Get("short-lived")
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.Size)
	assert.Equal(t, 24*time.Hour, cfg.TTL)

	store := NewStore(Config{})
	store.Record(game.RunSummary{RunID: "x"})
	assert.Equal(t, 1, store.Len())

	store.Clear()
	assert.Zero(t, store.Len())
}
