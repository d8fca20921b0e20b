/*
Package game
File: state.go
Description:
    Manages the runtime state of one play-through.
    A Session owns all mutable game state behind a single mutex; player
    actions and countdown ticks are serialized through it. After every
    successful transition an immutable Snapshot is published to
    subscribers, outside the lock.

    It also handles construction (NewSession) and Restart.
*/

package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/dish"
	"github.com/everforgeworks/umami-lab/internal/kitchen"
	"github.com/everforgeworks/umami-lab/internal/logger"
)

// Options configures a Session. Zero values fall back to production defaults.
type Options struct {
	Catalog       *kitchen.Catalog
	Generator     *customer.Generator
	TickerFactory TickerFactory
	TickInterval  time.Duration
	Recorder      Recorder
	Logger        *slog.Logger
	Now           func() time.Time
	NewRunID      func() string
}

// runTotals accumulates across the days of one run.
type runTotals struct {
	earnings  int
	served    int
	allergies int
	timeouts  int
}

// gameState is everything Restart resets.
type gameState struct {
	runID      string
	phase      Phase
	day        int
	money      int
	reputation int
	inventory  map[string]int
	upgrades   map[UpgradeKey]bool

	dayEarnings   int
	dayStartMoney int
	results       []DayResult

	queue     []customer.Customer
	current   *customer.Customer
	dish      dish.Dish
	remaining *int

	gameOverReason string
	totals         runTotals
}

// Session is one single-player game.
type Session struct {
	mu    sync.Mutex
	state gameState

	catalog      *kitchen.Catalog
	gen          *customer.Generator
	newTicker    TickerFactory
	tickInterval time.Duration
	recorder     Recorder
	log          *slog.Logger
	now          func() time.Time
	newRunID     func() string

	countdown  *countdown
	generation uint64
	version    uint64
	pending    *RunSummary

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewSession creates a session on day 1 in the market phase.
func NewSession(opts Options) *Session {
	s := &Session{
		catalog:      opts.Catalog,
		gen:          opts.Generator,
		newTicker:    opts.TickerFactory,
		tickInterval: opts.TickInterval,
		recorder:     opts.Recorder,
		log:          opts.Logger,
		now:          opts.Now,
		newRunID:     opts.NewRunID,
		subs:         make(map[int]func(Snapshot)),
	}

	// Defaults
	if s.catalog == nil {
		s.catalog = kitchen.Default()
	}
	if s.gen == nil {
		s.gen = customer.NewGenerator(nil)
	}
	if s.newTicker == nil {
		s.newTicker = NewTicker
	}
	if s.tickInterval <= 0 {
		s.tickInterval = DefaultTickInterval
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newRunID == nil {
		s.newRunID = cuid.New
	}

	s.state = s.freshState()
	return s
}

// freshState builds the day-1 state for a new run.
func (s *Session) freshState() gameState {
	return gameState{
		runID:         s.newRunID(),
		phase:         PhaseMarket,
		day:           StartingDay,
		money:         StartingMoney,
		reputation:    StartingReputation,
		inventory:     make(map[string]int),
		upgrades:      make(map[UpgradeKey]bool),
		dayStartMoney: StartingMoney,
	}
}

// Restart abandons the current run and starts a new one. Accepted in any phase.
func (s *Session) Restart() {
	_ = s.mutate("restart", func() error {
		s.stopCountdownLocked()
		s.state = s.freshState()
		s.log.Info("Run started", "run_id", s.state.runID)
		return nil
	})
}

// Close stops any running countdown. The session stays readable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCountdownLocked()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Catalog exposes the ingredient table the session sells from.
func (s *Session) Catalog() *kitchen.Catalog {
	return s.catalog
}

// Subscribe registers fn to receive every published Snapshot.
// fn runs on the publishing goroutine without the session lock held.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// mutate runs fn under the lock and publishes on success.
// On error the state must be untouched and nothing is published.
func (s *Session) mutate(action string, fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		runID, phase := s.state.runID, s.state.phase
		s.mu.Unlock()
		s.log.Debug("Action rejected", "action", action, "run_id", runID, "phase", phase, "error", err)
		return err
	}
	s.flushLocked()
	return nil
}

// flushLocked releases s.mu, then records any finished run and publishes.
// Caller must hold s.mu; it is released on return.
func (s *Session) flushLocked() {
	s.version++
	snap := s.snapshotLocked()
	summary := s.pending
	s.pending = nil
	s.mu.Unlock()

	if summary != nil && s.recorder != nil {
		s.recorder.Record(*summary)
	}
	s.publish(snap)
}

func (s *Session) publish(snap Snapshot) {
	s.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// snapshotLocked deep-copies the state. Caller must hold s.mu.
func (s *Session) snapshotLocked() Snapshot {
	st := &s.state

	inventory := make(map[string]int, len(st.inventory))
	for k, v := range st.inventory {
		inventory[k] = v
	}
	upgrades := make(map[UpgradeKey]bool, len(Upgrades))
	for _, u := range Upgrades {
		upgrades[u.Key] = st.upgrades[u.Key]
	}

	var current *customer.Customer
	if st.current != nil {
		c := *st.current
		current = &c
	}
	var remaining *int
	if st.remaining != nil {
		r := *st.remaining
		remaining = &r
	}

	results := make([]DayResult, len(st.results))
	copy(results, st.results)

	customersRemaining := len(st.queue)
	if st.current != nil {
		customersRemaining++
	}

	return Snapshot{
		Version:            s.version,
		RunID:              st.runID,
		Phase:              st.phase,
		Day:                st.day,
		Money:              st.money,
		Reputation:         st.reputation,
		Inventory:          inventory,
		Upgrades:           upgrades,
		Customer:           current,
		QueueLength:        len(st.queue),
		CustomersRemaining: customersRemaining,
		RemainingSeconds:   remaining,
		Dish:               st.dish.Items(),
		DishFlavor:         st.dish.Flavor(),
		Results:            results,
		DayEarnings:        st.dayEarnings,
		DayStartMoney:      st.dayStartMoney,
		MinimumEarnings:    MinimumEarnings(st.day),
		GameOverReason:     st.gameOverReason,
		Progress:           Progress(st.day, st.reputation),
	}
}
