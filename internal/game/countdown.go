/*
Package game
File: countdown.go
Description:
    The service countdown. A goroutine reads a Ticker and forwards each
    tick to the session until its quit channel closes. Every countdown
    carries a generation number; ticks from a cancelled generation are
    dropped, so a late tick can never touch a later day.
*/

package game

import (
	"sync"
	"time"
)

// DefaultTickInterval is one countdown second.
const DefaultTickInterval = time.Second

// Ticker is the subset of time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the ticker for a new countdown.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// ManualTicker fires only when Fire is called.
type ManualTicker struct {
	ch      chan time.Time
	stop    chan struct{}
	stopper sync.Once
}

// NewManualTicker creates a ticker that never fires on its own.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ch:   make(chan time.Time),
		stop: make(chan struct{}),
	}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {
	m.stopper.Do(func() { close(m.stop) })
}

// Fire delivers one tick. It returns false if the ticker was stopped first.
func (m *ManualTicker) Fire() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stop:
		return false
	}
}

// ManualTickers is a TickerFactory that hands out ManualTickers and remembers them.
type ManualTickers struct {
	mu      sync.Mutex
	tickers []*ManualTicker
}

// Factory satisfies TickerFactory.
func (f *ManualTickers) Factory(time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := NewManualTicker()
	f.tickers = append(f.tickers, t)
	return t
}

// Last returns the most recently created ticker, or nil.
func (f *ManualTickers) Last() *ManualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tickers) == 0 {
		return nil
	}
	return f.tickers[len(f.tickers)-1]
}

// Count returns how many tickers were created.
func (f *ManualTickers) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// countdown is the handle for one running countdown task.
type countdown struct {
	gen  uint64
	quit chan struct{}
}

// startCountdownLocked launches a new countdown generation.
// Caller must hold s.mu.
func (s *Session) startCountdownLocked() {
	s.stopCountdownLocked()

	s.generation++
	cd := &countdown{gen: s.generation, quit: make(chan struct{})}
	s.countdown = cd

	t := s.newTicker(s.tickInterval)
	go s.runCountdown(cd, t)
}

// stopCountdownLocked cancels the running countdown, if any.
// Caller must hold s.mu.
func (s *Session) stopCountdownLocked() {
	if s.countdown == nil {
		return
	}
	close(s.countdown.quit)
	s.countdown = nil
}

// runCountdown is the countdown goroutine body.
func (s *Session) runCountdown(cd *countdown, t Ticker) {
	defer t.Stop()
	for {
		select {
		case <-cd.quit:
			return
		case <-t.C():
			if !s.tick(cd.gen) {
				return
			}
		}
	}
}

// tick advances the countdown of generation gen by one second.
// It returns false once that generation is no longer running.
func (s *Session) tick(gen uint64) bool {
	s.mu.Lock()

	// 1. Drop stale ticks
	if s.countdown == nil || s.countdown.gen != gen || s.state.phase != PhaseService || s.state.remaining == nil {
		s.mu.Unlock()
		return false
	}

	// 2. Count down, expiring on the last second
	if *s.state.remaining <= 1 {
		*s.state.remaining = 0
		s.expireLocked()
	} else {
		*s.state.remaining--
	}

	running := s.countdown != nil && s.countdown.gen == gen
	s.flushLocked()
	return running
}
