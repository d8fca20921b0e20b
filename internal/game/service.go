/*
Package game
File: service.go
Description:
    The service and results phases: opening service with a fresh queue,
    staging ingredients, serving the current customer, time expiry and
    the end-of-day gate that decides game over, victory or the next day.
*/

package game

import (
	"fmt"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/metrics"
	"github.com/everforgeworks/umami-lab/internal/scoring"
)

// gameOverTemplate is shown when a day misses its earnings minimum.
const gameOverTemplate = "You needed to earn at least $%d but only earned $%d. The restaurant couldn't survive!"

// StartService opens service for the day: builds the queue and, from day 3, starts the countdown.
func (s *Session) StartService() error {
	return s.mutate("start_service", func() error {
		if s.state.phase != PhaseMarket {
			return ErrWrongPhase
		}

		// 1. Build the queue
		n := CustomersForDay(s.state.day)
		s.state.queue = s.state.queue[:0]
		for i := 0; i < n; i++ {
			s.state.queue = append(s.state.queue, s.gen.Generate(s.state.day))
		}
		s.state.current = nil
		s.state.dish.Clear()
		s.state.phase = PhaseService
		s.advanceLocked()

		// 2. Countdown, if this day is timed
		s.state.remaining = nil
		if limit, timed := TimeLimit(s.state.day, s.state.upgrades[UpgradeFasterService]); timed {
			s.state.remaining = &limit
			s.startCountdownLocked()
		}

		metrics.ServicesStarted.Inc()
		s.log.Info("Service started",
			"run_id", s.state.runID,
			"day", s.state.day,
			"customers", n,
			"timed", s.state.remaining != nil)
		return nil
	})
}

// AddIngredient stages one owned unit onto the dish. Service phase only.
func (s *Session) AddIngredient(key string) error {
	return s.mutate("add_ingredient", func() error {
		if s.state.phase != PhaseService {
			return ErrWrongPhase
		}
		ing, ok := s.catalog.Get(key)
		if !ok {
			return ErrUnknownIngredient
		}
		if s.state.inventory[key] <= 0 {
			return ErrOutOfStock
		}
		if err := s.state.dish.Add(ing); err != nil {
			return err
		}
		s.state.inventory[key]--
		return nil
	})
}

// RemoveIngredient unstages the unit at index and returns it to inventory. Service phase only.
func (s *Session) RemoveIngredient(index int) error {
	return s.mutate("remove_ingredient", func() error {
		if s.state.phase != PhaseService {
			return ErrWrongPhase
		}
		ing, err := s.state.dish.Remove(index)
		if err != nil {
			return err
		}
		s.state.inventory[ing.Key]++
		return nil
	})
}

// Serve presents the staged dish to the current customer and records the result.
func (s *Session) Serve() (DayResult, error) {
	var result DayResult
	err := s.mutate("serve", func() error {
		if s.state.phase != PhaseService {
			return ErrWrongPhase
		}
		c := s.state.current
		if c == nil {
			return ErrNoCustomer
		}
		if s.state.dish.Len() == 0 {
			return ErrEmptyDish
		}

		// 1. Allergy guard, then accuracy and tip
		flavor := s.state.dish.Flavor()
		verdict := scoring.Judge(s.state.dish.Items(), flavor, scoring.Guest{
			Target:    c.Target,
			Tolerance: c.Tolerance,
			Tip:       c.Tip,
			Allergy:   c.Allergy,
		}, s.modifiersLocked())

		// 2. Book it
		s.applyOutcomeLocked(verdict.Outcome)
		s.state.totals.served++
		if verdict.AllergyIncident {
			s.state.totals.allergies++
		} else {
			metrics.DishAccuracy.Observe(float64(verdict.Accuracy))
		}

		result = DayResult{
			CustomerID:      c.ID,
			CustomerName:    c.Name,
			Avatar:          c.Avatar,
			Intensity:       c.Intensity,
			Accuracy:        verdict.Accuracy,
			Earnings:        verdict.Earnings,
			ReputationDelta: verdict.ReputationDelta,
			Feedback:        verdict.Feedback,
			Tier:            verdict.Tier,
			Dish:            &flavor,
			Target:          c.Target,
			AllergyIncident: verdict.AllergyIncident,
		}
		s.state.results = append(s.state.results, result)

		s.log.Info("Dish served",
			"run_id", s.state.runID,
			"day", s.state.day,
			"customer", c.Name,
			"ingredients", s.state.dish.Keys(),
			"tier", verdict.Tier,
			"accuracy", verdict.Accuracy,
			"earnings", verdict.Earnings)

		// 3. Next customer, or close service
		s.state.dish.Clear()
		s.state.current = nil
		s.advanceLocked()
		return nil
	})
	return result, err
}

// NextDay applies the end-of-day gate. Results phase only.
func (s *Session) NextDay() error {
	return s.mutate("next_day", func() error {
		if s.state.phase != PhaseResults {
			return ErrWrongPhase
		}
		st := &s.state
		minimum := MinimumEarnings(st.day)

		switch {
		case st.dayEarnings < minimum:
			st.phase = PhaseGameOver
			st.gameOverReason = fmt.Sprintf(gameOverTemplate, minimum, st.dayEarnings)
			s.finishRunLocked(OutcomeGameOver)
		case st.day >= VictoryDay && st.reputation >= VictoryReputation:
			st.phase = PhaseVictory
			s.finishRunLocked(OutcomeVictory)
		default:
			s.log.Info("Day completed", "run_id", st.runID, "day", st.day, "earnings", st.dayEarnings, "money", st.money)
			st.day++
			st.results = nil
			st.dayEarnings = 0
			st.dayStartMoney = st.money
			st.phase = PhaseMarket
		}
		return nil
	})
}

// advanceLocked promotes the head of the queue, or closes service when everyone is done.
// Caller must hold s.mu.
func (s *Session) advanceLocked() {
	st := &s.state
	if st.current == nil && len(st.queue) > 0 {
		next := st.queue[0]
		st.queue = st.queue[1:]
		st.current = &next
		return
	}
	if st.current == nil && len(st.queue) == 0 && len(st.results) > 0 {
		st.phase = PhaseResults
		s.stopCountdownLocked()
	}
}

// expireLocked fails every waiting customer when the countdown hits zero.
// Staged units are consumed, not refunded. Caller must hold s.mu.
func (s *Session) expireLocked() {
	st := &s.state

	waiting := st.queue
	if st.current != nil {
		waiting = append([]customer.Customer{*st.current}, st.queue...)
	}

	for _, c := range waiting {
		o := scoring.TimeoutOutcome()
		s.applyOutcomeLocked(o)
		st.totals.timeouts++
		st.results = append(st.results, DayResult{
			CustomerID:      c.ID,
			CustomerName:    c.Name,
			Avatar:          c.Avatar,
			Intensity:       c.Intensity,
			Earnings:        o.Earnings,
			ReputationDelta: o.ReputationDelta,
			Feedback:        o.Feedback,
			Tier:            o.Tier,
			Target:          c.Target,
			TimedOut:        true,
		})
	}

	st.queue = nil
	st.current = nil
	st.dish.Clear()

	metrics.ServiceTimeouts.Inc()
	s.log.Info("Service timed out", "run_id", st.runID, "day", st.day, "missed", len(waiting))

	s.advanceLocked()
}

// finishRunLocked queues the summary for the recorder. Caller must hold s.mu.
func (s *Session) finishRunLocked(outcome RunOutcome) {
	st := &s.state
	summary := RunSummary{
		RunID:            st.runID,
		Outcome:          outcome,
		Reason:           st.gameOverReason,
		Day:              st.day,
		Money:            st.money,
		Reputation:       st.reputation,
		Progress:         Progress(st.day, st.reputation),
		TotalEarnings:    st.totals.earnings,
		CustomersServed:  st.totals.served,
		AllergyIncidents: st.totals.allergies,
		Timeouts:         st.totals.timeouts,
		FinishedAt:       s.now(),
	}
	s.pending = &summary

	metrics.RunsFinished.WithLabelValues(string(outcome)).Inc()
	s.log.Info("Run finished",
		"run_id", st.runID,
		"outcome", outcome,
		"day", st.day,
		"money", st.money,
		"reputation", st.reputation)
}
