package autoplay

import (
	"context"
	"math/rand"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/game"
)

// SimConfig controls a batch of bot runs.
type SimConfig struct {
	Runs     int
	Seed     int64 // Run i uses Seed+i
	Recorder game.Recorder
}

// Summary aggregates a batch.
type Summary struct {
	Runs         int     `json:"runs"`
	Victories    int     `json:"victories"`
	GameOvers    int     `json:"game_overs"`
	Stalls       int     `json:"stalls"`
	MeanFinalDay float64 `json:"mean_final_day"`
	BestDay      int     `json:"best_day"`
}

// Add folds one result into the summary.
func (s *Summary) Add(r Result) {
	total := s.MeanFinalDay * float64(s.Runs)
	s.Runs++
	s.MeanFinalDay = (total + float64(r.Day)) / float64(s.Runs)
	if r.Day > s.BestDay {
		s.BestDay = r.Day
	}
	switch r.Outcome {
	case OutcomeVictory:
		s.Victories++
	case OutcomeGameOver:
		s.GameOvers++
	case OutcomeStalled:
		s.Stalls++
	}
}

// Simulate plays cfg.Runs independent sessions. onRun, if set, is called after each run.
// Countdowns never fire: the bot acts instantly, so time pressure does not apply.
func Simulate(ctx context.Context, cfg SimConfig, onRun func(Result)) (Summary, error) {
	var summary Summary
	for i := 0; i < cfg.Runs; i++ {
		session := game.NewSession(game.Options{
			Generator:     customer.NewGenerator(rand.New(rand.NewSource(cfg.Seed + int64(i))).Float64), //nolint:gosec // Simulation randomness
			TickerFactory: (&game.ManualTickers{}).Factory,
			Recorder:      cfg.Recorder,
		})

		result, err := New(session).Play(ctx)
		session.Close()
		if err != nil {
			return summary, err
		}

		summary.Add(result)
		if onRun != nil {
			onRun(result)
		}
	}
	return summary, nil
}
