package autoplay

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/game"
	"github.com/everforgeworks/umami-lab/internal/history"
	"github.com/everforgeworks/umami-lab/internal/kitchen"
	"github.com/everforgeworks/umami-lab/internal/scoring"
)

func TestCompose_PicksBestSingleUnit(t *testing.T) {
	catalog := kitchen.Default().All()
	guest := customer.Customer{Target: kitchen.FlavorVector{Salty: 7, Umami: 9, Bitter: 1}, Tolerance: 3}

	picks := Compose(guest, map[string]int{"miso": 1, "carrot": 3}, catalog, false)

	require.NotEmpty(t, picks)
	assert.Equal(t, "miso", picks[0].Key, "miso matches the target exactly")
	assert.Len(t, picks, 1, "adding carrots only dilutes a perfect match")
}

func TestCompose_SkipsAllergens(t *testing.T) {
	catalog := kitchen.Default().All()
	guest := customer.Customer{Target: kitchen.FlavorVector{Salty: 7, Umami: 9}, Tolerance: 3, Allergy: kitchen.AllergenSoy}

	picks := Compose(guest, map[string]int{"miso": 2, "soySauce": 2, "mushroom": 1}, catalog, false)

	require.NotEmpty(t, picks)
	assert.False(t, scoring.CheckAllergy(picks, kitchen.AllergenSoy))
}

func TestCompose_RespectsInventoryAndDishLimit(t *testing.T) {
	catalog := kitchen.Default().All()
	guest := customer.Customer{Target: kitchen.FlavorVector{Sweet: 9}, Tolerance: 2}

	picks := Compose(guest, map[string]int{"carrot": 9}, catalog, false)
	assert.LessOrEqual(t, len(picks), 5)

	assert.Empty(t, Compose(guest, map[string]int{}, catalog, false))
	assert.Empty(t, Compose(guest, map[string]int{"tofu": 0}, catalog, false))
}

func TestBotPlaysToTheEnd(t *testing.T) {
	store := history.NewStore(history.DefaultConfig())
	session := game.NewSession(game.Options{
		Generator:     customer.NewGenerator(rand.New(rand.NewSource(3)).Float64),
		TickerFactory: (&game.ManualTickers{}).Factory,
		Recorder:      store,
	})
	t.Cleanup(session.Close)

	result, err := New(session).Play(context.Background())
	require.NoError(t, err)

	assert.Contains(t, []Outcome{OutcomeVictory, OutcomeGameOver, OutcomeStalled}, result.Outcome)
	assert.GreaterOrEqual(t, result.Day, 1)
	if result.Outcome != OutcomeStalled {
		_, ok := store.Get(result.RunID)
		assert.True(t, ok, "terminal runs are recorded")
	}
}

func TestBotHonorsContext(t *testing.T) {
	session := game.NewSession(game.Options{TickerFactory: (&game.ManualTickers{}).Factory})
	t.Cleanup(session.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(session).Play(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate(t *testing.T) {
	var seen []Result
	summary, err := Simulate(context.Background(), SimConfig{Runs: 5, Seed: 42}, func(r Result) {
		seen = append(seen, r)
	})
	require.NoError(t, err)

	assert.Len(t, seen, 5)
	assert.Equal(t, 5, summary.Runs)
	assert.Equal(t, 5, summary.Victories+summary.GameOvers+summary.Stalls)
	assert.GreaterOrEqual(t, summary.MeanFinalDay, 1.0)
	assert.GreaterOrEqual(t, summary.BestDay, 1)
}

func TestSummaryAdd(t *testing.T) {
	var s Summary
	s.Add(Result{Outcome: OutcomeGameOver, Day: 2})
	s.Add(Result{Outcome: OutcomeVictory, Day: 15})
	s.Add(Result{Outcome: OutcomeStalled, Day: 4})

	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1, s.Victories)
	assert.Equal(t, 1, s.GameOvers)
	assert.Equal(t, 1, s.Stalls)
	assert.InDelta(t, 7.0, s.MeanFinalDay, 1e-9)
	assert.Equal(t, 15, s.BestDay)
}
