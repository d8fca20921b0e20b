package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

func randomVector(r *rand.Rand, max float64) kitchen.FlavorVector {
	return kitchen.FlavorVector{
		Sour:   r.Float64() * max,
		Sweet:  r.Float64() * max,
		Bitter: r.Float64() * max,
		Salty:  r.Float64() * max,
		Umami:  r.Float64() * max,
		Spicy:  r.Float64() * max,
	}
}

func TestScore_MushroomAgainstUmamiTarget(t *testing.T) {
	dish := kitchen.FlavorVector{Sweet: 1, Bitter: 2, Salty: 1, Umami: 8}
	target := kitchen.FlavorVector{Umami: 9}

	// distance sqrt(7) ~ 2.65 -> normalized ~0.108 -> base ~89.2, no penalty
	assert.Equal(t, 89, Score(dish, target, 3, false))
}

func TestScore_PerfectMatchIsHundred(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randomVector(r, 9)
		assert.Equal(t, 100, Score(v, v, r.Float64()*5, i%2 == 0))
	}
	assert.Equal(t, 100, Score(kitchen.FlavorVector{}, kitchen.FlavorVector{}, 0, false))
}

func TestScore_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		got := Score(randomVector(r, 20), randomVector(r, 10), r.Float64()*5, r.Intn(2) == 0)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestScore_TolerancePenalty(t *testing.T) {
	// distance 4.9 -> normalized 0.2 -> base 80, penalty 20 - tol*10
	dish := kitchen.FlavorVector{Umami: 4.9}
	target := kitchen.FlavorVector{}

	assert.Equal(t, 80, Score(dish, target, 2, false), "tolerance covers the whole miss")
	assert.Equal(t, 70, Score(dish, target, 1, false))
	assert.Equal(t, 80, Score(dish, target, 1, true), "skill boost widens tolerance by 1.5")
	assert.Equal(t, 0, Score(kitchen.FlavorVector{Umami: 20, Sweet: 20}, target, 2, false))
}

func TestTip(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		accuracy   int
		reputation int
		betterTips bool
		want       int
	}{
		{"plain", 5, 80, 0, false, 5},
		{"reputation bonus", 8, 80, 50, false, 12},
		{"better tips", 6, 80, 0, true, 9},
		{"perfection bonus", 7, 90, 0, false, 9},
		{"all multipliers", 9, 95, 100, true, 35},
		{"rounds half up", 5, 89, 10, false, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tip(tt.base, tt.accuracy, tt.reputation, tt.betterTips))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		accuracy int
		tip      int
		tier     Tier
		earnings int
		delta    int
	}{
		{100, 7, TierPerfect, 22, 5},
		{90, 7, TierPerfect, 22, 5},
		{89, 7, TierDelicious, 19, 3},
		{75, 7, TierDelicious, 19, 3},
		{74, 7, TierDecent, 11, 1},
		{60, 9, TierDecent, 12, 1},
		{59, 9, TierOff, 5, -2},
		{40, 9, TierOff, 5, -2},
		{39, 9, TierWrong, 2, -5},
		{0, 9, TierWrong, 2, -5},
	}
	for _, tt := range tests {
		got := Classify(tt.accuracy, tt.tip)
		assert.Equal(t, tt.tier, got.Tier, "accuracy %d", tt.accuracy)
		assert.Equal(t, tt.earnings, got.Earnings, "accuracy %d", tt.accuracy)
		assert.Equal(t, tt.delta, got.ReputationDelta, "accuracy %d", tt.accuracy)
		assert.NotEmpty(t, got.Feedback)
	}
}

func TestClampReputation(t *testing.T) {
	assert.Equal(t, 0, ClampReputation(-10))
	assert.Equal(t, 42, ClampReputation(42))
	assert.Equal(t, 100, ClampReputation(103))

	rep := 0
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		rep = ClampReputation(rep + r.Intn(31) - 15)
		assert.GreaterOrEqual(t, rep, 0)
		assert.LessOrEqual(t, rep, 100)
	}
}

func TestCheckAllergy(t *testing.T) {
	catalog := kitchen.Default()
	lemon, _ := catalog.Get("lemon")
	carrot, _ := catalog.Get("carrot")

	assert.True(t, CheckAllergy([]kitchen.Ingredient{carrot, lemon}, kitchen.AllergenCitrus))
	assert.False(t, CheckAllergy([]kitchen.Ingredient{carrot}, kitchen.AllergenCitrus))
	assert.False(t, CheckAllergy([]kitchen.Ingredient{lemon}, kitchen.AllergenNone))
	assert.False(t, CheckAllergy(nil, kitchen.AllergenSoy))
}

func TestJudge_AllergyTakesPrecedence(t *testing.T) {
	miso, _ := kitchen.Default().Get("miso")
	selected := []kitchen.Ingredient{miso}
	flavor := miso.Flavor()

	// a perfect flavor match still fails on the allergen
	v := Judge(selected, flavor, Guest{Target: flavor, Tolerance: 4, Tip: 9, Allergy: kitchen.AllergenSoy}, Modifiers{Reputation: 80, BetterTips: true})

	assert.True(t, v.AllergyIncident)
	assert.Equal(t, 0, v.Accuracy)
	assert.Equal(t, 1, v.Earnings)
	assert.Equal(t, -10, v.ReputationDelta)
	assert.Equal(t, TierAllergy, v.Tier)
	assert.Contains(t, v.Feedback, "soy")
}

func TestJudge_NormalServe(t *testing.T) {
	mushroom, _ := kitchen.Default().Get("mushroom")
	selected := []kitchen.Ingredient{mushroom}

	v := Judge(selected, mushroom.Flavor(), Guest{Target: kitchen.FlavorVector{Umami: 9}, Tolerance: 3, Tip: 6, Allergy: kitchen.AllergenCitrus}, Modifiers{})

	assert.False(t, v.AllergyIncident)
	assert.Equal(t, 89, v.Accuracy)
	assert.Equal(t, TierDelicious, v.Tier)
	assert.Equal(t, 12+6, v.Earnings)
	assert.Equal(t, 3, v.ReputationDelta)
}

func TestTimeoutOutcome(t *testing.T) {
	o := TimeoutOutcome()
	assert.Equal(t, 0, o.Earnings)
	assert.Equal(t, -5, o.ReputationDelta)
	assert.Equal(t, TierTimeout, o.Tier)
}
