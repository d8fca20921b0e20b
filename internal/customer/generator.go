/*
Package customer
File: generator.go
Description:
    Procedural customer generation.

    Every random choice is pulled from an injected uniform source over
    [0,1), in a fixed order, so a scripted source replays the exact same
    customer. The per-profile target tables encode tuned game balance and
    must not be re-derived.
*/

package customer

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// AllergyStartDay is the first day customers may declare an allergy.
const AllergyStartDay = 5

// AllergyChance is the probability that an eligible customer has an allergy.
const AllergyChance = 0.4

// RandomSource yields uniform values in [0,1).
type RandomSource func() float64

// Generator builds customers from a random source.
type Generator struct {
	rnd   RandomSource
	newID func() string
}

// NewGenerator creates a generator. A nil source falls back to math/rand.
func NewGenerator(rnd RandomSource) *Generator {
	if rnd == nil {
		rnd = rand.Float64 //nolint:gosec // Game logic randomness, not security critical
	}
	return &Generator{
		rnd:   rnd,
		newID: uuid.NewString,
	}
}

// WithIDFunc overrides the identifier factory (tests use a counter).
func (g *Generator) WithIDFunc(fn func() string) *Generator {
	g.newID = fn
	return g
}

// magnitudes holds the per-call integer bases the target tables are built from.
type magnitudes struct {
	strong  float64 // 7-9
	mild    float64 // 2-4
	base    float64 // 1-2
	low     float64 // 2-3, mild branch only
	veryLow float64 // 0-1, mild branch only
}

// Generate produces a new customer for the given day.
func (g *Generator) Generate(day int) Customer {
	// 1. Bold vs mild branch
	intensity := g.rnd()
	bold := intensity > BoldThreshold

	// 2. Archetype
	profile := Profiles[g.pick(len(Profiles))]

	// 3. Magnitudes for this call
	m := magnitudes{
		strong: g.floorRange(7, 3),
		mild:   g.floorRange(2, 3),
		base:   g.floorRange(1, 2),
	}

	// 4. Target shape
	var target kitchen.FlavorVector
	if bold {
		target = boldTarget(profile, m)
	} else {
		m.low = g.floorRange(2, 2)
		m.veryLow = g.floorRange(0, 2)
		target = mildTarget(profile, m)
	}

	// 5. Tolerance: bold customers are less forgiving
	var tolerance float64
	if bold {
		tolerance = 2 + g.rnd()
	} else {
		tolerance = 3 + g.rnd()*1.5
	}

	// 6. Allergy, only from AllergyStartDay on
	allergy := kitchen.AllergenNone
	if day >= AllergyStartDay && g.rnd() < AllergyChance {
		allergy = kitchen.Allergens[g.pick(len(kitchen.Allergens))]
	}

	// 7. Identity and tip
	name := Names[g.pick(len(Names))]
	avatar := Avatars[g.pick(len(Avatars))]
	tip := int(g.floorRange(5, 5))

	return Customer{
		ID:        g.newID(),
		Name:      name,
		Avatar:    avatar,
		Target:    target,
		Tolerance: tolerance,
		Patience:  DefaultPatience,
		Tip:       tip,
		Intensity: intensity,
		Profile:   profile,
		Allergy:   allergy,
	}
}

// pick returns a uniform index in [0,n).
func (g *Generator) pick(n int) int {
	idx := int(math.Floor(g.rnd() * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// floorRange returns floor(lo + rnd*span).
func (g *Generator) floorRange(lo, span float64) float64 {
	return math.Floor(lo + g.rnd()*span)
}

// boldTarget builds the narrow, high-peak shape.
func boldTarget(p Profile, m magnitudes) kitchen.FlavorVector {
	switch p {
	case ProfileSweetLover:
		return kitchen.FlavorVector{Sour: m.base, Sweet: m.strong, Bitter: 0, Salty: m.mild, Umami: m.mild, Spicy: m.base}
	case ProfileUmamiLover:
		return kitchen.FlavorVector{Sour: m.base, Sweet: m.mild, Bitter: m.base, Salty: m.mild + 2, Umami: m.strong, Spicy: m.base}
	case ProfileSourLover:
		return kitchen.FlavorVector{Sour: m.strong, Sweet: m.mild, Bitter: m.base, Salty: m.mild, Umami: m.mild, Spicy: m.base}
	case ProfileSpicyLover:
		return kitchen.FlavorVector{Sour: m.mild, Sweet: m.base, Bitter: m.base, Salty: m.mild, Umami: m.mild + 1, Spicy: m.strong}
	case ProfileSaltyLover:
		return kitchen.FlavorVector{Sour: m.base, Sweet: m.mild, Bitter: m.base, Salty: m.strong, Umami: m.mild + 2, Spicy: m.base}
	case ProfileBitterLover:
		return kitchen.FlavorVector{Sour: m.mild, Sweet: m.base, Bitter: m.strong, Salty: m.mild, Umami: m.mild, Spicy: m.base}
	case ProfileBalanced:
		return kitchen.FlavorVector{Sour: m.mild + 1, Sweet: m.mild + 1, Bitter: m.mild, Salty: m.mild + 1, Umami: m.mild + 2, Spicy: m.mild}
	}
	return kitchen.FlavorVector{}
}

// mildTarget builds the flatter shape; the signature axis sits one step above mild.
func mildTarget(p Profile, m magnitudes) kitchen.FlavorVector {
	switch p {
	case ProfileSweetLover:
		return kitchen.FlavorVector{Sour: m.veryLow, Sweet: m.mild + 1, Bitter: m.veryLow, Salty: m.low, Umami: m.low, Spicy: m.veryLow}
	case ProfileUmamiLover:
		return kitchen.FlavorVector{Sour: m.veryLow, Sweet: m.low, Bitter: m.veryLow, Salty: m.low + 1, Umami: m.mild + 1, Spicy: m.veryLow}
	case ProfileSourLover:
		return kitchen.FlavorVector{Sour: m.mild + 1, Sweet: m.low, Bitter: m.veryLow, Salty: m.low, Umami: m.low, Spicy: m.veryLow}
	case ProfileSpicyLover:
		return kitchen.FlavorVector{Sour: m.low, Sweet: m.veryLow, Bitter: m.veryLow, Salty: m.low, Umami: m.low, Spicy: m.mild + 1}
	case ProfileSaltyLover:
		return kitchen.FlavorVector{Sour: m.veryLow, Sweet: m.low, Bitter: m.veryLow, Salty: m.mild + 1, Umami: m.low + 1, Spicy: m.veryLow}
	case ProfileBitterLover:
		return kitchen.FlavorVector{Sour: m.low, Sweet: m.veryLow, Bitter: m.mild + 1, Salty: m.low, Umami: m.low, Spicy: m.veryLow}
	case ProfileBalanced:
		return kitchen.FlavorVector{Sour: m.low, Sweet: m.low, Bitter: m.low, Salty: m.low, Umami: m.low + 1, Spicy: m.low}
	}
	return kitchen.FlavorVector{}
}
