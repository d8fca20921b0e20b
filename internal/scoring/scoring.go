/*
Package scoring
File: scoring.go
Description:
    Rules engine for serving a dish: accuracy against the customer's
    target, tip calculation, and classification of accuracy into an
    outcome tier (earnings, reputation change, feedback).
*/

package scoring

import (
	"math"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// MaxDistance approximates the largest distance between two points in a
// 6-axis box of side 10. Used to normalize; the result is not clamped.
const MaxDistance = 24.5

// SkillBoostTolerance is added to every customer's tolerance when the upgrade is owned.
const SkillBoostTolerance = 1.5

// Tip multipliers, applied in this order.
const (
	ReputationTipRate    = 0.01
	BetterTipsMultiplier = 1.5
	PerfectTipMultiplier = 1.3
	PerfectTipThreshold  = 90
)

// Reputation bounds.
const (
	MinReputation = 0
	MaxReputation = 100
)

// Score computes a 0-100 accuracy from the dish/target distance and tolerance.
func Score(dish, target kitchen.FlavorVector, tolerance float64, skillBoost bool) int {
	// 1. Normalized distance (can exceed 1 for extreme mismatches)
	normalized := dish.Distance(target) / MaxDistance

	// 2. Tolerance, widened by the upgrade
	effective := tolerance
	if skillBoost {
		effective += SkillBoostTolerance
	}

	// 3. Base score minus the penalty for exceeding tolerance
	base := math.Max(0, 100-normalized*100)
	penalty := math.Max(0, normalized*100-effective*10)
	final := math.Max(0, math.Min(100, base-penalty))

	return int(math.Round(final))
}

// Tip scales the customer's base tip by reputation, the tips upgrade and a perfection bonus.
func Tip(baseTip, accuracy, reputation int, betterTips bool) int {
	tip := float64(baseTip) * (1 + float64(reputation)*ReputationTipRate)
	if betterTips {
		tip *= BetterTipsMultiplier
	}
	if accuracy >= PerfectTipThreshold {
		tip *= PerfectTipMultiplier
	}
	return int(math.Round(tip))
}

// ClampReputation keeps reputation within [MinReputation, MaxReputation].
func ClampReputation(rep int) int {
	if rep < MinReputation {
		return MinReputation
	}
	if rep > MaxReputation {
		return MaxReputation
	}
	return rep
}
