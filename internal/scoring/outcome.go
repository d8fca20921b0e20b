/*
Package scoring
File: outcome.go
Description:
    Outcome tiers. Every serve (and every customer lost to the clock)
    resolves to exactly one Outcome.
*/

package scoring

import (
	"fmt"
	"math"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// Tier names the band an outcome falls into.
type Tier string

const (
	TierPerfect   Tier = "perfect"
	TierDelicious Tier = "delicious"
	TierDecent    Tier = "decent"
	TierOff       Tier = "off"
	TierWrong     Tier = "wrong"
	TierAllergy   Tier = "allergy"
	TierTimeout   Tier = "timeout"
)

// Fixed penalty values.
const (
	AllergyEarnings         = 1
	AllergyReputationDelta  = -10
	TimeoutEarnings         = 0
	TimeoutReputationDelta  = -5
	FeedbackTimeout         = "Time ran out! No dish served. 😞"
	allergyFeedbackTemplate = "🚨 ALLERGIC REACTION! I told you I'm allergic to %s! This is unacceptable! 😡"
)

// Outcome is the economic result of one customer.
type Outcome struct {
	Tier            Tier   `json:"tier"`
	Earnings        int    `json:"earnings"`
	ReputationDelta int    `json:"reputation_delta"`
	Feedback        string `json:"feedback"`
}

// band is one row of the accuracy table.
type band struct {
	min      int
	tier     Tier
	repDelta int
	feedback string
	earnings func(tip int) int
}

// bands are checked top-down; the first match wins.
var bands = []band{
	{90, TierPerfect, 5, "Perfection! This is exactly what I wanted! 🌟", func(tip int) int { return 15 + tip }},
	{75, TierDelicious, 3, "Delicious! Really enjoyed this. 😊", func(tip int) int { return 12 + tip }},
	{60, TierDecent, 1, "Pretty good, but not quite what I expected. 😐", func(tip int) int { return 8 + int(math.Floor(float64(tip)*0.5)) }},
	{40, TierOff, -2, "Hmm, this wasn't really what I ordered... 😕", func(int) int { return 5 }},
}

var wrongBand = band{0, TierWrong, -5, "I'm sorry, but this isn't what I asked for. 😞", func(int) int { return 2 }}

// Classify maps an accuracy and an already-computed tip to its tier.
func Classify(accuracy, tip int) Outcome {
	b := wrongBand
	for _, candidate := range bands {
		if accuracy >= candidate.min {
			b = candidate
			break
		}
	}
	return Outcome{
		Tier:            b.tier,
		Earnings:        b.earnings(tip),
		ReputationDelta: b.repDelta,
		Feedback:        b.feedback,
	}
}

// AllergyOutcome is the fixed severe penalty for serving a declared allergen.
func AllergyOutcome(a kitchen.Allergen) Outcome {
	return Outcome{
		Tier:            TierAllergy,
		Earnings:        AllergyEarnings,
		ReputationDelta: AllergyReputationDelta,
		Feedback:        fmt.Sprintf(allergyFeedbackTemplate, a),
	}
}

// TimeoutOutcome is recorded for each customer still waiting when the countdown expires.
func TimeoutOutcome() Outcome {
	return Outcome{
		Tier:            TierTimeout,
		Earnings:        TimeoutEarnings,
		ReputationDelta: TimeoutReputationDelta,
		Feedback:        FeedbackTimeout,
	}
}
