package scoring

import "github.com/everforgeworks/umami-lab/internal/kitchen"

// Guest is the part of a customer the judge needs.
type Guest struct {
	Target    kitchen.FlavorVector
	Tolerance float64
	Tip       int
	Allergy   kitchen.Allergen
}

// Modifiers carries the player's standing and owned upgrades.
type Modifiers struct {
	Reputation int
	BetterTips bool
	SkillBoost bool
}

// Verdict is the full result of judging one served dish.
type Verdict struct {
	Outcome
	Accuracy        int  `json:"accuracy"`
	AllergyIncident bool `json:"allergy_incident"`
}

// Judge runs the allergy guard and, if it passes, scores the dish and prices the tip.
func Judge(selected []kitchen.Ingredient, flavor kitchen.FlavorVector, g Guest, m Modifiers) Verdict {
	if CheckAllergy(selected, g.Allergy) {
		return Verdict{
			Outcome:         AllergyOutcome(g.Allergy),
			Accuracy:        0,
			AllergyIncident: true,
		}
	}

	accuracy := Score(flavor, g.Target, g.Tolerance, m.SkillBoost)
	tip := Tip(g.Tip, accuracy, m.Reputation, m.BetterTips)
	return Verdict{
		Outcome:  Classify(accuracy, tip),
		Accuracy: accuracy,
	}
}
