/*
Package game
File: economy.go
Description:
    Handles the money and reputation side of the game.
    This includes:
    1. Buying ingredient units in the market.
    2. Buying one-time upgrades with reputation.
    3. Applying a customer outcome to money, day earnings and reputation.
*/

package game

import (
	"github.com/everforgeworks/umami-lab/internal/metrics"
	"github.com/everforgeworks/umami-lab/internal/scoring"
)

// BuyIngredient buys one unit of the ingredient. Market phase only.
func (s *Session) BuyIngredient(key string) error {
	return s.mutate("buy_ingredient", func() error {
		if s.state.phase != PhaseMarket {
			return ErrWrongPhase
		}
		ing, ok := s.catalog.Get(key)
		if !ok {
			return ErrUnknownIngredient
		}
		if s.state.money < ing.Cost {
			return ErrInsufficientFunds
		}

		s.state.money -= ing.Cost
		s.state.inventory[key]++

		metrics.IngredientsBought.WithLabelValues(key).Inc()
		metrics.MoneySpent.Add(float64(ing.Cost))
		return nil
	})
}

// BuyUpgrade buys a one-time upgrade, paying its cost in reputation. Market phase only.
func (s *Session) BuyUpgrade(key UpgradeKey) error {
	return s.mutate("buy_upgrade", func() error {
		if s.state.phase != PhaseMarket {
			return ErrWrongPhase
		}
		up, ok := LookupUpgrade(key)
		if !ok {
			return ErrUnknownUpgrade
		}
		if s.state.upgrades[key] {
			return ErrUpgradeOwned
		}
		if s.state.reputation < up.Cost {
			return ErrInsufficientReputation
		}

		s.state.reputation = scoring.ClampReputation(s.state.reputation - up.Cost)
		s.state.upgrades[key] = true

		metrics.UpgradesBought.WithLabelValues(string(key)).Inc()
		s.log.Info("Upgrade bought", "run_id", s.state.runID, "upgrade", key, "reputation", s.state.reputation)
		return nil
	})
}

// applyOutcomeLocked books an outcome against the run. Caller must hold s.mu.
func (s *Session) applyOutcomeLocked(o scoring.Outcome) {
	s.state.money += o.Earnings
	s.state.dayEarnings += o.Earnings
	s.state.totals.earnings += o.Earnings
	s.state.reputation = scoring.ClampReputation(s.state.reputation + o.ReputationDelta)

	if o.Tier != scoring.TierTimeout {
		metrics.DishesServed.WithLabelValues(string(o.Tier)).Inc()
	}
	if o.Earnings > 0 {
		metrics.MoneyEarned.Add(float64(o.Earnings))
	}
}

// modifiersLocked returns the scoring modifiers for the current standing.
func (s *Session) modifiersLocked() scoring.Modifiers {
	return scoring.Modifiers{
		Reputation: s.state.reputation,
		BetterTips: s.state.upgrades[UpgradeBetterTips],
		SkillBoost: s.state.upgrades[UpgradeSkillBoost],
	}
}
