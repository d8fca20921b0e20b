/*
Package autoplay
File: bot.go
Description:
    A greedy bot that plays a session to the end. Used to sanity-check
    game balance from the command line.

    Market:  buy upgrades once reputation is twice their cost, then
             restock every ingredient cheapest-first.
    Service: stage the owned, allergy-safe ingredient that most improves
             the score, up to a full dish, then serve.
    Results: advance the day.
*/

package autoplay

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/dish"
	"github.com/everforgeworks/umami-lab/internal/game"
	"github.com/everforgeworks/umami-lab/internal/kitchen"
	"github.com/everforgeworks/umami-lab/internal/scoring"
)

// Outcome is how a bot run ended.
type Outcome string

const (
	OutcomeVictory  Outcome = "victory"
	OutcomeGameOver Outcome = "gameOver"
	OutcomeStalled  Outcome = "stalled" // A customer could not be served with anything owned
)

// Defaults for Bot tuning.
const (
	DefaultStockTarget = 2
	DefaultMaxActions  = 20000
	upgradeRepFactor   = 2
)

// ErrTooManyActions guards against a bot that never reaches a terminal phase.
var ErrTooManyActions = errors.New("autoplay: action limit reached")

// Result summarizes one bot run.
type Result struct {
	RunID      string  `json:"run_id"`
	Outcome    Outcome `json:"outcome"`
	Day        int     `json:"day"`
	Money      int     `json:"money"`
	Reputation int     `json:"reputation"`
	Actions    int     `json:"actions"`
}

// Bot drives one session.
type Bot struct {
	session     *game.Session
	catalog     []kitchen.Ingredient // cheapest first
	StockTarget int
	MaxActions  int
}

// New creates a bot for session with default tuning.
func New(session *game.Session) *Bot {
	items := session.Catalog().All()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Cost < items[j].Cost })
	return &Bot{
		session:     session,
		catalog:     items,
		StockTarget: DefaultStockTarget,
		MaxActions:  DefaultMaxActions,
	}
}

// Play runs the session until it reaches a terminal phase or stalls.
func (b *Bot) Play(ctx context.Context) (Result, error) {
	actions := 0
	for {
		if err := ctx.Err(); err != nil {
			return b.result("", actions), err
		}
		if actions >= b.MaxActions {
			return b.result("", actions), ErrTooManyActions
		}
		actions++

		snap := b.session.Snapshot()
		var err error
		switch snap.Phase {
		case game.PhaseMarket:
			b.shop(snap)
			err = b.session.StartService()
		case game.PhaseService:
			var served bool
			served, err = b.serve(snap)
			if err == nil && !served {
				return b.result(OutcomeStalled, actions), nil
			}
		case game.PhaseResults:
			err = b.session.NextDay()
		case game.PhaseVictory:
			return b.result(OutcomeVictory, actions), nil
		case game.PhaseGameOver:
			return b.result(OutcomeGameOver, actions), nil
		}
		if err != nil {
			return b.result("", actions), fmt.Errorf("autoplay: %s: %w", snap.Phase, err)
		}
	}
}

func (b *Bot) result(outcome Outcome, actions int) Result {
	snap := b.session.Snapshot()
	return Result{
		RunID:      snap.RunID,
		Outcome:    outcome,
		Day:        snap.Day,
		Money:      snap.Money,
		Reputation: snap.Reputation,
		Actions:    actions,
	}
}

// shop buys affordable upgrades, then restocks. Rejections are expected and ignored.
func (b *Bot) shop(snap game.Snapshot) {
	rep := snap.Reputation
	for _, u := range game.Upgrades {
		if snap.HasUpgrade(u.Key) || rep < upgradeRepFactor*u.Cost {
			continue
		}
		if b.session.BuyUpgrade(u.Key) == nil {
			rep -= u.Cost
		}
	}

	money := snap.Money
	for _, ing := range b.catalog {
		for have := snap.Inventory[ing.Key]; have < b.StockTarget && money >= ing.Cost; have++ {
			if b.session.BuyIngredient(ing.Key) != nil {
				break
			}
			money -= ing.Cost
		}
	}
}

// serve composes a dish for the current customer and serves it.
// It reports false when nothing owned can be served.
func (b *Bot) serve(snap game.Snapshot) (bool, error) {
	if snap.Customer == nil {
		return false, nil
	}
	picks := Compose(*snap.Customer, snap.Inventory, b.catalog, snap.HasUpgrade(game.UpgradeSkillBoost))
	if len(picks) == 0 {
		return false, nil
	}
	for _, ing := range picks {
		if err := b.session.AddIngredient(ing.Key); err != nil {
			return false, err
		}
	}
	_, err := b.session.Serve()
	return err == nil, err
}

// Compose greedily picks up to dish.MaxIngredients units from inventory.
// The first unit is always the best single candidate; later units are
// added only while they raise the score. Allergens are never picked.
func Compose(c customer.Customer, inventory map[string]int, catalog []kitchen.Ingredient, skillBoost bool) []kitchen.Ingredient {
	left := make(map[string]int, len(inventory))
	for k, v := range inventory {
		left[k] = v
	}

	var picks []kitchen.Ingredient
	best := -1
	for len(picks) < dish.MaxIngredients {
		var choice *kitchen.Ingredient
		choiceScore := best
		for i := range catalog {
			ing := catalog[i]
			if left[ing.Key] <= 0 || scoring.CheckAllergy([]kitchen.Ingredient{ing}, c.Allergy) {
				continue
			}
			candidate := append(append([]kitchen.Ingredient(nil), picks...), ing)
			score := scoring.Score(dish.Flavor(candidate), c.Target, c.Tolerance, skillBoost)
			if score > choiceScore {
				choice, choiceScore = &catalog[i], score
			}
		}
		if choice == nil {
			break
		}
		picks = append(picks, *choice)
		left[choice.Key]--
		best = choiceScore
	}
	return picks
}
