/*
Package game
File: models.go
Description:
    Defines the data structures shared by the state machine and its
    consumers: phases, upgrades, day results, the published Snapshot and
    the RunSummary handed to the history recorder.

    No game logic is performed here; this file is strictly for type definitions.
*/

package game

import (
	"time"

	"github.com/everforgeworks/umami-lab/internal/customer"
	"github.com/everforgeworks/umami-lab/internal/kitchen"
	"github.com/everforgeworks/umami-lab/internal/scoring"
)

// Phase is the state of the day loop.
type Phase string

const (
	PhaseMarket   Phase = "market"
	PhaseService  Phase = "service"
	PhaseResults  Phase = "results"
	PhaseGameOver Phase = "gameOver"
	PhaseVictory  Phase = "victory"
)

// Terminal reports whether only Restart can leave this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// UpgradeKey identifies a one-time upgrade.
type UpgradeKey string

const (
	UpgradeBetterTips    UpgradeKey = "betterTips"
	UpgradeFasterService UpgradeKey = "fasterService"
	UpgradeSkillBoost    UpgradeKey = "skillBoost"
)

// Upgrade is a one-time purchase paid for with reputation.
type Upgrade struct {
	Key         UpgradeKey `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"` // Reputation deducted at purchase
}

// Upgrades lists every purchasable upgrade.
var Upgrades = []Upgrade{
	{UpgradeBetterTips, "Better Tips", "Customers tip 50% more", 20},
	{UpgradeFasterService, "Faster Service", "+15 seconds per timed service", 30},
	{UpgradeSkillBoost, "Skill Boost", "+1.5 tolerance on every customer", 40},
}

// LookupUpgrade finds an upgrade by key.
func LookupUpgrade(key UpgradeKey) (Upgrade, bool) {
	for _, u := range Upgrades {
		if u.Key == key {
			return u, true
		}
	}
	return Upgrade{}, false
}

// DayResult records how one customer of the day was resolved.
type DayResult struct {
	CustomerID      string                `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	Avatar          string                `json:"avatar"`
	Intensity       float64               `json:"intensity"`
	Accuracy        int                   `json:"accuracy"` // 0 for allergy incidents and timeouts
	Earnings        int                   `json:"earnings"`
	ReputationDelta int                   `json:"reputation_delta"`
	Feedback        string                `json:"feedback"`
	Tier            scoring.Tier          `json:"tier"`
	Dish            *kitchen.FlavorVector `json:"dish,omitempty"` // nil when nothing was served
	Target          kitchen.FlavorVector  `json:"target"`
	AllergyIncident bool                  `json:"allergy_incident"`
	TimedOut        bool                  `json:"timed_out"`
}

// Snapshot is an immutable copy of the session, safe to hand to other goroutines.
type Snapshot struct {
	Version    uint64 `json:"version"` // Increases with every published transition
	RunID      string `json:"run_id"`
	Phase      Phase  `json:"phase"`
	Day        int    `json:"day"`
	Money      int    `json:"money"`
	Reputation int    `json:"reputation"`

	Inventory map[string]int      `json:"inventory"`
	Upgrades  map[UpgradeKey]bool `json:"upgrades"`

	// Service
	Customer           *customer.Customer   `json:"customer"`
	QueueLength        int                  `json:"queue_length"`
	CustomersRemaining int                  `json:"customers_remaining"`
	RemainingSeconds   *int                 `json:"remaining_seconds"` // nil = unlimited
	Dish               []kitchen.Ingredient `json:"dish"`
	DishFlavor         kitchen.FlavorVector `json:"dish_flavor"`

	// Day accounting
	Results         []DayResult `json:"results"`
	DayEarnings     int         `json:"day_earnings"`
	DayStartMoney   int         `json:"day_start_money"`
	MinimumEarnings int         `json:"minimum_earnings"`

	// Terminal
	GameOverReason string `json:"game_over_reason,omitempty"`
	Progress       int    `json:"progress"`
}

// HasUpgrade reports whether the upgrade is owned.
func (s Snapshot) HasUpgrade(k UpgradeKey) bool {
	return s.Upgrades[k]
}

// RunOutcome is how a run ended.
type RunOutcome string

const (
	OutcomeVictory  RunOutcome = "victory"
	OutcomeGameOver RunOutcome = "gameOver"
)

// RunSummary describes a finished run.
type RunSummary struct {
	RunID            string     `json:"run_id"`
	Outcome          RunOutcome `json:"outcome"`
	Reason           string     `json:"reason,omitempty"`
	Day              int        `json:"day"`
	Money            int        `json:"money"`
	Reputation       int        `json:"reputation"`
	Progress         int        `json:"progress"`
	TotalEarnings    int        `json:"total_earnings"`
	CustomersServed  int        `json:"customers_served"`
	AllergyIncidents int        `json:"allergy_incidents"`
	Timeouts         int        `json:"timeouts"`
	FinishedAt       time.Time  `json:"finished_at"`
}

// Recorder receives a summary whenever a run reaches gameOver or victory.
type Recorder interface {
	Record(RunSummary)
}
