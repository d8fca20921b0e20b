/*
Package game
File: mechanics.go
Description:
    The day-progression formulas: how many customers arrive, how long
    service lasts, how much must be earned to survive, and the progress
    percentage shown when a run ends.
*/

package game

import "math"

// Run constants.
const (
	StartingDay        = 1
	StartingMoney      = 50
	StartingReputation = 0
	VictoryDay         = 15
	VictoryReputation  = 80
)

// Queue sizing.
const (
	BaseCustomers     = 2
	MaxCustomers      = 4
	CustomersDayStep  = 3
	FirstTimedDay     = 3
	BaseTimeLimit     = 60
	MinTimeLimit      = 30
	TimeLimitStep     = 5
	FasterServiceTime = 15
)

// Earnings gate.
const (
	BaseMinimumEarnings = 10
	MinimumEarningsStep = 5
)

// CustomersForDay returns the queue length for a day: min(2 + floor(day/3), 4).
func CustomersForDay(day int) int {
	n := BaseCustomers + day/CustomersDayStep
	if n > MaxCustomers {
		return MaxCustomers
	}
	return n
}

// TimeLimit returns the service countdown in seconds.
// The second value is false for untimed days.
func TimeLimit(day int, fasterService bool) (int, bool) {
	if day < FirstTimedDay {
		return 0, false
	}

	// Formula: max(30, 60 - (day-3)*5 + bonus)
	limit := BaseTimeLimit - (day-FirstTimedDay)*TimeLimitStep
	if fasterService {
		limit += FasterServiceTime
	}
	if limit < MinTimeLimit {
		limit = MinTimeLimit
	}
	return limit, true
}

// MinimumEarnings is what a day must earn to avoid game over.
func MinimumEarnings(day int) int {
	return BaseMinimumEarnings + (day-1)*MinimumEarningsStep
}

// Progress is the 0-100ish score shown on the game-over screen.
// Formula: round((day/15 + reputation/80) * 50)
func Progress(day, reputation int) int {
	p := (float64(day)/VictoryDay + float64(reputation)/VictoryReputation) * 50
	return int(math.Round(p))
}
