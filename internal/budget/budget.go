// Package budget splits a total trip budget into category allocations.
package budget

import "ai-trip-planner/internal/trip"

// Category percentages. They sum to 100; integer division remainders
// accrue to the breakdown's Remaining field.
const (
	flightsPct    = 30
	hotelPct      = 30
	foodPct       = 20
	activitiesPct = 12
	transportPct  = 5
	shoppingPct   = 3
)

// Allocate maps a total budget and trip duration to a structured cost
// breakdown. The split is fixed regardless of destination or
// interests; durationDays is accepted for signature stability with
// planners that scale per-day figures from the result.
func Allocate(total, durationDays int) trip.BudgetBreakdown {
	if total < 0 {
		total = 0
	}
	_ = durationDays

	b := trip.BudgetBreakdown{
		Total:      total,
		Flights:    total * flightsPct / 100,
		Hotel:      total * hotelPct / 100,
		Food:       total * foodPct / 100,
		Activities: total * activitiesPct / 100,
		Transport:  total * transportPct / 100,
		Shopping:   total * shoppingPct / 100,
	}

	remaining := total - b.CategorySum()
	if remaining < 0 {
		remaining = 0
	}
	b.Remaining = remaining
	return b
}
