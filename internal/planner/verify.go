package planner

import "ai-trip-planner/internal/trip"

// Verification is the result of the quality-assurance pass over a
// generated itinerary.
type Verification struct {
	Checks       map[string]bool
	Issues       []string
	QualityScore float64
	AllPassed    bool
}

// Verify checks an itinerary for completeness and budget compliance.
func Verify(it *trip.Itinerary) Verification {
	checks := map[string]bool{
		"has_flights":      it.Flights.Outbound.Airline != "" && it.Flights.Return.Airline != "",
		"has_hotel":        it.Hotel.Name != "",
		"has_activities":   len(it.DailyPlans) > 0,
		"budget_allocated": it.Budget.Total > 0,
		"within_budget":    it.Budget.Remaining >= 0,
	}

	var issues []string
	if !checks["has_flights"] {
		issues = append(issues, "Missing flight information")
	}
	if !checks["has_hotel"] {
		issues = append(issues, "Missing hotel information")
	}
	if !checks["has_activities"] {
		issues = append(issues, "No activities planned")
	}
	if !checks["within_budget"] {
		issues = append(issues, "Budget exceeded")
	}

	passed := 0
	allPassed := true
	for _, ok := range checks {
		if ok {
			passed++
		} else {
			allPassed = false
		}
	}

	return Verification{
		Checks:       checks,
		Issues:       issues,
		QualityScore: float64(passed) / float64(len(checks)) * 100,
		AllPassed:    allPassed,
	}
}
