package planner

import (
	"sort"
	"strings"

	"ai-trip-planner/internal/trip"
)

// ScoreActivities ranks activities by a blend of rating (40%),
// affordability against the per-day budget (40%) and interest match
// (20%). The sort is stable so equally scored activities keep their
// original order.
func ScoreActivities(activities []trip.Activity, interests []string, perDayBudget int) []trip.Activity {
	type scored struct {
		activity trip.Activity
		score    float64
	}

	ranked := make([]scored, 0, len(activities))
	for _, a := range activities {
		ratingScore := a.Rating / 5.0

		budgetRef := perDayBudget
		if budgetRef < 1 {
			budgetRef = 1
		}
		priceScore := 1 - float64(a.Price)/float64(budgetRef)
		if priceScore < 0 {
			priceScore = 0
		}

		interestScore := 0.5
		name := strings.ToLower(a.Name)
		desc := strings.ToLower(a.Desc)
		for _, interest := range interests {
			tag := strings.ToLower(interest)
			if strings.Contains(name, tag) || strings.Contains(desc, tag) {
				interestScore = 1.0
				break
			}
		}

		ranked = append(ranked, scored{
			activity: a,
			score:    ratingScore*0.4 + priceScore*0.4 + interestScore*0.2,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]trip.Activity, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.activity)
	}
	return out
}
