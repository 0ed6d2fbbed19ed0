// Package fallback deterministically synthesizes a complete itinerary
// from a trip request. It is the recovery path when the remote planner
// is unreachable or errors: no I/O, no randomness, never fails.
package fallback

import (
	"ai-trip-planner/internal/budget"
	"ai-trip-planner/internal/trip"
)

// HotelTiers names the accommodation tiers shown alongside a
// synthesized hotel. Informational only; no tier is selected
// automatically.
var HotelTiers = []string{"Luxury", "Mid-range", "Budget"}

const dateISO = "2006-01-02"

// Synthesize produces a complete, internally consistent itinerary for
// the request. Identical requests yield identical itineraries.
func Synthesize(req trip.TripRequest) *trip.Itinerary {
	days := req.DurationDays()
	breakdown := budget.Allocate(req.BudgetTotal, days)

	return &trip.Itinerary{
		Destination: req.Destination,
		Days:        days,
		Flights:     Flights(req, breakdown.Flights),
		Hotel:       Hotel(req, days, breakdown.Hotel),
		DailyPlans:  dailyPlans(req, days),
		Budget:      breakdown,
	}
}

// Flights builds budget-consistent round-trip legs, each leg priced at
// half the flight allocation.
func Flights(req trip.TripRequest, flightBudget int) trip.FlightPair {
	start := req.StartDate.Format(dateISO)
	end := req.EndDate.Format(dateISO)
	perLeg := flightBudget / 2

	return trip.FlightPair{
		Outbound: trip.Flight{
			Airline:   "IndiGo 6E-2345",
			Departure: start + " 08:30 AM",
			Arrival:   start + " 11:45 AM",
			Price:     perLeg,
			Duration:  "3h 15m",
		},
		Return: trip.Flight{
			Airline:   "SpiceJet SG-8732",
			Departure: end + " 06:15 PM",
			Arrival:   end + " 09:30 PM",
			Price:     perLeg,
			Duration:  "3h 15m",
		},
	}
}

// Hotel builds a stay that consumes the hotel allocation. The name
// leans coastal when the traveler picked a beach interest.
func Hotel(req trip.TripRequest, days, hotelBudget int) trip.Hotel {
	name := "Heritage Grand Palace"
	if req.HasInterest("beach") {
		name = "Seaside Paradise Resort"
	}

	nights := days - 1
	if nights < 1 {
		nights = 1
	}

	return trip.Hotel{
		Name:          name,
		Rating:        4.5,
		PricePerNight: hotelBudget / days,
		TotalPrice:    hotelBudget,
		Amenities:     []string{"Free WiFi", "Breakfast Included", "Swimming Pool", "Spa & Wellness"},
		Distance:      "2.5 km from city center",
		Nights:        nights,
	}
}

func dailyPlans(req trip.TripRequest, days int) []trip.DayPlan {
	adventurous := req.HasInterest("adventure")
	base := req.BudgetTotal / days

	plans := make([]trip.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		theme := themeForDay(day, adventurous)
		dayCost := int(float64(base) / divisorForDay(day))

		activities := buildActivities(theme, dayCost)
		total := 0
		for _, a := range activities {
			total += a.Price
		}

		plans = append(plans, trip.DayPlan{
			Day:        day,
			Date:       req.StartDate.AddDate(0, 0, day-1).Format("Jan 02"),
			Activities: activities,
			TotalCost:  total,
		})
	}
	return plans
}

// buildActivities prices a theme's slots at 40/35/25 of the day cost,
// with the division remainder riding on the morning slot so the day
// total reconciles exactly.
func buildActivities(theme dayTheme, dayCost int) []trip.Activity {
	prices := [3]int{
		dayCost * 40 / 100,
		dayCost * 35 / 100,
		dayCost * 25 / 100,
	}
	prices[0] += dayCost - (prices[0] + prices[1] + prices[2])

	activities := make([]trip.Activity, 0, len(theme.Activities))
	for i, tmpl := range theme.Activities {
		activities = append(activities, trip.Activity{
			Name:     tmpl.Name,
			Time:     timeSlots[i],
			Duration: tmpl.Duration,
			Price:    prices[i],
			Rating:   tmpl.Rating,
			Desc:     tmpl.Desc,
		})
	}
	return activities
}
