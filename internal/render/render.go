// Package render turns an itinerary into plain text suitable for a
// terminal or a Telegram message.
package render

import (
	"fmt"
	"strings"

	"ai-trip-planner/internal/trip"
)

// Itinerary renders the full trip summary. The notice, when non-empty,
// is shown at the top so a locally generated plan is never mistaken for
// a live one.
func Itinerary(it *trip.Itinerary, notice string) string {
	var b strings.Builder

	if notice != "" {
		fmt.Fprintf(&b, "NOTE: %s\n\n", notice)
	}

	fmt.Fprintf(&b, "=== %d-DAY TRIP TO %s ===\n\n", it.Days, strings.ToUpper(it.Destination))

	b.WriteString(Budget(it.Budget))

	b.WriteString("\n=== FLIGHTS ===\n")
	b.WriteString(flight("Outbound", it.Flights.Outbound))
	b.WriteString(flight("Return", it.Flights.Return))

	b.WriteString("\n=== HOTEL ===\n")
	fmt.Fprintf(&b, "%s (%.1f★)\n", it.Hotel.Name, it.Hotel.Rating)
	fmt.Fprintf(&b, "  %s\n", it.Hotel.Distance)
	fmt.Fprintf(&b, "  ₹%d/night × %d nights = ₹%d\n", it.Hotel.PricePerNight, it.Hotel.Nights, it.Hotel.TotalPrice)
	if len(it.Hotel.Amenities) > 0 {
		fmt.Fprintf(&b, "  Amenities: %s\n", strings.Join(it.Hotel.Amenities, ", "))
	}

	b.WriteString("\n=== DAILY PLANS ===\n")
	for _, day := range it.DailyPlans {
		fmt.Fprintf(&b, "\nDay %d (%s) — ₹%d\n", day.Day, day.Date, day.TotalCost)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "  %s  %s (%s, ₹%d)\n", act.Time, act.Name, act.Duration, act.Price)
			if act.Desc != "" {
				fmt.Fprintf(&b, "         %s\n", act.Desc)
			}
		}
	}

	remaining := it.Budget.Remaining
	fmt.Fprintf(&b, "\nRemaining budget: ₹%d of ₹%d\n", remaining, it.Budget.Total)

	return b.String()
}

// Budget renders the allocation breakdown as an aligned grid.
func Budget(bb trip.BudgetBreakdown) string {
	var b strings.Builder
	b.WriteString("=== BUDGET ===\n")
	rows := []struct {
		label  string
		amount int
	}{
		{"Flights", bb.Flights},
		{"Hotel", bb.Hotel},
		{"Food", bb.Food},
		{"Activities", bb.Activities},
		{"Transport", bb.Transport},
		{"Shopping", bb.Shopping},
		{"Remaining", bb.Remaining},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-10s: ₹%d\n", row.label, row.amount)
	}
	fmt.Fprintf(&b, "%-10s: ₹%d\n", "Total", bb.Total)
	return b.String()
}

// Event renders a single agent status line for live progress output.
func Event(ev trip.AgentStatusEvent) string {
	marker := "•"
	switch ev.Status {
	case trip.StatusComplete:
		marker = "✓"
	case trip.StatusError:
		marker = "✗"
	}
	return fmt.Sprintf("%s [%s] %s", marker, ev.Agent, ev.Message)
}

func flight(leg string, f trip.Flight) string {
	return fmt.Sprintf("%-8s  %s  %s → %s  (%s)  ₹%d\n",
		leg, f.Airline, f.Departure, f.Arrival, f.Duration, f.Price)
}
