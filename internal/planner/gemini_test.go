package planner

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ai-trip-planner/internal/trip"
)

type MockTextGenerator struct {
	response string
	err      error
	prompt   string
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func fiveDayPlansJSON() string {
	var days []string
	for d := 1; d <= 5; d++ {
		days = append(days, fmt.Sprintf(`{
			"day": %d, "date": "Mar 0%d",
			"activities": [
				{"name": "Beach Walk", "time": "9:00 AM", "duration": "2 hours", "price": 200, "rating": 4.8, "desc": "Stroll along the shore"},
				{"name": "Street Food Tour", "time": "1:00 PM", "duration": "3 hours", "price": 800, "rating": 4.6, "desc": "Culinary adventure"},
				{"name": "Fort Visit", "time": "5:00 PM", "duration": "2 hours", "price": 500, "rating": 4.7, "desc": "Historic ramparts"},
				{"name": "Overpriced Cruise", "time": "5:00 PM", "duration": "2 hours", "price": 9000, "rating": 4.0, "desc": "Sunset cruise"}
			],
			"totalCost": 10500
		}`, d, d))
	}
	return "[" + strings.Join(days, ",") + "]"
}

func TestAgentPlannerPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		gen := &MockTextGenerator{response: fiveDayPlansJSON()}
		p := NewAgentPlanner(gen)

		var events []trip.AgentStatusEvent
		it, err := p.Plan(ctx, testRequest(), collectSink(&events))
		if err != nil {
			t.Fatalf("Plan failed: %v", err)
		}

		if it.Days != 5 || len(it.DailyPlans) != 5 {
			t.Fatalf("Expected 5-day itinerary, got days=%d plans=%d", it.Days, len(it.DailyPlans))
		}
		if it.Budget.Flights != 9000 {
			t.Errorf("Expected flight allocation 9000, got %d", it.Budget.Flights)
		}
		if it.Hotel.Name != "Seaside Paradise Resort" {
			t.Errorf("Expected beach hotel for Beach interest, got '%s'", it.Hotel.Name)
		}

		// Scoring keeps the best three; the overpriced cruise loses.
		for _, dp := range it.DailyPlans {
			if len(dp.Activities) != 3 {
				t.Fatalf("Day %d: expected 3 activities, got %d", dp.Day, len(dp.Activities))
			}
			for _, a := range dp.Activities {
				if a.Name == "Overpriced Cruise" {
					t.Errorf("Day %d: overpriced activity survived optimization", dp.Day)
				}
			}
			want := 0
			for _, a := range dp.Activities {
				want += a.Price
			}
			if dp.TotalCost != want {
				t.Errorf("Day %d: totalCost %d != recomputed %d", dp.Day, dp.TotalCost, want)
			}
		}

		if !strings.Contains(gen.prompt, "Goa") || !strings.Contains(gen.prompt, "5 days") {
			t.Errorf("Prompt missing trip facts: %s", gen.prompt)
		}

		if len(events) == 0 {
			t.Fatal("Expected agent events")
		}
		last := events[len(events)-1]
		if last.Agent != AgentSystem || last.Status != trip.StatusComplete {
			t.Errorf("Expected final system event, got %+v", last)
		}
		for i := 1; i < len(events); i++ {
			if events[i].Timestamp < events[i-1].Timestamp {
				t.Fatal("Events not in chronological order")
			}
		}
	})

	t.Run("FencedJSONAccepted", func(t *testing.T) {
		gen := &MockTextGenerator{response: "```json\n" + fiveDayPlansJSON() + "\n```"}
		p := NewAgentPlanner(gen)
		if _, err := p.Plan(ctx, testRequest(), nil); err != nil {
			t.Fatalf("Plan failed on fenced JSON: %v", err)
		}
	})

	t.Run("GenerationError", func(t *testing.T) {
		gen := &MockTextGenerator{err: fmt.Errorf("quota exhausted")}
		p := NewAgentPlanner(gen)

		var events []trip.AgentStatusEvent
		_, err := p.Plan(ctx, testRequest(), collectSink(&events))
		if err == nil {
			t.Fatal("Expected an error")
		}
		last := events[len(events)-1]
		if last.Status != trip.StatusError {
			t.Errorf("Expected trailing error event, got %+v", last)
		}
	})

	t.Run("WrongDayCountRejected", func(t *testing.T) {
		gen := &MockTextGenerator{response: `[{"day": 1, "date": "Mar 01", "activities": [], "totalCost": 0}]`}
		p := NewAgentPlanner(gen)
		if _, err := p.Plan(ctx, testRequest(), nil); err == nil {
			t.Fatal("Expected an error for short plan")
		}
	})
}

func TestScoreActivities(t *testing.T) {
	activities := []trip.Activity{
		{Name: "Pricey Dud", Price: 5000, Rating: 3.0, Desc: "Nothing special"},
		{Name: "Beach Parasailing", Price: 100, Rating: 4.7, Desc: "Soar above the water"},
		{Name: "Free Gallery", Price: 0, Rating: 4.2, Desc: "Local art"},
	}

	ranked := ScoreActivities(activities, []string{"Beach"}, 1000)
	if ranked[0].Name != "Beach Parasailing" {
		t.Errorf("Expected interest-matched affordable activity first, got '%s'", ranked[0].Name)
	}
	if ranked[len(ranked)-1].Name != "Pricey Dud" {
		t.Errorf("Expected low-rated overpriced activity last, got '%s'", ranked[len(ranked)-1].Name)
	}
}

func TestVerify(t *testing.T) {
	t.Run("CompleteItinerary", func(t *testing.T) {
		it := &trip.Itinerary{
			Flights: trip.FlightPair{
				Outbound: trip.Flight{Airline: "IndiGo"},
				Return:   trip.Flight{Airline: "SpiceJet"},
			},
			Hotel:      trip.Hotel{Name: "Somewhere"},
			DailyPlans: []trip.DayPlan{{Day: 1}},
			Budget:     trip.BudgetBreakdown{Total: 1000, Remaining: 100},
		}
		v := Verify(it)
		if !v.AllPassed || v.QualityScore != 100 {
			t.Errorf("Expected clean verification, got %+v", v)
		}
	})

	t.Run("MissingPieces", func(t *testing.T) {
		v := Verify(&trip.Itinerary{})
		if v.AllPassed {
			t.Error("Expected failed verification")
		}
		if len(v.Issues) == 0 {
			t.Error("Expected issues to be reported")
		}
	})
}
