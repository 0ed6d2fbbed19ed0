package fallback

import (
	"reflect"
	"testing"
	"time"

	"ai-trip-planner/internal/trip"
)

func goaRequest() trip.TripRequest {
	return trip.TripRequest{
		Destination: "Goa",
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		BudgetTotal: 30000,
		Travelers:   2,
	}
}

func TestSynthesizeDeterminism(t *testing.T) {
	req := goaRequest()
	req.Interests = []string{"Beach", "Adventure"}

	first := Synthesize(req)
	second := Synthesize(req)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical requests")
	}
}

func TestSynthesizeGoaScenario(t *testing.T) {
	it := Synthesize(goaRequest())

	if it.Destination != "Goa" {
		t.Errorf("Expected destination 'Goa', got '%s'", it.Destination)
	}
	if it.Days != 5 {
		t.Fatalf("Expected 5 days, got %d", it.Days)
	}
	if len(it.DailyPlans) != 5 {
		t.Fatalf("Expected 5 daily plans, got %d", len(it.DailyPlans))
	}

	b := it.Budget
	if b.Flights != 9000 || b.Hotel != 9000 || b.Food != 6000 ||
		b.Activities != 3600 || b.Transport != 1500 || b.Shopping != 900 || b.Remaining != 0 {
		t.Errorf("Unexpected breakdown: %+v", b)
	}

	// Day 4 and day 5 get their dedicated templates on a 5-day trip.
	if got := it.DailyPlans[3].Activities[0].Name; got != "Offbeat Alley Walk" {
		t.Errorf("Expected hidden-gems day 4, got first activity '%s'", got)
	}
	if got := it.DailyPlans[4].Activities[2].Name; got != "Checkout & Airport Transfer" {
		t.Errorf("Expected departure day 5, got last activity '%s'", got)
	}

	if it.DailyPlans[0].Date != "Mar 01" {
		t.Errorf("Expected day 1 dated 'Mar 01', got '%s'", it.DailyPlans[0].Date)
	}
	if it.DailyPlans[4].Date != "Mar 05" {
		t.Errorf("Expected day 5 dated 'Mar 05', got '%s'", it.DailyPlans[4].Date)
	}
}

func TestSynthesizeDayCount(t *testing.T) {
	for _, days := range []int{1, 2, 3, 4, 5, 8, 30} {
		req := goaRequest()
		req.EndDate = req.StartDate.AddDate(0, 0, days-1)

		it := Synthesize(req)
		if len(it.DailyPlans) != days {
			t.Errorf("Duration %d: expected %d plans, got %d", days, days, len(it.DailyPlans))
		}
		for i, dp := range it.DailyPlans {
			if dp.Day != i+1 {
				t.Errorf("Duration %d: plan %d has day number %d", days, i, dp.Day)
			}
			sum := 0
			for _, a := range dp.Activities {
				if a.Price < 0 {
					t.Errorf("Duration %d day %d: negative activity price", days, dp.Day)
				}
				if a.Rating < 0 || a.Rating > 5 {
					t.Errorf("Duration %d day %d: rating %f out of range", days, dp.Day, a.Rating)
				}
				sum += a.Price
			}
			if sum != dp.TotalCost {
				t.Errorf("Duration %d day %d: totalCost %d != activity sum %d",
					days, dp.Day, dp.TotalCost, sum)
			}
		}
	}
}

func TestSynthesizeAdventureConditional(t *testing.T) {
	req := goaRequest()

	t.Run("AdventurousInterest", func(t *testing.T) {
		req.Interests = []string{"Mountain Adventure"}
		it := Synthesize(req)
		if got := it.DailyPlans[2].Activities[0].Name; got != "Zip Lining" {
			t.Errorf("Expected adventure day 3, got first activity '%s'", got)
		}
	})

	t.Run("NoAdventureInterest", func(t *testing.T) {
		req.Interests = []string{"Food"}
		it := Synthesize(req)
		if got := it.DailyPlans[2].Activities[0].Name; got != "Spa & Wellness Session" {
			t.Errorf("Expected relaxed day 3, got first activity '%s'", got)
		}
	})
}

func TestSynthesizeHotelAndFlights(t *testing.T) {
	req := goaRequest()

	t.Run("BeachHotel", func(t *testing.T) {
		req.Interests = []string{"Beach"}
		it := Synthesize(req)
		if it.Hotel.Name != "Seaside Paradise Resort" {
			t.Errorf("Expected beach hotel, got '%s'", it.Hotel.Name)
		}
	})

	t.Run("HeritageHotelByDefault", func(t *testing.T) {
		req.Interests = nil
		it := Synthesize(req)
		if it.Hotel.Name != "Heritage Grand Palace" {
			t.Errorf("Expected heritage hotel, got '%s'", it.Hotel.Name)
		}
	})

	t.Run("BudgetConsistency", func(t *testing.T) {
		it := Synthesize(req)
		if it.Hotel.TotalPrice != it.Budget.Hotel {
			t.Errorf("Hotel total %d != hotel allocation %d", it.Hotel.TotalPrice, it.Budget.Hotel)
		}
		if it.Hotel.PricePerNight != it.Budget.Hotel/it.Days {
			t.Errorf("Expected nightly %d, got %d", it.Budget.Hotel/it.Days, it.Hotel.PricePerNight)
		}
		legs := it.Flights.Outbound.Price + it.Flights.Return.Price
		if legs > it.Budget.Flights {
			t.Errorf("Flight legs %d exceed flight allocation %d", legs, it.Budget.Flights)
		}
	})

	t.Run("FlightSchedule", func(t *testing.T) {
		it := Synthesize(req)
		if it.Flights.Outbound.Departure != "2025-03-01 08:30 AM" {
			t.Errorf("Unexpected outbound departure '%s'", it.Flights.Outbound.Departure)
		}
		if it.Flights.Return.Departure != "2025-03-05 06:15 PM" {
			t.Errorf("Unexpected return departure '%s'", it.Flights.Return.Departure)
		}
	})
}

func TestSynthesizeSingleDayTrip(t *testing.T) {
	req := goaRequest()
	req.EndDate = req.StartDate

	it := Synthesize(req)
	if len(it.DailyPlans) != 1 {
		t.Fatalf("Expected 1 plan, got %d", len(it.DailyPlans))
	}
	if it.Hotel.Nights != 1 {
		t.Errorf("Expected nights clamped to 1, got %d", it.Hotel.Nights)
	}
}
