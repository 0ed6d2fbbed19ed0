package trip

import "time"

// AgentStatus represents the lifecycle state of a planning agent step.
type AgentStatus string

const (
	StatusProcessing AgentStatus = "processing"
	StatusComplete   AgentStatus = "complete"
	StatusError      AgentStatus = "error"
)

// AgentStatusEvent is one entry in the append-only agent activity log.
type AgentStatusEvent struct {
	Agent     string      `json:"agent"`
	Message   string      `json:"message"`
	Status    AgentStatus `json:"status"`
	Timestamp int64       `json:"timestamp"` // unix milliseconds
}

// NewAgentStatusEvent stamps an event with the current time.
func NewAgentStatusEvent(agent, message string, status AgentStatus) AgentStatusEvent {
	return AgentStatusEvent{
		Agent:     agent,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UnixMilli(),
	}
}

// TripRequest is a validated, normalized travel planning request.
type TripRequest struct {
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"-"`
	EndDate     time.Time `json:"-"`
	BudgetTotal int       `json:"budget"`
	Travelers   int       `json:"travelers"`
	Interests   []string  `json:"interests"`
}

// DurationDays returns the inclusive trip length in days.
// Valid requests always yield at least 1.
func (r TripRequest) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// HasInterest reports whether any interest tag contains the given
// fragment, case-insensitively.
func (r TripRequest) HasInterest(fragment string) bool {
	return containsTagFold(r.Interests, fragment)
}

// EffectiveInterests returns the interests to plan around, substituting
// the default set when the traveler picked none.
func (r TripRequest) EffectiveInterests() []string {
	if len(r.Interests) == 0 {
		return []string{"Culture", "Food"}
	}
	return r.Interests
}

// BudgetBreakdown is a structured cost split of the total budget.
// All values are non-negative and the categories never exceed Total.
type BudgetBreakdown struct {
	Total      int `json:"total"`
	Flights    int `json:"flights"`
	Hotel      int `json:"hotel"`
	Food       int `json:"food"`
	Activities int `json:"activities"`
	Transport  int `json:"transport"`
	Shopping   int `json:"shopping"`
	Remaining  int `json:"remaining"`
}

// CategorySum returns the total allocated across categories,
// excluding Remaining.
func (b BudgetBreakdown) CategorySum() int {
	return b.Flights + b.Hotel + b.Food + b.Activities + b.Transport + b.Shopping
}

// Flight is a single leg of the round trip.
type Flight struct {
	Airline   string `json:"airline"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int    `json:"price"`
	Duration  string `json:"duration"`
}

// FlightPair holds both legs of the round trip.
type FlightPair struct {
	Outbound Flight `json:"outbound"`
	Return   Flight `json:"return"`
}

// Hotel describes the booked accommodation.
type Hotel struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	PricePerNight int      `json:"pricePerNight"`
	TotalPrice    int      `json:"totalPrice"`
	Amenities     []string `json:"amenities"`
	Distance      string   `json:"distance"`
	Nights        int      `json:"nights"`
}

// Activity is a single scheduled item within a day plan.
type Activity struct {
	Name     string  `json:"name"`
	Time     string  `json:"time"`
	Duration string  `json:"duration"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	Desc     string  `json:"desc"`
}

// DayPlan is the ordered schedule for one trip day.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	TotalCost  int        `json:"totalCost"`
}

// Itinerary is a complete travel plan, whether remotely sourced or
// synthesized locally.
type Itinerary struct {
	Destination string          `json:"destination"`
	Days        int             `json:"days"`
	Flights     FlightPair      `json:"flights"`
	Hotel       Hotel           `json:"hotel"`
	DailyPlans  []DayPlan       `json:"dailyPlans"`
	Budget      BudgetBreakdown `json:"budget"`
}

// ActivityCost returns the summed cost of all daily plans.
func (it *Itinerary) ActivityCost() int {
	total := 0
	for _, dp := range it.DailyPlans {
		total += dp.TotalCost
	}
	return total
}
