package telegram

import (
	"fmt"
	"strings"

	"ai-trip-planner/internal/trip"
)

// ParseMessage splits a pipe-separated chat message into a raw trip
// request. Expected order: destination | start | end | budget |
// travelers | interests. The last two fields are optional.
func ParseMessage(text string) (trip.RawTripRequest, error) {
	parts := strings.Split(text, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 4 {
		return trip.RawTripRequest{}, fmt.Errorf("expected at least destination, start, end and budget, got %d field(s)", len(parts))
	}
	if len(parts) > 6 {
		return trip.RawTripRequest{}, fmt.Errorf("too many fields: expected at most 6, got %d", len(parts))
	}

	raw := trip.RawTripRequest{
		Destination: parts[0],
		StartDate:   parts[1],
		EndDate:     parts[2],
		Budget:      parts[3],
	}
	if len(parts) > 4 {
		raw.Travelers = parts[4]
	}
	if len(parts) > 5 {
		for _, interest := range strings.Split(parts[5], ",") {
			if interest = strings.TrimSpace(interest); interest != "" {
				raw.Interests = append(raw.Interests, interest)
			}
		}
	}
	return raw, nil
}
