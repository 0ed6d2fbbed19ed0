package trip

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// MaxTripDays is the longest trip the planner accepts.
const MaxTripDays = 30

// RawTripRequest is unvalidated form input, everything as the user
// typed it.
type RawTripRequest struct {
	Destination string   `validate:"required"`
	StartDate   string   `validate:"required"`
	EndDate     string   `validate:"required"`
	Budget      string   `validate:"required"`
	Travelers   string   // optional, defaults to 1
	Interests   []string `validate:"dive,max=64"`
}

// ValidationError reports every field that failed validation.
// It blocks submission; the planner never sees an invalid request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid trip request: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for a field, or "".
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

var validate = validator.New()

// ParseRequest normalizes and validates raw form input into a
// TripRequest. On failure it returns a *ValidationError naming every
// offending field.
func ParseRequest(raw RawTripRequest) (TripRequest, error) {
	fields := map[string]string{}

	raw.Destination = strings.TrimSpace(raw.Destination)

	if err := validate.Struct(raw); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return TripRequest{}, fmt.Errorf("validate request: %w", err)
		}
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields[fieldName(fe.Field())] = "is required"
			default:
				fields[fieldName(fe.Field())] = "is invalid"
			}
		}
	}

	var req TripRequest
	req.Destination = raw.Destination

	if raw.StartDate != "" {
		start, err := time.Parse(dateLayout, raw.StartDate)
		if err != nil {
			fields["startDate"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			req.StartDate = start
		}
	}
	if raw.EndDate != "" {
		end, err := time.Parse(dateLayout, raw.EndDate)
		if err != nil {
			fields["endDate"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			req.EndDate = end
		}
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() {
		if req.EndDate.Before(req.StartDate) {
			fields["endDate"] = "must not be before start date"
		} else if req.DurationDays() > MaxTripDays {
			fields["endDate"] = fmt.Sprintf("trip cannot exceed %d days", MaxTripDays)
		}
	}

	if raw.Budget != "" {
		budget, err := strconv.Atoi(strings.TrimSpace(raw.Budget))
		switch {
		case err != nil:
			fields["budget"] = "must be a whole number"
		case budget <= 0:
			fields["budget"] = "must be positive"
		default:
			req.BudgetTotal = budget
		}
	}

	req.Travelers = 1
	if strings.TrimSpace(raw.Travelers) != "" {
		travelers, err := strconv.Atoi(strings.TrimSpace(raw.Travelers))
		switch {
		case err != nil:
			fields["travelers"] = "must be a whole number"
		case travelers < 1:
			fields["travelers"] = "must be at least 1"
		default:
			req.Travelers = travelers
		}
	}

	req.Interests = normalizeInterests(raw.Interests)

	if len(fields) > 0 {
		return TripRequest{}, &ValidationError{Fields: fields}
	}
	return req, nil
}

// fieldName maps struct field names to the wire-style names surfaced
// to the user.
func fieldName(structField string) string {
	switch structField {
	case "Destination":
		return "destination"
	case "StartDate":
		return "startDate"
	case "EndDate":
		return "endDate"
	case "Budget":
		return "budget"
	case "Travelers":
		return "travelers"
	case "Interests":
		return "interests"
	}
	return structField
}

// normalizeInterests trims tags and drops empties, preserving order.
func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, tag := range interests {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func containsTagFold(tags []string, fragment string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}
