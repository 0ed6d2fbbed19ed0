package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-trip-planner/internal/budget"
	"ai-trip-planner/internal/fallback"
	"ai-trip-planner/internal/trip"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// geminiText is a TextGenerator backed by the Google Gemini API.
type geminiText struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiText creates a Gemini-backed text generator.
func NewGeminiText(ctx context.Context, apiKey string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(geminiModel)
	return &geminiText{client: client, model: model}, nil
}

// GenerateContent sends a prompt to the Gemini model and returns the
// generated text.
func (g *geminiText) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}

// AgentPlanner generates itineraries locally through a staged agent
// pipeline, using an LLM only for the daily activity content. Budget
// allocation, flights and hotel reuse the same budget-consistent
// building blocks as local synthesis.
type AgentPlanner struct {
	textGen TextGenerator
}

// NewAgentPlanner creates a planner around the given text generator.
func NewAgentPlanner(textGen TextGenerator) *AgentPlanner {
	return &AgentPlanner{textGen: textGen}
}

// Plan runs the agent pipeline, emitting a status event as each stage
// starts and completes. Any generation or parse error aborts the
// attempt; the caller falls back to local synthesis.
func (p *AgentPlanner) Plan(ctx context.Context, req trip.TripRequest, sink EventSink) (*trip.Itinerary, error) {
	days := req.DurationDays()

	emit(sink, AgentOptimizer, "Analyzing budget and optimizing allocation...", trip.StatusProcessing)
	breakdown := budget.Allocate(req.BudgetTotal, days)
	emit(sink, AgentOptimizer, "Budget allocation complete", trip.StatusComplete)

	emit(sink, AgentResearch, fmt.Sprintf("Finding best flight options to %s...", req.Destination), trip.StatusProcessing)
	flights := fallback.Flights(req, breakdown.Flights)
	emit(sink, AgentResearch, "Flight options locked in", trip.StatusComplete)

	emit(sink, AgentResearch, "Searching for perfect accommodation...", trip.StatusProcessing)
	hotel := fallback.Hotel(req, days, breakdown.Hotel)
	emit(sink, AgentResearch, "Accommodation found", trip.StatusComplete)

	emit(sink, AgentContent, "Creating personalized activity recommendations...", trip.StatusProcessing)
	dailyPlans, err := p.generateDailyPlans(ctx, req, days, breakdown.Activities)
	if err != nil {
		emit(sink, AgentContent, fmt.Sprintf("Error: %v", err), trip.StatusError)
		return nil, err
	}
	emit(sink, AgentContent, "Activity recommendations ready", trip.StatusComplete)

	emit(sink, AgentOptimizer, "Optimizing activities based on your preferences...", trip.StatusProcessing)
	perDay := breakdown.Activities / days
	for i := range dailyPlans {
		scored := ScoreActivities(dailyPlans[i].Activities, req.EffectiveInterests(), perDay)
		if len(scored) > 3 {
			scored = scored[:3]
		}
		dailyPlans[i].Activities = scored
		total := 0
		for _, a := range scored {
			total += a.Price
		}
		dailyPlans[i].TotalCost = total
	}
	emit(sink, AgentOptimizer, "Activities optimized", trip.StatusComplete)

	it := &trip.Itinerary{
		Destination: req.Destination,
		Days:        days,
		Flights:     flights,
		Hotel:       hotel,
		DailyPlans:  dailyPlans,
		Budget:      breakdown,
	}

	emit(sink, AgentQA, "Verifying itinerary quality and budget compliance...", trip.StatusProcessing)
	verification := Verify(it)
	if verification.AllPassed {
		emit(sink, AgentQA, "Verification passed", trip.StatusComplete)
	} else {
		emit(sink, AgentQA,
			fmt.Sprintf("Verification finished (quality score: %.0f%%)", verification.QualityScore),
			trip.StatusComplete)
	}

	emit(sink, AgentSystem,
		fmt.Sprintf("✨ Your perfect %d-day %s itinerary is ready!", days, req.Destination),
		trip.StatusComplete)

	return it, nil
}

// generateDailyPlans asks the model for the day-by-day schedule as
// strict JSON and parses it.
func (p *AgentPlanner) generateDailyPlans(ctx context.Context, req trip.TripRequest, days, activityBudget int) ([]trip.DayPlan, error) {
	prompt := fmt.Sprintf(`You are an expert travel planner. Create a day-by-day activity schedule for a trip.

Destination: %s
Trip length: %d days, starting %s
Traveler interests: %s
Total activity budget: %d (whole currency units, across the whole trip)

Instructions:
1. Produce exactly %d day entries, numbered from 1.
2. Give each day 3 activities at "9:00 AM", "1:00 PM" and "5:00 PM".
3. Keep each day's combined activity price near the per-day share of the activity budget.
4. Return strictly a JSON array with this structure and nothing else:
[
  {"day": 1, "date": "Mar 01", "activities": [
    {"name": "...", "time": "9:00 AM", "duration": "2 hours", "price": 500, "rating": 4.6, "desc": "..."}
  ], "totalCost": 500}
]

Do not include any other text or formatting in your response.`,
		req.Destination, days, req.StartDate.Format("2006-01-02"),
		strings.Join(req.EffectiveInterests(), ", "), activityBudget, days)

	raw, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate daily plans: %w", err)
	}

	var plans []trip.DayPlan
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &plans); err != nil {
		return nil, fmt.Errorf("failed to parse daily plans JSON: %w", err)
	}
	if len(plans) != days {
		return nil, fmt.Errorf("expected %d day plans, model returned %d", days, len(plans))
	}
	return plans, nil
}

// stripCodeFence removes a surrounding markdown code fence, which the
// model sometimes adds despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
