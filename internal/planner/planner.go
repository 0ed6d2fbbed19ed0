// Package planner produces itineraries for validated trip requests.
// Two backends exist: a client for the remote planning service and a
// local Gemini-backed agent pipeline. Neither synthesizes fallback
// content; that is the flow controller's job.
package planner

import (
	"context"

	"ai-trip-planner/internal/trip"
)

// Agent display names, shared by both backends so the activity log
// reads the same wherever the plan came from.
const (
	AgentOptimizer = "Optimizer Agent"
	AgentResearch  = "Research Agent"
	AgentContent   = "Content Generator"
	AgentQA        = "Quality Assurance"
	AgentSystem    = "System"
)

// EventSink receives agent-status events in order as a planning
// attempt progresses. All events for an attempt are delivered before
// Plan returns.
type EventSink func(trip.AgentStatusEvent)

// Generator is a single-attempt itinerary source. Plan makes one
// logical attempt with no internal retry; any error means the caller
// should fall back to local synthesis.
type Generator interface {
	Plan(ctx context.Context, req trip.TripRequest, sink EventSink) (*trip.Itinerary, error)
}

// emit forwards an event to the sink when one is attached.
func emit(sink EventSink, agent, message string, status trip.AgentStatus) {
	if sink != nil {
		sink(trip.NewAgentStatusEvent(agent, message, status))
	}
}
