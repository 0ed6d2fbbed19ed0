// Package flow owns the intake → in-progress → results state machine
// for one planning session. All mutable session state lives in a
// single Controller; presentation layers observe snapshots and never
// share state with each other.
package flow

import (
	"context"
	"fmt"
	"sync"

	"ai-trip-planner/internal/fallback"
	"ai-trip-planner/internal/planner"
	"ai-trip-planner/internal/trip"
)

// State identifies the current screen of the planning flow.
type State string

const (
	StateIntake     State = "intake"
	StateInProgress State = "in_progress"
	StateResults    State = "results"
)

// FallbackNotice is the user-facing note attached to results when the
// itinerary was synthesized locally instead of coming from the
// planning service.
const FallbackNotice = "The planning service could not be reached, so this itinerary was generated locally."

// Snapshot is an immutable view of the controller for presentation.
type Snapshot struct {
	State        State
	Draft        trip.RawTripRequest
	Request      trip.TripRequest
	Itinerary    *trip.Itinerary
	AgentLog     []trip.AgentStatusEvent
	Notice       string
	FallbackUsed bool
	Attempt      uint64
}

// Controller drives a single planning session. Methods are safe for
// concurrent use; at most one planning attempt is active at a time,
// and a newer submission supersedes an older in-flight one.
type Controller struct {
	mu       sync.Mutex
	gen      planner.Generator
	state    State
	draft    trip.RawTripRequest
	request  trip.TripRequest
	result   *trip.Itinerary
	agentLog []trip.AgentStatusEvent
	notice   string
	fallback bool
	attempt  uint64
	observer func(Snapshot)
}

// NewController creates a controller in the intake state.
func NewController(gen planner.Generator) *Controller {
	return &Controller{
		gen:   gen,
		state: StateIntake,
	}
}

// SetObserver registers a callback invoked after every state change,
// including each appended agent event. The callback runs outside the
// controller lock.
func (c *Controller) SetObserver(fn func(Snapshot)) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// UpdateDraft replaces the draft request being edited at intake.
func (c *Controller) UpdateDraft(draft trip.RawTripRequest) {
	c.mu.Lock()
	c.draft = draft
	snap, fn := c.snapshotLocked()
	c.mu.Unlock()
	notify(fn, snap)
}

// Snapshot returns the current view of the session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, _ := c.snapshotLocked()
	return snap
}

// Submit validates the draft and, on success, starts a planning
// attempt, transitioning to in-progress. A *trip.ValidationError keeps
// the controller at intake. Submitting while an attempt is in flight
// supersedes it: the stale attempt's outcome is discarded.
//
// The returned channel delivers the final snapshot of this attempt and
// is closed without a value if the attempt is superseded.
func (c *Controller) Submit(ctx context.Context) (<-chan Snapshot, error) {
	c.mu.Lock()
	req, err := trip.ParseRequest(c.draft)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.attempt++
	id := c.attempt
	c.request = req
	c.result = nil
	c.agentLog = nil
	c.notice = ""
	c.fallback = false
	c.state = StateInProgress
	snap, fn := c.snapshotLocked()
	c.mu.Unlock()
	notify(fn, snap)

	done := make(chan Snapshot, 1)
	go c.run(ctx, id, req, done)
	return done, nil
}

// Reset clears results, notice and agent log, returning to intake
// with an empty draft. Any in-flight attempt is superseded.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.attempt++ // invalidates in-flight attempts
	c.state = StateIntake
	c.draft = trip.RawTripRequest{}
	c.request = trip.TripRequest{}
	c.result = nil
	c.agentLog = nil
	c.notice = ""
	c.fallback = false
	snap, fn := c.snapshotLocked()
	c.mu.Unlock()
	notify(fn, snap)
}

func (c *Controller) run(ctx context.Context, id uint64, req trip.TripRequest, done chan<- Snapshot) {
	sink := func(ev trip.AgentStatusEvent) {
		c.appendEvent(id, ev)
	}

	it, err := c.gen.Plan(ctx, req, sink)
	c.resolve(id, req, it, err, done)
}

// appendEvent adds an agent event to the log unless the attempt has
// been superseded. The log only grows and is never reordered.
func (c *Controller) appendEvent(id uint64, ev trip.AgentStatusEvent) {
	c.mu.Lock()
	if c.attempt != id {
		c.mu.Unlock()
		return
	}
	c.agentLog = append(c.agentLog, ev)
	snap, fn := c.snapshotLocked()
	c.mu.Unlock()
	notify(fn, snap)
}

// resolve applies the attempt outcome. Outcomes of superseded attempts
// are discarded so they can never overwrite newer state.
func (c *Controller) resolve(id uint64, req trip.TripRequest, it *trip.Itinerary, err error, done chan<- Snapshot) {
	c.mu.Lock()
	if c.attempt != id {
		c.mu.Unlock()
		close(done)
		return
	}

	if err != nil {
		c.result = fallback.Synthesize(req)
		c.notice = FallbackNotice
		c.fallback = true
		c.agentLog = append(c.agentLog, trip.NewAgentStatusEvent(
			planner.AgentSystem,
			fmt.Sprintf("Planning service unavailable: %v. Generated itinerary locally.", err),
			trip.StatusError,
		))
	} else {
		c.result = it
	}
	c.state = StateResults
	snap, fn := c.snapshotLocked()
	c.mu.Unlock()
	notify(fn, snap)

	done <- snap
	close(done)
}

// snapshotLocked builds a snapshot and grabs the observer; the caller
// must hold the lock.
func (c *Controller) snapshotLocked() (Snapshot, func(Snapshot)) {
	logCopy := make([]trip.AgentStatusEvent, len(c.agentLog))
	copy(logCopy, c.agentLog)
	return Snapshot{
		State:        c.state,
		Draft:        c.draft,
		Request:      c.request,
		Itinerary:    c.result,
		AgentLog:     logCopy,
		Notice:       c.notice,
		FallbackUsed: c.fallback,
		Attempt:      c.attempt,
	}, c.observer
}

func notify(fn func(Snapshot), snap Snapshot) {
	if fn != nil {
		fn(snap)
	}
}
