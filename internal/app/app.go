package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/flow"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/planner"
	"ai-trip-planner/internal/render"
	"ai-trip-planner/internal/trip"
)

// BuildGenerator constructs the itinerary generator the configuration
// selects: the remote planning service or the Gemini agent pipeline.
func BuildGenerator(ctx context.Context, cfg *config.Config) (planner.Generator, error) {
	switch cfg.Backend {
	case config.BackendGemini:
		textGen, err := planner.NewGeminiText(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return planner.NewAgentPlanner(textGen), nil
	default:
		return planner.NewRemoteClient(cfg.PlannerAPIURL, cfg.HTTPTimeout), nil
	}
}

// App holds the application's dependencies.
type App struct {
	cfg          *config.Config
	controller   *flow.Controller
	metricsStore *metrics.Store
}

// NewApp creates and initializes a new App instance.
func NewApp(cfg *config.Config, gen planner.Generator, metricsStore *metrics.Store) *App {
	return &App{
		cfg:          cfg,
		controller:   flow.NewController(gen),
		metricsStore: metricsStore,
	}
}

// Controller exposes the flow controller for surfaces that drive the
// session directly, like the Telegram bot.
func (a *App) Controller() *flow.Controller {
	return a.controller
}

// PlanTrip runs one planning attempt end to end and prints the agent
// progress followed by the rendered itinerary.
func (a *App) PlanTrip(ctx context.Context, raw trip.RawTripRequest) error {
	fmt.Printf("Planning a trip to %q...\n", raw.Destination)

	var mu sync.Mutex
	seen := 0
	a.controller.SetObserver(func(snap flow.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		for ; seen < len(snap.AgentLog); seen++ {
			fmt.Println(render.Event(snap.AgentLog[seen]))
		}
	})

	a.controller.UpdateDraft(raw)

	started := time.Now()
	done, err := a.controller.Submit(ctx)
	if err != nil {
		return fmt.Errorf("failed to submit trip request: %w", err)
	}

	snap, ok := <-done
	if !ok {
		return fmt.Errorf("planning attempt was superseded")
	}

	a.recordAttempt(snap, time.Since(started))

	fmt.Println()
	fmt.Print(render.Itinerary(snap.Itinerary, snap.Notice))
	return nil
}

// PrintMetrics prints a summary of the attempts recorded this run.
func (a *App) PrintMetrics() {
	sum := a.metricsStore.Summary()
	fmt.Println("\n=== SESSION METRICS ===")
	fmt.Printf("Attempts : %d\n", sum.Attempts)
	fmt.Printf("Fallbacks: %d\n", sum.Fallbacks)
	fmt.Printf("Failures : %d\n", sum.Failures)
	fmt.Printf("Avg time : %dms\n", sum.AvgLatencyMS)
}

func (a *App) recordAttempt(snap flow.Snapshot, elapsed time.Duration) {
	m := metrics.AttemptMetric{
		Destination:  snap.Request.Destination,
		Backend:      string(a.cfg.Backend),
		LatencyMS:    elapsed.Milliseconds(),
		UsedFallback: snap.FallbackUsed,
	}
	if snap.FallbackUsed {
		for _, ev := range snap.AgentLog {
			if ev.Status == trip.StatusError {
				m.Err = ev.Message
			}
		}
	}
	a.metricsStore.Record(m)
	if snap.FallbackUsed {
		log.Printf("Warning: planning service unavailable, used local itinerary for %q", snap.Request.Destination)
	}
}
