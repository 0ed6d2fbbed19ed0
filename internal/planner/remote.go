package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-trip-planner/internal/budget"
	"ai-trip-planner/internal/trip"
)

const itineraryPath = "/api/generate-itinerary"

// Generic connectivity failure, used when the remote service gives no
// structured error detail.
const serviceUnreachableMsg = "failed to connect to the planning service"

// RemoteClient talks to the remote AI planning service.
type RemoteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemoteClient creates a client for the planning service at baseURL.
func NewRemoteClient(baseURL string, timeout time.Duration) *RemoteClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// planRequest is the service's expected request shape.
type planRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      int      `json:"budget"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
}

// planResponse is the service's response envelope.
type planResponse struct {
	Success   bool                    `json:"success"`
	Itinerary *trip.Itinerary         `json:"itinerary"`
	AgentLogs []trip.AgentStatusEvent `json:"agent_logs"`
	Error     string                  `json:"error"`
}

// errorDetail is the body the service sends with non-2xx statuses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// Plan issues one planning request. Agent logs accompanying a success
// response are replayed through the sink in arrival order before the
// itinerary is returned.
func (c *RemoteClient) Plan(ctx context.Context, req trip.TripRequest, sink EventSink) (*trip.Itinerary, error) {
	body, err := json.Marshal(planRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate.Format("2006-01-02"),
		EndDate:     req.EndDate.Format("2006-01-02"),
		Budget:      req.BudgetTotal,
		Travelers:   req.Travelers,
		Interests:   req.EffectiveInterests(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+itineraryPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", serviceUnreachableMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var detail errorDetail
		if json.Unmarshal(bodyBytes, &detail) == nil && detail.Detail != "" {
			return nil, fmt.Errorf("planning service error: %s", detail.Detail)
		}
		return nil, fmt.Errorf("%s: status=%d", serviceUnreachableMsg, resp.StatusCode)
	}

	var planResp planResponse
	if err := json.NewDecoder(resp.Body).Decode(&planResp); err != nil {
		return nil, fmt.Errorf("failed to decode planning response: %w", err)
	}

	if !planResp.Success || planResp.Itinerary == nil {
		if planResp.Error != "" {
			return nil, fmt.Errorf("planning service error: %s", planResp.Error)
		}
		return nil, fmt.Errorf("planning service returned no itinerary")
	}

	it := planResp.Itinerary
	if it.Days == 0 {
		it.Days = req.DurationDays()
	}
	// Remote payloads without a native breakdown get the standard
	// percentage summary.
	if it.Budget == (trip.BudgetBreakdown{}) {
		it.Budget = budget.Allocate(req.BudgetTotal, it.Days)
	}

	for _, ev := range planResp.AgentLogs {
		if ev.Timestamp == 0 {
			ev.Timestamp = time.Now().UnixMilli()
		}
		if sink != nil {
			sink(ev)
		}
	}

	return it, nil
}
