package metrics

import (
	"sync"
	"time"
)

// AttemptMetric records metadata for a single planning attempt.
type AttemptMetric struct {
	Destination  string
	Backend      string
	LatencyMS    int64
	UsedFallback bool
	Err          string
	Timestamp    time.Time
}

// Store keeps attempt metrics in memory. The engine runs entirely
// client-side, so there is nothing to persist across runs.
type Store struct {
	mu      sync.Mutex
	records []AttemptMetric
}

func NewStore() *Store {
	return &Store{}
}

// Record saves a metric. A zero timestamp is filled with the current time.
func (s *Store) Record(m AttemptMetric) {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	s.records = append(s.records, m)
	s.mu.Unlock()
}

// Summary aggregates the recorded attempts.
type Summary struct {
	Attempts     int
	Fallbacks    int
	Failures     int
	AvgLatencyMS int64
}

func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Attempts: len(s.records)}
	var totalLatency int64
	for _, m := range s.records {
		if m.UsedFallback {
			sum.Fallbacks++
		}
		if m.Err != "" {
			sum.Failures++
		}
		totalLatency += m.LatencyMS
	}
	if sum.Attempts > 0 {
		sum.AvgLatencyMS = totalLatency / int64(sum.Attempts)
	}
	return sum
}

// Recent returns up to n most recent attempts, newest first.
func (s *Store) Recent(n int) []AttemptMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.records) {
		n = len(s.records)
	}
	out := make([]AttemptMetric, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}
