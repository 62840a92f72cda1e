package engine

import (
	"sync"
	"time"
)

// defaultTimingSamples is the number of paints PaintTimings keeps.
const defaultTimingSamples = 120

// PaintTimings is a ring buffer of paint durations. It is safe for
// concurrent use so the debug server can read while the UI thread paints.
type PaintTimings struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	count    int
	total    int
	capacity int
}

// TimingSummary describes the paints held by a PaintTimings.
type TimingSummary struct {
	// Paints counts every paint since creation, including evicted ones.
	Paints  int           `json:"paints"`
	Samples int           `json:"samples"`
	Last    time.Duration `json:"last_ns"`
	Average time.Duration `json:"average_ns"`
	Max     time.Duration `json:"max_ns"`
}

// NewPaintTimings keeps the most recent capacity paints.
func NewPaintTimings(capacity int) *PaintTimings {
	if capacity <= 0 {
		capacity = defaultTimingSamples
	}
	return &PaintTimings{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records one paint.
func (t *PaintTimings) Add(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples[t.index] = d
	t.index = (t.index + 1) % t.capacity
	if t.count < t.capacity {
		t.count++
	}
	t.total++
}

// Samples returns the retained durations, oldest first.
func (t *PaintTimings) Samples() []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.samplesLocked()
}

func (t *PaintTimings) samplesLocked() []time.Duration {
	if t.count == 0 {
		return nil
	}
	result := make([]time.Duration, t.count)
	if t.count < t.capacity {
		copy(result, t.samples[:t.count])
	} else {
		n := copy(result, t.samples[t.index:])
		copy(result[n:], t.samples[:t.index])
	}
	return result
}

// Summary aggregates the retained durations.
func (t *PaintTimings) Summary() TimingSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := TimingSummary{Paints: t.total, Samples: t.count}
	samples := t.samplesLocked()
	if len(samples) == 0 {
		return s
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
		s.Max = max(s.Max, d)
	}
	s.Last = samples[len(samples)-1]
	s.Average = sum / time.Duration(len(samples))
	return s
}
