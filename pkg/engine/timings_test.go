package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaintTimings_Empty(t *testing.T) {
	timings := NewPaintTimings(3)
	assert.Nil(t, timings.Samples())
	assert.Equal(t, TimingSummary{}, timings.Summary())
}

func TestPaintTimings_WrapsOldestFirst(t *testing.T) {
	timings := NewPaintTimings(3)
	for i := 1; i <= 5; i++ {
		timings.Add(time.Duration(i) * time.Millisecond)
	}

	assert.Equal(t, []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}, timings.Samples())

	summary := timings.Summary()
	assert.Equal(t, 5, summary.Paints)
	assert.Equal(t, 3, summary.Samples)
	assert.Equal(t, 5*time.Millisecond, summary.Last)
	assert.Equal(t, 4*time.Millisecond, summary.Average)
	assert.Equal(t, 5*time.Millisecond, summary.Max)
}

func TestPaintTimings_DefaultCapacity(t *testing.T) {
	timings := NewPaintTimings(0)
	for i := 0; i < defaultTimingSamples+10; i++ {
		timings.Add(time.Millisecond)
	}
	assert.Len(t, timings.Samples(), defaultTimingSamples)
}
