package river

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(t time.Time, v float64) Observation {
	return Observation{Timestamp: t, Value: v}
}

func TestProject_EmptyHistory(t *testing.T) {
	assert.Empty(t, Project(nil, 10))
	assert.Empty(t, Project([]Observation{}, 10))
}

func TestProject_TwoPointSlope(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)
	history := []Observation{obs(t0, 10.0), obs(t1, 12.0)}

	projection := Project(history, 10)
	require.Len(t, projection, 10)

	// slope (12-10)/(2-1) = 2.0 per step
	assert.Equal(t, 14.00, projection[0].Value)
	assert.Equal(t, t1.Add(24*time.Hour), projection[0].Timestamp)
	assert.Equal(t, 16.00, projection[1].Value)
	assert.Equal(t, t1.Add(48*time.Hour), projection[1].Timestamp)
}

func TestProject_DailySpacingFromLastObservation(t *testing.T) {
	last := time.Date(2026, 3, 5, 6, 30, 0, 0, time.UTC)
	history := []Observation{obs(last, 8.25)}

	projection := Project(history, 5)
	require.Len(t, projection, 5)

	for i, p := range projection {
		assert.Equal(t, last.Add(time.Duration(i+1)*24*time.Hour), p.Timestamp)
	}
}

func TestProject_SinglePointFlatLine(t *testing.T) {
	history := []Observation{obs(time.Now().UTC(), 7.4)}

	projection := Project(history, 3)
	require.Len(t, projection, 3)
	for _, p := range projection {
		assert.Equal(t, 7.4, p.Value)
	}
}

func TestProject_UsesTrailingWindowOnly(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	history := make([]Observation, 0, 25)
	// 15 flat points followed by 10 rising ones; the early flat stretch must
	// not dilute the slope.
	for i := 0; i < 15; i++ {
		history = append(history, obs(start.Add(time.Duration(i)*time.Hour), 5.0))
	}
	for i := 0; i < 10; i++ {
		history = append(history, obs(start.Add(time.Duration(15+i)*time.Hour), 5.0+float64(i)))
	}

	projection := Project(history, 1)
	require.Len(t, projection, 1)

	// window is the last 10 points: first 5.0, last 14.0, slope = 1.0
	assert.Equal(t, 15.00, projection[0].Value)
}

func TestProject_RoundsToTwoDecimals(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	history := []Observation{
		obs(t0, 1.0),
		obs(t0.Add(time.Hour), 1.111),
		obs(t0.Add(2*time.Hour), 1.333),
	}

	projection := Project(history, 1)
	require.Len(t, projection, 1)
	// slope (1.333-1.0)/2 = 0.1665; 1.333+0.1665 = 1.4995 -> 1.50
	assert.Equal(t, 1.50, projection[0].Value)
}
