package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatsComputesMeanAndOccupancy(t *testing.T) {
	s := NewStats(100, 4, []float64{1, 2, 3, 4})
	assert.Equal(t, 100, s.Examined)
	assert.Equal(t, 4, s.Placed)
	assert.InDelta(t, 2.5, s.RadiiMean, 1e-9)
	assert.InDelta(t, 0.04, s.OccupancyFraction(), 1e-9)
}

func TestNewStatsHandlesNoPlacedAtoms(t *testing.T) {
	s := NewStats(10, 0, nil)
	assert.Equal(t, 0.0, s.RadiiMean)
	assert.Equal(t, 0.0, s.RadiiStdDev)
	assert.Equal(t, 0.0, s.OccupancyFraction())
}

func TestNewStatsHandlesZeroExaminedWithoutDivideByZero(t *testing.T) {
	s := NewStats(0, 0, nil)
	assert.Equal(t, 0.0, s.OccupancyFraction())
}
