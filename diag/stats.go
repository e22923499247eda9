// Package diag implements post-build diagnostics: summary statistics
// over the build's examined/occupied lattice points, and a clash
// detector that flags atoms placed too close together.
package diag

import "gonum.org/v1/gonum/stat"

// Stats summarizes one build run's lattice-scan outcome.
type Stats struct {
	Examined int
	Placed   int

	// RadiiMean and RadiiStdDev summarize the Cartesian distance from
	// the origin of every placed atom, via gonum/stat's standard
	// single-pass mean/variance estimator.
	RadiiMean   float64
	RadiiStdDev float64
}

// NewStats computes build summary statistics from the Cartesian
// distances (angstroms) of every placed atom, plus the raw
// examined/placed counts already tracked by the build loop.
func NewStats(examined, placed int, placedRadii []float64) Stats {
	var mean, stddev float64
	if len(placedRadii) > 0 {
		mean, stddev = stat.MeanStdDev(placedRadii, nil)
	}
	return Stats{
		Examined:    examined,
		Placed:      placed,
		RadiiMean:   mean,
		RadiiStdDev: stddev,
	}
}

// OccupancyFraction reports the fraction of examined lattice points
// that were placed, or 0 if none were examined.
func (s Stats) OccupancyFraction() float64 {
	if s.Examined == 0 {
		return 0
	}
	return float64(s.Placed) / float64(s.Examined)
}
