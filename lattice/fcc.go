package lattice

import (
	"math"

	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// FCCSource enumerates half-integer fractional coordinates
// (i/2, j/2, k/2) for i, j, k in [-D, D], D = 2*ceil(R/a), in
// lexicographic order (i outer, j middle, k inner), per spec.md §4.4.
//
// Per Design Notes §9, the queue is kept as a half-integer index triple
// (i, j, k int) and converted to bn.Num only at Next(), avoiding a
// parse-per-point.
type FCCSource struct {
	d         int
	precision int

	i, j, k int
	done    bool
}

// GridHalfExtent computes D = 2*ceil(R/a) for outer radius R and
// lattice constant a (both in angstroms). The division is only used to
// size the integer enumeration bound, so machine-precision float64 is
// sufficient here even though all coordinate arithmetic downstream is
// exact BN (Design Notes §9: the bound itself only needs "generous
// overshoot", not exactness).
func GridHalfExtent(radius, latticeConstant bn.Num) int {
	r := radius.Float64()
	a := latticeConstant.Float64()
	if a == 0 {
		return 0
	}
	return 2 * int(math.Ceil(r/a))
}

// NewFCCSource builds the coordinate queue for the given outer radius
// and lattice constant, at the given decimal precision.
func NewFCCSource(radius, latticeConstant bn.Num, precision int) *FCCSource {
	d := GridHalfExtent(radius, latticeConstant)
	return &FCCSource{
		d:         d,
		precision: precision,
		i:         -d,
		j:         -d,
		k:         -d,
	}
}

// HalfExtent returns D, the integer half-extent of the enumeration
// cube.
func (s *FCCSource) HalfExtent() int { return s.d }

// Next drains one Triple from the queue, in fractional coordinates, or
// reports (_, false) once the queue is empty. Order is lexicographic
// (i outer, j middle, k inner) and stable within a run.
func (s *FCCSource) Next() (vec3.Triple, bool) {
	if s.done {
		return vec3.Triple{}, false
	}

	i, j, k := s.i, s.j, s.k
	s.advance()

	return s.toTriple(i, j, k), true
}

func (s *FCCSource) advance() {
	s.k++
	if s.k > s.d {
		s.k = -s.d
		s.j++
		if s.j > s.d {
			s.j = -s.d
			s.i++
			if s.i > s.d {
				s.done = true
			}
		}
	}
}

func (s *FCCSource) toTriple(i, j, k int) vec3.Triple {
	half := bn.MustFromString("0.5", s.precision)
	return vec3.New(
		bn.FromInt(int64(i), s.precision).Mul(half),
		bn.FromInt(int64(j), s.precision).Mul(half),
		bn.FromInt(int64(k), s.precision).Mul(half),
	)
}

// Remaining reports an upper bound on the number of points left to
// drain; used by diagnostics/progress reporting, not by correctness.
func (s *FCCSource) Remaining() int {
	if s.done {
		return 0
	}
	total := (2*s.d + 1)
	total3 := total * total * total
	done := (s.i+s.d)*total*total + (s.j+s.d)*total + (s.k + s.d)
	remaining := total3 - done
	if remaining < 0 {
		return 0
	}
	return remaining
}
