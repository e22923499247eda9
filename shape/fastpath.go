package shape

import (
	"github.com/deadsy/npgen/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// boundingRadiusF64 computes, at machine precision, the maximum
// distance from the origin to any face vertex — for a convex solid
// centered on the origin this is the circumradius, a cheap bounding
// radius good enough to reject points that are obviously outside every
// face.
//
// Design Notes §9 allows (but does not require) a fast machine-
// precision path for "the vast interior", reserving the exact BN test
// for points near a face plane; here the fast path is used only as an
// early REJECT (never an early accept), so correctness never depends on
// it — the exact half-space test (inHalfSpaces) always has the final
// word for every point that isn't trivially outside the bounding
// sphere. This keeps "all-precision is the default and correct
// behavior" (Design Notes §9) while giving the common case — the
// overwhelming majority of lattice points generated by the generous
// D = 2*ceil(R/a) grid lie outside small/medium shapes — a float64
// short-circuit instead of an arbitrary-precision dot product per face.
func boundingRadiusF64(faces []Face) float64 {
	var maxR float64
	for _, f := range faces {
		for _, v := range f.Vertices {
			r := r3.Norm(r3.Vec{X: v.X.Float64(), Y: v.Y.Float64(), Z: v.Z.Float64()})
			if r > maxR {
				maxR = r
			}
		}
	}
	return maxR
}

// quickReject reports whether the point is definitely outside the
// shape's bounding sphere (machine precision only). A false return
// means "don't know" — the caller must still run the exact test.
func quickReject(p vec3.Triple, boundingRadius float64) bool {
	v := r3.Vec{X: p.X.Float64(), Y: p.Y.Float64(), Z: p.Z.Float64()}
	// Generous margin: machine-precision rounding must never cause a
	// true boundary point to be rejected here.
	const margin = 1.0000001
	return r3.Norm(v) > boundingRadius*margin
}
