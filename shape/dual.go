package shape

import (
	"fmt"

	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// polarDualVertices returns the polar dual of a convex polytope's face
// set: for a face with outward unit normal n and plane offset
// s = anchor.n (the face's distance from the origin), the dual vertex
// is n/s. This is the standard construction used to build a Catalan
// solid's vertices directly from its Archimedean source's faces,
// rather than re-deriving a separate literature coordinate table for
// every dual: the two solids share the same supporting-hyperplane
// data, just with the roles of "vertex" and "face normal" swapped.
func polarDualVertices(faces []Face, precision int) ([]vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	out := make([]vec3.Triple, 0, len(faces))
	for _, f := range faces {
		s := vec3.Dot(f.Anchor, f.Normal)
		if s.Sign() == 0 {
			return nil, fmt.Errorf("shape: dual construction needs a face not through the origin")
		}
		inv, err := one.Quo(s)
		if err != nil {
			return nil, err
		}
		out = append(out, vec3.MultNum(f.Normal, inv))
	}
	return out, nil
}

// dualGenerator builds the VertexGenerator for the Catalan (or other)
// dual of the solid produced by primalGen: the dual's vertices are the
// primal's polar-dual face points, and the dual's face-normal
// directions are the primal's own (unscaled) vertex directions — valid
// because every Archimedean source here is vertex-transitive, so every
// vertex already lies at the same distance from the origin and can
// serve directly as a direction without renormalizing.
func dualGenerator(primalGen VertexGenerator) VertexGenerator {
	return func(precision int) ([]vec3.Triple, []vec3.Triple, error) {
		primalVertices, primalNormalDirs, err := primalGen(precision)
		if err != nil {
			return nil, nil, err
		}
		primalFaces, err := groupFaces(primalVertices, primalNormalDirs)
		if err != nil {
			return nil, nil, err
		}
		dualVertices, err := polarDualVertices(primalFaces, precision)
		if err != nil {
			return nil, nil, err
		}
		return dualVertices, primalVertices, nil
	}
}
