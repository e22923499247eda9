package shape

import (
	"fmt"
	"math"
	"sort"

	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// Face is an ordered sequence of 3 or more vertices (up to 10, for the
// truncated icosidodecahedron's decagons), listed in boundary order,
// plus its outward unit normal. Anchor is the first vertex, used by the
// half-space containment test.
type Face struct {
	Vertices []vec3.Triple
	Anchor   vec3.Triple
	Normal   vec3.Triple
}

// groupFaces derives each face's vertex set from a list of vertices and
// a list of outward face-normal *directions*, without requiring a
// hand-authored vertex/face adjacency table.
//
// For any convex polytope centered at the origin, the vertex set of the
// face whose supporting hyperplane has outward normal direction n is
// exactly the subset of vertices that maximizes v.n (the face is the
// polytope's "extreme set" in direction n) — a standard fact about
// supporting hyperplanes of convex polytopes, and precisely the
// mechanism spec.md's Design Notes §9 calls for when it says
// biscribed/canonical/chiral variants should differ "only by a
// constants vector" rather than by a hand-copied face list: here the
// *only* per-solid data is the vertex list and the normal-direction
// list, both built from the same sign/permutation generators.
//
// Face winding does not matter: vec3.NormalPoly's "out" orientation
// correction (spec.md §4.2) always produces the correct outward normal
// from an unordered vertex set, by construction.
func groupFaces(vertices []vec3.Triple, normalDirs []vec3.Triple) ([]Face, error) {
	var faces []Face
	for _, dir := range normalDirs {
		// Find the maximal support value v.n over all vertices via
		// exact BN comparison.
		bestDot := vec3.Dot(vertices[0], dir)
		for _, v := range vertices[1:] {
			d := vec3.Dot(v, dir)
			if d.Cmp(bestDot) > 0 {
				bestDot = d
			}
		}

		// The face's vertex set is every vertex within a tolerance of
		// half the working precision's digits of that maximum, so
		// rounding in computed coordinates does not split a face.
		tol := bn.MustFromString(fmt.Sprintf("1e-%d", bestDot.Precision()/2), bestDot.Precision())
		faceVerts := make([]vec3.Triple, 0, 6)
		for _, v := range vertices {
			d := vec3.Dot(v, dir)
			if bestDot.Sub(d).Cmp(tol) <= 0 {
				faceVerts = append(faceVerts, v)
			}
		}

		if len(faceVerts) < 3 {
			return nil, fmt.Errorf("shape: face normal direction (%s,%s,%s) matched only %d vertices",
				dir.X.String(), dir.Y.String(), dir.Z.String(), len(faceVerts))
		}

		normal, err := vec3.NormalPoly(faceVerts, true)
		if err != nil {
			return nil, err
		}

		// Put the vertices in boundary order: sort by angle about the
		// normal, measured from the face centroid.
		sum := faceVerts[0]
		for _, v := range faceVerts[1:] {
			sum = vec3.Add(sum, v)
		}
		k := bn.FromInt(int64(len(faceVerts)), sum.Precision())
		rel := func(v vec3.Triple) vec3.Triple { return vec3.Subs(vec3.MultNum(v, k), sum) }
		u := rel(faceVerts[0])
		w := vec3.Cross(normal, u)
		angle := func(v vec3.Triple) float64 {
			return math.Atan2(vec3.Dot(rel(v), w).Float64(), vec3.Dot(rel(v), u).Float64())
		}
		sort.SliceStable(faceVerts, func(i, j int) bool { return angle(faceVerts[i]) < angle(faceVerts[j]) })

		faces = append(faces, Face{
			Vertices: faceVerts,
			Anchor:   faceVerts[0],
			Normal:   normal,
		})
	}
	return faces, nil
}
