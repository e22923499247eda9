package diag

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// minBranch and maxBranch are rtreego's node fan-out bounds; these are
// the values used throughout rtreego's own examples and are adequate
// for the few hundred to few thousand atoms a single build emits.
const (
	minBranch = 25
	maxBranch = 50
)

// clashPoint wraps one placed atom's Cartesian position so it can be
// indexed by rtreego, which requires every indexed value to implement
// rtreego.Spatial.
type clashPoint struct {
	index  int
	x, y, z float64
}

func (p *clashPoint) Bounds() rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{p.x, p.y, p.z}, []float64{1e-9, 1e-9, 1e-9})
	if err != nil {
		panic(err)
	}
	return rect
}

// Clash is a pair of atom indices placed closer together than the
// clash radius used to build the index.
type Clash struct {
	A, B int
}

// FindClashes indexes every placed atom's Cartesian position in an
// rtreego R-tree and reports every pair closer together than radius.
// This is an O(n log n) alternative to the naive O(n^2) all-pairs scan,
// useful as a post-build sanity check on denser/smaller-lattice-
// constant builds where two basis atoms can legitimately end up close
// together near a shape boundary.
func FindClashes(xs, ys, zs []float64, radius float64) []Clash {
	n := len(xs)
	tree := rtreego.NewTree(3, minBranch, maxBranch)
	points := make([]*clashPoint, n)
	for i := 0; i < n; i++ {
		points[i] = &clashPoint{index: i, x: xs[i], y: ys[i], z: zs[i]}
		tree.Insert(points[i])
	}

	seen := map[[2]int]bool{}
	var clashes []Clash
	for i, p := range points {
		bb, err := rtreego.NewRect(
			rtreego.Point{p.x - radius, p.y - radius, p.z - radius},
			[]float64{2 * radius, 2 * radius, 2 * radius},
		)
		if err != nil {
			continue
		}
		for _, hit := range tree.SearchIntersect(bb) {
			q := hit.(*clashPoint)
			if q.index == i {
				continue
			}
			key := [2]int{i, q.index}
			if q.index < i {
				key = [2]int{q.index, i}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if distance(p.x, p.y, p.z, q.x, q.y, q.z) < radius {
				clashes = append(clashes, Clash{A: key[0], B: key[1]})
			}
		}
	}
	return clashes
}

func distance(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x1-x2, y1-y2, z1-z2
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
