// Package export renders a built shape's bounding polyhedron to
// external interchange formats: wireframe DXF, triangulated 3MF mesh,
// a 2D SVG debug projection, and a captioned PNG thumbnail over that
// projection.
package export

import (
	"github.com/deadsy/npgen/shape"
	"github.com/yofu/dxf"
)

// edgeKey is one edge of a polyhedron's wireframe, as the pair of its
// endpoints' coordinate strings.
type edgeKey struct{ a, b [3]string }

// WriteDXF emits a wireframe DXF of the polyhedron's faces: every edge
// of every face, deduplicated, as a 3D LINE entity on its own layer.
func WriteDXF(path string, faces []shape.Face) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer("wireframe", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.ChangeLayer("wireframe")

	seen := map[edgeKey]bool{}
	for _, f := range faces {
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := f.Vertices[i], f.Vertices[j]
			ka := [3]string{a.X.String(), a.Y.String(), a.Z.String()}
			kb := [3]string{b.X.String(), b.Y.String(), b.Z.String()}
			if seen[edgeKey{ka, kb}] || seen[edgeKey{kb, ka}] {
				continue
			}
			seen[edgeKey{ka, kb}] = true
			d.Line(a.X.Float64(), a.Y.Float64(), a.Z.Float64(), b.X.Float64(), b.Y.Float64(), b.Z.Float64())
		}
	}

	return d.SaveAs(path)
}
