package export

import (
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/deadsy/npgen/shape"
)

// WriteSVG renders a 2D XY-projection debug scatter: every considered
// lattice point (gray, occupied ones filled dark) plus the shape's
// outline, derived by projecting each face's edges onto the XY plane.
// Coordinates are in angstroms; canvasPx sets the square canvas size
// and scalePxPerUnit converts angstroms to pixels, centered on canvas.
func WriteSVG(path string, faces []shape.Face, latticeX, latticeY []float64, occupied []bool, canvasPx int, scalePxPerUnit float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(canvasPx, canvasPx)
	defer canvas.End()

	center := canvasPx / 2
	project := func(x, y float64) (int, int) {
		return center + int(x*scalePxPerUnit), center - int(y*scalePxPerUnit)
	}

	for i := range latticeX {
		px, py := project(latticeX[i], latticeY[i])
		if i < len(occupied) && occupied[i] {
			canvas.Circle(px, py, 2, "fill:black")
		} else {
			canvas.Circle(px, py, 1, "fill:lightgray")
		}
	}

	seen := map[[2][2]int]bool{}
	for _, face := range faces {
		n := len(face.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ax, ay := project(face.Vertices[i].X.Float64(), face.Vertices[i].Y.Float64())
			bx, by := project(face.Vertices[j].X.Float64(), face.Vertices[j].Y.Float64())
			key := [2][2]int{{ax, ay}, {bx, by}}
			rev := [2][2]int{{bx, by}, {ax, ay}}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			canvas.Line(ax, ay, bx, by, "stroke:steelblue;stroke-width:1")
		}
	}

	return nil
}
