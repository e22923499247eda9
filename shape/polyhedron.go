package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/lattice"
	"github.com/deadsy/npgen/vec3"
)

// Polyhedron is the shared concrete type for every face-list-based
// bounding shape (everything except Sphere/Cube, whose containment
// predicates are simple closed-form inequalities). Construction derives
// faces via groupFaces from a vertex-direction generator function, per
// the Design Notes §9 "sum type of shape kinds plus shared tables"
// guidance: biscribed/canonical/chiral variants of the same family are
// just different constant vectors fed to the same generator, not
// different Go types.
type Polyhedron struct {
	*Base
	Name           string
	faces          []Face
	boundingRadius float64
}

// VertexGenerator builds the unscaled basis vertex directions and
// face-normal directions for one polyhedron, at the given precision.
type VertexGenerator func(precision int) (vertices, normalDirs []vec3.Triple, err error)

// newPolyhedron is the one shared constructor behind every concrete
// NewXxx function in solids_*.go: validate/convert inputs via NewBase,
// generate+scale vertices, derive faces, precompute the fast-reject
// bounding radius.
func newPolyhedron(
	name string,
	gen VertexGenerator,
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	b, err := NewBase(radiusDecimal, unit, lattice.FCC, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
	if err != nil {
		return nil, err
	}

	vertices, normalDirs, err := gen(precision)
	if err != nil {
		return nil, err
	}

	scaled, err := scaleVerticesToRadius(vertices, b.radius, precision)
	if err != nil {
		return nil, err
	}

	faces, err := groupFaces(scaled, normalDirs)
	if err != nil {
		return nil, err
	}

	return &Polyhedron{
		Base:           b,
		Name:           name,
		faces:          faces,
		boundingRadius: boundingRadiusF64(faces),
	}, nil
}

// Faces returns the precomputed face list (anchor + outward normal per
// face), used by both InBounds and the export package's mesh
// triangulation.
func (p *Polyhedron) Faces() []Face { return p.faces }

// InBounds implements the generic convex polyhedron containment
// predicate from spec.md §4.5, with a machine-precision fast reject
// ahead of the exact arbitrary-precision test (never a fast accept —
// see fastpath.go).
func (p *Polyhedron) InBounds(point vec3.Triple) bool {
	if quickReject(point, p.boundingRadius) {
		return false
	}
	return inHalfSpaces(p.faces, point)
}

// Build runs the common build pipeline.
func (p *Polyhedron) Build(name string, debug bool) error {
	return runBuild(p.Base, p, name, debug)
}

// phi returns the golden ratio (1+sqrt5)/2 at the given precision,
// the recurring generating constant for the icosahedral-symmetry
// family (Dodecahedron, Icosahedron, Icosidodecahedron, and every
// solid derived from them).
func phi(precision int) (bn.Num, error) {
	five := bn.FromInt(5, precision)
	sqrt5, err := five.Sqrt()
	if err != nil {
		return bn.Num{}, err
	}
	one := bn.FromInt(1, precision)
	two := bn.FromInt(2, precision)
	return one.Add(sqrt5).Quo(two)
}
