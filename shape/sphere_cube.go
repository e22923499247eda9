package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/lattice"
	"github.com/deadsy/npgen/vec3"
)

// Sphere is the lattice-building geometric sphere shape: containment
// is x^2+y^2+z^2 <= R^2 (spec.md §4.5). This is distinct from any
// atom-count estimator concept (Open Questions §9 note: "two distinct
// Sphere concepts coexist in the source" — only the geometric one is
// implemented here; no estimator exists in this module at all).
type Sphere struct {
	*Base
}

// NewSphere constructs a spherical bounding shape.
func NewSphere(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Sphere, error) {
	b, err := NewBase(radiusDecimal, unit, lattice.FCC, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
	if err != nil {
		return nil, err
	}
	return &Sphere{Base: b}, nil
}

// InBounds implements the exact containment predicate.
func (s *Sphere) InBounds(p vec3.Triple) bool {
	r2 := vec3.Dot(p, p)
	rad2 := s.radius.Mul(s.radius)
	return r2.Cmp(rad2) <= 0
}

// Build runs the common build pipeline (shape.go/build.go).
func (s *Sphere) Build(name string, debug bool) error {
	return runBuild(s.Base, s, name, debug)
}

// Cube is the axis-aligned cube bounding shape: containment is
// max(|x|,|y|,|z|) <= R (spec.md §4.5), where R is the half-side.
type Cube struct {
	*Base
}

// NewCube constructs a cube bounding shape with half-side radius.
func NewCube(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Cube, error) {
	b, err := NewBase(radiusDecimal, unit, lattice.FCC, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
	if err != nil {
		return nil, err
	}
	return &Cube{Base: b}, nil
}

// InBounds implements the exact containment predicate.
func (c *Cube) InBounds(p vec3.Triple) bool {
	ax, ay, az := p.X.Abs(), p.Y.Abs(), p.Z.Abs()
	m := ax
	if ay.Cmp(m) > 0 {
		m = ay
	}
	if az.Cmp(m) > 0 {
		m = az
	}
	return m.Cmp(c.radius) <= 0
}

// Build runs the common build pipeline.
func (c *Cube) Build(name string, debug bool) error {
	return runBuild(c.Base, c, name, debug)
}
