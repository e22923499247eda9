// Package shape implements the polyhedral containment engine and build
// pipeline: spec.md §4.5-§4.7. Concrete polyhedra are data (a vertex
// list plus a face-normal-direction list) attached to one shared
// containment routine, per the Design Notes §9 guidance to re-express
// the source's deep shape inheritance hierarchy as a sum type of shape
// kinds plus shared tables.
package shape

import (
	"fmt"

	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/lattice"
	"github.com/deadsy/npgen/vec3"
)

// RadiusUnit names the accepted input units for a shape's outer
// radius, per spec.md §6.
type RadiusUnit string

const (
	Picometers RadiusUnit = "pm"
	Angstrom   RadiusUnit = "A"
	Nanometers RadiusUnit = "nm"
)

// ParseRadiusUnit accepts the case-insensitive spellings named in
// spec.md §6.
func ParseRadiusUnit(s string) (RadiusUnit, error) {
	switch normalizeUnit(s) {
	case "pm", "picometers", "picometer", "pico-meters", "pico meters":
		return Picometers, nil
	case "a", "angstrom", "angstroms", "å", "Å":
		return Angstrom, nil
	case "nm", "nanometer", "nanometers":
		return Nanometers, nil
	default:
		return "", fmt.Errorf("shape: unknown radius unit %q", s)
	}
}

func normalizeUnit(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out = append(out, r)
	}
	return string(out)
}

// ErrNotImplemented is returned by a shape constructor for a geometry
// whose containment predicate is not yet implemented, per Design Notes
// §9's resolution of the source's always-false Icosahedra: treat as
// not-yet-implemented and raise an error, not silently replicate dead
// code.
var ErrNotImplemented = fmt.Errorf("shape: containment predicate not implemented")

// ErrAlreadyBuilt is returned by Build when called a second time on
// the same Shape instance (spec.md §4.8: Fresh -> Built|Failed, build()
// at most once).
var ErrAlreadyBuilt = fmt.Errorf("shape: Build already called on this instance")

// toAngstrom converts a decimal radius string in the given unit to
// angstroms, per spec.md §4.5 (pm x 0.01, nm x 10).
func toAngstrom(radiusDecimal string, unit RadiusUnit, precision int) (bn.Num, error) {
	r, err := bn.FromString(radiusDecimal, precision)
	if err != nil {
		return bn.Num{}, err
	}
	switch unit {
	case Angstrom:
		return r, nil
	case Picometers:
		factor, err := bn.FromString("0.01", precision)
		if err != nil {
			return bn.Num{}, err
		}
		return r.Mul(factor), nil
	case Nanometers:
		factor, err := bn.FromString("10", precision)
		if err != nil {
			return bn.Num{}, err
		}
		return r.Mul(factor), nil
	default:
		return bn.Num{}, fmt.Errorf("shape: unknown radius unit %q", unit)
	}
}

// Base holds the fields and behavior common to every concrete Shape:
// radius/lattice-constant bookkeeping, the unit cell, the coordinate
// source, and the once-only Build guard. Concrete shapes embed Base and
// supply InBounds.
type Base struct {
	radius          bn.Num
	latticeConstant bn.Num
	cell            *lattice.Cell
	coords          *lattice.FCCSource
	precision       int

	fileName      string
	structureName string
	structureIdx  string

	built bool
}

// NewBase validates radius unit / lattice type and wires up the
// coordinate source and unit cell, per spec.md §4.5 ("Construction
// additionally asserts the lattice type is supported... Invalid radius
// unit or lattice type is a construction-time error").
func NewBase(
	radiusDecimal string, unit RadiusUnit,
	latticeType lattice.LatticeType,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Base, error) {
	radius, err := toAngstrom(radiusDecimal, unit, precision)
	if err != nil {
		return nil, err
	}
	latticeConstant, err := bn.FromString(latticeConstantDecimal, precision)
	if err != nil {
		return nil, err
	}
	cell, err := lattice.NewFCC(latticeType, basis, latticeConstant, precision)
	if err != nil {
		return nil, err
	}
	coords := lattice.NewFCCSource(radius, latticeConstant, precision)

	return &Base{
		radius:          radius,
		latticeConstant: latticeConstant,
		cell:            cell,
		coords:          coords,
		precision:       precision,
		fileName:        fileName,
		structureName:   structureName,
		structureIdx:    structureIdx,
	}, nil
}

// Radius returns the outer radius in angstroms.
func (b *Base) Radius() bn.Num { return b.radius }

// LatticeConstant returns the cubic lattice constant in angstroms.
func (b *Base) LatticeConstant() bn.Num { return b.latticeConstant }

// UnitCell returns the wired FCC unit cell.
func (b *Base) UnitCell() *lattice.Cell { return b.cell }

// Coordinates returns the lattice coordinate source.
func (b *Base) Coordinates() *lattice.FCCSource { return b.coords }

// Precision returns the decimal digit precision this shape was built
// with.
func (b *Base) Precision() int { return b.precision }

// scaleVerticesToRadius returns vertices uniformly scaled so that the
// maximum vertex norm equals R. spec.md §4.5 describes this as
// "normalize and scale each [vertex] to the shape's radius R"; taken
// per-vertex literally that would force every vertex onto the sphere of
// radius R, collapsing every polyhedron into a sphere, which
// contradicts the rest of the spec (distinct atom counts for cube vs.
// sphere, face-transitive canonical forms whose vertices are not
// equidistant from the origin). The sensible, shape-preserving reading
// — and the one used here — is a single uniform scale factor so the
// polyhedron's circumradius equals R, in keeping with Design Notes §9's
// warning to rederive rather than copy suspect constants verbatim.
func scaleVerticesToRadius(vertices []vec3.Triple, radius bn.Num, precision int) ([]vec3.Triple, error) {
	var maxNorm bn.Num
	first := true
	for _, v := range vertices {
		n, err := v.Norm()
		if err != nil {
			return nil, err
		}
		if first || n.Cmp(maxNorm) > 0 {
			maxNorm = n
			first = false
		}
	}
	if maxNorm.Sign() == 0 {
		return nil, fmt.Errorf("shape: degenerate vertex set (zero circumradius)")
	}
	scale, err := radius.Quo(maxNorm)
	if err != nil {
		return nil, err
	}
	out := make([]vec3.Triple, len(vertices))
	for i, v := range vertices {
		out[i] = vec3.MultNum(v, scale)
	}
	return out, nil
}

// inHalfSpaces is the generic convex polyhedron containment predicate
// from spec.md §4.5: for every face, let m = point - anchor, d = n.m;
// the point is inside iff d <= 0 for every face.
func inHalfSpaces(faces []Face, point vec3.Triple) bool {
	for _, f := range faces {
		m := vec3.Subs(point, f.Anchor)
		d := vec3.Dot(f.Normal, m)
		if d.Sign() > 0 {
			return false
		}
	}
	return true
}
