// Package lattice implements the FCC unit cell and the bounded
// fractional-coordinate enumeration that feeds the build pipeline.
package lattice

import (
	"fmt"

	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// LatticeType names a supported Bravais lattice. Only FCC is
// implemented at this release (spec.md §1 Non-goals).
type LatticeType string

// FCC is the only supported lattice type.
const FCC LatticeType = "FCC"

// Cell is a unit cell: its Bravais type, Hermann-Mauguin space group
// label, four-atom basis, precision, and cell lengths/angles.
type Cell struct {
	latticeType LatticeType
	spaceGroup  string
	basis       [4]*atom.Atom
	precision   int
	a, b, c     bn.Num
	alpha, beta, gamma bn.Num
}

// canonicalFCCBasis are the four canonical FCC fractional basis
// positions from spec.md §3: (0,0,0), (1/2,1/2,0), (1/2,0,1/2),
// (0,1/2,1/2).
func canonicalFCCBasis(precision int) ([4]vec3.Triple, error) {
	zero := bn.FromInt(0, precision)
	half, err := bn.FromString("0.5", precision)
	if err != nil {
		return [4]vec3.Triple{}, err
	}
	return [4]vec3.Triple{
		vec3.New(zero, zero, zero),
		vec3.New(half, half, zero),
		vec3.New(half, zero, half),
		vec3.New(zero, half, half),
	}, nil
}

// NewFCC constructs an FCC unit cell from an ordered 4-atom basis and a
// cubic lattice constant (edge length a=b=c, angles 90 degrees). The
// basis atoms' FractionalBasis() fields must match the canonical FCC
// positions in some order; NewFCC re-seats each to its canonical slot
// rather than trusting caller-supplied ordering, so lookups are exact.
func NewFCC(latticeType LatticeType, basis [4]*atom.Atom, latticeConstant bn.Num, precision int) (*Cell, error) {
	if latticeType != FCC {
		return nil, fmt.Errorf("lattice: unsupported lattice type %q", latticeType)
	}
	if len(basis) != 4 {
		return nil, fmt.Errorf("lattice: FCC basis must have exactly 4 atoms")
	}

	canon, err := canonicalFCCBasis(precision)
	if err != nil {
		return nil, err
	}

	seated := [4]*atom.Atom{}
	used := [4]bool{}
	for _, a := range basis {
		matched := false
		for i, c := range canon {
			if used[i] {
				continue
			}
			if tripleEqual(a.FractionalBasis(), c) {
				seated[i] = a
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("lattice: basis atom %s at (%s,%s,%s) does not match a canonical FCC position",
				a.Element(), a.FractionalBasis().X.String(), a.FractionalBasis().Y.String(), a.FractionalBasis().Z.String())
		}
	}
	for i := range used {
		if !used[i] {
			return nil, fmt.Errorf("lattice: FCC basis missing canonical position %d", i)
		}
	}

	ninety, err := bn.FromString("90", precision)
	if err != nil {
		return nil, err
	}

	return &Cell{
		latticeType: FCC,
		spaceGroup:  "F m -3 m",
		basis:       seated,
		precision:   precision,
		a:           latticeConstant,
		b:           latticeConstant,
		c:           latticeConstant,
		alpha:       ninety,
		beta:        ninety,
		gamma:       ninety,
	}, nil
}

func tripleEqual(a, b vec3.Triple) bool {
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0 && a.Z.Cmp(b.Z) == 0
}

// SpaceGroup returns the Hermann-Mauguin space-group label.
func (c *Cell) SpaceGroup() string { return c.spaceGroup }

// LengthA, LengthB, LengthC return the cell edge lengths.
func (c *Cell) LengthA() bn.Num { return c.a }
func (c *Cell) LengthB() bn.Num { return c.b }
func (c *Cell) LengthC() bn.Num { return c.c }

// AngleAlpha, AngleBeta, AngleGamma return the cell angles in degrees.
func (c *Cell) AngleAlpha() bn.Num { return c.alpha }
func (c *Cell) AngleBeta() bn.Num  { return c.beta }
func (c *Cell) AngleGamma() bn.Num { return c.gamma }

// Precision returns the unit cell's decimal digit precision.
func (c *Cell) Precision() int { return c.precision }

// GetLatticePoint reduces (x,y,z) modulo 1 and returns the basis atom
// whose fractional position matches exactly, or (nil, false) if no
// basis atom occupies that reduced position.
func (c *Cell) GetLatticePoint(p vec3.Triple) (*atom.Atom, bool) {
	reduced := vec3.New(p.X.Mod1(), p.Y.Mod1(), p.Z.Mod1())
	for _, a := range c.basis {
		if tripleEqual(a.FractionalBasis(), reduced) {
			return a, true
		}
	}
	return nil, false
}

