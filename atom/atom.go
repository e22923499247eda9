// Package atom implements the atomic value type shared by unit-cell
// bases and placed lattice sites, grounded on the teacher's small
// node-with-metadata structs (render.Hex8, render.Tet4: a value struct
// plus an unexported field set exactly once after construction).
package atom

import (
	"fmt"
	"regexp"

	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

var elementRe = regexp.MustCompile(`^[A-Z][a-z]?$`)

// Atom carries the static chemistry of a basis slot plus, once placed,
// its lattice position and output index.
type Atom struct {
	element         string
	radius          bn.Num
	volume          bn.Num
	formalCharge    string
	fractionalBasis vec3.Triple
	precision       int

	placed     bool
	index      int
	cartesian  vec3.Triple
	fractional vec3.Triple
}

// New validates and constructs a basis Atom. radius must be positive;
// element must be a one- or two-letter symbol (first letter uppercase,
// second lowercase); charge is an integer formatted on entry as "0",
// "+N", or "-N". fractionalBasis identifies the basis slot within the
// unit cell, and must lie in [0,1)^3.
func New(element string, radius bn.Num, charge int, fractionalBasis vec3.Triple, precision int) (*Atom, error) {
	if !elementRe.MatchString(element) {
		return nil, fmt.Errorf("atom: invalid element symbol %q", element)
	}
	if radius.Sign() <= 0 {
		return nil, fmt.Errorf("atom: radius must be positive, got %s", radius.String())
	}

	volume, err := computeVolume(radius, precision)
	if err != nil {
		return nil, err
	}

	return &Atom{
		element:         element,
		radius:          radius,
		volume:          volume,
		formalCharge:    formatCharge(charge),
		fractionalBasis: fractionalBasis,
		precision:       precision,
	}, nil
}

// computeVolume returns (4/3)*pi*r^3 at the given precision.
func computeVolume(radius bn.Num, precision int) (bn.Num, error) {
	four := bn.FromInt(4, precision)
	three := bn.FromInt(3, precision)
	fourThirds, err := four.Quo(three)
	if err != nil {
		return bn.Num{}, err
	}
	pi := bn.Pi(precision)
	r3 := radius.PowInt(3)
	return fourThirds.Mul(pi).Mul(r3), nil
}

func formatCharge(c int) string {
	switch {
	case c == 0:
		return "0"
	case c > 0:
		return fmt.Sprintf("+%d", c)
	default:
		return fmt.Sprintf("%d", c)
	}
}

// Element returns the chemical symbol.
func (a *Atom) Element() string { return a.element }

// Radius returns the atomic radius in angstroms.
func (a *Atom) Radius() bn.Num { return a.radius }

// Volume returns the derived volume (4/3)*pi*r^3 in cubic angstroms.
func (a *Atom) Volume() bn.Num { return a.volume }

// FormalCharge returns the formatted charge string ("0", "+N", "-N").
func (a *Atom) FormalCharge() string { return a.formalCharge }

// FractionalBasis returns the basis-slot fractional coordinate this
// atom occupies within the unit cell.
func (a *Atom) FractionalBasis() vec3.Triple { return a.fractionalBasis }

// Placed reports whether LatticePoint has been called on this atom.
func (a *Atom) Placed() bool { return a.placed }

// Index returns the placed output index; only valid if Placed().
func (a *Atom) Index() int { return a.index }

// Cartesian returns the placed Cartesian position; only valid if
// Placed().
func (a *Atom) Cartesian() vec3.Triple { return a.cartesian }

// Fractional returns the placed fractional position; only valid if
// Placed().
func (a *Atom) Fractional() vec3.Triple { return a.fractional }

// Clone returns a fresh, unplaced copy of the atom's basis chemistry,
// so that a single basis Atom can be placed at many lattice sites
// without aliasing placement state.
func (a *Atom) Clone() *Atom {
	c := *a
	c.placed = false
	return &c
}

// LatticePoint places this atom at the given output index and
// position, mutating it exactly once. Calling it a second time on an
// already-placed atom is a programmer error and panics, matching the
// "set once after construction" invariant of the teacher's Hex8/Tet4
// layer field.
func (a *Atom) LatticePoint(index int, cartesian, fractional vec3.Triple) {
	if a.placed {
		panic("atom: LatticePoint called more than once on the same Atom")
	}
	a.index = index
	a.cartesian = cartesian
	a.fractional = fractional
	a.placed = true
}

// Less orders atoms by radius (the larger of the two atoms' precisions
// governs the comparison), per spec.md §4.3.
func Less(a, b *Atom) bool {
	return a.radius.Cmp(b.radius) < 0
}
