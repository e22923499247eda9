package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// tetrahedronGen builds the regular tetrahedron as the alternate-sign
// half of a cube's vertex set: (1,1,1), (1,-1,-1), (-1,1,-1), (-1,-1,1).
// Each vertex sits directly opposite one face, so that face's outward
// normal direction is simply the negation of the opposite vertex.
func tetrahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	verts := []vec3.Triple{
		vec3.New(one, one, one),
		vec3.New(one, one.Neg(), one.Neg()),
		vec3.New(one.Neg(), one, one.Neg()),
		vec3.New(one.Neg(), one.Neg(), one),
	}
	dirs := make([]vec3.Triple, len(verts))
	for i, v := range verts {
		dirs[i] = vec3.New(v.X.Neg(), v.Y.Neg(), v.Z.Neg())
	}
	return verts, dirs, nil
}

// NewTetrahedron constructs the regular tetrahedron bounding shape.
func NewTetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Tetrahedron", tetrahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// dodecahedronGen builds the regular dodecahedron: 8 cube vertices
// (±1,±1,±1) plus 12 vertices from even permutations of
// (0, ±1/phi, ±phi); faces are normal to the 12 directions of even
// permutations of (0, ±phi, ±1), the icosahedron's own vertex
// directions (spec.md §4.5's "nested radicals... and combinations").
func dodecahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	zero := bn.FromInt(0, precision)
	p, err := phi(precision)
	if err != nil {
		return nil, nil, err
	}
	invPhi, err := one.Quo(p)
	if err != nil {
		return nil, nil, err
	}

	verts := signPermutations(one, one, one, precision)
	verts = append(verts, evenPermutationsSignVariants(zero, invPhi, p, precision)...)

	dirs := evenPermutationsSignVariants(zero, p, one, precision)
	return verts, dirs, nil
}

// NewDodecahedron constructs the regular dodecahedron bounding shape.
func NewDodecahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Dodecahedron", dodecahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// icosahedronGen is the polar dual of the dodecahedron: its vertex
// directions are exactly the dodecahedron's face-normal directions,
// and vice versa — the standard Platonic dual pair, so there is no
// need for a second independently-memorized coordinate table.
func icosahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	return dualGenerator(dodecahedronGen)(precision)
}

// NewIcosahedron constructs the regular icosahedron bounding shape.
func NewIcosahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Icosahedron", icosahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}
