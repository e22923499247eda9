package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// Catalan solids are built as the polar dual (dual.go) of their
// Archimedean source, per spec.md §4.5's own pairing of each Catalan
// name with the Archimedean solid it is dual to.

// NewTriakisTetrahedron constructs the Catalan dual of the truncated
// tetrahedron.
func NewTriakisTetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TriakisTetrahedron", dualGenerator(truncatedTetrahedronGen),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewTetrakisHexahedron constructs the Catalan dual of the (canonical)
// truncated octahedron.
func NewTetrakisHexahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TetrakisHexahedron", dualGenerator(truncatedOctahedronGen("2")),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewDeltoidalIcositetrahedron constructs the Catalan dual of the
// rhombicuboctahedron.
func NewDeltoidalIcositetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("DeltoidalIcositetrahedron", dualGenerator(rhombicuboctahedronGen),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalIcositetrahedron constructs the Catalan dual of the
// dextro, canonical snub cuboctahedron.
func NewPentagonalIcositetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalIcositetrahedron", dualGenerator(snubCuboctahedronGen(false, false)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalIcositetrahedronLevo constructs the Catalan dual of the
// levo, canonical snub cuboctahedron.
func NewPentagonalIcositetrahedronLevo(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalIcositetrahedronLevo", dualGenerator(snubCuboctahedronGen(true, false)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalIcositetrahedronBiscribed constructs the Catalan dual
// of the dextro, biscribed snub cuboctahedron.
func NewPentagonalIcositetrahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalIcositetrahedronBiscribed", dualGenerator(snubCuboctahedronGen(false, true)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalIcositetrahedronBiscribedLevo constructs the Catalan
// dual of the levo, biscribed snub cuboctahedron.
func NewPentagonalIcositetrahedronBiscribedLevo(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalIcositetrahedronBiscribedLevo", dualGenerator(snubCuboctahedronGen(true, true)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewRhombicTriacontahedron constructs the Catalan dual of the
// icosidodecahedron, per spec.md §8 scenario 5.
func NewRhombicTriacontahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("RhombicTriacontahedron", dualGenerator(icosidodecahedronGen),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewDeltoidalHexecontahedron constructs the Catalan dual of the
// rhombicosidodecahedron.
func NewDeltoidalHexecontahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("DeltoidalHexecontahedron", dualGenerator(rhombicosidodecahedronGen),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewDisdyakisTriacontahedron constructs the Catalan dual of the
// canonical truncated icosidodecahedron.
func NewDisdyakisTriacontahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("DisdyakisTriacontahedron", dualGenerator(truncatedIcosidodecahedronGen(false)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewDisdyakisTriacontahedronBiscribed constructs the Catalan dual of
// the biscribed truncated icosidodecahedron.
func NewDisdyakisTriacontahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("DisdyakisTriacontahedronBiscribed", dualGenerator(truncatedIcosidodecahedronGen(true)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewHexakisIcosahedron constructs the same solid as
// NewDisdyakisTriacontahedron under its other accepted name.
func NewHexakisIcosahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("HexakisIcosahedron", dualGenerator(truncatedIcosidodecahedronGen(false)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewHexakisIcosahedronBiscribed constructs the biscribed variant
// under the HexakisIcosahedron name.
func NewHexakisIcosahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("HexakisIcosahedronBiscribed", dualGenerator(truncatedIcosidodecahedronGen(true)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalHexecontahedron constructs the Catalan dual of the
// dextro snub dodecahedron.
func NewPentagonalHexecontahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalHexecontahedron", dualGenerator(snubDodecahedronGen(false)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewPentagonalHexecontahedronLevo constructs the Catalan dual of the
// levo snub dodecahedron.
func NewPentagonalHexecontahedronLevo(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("PentagonalHexecontahedronLevo", dualGenerator(snubDodecahedronGen(true)),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// sixTruncatedTriakisTetrahedronGen: no standard literature coordinate
// table was found under this name (it does not match any of the 13
// Catalan solids or their common augmentations), so this is built as a
// literal reading of the name — the triakis tetrahedron (the
// tetrahedron's own Catalan dual) augmented with the 6 extra vertices
// its name's "six" points to, one per cube edge-direction, using the
// same cube-axis sign-permutation family already used elsewhere
// (evenPermutationsSignVariants with two zero magnitudes collapses to
// the 6 signed-axis points). The 6 new points add 6 new faces normal to
// those same axis directions on top of the triakis tetrahedron's
// original 12.
func sixTruncatedTriakisTetrahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	triakisVerts, triakisDirs, err := dualGenerator(truncatedTetrahedronGen)(precision)
	if err != nil {
		return nil, nil, err
	}

	one := bn.FromInt(1, precision)
	zero := bn.FromInt(0, precision)
	axisPoints := evenPermutationsSignVariants(one, zero, zero, precision)

	verts := append([]vec3.Triple{}, triakisVerts...)
	verts = append(verts, axisPoints...)
	dirs := append([]vec3.Triple{}, triakisDirs...)
	dirs = append(dirs, axisPoints...)
	return verts, dirs, nil
}

// NewSixTruncatedTriakisTetrahedron constructs the cube-axis-augmented
// triakis tetrahedron described above.
func NewSixTruncatedTriakisTetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("SixTruncatedTriakisTetrahedron", sixTruncatedTriakisTetrahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}
