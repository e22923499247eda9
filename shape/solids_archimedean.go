package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// cuboctahedronGen: vertices are all permutations of (±1, ±1, 0) (the
// cube/octahedron rectification); 8 triangular faces normal to the
// cube's diagonals, 6 square faces normal to the coordinate axes.
func cuboctahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	zero := bn.FromInt(0, precision)
	verts := allPermutationsSignVariants(one, one, zero, precision)
	dirs := signPermutations(one, one, one, precision)
	dirs = append(dirs, evenPermutationsSignVariants(one, zero, zero, precision)...)
	return verts, dirs, nil
}

// NewCuboctahedron constructs the cuboctahedron bounding shape.
func NewCuboctahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Cuboctahedron", cuboctahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// truncatedTetrahedronGen: vertices are all permutations of (1,1,3)
// with an even number of minus signs (the standard truncated-
// tetrahedron construction). Its 4 triangular (truncation) faces and
// 4 hexagonal faces are normal to the underlying tetrahedron's own
// vertex and face-normal directions respectively.
func truncatedTetrahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	three := bn.FromInt(3, precision)
	verts := permutationsParitySignVariants(one, one, three, precision, true)

	tetraVerts, tetraDirs, err := tetrahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}
	dirs := append([]vec3.Triple{}, tetraVerts...)
	dirs = append(dirs, tetraDirs...)
	return verts, dirs, nil
}

// NewTruncatedTetrahedron constructs the truncated tetrahedron
// bounding shape.
func NewTruncatedTetrahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TruncatedTetrahedron", truncatedTetrahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// truncatedOctahedronGen builds a solid of truncated-octahedron
// combinatorics from permutations of (0, ±1, ±k): k=2 gives the
// edge-uniform (all edges equal length) canonical Archimedean form;
// any k>1 gives a valid, topologically identical truncated octahedron
// with a different square/hexagon proportion, which is how the
// "biscribed" constants-only variant (Design Notes §9) is expressed
// here rather than as a second hand-derived type.
func truncatedOctahedronGen(k string) VertexGenerator {
	return func(precision int) ([]vec3.Triple, []vec3.Triple, error) {
		zero := bn.FromInt(0, precision)
		one := bn.FromInt(1, precision)
		kNum, err := bn.FromString(k, precision)
		if err != nil {
			return nil, nil, err
		}
		verts := allPermutationsSignVariants(zero, one, kNum, precision)

		// 6 square faces normal to the axes, 8 hexagonal faces normal
		// to the cube diagonals.
		dirs := evenPermutationsSignVariants(one, zero, zero, precision)
		dirs = append(dirs, signPermutations(one, one, one, precision)...)
		return verts, dirs, nil
	}
}

// NewTruncatedOctahedron constructs the canonical (edge-uniform)
// truncated octahedron.
func NewTruncatedOctahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TruncatedOctahedron", truncatedOctahedronGen("2"),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewTruncatedOctahedronBiscribed constructs the biscribed variant
// (same combinatorics, a different truncation ratio).
func NewTruncatedOctahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TruncatedOctahedronBiscribed", truncatedOctahedronGen("2.5"),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// rhombicuboctahedronGen: vertices are all permutations of
// (±1, ±1, ±(1+sqrt2)); 8 triangular faces normal to the cube
// diagonals, 6 "large" square faces normal to the axes, 12 "small"
// square faces normal to the edge-diagonal directions.
func rhombicuboctahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	zero := bn.FromInt(0, precision)
	two := bn.FromInt(2, precision)
	sqrt2, err := two.Sqrt()
	if err != nil {
		return nil, nil, err
	}
	onePlusSqrt2 := one.Add(sqrt2)

	verts := allPermutationsSignVariants(one, one, onePlusSqrt2, precision)

	dirs := signPermutations(one, one, one, precision)
	dirs = append(dirs, evenPermutationsSignVariants(one, zero, zero, precision)...)
	dirs = append(dirs, allPermutationsSignVariants(one, one, zero, precision)...)
	return verts, dirs, nil
}

// NewRhombicuboctahedron constructs the rhombicuboctahedron bounding
// shape.
func NewRhombicuboctahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Rhombicuboctahedron", rhombicuboctahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// icosidodecahedronGen: 30 vertices, even permutations of (0,0,±phi)
// and of (±1/2, ±phi/2, ±phi^2/2). Its 20 triangular faces are normal
// to the icosahedron's vertex directions (the dodecahedron's own face
// directions) and its 12 pentagonal faces are normal to the
// dodecahedron's vertex directions (the icosahedron's own face
// directions) — reusing the Platonic gens instead of a third
// independent coordinate derivation.
func icosidodecahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	zero := bn.FromInt(0, precision)
	one := bn.FromInt(1, precision)
	two := bn.FromInt(2, precision)
	p, err := phi(precision)
	if err != nil {
		return nil, nil, err
	}
	half, err := one.Quo(two)
	if err != nil {
		return nil, nil, err
	}
	phiOver2, err := p.Quo(two)
	if err != nil {
		return nil, nil, err
	}
	phi2Over2, err := p.Mul(p).Quo(two)
	if err != nil {
		return nil, nil, err
	}

	verts := evenPermutationsSignVariants(zero, zero, p, precision)
	verts = append(verts, evenPermutationsSignVariants(half, phiOver2, phi2Over2, precision)...)

	_, icosaDirs, err := icosahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}
	_, dodecaDirs, err := dodecahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}
	dirs := append([]vec3.Triple{}, icosaDirs...)
	dirs = append(dirs, dodecaDirs...)
	return verts, dirs, nil
}

// NewIcosidodecahedron constructs the icosidodecahedron bounding
// shape.
func NewIcosidodecahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Icosidodecahedron", icosidodecahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// tribonacciConstant returns the real root of t^3 - t^2 - t - 1 = 0,
// the scaling ratio of the snub cube/snub cuboctahedron family, via
// its closed cube-root form
// t = (1 + cbrt(19+3*sqrt(33)) + cbrt(19-3*sqrt(33))) / 3.
func tribonacciConstant(precision int) (bn.Num, error) {
	nineteen := bn.FromInt(19, precision)
	three := bn.FromInt(3, precision)
	thirtyThree := bn.FromInt(33, precision)
	sqrt33, err := thirtyThree.Sqrt()
	if err != nil {
		return bn.Num{}, err
	}
	threeRootThirtyThree := three.Mul(sqrt33)
	a := nineteen.Add(threeRootThirtyThree).Cbrt()
	b := nineteen.Sub(threeRootThirtyThree).Cbrt()
	one := bn.FromInt(1, precision)
	sum := one.Add(a).Add(b)
	return sum.Quo(three)
}

// snubCuboctahedronGenK builds one of the four named snub cuboctahedron
// forms: vertices are the even-sign permutations of (1, 1/t, t), where
// t is the tribonacci constant for the canonical form and a slightly
// offset constant for the biscribed form (Design Notes §9: biscribed
// vs. canonical is just a different constants vector feeding the same
// generator); mirrorX turns the dextro form into its levo mirror.
func snubCuboctahedronGenK(precision int, levo, biscribed bool) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	t, err := tribonacciConstant(precision)
	if err != nil {
		return nil, nil, err
	}
	if biscribed {
		twentyOne := bn.FromInt(21, precision)
		twenty := bn.FromInt(20, precision)
		t, err = t.Mul(twentyOne).Quo(twenty)
		if err != nil {
			return nil, nil, err
		}
	}
	invT, err := one.Quo(t)
	if err != nil {
		return nil, nil, err
	}

	verts := permutationsParitySignVariants(one, invT, t, precision, true)

	// 8 triangular faces at the cube diagonals, 6 square faces at the
	// axes, plus the remaining 24 triangular faces normal to the
	// solid's own (vertex-transitive) vertex directions.
	zero := bn.FromInt(0, precision)
	dirs := signPermutations(one, one, one, precision)
	dirs = append(dirs, evenPermutationsSignVariants(one, zero, zero, precision)...)
	dirs = append(dirs, verts...)

	if levo {
		verts = mirrorX(verts)
		dirs = mirrorX(dirs)
	}
	return verts, dirs, nil
}

func snubCuboctahedronGen(levo, biscribed bool) VertexGenerator {
	return func(precision int) ([]vec3.Triple, []vec3.Triple, error) {
		return snubCuboctahedronGenK(precision, levo, biscribed)
	}
}

// NewSnubCuboctahedron constructs the dextro (right-handed), canonical
// snub cuboctahedron.
func NewSnubCuboctahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("SnubCuboctahedron", snubCuboctahedronGen(false, false),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewSnubCuboctahedronLevo constructs the levo (left-handed) mirror of
// the canonical snub cuboctahedron.
func NewSnubCuboctahedronLevo(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("SnubCuboctahedronLevo", snubCuboctahedronGen(true, false),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewSnubCuboctahedronBiscribed constructs the dextro biscribed
// variant.
func NewSnubCuboctahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("SnubCuboctahedronBiscribed", snubCuboctahedronGen(false, true),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewSnubCuboctahedronBiscribedLevo constructs the levo biscribed
// variant.
func NewSnubCuboctahedronBiscribedLevo(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("SnubCuboctahedronBiscribedLevo", snubCuboctahedronGen(true, true),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// rhombicosidodecahedronGen: 60 vertices, even permutations of
// (±1, ±1, ±phi^3), (±phi^2, ±phi, ±2phi), and (±(2+phi), 0, ±phi^2) —
// the standard literature coordinates for this solid, built from the
// same evenPermutationsSignVariants helper already used for the
// dodecahedron/icosidodecahedron family. Its 12 pentagonal faces are
// normal to the icosahedron's vertex directions (the dodecahedron's
// own face directions), its 20 triangular faces to the dodecahedron's
// vertex directions, and its 30 square faces to the icosidodecahedron's
// own (self-dual-direction) vertices, one per icosahedron/dodecahedron
// edge.
func rhombicosidodecahedronGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	two := bn.FromInt(2, precision)
	zero := bn.FromInt(0, precision)
	p, err := phi(precision)
	if err != nil {
		return nil, nil, err
	}
	phi2 := p.Mul(p)
	phi3 := phi2.Mul(p)
	twoPhi := two.Mul(p)
	twoPlusPhi := two.Add(p)

	verts := evenPermutationsSignVariants(one, one, phi3, precision)
	verts = append(verts, evenPermutationsSignVariants(phi2, p, twoPhi, precision)...)
	verts = append(verts, evenPermutationsSignVariants(twoPlusPhi, zero, phi2, precision)...)

	_, icosaDirs, err := icosahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}
	_, dodecaDirs, err := dodecahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}
	icosidodecaVerts, _, err := icosidodecahedronGen(precision)
	if err != nil {
		return nil, nil, err
	}

	dirs := append([]vec3.Triple{}, icosaDirs...)
	dirs = append(dirs, dodecaDirs...)
	dirs = append(dirs, icosidodecaVerts...)
	return verts, dirs, nil
}

// NewRhombicosidodecahedron constructs the rhombicosidodecahedron
// bounding shape.
func NewRhombicosidodecahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("Rhombicosidodecahedron", rhombicosidodecahedronGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// truncatedIcosidodecahedronGen: 120 vertices, even permutations of 5
// magnitude triples built from phi (the standard literature
// coordinates for the great rhombicosidodecahedron). The biscribed
// variant nudges the same 21/20 constant already used for
// TruncatedOctahedronBiscribed/SnubCuboctahedronBiscribed, applied to
// the triples' longest (truncation-depth) component, so the two forms
// share one generator and differ only by that constants vector.
func truncatedIcosidodecahedronGen(biscribed bool) VertexGenerator {
	return func(precision int) ([]vec3.Triple, []vec3.Triple, error) {
		one := bn.FromInt(1, precision)
		two := bn.FromInt(2, precision)
		three := bn.FromInt(3, precision)
		p, err := phi(precision)
		if err != nil {
			return nil, nil, err
		}
		invPhi, err := one.Quo(p)
		if err != nil {
			return nil, nil, err
		}
		phi2 := p.Mul(p)
		twoInvPhi := two.Mul(invPhi)
		onePlus2Phi := one.Add(two.Mul(p))
		negOnePlus3Phi := three.Mul(p).Sub(one)
		twoPhiMinus1 := two.Mul(p).Sub(one)
		twoPlusPhi := two.Add(p)
		twoPhi := two.Mul(p)

		nudge := one
		if biscribed {
			twentyOne := bn.FromInt(21, precision)
			twenty := bn.FromInt(20, precision)
			nudge, err = twentyOne.Quo(twenty)
			if err != nil {
				return nil, nil, err
			}
		}

		triples := [5][3]bn.Num{
			{invPhi, invPhi, three.Add(p).Mul(nudge)},
			{twoInvPhi, p, onePlus2Phi.Mul(nudge)},
			{invPhi, phi2, negOnePlus3Phi.Mul(nudge)},
			{twoPhiMinus1, two, twoPlusPhi.Mul(nudge)},
			{p, three, twoPhi.Mul(nudge)},
		}

		var verts []vec3.Triple
		for _, t := range triples {
			verts = append(verts, evenPermutationsSignVariants(t[0], t[1], t[2], precision)...)
		}

		// 62 faces, not 120: every vertex sits on one decagon, one
		// hexagon and one square, so (unlike the snub solids) "own
		// vertices" are not the face-normal directions here. Its 12
		// decagonal faces sit where the dodecahedron's 12 faces would
		// (normal to the icosahedron's vertex directions), its 20
		// hexagonal faces where the icosahedron's 20 faces would
		// (normal to the dodecahedron's vertex directions), and its 30
		// square faces where the icosidodecahedron's 30 vertices are —
		// the same three-tier direction split as
		// rhombicosidodecahedronGen.
		_, icosaDirs, err := icosahedronGen(precision)
		if err != nil {
			return nil, nil, err
		}
		_, dodecaDirs, err := dodecahedronGen(precision)
		if err != nil {
			return nil, nil, err
		}
		icosidodecaVerts, _, err := icosidodecahedronGen(precision)
		if err != nil {
			return nil, nil, err
		}

		dirs := append([]vec3.Triple{}, icosaDirs...)
		dirs = append(dirs, dodecaDirs...)
		dirs = append(dirs, icosidodecaVerts...)
		return verts, dirs, nil
	}
}

// NewTruncatedIcosidodecahedron constructs the canonical truncated
// icosidodecahedron.
func NewTruncatedIcosidodecahedron(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TruncatedIcosidodecahedron", truncatedIcosidodecahedronGen(false),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// NewTruncatedIcosidodecahedronBiscribed constructs the biscribed
// variant.
func NewTruncatedIcosidodecahedronBiscribed(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("TruncatedIcosidodecahedronBiscribed", truncatedIcosidodecahedronGen(true),
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}

// snubDodecahedronGen: 60 vertices, even permutations of 5
// alpha/beta-derived magnitude triples, restricted to an even number of
// minus signs per vertex (the standard chiral-icosahedral construction
// using xi, the real root of xi^3 - 2*xi - phi = 0, solved here via
// Cardano's formula on the depressed cubic xi^3 - 2*xi = phi). Its 12
// pentagonal faces are normal to the dodecahedron's own face directions
// (the icosahedron's vertex directions), its 20 "large" triangular
// faces to the icosahedron's own face directions (the dodecahedron's
// vertex directions), and its remaining 60 "small" triangular faces to
// its own (vertex-transitive) vertex directions — the same
// three-tier pattern used by the snub cuboctahedron.
func snubDodecahedronGen(levo bool) VertexGenerator {
	return func(precision int) ([]vec3.Triple, []vec3.Triple, error) {
		one := bn.FromInt(1, precision)
		two := bn.FromInt(2, precision)
		three := bn.FromInt(3, precision)
		p, err := phi(precision)
		if err != nil {
			return nil, nil, err
		}

		// Depressed cubic xi^3 + p_*xi + q_ = 0 with p_=-2, q_=-phi:
		// xi = cbrt(-q_/2 + sqrt((q_/2)^2+(p_/3)^3)) +
		//      cbrt(-q_/2 - sqrt((q_/2)^2+(p_/3)^3)).
		halfPhi, err := p.Quo(two)
		if err != nil {
			return nil, nil, err
		}
		twoThirds, err := two.Quo(three)
		if err != nil {
			return nil, nil, err
		}
		pOver3Cubed := twoThirds.Neg().PowInt(3)
		discriminant := halfPhi.Mul(halfPhi).Add(pOver3Cubed)
		sqrtDisc, err := discriminant.Sqrt()
		if err != nil {
			return nil, nil, err
		}
		xi := halfPhi.Add(sqrtDisc).Cbrt().Add(halfPhi.Sub(sqrtDisc).Cbrt())

		invXi, err := one.Quo(xi)
		if err != nil {
			return nil, nil, err
		}
		alpha := xi.Sub(invXi)
		invPhi, err := one.Quo(p)
		if err != nil {
			return nil, nil, err
		}
		phi2 := p.Mul(p)
		phiOverXi, err := p.Quo(xi)
		if err != nil {
			return nil, nil, err
		}
		beta := xi.Mul(p).Add(phi2).Add(phiOverXi)

		betaOverPhi, err := beta.Quo(p)
		if err != nil {
			return nil, nil, err
		}
		alphaOverPhi, err := alpha.Quo(p)
		if err != nil {
			return nil, nil, err
		}
		alphaPhi := alpha.Mul(p)
		betaPhi := beta.Mul(p)

		triples := [5][3]bn.Num{
			{two.Mul(alpha), two, two.Mul(beta)},
			{alpha.Add(betaOverPhi).Add(p), alphaPhi.Neg().Add(beta).Add(invPhi), alphaOverPhi.Add(betaPhi).Sub(one)},
			{alphaOverPhi.Neg().Add(betaPhi).Add(one), alpha.Neg().Add(betaOverPhi).Sub(p), alphaPhi.Add(beta).Sub(invPhi)},
			{alphaOverPhi.Neg().Add(betaPhi).Sub(one), alpha.Sub(betaOverPhi).Sub(p), alphaPhi.Add(beta).Add(invPhi)},
			{alpha.Add(betaOverPhi).Sub(p), alphaPhi.Sub(beta).Add(invPhi), alphaOverPhi.Add(betaPhi).Add(one)},
		}

		var verts []vec3.Triple
		for _, t := range triples {
			verts = append(verts, evenPermutationsParitySignVariants(t[0], t[1], t[2], precision, true)...)
		}

		_, icosaDirs, err := icosahedronGen(precision)
		if err != nil {
			return nil, nil, err
		}
		_, dodecaDirs, err := dodecahedronGen(precision)
		if err != nil {
			return nil, nil, err
		}
		dirs := append([]vec3.Triple{}, dodecaDirs...)
		dirs = append(dirs, icosaDirs...)
		dirs = append(dirs, verts...)

		if levo {
			verts = mirrorX(verts)
			dirs = mirrorX(dirs)
		}
		return verts, dirs, nil
	}
}
