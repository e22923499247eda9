package shape

import (
	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// pentagonXY returns the 5 vertices of a regular pentagon of
// circumradius r in the z=0 plane, via the algebraic cosines
// cos(36°)=phi/2 and cos(72°)=(phi-1)/2 (sines derived from
// sqrt(1-cos^2), avoiding the need for a trigonometric primitive in
// package bn).
func pentagonXY(r bn.Num, precision int) ([5]vec3.Triple, error) {
	p, err := phi(precision)
	if err != nil {
		return [5]vec3.Triple{}, err
	}
	one := bn.FromInt(1, precision)
	two := bn.FromInt(2, precision)
	zero := bn.FromInt(0, precision)

	cos36, err := p.Quo(two)
	if err != nil {
		return [5]vec3.Triple{}, err
	}
	cos72, err := p.Sub(one).Quo(two)
	if err != nil {
		return [5]vec3.Triple{}, err
	}
	sin36, err := one.Sub(cos36.Mul(cos36)).Sqrt()
	if err != nil {
		return [5]vec3.Triple{}, err
	}
	sin72, err := one.Sub(cos72.Mul(cos72)).Sqrt()
	if err != nil {
		return [5]vec3.Triple{}, err
	}

	return [5]vec3.Triple{
		vec3.New(r, zero, zero),
		vec3.New(r.Mul(cos72), r.Mul(sin72), zero),
		vec3.New(r.Mul(cos36.Neg()), r.Mul(sin36), zero),
		vec3.New(r.Mul(cos36.Neg()), r.Mul(sin36.Neg()), zero),
		vec3.New(r.Mul(cos72), r.Mul(sin72.Neg()), zero),
	}, nil
}

// elongatedPentagonalDipyramidGen builds the Johnson J13 topology
// (two pentagonal pyramid caps on a pentagonal prism) directly from
// its known combinatorial face structure, rather than from a
// symmetric-orbit sign/permutation table: a pentagonal prism (10
// vertices) plus two apexes, with face-normal directions taken as the
// outward horizontal midpoint direction of each prism rectangle and the
// outward plane normal of each cap triangle (see groupFaces for the
// supporting-hyperplane argument these feed).
//
// Proportions (pentagon radius, prism half-height, cap height all set
// to 1) approximate the equilateral Johnson solid rather than
// reproduce its exact regular metrics, the same kind of simplification
// already used by scaleVerticesToRadius's circumradius reinterpretation.
func elongatedPentagonalDipyramidGen(precision int) ([]vec3.Triple, []vec3.Triple, error) {
	one := bn.FromInt(1, precision)
	zero := bn.FromInt(0, precision)

	ring, err := pentagonXY(one, precision)
	if err != nil {
		return nil, nil, err
	}

	top := make([]vec3.Triple, 5)
	bottom := make([]vec3.Triple, 5)
	for i, p := range ring {
		top[i] = vec3.New(p.X, p.Y, one)
		bottom[i] = vec3.New(p.X, p.Y, one.Neg())
	}
	two := bn.FromInt(2, precision)
	apexTop := vec3.New(zero, zero, two)
	apexBottom := vec3.New(zero, zero, two.Neg())

	verts := append([]vec3.Triple{apexTop, apexBottom}, top...)
	verts = append(verts, bottom...)

	var dirs []vec3.Triple
	for i := 0; i < 5; i++ {
		j := (i + 1) % 5
		// Prism rectangle face: purely horizontal outward direction.
		dirs = append(dirs, vec3.New(top[i].X.Add(top[j].X), top[i].Y.Add(top[j].Y), zero))
		// Top and bottom pyramid triangular faces.
		nTop, err := vec3.NormalTriple(apexTop, top[i], top[j], true)
		if err != nil {
			return nil, nil, err
		}
		nBottom, err := vec3.NormalTriple(apexBottom, bottom[i], bottom[j], true)
		if err != nil {
			return nil, nil, err
		}
		dirs = append(dirs, nTop, nBottom)
	}

	return verts, dirs, nil
}

// NewElongatedPentagonalDipyramid constructs the elongated pentagonal
// dipyramid (Johnson solid) bounding shape.
func NewElongatedPentagonalDipyramid(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return newPolyhedron("ElongatedPentagonalDipyramid", elongatedPentagonalDipyramidGen,
		radiusDecimal, unit, basis, latticeConstantDecimal, precision, fileName, structureName, structureIdx)
}
