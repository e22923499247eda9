// Package vec3 implements vector algebra over ordered triples of
// arbitrary-precision decimals, generalizing the teacher's (referenced
// but not vendored) vec/v3.Vec float64 triple to bn.Num per spec.md §4.2.
package vec3

import (
	"fmt"

	"github.com/deadsy/npgen/bn"
)

// Triple is an ordered 3-tuple (X, Y, Z) of bn.Num. A Triple used as a
// coordinate is expected to carry the same precision in every component.
type Triple struct {
	X, Y, Z bn.Num
}

// New builds a Triple from three Nums.
func New(x, y, z bn.Num) Triple {
	return Triple{X: x, Y: y, Z: z}
}

// Precision returns the precision of the X component, which by
// invariant matches Y and Z.
func (t Triple) Precision() int { return t.X.Precision() }

// Add returns u+v componentwise.
func Add(u, v Triple) Triple {
	return Triple{u.X.Add(v.X), u.Y.Add(v.Y), u.Z.Add(v.Z)}
}

// Subs returns u-v componentwise.
func Subs(u, v Triple) Triple {
	return Triple{u.X.Sub(v.X), u.Y.Sub(v.Y), u.Z.Sub(v.Z)}
}

// Mult returns u scaled by the decimal string s, parsed at u's precision.
func Mult(u Triple, s string) (Triple, error) {
	scalar, err := bn.FromString(s, u.Precision())
	if err != nil {
		return Triple{}, err
	}
	return Triple{u.X.Mul(scalar), u.Y.Mul(scalar), u.Z.Mul(scalar)}, nil
}

// MultNum returns u scaled by the Num s directly.
func MultNum(u Triple, s bn.Num) Triple {
	return Triple{u.X.Mul(s), u.Y.Mul(s), u.Z.Mul(s)}
}

// Div returns u divided by the decimal string s, parsed at u's precision.
func Div(u Triple, s string) (Triple, error) {
	scalar, err := bn.FromString(s, u.Precision())
	if err != nil {
		return Triple{}, err
	}
	x, err := u.X.Quo(scalar)
	if err != nil {
		return Triple{}, err
	}
	y, err := u.Y.Quo(scalar)
	if err != nil {
		return Triple{}, err
	}
	z, err := u.Z.Quo(scalar)
	if err != nil {
		return Triple{}, err
	}
	return Triple{x, y, z}, nil
}

// DivNum returns u divided by the Num s directly.
func DivNum(u Triple, s bn.Num) (Triple, error) {
	x, err := u.X.Quo(s)
	if err != nil {
		return Triple{}, err
	}
	y, err := u.Y.Quo(s)
	if err != nil {
		return Triple{}, err
	}
	z, err := u.Z.Quo(s)
	if err != nil {
		return Triple{}, err
	}
	return Triple{x, y, z}, nil
}

// Dot returns u . v.
func Dot(u, v Triple) bn.Num {
	return u.X.Mul(v.X).Add(u.Y.Mul(v.Y)).Add(u.Z.Mul(v.Z))
}

// Cross returns u x v.
func Cross(u, v Triple) Triple {
	return Triple{
		X: u.Y.Mul(v.Z).Sub(u.Z.Mul(v.Y)),
		Y: u.Z.Mul(v.X).Sub(u.X.Mul(v.Z)),
		Z: u.X.Mul(v.Y).Sub(u.Y.Mul(v.X)),
	}
}

// ErrZeroVector is returned by Normalize on a zero-length vector.
var ErrZeroVector = fmt.Errorf("vec3: cannot normalize a zero vector")

// Norm returns sqrt(u . u).
func (t Triple) Norm() (bn.Num, error) {
	return Dot(t, t).Sqrt()
}

// Normalize returns u / norm(u), or ErrZeroVector if u is the zero
// vector.
func (t Triple) Normalize() (Triple, error) {
	n, err := t.Norm()
	if err != nil {
		return Triple{}, err
	}
	if n.Sign() == 0 {
		return Triple{}, ErrZeroVector
	}
	return DivNum(t, n)
}

// centroid returns the arithmetic mean of the given vertices, at the
// first vertex's precision.
func centroid(vs ...Triple) (Triple, error) {
	sum := vs[0]
	for _, v := range vs[1:] {
		sum = Add(sum, v)
	}
	n := bn.FromInt(int64(len(vs)), vs[0].Precision())
	return DivNum(sum, n)
}

// orient negates n if, with out == true, n doesn't point away from the
// origin-centered polyhedron's interior (centroid . n must be positive).
func orient(n, c Triple, out bool) (Triple, error) {
	if !out {
		return n, nil
	}
	d := Dot(c, n)
	if d.Sign() < 0 {
		return Triple{X: n.X.Neg(), Y: n.Y.Neg(), Z: n.Z.Neg()}, nil
	}
	return n, nil
}

// NormalTriple computes the outward unit normal of the triangle
// (v0, v1, v2). If out is true, the normal is flipped so that it points
// away from the origin (the centroid of the face dotted with the normal
// is positive).
func NormalTriple(v0, v1, v2 Triple, out bool) (Triple, error) {
	n, err := Cross(Subs(v1, v0), Subs(v2, v0)).Normalize()
	if err != nil {
		return Triple{}, err
	}
	c, err := centroid(v0, v1, v2)
	if err != nil {
		return Triple{}, err
	}
	return orient(n, c, out)
}

// NormalQuad computes the outward unit normal of the quadrilateral
// (v0, v1, v2, v3).
func NormalQuad(v0, v1, v2, v3 Triple, out bool) (Triple, error) {
	n, err := Cross(Subs(v1, v0), Subs(v2, v0)).Normalize()
	if err != nil {
		return Triple{}, err
	}
	c, err := centroid(v0, v1, v2, v3)
	if err != nil {
		return Triple{}, err
	}
	return orient(n, c, out)
}

// NormalPent computes the outward unit normal of the pentagon
// (v0..v4).
func NormalPent(v0, v1, v2, v3, v4 Triple, out bool) (Triple, error) {
	n, err := Cross(Subs(v1, v0), Subs(v2, v0)).Normalize()
	if err != nil {
		return Triple{}, err
	}
	c, err := centroid(v0, v1, v2, v3, v4)
	if err != nil {
		return Triple{}, err
	}
	return orient(n, c, out)
}

// NormalHex computes the outward unit normal of the hexagon (v0..v5).
func NormalHex(v0, v1, v2, v3, v4, v5 Triple, out bool) (Triple, error) {
	n, err := Cross(Subs(v1, v0), Subs(v2, v0)).Normalize()
	if err != nil {
		return Triple{}, err
	}
	c, err := centroid(v0, v1, v2, v3, v4, v5)
	if err != nil {
		return Triple{}, err
	}
	return orient(n, c, out)
}

// NormalPoly computes the outward unit normal of an arbitrary (>=3)
// vertex planar face, generalizing NormalTriple/Quad/Pent/Hex for the
// face-grouping routine in package shape, which produces faces of
// varying vertex count.
func NormalPoly(vs []Triple, out bool) (Triple, error) {
	if len(vs) < 3 {
		return Triple{}, fmt.Errorf("vec3: face needs at least 3 vertices, got %d", len(vs))
	}
	n, err := Cross(Subs(vs[1], vs[0]), Subs(vs[2], vs[0])).Normalize()
	if err != nil {
		return Triple{}, err
	}
	c, err := centroid(vs...)
	if err != nil {
		return Triple{}, err
	}
	return orient(n, c, out)
}
