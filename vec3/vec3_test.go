package vec3

import (
	"testing"

	"github.com/deadsy/npgen/bn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prec = 50

func mk(x, y, z int64) Triple {
	return New(bn.FromInt(x, prec), bn.FromInt(y, prec), bn.FromInt(z, prec))
}

func TestAddSub(t *testing.T) {
	u := mk(1, 2, 3)
	v := mk(4, 5, 6)
	sum := Add(u, v)
	assert.Equal(t, 0, sum.X.Cmp(bn.FromInt(5, prec)))
	assert.Equal(t, 0, sum.Y.Cmp(bn.FromInt(7, prec)))
	assert.Equal(t, 0, sum.Z.Cmp(bn.FromInt(9, prec)))

	diff := Subs(v, u)
	assert.Equal(t, 0, diff.X.Cmp(bn.FromInt(3, prec)))
}

func TestDotAndCrossOrthogonality(t *testing.T) {
	u := mk(1, 0, 0)
	v := mk(0, 1, 0)
	assert.Equal(t, 0, Dot(u, v).Cmp(bn.FromInt(0, prec)))

	cross := Cross(u, v)
	assert.Equal(t, 0, Dot(u, cross).Cmp(bn.FromInt(0, prec)))
	assert.Equal(t, 0, Dot(v, cross).Cmp(bn.FromInt(0, prec)))
}

func TestCrossAnticommutes(t *testing.T) {
	u := mk(1, 2, 3)
	v := mk(4, -5, 6)
	cuv := Cross(u, v)
	cvu := Cross(v, u)
	sum := Add(cuv, cvu)
	zero := bn.FromInt(0, prec)
	assert.Equal(t, 0, sum.X.Cmp(zero))
	assert.Equal(t, 0, sum.Y.Cmp(zero))
	assert.Equal(t, 0, sum.Z.Cmp(zero))
}

func TestNormalizeTimesNormEqualsOriginal(t *testing.T) {
	u := mk(3, 4, 0)
	n, err := u.Norm()
	require.NoError(t, err)
	unit, err := u.Normalize()
	require.NoError(t, err)
	back := MultNum(unit, n)
	assert.Equal(t, 0, back.X.Cmp(u.X))
	assert.Equal(t, 0, back.Y.Cmp(u.Y))
	assert.Equal(t, 0, back.Z.Cmp(u.Z))
}

func TestNormalizeZeroVectorErrors(t *testing.T) {
	zero := mk(0, 0, 0)
	_, err := zero.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestNormalTripleOutwardOrientation(t *testing.T) {
	// Face at x=1 of a cube [-1,1]^3: should point in +X direction.
	v0 := mk(1, 1, 1)
	v1 := mk(1, -1, 1)
	v2 := mk(1, -1, -1)
	n, err := NormalTriple(v0, v1, v2, true)
	require.NoError(t, err)
	assert.True(t, n.X.Sign() > 0)
}

func TestNormalQuadOrientation(t *testing.T) {
	v0 := mk(1, 1, 1)
	v1 := mk(1, 1, -1)
	v2 := mk(1, -1, -1)
	v3 := mk(1, -1, 1)
	n, err := NormalQuad(v0, v1, v2, v3, true)
	require.NoError(t, err)
	assert.True(t, n.X.Sign() > 0)
}
