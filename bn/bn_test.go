package bn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubMulPropagatePrecision(t *testing.T) {
	a := MustFromString("1.5", 50)
	b := MustFromString("2.25", 10)

	sum := a.Add(b)
	assert.Equal(t, 50, sum.Precision())

	diff := b.Sub(a)
	assert.Equal(t, 50, diff.Precision())

	prod := a.Mul(b)
	assert.Equal(t, 50, prod.Precision())
}

func TestQuoByZeroErrors(t *testing.T) {
	a := FromInt(1, 20)
	zero := FromInt(0, 20)
	_, err := a.Quo(zero)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestSqrtNegativeErrors(t *testing.T) {
	a := FromInt(-4, 20)
	_, err := a.Sqrt()
	assert.ErrorIs(t, err, ErrNegativeRoot)
}

func TestSqrtKnownValue(t *testing.T) {
	a := FromInt(4, 50)
	r, err := a.Sqrt()
	require.NoError(t, err)
	two := FromInt(2, 50)
	assert.Equal(t, 0, r.Cmp(two))
}

func TestCbrtKnownValues(t *testing.T) {
	a := FromInt(27, 50)
	r := a.Cbrt()
	three := FromInt(3, 50)
	diff := r.Sub(three).Abs()
	tol := MustFromString("0.0000000000000000000000000000000000000001", 50)
	assert.True(t, diff.Cmp(tol) <= 0)

	neg := FromInt(-8, 50)
	rn := neg.Cbrt()
	negTwo := FromInt(-2, 50)
	assert.True(t, rn.Sub(negTwo).Abs().Cmp(tol) <= 0)
}

func TestPowInt(t *testing.T) {
	a := FromInt(2, 50)
	r := a.PowInt(10)
	assert.Equal(t, 0, r.Cmp(FromInt(1024, 50)))

	rInv := a.PowInt(-1)
	half := MustFromString("0.5", 50)
	assert.Equal(t, 0, rInv.Cmp(half))
}

func TestFloorAndMod1(t *testing.T) {
	a := MustFromString("3.75", 50)
	assert.Equal(t, 0, a.Floor().Cmp(FromInt(3, 50)))
	assert.Equal(t, 0, a.Mod1().Cmp(MustFromString("0.75", 50)))

	neg := MustFromString("-3.75", 50)
	assert.Equal(t, 0, neg.Floor().Cmp(FromInt(-4, 50)))
	assert.Equal(t, 0, neg.Mod1().Cmp(MustFromString("0.25", 50)))
}

func TestExpAndLnInverses(t *testing.T) {
	x := MustFromString("1.23456", 40)
	lnX, err := x.Ln()
	require.NoError(t, err)
	back := lnX.Exp()
	diff := back.Sub(x).Abs()
	tol := MustFromString("0.0000000000000000000000000001", 40)
	assert.True(t, diff.Cmp(tol) <= 0)
}

func TestPiApproximatelyCorrect(t *testing.T) {
	p := Pi(30)
	known := MustFromString("3.14159265358979323846264338327", 30)
	diff := p.Sub(known).Abs()
	tol := MustFromString("0.0000000000000000000001", 30)
	assert.True(t, diff.Cmp(tol) <= 0)
}

func TestCmpAndSign(t *testing.T) {
	a := FromInt(5, 20)
	b := FromInt(7, 20)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(FromInt(5, 20)))
	assert.Equal(t, -1, FromInt(-1, 20).Sign())
}

func TestStringNoScientificNotation(t *testing.T) {
	a := MustFromString("0.000123", 30)
	s := a.String()
	assert.NotContains(t, s, "e")
	assert.NotContains(t, s, "E")
}
