package atom

import (
	"testing"

	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prec = 60

func zeroFrac() vec3.Triple {
	z := bn.FromInt(0, prec)
	return vec3.New(z, z, z)
}

func TestNewValidatesElementSymbol(t *testing.T) {
	r := bn.MustFromString("1.5", prec)
	_, err := New("au", r, 0, zeroFrac(), prec)
	assert.Error(t, err)

	_, err = New("Au", r, 0, zeroFrac(), prec)
	assert.NoError(t, err)

	_, err = New("AUX", r, 0, zeroFrac(), prec)
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveRadius(t *testing.T) {
	_, err := New("Au", bn.FromInt(0, prec), 0, zeroFrac(), prec)
	assert.Error(t, err)
	_, err = New("Au", bn.FromInt(-1, prec), 0, zeroFrac(), prec)
	assert.Error(t, err)
}

func TestVolumeFormula(t *testing.T) {
	r := bn.FromInt(2, prec)
	a, err := New("Au", r, 0, zeroFrac(), prec)
	require.NoError(t, err)

	four := bn.FromInt(4, prec)
	three := bn.FromInt(3, prec)
	pi := bn.Pi(prec)
	expected := four.MustQuo(three).Mul(pi).Mul(r.PowInt(3))

	assert.Equal(t, 0, a.Volume().Cmp(expected))
}

func TestFormalChargeFormatting(t *testing.T) {
	r := bn.FromInt(1, prec)
	a, _ := New("Au", r, 0, zeroFrac(), prec)
	assert.Equal(t, "0", a.FormalCharge())

	b, _ := New("Au", r, 3, zeroFrac(), prec)
	assert.Equal(t, "+3", b.FormalCharge())

	c, _ := New("Au", r, -2, zeroFrac(), prec)
	assert.Equal(t, "-2", c.FormalCharge())
}

func TestLatticePointSetsOnce(t *testing.T) {
	r := bn.FromInt(1, prec)
	a, _ := New("Au", r, 0, zeroFrac(), prec)
	assert.False(t, a.Placed())

	pos := zeroFrac()
	a.LatticePoint(7, pos, pos)
	assert.True(t, a.Placed())
	assert.Equal(t, 7, a.Index())

	assert.Panics(t, func() {
		a.LatticePoint(8, pos, pos)
	})
}

func TestCloneResetsPlacement(t *testing.T) {
	r := bn.FromInt(1, prec)
	a, _ := New("Au", r, 0, zeroFrac(), prec)
	pos := zeroFrac()
	a.LatticePoint(1, pos, pos)

	clone := a.Clone()
	assert.False(t, clone.Placed())
	assert.True(t, a.Placed())
}

func TestLessOrdersByRadius(t *testing.T) {
	small, _ := New("Au", bn.FromInt(1, prec), 0, zeroFrac(), prec)
	big, _ := New("Au", bn.FromInt(5, prec), 0, zeroFrac(), prec)
	assert.True(t, Less(small, big))
	assert.False(t, Less(big, small))
}
