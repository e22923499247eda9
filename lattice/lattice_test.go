package lattice

import (
	"testing"

	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prec = 60

func auBasis(t *testing.T) [4]*atom.Atom {
	zero := bn.FromInt(0, prec)
	half := bn.MustFromString("0.5", prec)

	positions := [4]vec3.Triple{
		vec3.New(zero, zero, zero),
		vec3.New(half, half, zero),
		vec3.New(half, zero, half),
		vec3.New(zero, half, half),
	}

	r := bn.MustFromString("1.44", prec)
	var basis [4]*atom.Atom
	for i, p := range positions {
		a, err := atom.New("Au", r, 0, p, prec)
		require.NoError(t, err)
		basis[i] = a
	}
	return basis
}

func TestNewFCCRejectsOtherLattice(t *testing.T) {
	basis := auBasis(t)
	_, err := NewFCC("BCC", basis, bn.MustFromString("4.08", prec), prec)
	assert.Error(t, err)
}

func TestGetLatticePointFindsBasisAtom(t *testing.T) {
	basis := auBasis(t)
	cell, err := NewFCC(FCC, basis, bn.MustFromString("4.08", prec), prec)
	require.NoError(t, err)

	half := bn.MustFromString("0.5", prec)
	zero := bn.FromInt(0, prec)

	a, ok := cell.GetLatticePoint(vec3.New(half, half, zero))
	require.True(t, ok)
	assert.Equal(t, "Au", a.Element())

	_, ok = cell.GetLatticePoint(vec3.New(half, half, half))
	assert.False(t, ok)
}

func TestGetLatticePointReducesModulo1(t *testing.T) {
	basis := auBasis(t)
	cell, err := NewFCC(FCC, basis, bn.MustFromString("4.08", prec), prec)
	require.NoError(t, err)

	zero := bn.FromInt(0, prec)
	one := bn.FromInt(1, prec)
	// (1, 0, 0) reduces to (0,0,0), which is occupied.
	_, ok := cell.GetLatticePoint(vec3.New(one, zero, zero))
	assert.True(t, ok)
}

func TestFCCSourceGridHalfExtentAndOrder(t *testing.T) {
	r := bn.MustFromString("5", prec)
	a := bn.MustFromString("4.08", prec)
	d := GridHalfExtent(r, a)
	assert.Equal(t, 4, d) // 2*ceil(5/4.08) = 2*2 = 4

	src := NewFCCSource(r, a, prec)
	first, ok := src.Next()
	require.True(t, ok)
	negD := bn.FromInt(int64(-d), prec).Mul(bn.MustFromString("0.5", prec))
	assert.Equal(t, 0, first.X.Cmp(negD))
	assert.Equal(t, 0, first.Y.Cmp(negD))
	assert.Equal(t, 0, first.Z.Cmp(negD))
}

func TestFCCSourceDrainsExactlyExpectedCount(t *testing.T) {
	r := bn.MustFromString("1", prec)
	a := bn.MustFromString("4.08", prec)
	d := GridHalfExtent(r, a)
	expected := (2*d + 1) * (2*d + 1) * (2*d + 1)

	src := NewFCCSource(r, a, prec)
	count := 0
	for {
		_, ok := src.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, expected, count)
}

func TestFCCSourceZeroRadiusYieldsOrigin(t *testing.T) {
	r := bn.FromInt(0, prec)
	a := bn.MustFromString("4.08", prec)
	src := NewFCCSource(r, a, prec)
	pt, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, 0, pt.X.Cmp(bn.FromInt(0, prec)))
	_, ok = src.Next()
	assert.False(t, ok)
}
