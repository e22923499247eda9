package shape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// auFCCBasis builds the 4-atom gold FCC basis used by spec.md §8's
// numeric scenarios, at the given precision.
func auFCCBasis(t *testing.T, precision int) [4]*atom.Atom {
	t.Helper()
	radius := bn.MustFromString("1.44", precision)
	zero := bn.FromInt(0, precision)
	half := bn.MustFromString("0.5", precision)

	mk := func(frac vec3.Triple) *atom.Atom {
		a, err := atom.New("Au", radius, 0, frac, precision)
		require.NoError(t, err)
		return a
	}

	return [4]*atom.Atom{
		mk(vec3.New(zero, zero, zero)),
		mk(vec3.New(half, half, zero)),
		mk(vec3.New(half, zero, half)),
		mk(vec3.New(zero, half, half)),
	}
}

func countAtoms(t *testing.T, path string) int {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	n := 0
	for _, line := range splitLines(string(content)) {
		if len(line) >= 6 && line[:6] == "HETATM" {
			n++
		}
	}
	return n
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func TestSphereBuildHalfNanometerRadius(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 50)

	s, err := NewSphere("0.5", Nanometers, basis, "4.08", 50, "", "au-sphere", "1")
	require.NoError(t, err)

	name := filepath.Join(dir, "au-sphere")
	require.NoError(t, s.Build(name, false))

	assert.Equal(t, 13, countAtoms(t, name+".mmcif"))
}

func TestCubeBuildFiveAngstromHalfSide(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 50)

	c, err := NewCube("5", Angstrom, basis, "4.08", 50, "", "au-cube", "1")
	require.NoError(t, err)

	name := filepath.Join(dir, "au-cube")
	require.NoError(t, c.Build(name, false))

	assert.Equal(t, 63, countAtoms(t, name+".mmcif"))
}

func TestSphereZeroRadiusYieldsSingleAtom(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 50)

	s, err := NewSphere("0", Nanometers, basis, "4.08", 50, "", "au-point", "1")
	require.NoError(t, err)

	name := filepath.Join(dir, "au-point")
	require.NoError(t, s.Build(name, false))

	assert.Equal(t, 1, countAtoms(t, name+".mmcif"))
}

func TestBuildCannotRunTwice(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 50)

	s, err := NewSphere("0.5", Nanometers, basis, "4.08", 50, "", "au-sphere", "1")
	require.NoError(t, err)

	name := filepath.Join(dir, "au-sphere")
	require.NoError(t, s.Build(name, false))

	err = s.Build(name, false)
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestCubeHasStrictlyMoreAtomsThanSphereAtSameRadius(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 50)

	s, err := NewSphere("5", Angstrom, basis, "4.08", 50, "", "sph", "1")
	require.NoError(t, err)
	sName := filepath.Join(dir, "sph")
	require.NoError(t, s.Build(sName, false))

	c, err := NewCube("5", Angstrom, basis, "4.08", 50, "", "cub", "1")
	require.NoError(t, err)
	cName := filepath.Join(dir, "cub")
	require.NoError(t, c.Build(cName, false))

	assert.Less(t, countAtoms(t, sName+".mmcif"), countAtoms(t, cName+".mmcif"))
}

func TestTetrahedronBuildProducesNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 40)

	s, err := NewTetrahedron("1", Nanometers, basis, "4.08", 40, "", "tet", "1")
	require.NoError(t, err)
	name := filepath.Join(dir, "tet")
	require.NoError(t, s.Build(name, false))

	assert.Greater(t, countAtoms(t, name+".mmcif"), 0)
}

func TestRhombicTriacontahedronBuildIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	basis := auFCCBasis(t, 40)

	mk := func(which string) int {
		s, err := NewRhombicTriacontahedron("7.5", Nanometers, basis, "4.08", 40, "", "rt-"+which, "1")
		require.NoError(t, err)
		name := filepath.Join(dir, "rt-"+which)
		require.NoError(t, s.Build(name, false))
		return countAtoms(t, name+".mmcif")
	}

	first := mk("a")
	second := mk("b")
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0)
}

func TestDeferredSolidsReturnNotImplemented(t *testing.T) {
	basis := auFCCBasis(t, 30)
	_, err := NewBilunabirotunda("1", Nanometers, basis, "4.08", 30, "", "x", "1")
	assert.ErrorIs(t, err, ErrNotImplemented)
}
