package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/npgen/atom"
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/shape"
	"github.com/deadsy/npgen/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTetrahedronFaces builds a tetrahedron's faces via the public
// shape API, for use across every export package test.
func testTetrahedronFaces(t *testing.T) []shape.Face {
	t.Helper()
	precision := 40
	radius := bn.MustFromString("1.44", precision)
	zero := bn.FromInt(0, precision)
	half := bn.MustFromString("0.5", precision)
	mk := func(frac vec3.Triple) *atom.Atom {
		a, err := atom.New("Au", radius, 0, frac, precision)
		require.NoError(t, err)
		return a
	}
	basis := [4]*atom.Atom{
		mk(vec3.New(zero, zero, zero)),
		mk(vec3.New(half, half, zero)),
		mk(vec3.New(half, zero, half)),
		mk(vec3.New(zero, half, half)),
	}

	s, err := shape.NewTetrahedron("1", shape.Nanometers, basis, "4.08", precision, "", "tet", "1")
	require.NoError(t, err)
	return s.Faces()
}

func TestWriteDXFProducesNonEmptyFile(t *testing.T) {
	faces := testTetrahedronFaces(t)
	path := filepath.Join(t.TempDir(), "tet.dxf")
	require.NoError(t, WriteDXF(path, faces))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
