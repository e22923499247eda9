package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVGProducesNonEmptyFile(t *testing.T) {
	faces := testTetrahedronFaces(t)
	latticeX := []float64{0, 1, -1, 2}
	latticeY := []float64{0, 1, -1, -2}
	occupied := []bool{true, false, true, false}

	path := filepath.Join(t.TempDir(), "tet.svg")
	require.NoError(t, WriteSVG(path, faces, latticeX, latticeY, occupied, 256, 20.0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<svg")
}
