package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThreeMFProducesNonEmptyFile(t *testing.T) {
	faces := testTetrahedronFaces(t)
	path := filepath.Join(t.TempDir(), "tet.3mf")
	require.NoError(t, WriteThreeMF(path, faces))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
