package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThumbnailProducesNonEmptyPNG(t *testing.T) {
	projection := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			projection.Set(x, y, color.White)
		}
	}

	info := ThumbnailInfo{ShapeName: "Tetrahedron", Radius: "1nm", AtomCount: 4}
	path := filepath.Join(t.TempDir(), "tet.png")
	require.NoError(t, WriteThumbnail(path, projection, info, 128))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
