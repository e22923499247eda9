package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindClashesDetectsCloseAtoms(t *testing.T) {
	xs := []float64{0, 0.1, 10}
	ys := []float64{0, 0, 10}
	zs := []float64{0, 0, 10}

	clashes := FindClashes(xs, ys, zs, 0.5)
	assert.Len(t, clashes, 1)
	assert.Equal(t, Clash{A: 0, B: 1}, clashes[0])
}

func TestFindClashesReportsNoneWhenWellSeparated(t *testing.T) {
	xs := []float64{0, 10, 20}
	ys := []float64{0, 0, 0}
	zs := []float64{0, 0, 0}

	assert.Empty(t, FindClashes(xs, ys, zs, 0.5))
}

func TestFindClashesHandlesEmptyInput(t *testing.T) {
	assert.Empty(t, FindClashes(nil, nil, nil, 1.0))
}
