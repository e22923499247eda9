package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTetrahedronHasFourVerticesAndFourFaces(t *testing.T) {
	verts, dirs, err := tetrahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 4)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 4)
}

func TestCuboctahedronHasFourteenFaces(t *testing.T) {
	verts, dirs, err := cuboctahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 12)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 14)
}

func TestDodecahedronHasTwentyVerticesAndTwelveFaces(t *testing.T) {
	verts, dirs, err := dodecahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 20)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 12)
}

func TestIcosahedronHasTwelveVerticesAndTwentyFaces(t *testing.T) {
	verts, dirs, err := icosahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 12)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 20)
}

func TestIcosidodecahedronHasThirtyVerticesAndThirtyTwoFaces(t *testing.T) {
	verts, dirs, err := icosidodecahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 30)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 32)
}

func TestTruncatedTetrahedronHasTwelveVerticesAndEightFaces(t *testing.T) {
	verts, dirs, err := truncatedTetrahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 12)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 8)
}

func TestSnubCuboctahedronDextroAndLevoAreMirrorsNotEqual(t *testing.T) {
	dextro, _, err := snubCuboctahedronGenK(30, false, false)
	require.NoError(t, err)
	levo, _, err := snubCuboctahedronGenK(30, true, false)
	require.NoError(t, err)
	assert.Len(t, dextro, 24)
	assert.Len(t, levo, 24)

	mirrored := mirrorX(dextro)
	assert.Equal(t, len(mirrored), len(levo))
	for i := range mirrored {
		assert.Equal(t, 0, mirrored[i].X.Cmp(levo[i].X))
	}
}

func TestPolarDualOfTetrahedronIsAnotherTetrahedron(t *testing.T) {
	verts, dirs, err := dualGenerator(tetrahedronGen)(30)
	require.NoError(t, err)
	assert.Len(t, verts, 4)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 4)
}

func TestRhombicosidodecahedronHasSixtyVerticesAndSixtyTwoFaces(t *testing.T) {
	verts, dirs, err := rhombicosidodecahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 60)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 62)
}

func TestTruncatedIcosidodecahedronHasOneTwentyVerticesAndSixtyTwoFaces(t *testing.T) {
	verts, dirs, err := truncatedIcosidodecahedronGen(false)(30)
	require.NoError(t, err)
	assert.Len(t, verts, 120)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 62)
}

func TestSnubDodecahedronHasSixtyVerticesAndNinetyTwoFaces(t *testing.T) {
	verts, dirs, err := snubDodecahedronGen(false)(30)
	require.NoError(t, err)
	assert.Len(t, verts, 60)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 92)
}

func TestSnubDodecahedronDextroAndLevoAreMirrorsNotEqual(t *testing.T) {
	dextro, _, err := snubDodecahedronGen(false)(30)
	require.NoError(t, err)
	levo, _, err := snubDodecahedronGen(true)(30)
	require.NoError(t, err)
	assert.Len(t, dextro, 60)
	assert.Len(t, levo, 60)

	mirrored := mirrorX(dextro)
	assert.Equal(t, len(mirrored), len(levo))
	for i := range mirrored {
		assert.Equal(t, 0, mirrored[i].X.Cmp(levo[i].X))
	}
}

func TestDeltoidalHexecontahedronIsDualOfRhombicosidodecahedron(t *testing.T) {
	verts, dirs, err := dualGenerator(rhombicosidodecahedronGen)(30)
	require.NoError(t, err)
	assert.Len(t, verts, 62)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 60)
}

func TestDisdyakisTriacontahedronIsDualOfTruncatedIcosidodecahedron(t *testing.T) {
	verts, dirs, err := dualGenerator(truncatedIcosidodecahedronGen(false))(30)
	require.NoError(t, err)
	assert.Len(t, verts, 62)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 120)
}

func TestPentagonalHexecontahedronIsDualOfSnubDodecahedron(t *testing.T) {
	verts, dirs, err := dualGenerator(snubDodecahedronGen(false))(30)
	require.NoError(t, err)
	assert.Len(t, verts, 92)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 60)
}

func TestSixTruncatedTriakisTetrahedronHasFourteenVerticesAndEighteenFaces(t *testing.T) {
	verts, dirs, err := sixTruncatedTriakisTetrahedronGen(30)
	require.NoError(t, err)
	assert.Len(t, verts, 14)
	faces, err := groupFaces(verts, dirs)
	require.NoError(t, err)
	assert.Len(t, faces, 18)
}
