package mmcif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterHappyPathProducesFinalFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sample")

	w, err := Open(name)
	require.NoError(t, err)

	err = w.Initialize(Header{
		EntryIndex:    "1",
		EntryID:       "1",
		CellLengths:   map[string]string{"a": "4.08", "b": "4.08", "c": "4.08"},
		CellAngles:    map[string]string{"alpha": "90", "beta": "90", "gamma": "90"},
		SpaceGroupTag: "H-M_alt",
		SpaceGroup:    "F m -3 m",
	})
	require.NoError(t, err)

	err = w.AppendAtom(AtomRecord{
		Index: 0, Element: "Au",
		CartesianX: "0.000", CartesianY: "0.000", CartesianZ: "0.000",
		FormalCharge: "0", Radius: "1.440",
	})
	require.NoError(t, err)

	err = w.Finalize()
	require.NoError(t, err)

	_, err = os.Stat(name + ".mmcif")
	assert.NoError(t, err)
	_, err = os.Stat(name + ".mmcif.tmp")
	assert.True(t, os.IsNotExist(err))

	content, err := os.ReadFile(name + ".mmcif")
	require.NoError(t, err)
	assert.Contains(t, string(content), "HETATM 0 Au Au0")
	assert.Contains(t, string(content), "F m -3 m")
}

func TestAbortRemovesTmpFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sample")

	w, err := Open(name)
	require.NoError(t, err)
	require.NoError(t, w.Initialize(Header{EntryIndex: "1", EntryID: "1"}))

	require.NoError(t, w.Abort())

	_, err = os.Stat(name + ".mmcif.tmp")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(name + ".mmcif")
	assert.True(t, os.IsNotExist(err))
}

func TestAppendAfterFinalizeErrors(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sample")

	w, err := Open(name)
	require.NoError(t, err)
	require.NoError(t, w.Initialize(Header{EntryIndex: "1", EntryID: "1"}))
	require.NoError(t, w.Finalize())

	err = w.AppendAtom(AtomRecord{Index: 0, Element: "Au"})
	assert.Error(t, err)
}

func TestDebugWriterLifecycle(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	name := "sample"
	w, err := OpenDebug(name)
	require.NoError(t, err)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.AppendRow(Row{XFrac: "0", YFrac: "0", ZFrac: "0", XCart: "0", YCart: "0", ZCart: "0", IsOccupied: true}))
	require.NoError(t, w.Finalize())

	content, err := os.ReadFile("build_debug_" + name + ".csv")
	require.NoError(t, err)
	assert.Contains(t, string(content), "x_frac,y_frac,z_frac,x_cart,y_cart,z_cart,is_occupied")
}
