// Package mmcif implements the crash-safe mmCIF writer and its
// companion debug CSV writer, per spec.md §4.6 and §4.8.
//
// Grounded on render/finiteelements/mesh/inp.go's writer lifecycle
// (NewInp -> Write -> per-section os.Create/WriteString/Close), adapted
// per Design Notes §9 ("re-express global mutable writer instances as a
// scoped resource owned by build(), with guaranteed tmp cleanup on any
// exit path, atomic rename only on success") — the teacher's Inp.Write
// writes straight to its final path; this writer always goes through a
// `.tmp` file and only renames into place on Finalize.
package mmcif

import (
	"bufio"
	"fmt"
	"os"
)

type state int

const (
	stateOpen state = iota
	stateInitialized
	stateAppending
	stateFinalized
	stateAborted
)

// Writer streams atoms into a crash-safe mmCIF file, following the
// Open -> Initialize -> Append* -> Finalize|Abort lifecycle of
// spec.md §4.8.
type Writer struct {
	finalPath string
	tmpPath   string
	f         *os.File
	buf       *bufio.Writer
	st        state
}

// Open creates the temporary file `<name>.mmcif.tmp` and opens it for
// buffered writing.
func Open(name string) (*Writer, error) {
	tmp := name + ".mmcif.tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	return &Writer{
		finalPath: name + ".mmcif",
		tmpPath:   tmp,
		f:         f,
		buf:       bufio.NewWriter(f),
		st:        stateOpen,
	}, nil
}

// Header carries the mmCIF header fields written by Initialize.
type Header struct {
	EntryIndex    string
	EntryID       string
	CellLengths   map[string]string // name -> decimal string, e.g. "a", written as _cell.length_a
	CellAngles    map[string]string // name -> decimal string, e.g. "alpha", written as _cell.angle_alpha
	SpaceGroupTag string             // e.g. "H-M_alt"
	SpaceGroup    string             // e.g. "F m -3 m"
}

// cellLengthOrder and cellAngleOrder fix a deterministic iteration order for the cell
// length/angle maps (Go map iteration is randomized, and spec.md
// requires a stable, reproducible file — §8 invariant 6 / scenario 6
// byte-identical rebuilds).
var cellLengthOrder = []string{"a", "b", "c"}
var cellAngleOrder = []string{"alpha", "beta", "gamma"}

// Initialize emits the mmCIF header, per spec.md §4.6 step 2.
func (w *Writer) Initialize(h Header) error {
	if w.st != stateOpen {
		return fmt.Errorf("mmcif: Initialize called outside Open state")
	}

	lines := []string{
		fmt.Sprintf("data_%s\n", h.EntryIndex),
		fmt.Sprintf("_entry.id %s\n", h.EntryID),
		fmt.Sprintf("_cell.entry_idx %s\n", h.EntryIndex),
	}
	for _, name := range cellLengthOrder {
		if v, ok := h.CellLengths[name]; ok {
			lines = append(lines, fmt.Sprintf("_cell.length_%s %s\n", name, v))
		}
	}
	for _, name := range cellAngleOrder {
		if v, ok := h.CellAngles[name]; ok {
			lines = append(lines, fmt.Sprintf("_cell.angle_%s %s\n", name, v))
		}
	}
	lines = append(lines,
		fmt.Sprintf("_symmetry.entry_id %s\n", h.EntryID),
		fmt.Sprintf("_symmetry.space_group_name_%s '%s'\n", h.SpaceGroupTag, h.SpaceGroup),
		"loop_\n",
		"_atom_site.group_PDB\n",
		"_atom_site.id\n",
		"_atom_site.type_symbol\n",
		"_atom_site.label_atom_id\n",
		"_atom_site.Cartn_x\n",
		"_atom_site.Cartn_y\n",
		"_atom_site.Cartn_z\n",
		"_atom_site.pdbx_formal_charge\n",
		"_atom_site.occupancy\n",
		"_atom_site.auth_asym_id\n",
		"_atom_site.custom_radius_Ångströms\n",
	)

	for _, l := range lines {
		if _, err := w.buf.WriteString(l); err != nil {
			return err
		}
	}
	w.st = stateInitialized
	return nil
}

// AtomRecord is one HETATM row, per spec.md §4.6 step 3.
type AtomRecord struct {
	Index        int
	Element      string
	CartesianX   string
	CartesianY   string
	CartesianZ   string
	FormalCharge string
	Radius       string
}

// AppendAtom emits one HETATM record. Appending after Finalize/Abort is
// an error, per spec.md §4.8.
func (w *Writer) AppendAtom(a AtomRecord) error {
	if w.st != stateInitialized && w.st != stateAppending {
		return fmt.Errorf("mmcif: AppendAtom called outside Initialized/Appending state")
	}
	label := fmt.Sprintf("%s%d", a.Element, a.Index)
	line := fmt.Sprintf("HETATM %d %s %s %s %s %s %s 1 A %s\n",
		a.Index, a.Element, label, a.CartesianX, a.CartesianY, a.CartesianZ, a.FormalCharge, a.Radius)
	if _, err := w.buf.WriteString(line); err != nil {
		return err
	}
	w.st = stateAppending
	return nil
}

// Finalize closes the buffered stream and atomically renames the
// temporary file to its final path, replacing any existing file.
func (w *Writer) Finalize() error {
	if w.st == stateFinalized || w.st == stateAborted {
		return fmt.Errorf("mmcif: Finalize called on a terminal writer")
	}
	if err := w.buf.Flush(); err != nil {
		_ = w.f.Close()
		return err
	}
	if err := w.f.Close(); err != nil {
		return err
	}
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		return err
	}
	w.st = stateFinalized
	return nil
}

// Abort closes the stream and deletes the temporary file.
func (w *Writer) Abort() error {
	if w.st == stateFinalized || w.st == stateAborted {
		return fmt.Errorf("mmcif: Abort called on a terminal writer")
	}
	closeErr := w.f.Close()
	removeErr := os.Remove(w.tmpPath)
	w.st = stateAborted
	if closeErr != nil {
		return closeErr
	}
	return removeErr
}
