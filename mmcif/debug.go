package mmcif

import (
	"bufio"
	"fmt"
	"os"
)

// DebugWriter streams one CSV row per in-bounds lattice point found
// during build, per spec.md §4.6 "Debug writer". Same Open -> header ->
// Append* -> Finalize|Abort lifecycle as Writer.
type DebugWriter struct {
	finalPath string
	tmpPath   string
	f         *os.File
	buf       *bufio.Writer
	st        state
}

// OpenDebug creates `build_debug_<name>.csv.tmp` for buffered writing.
func OpenDebug(name string) (*DebugWriter, error) {
	tmp := "build_debug_" + name + ".csv.tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	return &DebugWriter{
		finalPath: "build_debug_" + name + ".csv",
		tmpPath:   tmp,
		f:         f,
		buf:       bufio.NewWriter(f),
		st:        stateOpen,
	}, nil
}

// WriteHeader emits the CSV header row.
func (w *DebugWriter) WriteHeader() error {
	if w.st != stateOpen {
		return fmt.Errorf("mmcif: DebugWriter.WriteHeader called outside Open state")
	}
	if _, err := w.buf.WriteString("x_frac,y_frac,z_frac,x_cart,y_cart,z_cart,is_occupied\n"); err != nil {
		return err
	}
	w.st = stateInitialized
	return nil
}

// Row is one in-bounds lattice point.
type Row struct {
	XFrac, YFrac, ZFrac string
	XCart, YCart, ZCart string
	IsOccupied          bool
}

// AppendRow emits one CSV row.
func (w *DebugWriter) AppendRow(r Row) error {
	if w.st != stateInitialized && w.st != stateAppending {
		return fmt.Errorf("mmcif: DebugWriter.AppendRow called outside Initialized/Appending state")
	}
	line := fmt.Sprintf("%s,%s,%s,%s,%s,%s,%t\n", r.XFrac, r.YFrac, r.ZFrac, r.XCart, r.YCart, r.ZCart, r.IsOccupied)
	if _, err := w.buf.WriteString(line); err != nil {
		return err
	}
	w.st = stateAppending
	return nil
}

// Finalize closes the buffered stream and atomically renames the
// temporary file to its final path.
func (w *DebugWriter) Finalize() error {
	if w.st == stateFinalized || w.st == stateAborted {
		return fmt.Errorf("mmcif: DebugWriter.Finalize called on a terminal writer")
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
func (w *DebugWriter) Abort() error {
	if w.st == stateFinalized || w.st == stateAborted {
		return fmt.Errorf("mmcif: DebugWriter.Abort called on a terminal writer")
	}
	closeErr := w.f.Close()
	removeErr := os.Remove(w.tmpPath)
	w.st = stateAborted
	if closeErr != nil {
		return closeErr
	}
	return removeErr
}
