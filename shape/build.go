package shape

import (
	"errors"
	"fmt"

	"github.com/deadsy/npgen/internal/buildlog"
	"github.com/deadsy/npgen/mmcif"
	"github.com/deadsy/npgen/vec3"
)

// boundedShape is the polymorphic surface runBuild needs from a
// concrete shape: the exact (possibly fast-reject-assisted)
// containment predicate. Every concrete shape in this package
// (Sphere, Cube, Polyhedron) satisfies it.
type boundedShape interface {
	InBounds(point vec3.Triple) bool
}

// runBuild implements the single build routine shared by every
// concrete shape (spec.md §4.7): drain the unit cell's bounded
// coordinate source, test each candidate lattice point against the
// shape, place and emit the atoms that fall inside, and finalize (or,
// on any error, abort) the mmCIF writer and its optional debug
// sibling.
//
// Build may run at most once per Shape instance (spec.md §4.8); a
// second call returns ErrAlreadyBuilt without touching the filesystem.
func runBuild(b *Base, s boundedShape, name string, debug bool) (err error) {
	if b.built {
		return ErrAlreadyBuilt
	}
	b.built = true

	w, err := mmcif.Open(name)
	if err != nil {
		return fmt.Errorf("shape: opening mmcif writer: %w", err)
	}

	var dw *mmcif.DebugWriter
	if debug {
		dw, err = mmcif.OpenDebug(name)
		if err != nil {
			_ = w.Abort()
			return fmt.Errorf("shape: opening debug writer: %w", err)
		}
	}

	// On any error past this point, abort both writers instead of
	// finalizing, and join the build error with whatever the abort
	// path reports.
	defer func() {
		if err != nil {
			abortErrs := []error{err, w.Abort()}
			if dw != nil {
				abortErrs = append(abortErrs, dw.Abort())
			}
			err = errors.Join(abortErrs...)
		}
	}()

	cell := b.UnitCell()
	header := mmcif.Header{
		EntryIndex: b.structureIdx,
		EntryID:    b.structureName,
		CellLengths: map[string]string{
			"a": cell.LengthA().String(),
			"b": cell.LengthB().String(),
			"c": cell.LengthC().String(),
		},
		CellAngles: map[string]string{
			"alpha": cell.AngleAlpha().String(),
			"beta":  cell.AngleBeta().String(),
			"gamma": cell.AngleGamma().String(),
		},
		SpaceGroupTag: "H-M_alt",
		SpaceGroup:    cell.SpaceGroup(),
	}
	if err = w.Initialize(header); err != nil {
		return err
	}
	if dw != nil {
		if err = dw.WriteHeader(); err != nil {
			return err
		}
	}

	buildlog.Infof("build %s: scanning %d^3 candidate lattice points", name, 2*b.Coordinates().HalfExtent()+1)

	index := 0
	examined := 0
	for {
		frac, ok := b.Coordinates().Next()
		if !ok {
			break
		}
		examined++

		cartesian := vec3.MultNum(frac, b.LatticeConstant())
		inside := s.InBounds(cartesian)

		basisAtom, occupied := cell.GetLatticePoint(frac)
		placed := inside && occupied

		if dw != nil && inside {
			if err = dw.AppendRow(mmcif.Row{
				XFrac: frac.X.String(), YFrac: frac.Y.String(), ZFrac: frac.Z.String(),
				XCart: cartesian.X.String(), YCart: cartesian.Y.String(), ZCart: cartesian.Z.String(),
				IsOccupied: placed,
			}); err != nil {
				return err
			}
		}

		if !placed {
			continue
		}

		site := basisAtom.Clone()
		site.LatticePoint(index, cartesian, frac)

		if err = w.AppendAtom(mmcif.AtomRecord{
			Index:        index,
			Element:      site.Element(),
			CartesianX:   site.Cartesian().X.String(),
			CartesianY:   site.Cartesian().Y.String(),
			CartesianZ:   site.Cartesian().Z.String(),
			FormalCharge: site.FormalCharge(),
			Radius:       site.Radius().String(),
		}); err != nil {
			return err
		}
		index++
	}

	buildlog.Infof("build %s: examined %d candidates, placed %d atoms", name, examined, index)

	if err = w.Finalize(); err != nil {
		return err
	}
	if dw != nil {
		if err = dw.Finalize(); err != nil {
			return err
		}
	}

	return nil
}
