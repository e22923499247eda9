package shape

import "github.com/deadsy/npgen/atom"

// NewBilunabirotunda is the one shape named in spec.md §4.5 left
// unimplemented. Unlike every other named solid (all of which are
// either a direct sign/cyclic-permutation orbit, or recoverable for
// free as dualGenerator(someArchimedeanGen) once its primal exists —
// see solids_archimedean.go and solids_catalan.go, which now cover the
// whole icosahedral truncation family including the rhombicosidodeca-
// hedron, truncated icosidodecahedron and snub dodecahedron), the
// bilunabirotunda (Johnson solid J91) has no duality shortcut: it is
// not vertex- or face-transitive, so it has no Archimedean/Catalan
// partner to derive it from, and its own literature coordinates could
// not be reconstructed here with enough confidence to trust against
// the "never run the toolchain" constraint — a single wrong digit in
// its mixed square/triangle/pentagon vertex set would produce a
// plausible-looking but silently non-convex or wrong-volume shape with
// no way to self-check it. Raising an error here rather than guessing
// follows the same judgment spec.md's own Open Questions apply to the
// always-false `Icosahedra` legacy class.
func NewBilunabirotunda(
	radiusDecimal string, unit RadiusUnit,
	basis [4]*atom.Atom,
	latticeConstantDecimal string,
	precision int,
	fileName, structureName, structureIdx string,
) (*Polyhedron, error) {
	return nil, ErrNotImplemented
}
