package shape

import (
	"github.com/deadsy/npgen/bn"
	"github.com/deadsy/npgen/vec3"
)

// signPermutations generates every distinct Triple obtained by applying
// every combination of + / - sign to the (possibly zero) magnitudes
// a, b, c, in the fixed coordinate order (X=a, Y=b, Z=c). This is the
// standard literature device ("permutations of (a,b,c)" tables for
// Platonic/Archimedean/Catalan solids) for compactly specifying a
// vertex orbit under the sign-change subgroup.
func signPermutations(a, b, c bn.Num, precision int) []vec3.Triple {
	mags := [3]bn.Num{a, b, c}
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for sx := -1; sx <= 1; sx += 2 {
		for sy := -1; sy <= 1; sy += 2 {
			for sz := -1; sz <= 1; sz += 2 {
				v := vec3.New(
					signed(mags[0], sx),
					signed(mags[1], sy),
					signed(mags[2], sz),
				)
				key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// signed returns n (s>0) or -n (s<0). A zero magnitude is returned
// unchanged regardless of sign: math/big.Float distinguishes +0 from
// -0, and without this guard a zero coordinate would make the dedup
// map in signPermutations see "+0" and "-0" as different keys, leaving
// duplicate vertices at the same point (and a later degenerate, zero-
// length edge in groupFaces' normal computation).
func signed(n bn.Num, s int) bn.Num {
	if s < 0 && n.Sign() != 0 {
		return n.Neg()
	}
	return n
}

// cyclicPermutations returns the 3 cyclic permutations of (a,b,c):
// (a,b,c), (c,a,b), (b,c,a).
func cyclicPermutations(a, b, c bn.Num) [3][3]bn.Num {
	return [3][3]bn.Num{
		{a, b, c},
		{c, a, b},
		{b, c, a},
	}
}

// evenPermutationsSignVariants generates the vertex orbit used by the
// regular dodecahedron/icosahedron family: all sign changes applied to
// each of the 3 cyclic permutations of (a,b,c). This matches the
// well-known "even permutations of (0, ±1, ±phi)"-style construction
// for these solids (cyclic permutations of 3 elements are always even
// permutations of the underlying coordinate labeling).
func evenPermutationsSignVariants(a, b, c bn.Num, precision int) []vec3.Triple {
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for _, perm := range cyclicPermutations(a, b, c) {
		for _, v := range signPermutations(perm[0], perm[1], perm[2], precision) {
			key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// allPermutationsSignVariants generates the vertex orbit used by
// solids whose generating point has all-distinct nonzero magnitudes
// placed in every (not just cyclic) coordinate order: all 6
// permutations of (a,b,c), each with every sign combination.
func allPermutationsSignVariants(a, b, c bn.Num, precision int) []vec3.Triple {
	perms := [6][3]bn.Num{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for _, perm := range perms {
		for _, v := range signPermutations(perm[0], perm[1], perm[2], precision) {
			key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// signPermutationsParity is signPermutations restricted to the sign
// combinations whose count of negative signs has the requested parity
// (even or odd) — the standard "all permutations of (a,b,c) with an
// even number of minus signs" construction used by the truncated
// tetrahedron and by the two enantiomorphic (dextro/levo) forms of
// every snub solid.
func signPermutationsParity(a, b, c bn.Num, precision int, wantEvenNeg bool) []vec3.Triple {
	mags := [3]bn.Num{a, b, c}
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for sx := -1; sx <= 1; sx += 2 {
		for sy := -1; sy <= 1; sy += 2 {
			for sz := -1; sz <= 1; sz += 2 {
				negCount := 0
				if sx < 0 {
					negCount++
				}
				if sy < 0 {
					negCount++
				}
				if sz < 0 {
					negCount++
				}
				if (negCount%2 == 0) != wantEvenNeg {
					continue
				}
				v := vec3.New(
					signed(mags[0], sx),
					signed(mags[1], sy),
					signed(mags[2], sz),
				)
				key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// permutationsParitySignVariants applies signPermutationsParity to
// every one of the 6 permutations of (a,b,c) (all 3 magnitudes
// distinct and nonzero, the usual case for chiral snub solids).
func permutationsParitySignVariants(a, b, c bn.Num, precision int, wantEvenNeg bool) []vec3.Triple {
	perms := [6][3]bn.Num{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for _, perm := range perms {
		for _, v := range signPermutationsParity(perm[0], perm[1], perm[2], precision, wantEvenNeg) {
			key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// evenPermutationsParitySignVariants combines evenPermutationsSignVariants
// and signPermutationsParity: the 3 cyclic permutations of (a,b,c), each
// restricted to the sign combinations whose minus-sign count has the
// requested parity. This is the standard "even permutations of (...),
// with an even number of minus signs" construction used by chiral
// icosahedral-symmetry solids such as the snub dodecahedron, where the
// full (unfiltered) even-permutation orbit would double-count the
// mirror-image vertex set.
func evenPermutationsParitySignVariants(a, b, c bn.Num, precision int, wantEvenNeg bool) []vec3.Triple {
	var out []vec3.Triple
	seen := map[[3]string]bool{}
	for _, perm := range cyclicPermutations(a, b, c) {
		for _, v := range signPermutationsParity(perm[0], perm[1], perm[2], precision, wantEvenNeg) {
			key := [3]string{v.X.String(), v.Y.String(), v.Z.String()}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// mirrorX negates the X coordinate of every vertex, the standard
// construction for a chiral (dextro -> levo) mirror pair: topology is
// shared, only the constants vector's handedness flips, per spec.md
// Design Notes §9.
func mirrorX(vs []vec3.Triple) []vec3.Triple {
	out := make([]vec3.Triple, len(vs))
	for i, v := range vs {
		out[i] = vec3.New(v.X.Neg(), v.Y, v.Z)
	}
	return out
}
