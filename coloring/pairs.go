// Package coloring - pair enumeration for the Olemskoy block construction.
//
// Grounded on original_source's olemskoyAlgorithm/Pair.h and Variants.cpp
// (the source's pair-generation pass), corrected per spec.md §4.4 to the
// deterministic total order the spec requires (the source's own pair
// ordering is one of the documented open-question inconsistencies; this
// file follows spec.md's resolution, not the source's literal order).
package coloring

import "sort"

// pairTriple is one (i, j, D) candidate emitted by EnumeratePairs: i<j are
// non-adjacent vertices in Omega, and D is their common non-neighborhood
// within Omega, including i and j themselves (spec.md §4.4's required
// self-membership).
type pairTriple struct {
	I, J int
	D    Bitset
}

// EnumeratePairs returns the ordered sequence of admissible pairs within
// omega, per spec.md §4.4: i,j in omega, i<j, not adjacent; D = {v in
// omega : v non-adjacent to both i and j}, with i,j in D by construction.
// Ordered by |D| descending, then i ascending, then j ascending.
//
// Complexity: O(|omega|^2 * n/64) to build candidate D sets, plus an
// O(p log p) sort of the p candidates found.
func EnumeratePairs(g *AdjacencyGraph, omega Bitset) []pairTriple {
	members := omega.Slice()
	var out []pairTriple

	for a := 0; a < len(members); a++ {
		i := members[a]
		for b := a + 1; b < len(members); b++ {
			j := members[b]
			if g.Adj(i, j) {
				continue
			}

			d := g.NonNeighborsWithSelf(i).Clone()
			d.And(g.NonNeighborsWithSelf(j))
			d.And(omega)
			// NonNeighborsWithSelf(i) includes i; intersecting with
			// NonNeighborsWithSelf(j) (which includes j, and also i
			// since i,j are non-adjacent hence i is a non-neighbor of j)
			// keeps i. Symmetric argument keeps j. D already contains i,j.

			out = append(out, pairTriple{I: i, J: j, D: d})
		}
	}

	sort.Slice(out, func(a, b int) bool {
		da, db := out[a].D.Count(), out[b].D.Count()
		if da != db {
			return da > db
		}
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}

		return out[a].J < out[b].J
	})

	return out
}
