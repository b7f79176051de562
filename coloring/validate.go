// Package coloring - coloring validation utilities.
//
// Grounded on tsp/validate.go's style: small, tight, side-effect-free
// functions returning sentinel errors, no logging, no panics on user
// input. Complexity notes mirror that file's convention.
package coloring

// ChromaticNumber returns 1+max(colors), or 0 if colors is empty. This is
// the number of distinct colors used assuming colors are a dense [0,k)
// labeling, which is the invariant every solver in this package produces;
// it does not itself verify that invariant (use IsProperColoring / a
// distinct-values scan for that).
//
// Complexity: O(n).
func ChromaticNumber(colors []int) int {
	if len(colors) == 0 {
		return 0
	}
	max := colors[0]
	for _, c := range colors[1:] {
		if c > max {
			max = c
		}
	}

	return max + 1
}

// IsProperColoring reports whether colors is a proper coloring of g: every
// entry non-negative, length matching g.N(), and no edge endpoints sharing
// a color.
//
// Errors:
//   - ErrDimensionMismatch if len(colors) != g.N().
//   - ErrNegativeColor if any entry is negative.
//
// A length/negativity violation is reported as an error rather than folded
// into a false return, since those are caller bugs distinct from "this is
// not a proper coloring" (which is a legitimate false/nil result).
//
// Complexity: O(n^2/64) (one Edges scan over the graph's bitsets).
func IsProperColoring(g *AdjacencyGraph, colors []int) (bool, error) {
	if len(colors) != g.N() {
		return false, ErrDimensionMismatch
	}
	for _, c := range colors {
		if c < 0 {
			return false, ErrNegativeColor
		}
	}

	proper := true
	g.Edges(func(u, v int) bool {
		if colors[u] == colors[v] {
			proper = false

			return false
		}

		return true
	})

	return proper, nil
}
