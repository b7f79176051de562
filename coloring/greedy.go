// Package coloring - greedy upper-bound provider.
//
// Grounded on original_source's GreedyUB computation inside DSatur's setup
// phase (a Welsh-Powell-ordered first-fit pass) and on tsp/bb.go's
// precomputeMinima-style "staged setup before the real search" idiom:
// the greedy pass is a cheap O(n^2) warm start that seeds best_k before
// either exact solver begins branching.
package coloring

// GreedyColoring computes a proper coloring via the Welsh-Powell heuristic:
// vertices are ordered by descending degree (ties broken by ascending
// index, matching welshPowellIndices in graph.go), then colored first-fit
// in that order. The result's color count is a valid upper bound on
// chi(G), used to seed best_k for both exact solvers.
//
// Not itself exact: callers must not report GreedyColoring's output as a
// minimum coloring; it only narrows the search space.
//
// Complexity: O(n^2) time (n vertices times up to n forbidden-color scan),
// O(n) space.
func GreedyColoring(g *AdjacencyGraph) Coloring {
	n := g.N()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	order := welshPowellIndices(g)
	used := 0
	for _, v := range order {
		forbidden := NewBitset(n)
		g.Neighbors(v).Iterate(func(u int) bool {
			if colors[u] >= 0 {
				forbidden.Set(colors[u])
			}

			return true
		})

		c := 0
		for forbidden.Test(c) {
			c++
		}
		colors[v] = c
		if c+1 > used {
			used = c + 1
		}
	}

	return Coloring{Colors: colors}
}
