// Package coloring - AdjacencyGraph: immutable symmetric adjacency structure.
//
// Grounded on matrix/impl_adjacency.go's construction staging (validate,
// then build dense buffers deterministically) and matrix/validators.go's
// shape-check style (ValidateSquare-like guards returning sentinel-wrapped
// errors). AdjacencyGraph itself is unrelated to matrix.AdjacencyMatrix
// (that type models a core.Graph <-> matrix.Matrix bridge for the wider
// module; this type is the coloring engines' own read-only fact base).
package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/matrix"
)

// AdjacencyGraph is an immutable n-vertex simple graph: a symmetric 0/1
// relation plus derived per-vertex degree and bitset neighbor/non-neighbor
// masks. Constructed once via BuildGraph and never mutated afterward; safe
// to share by reference across solver instances (spec.md §3's Ownership
// rule: "AdjacencyGraph is shared read-only by every solver invocation").
type AdjacencyGraph struct {
	n int

	// neighbors[i] is the bitset of vertices adjacent to i (i excluded).
	neighbors []Bitset

	// nonNeighbors[i] is the bitset of vertices non-adjacent to i, with i
	// itself excluded (H(i)/V(j) per spec.md §3 are this set unioned with
	// {i}; see NonNeighborsWithSelf).
	nonNeighbors []Bitset

	// degree[i] = neighbors[i].Count().
	degree []int
}

// N returns the vertex count.
func (g *AdjacencyGraph) N() int { return g.n }

// Adj reports whether i and j are adjacent. Total over [0,n); out-of-range
// indices report false rather than panicking (graph is read-only and
// every caller in this package only ever queries in-range indices).
// Complexity: O(1).
func (g *AdjacencyGraph) Adj(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}

	return g.neighbors[i].Test(j)
}

// Degree returns degree(i), the number of neighbors of i.
// Complexity: O(1).
func (g *AdjacencyGraph) Degree(i int) int { return g.degree[i] }

// Neighbors returns the bitset N(i) of vertices adjacent to i (i excluded).
// The returned Bitset shares backing storage with the graph and must not
// be mutated by the caller; callers that need a scratch copy use Clone.
// Complexity: O(1).
func (g *AdjacencyGraph) Neighbors(i int) Bitset { return g.neighbors[i] }

// NonNeighbors returns non_neighbors(i): vertices non-adjacent to i, with
// i excluded. Read-only, as Neighbors.
// Complexity: O(1).
func (g *AdjacencyGraph) NonNeighbors(i int) Bitset { return g.nonNeighbors[i] }

// NonNeighborsWithSelf returns H(i) = non_neighbors(i) ∪ {i} per spec.md
// §3. V(j) is the same construction and is semantically redundant with
// it (spec.md's note), so both names are served by this one accessor.
// Complexity: O(n/64) (one Clone + one Set).
func (g *AdjacencyGraph) NonNeighborsWithSelf(i int) Bitset {
	h := g.nonNeighbors[i].Clone()
	h.Set(i)

	return h
}

// Edges invokes yield(u,v) for every edge u<v in ascending order,
// stopping early if yield returns false. Grounded on core/view.go's
// read-only iterator-view pattern: a callback avoids the O(n^2)
// allocation core.Graph.Edges()'s slice-returning form would cost here,
// since its caller, IsProperColoring, only ever needs to walk edges once.
// Complexity: O(n^2/64) to scan, O(1) extra space.
func (g *AdjacencyGraph) Edges(yield func(u, v int) bool) {
	for u := 0; u < g.n; u++ {
		cont := true
		g.neighbors[u].Iterate(func(v int) bool {
			if v <= u {
				return true // only emit the upper triangle (v > u)
			}
			cont = yield(u, v)

			return cont
		})
		if !cont {
			return
		}
	}
}

// BuildGraph constructs an AdjacencyGraph from a square matrix.Matrix.
// A non-zero entry denotes an edge; zero denotes none. Mirrors
// matrix/impl_builder.go's validate-then-construct staging:
//   - Stage 1 (validate): square, symmetric (adj(i,j) == adj(j,i)),
//     non-negative dimension.
//   - Stage 2 (construct): build dense bitsets in one O(n^2) pass.
//
// The diagonal is ignored (self-loops never participate in coloring);
// spec.md §3 states adj(i,i) = false is an invariant of the derived
// relation, not a requirement on the input's diagonal values.
//
// Errors:
//   - ErrInvalidGraph if m is nil, non-square, or asymmetric off-diagonal.
//
// Complexity: O(n^2) time and space.
func BuildGraph(m matrix.Matrix) (*AdjacencyGraph, error) {
	if m == nil {
		return nil, fmt.Errorf("coloring: BuildGraph: nil matrix: %w", ErrInvalidGraph)
	}
	n := m.Rows()
	if n != m.Cols() || n < 0 {
		return nil, fmt.Errorf("coloring: BuildGraph: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrInvalidGraph)
	}

	g := &AdjacencyGraph{
		n:            n,
		neighbors:    make([]Bitset, n),
		nonNeighbors: make([]Bitset, n),
		degree:       make([]int, n),
	}
	for i := range g.neighbors {
		g.neighbors[i] = NewBitset(n)
		g.nonNeighbors[i] = NewBitset(n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // diagonal never participates (adj(i,i) = false)
			}
			vij, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("coloring: BuildGraph: At(%d,%d): %w", i, j, err)
			}
			vji, err := m.At(j, i)
			if err != nil {
				return nil, fmt.Errorf("coloring: BuildGraph: At(%d,%d): %w", j, i, err)
			}
			if (vij != 0) != (vji != 0) {
				return nil, fmt.Errorf("coloring: BuildGraph: asymmetric entry (%d,%d): %w", i, j, ErrInvalidGraph)
			}
			if vij != 0 {
				g.neighbors[i].Set(j)
			}
		}
	}

	// Derive degree and non-neighbor masks from the completed neighbor sets.
	full := NewBitset(n)
	for v := 0; v < n; v++ {
		full.Set(v)
	}
	for i := 0; i < n; i++ {
		g.degree[i] = g.neighbors[i].Count()
		nn := full.Clone()
		nn.AndNot(g.neighbors[i])
		nn.Clear(i)
		g.nonNeighbors[i] = nn
	}

	return g, nil
}

// welshPowellIndices returns vertex indices sorted by descending degree,
// ties broken by ascending index — the Welsh-Powell order in which
// GreedyColoring (greedy.go) assigns colors.
// Complexity: O(n log n).
func welshPowellIndices(g *AdjacencyGraph) []int {
	idx := make([]int, g.n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		da, db := g.degree[idx[a]], g.degree[idx[b]]
		if da != db {
			return da > db
		}

		return idx[a] < idx[b]
	})

	return idx
}
