package coloring_test

import (
	"github.com/katalvlaran/lvlath/coloring"
	"github.com/katalvlaran/lvlath/matrix"
)

// emptyMatrix is a 0x0 matrix.Matrix stub: matrix.NewDense rejects
// non-positive dimensions, but BuildGraph must still accept n=0 (spec.md's
// edgeless/empty-graph boundary case), so the n=0 path in buildFromEdges
// bypasses NewDense with this minimal stand-in instead.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int                    { return 0 }
func (emptyMatrix) Cols() int                    { return 0 }
func (emptyMatrix) At(i, j int) (float64, error) { panic("emptyMatrix: no entries") }
func (emptyMatrix) Set(i, j int, v float64) error { panic("emptyMatrix: no entries") }
func (emptyMatrix) Clone() matrix.Matrix { return emptyMatrix{} }

// buildFromEdges constructs an AdjacencyGraph for n vertices and the given
// upper-triangular edge list, mirroring each edge symmetrically.
func buildFromEdges(n int, edges [][2]int) *coloring.AdjacencyGraph {
	if n == 0 {
		g, err := coloring.BuildGraph(emptyMatrix{})
		if err != nil {
			panic(err)
		}

		return g
	}

	dense, err := matrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if err := dense.Set(u, v, 1); err != nil {
			panic(err)
		}
		if err := dense.Set(v, u, 1); err != nil {
			panic(err)
		}
	}

	g, err := coloring.BuildGraph(dense)
	if err != nil {
		panic(err)
	}

	return g
}

// completeGraphEdges returns the upper-triangular edge list of K_n.
func completeGraphEdges(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}

// cycleGraphEdges returns the edge list of the n-cycle C_n (n>=3).
func cycleGraphEdges(n int) [][2]int {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return edges
}

// completeBipartiteEdges returns the edge list of K_{a,b} with parts
// [0,a) and [a,a+b).
func completeBipartiteEdges(a, b int) [][2]int {
	var edges [][2]int
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			edges = append(edges, [2]int{i, a + j})
		}
	}

	return edges
}
