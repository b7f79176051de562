package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/coloring"
	"github.com/katalvlaran/lvlath/matrix"
)

func TestBuildGraph_RejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = coloring.BuildGraph(m)
	require.Error(t, err, "expected error for non-square matrix")
}

func TestBuildGraph_RejectsAsymmetric(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	// (1,0) left at 0: asymmetric.

	_, err = coloring.BuildGraph(m)
	require.Error(t, err, "expected error for asymmetric matrix")
}

func TestBuildGraph_DiagonalIgnored(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	g, err := coloring.BuildGraph(m)
	require.NoError(t, err)
	require.False(t, g.Adj(0, 0), "self-loop must never be reported as an edge")
}

func TestAdjacencyGraph_DegreeAndNeighbors(t *testing.T) {
	g := buildFromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.Equal(t, 3, g.Degree(0))
	for _, v := range []int{1, 2, 3} {
		require.Equal(t, 1, g.Degree(v))
		require.True(t, g.Adj(0, v) && g.Adj(v, 0), "expected symmetric adjacency between 0 and %d", v)
	}
}

func TestAdjacencyGraph_NonNeighborsWithSelf(t *testing.T) {
	g := buildFromEdges(4, [][2]int{{0, 1}})
	h0 := g.NonNeighborsWithSelf(0)
	for v := 0; v < 4; v++ {
		want := v != 1
		require.Equal(t, want, h0.Test(v), "H(0).Test(%d)", v)
	}
}

func TestAdjacencyGraph_EdgesUpperTriangleOnly(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	g := buildFromEdges(3, edges)

	seen := make(map[[2]int]bool)
	g.Edges(func(u, v int) bool {
		require.Less(t, u, v, "Edges yielded non-ascending pair (%d,%d)", u, v)
		seen[[2]int{u, v}] = true

		return true
	})
	require.Len(t, seen, len(edges))
}

func TestAdjacencyGraph_SymmetryInsensitivity(t *testing.T) {
	// Populate only the lower triangle; buildFromEdges always mirrors, so
	// build two graphs from the same edge set via different Set() orders
	// and confirm identical derived structure.
	n, edges := 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}
	a := buildFromEdges(n, edges)

	reversed := make([][2]int, len(edges))
	for i, e := range edges {
		reversed[i] = [2]int{e[1], e[0]}
	}
	b := buildFromEdges(n, reversed)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, a.Adj(i, j), b.Adj(i, j), "adjacency mismatch at (%d,%d)", i, j)
		}
	}
}
