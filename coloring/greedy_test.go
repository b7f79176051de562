package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/coloring"
)

func TestGreedyColoring_ProperAndBounded(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"empty", 5, nil},
		{"complete", 5, completeGraphEdges(5)},
		{"cycle-odd", 5, cycleGraphEdges(5)},
		{"bipartite", 4, completeBipartiteEdges(2, 2)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := buildFromEdges(c.n, c.edges)
			col := coloring.GreedyColoring(g)

			ok, err := coloring.IsProperColoring(g, col.Colors)
			require.NoError(t, err)
			require.True(t, ok, "greedy coloring must be proper")

			maxDegree := 0
			for v := 0; v < c.n; v++ {
				if g.Degree(v) > maxDegree {
					maxDegree = g.Degree(v)
				}
			}
			require.LessOrEqual(t, col.NumColors(), maxDegree+1, "greedy must stay within Delta+1")
		})
	}
}

func TestGreedyColoring_CompleteGraphUsesNColors(t *testing.T) {
	n := 6
	g := buildFromEdges(n, completeGraphEdges(n))
	col := coloring.GreedyColoring(g)
	require.Equal(t, n, col.NumColors())
}
