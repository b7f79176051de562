package coloring_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/coloring"
)

func TestSolveOlemskoy_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g := buildFromEdges(sc.n, sc.edges)
			col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
			require.NoError(t, err)

			ok, verr := coloring.IsProperColoring(g, col.Colors)
			require.NoError(t, verr)
			require.True(t, ok, "Olemskoy result is not a proper coloring")
			require.Equal(t, sc.wantChi, col.NumColors())
		})
	}
}

func TestSolveOlemskoy_BoundaryCases(t *testing.T) {
	t.Run("empty-graph", func(t *testing.T) {
		g := buildFromEdges(0, nil)
		col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, col.NumColors())
	})

	t.Run("single-vertex", func(t *testing.T) {
		g := buildFromEdges(1, nil)
		col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 1, col.NumColors())
	})

	t.Run("edgeless", func(t *testing.T) {
		g := buildFromEdges(5, nil)
		col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 1, col.NumColors())
	})

	t.Run("complete-bipartite", func(t *testing.T) {
		g := buildFromEdges(7, completeBipartiteEdges(3, 4))
		col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 2, col.NumColors())
	})
}

func TestSolveOlemskoy_Deterministic(t *testing.T) {
	g := buildFromEdges(scenarios[0].n, scenarios[0].edges)
	a, err := coloring.SolveOlemskoy(g, 0, nil, nil)
	require.NoError(t, err)
	b, err := coloring.SolveOlemskoy(g, 0, nil, nil)
	require.NoError(t, err)
	require.Equal(t, a.Colors, b.Colors)
}

// TestSolveOlemskoy_ChiEqualsGreedyUB locks in the regression where no
// coloring was returned when no partition strictly beats best_k: on K5
// every partition uses 5 singleton blocks, matching best_k exactly, so
// the greedy witness that seeds bestColoring is returned.
func TestSolveOlemskoy_ChiEqualsGreedyUB(t *testing.T) {
	g := buildFromEdges(5, completeGraphEdges(5))

	col, err := coloring.SolveOlemskoy(g, 0, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, col.Colors, "bestColoring must not stay nil when chi equals the greedy UB")

	ok, verr := coloring.IsProperColoring(g, col.Colors)
	require.NoError(t, verr)
	require.True(t, ok)
	require.Equal(t, 5, col.NumColors())
}

func TestSolveOlemskoy_AcceptsLiveContext(t *testing.T) {
	g := buildFromEdges(scenarios[0].n, scenarios[0].edges)
	col, err := coloring.SolveOlemskoy(g, 0, context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, scenarios[0].wantChi, col.NumColors())
}

// TestSolverAgreement_AllScenarios cross-checks that both exact solvers
// report the same chromatic number on every concrete scenario.
func TestSolverAgreement_AllScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g := buildFromEdges(sc.n, sc.edges)
			d, err := coloring.SolveDSaturBnB(g, 0, nil, nil)
			require.NoError(t, err)
			o, err := coloring.SolveOlemskoy(g, 0, nil, nil)
			require.NoError(t, err)
			require.Equal(t, d.NumColors(), o.NumColors(), "solver disagreement")
		})
	}
}
