// Package coloring - unified dispatcher and cross-check coordinator.
//
// Grounded on tsp/solve.go's two-entry-point shape: SolveWithGraph builds
// the domain-specific structure from a *core.Graph and delegates to
// SolveWithMatrix, which validates and routes. Here there is no algorithm
// choice to route on in the single-solver case (Which only matters when
// SkipCrossCheck is set); the Coordinator's real job, per spec.md §4.7,
// is running both solvers and asserting agreement.
package coloring

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
)

// SolveWithGraph converts g into a square 0/1 adjacency matrix and
// delegates to SolveWithMatrix. Edge weights and direction are ignored:
// coloring only cares about the presence of an edge.
//
// Errors: ErrInvalidGraph if g is nil; otherwise errors from BuildGraph /
// SolveWithMatrix.
//
// Complexity: O(V^2 + E) to build the matrix, then per Solve.
func SolveWithGraph(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrInvalidGraph
	}

	mopts := matrix.NewMatrixOptions(
		matrix.WithUndirected(),
		matrix.WithUnweighted(),
		matrix.WithDisallowLoops(),
		matrix.WithAllowMulti(),
	)
	am, err := matrix.NewAdjacencyMatrix(g, mopts)
	if err != nil {
		return Result{}, err
	}

	return SolveWithMatrix(am.Mat, opts)
}

// SolveWithMatrix builds an AdjacencyGraph from mat and runs Solve.
//
// Errors: errors from BuildGraph / Solve.
func SolveWithMatrix(mat matrix.Matrix, opts Options) (Result, error) {
	g, err := BuildGraph(mat)
	if err != nil {
		return Result{}, err
	}

	return Solve(g, opts)
}

// Solve is the Coordinator of spec.md §4.7: it runs DSaturBnBSolver and
// OlemskoySolver on the same AdjacencyGraph, asserts they report the same
// chromatic number, and surfaces the witnessed coloring. If
// opts.SkipCrossCheck is true, only opts.Which runs and Result.Agreement
// is always false (no cross-check occurred — not itself an error).
//
// Errors:
//   - ErrSolverDisagreement if both solvers ran and reported different
//     chromatic numbers (a correctness bug indicator, never a normal
//     runtime outcome).
//   - ErrAborted if opts.Ctx cancels a running solver before it certifies
//     a minimum; opts.PartialOut, if non-nil, receives the best coloring
//     found by whichever solver was running at cancellation.
func Solve(g *AdjacencyGraph, opts Options) (Result, error) {
	if g.N() == 0 {
		return Result{Coloring: Coloring{Colors: nil}, ChromaticNumber: 0, Agreement: !opts.SkipCrossCheck}, nil
	}

	if opts.SkipCrossCheck {
		var (
			c   Coloring
			err error
		)
		switch opts.Which {
		case Olemskoy:
			c, err = SolveOlemskoy(g, opts.InitialUB, opts.Ctx, opts.PartialOut)
		default:
			c, err = SolveDSaturBnB(g, opts.InitialUB, opts.Ctx, opts.PartialOut)
		}
		if err != nil {
			return Result{}, err
		}

		return Result{Coloring: c, ChromaticNumber: c.NumColors(), Agreement: false}, nil
	}

	dsaturColoring, err := SolveDSaturBnB(g, opts.InitialUB, opts.Ctx, opts.PartialOut)
	if err != nil {
		return Result{}, err
	}

	olemskoyColoring, err := SolveOlemskoy(g, opts.InitialUB, opts.Ctx, opts.PartialOut)
	if err != nil {
		return Result{}, err
	}

	dChi := dsaturColoring.NumColors()
	oChi := olemskoyColoring.NumColors()
	if dChi != oChi {
		return Result{}, ErrSolverDisagreement
	}

	return Result{Coloring: dsaturColoring, ChromaticNumber: dChi, Agreement: true}, nil
}
