// Package coloring implements an exact chromatic-number engine: two
// independent exact solvers (DSATUR branch-and-bound and the Olemskoy
// pair-expansion enumerator) over an immutable adjacency structure, plus
// a greedy upper-bound provider, a coloring validator, and a Coordinator
// that cross-checks both solvers and surfaces the witnessed coloring.
//
// Design goals:
//   - Determinism: every tie-break (vertex index, degree, pair order) is
//     fixed; no RNG or wall-clock dependency affects the result, only
//     whether a cooperative deadline aborts the search.
//   - Exactness: both solvers are complete searches, not heuristics; their
//     agreement on χ(G) is part of the contract, not just the test suite.
//   - Zero surprises: Options is a plain struct with documented defaults;
//     Solve does not validate it.
package coloring

import (
	"context"
	"errors"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, solver governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices; call sites that add context wrap with %w instead.
var (
	// ErrInvalidGraph indicates a non-square, non-symmetric, or
	// negative-dimension adjacency matrix at graph construction.
	ErrInvalidGraph = errors.New("coloring: invalid graph")

	// ErrDimensionMismatch indicates a matrix row/col disagreement, or a
	// color vector whose length does not equal the vertex count.
	ErrDimensionMismatch = errors.New("coloring: dimension mismatch")

	// ErrNegativeColor indicates a color-vector entry is negative.
	ErrNegativeColor = errors.New("coloring: negative color entry")
)

// Solver governance sentinels.
var (
	// ErrSolverDisagreement indicates the Coordinator's cross-check found
	// DSaturBnBSolver and OlemskoySolver reporting different χ on the same
	// graph — a correctness bug indicator, never a normal runtime outcome.
	ErrSolverDisagreement = errors.New("coloring: solvers disagree on chromatic number")

	// ErrAborted indicates cooperative cancellation via Options.Ctx before
	// the search could certify a minimum coloring.
	ErrAborted = errors.New("coloring: aborted")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Coloring
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Coloring is a total function V -> color, represented as a dense slice.
// Invariants (once returned by a solver): colors are contiguous starting
// at 0; the number of colors equals max(Colors)+1; for every edge (u,v),
// Colors[u] != Colors[v].
type Coloring struct {
	// Colors holds Colors[v] = assigned color of vertex v, v in [0,n).
	Colors []int
}

// NumColors returns 1+max(Colors), or 0 for an empty coloring (n=0).
// Complexity: O(n).
func (c Coloring) NumColors() int {
	return ChromaticNumber(c.Colors)
}

// Clone returns a deep copy, safe to mutate independently of c.
// Complexity: O(n).
func (c Coloring) Clone() Coloring {
	cp := make([]int, len(c.Colors))
	copy(cp, c.Colors)

	return Coloring{Colors: cp}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// SolverKind — tagged variant for a common entry point (design notes §9)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// SolverKind selects which exact engine Coordinator runs a standalone
// query against. The two solvers share no runtime interface; this tag
// is the single pluggable entry point spec.md's design notes allow for.
type SolverKind int

const (
	// DSaturBnB selects the DSATUR branch-and-bound solver.
	DSaturBnB SolverKind = iota

	// Olemskoy selects the pair-expansion (Olemskoy) solver.
	Olemskoy
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options configures a Coordinator run. Zero value is usable (both
// solvers run, no cross-check skip, no cancellation, no partial-result
// capture) but DefaultOptions documents intent explicitly.
type Options struct {
	// InitialUB optionally seeds best_k (the running upper bound on χ)
	// before either solver starts. Zero or negative means "unseeded":
	// each solver seeds its own UB from UpperBoundProvider.
	InitialUB int

	// SkipCrossCheck, if true, runs only one solver (selected by Which)
	// instead of both. Result.Agreement is then always false, since no
	// cross-check ran; this is the only way Agreement can be false
	// without indicating a bug (disagreement itself is always an error).
	SkipCrossCheck bool

	// Which selects the solver used when SkipCrossCheck is true. Ignored
	// otherwise (the Coordinator always runs both when cross-checking).
	Which SolverKind

	// Ctx enables cooperative cancellation, polled at a sparse cadence by
	// both engines (once every 4096 recursion entries; for Olemskoy these
	// are searchBlocks/buildBlock entries). Nil means no cancellation is
	// possible.
	Ctx context.Context

	// PartialOut, if non-nil, receives the best witnessed coloring so far
	// when a solver returns ErrAborted. It is written before the error is
	// returned; callers that do not want a partial result on abort should
	// leave this nil.
	PartialOut *Coloring
}

// DefaultOptions returns Options with both solvers enabled, no seeded UB,
// no cancellation, and no partial-result capture.
func DefaultOptions() Options {
	return Options{
		InitialUB:      0,
		SkipCrossCheck: false,
		Which:          DSaturBnB,
		Ctx:            nil,
		PartialOut:     nil,
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Result
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Result bundles a Coordinator run's outcome.
type Result struct {
	// Coloring is the witnessed minimum proper coloring.
	Coloring Coloring

	// ChromaticNumber is Coloring.NumColors(), cached for convenience.
	ChromaticNumber int

	// Agreement is true only when both solvers ran (SkipCrossCheck was
	// false) and reported the same chromatic number. It is false when
	// SkipCrossCheck was set; it is never true alongside a disagreement,
	// since disagreement surfaces as ErrSolverDisagreement instead.
	Agreement bool
}
