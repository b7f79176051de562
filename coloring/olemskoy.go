// Package coloring - Olemskoy pair-expansion exact solver.
//
// Grounded on original_source's olemskoyAlgorithm/OlemskoyColorGraph.cpp
// (the block-by-block recursive construction) generalized to Go per
// tsp/bb.go's recursive-dfs-with-undo idiom: level state lives on the Go
// call stack itself (parameters + local clones), not in an explicit
// managed stack, matching how bbEngine.dfs recurses directly rather than
// pushing/popping a stack slice.
//
// Resolves spec.md §9's open questions exactly as stated there: 0-based
// Omega indices; check B as spec.md §4.5 states it; a block closes with
// its chosen pairs once the support set empties (no Psi\Z tail is added,
// since every vertex left in Psi is adjacent to a chosen endpoint), and
// when no pair remains each remaining vertex is tried in turn as the
// block's single last member; and lower_bound_chi is tracked but never
// short-circuits the outer search.
// The source's watched_first_blocks cache is intentionally omitted, per
// spec.md §9's note that it is unused in at least one source variant.
package coloring

import "context"

// olemskoyEngine owns the mutable state of one Olemskoy run. Never shared
// across goroutines; one engine per solve call.
type olemskoyEngine struct {
	g *AdjacencyGraph
	n int

	used  []bool // used[v]: committed to an already-closed block
	color []int  // color[v] = block index on the current path, -1 if none

	bestK         int
	bestColoring  []int
	lowerBoundChi int // tracked per spec.md §4.5 check B; never short-circuits

	ctx     context.Context
	steps   uint64
	aborted bool
}

// SolveOlemskoy returns the exact minimum coloring of g via the Olemskoy
// pair-expansion enumerator. initialUB seeds best_k if positive; per
// spec.md §4.5, worst-case best_k = n is also correct, merely slower.
//
// Errors:
//   - ErrAborted if ctx is non-nil and is done before the search certifies
//     a minimum; partialOut, if non-nil, receives the best coloring found
//     so far.
func SolveOlemskoy(g *AdjacencyGraph, initialUB int, ctx context.Context, partialOut *Coloring) (Coloring, error) {
	n := g.N()
	if n == 0 {
		return Coloring{Colors: nil}, nil
	}

	greedy := GreedyColoring(g)
	ub := initialUB
	if ub <= 0 {
		ub = greedy.NumColors()
	}

	e := &olemskoyEngine{
		g:             g,
		n:             n,
		used:          make([]bool, n),
		color:         make([]int, n),
		bestK:         ub,
		bestColoring:  append([]int(nil), greedy.Colors...),
		lowerBoundChi: 1,
		ctx:           ctx,
	}
	for v := range e.color {
		e.color[v] = -1
	}

	e.searchBlocks(0)

	if e.aborted {
		if partialOut != nil && e.bestColoring != nil {
			*partialOut = Coloring{Colors: append([]int(nil), e.bestColoring...)}
		}

		return Coloring{}, ErrAborted
	}

	return Coloring{Colors: append([]int(nil), e.bestColoring...)}, nil
}

// deadlineCheck mirrors dsaturEngine.deadlineCheck's sparse-cadence poll.
func (e *olemskoyEngine) deadlineCheck() bool {
	if e.aborted {
		return true
	}
	e.steps++
	if e.ctx == nil || (e.steps&4095) != 0 {
		return false
	}
	select {
	case <-e.ctx.Done():
		e.aborted = true

		return true
	default:
		return false
	}
}

// searchBlocks is the top-level loop of spec.md §4.5: either all vertices
// are already assigned (a complete coloring with j blocks, a candidate to
// improve best_k), or a fresh block j is opened over the uncolored
// remainder.
func (e *olemskoyEngine) searchBlocks(j int) {
	if e.deadlineCheck() {
		return
	}

	allUsed := true
	for v := 0; v < e.n; v++ {
		if !e.used[v] {
			allUsed = false

			break
		}
	}
	if allUsed {
		// bestColoring starts as the greedy witness (as in dsaturEngine), so
		// a search that never beats the UB still returns that coloring; a
		// complete partition replaces it only on strict improvement.
		if e.bestColoring == nil || j < e.bestK {
			e.bestK = j
			e.bestColoring = append([]int(nil), e.color...)
		}

		return
	}

	omega0 := NewBitset(e.n)
	for v := 0; v < e.n; v++ {
		if !e.used[v] {
			omega0.Set(v)
		}
	}
	e.buildBlock(j, 0, nil, omega0)
}

// closeBlock commits block as color class j, recurses into the next
// block, then undoes the commitment on return (mutable-rollback
// discipline shared with dsaturEngine).
func (e *olemskoyEngine) closeBlock(j int, block []int) {
	for _, v := range block {
		e.used[v] = true
		e.color[v] = j
	}
	e.searchBlocks(j + 1)
	for _, v := range block {
		e.used[v] = false
		e.color[v] = -1
	}
}

// buildBlock implements spec.md §4.5's build_block(j, s, block, Omega).
// block holds the vertices already committed to block j along the
// current path (owned by the caller; buildBlock never mutates it in
// place, only appends to fresh copies).
func (e *olemskoyEngine) buildBlock(j, s int, block []int, omega Bitset) {
	if e.deadlineCheck() || e.aborted {
		return
	}

	pairs := EnumeratePairs(e.g, omega)

	if len(pairs) == 0 {
		// No non-adjacent pair remains in omega, so omega is itself a
		// clique: every two of its vertices are adjacent, and a color
		// class is an independent set, so at most one of them can join
		// block j. Branch over each candidate as block j's sole
		// addition in turn, per original_source's buildEndByCenter;
		// the rest stay uncolored and fall into omega0 on the next
		// call to searchBlocks.
		remaining := omega.Slice()
		if len(remaining) == 0 {
			e.closeBlock(j, block)

			return
		}
		for _, v := range remaining {
			e.closeBlock(j, append(append([]int(nil), block...), v))
			if e.aborted {
				return
			}
		}

		return
	}

	rho := pairs[0].D.Count()
	if rho < 1 {
		rho = 1
	}

	// Check A (j >= 1): even filling every remaining block optimally
	// cannot beat the current best.
	if j >= 1 {
		if j+omega.Count()/rho > e.bestK {
			return
		}
	}

	// Check B (j = 0): the first block is too small to be consistent with
	// the current UB on chi.
	if j == 0 {
		potential := 2*s + rho
		if potential <= e.n/e.bestK {
			return
		}
		lb := (e.n + rho - 1) / rho // ceil(n/rho)
		if lb < e.lowerBoundChi {
			e.lowerBoundChi = lb
		}
	}

	// Check C (j + 2 = best_k): this branch can only match, not beat, UB.
	if j+2 == e.bestK {
		if 2*s+rho == omega.Count() {
			return
		}
	}

	for _, p := range pairs {
		newOmega := omega.Clone()
		newOmega.AndNot(e.g.Neighbors(p.I))
		newOmega.AndNot(e.g.Neighbors(p.J))
		newOmega.Clear(p.I)
		newOmega.Clear(p.J)

		newBlock := append(append([]int(nil), block...), p.I, p.J)

		if newOmega.Empty() {
			e.closeBlock(j, newBlock)
		} else {
			e.buildBlock(j, s+1, newBlock, newOmega)
		}

		if e.aborted {
			return
		}
	}
}

// thinningTail implements spec.md §4.5's Psi\Z rule: Psi is omega with the
// just-chosen pair removed; Z is the subset of Psi that still appears as
// an endpoint of some candidate pair whose D exactly equals Psi (i.e. a
// pair that could still host it). buildBlock does not call it: when a
// block closes, every vertex of Psi is adjacent to i or j, so adding
// Psi\Z to the block would break independence.
func thinningTail(omega Bitset, pairs []pairTriple, i, j int) []int {
	psi := omega.Clone()
	psi.Clear(i)
	psi.Clear(j)

	z := NewBitset(psi.Len())
	for _, p := range pairs {
		if bitsetEqual(p.D, psi) {
			z.Set(p.I)
			z.Set(p.J)
		}
	}
	psi.AndNot(z)

	return psi.Slice()
}

// bitsetEqual reports whether a and b have identical membership.
// Complexity: O(n/64).
func bitsetEqual(a, b Bitset) bool {
	if a.Len() != b.Len() {
		return false
	}
	diff := a.Clone()
	diff.AndNot(b)
	if !diff.Empty() {
		return false
	}
	diff = b.Clone()
	diff.AndNot(a)

	return diff.Empty()
}
