// Package coloring - DSATUR branch-and-bound exact solver.
//
// Grounded on tsp/bb.go's bbEngine idiom: an explicit engine struct owns
// all mutable search state (never closures capturing loop variables), a
// staged constructor seeds the engine before the recursive search begins,
// and the recursion itself is a plain method with prune-then-branch
// structure and explicit undo on backtrack. The forbid-count / saturation
// bookkeeping follows spec.md §4.3 exactly.
package coloring

import "context"

// dsaturEngine owns the mutable state of one DSATUR branch-and-bound run.
// Never shared across goroutines; one engine per solve call.
type dsaturEngine struct {
	g *AdjacencyGraph
	n int

	color []int // color[v] = assigned color, or -1 if uncolored
	sat   []int // sat[v] = distinct colors among colored neighbors of v

	// forbidCnt is a flattened n*ub table: forbidCnt[v*ub+c] counts colored
	// neighbors of v currently using color c. Flattened per tsp/bb.go's
	// convention of avoiding [][]int allocation churn in the hot path.
	forbidCnt []int
	ub        int // capacity of the forbid table's color dimension

	maxUsed int // (max assigned color on the current path) + 1

	bestK        int
	bestColoring []int

	ctx      context.Context
	steps    uint64
	aborted  bool
}

// SolveDSaturBnB returns the exact minimum coloring of g via DSATUR
// branch-and-bound. initialUB seeds best_k if positive; otherwise the
// engine seeds from GreedyColoring per spec.md §4.3/§9 (Upper-bound
// seeding is a design choice, not required for correctness).
//
// Errors:
//   - ErrAborted if ctx is non-nil and is done before the search certifies
//     a minimum; partialOut, if non-nil, receives the best coloring found
//     so far (which is proper but not certified minimum).
//
// Complexity: worst case exponential in n; bounded in practice by UB
// pruning and the saturation-based lower bound.
func SolveDSaturBnB(g *AdjacencyGraph, initialUB int, ctx context.Context, partialOut *Coloring) (Coloring, error) {
	n := g.N()
	if n == 0 {
		return Coloring{Colors: nil}, nil
	}

	greedy := GreedyColoring(g)
	ub := initialUB
	if ub <= 0 {
		ub = greedy.NumColors()
	}

	e := &dsaturEngine{
		g:            g,
		n:            n,
		color:        make([]int, n),
		sat:          make([]int, n),
		forbidCnt:    make([]int, n*ub),
		ub:           ub,
		maxUsed:      0,
		bestK:        ub,
		bestColoring: append([]int(nil), greedy.Colors...),
		ctx:          ctx,
	}
	for v := range e.color {
		e.color[v] = -1
	}

	e.dfs(0)

	if e.aborted {
		if partialOut != nil && e.bestColoring != nil {
			*partialOut = Coloring{Colors: append([]int(nil), e.bestColoring...)}
		}

		return Coloring{}, ErrAborted
	}

	return Coloring{Colors: append([]int(nil), e.bestColoring...)}, nil
}

// deadlineCheck polls e.ctx at a sparse cadence (every 4096 recursion
// entries), matching tsp/bb.go's deadlineCheck cost/latency tradeoff.
func (e *dsaturEngine) deadlineCheck() bool {
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

// forbidIdx returns the flattened forbidCnt index for vertex v, color c.
func (e *dsaturEngine) forbidIdx(v, c int) int { return v*e.ub + c }

// dfs implements one recursion node per spec.md §4.3, invoked with k, the
// count of currently-colored vertices.
func (e *dsaturEngine) dfs(k int) {
	if e.deadlineCheck() {
		return
	}

	// Step 1: lower bound.
	lb := e.maxUsed
	maxSat := 0
	for v := 0; v < e.n; v++ {
		if e.color[v] == -1 && e.sat[v]+1 > maxSat {
			maxSat = e.sat[v] + 1
		}
	}
	if maxSat > lb {
		lb = maxSat
	}
	if lb >= e.bestK {
		return
	}

	// Step 2: leaf.
	if k == e.n {
		e.bestK = e.maxUsed
		e.bestColoring = append([]int(nil), e.color...)

		return
	}

	// Step 3: vertex selection - max sat, tie by max degree, tie by min index.
	best := -1
	for v := 0; v < e.n; v++ {
		if e.color[v] != -1 {
			continue
		}
		if best == -1 {
			best = v

			continue
		}
		if e.sat[v] > e.sat[best] ||
			(e.sat[v] == e.sat[best] && e.g.Degree(v) > e.g.Degree(best)) {
			best = v
		}
	}
	v := best

	// Step 4: branch over existing colors.
	for c := 0; c < e.maxUsed; c++ {
		if e.forbidCnt[e.forbidIdx(v, c)] != 0 {
			continue
		}
		e.assign(v, c)
		e.dfs(k + 1)
		e.unassign(v, c)
		if e.aborted {
			return
		}
	}

	// Step 5: branch over a new color.
	if e.maxUsed+1 < e.bestK && e.maxUsed < e.ub {
		c := e.maxUsed
		e.maxUsed++
		e.assign(v, c)
		e.dfs(k + 1)
		e.unassign(v, c)
		e.maxUsed--
		if e.aborted {
			return
		}
	}
}

// assign commits color[v]=c and updates forbidCnt/sat for v's uncolored
// neighbors, per spec.md §4.3 step 4/5's neighbor-update rule.
func (e *dsaturEngine) assign(v, c int) {
	e.color[v] = c
	e.g.Neighbors(v).Iterate(func(u int) bool {
		if e.color[u] != -1 {
			return true
		}
		idx := e.forbidIdx(u, c)
		e.forbidCnt[idx]++
		if e.forbidCnt[idx] == 1 {
			e.sat[u]++
		}

		return true
	})
}

// unassign reverses assign, restoring the state exactly as it was before
// the corresponding assign call (mutable-rollback discipline per
// spec.md §9's design notes).
func (e *dsaturEngine) unassign(v, c int) {
	e.g.Neighbors(v).Iterate(func(u int) bool {
		if e.color[u] != -1 {
			return true
		}
		idx := e.forbidIdx(u, c)
		e.forbidCnt[idx]--
		if e.forbidCnt[idx] == 0 {
			e.sat[u]--
		}

		return true
	})
	e.color[v] = -1
}
