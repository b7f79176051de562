// Package lvlath is an in-memory graph library for Go, specialized around
// exact graph-coloring.
//
//	A thread-safe, low-dependency library bringing together:
//
//	  • Core primitives: create vertices & edges, mutate safely under locks
//	  • Matrix views: adjacency matrices for dense algorithms
//	  • Exact coloring: DSATUR branch-and-bound and Olemskoy pair-expansion
//	    solvers for the chromatic number
//
// Under the hood, everything is organized under subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/   — adjacency matrix representations + converters
//	builder/  — fluent graph construction helpers
//	coloring/ — exact chromatic-number solvers (DSATUR, Olemskoy) and
//	            their shared coloring/graph-loading infrastructure
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for the
// coloring package's full specification.
//
//	go get github.com/katalvlaran/lvlath
package lvlath
