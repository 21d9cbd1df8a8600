package bmssp

import (
	"math"

	"github.com/katalvlaran/bmssp/blocklist"
)

// Solve computes single-source shortest paths from source over a graph of
// n nodes described by adj (adj[u] lists u's outgoing edges), returning a
// length-n distance vector where unreachable nodes hold +Inf.
//
// adj must have exactly n entries and every edge weight must be >= 0;
// source must be in [0, n). Violating either returns an error instead of a
// partial result.
func Solve(n int, adj [][]Edge, source int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidNodeCount
	}
	if len(adj) != n {
		return nil, ErrAdjacencyLength
	}
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	for _, edges := range adj {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := newGraph(adj)
	ds := newDistances(n, source)

	k, t, l := parameters(n)
	r := &recursion{g: g, ds: ds, k: k, t: t, tracer: cfg.tracer}

	r.tracer.Event("solve_start", F("n", n), F("source", source), F("k", k), F("t", t), F("l", l))
	r.bmsspBounded(l, posInf, []int{source})
	r.tracer.Event("solve_done")

	return ds.snapshot(), nil
}

// parameters derives the algorithm's shape from logn := log2(n):
// k ~ logn^(1/3) bounds pivot-expansion depth, t ~ logn^(2/3) scales the
// per-level BlockList width 2^(t(l-1)), and l = ceil(logn/t) is the
// recursion depth.
func parameters(n int) (k, t, l int) {
	logn := 1.0
	if n > 2 {
		logn = math.Log2(float64(n))
	}
	k = maxInt(2, int(math.Cbrt(logn)))
	t = maxInt(1, int(math.Pow(logn, 2.0/3.0)))
	l = int(math.Ceil(logn / float64(t)))
	return k, t, l
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// recursion bundles the state threaded through bmsspBounded's call tree: the
// read-only graph, the shared mutable distance vector, the algorithm's two
// derived parameters, and the observability hook.
type recursion struct {
	g      *graph
	ds     *distances
	k, t   int
	tracer Tracer
}

// bmsspBounded orchestrates one recursion level: it calls the pivot
// finder, drives a per-frame BlockList, and recurses for l-1 over each
// pulled chunk, returning a bound and the set of nodes proven complete
// below it.
func (r *recursion) bmsspBounded(l int, B float64, frontier []int) (float64, []int) {
	r.tracer.Event("level_enter", F("l", l), F("B", B), F("frontier_size", len(frontier)))
	bound, u := r.bmsspBoundedInner(l, B, frontier)
	r.tracer.Event("level_exit", F("l", l), F("bound", bound), F("u_size", len(u)))
	return bound, u
}

func (r *recursion) bmsspBoundedInner(l int, B float64, frontier []int) (float64, []int) {
	if l == 0 {
		// The base case is always entered with a singleton frontier: at
		// l==1, M = 2^(t*(l-1)) = 1, so every Pull this frame performs
		// returns exactly one element. Only frontier[0] is ever consulted.
		return base(r.g, r.ds, B, frontier[0], r.k)
	}

	pivots, visited := findPivots(r.g, r.ds, B, frontier, r.k)
	r.tracer.Event("pivots_found", F("l", l), F("count", len(pivots)), F("visited", len(visited)))

	m := 1 << uint(r.t*(l-1))
	bl, err := blocklist.New(m, B)
	if err != nil {
		// m = 2^(t*(l-1)) is always >= 1 by construction; New only rejects
		// m < 1, which cannot happen here.
		panic(err)
	}

	minUB := B
	for _, p := range pivots {
		d := r.ds.get(p)
		bl.Insert(p, d)
		if d < minUB {
			minUB = d
		}
	}

	var u []int
	maxU := r.k * (1 << uint(r.t*l))

	for len(u) < maxU && !bl.IsEmpty() {
		pulled, b := bl.Pull()
		r.tracer.Event("pull", F("l", l), F("size", len(pulled)), F("bound", b))
		s := make([]int, len(pulled))
		for i, e := range pulled {
			s[i] = e.Node
		}

		boundPrime, uPrime := r.bmsspBounded(l-1, b, s)
		minUB = boundPrime

		var toPrepend []blocklist.Element
		for _, uu := range uPrime {
			u = append(u, uu)
			for _, e := range r.g.edges(uu) {
				d := r.ds.get(uu) + e.Weight
				if d <= r.ds.get(e.To) {
					r.ds.relax(e.To, d)
					switch {
					case d >= b && d < B:
						bl.Insert(e.To, d)
					case d >= boundPrime && d < b:
						toPrepend = append(toPrepend, blocklist.Element{Node: e.To, Dist: d})
					}
				}
			}
		}
		if len(toPrepend) > 0 {
			r.tracer.Event("batch_prepend", F("l", l), F("size", len(toPrepend)))
		}
		bl.BatchPrepend(toPrepend)
	}

	for _, v := range visited {
		if r.ds.get(v) < minUB {
			u = append(u, v)
		}
	}

	return minUB, u
}
