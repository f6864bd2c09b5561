// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "github.com/pdiddy/citegraph/pkg/types"

// pagerankMaxIter bounds the power iteration; convergence is normally
// reached well before this on citation-sized graphs.
const pagerankMaxIter = 100

// pagerank computes unweighted PageRank over the undirected graph, each
// edge acting as a directed edge in both directions. Iteration stops when
// the L1 change drops below tol or after pagerankMaxIter rounds.
//
// Nodes in this graph always touch at least one edge, so there are no
// dangling nodes; a self-loop still gives its node degree one.
func (g *Graph) pagerank(damping, tol float64) map[types.CanonicalID]float64 {
	n := len(g.nodes)
	if n == 0 {
		return nil
	}

	rank := make(map[types.CanonicalID]float64, n)
	for id := range g.nodes {
		rank[id] = 1.0 / float64(n)
	}

	base := (1.0 - damping) / float64(n)
	for iter := 0; iter < pagerankMaxIter; iter++ {
		next := make(map[types.CanonicalID]float64, n)
		for id := range g.nodes {
			next[id] = base
		}
		for id, neighbors := range g.adj {
			share := damping * rank[id] / float64(len(neighbors))
			for other := range neighbors {
				next[other] += share
			}
		}

		delta := 0.0
		for id, r := range next {
			d := r - rank[id]
			if d < 0 {
				d = -d
			}
			delta += d
		}
		rank = next
		if delta < tol {
			break
		}
	}
	return rank
}
