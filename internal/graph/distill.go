// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"container/heap"
	"errors"

	"github.com/pdiddy/citegraph/pkg/types"
)

// ErrEmptyGraph is returned when no edges were ever produced, leaving
// the distiller nothing to operate on. Callers must surface this rather
// than emit an empty result.
var ErrEmptyGraph = errors.New("citation graph is empty: no record had a resolvable citation")

// Result holds the distilled graph and reduction statistics.
type Result struct {
	// Graph is the final node-induced subgraph with Labels assigned.
	Graph *Graph

	// Components is the number of connected components in the input.
	Components int

	// ComponentSize is the node count of the largest component before
	// the top-K cut.
	ComponentSize int
}

// Distill reduces g in five ordered steps: select the largest connected
// component, induce on it, rank its nodes by PageRank, keep the top
// cfg.TopK, and induce again with fresh sequential labels.
//
// Ties are broken deterministically: a component-size tie goes to the
// component containing the lowest CanonicalID, and a score tie at the
// rank cutoff keeps the lower CanonicalID. Labels are assigned in
// ascending CanonicalID order over the surviving node set.
func Distill(g *Graph, cfg types.DistillConfig) (Result, error) {
	if g.NodeCount() == 0 {
		return Result{}, ErrEmptyGraph
	}

	comp, count := g.largestComponent()
	core := g.induce(comp)

	rank := core.pagerank(cfg.Damping, cfg.Tolerance)
	keep := topK(rank, cfg.TopK)
	final := core.induce(keep)

	label := types.NodeLabel(0)
	for _, id := range final.NodeIDs() {
		final.nodes[id].Label = label
		label++
	}

	return Result{Graph: final, Components: count, ComponentSize: len(comp)}, nil
}

// ranked pairs a node with its centrality score for heap ordering.
type ranked struct {
	id    types.CanonicalID
	score float64
}

// rankedHeap is a min-heap on (score, then higher id first), so the root
// is always the weakest currently-selected node and a boundary tie
// evicts the higher CanonicalID.
type rankedHeap []ranked

func (h rankedHeap) Len() int { return len(h) }
func (h rankedHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].id > h[j].id
}
func (h rankedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *rankedHeap) Push(x any)   { *h = append(*h, x.(ranked)) }
func (h *rankedHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK selects the k highest-scoring nodes by partial selection over a
// bounded min-heap; no full sort of the score table is performed. With
// k at or above the node count everything is kept.
func topK(rank map[types.CanonicalID]float64, k int) map[types.CanonicalID]bool {
	keep := make(map[types.CanonicalID]bool, k)
	if len(rank) <= k {
		for id := range rank {
			keep[id] = true
		}
		return keep
	}

	h := make(rankedHeap, 0, k)
	heap.Init(&h)
	for id, score := range rank {
		entry := ranked{id: id, score: score}
		if len(h) < k {
			heap.Push(&h, entry)
			continue
		}
		// Replace the root when the candidate outranks it; equal score
		// with a lower id also wins, keeping the cutoff deterministic.
		if entry.score > h[0].score || (entry.score == h[0].score && entry.id < h[0].id) {
			h[0] = entry
			heap.Fix(&h, 0)
		}
	}

	for _, entry := range h {
		keep[entry.id] = true
	}
	return keep
}
