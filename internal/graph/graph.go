// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph materializes resolved citation edges into an undirected
// graph and distills it to the most central core of its largest
// connected component.
//
// The graph is an explicit adjacency structure (node table plus
// neighbor sets keyed by CanonicalID) rather than a general-purpose
// graph library, so the component and centrality passes stay auditable
// and their tie-breaks deterministic.
package graph

import (
	"sort"

	"github.com/pdiddy/citegraph/pkg/types"
)

// Node is a graph node carrying a stringified snapshot of its paper's
// descriptive fields. Label stays -1 until distillation relabels the
// surviving nodes; it never replaces the CanonicalID key.
type Node struct {
	ID          types.CanonicalID `json:"canonical_id" yaml:"canonical_id"`
	Label       types.NodeLabel   `json:"label" yaml:"label"`
	Title       string            `json:"title" yaml:"title"`
	UID         string            `json:"uid" yaml:"uid"`
	DOI         string            `json:"doi" yaml:"doi"`
	Abstract    string            `json:"abstract" yaml:"abstract"`
	PublishTime string            `json:"publish_time" yaml:"publish_time"`
	Authors     string            `json:"authors" yaml:"authors"`
	Journal     string            `json:"journal" yaml:"journal"`
	URL         string            `json:"url" yaml:"url"`
}

// Graph is an undirected, unweighted graph keyed by CanonicalID.
// Duplicate edges collapse into a single structural edge; self-loops
// are allowed.
type Graph struct {
	nodes map[types.CanonicalID]*Node
	adj   map[types.CanonicalID]map[types.CanonicalID]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[types.CanonicalID]*Node),
		adj:   make(map[types.CanonicalID]map[types.CanonicalID]struct{}),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of structural edges; a self-loop counts once.
func (g *Graph) EdgeCount() int {
	count := 0
	for id, neighbors := range g.adj {
		for other := range neighbors {
			if other >= id {
				count++
			}
		}
	}
	return count
}

// Node returns the node for id, or nil.
func (g *Graph) Node(id types.CanonicalID) *Node { return g.nodes[id] }

// NodeIDs returns all node ids in ascending order. Every iteration over
// the node set goes through this, keeping component enumeration,
// relabeling, and serialization deterministic.
func (g *Graph) NodeIDs() []types.CanonicalID {
	ids := make([]types.CanonicalID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Neighbors returns id's neighbors in ascending order.
func (g *Graph) Neighbors(id types.CanonicalID) []types.CanonicalID {
	neighbors := make([]types.CanonicalID, 0, len(g.adj[id]))
	for other := range g.adj[id] {
		neighbors = append(neighbors, other)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// Degree returns the number of distinct neighbors of id; a self-loop
// contributes one.
func (g *Graph) Degree(id types.CanonicalID) int { return len(g.adj[id]) }

// HasEdge reports whether an edge exists between a and b.
func (g *Graph) HasEdge(a, b types.CanonicalID) bool {
	_, ok := g.adj[a][b]
	return ok
}

// addNode inserts n if no node with its id exists yet.
func (g *Graph) addNode(n *Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = n
	g.adj[n.ID] = make(map[types.CanonicalID]struct{})
}

// addEdge links two existing nodes. Idempotent for duplicates and self-loops.
func (g *Graph) addEdge(a, b types.CanonicalID) {
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// induce returns the subgraph on the given node set: the nodes themselves
// plus every edge with both endpoints in the set.
func (g *Graph) induce(keep map[types.CanonicalID]bool) *Graph {
	sub := New()
	for id, n := range g.nodes {
		if keep[id] {
			sub.addNode(n)
		}
	}
	for id := range sub.nodes {
		for other := range g.adj[id] {
			if keep[other] {
				sub.addEdge(id, other)
			}
		}
	}
	return sub
}

// Builder consumes the edge stream, creating nodes lazily from the record
// set. Records never referenced by any edge never become nodes.
type Builder struct {
	g       *Graph
	records []types.PaperRecord
}

// NewBuilder wraps the title-sorted record set; a CanonicalID indexes
// directly into it.
func NewBuilder(records []types.PaperRecord) *Builder {
	return &Builder{g: New(), records: records}
}

// Add inserts one edge, materializing either endpoint's node on first
// sight. Duplicate edges and self-loops change nothing on re-insertion.
func (b *Builder) Add(e types.Edge) {
	b.ensure(e.From)
	b.ensure(e.To)
	b.g.addEdge(e.From, e.To)
}

func (b *Builder) ensure(id types.CanonicalID) {
	if b.g.Node(id) != nil {
		return
	}
	rec := b.records[id]
	b.g.addNode(&Node{
		ID:          id,
		Label:       -1,
		Title:       rec.Title,
		UID:         rec.UID,
		DOI:         rec.DOI,
		Abstract:    rec.Abstract,
		PublishTime: rec.PublishTime,
		Authors:     rec.Authors,
		Journal:     rec.Journal,
		URL:         rec.URL,
	})
}

// Graph returns the built graph.
func (b *Builder) Graph() *Graph { return b.g }
