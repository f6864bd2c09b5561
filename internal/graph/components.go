// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "github.com/pdiddy/citegraph/pkg/types"

// components returns the connected components as node-id sets. Components
// are discovered by BFS seeded in ascending CanonicalID order, so their
// enumeration order is stable across runs.
func (g *Graph) components() []map[types.CanonicalID]bool {
	visited := make(map[types.CanonicalID]bool, len(g.nodes))
	var comps []map[types.CanonicalID]bool

	for _, seed := range g.NodeIDs() {
		if visited[seed] {
			continue
		}
		comp := map[types.CanonicalID]bool{seed: true}
		visited[seed] = true
		queue := []types.CanonicalID{seed}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for other := range g.adj[id] {
				if !visited[other] {
					visited[other] = true
					comp[other] = true
					queue = append(queue, other)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// largestComponent selects the component with the most nodes. Because
// components are enumerated in ascending seed order, a size tie resolves
// to the component containing the lowest CanonicalID.
func (g *Graph) largestComponent() (map[types.CanonicalID]bool, int) {
	comps := g.components()
	var largest map[types.CanonicalID]bool
	for _, comp := range comps {
		if len(comp) > len(largest) {
			largest = comp
		}
	}
	return largest, len(comps)
}
