package planar

import (
	"github.com/go-planarity/lrplanar/bfs"
	"github.com/go-planarity/lrplanar/core"
)

// coreGraph adapts a *core.Graph to the Graph interface. Vertex ids are
// assigned 0..n-1 in core.Graph.Vertices()'s already-deterministic
// lexicographic order.
type coreGraph struct {
	directed bool
	ids      []int
	edges    []Edge
}

// FromCore builds the Graph view of g used by Planar. It is a snapshot: a
// later mutation of g is not reflected in the returned Graph.
//
// Vertex indices come from core.Graph.VertexIndex, the same dense
// lexicographic order Vertices() guarantees. Edges come from
// core.Graph.SimpleEdgeIndexPairs over that index, which drops self-loops
// and collapses parallel/anti-parallel edges before Planar ever sees
// them — planarity does not depend on either, so FromCore enforces the
// "simple graph" precondition itself rather than trusting the caller's g.
func FromCore(g *core.Graph) Graph {
	_, index := g.VertexIndex()
	pairs := g.SimpleEdgeIndexPairs(index)

	ids := make([]int, len(index))
	for i := range ids {
		ids[i] = i
	}

	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{Source: p[0], Target: p[1]}
	}

	return &coreGraph{directed: g.Directed(), ids: ids, edges: edges}
}

func (c *coreGraph) VertexCount() int { return len(c.ids) }
func (c *coreGraph) EdgeCount() int   { return len(c.edges) }
func (c *coreGraph) Directed() bool   { return c.directed }
func (c *coreGraph) VertexIDs() []int { return c.ids }
func (c *coreGraph) EdgeList() []Edge { return c.edges }

// ComponentSizes reports the vertex count of every connected component of
// g, using breadth-first discovery over the same simple-graph projection
// FromCore hands to Planar (loops and parallel edges never change
// connectivity, but computing sizes on the exact topology the predicate
// reasoned about keeps the two diagnostics honest about what they
// describe). It is independent of Planar's own internal component
// enumeration, which needs dense int-indexed adjacency regardless of
// discovery order and so does not, by itself, reuse the string-keyed bfs
// package — cmd/planarcheck uses ComponentSizes to report component
// statistics alongside the planarity verdict.
func ComponentSizes(g *core.Graph) ([]int, error) {
	set, err := bfs.Components(g.Simplify())
	if err != nil {
		return nil, err
	}

	sizes := make([]int, len(set.Components))
	for i, comp := range set.Components {
		sizes[i] = len(comp)
	}
	return sizes, nil
}
