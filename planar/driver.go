package planar

import "sort"

// Planar decides whether g, a finite simple graph, admits a crossing-free
// embedding in the plane. It is a pure function: no I/O, no shared state
// across calls, no cancellation.
//
// Boundary semantics:
//   - n <= 0: true (the empty graph is planar).
//   - g.Directed(): false (directed inputs are rejected).
//   - n <= 4: true unconditionally.
//   - n > 2 and m > 3n-6: false (Euler bound, checked on the whole graph
//     before decomposing into components).
//   - otherwise: the conjunction of the per-component LR test.
func Planar(g Graph) bool {
	n := g.VertexCount()
	if n <= 0 {
		return true
	}
	if g.Directed() {
		return false
	}
	if n <= 4 {
		return true
	}

	m := g.EdgeCount()
	if n > 2 && m > 3*n-6 {
		return false
	}

	adj := buildGlobalAdjacency(g)
	visited := make([]bool, len(adj))
	for start := range adj {
		if visited[start] {
			continue
		}
		comp := collectComponent(start, adj, visited)
		if !checkComponent(comp, adj) {
			return false
		}
	}
	return true
}

// buildGlobalAdjacency assigns every external vertex id a dense index
// 0..n-1 (ordered by sorting VertexIDs, for determinism under relabeling)
// and builds the undirected adjacency list over those indices.
func buildGlobalAdjacency(g Graph) [][]int {
	ids := append([]int(nil), g.VertexIDs()...)
	sort.Ints(ids)

	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	adj := make([][]int, len(ids))
	for _, e := range g.EdgeList() {
		s, t := pos[e.Source], pos[e.Target]
		adj[s] = append(adj[s], t)
		adj[t] = append(adj[t], s)
	}
	return adj
}

// collectComponent runs breadth-first discovery from start over the global
// undirected adjacency, marking every reached vertex visited, and returns
// the component as a list of global indices.
func collectComponent(start int, adj [][]int, visited []bool) []int {
	visited[start] = true
	comp := []int{start}
	queue := []int{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				comp = append(comp, v)
				queue = append(queue, v)
			}
		}
	}
	return comp
}

// checkComponent runs the two-phase LR planarity test on one connected
// component, given as a list of global indices, plus the global adjacency
// to read raw neighbors from. Components of fewer than 3 vertices are
// trivially planar.
func checkComponent(comp []int, globalAdj [][]int) bool {
	nComp := len(comp)
	if nComp <= 2 {
		return true
	}

	localOf := make(map[int]int, nComp)
	for i, g := range comp {
		localOf[g] = i
	}

	adjRaw := make([][]int, nComp)
	for i, g := range comp {
		for _, nb := range globalAdj[g] {
			adjRaw[i] = append(adjRaw[i], localOf[nb])
		}
	}

	c := newComponentState(nComp, adjRaw)
	c.orient(0)

	for v := 0; v < nComp; v++ {
		edges := c.adjOriented[v]
		sort.Slice(edges, func(i, j int) bool {
			return c.nestingDepth[edges[i]] < c.nestingDepth[edges[j]]
		})
	}

	return c.runPhase2(0)
}
