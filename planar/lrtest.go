package planar

// runPhase2 walks the oriented adjacency (already sorted by nestingDepth)
// from start, maintaining the conflict-pair stack. It reports false as soon
// as a merge proves the component non-planar.
func (c *component) runPhase2(start int) bool {
	visited := make([]bool, c.n)
	if c.n > maxRecursionDepth {
		return c.dfs2Explicit(start, visited)
	}
	return c.dfs2(start, noEdge, visited)
}

// dfs2 is the LR Tester's second traversal over vertex v, reached via
// parentEdgeToV (noEdge at the root).
func (c *component) dfs2(v int, parentEdgeToV edgeID, visited []bool) bool {
	visited[v] = true

	edges := c.adjOriented[v]
	first := edgeID(noEdge)
	if len(edges) > 0 {
		first = edges[0]
	}

	for _, ei := range edges {
		c.stackBottom[ei] = len(c.s)
		w := c.edges[ei].target

		if c.edges[ei].isTree {
			if !visited[w] {
				if !c.dfs2(w, ei, visited) {
					return false
				}
			}
		} else {
			c.lowptEdge[ei] = ei
			c.s = append(c.s, conflictPair{L: interval{noEdge, noEdge}, R: interval{ei, ei}})
		}

		if !c.integrateReturn(v, parentEdgeToV, first, ei) {
			return false
		}
	}

	if parentEdgeToV != noEdge {
		c.closeVertex(v, parentEdgeToV)
	}
	return true
}

// integrateReturn implements the "if lowpt[e_i] < height[v]" step shared by
// the recursive and explicit-stack traversals: either e_i is the first
// outgoing edge (inherit lowpt_edge) or it must be merged via addConstraints.
func (c *component) integrateReturn(v int, parentEdgeToV, first, ei edgeID) bool {
	if c.lowpt[ei] >= c.height[v] || parentEdgeToV == noEdge {
		return true
	}
	if ei == first {
		c.lowptEdge[parentEdgeToV] = c.lowptEdge[ei]
		return true
	}
	return c.addConstraints(ei, parentEdgeToV)
}

// closeVertex runs the post-loop step for a non-root vertex v reached via
// parentEdgeToV: trim back edges terminating at parent(v), then assign
// parentEdgeToV's ref from the top conflict pair if it still returns above
// the parent.
func (c *component) closeVertex(v int, parentEdgeToV edgeID) {
	u := c.edges[parentEdgeToV].source
	c.trimBackEdges(u)

	if c.lowpt[parentEdgeToV] >= c.height[u] {
		return
	}
	if len(c.s) == 0 {
		// S empty despite a return above the parent: ref[parentEdgeToV] is
		// left unset. Benign for the yes/no decision (see design notes).
		return
	}

	top := c.s[len(c.s)-1]
	hl, hr := top.L.high, top.R.high

	refEdge := hr
	if hl != noEdge && (hr == noEdge || c.lowpt[hl] > c.lowpt[hr]) {
		refEdge = hl
	}
	if refEdge != noEdge {
		c.ref[parentEdgeToV] = refEdge
	}
}

// dfs2Frame holds one in-progress dfs2 call for the explicit-stack variant.
type dfs2Frame struct {
	v             int
	parentEdgeToV edgeID
	edges         []edgeID
	i             int
	first         edgeID
	pendingEdge   edgeID // edge awaiting integrateReturn once its child frame returns
}

func newDfs2Frame(c *component, v int, parentEdgeToV edgeID) *dfs2Frame {
	edges := c.adjOriented[v]
	first := edgeID(noEdge)
	if len(edges) > 0 {
		first = edges[0]
	}
	return &dfs2Frame{v: v, parentEdgeToV: parentEdgeToV, edges: edges, first: first, pendingEdge: noEdge}
}

// dfs2Explicit is the iterative equivalent of dfs2.
func (c *component) dfs2Explicit(start int, visited []bool) bool {
	visited[start] = true
	stack := []*dfs2Frame{newDfs2Frame(c, start, noEdge)}

	for len(stack) > 0 {
		f := stack[len(stack)-1]

		if f.pendingEdge != noEdge {
			ei := f.pendingEdge
			f.pendingEdge = noEdge
			if !c.integrateReturn(f.v, f.parentEdgeToV, f.first, ei) {
				return false
			}
			continue
		}

		if f.i >= len(f.edges) {
			if f.parentEdgeToV != noEdge {
				c.closeVertex(f.v, f.parentEdgeToV)
			}
			stack = stack[:len(stack)-1]
			continue
		}

		ei := f.edges[f.i]
		f.i++
		c.stackBottom[ei] = len(c.s)
		w := c.edges[ei].target

		if c.edges[ei].isTree {
			if !visited[w] {
				visited[w] = true
				f.pendingEdge = ei
				stack = append(stack, newDfs2Frame(c, w, ei))
				continue
			}
			if !c.integrateReturn(f.v, f.parentEdgeToV, f.first, ei) {
				return false
			}
		} else {
			c.lowptEdge[ei] = ei
			c.s = append(c.s, conflictPair{L: interval{noEdge, noEdge}, R: interval{ei, ei}})
			if !c.integrateReturn(f.v, f.parentEdgeToV, f.first, ei) {
				return false
			}
		}
	}
	return true
}

// conflicting reports whether interval i conflicts with edge b: i is
// non-empty and its high endpoint returns strictly above b.
func (c *component) conflicting(i interval, b edgeID) bool {
	if i.isEmpty() || b == noEdge {
		return false
	}
	return c.lowpt[i.high] > c.lowpt[b]
}

// addConstraints merges the return edges of ei, and any conflicting
// preceding siblings, into a new conflict pair pushed onto S. It reports
// false the moment a merge proves the component non-planar.
func (c *component) addConstraints(ei, e edgeID) bool {
	pNew := conflictPair{L: interval{noEdge, noEdge}, R: interval{noEdge, noEdge}}
	bottomEi := c.stackBottom[ei]

	// Step A: merge ei's own return edges, all on one side, into pNew.R.
	for len(c.s) > bottomEi {
		q := c.s[len(c.s)-1]
		c.s = c.s[:len(c.s)-1]

		if !q.L.isEmpty() {
			if q.R.isEmpty() {
				q.L, q.R = q.R, q.L
			} else {
				return false // two non-empty intervals from one subtree
			}
		}

		if !q.R.isEmpty() {
			if c.lowpt[q.R.low] > c.lowpt[e] {
				if pNew.R.isEmpty() {
					pNew.R = q.R
				} else {
					c.ref[pNew.R.low] = q.R.high
					c.side[pNew.R.low] = 1
					pNew.R.low = q.R.low
				}
			} else {
				c.ref[q.R.low] = c.lowptEdge[e]
				c.side[q.R.low] = 1
			}
		}
	}

	// Step B: merge conflicting pairs of preceding siblings (e_1..e_{i-1}).
	b := c.lowptEdge[ei]
	bottomE := c.stackBottom[e]
	for len(c.s) > bottomE {
		top := c.s[len(c.s)-1]
		if !c.conflicting(top.L, b) && !c.conflicting(top.R, b) {
			break
		}
		q := c.s[len(c.s)-1]
		c.s = c.s[:len(c.s)-1]

		if c.conflicting(q.R, b) {
			if c.conflicting(q.L, b) {
				return false
			}
			q.L, q.R = q.R, q.L
			if q.L.low != noEdge {
				c.side[q.L.low] = -c.side[q.L.low]
			}
		}

		if !q.R.isEmpty() {
			if pNew.R.isEmpty() {
				pNew.R = q.R
			} else {
				c.ref[pNew.R.low] = q.R.high
				c.side[pNew.R.low] = 1
				pNew.R.low = q.R.low
			}
		}
		if !q.L.isEmpty() {
			if pNew.L.isEmpty() {
				pNew.L = q.L
			} else {
				c.ref[pNew.L.low] = q.L.high
				c.side[pNew.L.low] = 1
				pNew.L.low = q.L.low
			}
		}
	}

	if !pNew.isEmpty() {
		c.s = append(c.s, pNew)
	}
	return true
}

// trimBackEdges drops or truncates stack entries whose back edges
// terminate at u, the parent of the vertex whose loop just finished.
func (c *component) trimBackEdges(u int) {
	h := c.height[u]

	for len(c.s) > 0 && c.lowestReturn(c.s[len(c.s)-1]) == h {
		p := c.s[len(c.s)-1]
		c.s = c.s[:len(c.s)-1]
		if p.L.low != noEdge {
			c.side[p.L.low] = -1
		}
	}
	if len(c.s) == 0 {
		return
	}

	p := &c.s[len(c.s)-1]

	for p.L.high != noEdge && c.lowpt[p.L.high] == h {
		p.L.high = c.ref[p.L.high]
	}
	if p.L.high == noEdge && p.L.low != noEdge {
		if p.R.low != noEdge {
			c.ref[p.L.low] = p.R.low
			c.side[p.L.low] = -1
		}
		p.L.low = noEdge
	}

	for p.R.high != noEdge && c.lowpt[p.R.high] == h {
		p.R.high = c.ref[p.R.high]
	}
	if p.R.high == noEdge && p.R.low != noEdge {
		if p.L.low != noEdge {
			c.ref[p.R.low] = p.L.low
			c.side[p.R.low] = -1
		}
		p.R.low = noEdge
	}

	if p.isEmpty() {
		c.s = c.s[:len(c.s)-1]
	}
}

// lowestReturn is min(lowpt[P.L.low], lowpt[P.R.low]) over present
// endpoints, or +infinity if both are absent.
func (c *component) lowestReturn(p conflictPair) int {
	const infinity = int(^uint(0) >> 1)
	m := infinity
	if p.L.low != noEdge {
		m = min(m, c.lowpt[p.L.low])
	}
	if p.R.low != noEdge {
		m = min(m, c.lowpt[p.R.low])
	}
	return m
}
