package planar

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-planarity/lrplanar/builder"
	"github.com/go-planarity/lrplanar/core"
)

// TestRelabelingInvariance checks that the verdict does not depend on the
// vertex id scheme used to build an otherwise identical graph.
func TestRelabelingInvariance(t *testing.T) {
	decimal, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)

	lettered, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(func(i int) string { return string(rune('A' + i)) }),
	}, builder.Complete(5))
	require.NoError(t, err)

	assert.Equal(t, Planar(FromCore(decimal)), Planar(FromCore(lettered)))
}

// TestSubgraphMonotonicity checks that removing an edge from a planar graph
// keeps it planar (a special case of subgraph monotonicity).
func TestSubgraphMonotonicity(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(8))
	require.NoError(t, err)
	require.True(t, Planar(FromCore(g)))

	edges := g.Edges()
	require.NotEmpty(t, edges)
	require.NoError(t, g.RemoveEdge(edges[0].ID))

	assert.True(t, Planar(FromCore(g)))
}

// TestDisjointUnionClosure checks planar?(G1 u G2) == planar?(G1) && planar?(G2)
// by combining a planar and a non-planar fixture into one disconnected graph.
func TestDisjointUnionClosure(t *testing.T) {
	planarPart, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	nonPlanarPart, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(func(i int) string { return "k" + string(rune('0'+i)) }),
	}, builder.Complete(5))
	require.NoError(t, err)

	union := core.Union(planarPart, nonPlanarPart)

	assert.True(t, Planar(FromCore(planarPart)))
	assert.False(t, Planar(FromCore(nonPlanarPart)))
	assert.False(t, Planar(FromCore(union)))
}

// TestNestingDepthOrdering checks that after phase 1, sorting each vertex's
// oriented adjacency by nesting depth produces a non-decreasing sequence —
// an invariant the LR tester's correctness depends on.
func TestNestingDepthOrdering(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(25, 0.12))
	require.NoError(t, err)

	adj := buildGlobalAdjacency(FromCore(g))
	visited := make([]bool, len(adj))
	for start := range adj {
		if visited[start] {
			continue
		}
		comp := collectComponent(start, adj, visited)
		if len(comp) <= 2 {
			continue
		}
		localOf := make(map[int]int, len(comp))
		for i, gi := range comp {
			localOf[gi] = i
		}
		adjRaw := make([][]int, len(comp))
		for i, gi := range comp {
			for _, nb := range adj[gi] {
				adjRaw[i] = append(adjRaw[i], localOf[nb])
			}
		}
		c := newComponentState(len(comp), adjRaw)
		c.orient(0)
		for v := 0; v < c.n; v++ {
			edges := c.adjOriented[v]
			sort.Slice(edges, func(i, j int) bool {
				return c.nestingDepth[edges[i]] < c.nestingDepth[edges[j]]
			})
			for i := 1; i < len(edges); i++ {
				assert.LessOrEqual(t, c.nestingDepth[edges[i-1]], c.nestingDepth[edges[i]])
			}
		}
	}
}

// TestRandomSparseAgreesWithEulerBound cross-checks the fast Euler-bound
// rejection against the full per-component test on a batch of random graphs
// dense enough to sometimes exceed the bound.
func TestRandomSparseAgreesWithEulerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		n := 5 + rng.Intn(20)
		p := 0.05 + rng.Float64()*0.3
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(rng)}, builder.RandomSparse(n, p))
		require.NoError(t, err)

		m := g.EdgeCount()
		result := Planar(FromCore(g))
		if n > 2 && m > 3*n-6 {
			assert.False(t, result, "n=%d m=%d exceeds Euler bound but was reported planar", n, m)
		}
	}
}
