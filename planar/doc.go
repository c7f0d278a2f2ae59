// Package planar implements the left-right planarity test: a linear-time
// decision procedure, after Brandes's reformulation of Hopcroft-Tarjan, for
// whether a finite simple undirected graph admits a crossing-free embedding
// in the plane.
//
// The public surface is a single pure predicate, Planar, over the minimal
// Graph interface defined in this package. Callers holding a *core.Graph use
// FromCore to adapt it. The predicate performs no I/O, takes no context, and
// owns no state beyond a single call: every table it builds is scoped to one
// connected component and discarded before the next is examined.
//
// Internally the work happens in two depth-first traversals per component:
// orient (phase 1) turns the component into a palm tree and annotates every
// oriented edge with lowpt/lowpt2/nesting depth, and the phase-2 routines in
// lrtest.go walk the palm tree again maintaining a stack of conflict pairs,
// rejecting as soon as a merge is infeasible.
package planar
