// Package lrplanar is a graph toolkit built around one question: does a
// graph embed in the plane without crossing edges?
//
// The predicate lives in planar, implemented as a linear-time left-right
// planarity test after Brandes's reformulation of Hopcroft-Tarjan. core
// supplies the thread-safe Graph/Vertex/Edge primitives the rest of the
// module is built on; builder constructs graph fixtures (complete graphs,
// random graphs, platonic solids, and more) for testing against the
// predicate; bfs provides traversal diagnostics used to report per-component
// statistics alongside a verdict.
//
// The cmd/planarcheck command wraps planar.Planar in a CLI: it reads an
// edge list from a file or stdin, runs the test under an optional deadline,
// and reports the result as text or JSON.
//
//	go get github.com/go-planarity/lrplanar
package lrplanar
