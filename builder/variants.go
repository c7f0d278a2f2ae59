// Package builder defines internal types and data for complex graph variants
// such as hexagram patterns and Platonic solids. These definitions are not
// exposed publicly but drive the implementations in impl_hexagram.go and
// variants_platonic.go.
package builder

// chord represents an unordered connection between two vertices in a variant
// topology, given as zero-based indices over the shell/ring being built.
type chord struct {
	U int
	V int
}

// Hexagram variant data (HexagramVariant, hexRingSize, hexChords) lives in
// impl_hexagram.go. Platonic solid data (PlatonicName, platonicVertexCounts,
// platonicEdgeSets) lives in variants_platonic.go.
