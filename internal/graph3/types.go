package graph3

import "errors"

// ErrDegenerateEdge indicates a key hashed to an edge whose three vertices
// were not pairwise distinct. This is an attempt-level failure: the caller
// should reseed and retry, not treat it as fatal.
var ErrDegenerateEdge = errors.New("graph3: degenerate edge (vertices not pairwise distinct)")

// ErrNotPeelable indicates Peel's elimination loop terminated with edges
// still remaining: the hypergraph contains a 3-cycle and cannot back a
// BDZ hash under this seed. This is an attempt-level failure.
var ErrNotPeelable = errors.New("graph3: hypergraph is not peelable")

// Edge is an ordered triple of vertex indices in [0, V). The three
// vertices must be pairwise distinct.
type Edge struct {
	Left, Middle, Right uint32
}

// vertices returns the edge's three endpoints as an array, convenient for
// range loops that must touch all three uniformly.
func (e Edge) vertices() [3]uint32 {
	return [3]uint32{e.Left, e.Middle, e.Right}
}

// Graph is a 3-uniform hypergraph over E edges and V vertices, built once
// per construction attempt and peeled at most once.
//
// Edges is indexed by edge ID 0..E. Order, once Peel succeeds, lists edge
// IDs in the order they were peeled off (the order the labeler must walk
// in reverse).
type Graph struct {
	V uint32
	E uint32

	Edges []Edge

	// Order is populated by Peel on success; nil until then.
	Order []uint32
}

// New allocates a Graph sized for v vertices and e edges. Edges are zero
// until Hash populates them.
func New(v, e uint32) *Graph {
	return &Graph{
		V:     v,
		E:     e,
		Edges: make([]Edge, e),
	}
}
