// Package graph3 builds and peels random 3-uniform hypergraphs, the two
// steps of the BDZ algorithm that turn a random key set into a proof the
// construction can succeed.
//
// A Graph has V vertices and E edges, each edge a triple of distinct
// vertex indices in [0, V). Peel computes an elimination order that proves
// the graph acyclic by repeatedly removing a degree-1 vertex together with
// its unique incident edge, using an XOR-linked adjacency summary so each
// removal is O(1): for every vertex, the XOR of incident edge indices
// reveals the sole remaining edge once degree drops to one.
//
// Complexity: O(V + E) to build the adjacency summary, O(V + E) to peel.
package graph3
