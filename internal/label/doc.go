// Package label assigns each hypergraph vertex a 2-bit label in {0,1,2},
// plus a sentinel value 3 for vertices no edge ever claims (a "hole").
//
// Assign walks the peeling order built by graph3.Peel in reverse. For
// each edge, the vertex that was degree-1 at the moment it was peeled is
// the edge's "winning" vertex; its label is chosen so the three labels of
// the edge sum to that vertex's position (0, 1 or 2) modulo 3. This is
// the invariant the emitted lookup function exploits: given any edge's
// three (already-known) labels, their sum mod 3 names which of the three
// hash words is the authoritative vertex index.
package label
