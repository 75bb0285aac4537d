// Package rank builds the multi-level hole-count summary that lets the
// emitted lookup function fold a winning vertex index into a dense
// output rank in O(1).
//
// Four parallel arrays summarize cumulative hole counts at successive
// granularities — every 65536 vertices, every 256, and three offsets
// within each 256-block (64, 128, 192) — so a query needs at most one
// lookup per level plus a popcount over one (occasionally two) 32-bit
// words of the label array to account for holes between the nearest
// summarized boundary and the query index itself.
package rank
