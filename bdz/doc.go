// Package bdz drives the BDZ minimal perfect hash construction: it wires
// the hash primitive, hypergraph builder, peeler, labeler, rank index
// builder and code emitter into a single rejection-sampling loop and
// exposes it as Generate.
//
// A construction attempt fails at the hypergraph level (a degenerate edge
// or an unpeelable graph) with some fixed probability for any seed; both
// are expected, recoverable outcomes that Generate handles by reseeding
// the hash primitive and retrying, up to a configurable attempt cap.
package bdz
