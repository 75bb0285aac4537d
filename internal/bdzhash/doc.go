// Package bdzhash defines the hash primitive contract used by the BDZ
// hypergraph builder and provides a SipHash-backed default
// implementation.
//
// A Hasher is seeded once per construction attempt and evaluated once per
// key, producing three 32-bit words that must behave as independent
// uniform hashes of the key under that seed. Hasher also knows how to emit
// its own computation as Go source, so the generated lookup function can
// reproduce the same three words without importing this package's
// construction-time machinery.
package bdzhash
