package bdzhash

import "io"

// Hasher is the contract for a seedable family of hash functions that
// produce three 32-bit words per key, plus the ability to emit its own
// computation as inline Go source for the generated lookup function.
//
// Seed must be called once before any Hash calls for a given attempt.
// Hash must be pure with respect to the most recent Seed call: the same
// key always yields the same three words until Seed is called again.
type Hasher interface {
	// Seed resets the hasher to attempt number n (0-based). Successive
	// attempts must be independent samples for rejection sampling to
	// converge; see the concrete type's docs for the exact scheme.
	Seed(n uint64)

	// Hash returns three 32-bit words derived from key under the most
	// recent Seed.
	Hash(key []byte) (h0, h1, h2 uint32)

	// EmitInline writes Go source computing the same three words into w,
	// assigning them to outVar[0], outVar[1], outVar[2]. keyExpr and
	// lenExpr are the Go expressions for the key bytes and their length
	// in the generated function; indent is prefixed to every emitted
	// line. The emitted code must bake in the current seed as constants,
	// so it reproduces Hash's output for any key without re-seeding.
	EmitInline(w io.Writer, indent, keyExpr, lenExpr, outVar string) error

	// Imports lists the import paths the emitted EmitInline code needs.
	Imports() []string
}
