package bdzhash

import (
	"fmt"
	"io"

	"github.com/dchest/siphash"
)

// moduleSalt is folded into every SipHasher key as the low 64 bits (k0),
// keeping this tool's hash family distinct from any other SipHash user
// that might share a process. It has no secrecy requirement: the BDZ
// construction only needs the three words to behave as independent
// uniform hashes, not as a MAC.
const moduleSalt uint64 = 0xB17E5A1E0FACADE0

// wordTweak distinguishes the three words derived from one key: each word
// uses a different low key, so Hash(key) under a fixed seed produces three
// hashes that are independent draws rather than copies of each other.
var wordTweak = [3]uint64{
	0x0000000000000000,
	0x9E3779B97F4A7C15, // golden-ratio constant, odd and far from 0/2^63
	0xC2B2AE3D27D4EB4F,
}

// SipHasher is the default Hasher, backed by SipHash-2-4. The seed for
// attempt n is the key pair (moduleSalt, n); each of the three output
// words additionally XORs a fixed tweak into moduleSalt, so one SipHash
// key family covers all three words without re-seeding.
//
// Seed strategy: attempt n's words are SipHash-2-4(k0 =
// moduleSalt^wordTweak[i], k1 = n, key). Incrementing n on every retry
// yields independent samples because SipHash diffuses the key thoroughly
// across outputs.
type SipHasher struct {
	n uint64
}

// NewSipHasher returns a SipHasher at attempt 0.
func NewSipHasher() *SipHasher {
	return &SipHasher{}
}

// Seed resets the hasher to attempt n.
func (s *SipHasher) Seed(n uint64) {
	s.n = n
}

// Hash returns the three SipHash words for key under the current attempt.
func (s *SipHasher) Hash(key []byte) (h0, h1, h2 uint32) {
	h0 = uint32(siphash.Hash(moduleSalt^wordTweak[0], s.n, key))
	h1 = uint32(siphash.Hash(moduleSalt^wordTweak[1], s.n, key))
	h2 = uint32(siphash.Hash(moduleSalt^wordTweak[2], s.n, key))
	return h0, h1, h2
}

// Imports reports the import this Hasher's emitted code needs.
func (s *SipHasher) Imports() []string {
	return []string{"github.com/dchest/siphash"}
}

// EmitInline writes the Go computation of the three hash words, baking in
// the current attempt's seed as literal constants so the emitted function
// needs no reference to this package at runtime.
func (s *SipHasher) EmitInline(w io.Writer, indent, keyExpr, lenExpr, outVar string) error {
	_ = lenExpr // SipHash takes a byte slice directly; length is implicit.
	for i, tweak := range wordTweak {
		k0 := moduleSalt ^ tweak
		if _, err := fmt.Fprintf(w,
			"%s%s[%d] = uint32(siphash.Hash(0x%016x, 0x%016x, %s))\n",
			indent, outVar, i, k0, s.n, keyExpr); err != nil {
			return err
		}
	}
	return nil
}
