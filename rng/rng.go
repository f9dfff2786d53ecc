// Package rng provides reproducible random number generation from string seeds.
package rng

import (
	"crypto/md5"
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/exp/rand"
)

// seedModulus bounds the integer seed derived from a seed string. It is
// part of the reproducibility contract: changing it changes the draw
// sequence of every existing seed string.
const seedModulus = 1_000_000

// SeedInt maps a seed string to a bounded integer seed.
//
// The string is hashed with MD5 (language-native string hashing varies
// across runtimes, a cryptographic hash does not), the 128-bit digest is
// read as a base-16 integer, and the result is reduced modulo 10^6. The
// small residue keeps seeds human-readable in traces while remaining
// collision-free for typical seed-string counts.
func SeedInt(seed string) uint64 {
	digest := md5.Sum([]byte(seed))
	n := new(big.Int).SetBytes(digest[:])
	return n.Mod(n, big.NewInt(seedModulus)).Uint64()
}

// NewSource returns a PCG random source seeded from the string via SeedInt.
// Identical seed strings yield identical draw sequences. If verbose is
// true, the seed derivation is traced to stdout (trace only, the draws are
// unaffected).
func NewSource(seed string, verbose bool) rand.Source {
	digest := md5.Sum([]byte(seed))
	n := new(big.Int).SetBytes(digest[:])
	s := n.Mod(n, big.NewInt(seedModulus)).Uint64()
	if verbose {
		fmt.Printf("Seed to md5 hash: %s -> %s -> %d\n",
			seed, hex.EncodeToString(digest[:]), s)
	}
	return rand.NewSource(s)
}

// New returns a generator over NewSource(seed, verbose).
func New(seed string, verbose bool) *rand.Rand {
	return rand.New(NewSource(seed, verbose))
}

// DefaultSource returns a non-reproducible PCG source seeded from OS
// entropy. Each call returns an independent source; callers that need
// reproducible draws should use NewSource instead.
//
// An entropy read failure is unrecoverable and panics.
func DefaultSource() rand.Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("rng: reading OS entropy: %v", err))
	}
	return rand.NewSource(binary.LittleEndian.Uint64(b[:]))
}
