package engine

import (
	"hash/fnv"
	"math/rand"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// mirroring tsp/rng.go's defaultRNGSeed policy so Options{Seed: 0} still
// yields a reproducible, non-degenerate stream.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand: seed==0 maps to
// defaultRNGSeed, any other seed is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// fmix64 is the MurmurHash3 64-bit finalizer: three xor-shift/multiply
// rounds that avalanche every input bit across the whole output word.
// Used here instead of a SplitMix64 finalizer so two callers deriving
// seeds for unrelated purposes (a generic stream vs. a
// container/combination stream) never land on the same bit-mixing
// schedule.
func fmix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed by folding the identifier through fmix64 before combining
// it with the parent, so independent substreams (such as one per
// combination) never correlate even for adjacent stream ids.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(fmix64(uint64(parent) ^ fmix64(stream)))
}

// DeriveRNG creates an independent deterministic RNG stream from a base
// RNG and a stream identifier. If base is nil, defaultRNGSeed is used as
// the parent.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// DeriveContainerSeed folds a container's content identifier and the
// index of the inventory combination currently under search into a base
// seed, so that two combinations tried against the same container (or
// the same combination index tried against two different containers)
// never draw from correlated RNG streams even though both start from
// the same Options.Seed. The outer combination loop (fccsolver.Solve's
// runCombinations) calls this once per combination before handing
// Options to the engine.
func DeriveContainerSeed(seed int64, containerCID string, combinationIndex int) int64 {
	h := fnv.New64a()
	h.Write([]byte(containerCID))
	cidMix := h.Sum64()
	return DeriveSeed(seed, cidMix^uint64(combinationIndex))
}

// ShuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a
// using rng. If rng is nil, a deterministic default stream is used.
func ShuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// PermRange returns a permutation of 0..n-1 generated deterministically
// from rng.
func PermRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ShuffleIntsInPlace(p, rng)
	return p
}
