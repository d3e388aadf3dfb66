// Package randutil derives reproducible random sources for sampling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a PCG generator whose two 64-bit seeds are both derived from
// seed, so a single --seed value reproduces a whole run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed when set, otherwise a value derived from now.
func Seed(seed *int64, now time.Time) int64 {
	if seed != nil {
		return *seed
	}
	return now.UnixNano()
}

// Split derives n independent generators from rng, one per worker. The same
// parent state always yields the same children.
func Split(rng *rand.Rand, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = New(rng.Int64())
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
