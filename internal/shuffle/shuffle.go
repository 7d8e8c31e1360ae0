package shuffle

import (
	"math/rand"
)

// Source yields integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type systemSource struct{}

func (systemSource) Intn(n int) int {
	return rand.Intn(n)
}

// System returns the process-wide source. It is seeded randomly at start
// and safe for concurrent use.
func System() Source {
	return systemSource{}
}

// Seeded returns a deterministic source. It must not be shared between
// goroutines.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// FromSeed returns Seeded(seed), or System() when seed is 0.
func FromSeed(seed int64) Source {
	if seed == 0 {
		return System()
	}
	return Seeded(seed)
}

// Shuffle permutes n elements uniformly with Fisher-Yates, calling swap
// for every exchange.
func Shuffle(src Source, n int, swap func(i, j int)) {
	if src == nil {
		src = System()
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Sequence returns 1..n in order.
func Sequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// Order returns a random permutation of 1..n.
func Order(src Source, n int) []int {
	seq := Sequence(n)
	Shuffle(src, n, func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}
