package graph

import "math/rand"

// Weight bounds for edges created without an explicit weight.
const (
	MinRandomWeight = 1
	MaxRandomWeight = 20
)

// WeightFunc supplies weights for edges added without an explicit one.
// Implementations need not be safe for concurrent use; a Graph calls
// its weight source only from the goroutine mutating it.
type WeightFunc func() float64

// defaultWeightFunc returns a deterministically seeded source so that
// graphs built without an explicit one are reproducible.
func defaultWeightFunc() WeightFunc {
	return SeededWeightFunc(1)
}

// SeededWeightFunc returns a WeightFunc producing uniform integers in
// [MinRandomWeight, MaxRandomWeight] from the given seed.
func SeededWeightFunc(seed int64) WeightFunc {
	rng := rand.New(rand.NewSource(seed))
	return func() float64 {
		return float64(rng.Intn(MaxRandomWeight-MinRandomWeight+1) + MinRandomWeight)
	}
}
