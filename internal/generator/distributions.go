package generator

import (
	"fmt"
	"math/rand"
)

// WeightedIndex draws category indexes with probability proportional to the
// supplied weights. Construction is pure; draws consume the caller's RNG.
type WeightedIndex struct {
	cumulative []int
	total      int
}

// NewWeightedIndex builds a categorical sampler. An empty or all-zero weight
// vector is a caller bug and fails construction.
func NewWeightedIndex(weights []int) (*WeightedIndex, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("weighted index: empty weight vector")
	}
	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weighted index: negative weight %d at %d", w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("weighted index: all weights are zero")
	}
	return &WeightedIndex{cumulative: cumulative, total: total}, nil
}

// Sample draws one category index.
func (w *WeightedIndex) Sample(rng *rand.Rand) int {
	n := rng.Intn(w.total)
	for i, c := range w.cumulative {
		if n < c {
			return i
		}
	}
	return len(w.cumulative) - 1
}

// Bernoulli draws true with probability p.
type Bernoulli struct {
	p float64
}

// NewBernoulli builds a coin-flip sampler. p outside [0,1] is a caller bug.
func NewBernoulli(p float64) (*Bernoulli, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("bernoulli: probability %v outside [0,1]", p)
	}
	return &Bernoulli{p: p}, nil
}

// Sample draws one outcome.
func (b *Bernoulli) Sample(rng *rand.Rand) bool {
	return rng.Float64() < b.p
}

// pick returns a uniformly drawn element of values. Values must be non-empty;
// callers guard emptiness with a domain-specific precondition error first.
func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

// jitter returns base shifted by a uniform draw in ±(base*scatter).
func jitter(rng *rand.Rand, base, scatter float64) float64 {
	if scatter == 0 {
		return base
	}
	spread := base * scatter
	return base - spread + rng.Float64()*2*spread
}

// shuffled returns a shuffled copy of values.
func shuffled[T any](rng *rand.Rand, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
