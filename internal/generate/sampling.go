// Package generate draws token sequences from a trigram language model.
//
// This package implements categorical sampling over probability vectors
// and the token-by-token generation loop built on top of it.
package generate

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SamplingConfig configures how a token is drawn from a distribution.
type SamplingConfig struct {
	// Temperature reshapes the distribution as p^(1/T). 0 = greedy, 1 = unchanged.
	// The zero value is therefore greedy.
	Temperature float64

	// TopK limits sampling to the K most probable tokens. 0 = disabled.
	TopK int

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultSamplingConfig returns plain categorical sampling with a random seed.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Temperature: 1.0,
		TopK:        0,
		Seed:        -1,
	}
}

// Sampler draws indices from categorical distributions.
//
// A Sampler owns its random source and is not safe for concurrent use.
type Sampler struct {
	config SamplingConfig
	rng    *rand.Rand
}

// NewSampler creates a new sampler with the given configuration.
func NewSampler(config SamplingConfig) *Sampler {
	var rng *rand.Rand
	if config.Seed >= 0 {
		rng = rand.New(rand.NewSource(config.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // User requested random seed
	}

	return &Sampler{
		config: config,
		rng:    rng,
	}
}

// Config returns the sampler configuration.
func (s *Sampler) Config() SamplingConfig {
	return s.config
}

// Sample returns an index drawn from probs.
//
// probs need not be normalized but must be non-negative. The draw
// inverts the cumulative distribution by binary search, which selects
// index i with probability probs[i] / sum(probs), exactly like a linear
// scan. An all-zero vector yields the last index; an empty one yields -1.
// A temperature that is not a finite positive number falls back to
// greedy selection.
func (s *Sampler) Sample(probs []float64) int {
	if len(probs) == 0 {
		return -1
	}

	// Greedy decoding (temperature = 0)
	if t := s.config.Temperature; t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return argmax(probs)
	}

	weights := append([]float64(nil), probs...)

	if s.config.Temperature != 1.0 {
		inv := 1 / s.config.Temperature
		for i, p := range weights {
			if p > 0 {
				weights[i] = math.Pow(p, inv)
			}
		}
	}

	if s.config.TopK > 0 && s.config.TopK < len(weights) {
		topKFilter(weights, s.config.TopK)
	}

	return s.draw(weights)
}

// draw inverts the cumulative distribution of weights.
func (s *Sampler) draw(weights []float64) int {
	cdf := floats.CumSum(make([]float64, len(weights)), weights)
	total := cdf[len(cdf)-1]
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return argmax(weights)
	}
	if total <= 0 {
		return len(weights) - 1
	}

	r := s.rng.Float64() * total
	// First index whose cumulative mass exceeds r; zero-weight entries
	// never satisfy this strictly.
	idx := sort.Search(len(cdf), func(i int) bool { return cdf[i] > r })
	if idx == len(cdf) {
		// Rounding pushed r to the total.
		idx = len(cdf) - 1
	}
	return idx
}

// argmax returns the index of the maximum value, lowest index on ties.
func argmax(probs []float64) int {
	maxIdx := 0
	maxVal := probs[0]
	for i, v := range probs[1:] {
		if v > maxVal {
			maxVal = v
			maxIdx = i + 1
		}
	}
	return maxIdx
}

// topKFilter zeroes every weight below the k-th largest in place.
func topKFilter(weights []float64, k int) {
	sorted := append([]float64(nil), weights...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	threshold := sorted[k-1]

	for i := range weights {
		if weights[i] < threshold {
			weights[i] = 0
		}
	}
}
