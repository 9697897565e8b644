// Package generate provides sequence sampling from a trigram model.
//
// This package wraps the internal generate implementations and provides
// a clean public API for generation tasks.
//
// Components:
//   - Sampler: categorical sampling (greedy, top-k, temperature)
//   - SequenceSampler: token-by-token generation from a model and vocabulary
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/trigram/generate"
//	)
//
//	config := generate.SamplingConfig{
//	    Temperature: 1.0,
//	    Seed:        42,
//	}
//	sampler := generate.NewSequenceSampler(model, vocab, config)
//
//	seq, err := sampler.GenerateSequence([]string{"the"}, generate.DefaultGenerateConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(seq) // <p> (0) <p> (0) the (3) cat (5) ... </p> (1)
package generate

import (
	"github.com/born-ml/trigram/internal/generate"
	"github.com/born-ml/trigram/internal/lm"
	"github.com/born-ml/trigram/internal/parallel"
	"github.com/born-ml/trigram/internal/tokenizer"
)

// Stop reasons.
const (
	ReasonEOS       = generate.ReasonEOS
	ReasonMaxTokens = generate.ReasonMaxTokens
)

// ErrEmptyModel is returned when the model has no tokens to sample.
var ErrEmptyModel = generate.ErrEmptyModel

// ErrModelChanged is returned when the model was refitted mid-draw.
var ErrModelChanged = generate.ErrModelChanged

// Sampling Configuration

// SamplingConfig configures how a token is drawn.
//
// Parameters:
//   - Temperature: reshapes probabilities as p^(1/T) (0 = greedy, 1 = unchanged)
//   - TopK: limits sampling to the K most probable tokens (0 = disabled)
//   - Seed: random seed for reproducibility (-1 = random)
//
// The zero value has Temperature 0 and therefore decodes greedily:
// SamplingConfig{Seed: 42} always picks the most probable token. Set
// Temperature to 1, or start from DefaultSamplingConfig, for weighted
// sampling.
type SamplingConfig = generate.SamplingConfig

// DefaultSamplingConfig returns plain categorical sampling with a random seed.
func DefaultSamplingConfig() SamplingConfig {
	return generate.DefaultSamplingConfig()
}

// Sampler

// Sampler draws indices from categorical distributions.
type Sampler = generate.Sampler

// NewSampler creates a new sampler with the given configuration.
func NewSampler(config SamplingConfig) *Sampler {
	return generate.NewSampler(config)
}

// Generation

// GenerateConfig configures sequence generation.
//
//nolint:revive // GenerateConfig is clearer than Config
type GenerateConfig = generate.GenerateConfig

// DefaultGenerateConfig returns MaxLength 200.
func DefaultGenerateConfig() GenerateConfig {
	return generate.DefaultGenerateConfig()
}

// GenerateResult is a single result from streaming generation.
//
//nolint:revive // GenerateResult is clearer than Result
type GenerateResult = generate.GenerateResult

// Sequence is a generated id sequence with its rendering.
type Sequence = generate.Sequence

// SequenceSampler generates sequences from a model and vocabulary.
type SequenceSampler = generate.SequenceSampler

// SamplerOption configures a SequenceSampler.
type SamplerOption = generate.SamplerOption

// ParallelConfig controls how vocabulary scans are split across goroutines.
type ParallelConfig = parallel.Config

// WithParallel sets how each vocabulary scan is split across goroutines.
func WithParallel(cfg ParallelConfig) SamplerOption {
	return generate.WithParallel(cfg)
}

// NewSequenceSampler creates a sampler over a fitted model and vocabulary.
func NewSequenceSampler(
	model *lm.Model,
	vocab *tokenizer.Vocabulary,
	samplingConfig SamplingConfig,
	opts ...SamplerOption,
) *SequenceSampler {
	return generate.NewSequenceSampler(model, vocab, samplingConfig, opts...)
}
