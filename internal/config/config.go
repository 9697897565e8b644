// Package config loads the YAML configuration of the trigram CLI.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/born-ml/trigram/internal/tokenizer"
	"gopkg.in/yaml.v3"
)

// Config is the top-level CLI configuration.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Model      ModelConfig      `yaml:"model"`
	Sampling   SamplingConfig   `yaml:"sampling"`
	Log        LogConfig        `yaml:"log"`
}

// CorpusConfig selects the corpus file and how lines are split into tokens.
type CorpusConfig struct {
	Path      string `yaml:"path"`
	Splitter  string `yaml:"splitter"`  // "whitespace" or "tiktoken"
	Encoding  string `yaml:"encoding"`  // tiktoken encoding name
	Lowercase bool   `yaml:"lowercase"` // whitespace splitter only
}

// VocabularyConfig caps the vocabulary; 0 means unbounded.
type VocabularyConfig struct {
	MaxSize int `yaml:"max_size"`
}

// ModelConfig holds the add-k smoothing constant.
type ModelConfig struct {
	K float64 `yaml:"k"`
}

// SamplingConfig mirrors generate.SamplingConfig plus the length bound.
type SamplingConfig struct {
	Temperature float64 `yaml:"temperature"`
	TopK        int     `yaml:"top_k"`
	Seed        int64   `yaml:"seed"`
	MaxLength   int     `yaml:"max_length"`
}

// LogConfig sets the zap log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Splitter: tokenizer.SplitterWhitespace,
		},
		Vocabulary: VocabularyConfig{MaxSize: tokenizer.Unbounded},
		Model:      ModelConfig{K: 0},
		Sampling: SamplingConfig{
			Temperature: 1.0,
			Seed:        -1,
			MaxLength:   200,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	//nolint:gosec // Reading a user-specified config path is intentional.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. The corpus path is checked by the command
// that needs it.
func (c *Config) Validate() error {
	var errs []error

	if c.Vocabulary.MaxSize != tokenizer.Unbounded && c.Vocabulary.MaxSize < 3 {
		errs = append(errs, fmt.Errorf("vocabulary.max_size: %w", tokenizer.ErrInvalidSize))
	}
	if c.Model.K < 0 || math.IsNaN(c.Model.K) || math.IsInf(c.Model.K, 0) {
		errs = append(errs, fmt.Errorf("model.k must be finite and non-negative, got %v", c.Model.K))
	}
	if t := c.Sampling.Temperature; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		errs = append(errs, fmt.Errorf("sampling.temperature must be finite and non-negative, got %v", t))
	}
	if c.Sampling.TopK < 0 {
		errs = append(errs, fmt.Errorf("sampling.top_k must be non-negative, got %d", c.Sampling.TopK))
	}
	if c.Sampling.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("sampling.max_length must be non-negative, got %d", c.Sampling.MaxLength))
	}
	switch c.Corpus.Splitter {
	case "", tokenizer.SplitterWhitespace, tokenizer.SplitterTikToken:
	default:
		errs = append(errs, fmt.Errorf("corpus.splitter: %w: %q", tokenizer.ErrUnknownSplitter, c.Corpus.Splitter))
	}

	return errors.Join(errs...)
}
