package lm

import "errors"

// Common errors.
var (
	// ErrUnseenContext is the division-by-zero case: the context total is
	// zero and there is no smoothing mass to fall back on, either because
	// k = 0 or because the model knows no tokens.
	ErrUnseenContext = errors.New("zero denominator: context never observed and no smoothing mass")
	ErrInvalidK      = errors.New("smoothing constant must be finite and non-negative")
	ErrEmptyCorpus   = errors.New("no tokens to score")
)
