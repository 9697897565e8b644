// Package lm provides the add-k smoothed trigram language model.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/trigram/lm"
//	    "github.com/born-ml/trigram/tokenizer"
//	)
//
//	model, err := lm.NewModel(0.01)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model.Fit(vocab.Transform(docs))
//
//	p, err := model.Probability("sat", []string{"the", "cat"})
//
//	// Same counts, different smoothing; model is unchanged.
//	unsmoothed, _ := model.WithK(0)
package lm

import (
	"github.com/born-ml/trigram/internal/lm"
)

// Errors.
var (
	ErrUnseenContext = lm.ErrUnseenContext
	ErrInvalidK      = lm.ErrInvalidK
	ErrEmptyCorpus   = lm.ErrEmptyCorpus
)

// Context is the pair of tokens preceding a prediction.
type Context = lm.Context

// Model is a fitted trigram model.
type Model = lm.Model

// NewModel creates an unfitted model with smoothing constant k.
//
// k must be finite and non-negative; 0 disables smoothing.
func NewModel(k float64) (*Model, error) {
	return lm.NewModel(k)
}
