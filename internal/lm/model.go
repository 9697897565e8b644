// Package lm implements a trigram language model with add-k smoothing.
//
// The model counts how often each token follows every two-token context
// in a corpus and turns the counts into a conditional distribution:
//
//	P(w | u, v) = (c(u, v, w) + k) / (c(u, v) + k*V)
//
// where V is the number of distinct tokens seen during training. With
// k = 0 the estimate is the unsmoothed relative frequency, which is
// undefined for contexts never observed in training.
//
// Documents are expected to be padded by Vocabulary.Transform (two start
// symbols, one end symbol) before fitting or scoring.
package lm

import (
	"math"
	"sort"

	"github.com/born-ml/trigram/internal/parallel"
)

// Context is the pair of tokens preceding a prediction: {w-2, w-1}.
type Context [2]string

// Model is a fitted trigram model.
//
// Counts are written once by Fit. A Model is an immutable snapshot
// afterwards: WithK returns a new snapshot that shares the counts, so any
// number of goroutines may query a fitted Model.
type Model struct {
	k float64

	counts        map[Context]map[string]int // context -> next token -> count
	contextTotals map[Context]int            // context -> sum of counts[context]

	tokens   []string // distinct training tokens, first-seen order
	tokenSet map[string]struct{}
}

// NewModel creates an unfitted model with smoothing constant k.
//
// k must be finite and non-negative; k = 0 disables smoothing.
func NewModel(k float64) (*Model, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	return &Model{
		k:             k,
		counts:        make(map[Context]map[string]int),
		contextTotals: make(map[Context]int),
		tokenSet:      make(map[string]struct{}),
	}, nil
}

func validateK(k float64) error {
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return ErrInvalidK
	}
	return nil
}

// Fit counts trigrams over corpus and returns the receiver.
//
// The context window restarts at every document, so no trigram spans two
// documents; a document shorter than three tokens only adds to the token
// set. Fit replaces any previous counts and must not run concurrently
// with queries.
func (m *Model) Fit(corpus [][]string) *Model {
	m.counts = make(map[Context]map[string]int)
	m.contextTotals = make(map[Context]int)
	m.tokens = nil
	m.tokenSet = make(map[string]struct{})

	for _, doc := range corpus {
		for i, tok := range doc {
			if _, ok := m.tokenSet[tok]; !ok {
				m.tokenSet[tok] = struct{}{}
				m.tokens = append(m.tokens, tok)
			}
			if i < 2 {
				continue
			}

			ctx := Context{doc[i-2], doc[i-1]}
			next, ok := m.counts[ctx]
			if !ok {
				next = make(map[string]int)
				m.counts[ctx] = next
			}
			next[tok]++
			m.contextTotals[ctx]++
		}
	}

	return m
}

// WithK returns a snapshot of m that uses smoothing constant k.
//
// The trained counts are shared, not copied; m itself is unchanged.
func (m *Model) WithK(k float64) (*Model, error) {
	if err := validateK(k); err != nil {
		return nil, err
	}
	clone := *m
	clone.k = k
	return &clone, nil
}

// K returns the smoothing constant of this snapshot.
func (m *Model) K() float64 {
	return m.k
}

// V returns the number of distinct tokens seen during training.
func (m *Model) V() int {
	return len(m.tokens)
}

// Tokens returns the distinct training tokens in first-seen order.
//
// Distribution vectors are aligned to this order.
func (m *Model) Tokens() []string {
	return append([]string(nil), m.tokens...)
}

// Knows reports whether token was seen during training.
func (m *Model) Knows(token string) bool {
	_, ok := m.tokenSet[token]
	return ok
}

// Count returns how often token followed ctx in training.
func (m *Model) Count(ctx Context, token string) int {
	return m.counts[ctx][token]
}

// ContextTotal returns how often ctx was followed by any token.
func (m *Model) ContextTotal(ctx Context) int {
	return m.contextTotals[ctx]
}

// Continuations returns a copy of the next-token counts observed after ctx.
func (m *Model) Continuations(ctx Context) map[string]int {
	next := m.counts[ctx]
	out := make(map[string]int, len(next))
	for tok, c := range next {
		out[tok] = c
	}
	return out
}

// Contexts returns every observed context, sorted lexicographically.
func (m *Model) Contexts() []Context {
	out := make([]Context, 0, len(m.counts))
	for ctx := range m.counts {
		out = append(out, ctx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// NumTrigrams returns the number of distinct trigrams observed.
func (m *Model) NumTrigrams() int {
	n := 0
	for _, next := range m.counts {
		n += len(next)
	}
	return n
}

// Probability returns P(token | last two items of preceding) under K().
//
// Fewer than two preceding items form a partial context that was never
// counted. With k = 0 an unobserved context returns ErrUnseenContext.
func (m *Model) Probability(token string, preceding []string) (float64, error) {
	return m.ProbabilityK(token, preceding, m.k)
}

// ProbabilityK is Probability with an explicit smoothing constant.
func (m *Model) ProbabilityK(token string, preceding []string, k float64) (float64, error) {
	if err := validateK(k); err != nil {
		return 0, err
	}

	c, n := m.lookup(token, preceding)
	return m.estimate(c, n, k)
}

// Distribution returns the probability of every token in Tokens() order
// under the context formed by preceding.
//
// cfg controls how the vocabulary scan is split across goroutines; the
// result does not depend on it.
func (m *Model) Distribution(preceding []string, cfg parallel.Config) ([]float64, error) {
	ctx, ok := contextOf(preceding)
	n := 0
	if ok {
		n = m.contextTotals[ctx]
	}
	// The denominator is shared by all tokens; check it once.
	if _, err := m.estimate(0, n, m.k); err != nil {
		return nil, err
	}

	next := m.counts[ctx]
	if !ok {
		next = nil
	}

	probs := make([]float64, len(m.tokens))
	parallel.For(len(m.tokens), func(i int) {
		probs[i], _ = m.estimate(next[m.tokens[i]], n, m.k)
	}, cfg)

	return probs, nil
}

func (m *Model) lookup(token string, preceding []string) (count, total int) {
	ctx, ok := contextOf(preceding)
	if !ok {
		return 0, 0
	}
	return m.counts[ctx][token], m.contextTotals[ctx]
}

func (m *Model) estimate(c, n int, k float64) (float64, error) {
	if k == 0 {
		if n == 0 {
			return 0, ErrUnseenContext
		}
		return float64(c) / float64(n), nil
	}

	denom := float64(n) + k*float64(len(m.tokens))
	if denom == 0 {
		return 0, ErrUnseenContext
	}
	return (float64(c) + k) / denom, nil
}

// contextOf returns the last two items of preceding. ok is false when
// fewer than two items are available.
func contextOf(preceding []string) (ctx Context, ok bool) {
	if len(preceding) < 2 {
		return Context{}, false
	}
	return Context{preceding[len(preceding)-2], preceding[len(preceding)-1]}, true
}
