package lm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_LogProb(t *testing.T) {
	m := fitModel(t, 0, [][]string{
		{"<p>", "<p>", "a", "b", "</p>"},
		{"<p>", "<p>", "a", "c", "</p>"},
	})

	lp, err := m.LogProb([]string{"<p>", "<p>", "a", "b", "</p>"})
	require.NoError(t, err)
	// P(a|<p>,<p>) = 1, P(b|<p>,a) = 1/2, P(</p>|a,b) = 1.
	assert.InDelta(t, math.Log(0.5), lp, tol)

	lp, err = m.LogProb([]string{"<p>", "<p>"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lp)

	lp, err = m.LogProb([]string{"<p>", "<p>", "b"})
	require.NoError(t, err)
	assert.True(t, math.IsInf(lp, -1))

	_, err = m.LogProb([]string{"<p>", "<p>", "a", "a", "</p>"})
	assert.ErrorIs(t, err, ErrUnseenContext)
}

func TestModel_Perplexity(t *testing.T) {
	t.Run("deterministic corpus", func(t *testing.T) {
		corpus := [][]string{{"<p>", "<p>", "a", "b", "</p>"}}
		m := fitModel(t, 0, corpus)

		pp, err := m.Perplexity(corpus)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, pp, tol)
	})

	t.Run("unseen contexts are uniform", func(t *testing.T) {
		m := fitModel(t, 1, [][]string{{"<p>", "<p>", "a", "b", "c", "</p>"}})

		pp, err := m.Perplexity([][]string{{"q", "r", "s", "t"}, {"x", "y", "z"}})
		require.NoError(t, err)
		assert.InDelta(t, float64(m.V()), pp, 1e-9)
	})

	t.Run("nothing to score", func(t *testing.T) {
		m := fitModel(t, 1, [][]string{{"a", "b", "c"}})

		_, err := m.Perplexity([][]string{{"a"}, {}})
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("unsmoothed failure names the document", func(t *testing.T) {
		m := fitModel(t, 0, [][]string{{"a", "b", "c"}})

		_, err := m.Perplexity([][]string{{"a", "b", "c"}, {"x", "y", "z"}})
		require.ErrorIs(t, err, ErrUnseenContext)
		assert.Contains(t, err.Error(), "document 1")
	})
}
