package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFitted(t *testing.T, maxSize int, docs [][]string) *Vocabulary {
	t.Helper()
	v, err := NewVocabulary(maxSize)
	require.NoError(t, err)
	v.Fit(docs)
	return v
}

func TestNewVocabulary_InvalidSize(t *testing.T) {
	tests := []struct {
		name    string
		maxSize int
		wantErr bool
	}{
		{"unbounded", Unbounded, false},
		{"only specials", 3, false},
		{"large", 1000, false},
		{"one", 1, true},
		{"two", 2, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVocabulary(tt.maxSize)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSize)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.maxSize, v.MaxSize())
		})
	}
}

func TestVocabulary_FitUnbounded(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"a", "b", "a"}})

	assert.Equal(t, 5, v.Size())
	assert.Equal(t, []string{"<p>", "</p>", "<unk>", "a", "b"}, v.OrderedWords())
	assert.Equal(t, 2, v.Count("a"))
	assert.Equal(t, 1, v.Count("b"))
	assert.Equal(t, 3, v.TotalTokens())
}

func TestVocabulary_SpecialIDs(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"x"}})

	assert.Equal(t, int32(0), v.StartID())
	assert.Equal(t, int32(1), v.EndID())
	assert.Equal(t, int32(2), v.UnkID())
	assert.Equal(t, v.StartID(), v.BosToken())
	assert.Equal(t, v.EndID(), v.EosToken())
	assert.Equal(t, v.UnkID(), v.UnkToken())
	assert.Equal(t, int32(-1), v.PadToken())

	assert.True(t, v.IsSpecialToken(0))
	assert.True(t, v.IsSpecialToken(2))
	assert.False(t, v.IsSpecialToken(3))
	assert.False(t, v.IsSpecialToken(-1))
}

func TestVocabulary_SizeBound(t *testing.T) {
	docs := [][]string{
		{"the", "cat", "sat", "on", "the", "mat"},
		{"the", "dog", "sat"},
	}

	t.Run("enough distinct tokens", func(t *testing.T) {
		v := newFitted(t, 5, docs)
		assert.Equal(t, 5, v.Size())
		// "the" (3) then "sat" (2) by frequency.
		assert.Equal(t, []string{"<p>", "</p>", "<unk>", "the", "sat"}, v.OrderedWords())
	})

	t.Run("fewer distinct tokens than requested", func(t *testing.T) {
		v := newFitted(t, 100, docs)
		assert.Equal(t, 6+3, v.Size())
	})

	t.Run("only specials", func(t *testing.T) {
		v := newFitted(t, 3, docs)
		assert.Equal(t, 3, v.Size())
		assert.False(t, v.Contains("the"))
		assert.Equal(t, 3, v.Count("the"))
	})
}

func TestVocabulary_TieBreakFirstSeen(t *testing.T) {
	docs := [][]string{{"z", "y", "x", "w", "x"}}

	v := newFitted(t, 6, docs)

	// x wins on count; z and y tie and keep corpus order.
	assert.Equal(t, []string{"<p>", "</p>", "<unk>", "x", "z", "y"}, v.OrderedWords())
}

func TestVocabulary_ReservedTokensInCorpus(t *testing.T) {
	v := newFitted(t, 4, [][]string{{"<unk>", "<unk>", "<p>", "a"}})

	assert.Equal(t, 4, v.Size())
	assert.Equal(t, []string{"<p>", "</p>", "<unk>", "a"}, v.OrderedWords())
	assert.Equal(t, int32(2), v.ID("<unk>"))
}

func TestVocabulary_EmptyCorpus(t *testing.T) {
	v := newFitted(t, Unbounded, nil)

	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 0, v.TotalTokens())
	assert.Empty(t, v.Transform(nil))
}

func TestVocabulary_Refit(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"a", "b"}})
	v.Fit([][]string{{"c"}})

	assert.Equal(t, 4, v.Size())
	assert.False(t, v.Contains("a"))
	assert.True(t, v.Contains("c"))
	assert.Equal(t, 0, v.Count("a"))
}

func TestVocabulary_Transform(t *testing.T) {
	v := newFitted(t, 4, [][]string{{"a", "a", "b"}})

	input := [][]string{{"a", "b", "c"}, {}}
	got := v.Transform(input)

	assert.Equal(t, [][]string{
		{"<p>", "<p>", "a", "<unk>", "<unk>", "</p>"},
		{"<p>", "<p>", "</p>"},
	}, got)
	assert.Equal(t, []string{"a", "b", "c"}, input[0], "input must not be modified")

	again := v.Transform(input)
	assert.Equal(t, got, again)
	again[0][2] = "mutated"
	assert.Equal(t, "a", got[0][2], "each call returns fresh slices")
}

func TestVocabulary_WordsToIDs(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"a", "b", "a"}})

	assert.Equal(t, []int32{3, 4, 2, 0}, v.WordsToIDs([]string{"a", "b", "missing", "<p>"}))
	assert.Empty(t, v.WordsToIDs(nil))
}

func TestVocabulary_IDsToWords(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"a", "b", "a"}})

	words, err := v.IDsToWords([]int32{0, 3, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"<p>", "a", "b", "</p>"}, words)

	for _, id := range []int32{5, -1, 100} {
		_, err := v.IDsToWords([]int32{0, id})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, id, oor.ID)
		assert.Equal(t, 5, oor.Size)
	}
}

func TestVocabulary_RoundTrip(t *testing.T) {
	v := newFitted(t, 8, [][]string{
		{"one", "two", "three", "two"},
		{"four", "five", "six", "seven", "one"},
	})

	for id := int32(0); int(id) < v.Size(); id++ {
		words, err := v.IDsToWords([]int32{id})
		require.NoError(t, err)
		assert.Equal(t, []int32{id}, v.WordsToIDs(words))
	}
}

func TestVocabulary_SentenceToIDs(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"a", "b", "a"}})

	assert.Equal(t, []int32{0, 3, 2, 1}, v.SentenceToIDs([]string{"a", "zzz"}))
	assert.Equal(t, []int32{0, 1}, v.SentenceToIDs(nil))
}

func TestVocabulary_EncodeDecode(t *testing.T) {
	v := newFitted(t, Unbounded, [][]string{{"hello", "world"}})

	var tok Tokenizer = v
	ids, err := tok.Encode("  hello   there world ")
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 2, 4}, ids)

	text, err := tok.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, "hello <unk> world", text)

	_, err = tok.Decode([]int32{42})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 5, tok.VocabSize())
}
