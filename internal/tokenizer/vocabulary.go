package tokenizer

import (
	"sort"
	"strings"
)

// Reserved vocabulary symbols.
const (
	StartToken = "<p>"
	EndToken   = "</p>"
	UnkToken   = "<unk>"
)

// Unbounded disables the vocabulary size cap.
const Unbounded = 0

// numSpecial is the number of reserved symbols occupying ids 0..2.
const numSpecial = 3

// Vocabulary is a closed, size-bounded token set with reserved symbols.
//
// Ids are dense in [0, Size()). The start, end and unknown symbols always
// hold ids 0, 1 and 2; the remaining ids follow descending corpus
// frequency, ties broken by the order in which tokens were first seen.
//
// A Vocabulary is built once by Fit and is read-only afterwards, so it is
// safe for concurrent lookups.
type Vocabulary struct {
	maxSize int
	size    int

	counts      map[string]int // corpus frequency of every token, kept or not
	totalTokens int

	wordToID map[string]int32
	idToWord []string
}

// NewVocabulary creates an empty vocabulary capped at maxSize ids,
// reserved symbols included. Pass Unbounded to keep every distinct token.
func NewVocabulary(maxSize int) (*Vocabulary, error) {
	if maxSize != Unbounded && maxSize < numSpecial {
		return nil, ErrInvalidSize
	}

	v := &Vocabulary{maxSize: maxSize}
	v.reset()
	return v, nil
}

func (v *Vocabulary) reset() {
	v.counts = make(map[string]int)
	v.totalTokens = 0
	v.idToWord = []string{StartToken, EndToken, UnkToken}
	v.wordToID = make(map[string]int32, numSpecial)
	for i, w := range v.idToWord {
		v.wordToID[w] = int32(i) //nolint:gosec // i < 3
	}
	v.size = len(v.idToWord)
}

// Fit learns the token set from tokenized documents.
//
// Calling Fit again discards the previous state. Reserved symbols found
// in the corpus are counted but never receive a second id, and they do
// not consume any of the maxSize-3 regular slots.
func (v *Vocabulary) Fit(docs [][]string) {
	v.reset()

	// Flatten and count, remembering first-seen order for tie-breaks.
	var order []string
	for _, doc := range docs {
		for _, tok := range doc {
			if _, seen := v.counts[tok]; !seen {
				order = append(order, tok)
			}
			v.counts[tok]++
			v.totalTokens++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return v.counts[order[i]] > v.counts[order[j]]
	})

	limit := len(order)
	if v.maxSize != Unbounded {
		limit = v.maxSize - numSpecial
	}

	for _, tok := range order {
		if len(v.idToWord)-numSpecial >= limit {
			break
		}
		if _, reserved := v.wordToID[tok]; reserved {
			continue
		}
		v.wordToID[tok] = int32(len(v.idToWord)) //nolint:gosec // vocabulary bounded by corpus size
		v.idToWord = append(v.idToWord, tok)
	}

	v.size = len(v.idToWord)
}

// Transform pads every document with two start symbols and one end
// symbol and replaces tokens outside the vocabulary with UnkToken.
//
// The result is freshly allocated on each call; docs is not modified.
func (v *Vocabulary) Transform(docs [][]string) [][]string {
	out := make([][]string, len(docs))
	for i, doc := range docs {
		padded := make([]string, 0, len(doc)+numSpecial)
		padded = append(padded, StartToken, StartToken)
		for _, tok := range doc {
			if _, ok := v.wordToID[tok]; !ok {
				tok = UnkToken
			}
			padded = append(padded, tok)
		}
		padded = append(padded, EndToken)
		out[i] = padded
	}
	return out
}

// WordsToIDs maps tokens to ids, using the unknown id for tokens that are
// not in the vocabulary.
func (v *Vocabulary) WordsToIDs(words []string) []int32 {
	ids := make([]int32, len(words))
	for i, w := range words {
		ids[i] = v.ID(w)
	}
	return ids
}

// IDsToWords maps ids back to tokens.
//
// Returns an *OutOfRangeError for the first id outside [0, Size()).
func (v *Vocabulary) IDsToWords(ids []int32) ([]string, error) {
	words := make([]string, len(ids))
	for i, id := range ids {
		w, err := v.Word(id)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

// Word returns the token with the given id.
func (v *Vocabulary) Word(id int32) (string, error) {
	if id < 0 || int(id) >= v.size {
		return "", &OutOfRangeError{ID: id, Size: v.size}
	}
	return v.idToWord[id], nil
}

// SentenceToIDs wraps words with a start and an end symbol and maps the
// result to ids.
func (v *Vocabulary) SentenceToIDs(words []string) []int32 {
	wrapped := make([]string, 0, len(words)+2)
	wrapped = append(wrapped, StartToken)
	wrapped = append(wrapped, words...)
	wrapped = append(wrapped, EndToken)
	return v.WordsToIDs(wrapped)
}

// OrderedWords returns every token in id order.
func (v *Vocabulary) OrderedWords() []string {
	return append([]string(nil), v.idToWord...)
}

// ID returns the id of word, or the unknown id if word is not kept.
func (v *Vocabulary) ID(word string) int32 {
	if id, ok := v.wordToID[word]; ok {
		return id
	}
	return v.UnkID()
}

// Contains reports whether word has an id of its own.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.wordToID[word]
	return ok
}

// Count returns how many times word occurred in the fitted corpus,
// whether or not it was kept.
func (v *Vocabulary) Count(word string) int {
	return v.counts[word]
}

// TotalTokens returns the number of tokens seen by Fit.
func (v *Vocabulary) TotalTokens() int {
	return v.totalTokens
}

// Size returns the realized number of ids.
func (v *Vocabulary) Size() int {
	return v.size
}

// MaxSize returns the configured cap, or Unbounded.
func (v *Vocabulary) MaxSize() int {
	return v.maxSize
}

// StartID returns the id of StartToken.
func (v *Vocabulary) StartID() int32 { return v.wordToID[StartToken] }

// EndID returns the id of EndToken.
func (v *Vocabulary) EndID() int32 { return v.wordToID[EndToken] }

// UnkID returns the id of UnkToken.
func (v *Vocabulary) UnkID() int32 { return v.wordToID[UnkToken] }

// Encode splits text on whitespace and maps the words to ids.
func (v *Vocabulary) Encode(text string) ([]int32, error) {
	return v.WordsToIDs(strings.Fields(text)), nil
}

// Decode maps ids to words joined by single spaces.
func (v *Vocabulary) Decode(tokens []int32) (string, error) {
	words, err := v.IDsToWords(tokens)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// VocabSize returns Size.
func (v *Vocabulary) VocabSize() int {
	return v.size
}

// BosToken returns the start id.
func (v *Vocabulary) BosToken() int32 {
	return v.StartID()
}

// EosToken returns the end id.
func (v *Vocabulary) EosToken() int32 {
	return v.EndID()
}

// PadToken returns -1; sequences are never padded to a fixed length.
func (v *Vocabulary) PadToken() int32 {
	return -1
}

// UnkToken returns the unknown id.
func (v *Vocabulary) UnkToken() int32 {
	return v.UnkID()
}

// IsSpecialToken reports whether token is one of the reserved ids.
func (v *Vocabulary) IsSpecialToken(token int32) bool {
	return token >= 0 && token < numSpecial
}
