package tokenizer

// Tokenizer is the core interface for id-level tokenization.
//
// Vocabulary implements this interface at word level.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// VocabSize returns the total vocabulary size.
	VocabSize() int

	// BosToken returns the beginning-of-sequence token ID.
	// Returns -1 if not applicable.
	BosToken() int32

	// EosToken returns the end-of-sequence token ID.
	// Returns -1 if not applicable.
	EosToken() int32

	// PadToken returns the padding token ID.
	// Returns -1 if not applicable.
	PadToken() int32

	// UnkToken returns the unknown token ID.
	// Returns -1 if not applicable.
	UnkToken() int32

	// IsSpecialToken checks if a token ID is a special token.
	IsSpecialToken(token int32) bool
}

// Splitter turns raw text into string tokens.
//
// Splitters run before the vocabulary sees any data; the vocabulary and
// the language model only ever handle the strings they produce.
type Splitter interface {
	// Split breaks text into tokens. Empty text yields an empty slice.
	Split(text string) []string
}
