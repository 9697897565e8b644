// Package tokenizer provides the closed vocabulary used by the trigram
// language model, plus splitters that turn raw text into string tokens.
//
// This package wraps the internal tokenizer implementations and provides
// a clean public API.
//
// Example usage:
//
//	import "github.com/born-ml/trigram/tokenizer"
//
//	docs := [][]string{{"the", "cat", "sat"}, {"the", "dog", "ran"}}
//
//	vocab, err := tokenizer.NewVocabulary(tokenizer.Unbounded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vocab.Fit(docs)
//
//	// Pad with <p> <p> ... </p> and replace unknown tokens with <unk>.
//	padded := vocab.Transform(docs)
//
//	ids := vocab.WordsToIDs([]string{"the", "bird"}) // [3 2]
//	words, err := vocab.IDsToWords(ids)
package tokenizer

import (
	"github.com/born-ml/trigram/internal/tokenizer"
)

// Reserved vocabulary symbols.
const (
	StartToken = tokenizer.StartToken
	EndToken   = tokenizer.EndToken
	UnkToken   = tokenizer.UnkToken
)

// Unbounded disables the vocabulary size cap.
const Unbounded = tokenizer.Unbounded

// Splitter kinds accepted by NewSplitter.
const (
	SplitterWhitespace = tokenizer.SplitterWhitespace
	SplitterTikToken   = tokenizer.SplitterTikToken
)

// Errors.
var (
	ErrOutOfRange      = tokenizer.ErrOutOfRange
	ErrInvalidSize     = tokenizer.ErrInvalidSize
	ErrUnknownSplitter = tokenizer.ErrUnknownSplitter
)

// Tokenizer is the id-level tokenization interface.
type Tokenizer = tokenizer.Tokenizer

// Vocabulary is a closed, size-bounded token set with reserved symbols.
type Vocabulary = tokenizer.Vocabulary

// OutOfRangeError reports an id that was never assigned.
type OutOfRangeError = tokenizer.OutOfRangeError

// Splitter turns raw text into string tokens.
type Splitter = tokenizer.Splitter

// WhitespaceSplitter splits on runs of whitespace.
type WhitespaceSplitter = tokenizer.WhitespaceSplitter

// TikTokenSplitter splits text into OpenAI BPE pieces.
type TikTokenSplitter = tokenizer.TikTokenSplitter

// NewVocabulary creates an empty vocabulary capped at maxSize ids,
// reserved symbols included.
//
// Pass Unbounded to keep every distinct token.
func NewVocabulary(maxSize int) (*Vocabulary, error) {
	return tokenizer.NewVocabulary(maxSize)
}

// NewTikTokenSplitter creates a splitter for the named tiktoken encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikTokenSplitter(encodingName string) (*TikTokenSplitter, error) {
	return tokenizer.NewTikTokenSplitter(encodingName)
}

// NewTikTokenSplitterForModel creates a tiktoken splitter for a model name.
func NewTikTokenSplitterForModel(modelName string) (*TikTokenSplitter, error) {
	return tokenizer.NewTikTokenSplitterForModel(modelName)
}

// NewSplitter returns a Splitter by kind ("whitespace" or "tiktoken").
func NewSplitter(kind, encoding string, lowercase bool) (Splitter, error) {
	return tokenizer.NewSplitter(kind, encoding, lowercase)
}
