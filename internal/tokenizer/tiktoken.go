package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// EncodingCL100kBase is the encoding name for GPT-4 and GPT-3.5-turbo.
const EncodingCL100kBase = "cl100k_base"

// TikTokenSplitter splits text into the string pieces of an OpenAI BPE
// encoding, using the pkoukk/tiktoken-go library.
//
// Each BPE id is decoded on its own, so pieces keep their leading
// whitespace (" world") and concatenating them restores the input.
type TikTokenSplitter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikTokenSplitter creates a splitter for the named encoding
// ("cl100k_base", "p50k_base", "r50k_base").
func NewTikTokenSplitter(encodingName string) (*TikTokenSplitter, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &TikTokenSplitter{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// NewTikTokenSplitterForModel creates a splitter for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo".
func NewTikTokenSplitterForModel(modelName string) (*TikTokenSplitter, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}

	return &TikTokenSplitter{
		encoding: encoding,
		name:     modelName,
	}, nil
}

// Split implements Splitter.
func (t *TikTokenSplitter) Split(text string) []string {
	ids := t.encoding.Encode(text, nil, nil)

	pieces := make([]string, len(ids))
	for i, id := range ids {
		pieces[i] = t.encoding.Decode([]int{id})
	}
	return pieces
}

// Name returns the encoding or model name.
func (t *TikTokenSplitter) Name() string {
	return t.name
}
