package tokenizer

import (
	"fmt"
	"strings"
)

// Splitter kinds accepted by NewSplitter.
const (
	SplitterWhitespace = "whitespace"
	SplitterTikToken   = "tiktoken"
)

// WhitespaceSplitter splits on runs of Unicode whitespace.
type WhitespaceSplitter struct {
	Lowercase bool
}

// Split implements Splitter.
func (w WhitespaceSplitter) Split(text string) []string {
	if w.Lowercase {
		text = strings.ToLower(text)
	}
	return strings.Fields(text)
}

// NewSplitter returns a Splitter by kind.
//
// encoding is only used by the tiktoken splitter and defaults to
// cl100k_base; lowercase is only used by the whitespace splitter.
func NewSplitter(kind, encoding string, lowercase bool) (Splitter, error) {
	switch kind {
	case SplitterWhitespace, "":
		return WhitespaceSplitter{Lowercase: lowercase}, nil
	case SplitterTikToken:
		if encoding == "" {
			encoding = EncodingCL100kBase
		}
		tok, err := NewTikTokenSplitter(encoding)
		if err != nil {
			return nil, err
		}
		return tok, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitter, kind)
	}
}
