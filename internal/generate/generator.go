package generate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/trigram/internal/lm"
	"github.com/born-ml/trigram/internal/parallel"
	"github.com/born-ml/trigram/internal/tokenizer"
)

// Stop reasons reported by GenerateSequence and GenerateStream.
const (
	ReasonEOS       = "eos"
	ReasonMaxTokens = "max_tokens"
)

// ErrEmptyModel is returned when the model has no tokens to sample.
var ErrEmptyModel = errors.New("model has no tokens to sample from")

// ErrModelChanged is returned when the model was refitted while a
// distribution was being drawn from it.
var ErrModelChanged = errors.New("model tokens changed during sampling")

// GenerateConfig configures sequence generation.
//
//nolint:revive // GenerateConfig is clearer than Config
type GenerateConfig struct {
	// MaxLength is the maximum number of sampled tokens appended after
	// the start symbols and seed tokens.
	MaxLength int
}

// DefaultGenerateConfig returns the default generation bound of 200 tokens.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		MaxLength: 200,
	}
}

// GenerateResult is a single result from streaming generation.
//
//nolint:revive // GenerateResult is clearer than Result
type GenerateResult struct {
	Token   string // Sampled token
	TokenID int32  // Vocabulary id of Token
	Done    bool   // Is generation complete
	Reason  string // Stop reason: "eos", "max_tokens"
	Error   error  // Error if any
}

// Sequence is a generated id sequence with its rendering.
type Sequence struct {
	IDs    []int32
	Words  []string
	Reason string // Stop reason; empty when nothing was sampled
}

// String renders the sequence as "word (id)" pairs separated by spaces.
func (s *Sequence) String() string {
	var b strings.Builder
	for i, id := range s.IDs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Words[i])
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(int(id)))
		b.WriteByte(')')
	}
	return b.String()
}

// SequenceSampler generates sequences from a fitted model and vocabulary.
//
// It holds no state of its own beyond the random source of its Sampler,
// so a SequenceSampler must not be shared between goroutines; the model
// and vocabulary may be.
type SequenceSampler struct {
	model   *lm.Model
	vocab   *tokenizer.Vocabulary
	sampler *Sampler

	parallel parallel.Config
}

// SamplerOption configures a SequenceSampler.
type SamplerOption func(*samplerOptions)

type samplerOptions struct {
	parallel parallel.Config
}

// WithParallel sets how each vocabulary scan is split across goroutines.
func WithParallel(cfg parallel.Config) SamplerOption {
	return func(o *samplerOptions) {
		o.parallel = cfg
	}
}

// NewSequenceSampler creates a sampler over a fitted model and vocabulary.
func NewSequenceSampler(
	model *lm.Model,
	vocab *tokenizer.Vocabulary,
	samplingConfig SamplingConfig,
	opts ...SamplerOption,
) *SequenceSampler {
	options := &samplerOptions{
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &SequenceSampler{
		model:    model,
		vocab:    vocab,
		sampler:  NewSampler(samplingConfig),
		parallel: options.parallel,
	}
}

// SampleNextToken draws the token following preceding.
//
// Every token the model knows is scored under the context on each call,
// so the cost is linear in the vocabulary size. The token list is read
// from the model on every call, so refitting the model is picked up.
func (g *SequenceSampler) SampleNextToken(preceding []string) (string, error) {
	tokens := g.model.Tokens()
	if len(tokens) == 0 {
		return "", ErrEmptyModel
	}

	probs, err := g.model.Distribution(preceding, g.parallel)
	if err != nil {
		return "", fmt.Errorf("next token distribution: %w", err)
	}
	if len(probs) != len(tokens) {
		return "", fmt.Errorf("%w: %d tokens, %d probabilities", ErrModelChanged, len(tokens), len(probs))
	}

	return tokens[g.sampler.Sample(probs)], nil
}

// GenerateSequence samples a sequence that starts with two start symbols
// followed by the start words.
//
// Tokens are appended one at a time until the end symbol is sampled or
// config.MaxLength tokens have been added. Start words outside the
// vocabulary become the unknown symbol.
func (g *SequenceSampler) GenerateSequence(start []string, config GenerateConfig) (*Sequence, error) {
	seq := g.prefix(start)

	err := g.generate(seq, config, func(res GenerateResult) bool {
		seq.IDs = append(seq.IDs, res.TokenID)
		seq.Words = append(seq.Words, res.Token)
		seq.Reason = res.Reason
		return true
	})
	if err != nil {
		return nil, err
	}

	return seq, nil
}

// GenerateStream generates a sequence and returns a channel of sampled
// tokens. The prefix is not sent. The channel is closed after the final
// result, which has Done set or carries an Error.
//
// Cancel ctx to stop a consumer that no longer reads from the channel;
// the generating goroutine exits and the channel is closed without a
// final result.
func (g *SequenceSampler) GenerateStream(
	ctx context.Context,
	start []string,
	config GenerateConfig,
) (<-chan GenerateResult, error) {
	if g.model.V() == 0 && config.MaxLength > 0 {
		return nil, ErrEmptyModel
	}

	seq := g.prefix(start)
	ch := make(chan GenerateResult, 1)

	send := func(res GenerateResult) bool {
		select {
		case ch <- res:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(ch)

		err := g.generate(seq, config, func(res GenerateResult) bool {
			return ctx.Err() == nil && send(res)
		})
		if err != nil {
			send(GenerateResult{Done: true, Error: err})
		}
	}()

	return ch, nil
}

func (g *SequenceSampler) prefix(start []string) *Sequence {
	startID := g.vocab.StartID()
	ids := []int32{startID, startID}
	ids = append(ids, g.vocab.WordsToIDs(start)...)

	// Every id came from the vocabulary itself, so this cannot fail.
	words, _ := g.vocab.IDsToWords(ids)
	return &Sequence{IDs: ids, Words: words}
}

// generate is the core generation loop. seq is only read for context;
// callback receives every sampled token.
func (g *SequenceSampler) generate(
	seq *Sequence,
	config GenerateConfig,
	callback func(GenerateResult) bool,
) error {
	window := append([]string(nil), seq.Words[len(seq.Words)-2:]...)
	endID := g.vocab.EndID()

	for i := 0; i < config.MaxLength; i++ {
		token, err := g.SampleNextToken(window)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		id := g.vocab.ID(token)
		word, err := g.vocab.Word(id)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		done, reason := false, ""
		switch {
		case id == endID:
			done, reason = true, ReasonEOS
		case i == config.MaxLength-1:
			done, reason = true, ReasonMaxTokens
		}

		if !callback(GenerateResult{Token: word, TokenID: id, Done: done, Reason: reason}) || done {
			break
		}

		window[0], window[1] = window[1], word
	}

	return nil
}
