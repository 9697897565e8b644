// Package corpus reads line-oriented text corpora into tokenized documents.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/born-ml/trigram/internal/tokenizer"
	"go.uber.org/zap"
)

// maxLineSize caps a single document line.
const maxLineSize = 1 << 20

// Option configures Load.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report skipped lines and totals.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load reads one document per line from r and splits each with s.
// Blank lines, and lines the splitter reduces to nothing, are skipped.
func Load(r io.Reader, s tokenizer.Splitter, opts ...Option) ([][]string, error) {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		docs    [][]string
		line    int
		skipped int
		tokens  int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			skipped++
			continue
		}

		doc := s.Split(text)
		if len(doc) == 0 {
			o.logger.Debug("Skipping line without tokens", zap.Int("line", line))
			skipped++
			continue
		}
		docs = append(docs, doc)
		tokens += len(doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus at line %d: %w", line+1, err)
	}

	o.logger.Info("Corpus loaded",
		zap.Int("documents", len(docs)),
		zap.Int("tokens", tokens),
		zap.Int("skipped_lines", skipped))

	return docs, nil
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string, s tokenizer.Splitter, opts ...Option) ([][]string, error) {
	//nolint:gosec // Reading a user-specified corpus path is intentional.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return Load(f, s, opts...)
}
