package lm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogProb returns the natural-log probability of doc under the model.
//
// Every token from position 2 on is scored against its two predecessors;
// the first two tokens only serve as context (start padding). A token
// with zero probability yields -Inf.
func (m *Model) LogProb(doc []string) (float64, error) {
	logs, err := m.tokenLogProbs(doc)
	if err != nil {
		return 0, err
	}
	return floats.Sum(logs), nil
}

// Perplexity returns exp(-L/N) over docs, where L is the summed log
// probability and N the number of scored tokens.
func (m *Model) Perplexity(docs [][]string) (float64, error) {
	var (
		total float64
		n     int
	)
	for i, doc := range docs {
		logs, err := m.tokenLogProbs(doc)
		if err != nil {
			return 0, fmt.Errorf("document %d: %w", i, err)
		}
		total += floats.Sum(logs)
		n += len(logs)
	}
	if n == 0 {
		return 0, ErrEmptyCorpus
	}
	return math.Exp(-total / float64(n)), nil
}

func (m *Model) tokenLogProbs(doc []string) ([]float64, error) {
	if len(doc) < 3 {
		return nil, nil
	}
	logs := make([]float64, 0, len(doc)-2)
	for i := 2; i < len(doc); i++ {
		p, err := m.Probability(doc[i], doc[i-2:i])
		if err != nil {
			return nil, fmt.Errorf("token %d (%q): %w", i, doc[i], err)
		}
		logs = append(logs, math.Log(p))
	}
	return logs, nil
}
