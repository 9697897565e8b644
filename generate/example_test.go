package generate_test

import (
	"fmt"

	"github.com/born-ml/trigram/generate"
	"github.com/born-ml/trigram/lm"
	"github.com/born-ml/trigram/tokenizer"
)

func Example() {
	docs := [][]string{{"a", "b", "a"}}

	vocab, _ := tokenizer.NewVocabulary(tokenizer.Unbounded)
	vocab.Fit(docs)

	model, _ := lm.NewModel(0)
	model.Fit(vocab.Transform(docs))

	sampler := generate.NewSequenceSampler(model, vocab, generate.SamplingConfig{Temperature: 1, Seed: 42})
	seq, err := sampler.GenerateSequence(nil, generate.DefaultGenerateConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(seq)
	fmt.Println(seq.Reason)

	// Output:
	// <p> (0) <p> (0) a (3) b (4) a (3) </p> (1)
	// eos
}
