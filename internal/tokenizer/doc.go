// Package tokenizer maps raw tokens to the closed symbol set of the
// trigram language model.
//
// The package has two layers:
//   - Splitters turn raw text into string tokens (whitespace, tiktoken BPE pieces)
//   - Vocabulary keeps the most frequent tokens plus three reserved symbols
//     and converts between tokens and dense integer ids
//
// Reserved symbols:
//   - <p>: sequence start, id 0
//   - </p>: sequence end, id 1
//   - <unk>: out-of-vocabulary token, id 2
//
// Example usage:
//
//	splitter := WhitespaceSplitter{Lowercase: true}
//	docs := [][]string{splitter.Split("The cat sat"), splitter.Split("The dog ran")}
//
//	vocab, err := NewVocabulary(1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vocab.Fit(docs)
//
//	// [[<p> <p> the cat sat </p>] [<p> <p> the dog ran </p>]]
//	padded := vocab.Transform(docs)
//
//	ids := vocab.SentenceToIDs([]string{"the", "bird"}) // [0 3 2 1]
package tokenizer
