// Package main provides the trigram language model CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/born-ml/trigram/internal/config"
	"github.com/born-ml/trigram/internal/corpus"
	"github.com/born-ml/trigram/internal/generate"
	"github.com/born-ml/trigram/internal/lm"
	"github.com/born-ml/trigram/internal/tokenizer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0"

func usage() {
	fmt.Println("trigram - add-k trigram language model")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  generate   Train on a corpus and sample sequences")
	fmt.Println("  score      Train on a corpus and report perplexity of another")
	fmt.Println("")
	fmt.Println("Run 'trigram <command> -h' for flags.")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("trigram %s\n", version)
		return
	case "generate":
		err = runGenerate(os.Args[2:])
	case "score":
		err = runScore(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// commonFlags are shared by generate and score. Flags only override the
// configuration file when set explicitly.
type commonFlags struct {
	configPath *string
	corpusPath *string
	splitter   *string
	k          *float64
	maxSize    *int
	logLevel   *string
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		configPath: fs.String("config", "", "Path to YAML configuration file"),
		corpusPath: fs.String("corpus", "", "Training corpus, one document per line"),
		splitter:   fs.String("splitter", "", "Token splitter: whitespace or tiktoken"),
		k:          fs.Float64("k", 0, "Add-k smoothing constant"),
		maxSize:    fs.Int("size", 0, "Maximum vocabulary size including 3 reserved symbols (0 = unbounded)"),
		logLevel:   fs.String("log-level", "", "Log level: debug, info, warn, error"),
	}
}

func (c *commonFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if *c.configPath != "" {
		loaded, err := config.Load(*c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corpus":
			cfg.Corpus.Path = *c.corpusPath
		case "splitter":
			cfg.Corpus.Splitter = *c.splitter
		case "k":
			cfg.Model.K = *c.k
		case "size":
			cfg.Vocabulary.MaxSize = *c.maxSize
		case "log-level":
			cfg.Log.Level = *c.logLevel
		}
	})

	if cfg.Corpus.Path == "" {
		return nil, errors.New("no corpus given: set -corpus or corpus.path")
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	cfgZap := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfgZap.Level.SetLevel(lvl)
	return cfgZap.Build()
}

// trained bundles everything fitted from the training corpus.
type trained struct {
	splitter tokenizer.Splitter
	vocab    *tokenizer.Vocabulary
	model    *lm.Model
}

func train(cfg *config.Config, logger *zap.Logger) (*trained, error) {
	splitter, err := tokenizer.NewSplitter(cfg.Corpus.Splitter, cfg.Corpus.Encoding, cfg.Corpus.Lowercase)
	if err != nil {
		return nil, err
	}

	docs, err := corpus.LoadFile(cfg.Corpus.Path, splitter, corpus.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	vocab, err := tokenizer.NewVocabulary(cfg.Vocabulary.MaxSize)
	if err != nil {
		return nil, err
	}
	vocab.Fit(docs)

	model, err := lm.NewModel(cfg.Model.K)
	if err != nil {
		return nil, err
	}
	model.Fit(vocab.Transform(docs))

	logger.Info("Model trained",
		zap.Int("vocabulary_size", vocab.Size()),
		zap.Int("corpus_tokens", vocab.TotalTokens()),
		zap.Int("model_tokens", model.V()),
		zap.Int("contexts", len(model.Contexts())),
		zap.Int("trigrams", model.NumTrigrams()),
		zap.Float64("k", model.K()))

	return &trained{splitter: splitter, vocab: vocab, model: model}, nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	common := registerCommon(fs)
	seed := fs.Int64("seed", -1, "Random seed (-1 = random)")
	temperature := fs.Float64("temperature", 1, "Sampling temperature (0 = greedy)")
	topK := fs.Int("top-k", 0, "Sample only from the K most probable tokens (0 = all)")
	maxLength := fs.Int("max-length", 200, "Maximum number of sampled tokens")
	count := fs.Int("n", 1, "Number of sequences to generate")
	start := fs.String("start", "", "Seed text appended after the start symbols")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Sampling.Seed = *seed
		case "temperature":
			cfg.Sampling.Temperature = *temperature
		case "top-k":
			cfg.Sampling.TopK = *topK
		case "max-length":
			cfg.Sampling.MaxLength = *maxLength
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	t, err := train(cfg, logger)
	if err != nil {
		return err
	}

	sampler := generate.NewSequenceSampler(t.model, t.vocab, generate.SamplingConfig{
		Temperature: cfg.Sampling.Temperature,
		TopK:        cfg.Sampling.TopK,
		Seed:        cfg.Sampling.Seed,
	})

	var seedTokens []string
	if strings.TrimSpace(*start) != "" {
		seedTokens = t.splitter.Split(*start)
	}

	genCfg := generate.GenerateConfig{MaxLength: cfg.Sampling.MaxLength}
	for i := 0; i < *count; i++ {
		seq, err := sampler.GenerateSequence(seedTokens, genCfg)
		if err != nil {
			return fmt.Errorf("generate sequence %d: %w", i, err)
		}
		logger.Debug("Sequence generated",
			zap.Int("index", i),
			zap.Int("length", len(seq.IDs)),
			zap.String("reason", seq.Reason))
		fmt.Println(seq.String())
	}

	return nil
}

func runScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	common := registerCommon(fs)
	evalPath := fs.String("eval", "", "Corpus to score, one document per line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *evalPath == "" {
		return errors.New("no evaluation corpus given: set -eval")
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	t, err := train(cfg, logger)
	if err != nil {
		return err
	}

	docs, err := corpus.LoadFile(*evalPath, t.splitter, corpus.WithLogger(logger))
	if err != nil {
		return err
	}

	pp, err := t.model.Perplexity(t.vocab.Transform(docs))
	if err != nil {
		return fmt.Errorf("score %s: %w", *evalPath, err)
	}

	logger.Info("Scored corpus", zap.String("path", *evalPath), zap.Float64("perplexity", pp))
	fmt.Printf("perplexity: %.4f\n", pp)
	return nil
}
