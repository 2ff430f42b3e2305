package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-recommender/internal/advice"
	"github.com/jonathan/career-recommender/internal/config"
	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/observability"
	"github.com/jonathan/career-recommender/internal/ranking"
	"github.com/spf13/cobra"
)

// engineFlags are the corpus and scoring flags shared by every command
type engineFlags struct {
	configPath string
	corpus     string
	strategy   string
	topK       int
	detail     string
	outDir     string
	prefix     string
	verbose    bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.corpus, "corpus", "d", "", "Path to the careers CSV (default "+config.DefaultCorpusPath+")")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "Scoring strategy: containment, overlap or similarity (default "+config.DefaultStrategy+")")
	cmd.Flags().IntVarP(&f.topK, "top-k", "k", 0, fmt.Sprintf("Number of careers to return (default %d)", config.DefaultTopK))
	cmd.Flags().StringVar(&f.detail, "detail", "", "Advice detail: deep or short (default "+config.DefaultDetail+")")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// registerOutput adds the export location flags
func (f *engineFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.outDir, "out-dir", "o", "", "Directory for exported results (default "+config.DefaultOutDir+")")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Export filename prefix (default "+config.DefaultPrefix+")")
}

// resolve merges the config file, explicitly set flags, environment and defaults.
func (f *engineFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.Corpus = f.corpus
	}
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("top-k") {
		cfg.TopK = f.topK
		if f.topK < 1 {
			return cfg, fmt.Errorf("--top-k must be at least 1, got %d", f.topK)
		}
	}
	if flags.Changed("detail") {
		cfg.Detail = f.detail
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = f.outDir
	}
	if flags.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if cfg.HistoryDSN == "" {
		cfg.HistoryDSN = os.Getenv("HISTORY_DSN")
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// engine is a loaded corpus with its scorer, built once per process
type engine struct {
	cfg     config.Config
	corpus  *corpus.Corpus
	scorer  ranking.Scorer
	level   advice.Level
	printer *observability.Printer
}

func loadEngine(cfg config.Config, out io.Writer) (*engine, error) {
	strategy, err := ranking.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	level, err := advice.ParseLevel(cfg.Detail)
	if err != nil {
		return nil, err
	}

	c, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	scorer, err := ranking.NewScorer(strategy, c)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s scorer: %w", strategy, err)
	}

	e := &engine{
		cfg:     cfg,
		corpus:  c,
		scorer:  scorer,
		level:   level,
		printer: observability.NewPrinter(out),
	}

	if cfg.Verbose {
		summary := observability.CorpusSummary{
			Path:     cfg.Corpus,
			Records:  c.Len(),
			Careers:  c.Careers(),
			Strategy: string(strategy),
		}
		if sim, ok := scorer.(*ranking.SimilarityScorer); ok {
			summary.Vocabulary = sim.Vectorizer().VocabularySize()
		}
		e.printer.PrintCorpusSummary(summary)
	}

	return e, nil
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
