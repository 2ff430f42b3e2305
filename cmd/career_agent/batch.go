package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/career-recommender/internal/export"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run recommendations for every query in a file",
	Long: `Reads one skills query per line (blank lines and lines starting with # are ignored),
ranks each concurrently and exports every result list as JSON and CSV.`,
	RunE: runBatch,
}

var (
	batchFlags       engineFlags
	batchInput       string
	batchConcurrency int
)

func init() {
	batchFlags.register(batchCmd)
	batchFlags.registerOutput(batchCmd)
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Path to a file with one query per line (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum queries processed at once")

	if err := batchCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome of one query
type batchResult struct {
	Query   string
	Matches int
	Paths   *export.Paths
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", batchConcurrency)
	}

	f, err := os.Open(batchInput)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", batchInput, err)
	}
	defer func() { _ = f.Close() }()

	queries, err := readQueries(f)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", batchInput, err)
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", batchInput)
	}

	cfg, err := batchFlags.resolve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	eng, err := loadEngine(cfg, out)
	if err != nil {
		return err
	}

	results, err := runQueries(commandContext(cmd), eng, queries, batchConcurrency)
	if err != nil {
		return err
	}

	for _, r := range results {
		_, _ = fmt.Fprintf(out, "%-40s %d matches -> %s, %s\n", r.Query, r.Matches, r.Paths.JSON, r.Paths.CSV)
	}
	_, _ = fmt.Fprintf(out, "Processed %d queries into %s\n", len(results), cfg.OutDir)
	return nil
}

// runQueries ranks and exports each query with at most limit in flight.
// Results keep input order; each query gets its own numbered filename prefix.
func runQueries(ctx context.Context, eng *engine, queries []string, limit int) ([]batchResult, error) {
	results := make([]batchResult, len(queries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, query := range queries {
		g.Go(func() error {
			recs, err := eng.scorer.Recommend(query, eng.cfg.TopK)
			if err != nil {
				return fmt.Errorf("query %d (%q): %w", i+1, query, err)
			}

			exporter := export.NewExporter(eng.cfg.OutDir, fmt.Sprintf("%s_%03d", eng.cfg.Prefix, i+1))
			paths, err := exporter.SaveAll(gCtx, query, recs)
			if err != nil {
				return fmt.Errorf("query %d (%q): %w", i+1, query, err)
			}

			results[i] = batchResult{Query: query, Matches: len(recs), Paths: paths}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readQueries returns the trimmed non-empty, non-comment lines
func readQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries, scanner.Err()
}
