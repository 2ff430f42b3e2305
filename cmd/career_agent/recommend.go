package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-recommender/internal/export"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a list of skills",
	Long: `Ranks the careers in the corpus against the given skills and prints the top matches with advice.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendFlags      engineFlags
	recommendSkills     string
	recommendSave       string
	recommendShowScores bool
)

func init() {
	recommendFlags.register(recommendCmd)
	recommendFlags.registerOutput(recommendCmd)
	recommendCmd.Flags().StringVar(&recommendSkills, "skills", "", "Skills or interests, comma or semicolon separated (required)")
	recommendCmd.Flags().StringVar(&recommendSave, "save", "", "Also export results: json, csv or both")
	recommendCmd.Flags().BoolVar(&recommendShowScores, "show-scores", true, "Show match scores in verbose output")

	if err := recommendCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	query := strings.TrimSpace(recommendSkills)
	if query == "" {
		return fmt.Errorf("please enter at least one skill")
	}

	save := strings.ToLower(recommendSave)
	switch save {
	case "", "json", "csv", "both":
	default:
		return fmt.Errorf("--save must be json, csv or both, got %q", recommendSave)
	}

	cfg, err := recommendFlags.resolve(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	eng, err := loadEngine(cfg, out)
	if err != nil {
		return err
	}

	recs, err := eng.scorer.Recommend(query, cfg.TopK)
	if err != nil {
		return fmt.Errorf("failed to rank careers: %w", err)
	}

	if cfg.Verbose {
		eng.printer.PrintRecommendations(query, recs, recommendShowScores)
	}
	writeResults(out, query, recs, eng.level)

	if save == "" {
		return nil
	}

	exporter := export.NewExporter(cfg.OutDir, cfg.Prefix)
	var paths []string
	switch save {
	case "json":
		path, err := exporter.SaveJSON(query, recs)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	case "csv":
		path, err := exporter.SaveCSV(query, recs)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	case "both":
		saved, err := exporter.SaveAll(commandContext(cmd), query, recs)
		if err != nil {
			return err
		}
		paths = append(paths, saved.JSON, saved.CSV)
	}

	if cfg.Verbose {
		eng.printer.PrintExports(paths...)
	}
	for _, path := range paths {
		_, _ = fmt.Fprintf(out, "Saved recommendations to: %s\n", path)
	}
	return nil
}
