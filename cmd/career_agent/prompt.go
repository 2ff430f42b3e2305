package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactively ask for skills and print recommendations",
	Long:  "Loads the corpus once, then repeatedly reads skills from standard input and prints the top matches. Enter a blank line, q, quit or exit to stop.",
	RunE:  runPrompt,
}

var promptFlags engineFlags

func init() {
	promptFlags.register(promptCmd)
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cfg, err := promptFlags.resolve(cmd)
	if err != nil {
		return err
	}

	eng, err := loadEngine(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return promptLoop(cmd.InOrStdin(), cmd.OutOrStdout(), eng)
}

// promptLoop answers one query per input line until EOF or a quit word.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func promptLoop(in io.Reader, out io.Writer, eng *engine) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter your skills (comma or semicolon separated): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		if isQuit(query) {
			return nil
		}

		recs, err := eng.scorer.Recommend(query, eng.cfg.TopK)
		if err != nil {
			return fmt.Errorf("failed to rank careers: %w", err)
		}
		if eng.cfg.Verbose {
			eng.printer.PrintRecommendations(query, recs, true)
		}
		fmt.Fprintln(out)
		writeResults(out, query, recs, eng.level)
		fmt.Fprintln(out)
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "", "q", "quit", "exit":
		return true
	}
	return false
}
