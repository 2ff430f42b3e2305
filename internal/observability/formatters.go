// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// CorpusSummary describes a loaded corpus for PrintCorpusSummary
type CorpusSummary struct {
	Path       string
	Records    int
	Careers    []string
	Strategy   string
	Vocabulary int // 0 when the strategy has no vectorizer
}

// PrintCorpusSummary outputs what was loaded and how it will be scored.
func (p *Printer) PrintCorpusSummary(summary CorpusSummary) {
	var sb strings.Builder

	if summary.Path != "" {
		sb.WriteString(fmt.Sprintf("Source:     %s\n", summary.Path))
	}
	sb.WriteString(fmt.Sprintf("Records:    %d\n", summary.Records))
	sb.WriteString(fmt.Sprintf("Careers:    %d unique\n", len(summary.Careers)))
	sb.WriteString(fmt.Sprintf("Strategy:   %s\n", summary.Strategy))
	if summary.Vocabulary > 0 {
		sb.WriteString(fmt.Sprintf("Vocabulary: %d terms\n", summary.Vocabulary))
	}

	if len(summary.Careers) > 0 {
		sb.WriteString("\n")
		count := min(len(summary.Careers), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Careers[i]))
		}
		if len(summary.Careers) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Careers)-maxItemsToShow))
		}
	}

	p.printBox("CORPUS", sb.String())
}

// PrintRecommendations outputs a ranked summary of the results for a query.
func (p *Printer) PrintRecommendations(query string, recs []types.Recommendation, showScores bool) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query: %s\n", query))
	sb.WriteString("\n")

	if len(recs) == 0 {
		sb.WriteString("No matching careers.\n")
		p.printBox("RECOMMENDATIONS", sb.String())
		return
	}

	for i, rec := range recs {
		if showScores {
			sb.WriteString(fmt.Sprintf("%d. %s (%.1f)\n", i+1, rec.Career, rec.Score))
		} else {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec.Career))
		}
		if len(rec.MatchedSkills) > 0 {
			shown := rec.MatchedSkills
			if len(shown) > maxItemsToShow {
				shown = shown[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("   matched: %s", strings.Join(shown, ", ")))
			if len(rec.MatchedSkills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf(" (+%d)", len(rec.MatchedSkills)-maxItemsToShow))
			}
			sb.WriteString("\n")
		}
		if rec.Notes != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", rec.Notes))
		}
	}

	p.printBox(fmt.Sprintf("RECOMMENDATIONS (%d)", len(recs)), sb.String())
}

// PrintExports lists the files written for a query.
func (p *Printer) PrintExports(paths ...string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  • %s\n", path))
	}
	p.printBox("SAVED", sb.String())
}
