package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-recommender/internal/advice"
	"github.com/jonathan/career-recommender/internal/types"
)

const noMatchesMessage = "No matching careers found. Try different keywords (e.g., 'python', 'sql', 'ml')."

// writeResults prints the ranked list followed by the advice for each career.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func writeResults(w io.Writer, query string, recs []types.Recommendation, level advice.Level) {
	if len(recs) == 0 {
		fmt.Fprintln(w, noMatchesMessage)
		return
	}

	fmt.Fprintln(w, "Top recommendations:")
	for _, rec := range recs {
		fmt.Fprintf(w, "- %s  (%.1f%%)", rec.Career, rec.Score)
		if len(rec.MatchedSkills) > 0 {
			fmt.Fprintf(w, "  matched: %s", strings.Join(rec.MatchedSkills, ", "))
		}
		fmt.Fprintln(w)
	}

	for i := range recs {
		text, err := advice.Render(query, &recs[i], level)
		if err != nil {
			text = advice.Short(&recs[i])
		}
		fmt.Fprintln(w)
		if level == advice.LevelShort {
			fmt.Fprintf(w, "%s: %s\n", recs[i].Career, text)
			continue
		}
		fmt.Fprint(w, text)
	}
}
