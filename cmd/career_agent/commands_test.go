package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/career-recommender/internal/advice"
	"github.com/jonathan/career-recommender/internal/export"
	"github.com/jonathan/career-recommender/internal/schemas"
	"github.com/jonathan/career-recommender/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	writeResults(&buf, "cooking", nil, advice.LevelDeep)
	assert.Equal(t, noMatchesMessage+"\n", buf.String())
}

func TestWriteResults_Deep(t *testing.T) {
	recs := []types.Recommendation{
		{Career: "Data Scientist", Score: 90, MatchedSkills: []string{"python", "sql"}, Description: "Builds predictive models"},
	}

	var buf bytes.Buffer
	writeResults(&buf, "python, sql", recs, advice.LevelDeep)

	out := buf.String()
	assert.Contains(t, out, "Top recommendations:")
	assert.Contains(t, out, "- Data Scientist  (90.0%)  matched: python, sql")
	assert.Contains(t, out, "## Recommendation for Data Scientist")
}

func TestWriteResults_Short(t *testing.T) {
	recs := []types.Recommendation{
		{Career: "Cloud Engineer", Score: 50},
	}

	var buf bytes.Buffer
	writeResults(&buf, "aws", recs, advice.LevelShort)

	out := buf.String()
	assert.Contains(t, out, "- Cloud Engineer  (50.0%)\n")
	assert.Contains(t, out, "Cloud Engineer: "+advice.NoDescription)
	assert.NotContains(t, out, "## Recommendation")
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"q", true},
		{"QUIT", true},
		{"exit", true},
		{"python", false},
		{"quitting", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuit(tt.line))
		})
	}
}

func TestPromptLoop(t *testing.T) {
	eng := newTestEngine(t, io.Discard)

	in := strings.NewReader("python, sql, machine learning\ncooking\nquit\npython\n")
	var out bytes.Buffer
	require.NoError(t, promptLoop(in, &out, eng))

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "Enter your skills (comma or semicolon separated): "))
	assert.Contains(t, text, "- Data Scientist  (90.0%)")
	assert.Contains(t, text, noMatchesMessage)
	assert.Equal(t, 1, strings.Count(text, "Top recommendations:"), "input after quit must not be answered")
}

func TestPromptLoop_EOF(t *testing.T) {
	eng := newTestEngine(t, io.Discard)

	var out bytes.Buffer
	require.NoError(t, promptLoop(strings.NewReader("aws, docker"), &out, eng))
	assert.Contains(t, out.String(), "- Cloud Engineer")
}

func TestReadQueries(t *testing.T) {
	input := "# careers to try\npython, sql\n\n   \n  aws, docker  \n#skip\nhtml\n"
	queries, err := readQueries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"python, sql", "aws, docker", "html"}, queries)
}

func TestRunQueries(t *testing.T) {
	eng := newTestEngine(t, io.Discard)
	queries := []string{"python, sql, machine learning", "aws, docker", "cooking"}

	results, err := runQueries(context.Background(), eng, queries, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, queries[i], r.Query)
		require.NotNil(t, r.Paths)
		assert.FileExists(t, r.Paths.JSON)
		assert.FileExists(t, r.Paths.CSV)
		assert.NoError(t, schemas.ValidateExportFile(r.Paths.JSON))
	}

	assert.Equal(t, 2, results[0].Matches)
	assert.Equal(t, 0, results[2].Matches)
	assert.True(t, strings.HasPrefix(filepath.Base(results[0].Paths.JSON), "recs_001_"))
	assert.True(t, strings.HasPrefix(filepath.Base(results[2].Paths.CSV), "recs_003_"))
}

func TestRunQueries_CancelledContext(t *testing.T) {
	eng := newTestEngine(t, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runQueries(ctx, eng, []string{"python"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func newValidateCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{Use: "validate-export"}
	cmd.SetOut(out)
	return cmd
}

func TestValidateExport(t *testing.T) {
	dir := t.TempDir()
	exporter := export.NewExporter(dir, "recs")
	good, err := exporter.SaveJSON("python", []types.Recommendation{
		{Career: "Data Scientist", Score: 50, MatchCount: 1, MatchedSkills: []string{"python"}},
	})
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"timestamp":"yesterday","user_input":"x"}`), 0644))

	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runValidateExport(newValidateCommand(&buf), []string{good}))
		assert.Contains(t, buf.String(), "✓ "+good)
	})

	t.Run("mixed", func(t *testing.T) {
		var buf bytes.Buffer
		err := runValidateExport(newValidateCommand(&buf), []string{good, bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 files failed validation")
		assert.Contains(t, buf.String(), "✗ "+bad)
	})
}
