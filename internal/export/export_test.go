package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/career-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedExporter(dir string) *Exporter {
	e := NewExporter(dir, "recs")
	e.now = func() time.Time {
		return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	}
	return e
}

func sampleRecs() []types.Recommendation {
	return []types.Recommendation{
		{
			Career:           "Data Scientist",
			Domain:           "Data",
			Score:            80,
			MatchCount:       2,
			MatchedSkills:    []string{"python", "sql"},
			CareerSkillCount: 3,
			Description:      "Builds models, ships insights",
			LearningPath:     "Python;Stats",
		},
		{
			Career:        "Data Analyst",
			Score:         33.3,
			MatchCount:    1,
			MatchedSkills: []string{"sql"},
		},
	}
}

func TestSaveJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	e := fixedExporter(dir)

	path, err := e.SaveJSON("python, sql", sampleRecs())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recs_20240309_140507.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc types.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "20240309_140507", doc.Timestamp)
	assert.Equal(t, "python, sql", doc.UserInput)
	require.Len(t, doc.Recommendations, 2)
	assert.Equal(t, "Data Scientist", doc.Recommendations[0].Career)
	assert.Equal(t, []string{"python", "sql"}, doc.Recommendations[0].MatchedSkills)
	assert.True(t, strings.Contains(string(data), "\n  \"timestamp\""), "output should be indented")
}

func TestSaveJSON_EmptyRecommendations(t *testing.T) {
	e := fixedExporter(t.TempDir())

	path, err := e.SaveJSON("nothing", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommendations": []`)
}

func TestSaveCSV(t *testing.T) {
	dir := t.TempDir()
	e := fixedExporter(dir)

	path, err := e.SaveCSV("python, sql", sampleRecs())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recs_20240309_140507.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{
		"Data Scientist", "Data", "80.0", "2", "python;sql", "3",
		"Builds models, ships insights", "Python;Stats", "", "", "",
		"python, sql", "20240309_140507",
	}, rows[1])
	assert.Equal(t, "33.3", rows[2][2])
}

func TestSaveCSV_EmptyIsHeaderOnly(t *testing.T) {
	e := fixedExporter(t.TempDir())

	path, err := e.SaveCSV("nothing", []types.Recommendation{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(CSVHeader, ",")+"\n", string(data))
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	e := fixedExporter(dir)

	paths, err := e.SaveAll(context.Background(), "python", sampleRecs())
	require.NoError(t, err)
	assert.FileExists(t, paths.JSON)
	assert.FileExists(t, paths.CSV)
	assert.Equal(t, strings.TrimSuffix(paths.JSON, ".json"), strings.TrimSuffix(paths.CSV, ".csv"))
}

func TestSave_UnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	e := fixedExporter(filepath.Join(blocker, "sub"))
	_, err := e.SaveJSON("python", sampleRecs())
	require.Error(t, err)

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Contains(t, exportErr.Error(), "failed to create output directory")
}

func TestNewExporter_Defaults(t *testing.T) {
	e := NewExporter("", "")
	assert.Equal(t, DefaultDir, e.Dir)
	assert.Equal(t, DefaultPrefix, e.Prefix)
}

func TestWriteJSON_NilRecommendations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, types.ExportDocument{Timestamp: "t", UserInput: "q"}))
	assert.Contains(t, buf.String(), `"recommendations": []`)
}

func TestStamp_UsesLocalTime(t *testing.T) {
	local := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	assert.Equal(t, "20240309_140507", Stamp(local))
	assert.Equal(t, "20240309_140507", Stamp(local.UTC()), "the same instant stamps the same in any zone")
}
