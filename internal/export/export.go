// Package export persists recommendation lists as timestamped JSON and CSV files.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-recommender/internal/types"
	"golang.org/x/sync/errgroup"
)

// TimestampFormat is used for both the filename suffix and the saved_at fields
const TimestampFormat = "20060102_150405"

// Defaults used when an Exporter field is left empty
const (
	DefaultDir    = "results"
	DefaultPrefix = "recs"
)

// CSVHeader is the fixed column order of CSV exports
var CSVHeader = []string{
	"career",
	"domain",
	"score",
	"match_count",
	"matched_skills",
	"career_skill_count",
	"description",
	"learning_path",
	"projects",
	"resources",
	"resume_keywords",
	"user_input",
	"saved_at",
}

// Exporter writes recommendation lists into Dir using Prefix for filenames
type Exporter struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// NewExporter creates an Exporter, applying defaults for empty dir and prefix
func NewExporter(dir, prefix string) *Exporter {
	if dir == "" {
		dir = DefaultDir
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Exporter{Dir: dir, Prefix: prefix, now: time.Now}
}

// Paths holds the files written by SaveAll
type Paths struct {
	JSON string
	CSV  string
}

// SaveJSON writes {timestamp, user_input, recommendations} to {prefix}_{timestamp}.json
func (e *Exporter) SaveJSON(query string, recs []types.Recommendation) (string, error) {
	return e.saveJSONAt(e.timestamp(), query, recs)
}

// SaveCSV writes one row per recommendation to {prefix}_{timestamp}.csv
func (e *Exporter) SaveCSV(query string, recs []types.Recommendation) (string, error) {
	return e.saveCSVAt(e.timestamp(), query, recs)
}

// SaveAll writes the JSON and CSV exports concurrently, sharing one timestamp.
func (e *Exporter) SaveAll(ctx context.Context, query string, recs []types.Recommendation) (*Paths, error) {
	stamp := e.timestamp()
	paths := &Paths{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		path, err := e.saveJSONAt(stamp, query, recs)
		if err != nil {
			return err
		}
		paths.JSON = path
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		path, err := e.saveCSVAt(stamp, query, recs)
		if err != nil {
			return err
		}
		paths.CSV = path
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// NewDocument builds the JSON export layout, never leaving recommendations nil
func NewDocument(stamp, query string, recs []types.Recommendation) types.ExportDocument {
	if recs == nil {
		recs = []types.Recommendation{}
	}
	return types.ExportDocument{
		Timestamp:       stamp,
		UserInput:       query,
		Recommendations: recs,
	}
}

// WriteJSON encodes doc as indented JSON
func WriteJSON(w io.Writer, doc types.ExportDocument) error {
	if doc.Recommendations == nil {
		doc.Recommendations = []types.Recommendation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteCSV writes the header followed by one row per recommendation
func WriteCSV(w io.Writer, query, savedAt string, recs []types.Recommendation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for i := range recs {
		if err := cw.Write(csvRow(&recs[i], query, savedAt)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(rec *types.Recommendation, query, savedAt string) []string {
	return []string{
		rec.Career,
		rec.Domain,
		strconv.FormatFloat(rec.Score, 'f', 1, 64),
		strconv.Itoa(rec.MatchCount),
		strings.Join(rec.MatchedSkills, ";"),
		strconv.Itoa(rec.CareerSkillCount),
		rec.Description,
		rec.LearningPath,
		rec.Projects,
		rec.Resources,
		rec.ResumeKeywords,
		query,
		savedAt,
	}
}

func (e *Exporter) saveJSONAt(stamp, query string, recs []types.Recommendation) (string, error) {
	path, err := e.prepare(stamp, "json")
	if err != nil {
		return "", err
	}
	err = writeFile(path, func(w io.Writer) error {
		return WriteJSON(w, NewDocument(stamp, query, recs))
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (e *Exporter) saveCSVAt(stamp, query string, recs []types.Recommendation) (string, error) {
	path, err := e.prepare(stamp, "csv")
	if err != nil {
		return "", err
	}
	err = writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, query, stamp, recs)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (e *Exporter) prepare(stamp, ext string) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = DefaultDir
	}
	prefix := e.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Path: dir, Message: "failed to create output directory", Cause: err}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", prefix, stamp, ext)), nil
}

func (e *Exporter) timestamp() string {
	now := e.now
	if now == nil {
		now = time.Now
	}
	return Stamp(now())
}

// Stamp formats t as local wall-clock time in TimestampFormat.
func Stamp(t time.Time) string {
	return t.In(time.Local).Format(TimestampFormat)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Message: "failed to create file", Cause: err}
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return &ExportError{Path: path, Message: "failed to write file", Cause: err}
	}
	if err := f.Close(); err != nil {
		return &ExportError{Path: path, Message: "failed to close file", Cause: err}
	}
	return nil
}
