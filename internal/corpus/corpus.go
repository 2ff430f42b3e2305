// Package corpus loads the career corpus from CSV into an immutable in-memory collection.
package corpus

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/career-recommender/internal/parsing"
	"github.com/jonathan/career-recommender/internal/types"
)

// Column keys matched against the CSV header
const (
	ColumnCareer         = "career"
	ColumnSkills         = "skill"
	ColumnDescription    = "description"
	ColumnLearningPath   = "learning_path"
	ColumnProjects       = "projects"
	ColumnResources      = "resources"
	ColumnResumeKeywords = "resume_keywords"
	ColumnDomain         = "domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// separatorPattern matches the word separators allowed in header names
var separatorPattern = regexp.MustCompile(`[\s_-]+`)

// Corpus is a read-only collection of career records.
type Corpus struct {
	records []types.CareerRecord
}

// New builds a corpus from records, computing each record's derived skill fields.
// The input slice is copied.
func New(records []types.CareerRecord) *Corpus {
	c := &Corpus{records: make([]types.CareerRecord, len(records))}
	for i, record := range records {
		c.records[i] = deriveFields(record)
	}
	return c
}

// Load reads a corpus from a CSV file
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open file %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads a corpus from CSV content.
// The career and skills columns are required; other known columns default to empty.
func Parse(r io.Reader) (*Corpus, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Message: "failed to read CSV", Cause: err}
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "CSV is empty"}
		}
		return nil, &LoadError{Message: "failed to read CSV header", Cause: err}
	}

	careerCol, ok := FindColumn(header, ColumnCareer)
	if !ok {
		return nil, &ColumnError{Missing: ColumnCareer, Found: header}
	}
	skillsCol, ok := FindColumn(header, ColumnSkills)
	if !ok {
		return nil, &ColumnError{Missing: ColumnSkills, Found: header}
	}

	optional := make(map[string]int)
	for _, key := range []string{ColumnDescription, ColumnLearningPath, ColumnProjects, ColumnResources, ColumnResumeKeywords, ColumnDomain} {
		if idx, found := FindColumn(header, key); found {
			optional[key] = idx
		}
	}

	records := make([]types.CareerRecord, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to read CSV row %d", line), Cause: err}
		}
		if isBlankRow(row) {
			continue
		}
		// a record without a career name cannot be recommended or exported
		if strings.TrimSpace(cellAt(row, careerCol)) == "" {
			continue
		}

		field := func(idx int) string {
			return strings.TrimSpace(cellAt(row, idx))
		}
		optionalField := func(key string) string {
			idx, found := optional[key]
			if !found {
				return ""
			}
			return field(idx)
		}

		records = append(records, types.CareerRecord{
			Career:         field(careerCol),
			Skills:         field(skillsCol),
			Description:    optionalField(ColumnDescription),
			LearningPath:   optionalField(ColumnLearningPath),
			Projects:       optionalField(ColumnProjects),
			Resources:      optionalField(ColumnResources),
			ResumeKeywords: optionalField(ColumnResumeKeywords),
			Domain:         optionalField(ColumnDomain),
		})
	}

	return New(records), nil
}

// FindColumn returns the index of the header column matching key.
// Names are compared case-insensitively with spaces, underscores and dashes
// treated as one separator, so "Learning Path" matches "learning_path".
// An exact match wins over a prefix match.
func FindColumn(header []string, key string) (int, bool) {
	key = canonicalColumn(key)
	for i, column := range header {
		if canonicalColumn(column) == key {
			return i, true
		}
	}
	for i, column := range header {
		if strings.HasPrefix(canonicalColumn(column), key) {
			return i, true
		}
	}
	return -1, false
}

func canonicalColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return separatorPattern.ReplaceAllString(name, " ")
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Len returns the number of records
func (c *Corpus) Len() int {
	return len(c.records)
}

// Record returns the record at index i.
// The returned pointer must not be modified.
func (c *Corpus) Record(i int) *types.CareerRecord {
	return &c.records[i]
}

// Records returns a copy of all records in corpus order
func (c *Corpus) Records() []types.CareerRecord {
	out := make([]types.CareerRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Careers returns the unique career names in corpus order
func (c *Corpus) Careers() []string {
	careers := make([]string, 0, len(c.records))
	seen := make(map[string]struct{})
	for _, record := range c.records {
		if record.Career == "" {
			continue
		}
		if _, exists := seen[record.Career]; !exists {
			careers = append(careers, record.Career)
			seen[record.Career] = struct{}{}
		}
	}
	return careers
}

// deriveFields fills the normalized skill set, normalized skills text and combined text blob
func deriveFields(record types.CareerRecord) types.CareerRecord {
	record.SkillSet = parsing.SkillTokens(record.Skills)
	record.NormalizedSkills = parsing.NormalizeText(record.Skills)
	record.TextBlob = strings.TrimSpace(record.Career + " " + record.NormalizedSkills + " " + record.Description)
	return record
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
