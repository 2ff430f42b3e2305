// Package advice assembles human-readable guidance text for a recommended career.
package advice

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/career-recommender/internal/parsing"
	"github.com/jonathan/career-recommender/internal/types"
)

// Level selects how much text is produced per recommendation
type Level string

const (
	// LevelDeep renders the full multi-section guidance
	LevelDeep Level = "deep"
	// LevelShort renders only the role description
	LevelShort Level = "short"
)

// maxListItems caps projects and resources
const maxListItems = 3

// Filler text used when a record field is empty
const (
	NoDescription   = "No description available."
	NoMatchedSkills = "While no exact keywords matched, the profile aligns semantically with this career according to skill and description similarity."
	NoLearningPath  = "Start with fundamentals in programming and domain topics, then build small projects and iterate."
	NoProjects      = "Build 2-3 small projects that highlight core skills and deployment."
	NoResources     = "Online courses and documentation for core libraries and tools."
	NoKeywords      = "N/A"
)

const deepTemplate = `## Recommendation for {{.Career}}

**Summary:** Based on your input (*{{.Query}}*), the role **{{.Career}}** is a strong match ({{.Score}}% similarity).

**About the role:** {{.Description}}

**Why this fits you:** {{if .Matched}}You already have keywords matching this career: {{join .Matched ", "}}. These skills are directly used in day-to-day work for this role.{{else}}{{.NoMatched}}{{end}}

**Step-by-step learning path:**
{{range .Steps}}- {{.}}
{{end}}
**Recommended starter projects:**
{{range .Projects}}- {{.}}
{{end}}
**Resources to learn from:** {{.Resources}}

**Resume keywords & entry titles:** {{.ResumeKeywords}}
**Next roles you can aim for:** Junior {{.Career}}, Internship, Associate {{.Career}}
**Confidence:** This recommendation scores {{.Score}}% by content similarity. Combine with practical projects to improve chances.
`

var deepTmpl = template.Must(template.New("advice").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(deepTemplate))

// templateData is the data passed to the advice template
type templateData struct {
	Career         string
	Query          string
	Score          string
	Description    string
	Matched        []string
	NoMatched      string
	Steps          []string
	Projects       []string
	Resources      string
	ResumeKeywords string
}

// ParseLevel converts a detail level name, defaulting to LevelDeep for an empty value
func ParseLevel(name string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(name))) {
	case "", LevelDeep:
		return LevelDeep, nil
	case LevelShort:
		return LevelShort, nil
	default:
		return "", fmt.Errorf("unknown detail level %q (valid: deep, short)", name)
	}
}

// Render produces the advice text for rec at the requested level
func Render(query string, rec *types.Recommendation, level Level) (string, error) {
	if level == LevelShort {
		return Short(rec), nil
	}
	return Deep(query, rec)
}

// Short returns the role description, or filler text when it is empty
func Short(rec *types.Recommendation) string {
	if strings.TrimSpace(rec.Description) == "" {
		return NoDescription
	}
	return rec.Description
}

// Deep renders the multi-section guidance: verdict, rationale, learning path,
// up to three projects and resources, resume keywords and a confidence note.
func Deep(query string, rec *types.Recommendation) (string, error) {
	data := buildTemplateData(query, rec)

	var sb strings.Builder
	if err := deepTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute advice template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}

func buildTemplateData(query string, rec *types.Recommendation) templateData {
	data := templateData{
		Career:         rec.Career,
		Query:          query,
		Score:          fmt.Sprintf("%.1f", rec.Score),
		Description:    Short(rec),
		Matched:        rec.MatchedSkills,
		NoMatched:      NoMatchedSkills,
		Steps:          parsing.SplitList(rec.LearningPath),
		Projects:       firstN(parsing.SplitList(rec.Projects), maxListItems),
		Resources:      strings.Join(firstN(parsing.SplitList(rec.Resources), maxListItems), ", "),
		ResumeKeywords: strings.TrimSpace(rec.ResumeKeywords),
	}

	if len(data.Steps) == 0 {
		data.Steps = []string{NoLearningPath}
	}
	if len(data.Projects) == 0 {
		data.Projects = []string{NoProjects}
	}
	if data.Resources == "" {
		data.Resources = NoResources
	}
	if data.ResumeKeywords == "" {
		data.ResumeKeywords = NoKeywords
	}

	return data
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
