// Package types provides type definitions for structured data used throughout the career-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerRecord represents one row of the career corpus.
// Records are immutable once loaded; the derived fields are computed by the corpus loader.
type CareerRecord struct {
	Career         string `json:"career"`
	Skills         string `json:"skills"`
	Description    string `json:"description,omitempty"`
	LearningPath   string `json:"learning_path,omitempty"` // semicolon-delimited steps
	Projects       string `json:"projects,omitempty"`
	Resources      string `json:"resources,omitempty"`
	ResumeKeywords string `json:"resume_keywords,omitempty"`
	Domain         string `json:"domain,omitempty"`

	// SkillSet is the delimiter-split, lower-cased, de-duplicated skills field
	SkillSet []string `json:"-"`
	// NormalizedSkills is the skills field after full text normalization
	NormalizedSkills string `json:"-"`
	// TextBlob is the combined career, normalized skills and description used for vectorization
	TextBlob string `json:"-"`
}
