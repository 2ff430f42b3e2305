// Package types provides type definitions for structured data used throughout the career-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation represents a single ranked career for a query
type Recommendation struct {
	Career           string   `json:"career"`
	Domain           string   `json:"domain,omitempty"`
	Score            float64  `json:"score"` // 0-100, one decimal
	MatchCount       int      `json:"match_count"`
	MatchedSkills    []string `json:"matched_skills"`
	CareerSkillCount int      `json:"career_skill_count,omitempty"`
	Description      string   `json:"description,omitempty"`
	LearningPath     string   `json:"learning_path,omitempty"`
	Projects         string   `json:"projects,omitempty"`
	Resources        string   `json:"resources,omitempty"`
	ResumeKeywords   string   `json:"resume_keywords,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// NewRecommendation copies the descriptive passthrough fields of a record into a Recommendation.
func NewRecommendation(record *CareerRecord, score float64, matched []string) Recommendation {
	if matched == nil {
		matched = []string{}
	}
	return Recommendation{
		Career:           record.Career,
		Domain:           record.Domain,
		Score:            score,
		MatchCount:       len(matched),
		MatchedSkills:    matched,
		CareerSkillCount: len(record.SkillSet),
		Description:      record.Description,
		LearningPath:     record.LearningPath,
		Projects:         record.Projects,
		Resources:        record.Resources,
		ResumeKeywords:   record.ResumeKeywords,
	}
}

// ExportDocument is the JSON export file layout
type ExportDocument struct {
	Timestamp       string           `json:"timestamp"`
	UserInput       string           `json:"user_input"`
	Recommendations []Recommendation `json:"recommendations"`
}
