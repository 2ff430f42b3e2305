package advice

import (
	"strings"
	"testing"

	"github.com/jonathan/career-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecommendation() *types.Recommendation {
	return &types.Recommendation{
		Career:         "Data Scientist",
		Score:          80,
		MatchedSkills:  []string{"python", "sql"},
		Description:    "Builds predictive models.",
		LearningPath:   "Learn Python; Study statistics ;; Ship a model",
		Projects:       "Churn model;Sales forecast;Recommender;Image classifier",
		Resources:      "Kaggle;fast.ai;Coursera;Papers",
		ResumeKeywords: "machine learning, pandas",
	}
}

func TestDeep_AllSections(t *testing.T) {
	text, err := Deep("python, sql", fullRecommendation())
	require.NoError(t, err)

	assert.Contains(t, text, "## Recommendation for Data Scientist")
	assert.Contains(t, text, "Based on your input (*python, sql*)")
	assert.Contains(t, text, "(80.0% similarity)")
	assert.Contains(t, text, "**About the role:** Builds predictive models.")
	assert.Contains(t, text, "matching this career: python, sql.")
	assert.Contains(t, text, "- Learn Python\n- Study statistics\n- Ship a model\n")
	assert.Contains(t, text, "**Resources to learn from:** Kaggle, fast.ai, Coursera\n")
	assert.Contains(t, text, "**Resume keywords & entry titles:** machine learning, pandas")
	assert.Contains(t, text, "Junior Data Scientist, Internship, Associate Data Scientist")
	assert.Contains(t, text, "scores 80.0% by content similarity")
}

func TestDeep_TruncatesProjectsAndResources(t *testing.T) {
	text, err := Deep("python", fullRecommendation())
	require.NoError(t, err)

	assert.Contains(t, text, "- Recommender\n")
	assert.NotContains(t, text, "Image classifier")
	assert.NotContains(t, text, "Papers")
}

func TestDeep_EmptyFieldsFallBackToFiller(t *testing.T) {
	rec := &types.Recommendation{Career: "Analyst", Score: 12.5}

	text, err := Deep("excel", rec)
	require.NoError(t, err)

	for _, filler := range []string{NoDescription, NoMatchedSkills, NoLearningPath, NoProjects, NoResources} {
		assert.Contains(t, text, filler)
	}
	assert.Contains(t, text, "**Resume keywords & entry titles:** N/A")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "Builds predictive models.", Short(fullRecommendation()))
	assert.Equal(t, NoDescription, Short(&types.Recommendation{Description: "   "}))
}

func TestRender_Levels(t *testing.T) {
	rec := fullRecommendation()

	short, err := Render("python", rec, LevelShort)
	require.NoError(t, err)
	assert.Equal(t, rec.Description, short)

	deep, err := Render("python", rec, LevelDeep)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(deep, "## Recommendation for"))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelDeep, level)

	level, err = ParseLevel("SHORT")
	require.NoError(t, err)
	assert.Equal(t, LevelShort, level)

	_, err = ParseLevel("medium")
	assert.Error(t, err)
}
