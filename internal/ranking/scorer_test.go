package ranking

import (
	"testing"

	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{"containment", StrategyContainment, false},
		{"Overlap", StrategyOverlap, false},
		{" similarity ", StrategySimilarity, false},
		{"embedding", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewScorer_AllStrategies(t *testing.T) {
	c := wideCorpus()

	for _, strategy := range Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			scorer, err := NewScorer(strategy, c)
			require.NoError(t, err)
			assert.Equal(t, strategy, scorer.Strategy())

			recs, err := scorer.Recommend("python, sql", 2)
			require.NoError(t, err)
			require.NotEmpty(t, recs)
			assert.LessOrEqual(t, len(recs), 2)
			assert.Contains(t, []string{"Data Scientist", "Data Engineer"}, recs[0].Career)
		})
	}
}

func TestNewScorer_Errors(t *testing.T) {
	_, err := NewScorer("unknown", wideCorpus())
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = NewScorer(StrategyOverlap, nil)
	assert.Error(t, err)

	_, err = NewScorer(StrategySimilarity, corpus.New(nil))
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 80.0, roundScore(79.99999999999999))
	assert.Equal(t, 33.3, roundScore(33.333))
	assert.Equal(t, 0.0, roundScore(-5))
	assert.Equal(t, 100.0, roundScore(100.0000001))
	assert.Equal(t, 12.3, roundScore(12.25), "halves round away from zero")
	assert.Equal(t, 62.5, roundScore(62.5))
}

func TestDescribeMatch(t *testing.T) {
	assert.Equal(t, "Strong match (python, sql)", describeMatch(80, []string{"python", "sql"}))
	assert.Equal(t, "Moderate match (go)", describeMatch(45, []string{"go"}))
	assert.Equal(t, "Weak match by overall profile similarity", describeMatch(12.5, nil))
	assert.Equal(t, "No meaningful overlap", describeMatch(0, nil))
}
