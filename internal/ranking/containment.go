package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/parsing"
	"github.com/jonathan/career-recommender/internal/types"
)

// ContainmentScorer keeps records whose raw skills text contains the query skills as substrings.
// Each career name is reported once, at its first matching record.
type ContainmentScorer struct {
	corpus *corpus.Corpus
}

// NewContainmentScorer creates a ContainmentScorer over the corpus
func NewContainmentScorer(c *corpus.Corpus) *ContainmentScorer {
	return &ContainmentScorer{corpus: c}
}

// Strategy implements Scorer
func (s *ContainmentScorer) Strategy() Strategy {
	return StrategyContainment
}

// Recommend scores each record by the share of query skills found in its skills text
func (s *ContainmentScorer) Recommend(query string, topK int) ([]types.Recommendation, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	queryTokens := parsing.SkillTokens(query)
	results := make([]types.Recommendation, 0)
	if len(queryTokens) == 0 {
		return results, nil
	}

	seenCareers := make(map[string]struct{})
	for i := 0; i < s.corpus.Len(); i++ {
		record := s.corpus.Record(i)
		skillsLower := strings.ToLower(record.Skills)

		found := make([]string, 0, len(queryTokens))
		for _, token := range queryTokens {
			if strings.Contains(skillsLower, token) {
				found = append(found, token)
			}
		}
		if len(found) == 0 {
			continue
		}
		if _, seen := seenCareers[record.Career]; seen {
			continue
		}
		seenCareers[record.Career] = struct{}{}

		score := roundScore(100 * float64(len(found)) / float64(len(queryTokens)))
		rec := types.NewRecommendation(record, score, found)
		rec.Notes = describeMatch(score, found)
		results = append(results, rec)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return truncate(results, topK), nil
}
