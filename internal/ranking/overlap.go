package ranking

import (
	"sort"

	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/parsing"
	"github.com/jonathan/career-recommender/internal/types"
)

// Weights for the two coverage ratios of the overlap score
const (
	recordCoverageWeight = 0.6
	queryCoverageWeight  = 0.4
)

// OverlapScorer ranks records by overlap between the query skill set and each record's skill set.
type OverlapScorer struct {
	corpus *corpus.Corpus
}

// NewOverlapScorer creates an OverlapScorer over the corpus
func NewOverlapScorer(c *corpus.Corpus) *OverlapScorer {
	return &OverlapScorer{corpus: c}
}

// Strategy implements Scorer
func (s *OverlapScorer) Strategy() Strategy {
	return StrategyOverlap
}

// Recommend returns up to topK records sharing at least one skill with the query,
// sorted by (score, match count) descending. Exact ties keep corpus order.
func (s *OverlapScorer) Recommend(query string, topK int) ([]types.Recommendation, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	queryTokens := parsing.SkillTokens(query)
	results := make([]types.Recommendation, 0)
	if len(queryTokens) == 0 {
		return results, nil
	}

	querySet := make(map[string]struct{}, len(queryTokens))
	for _, token := range queryTokens {
		querySet[token] = struct{}{}
	}

	for i := 0; i < s.corpus.Len(); i++ {
		record := s.corpus.Record(i)

		matched := make([]string, 0)
		for _, skill := range record.SkillSet {
			if _, ok := querySet[skill]; ok {
				matched = append(matched, skill)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.Strings(matched)

		recordSkillCount := max(len(record.SkillSet), 1)
		ratioToRecord := float64(len(matched)) / float64(recordSkillCount)
		ratioToQuery := float64(len(matched)) / float64(max(len(queryTokens), 1))
		score := roundScore(100 * (recordCoverageWeight*ratioToRecord + queryCoverageWeight*ratioToQuery))

		rec := types.NewRecommendation(record, score, matched)
		rec.CareerSkillCount = recordSkillCount
		rec.Notes = describeMatch(score, matched)
		results = append(results, rec)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].MatchCount > results[j].MatchCount
	})

	return truncate(results, topK), nil
}
