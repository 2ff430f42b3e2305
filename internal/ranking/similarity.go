package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/parsing"
	"github.com/jonathan/career-recommender/internal/types"
)

// SimilarityScorer ranks records by TF-IDF cosine similarity between the normalized query
// and each record's combined career, skills and description text.
type SimilarityScorer struct {
	corpus     *corpus.Corpus
	vectorizer *Vectorizer
	matrix     []SparseVector
}

// NewSimilarityScorer fits the vectorizer over the corpus.
// It fails when the corpus yields no vocabulary, since the scorer cannot run without one.
func NewSimilarityScorer(c *corpus.Corpus) (*SimilarityScorer, error) {
	documents := make([]string, c.Len())
	for i := range documents {
		documents[i] = c.Record(i).TextBlob
	}

	vectorizer, err := FitVectorizer(documents, DefaultVectorizerOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}

	matrix := make([]SparseVector, len(documents))
	for i, doc := range documents {
		matrix[i] = vectorizer.Transform(doc)
	}

	return &SimilarityScorer{
		corpus:     c,
		vectorizer: vectorizer,
		matrix:     matrix,
	}, nil
}

// Strategy implements Scorer
func (s *SimilarityScorer) Strategy() Strategy {
	return StrategySimilarity
}

// Vectorizer returns the fitted vectorizer
func (s *SimilarityScorer) Vectorizer() *Vectorizer {
	return s.vectorizer
}

// Recommend returns the topK most similar records. Records with zero similarity are not
// filtered out. Equal similarities keep ascending corpus order.
func (s *SimilarityScorer) Recommend(query string, topK int) ([]types.Recommendation, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	normalized := parsing.NormalizeText(query)
	if normalized == "" {
		return []types.Recommendation{}, nil
	}

	queryVector := s.vectorizer.Transform(normalized)
	similarities := make([]float64, len(s.matrix))
	order := make([]int, len(s.matrix))
	for i, docVector := range s.matrix {
		similarities[i] = CosineSimilarity(queryVector, docVector)
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return similarities[order[i]] > similarities[order[j]]
	})
	if len(order) > topK {
		order = order[:topK]
	}

	queryTokens := parsing.QueryTokens(normalized)
	results := make([]types.Recommendation, 0, len(order))
	for _, idx := range order {
		record := s.corpus.Record(idx)

		// informational only: naive containment of query tokens in the normalized skills
		matched := make([]string, 0)
		for _, token := range queryTokens {
			if strings.Contains(record.NormalizedSkills, token) {
				matched = append(matched, token)
			}
		}

		score := roundScore(similarities[idx] * 100)
		rec := types.NewRecommendation(record, score, matched)
		rec.Notes = describeMatch(score, matched)
		results = append(results, rec)
	}

	return results, nil
}
