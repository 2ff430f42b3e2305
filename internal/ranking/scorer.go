// Package ranking ranks career records against a free-text skills query.
//
// Three strategies share the Scorer interface: plain substring containment,
// weighted keyword-set overlap and TF-IDF cosine similarity. The strategy is
// chosen by configuration through NewScorer.
package ranking

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/types"
)

// Strategy names a scoring strategy
type Strategy string

const (
	// StrategyContainment keeps records whose skills text contains the query skills
	StrategyContainment Strategy = "containment"
	// StrategyOverlap scores records by weighted skill-set overlap
	StrategyOverlap Strategy = "overlap"
	// StrategySimilarity scores records by TF-IDF cosine similarity
	StrategySimilarity Strategy = "similarity"
)

var (
	// ErrInvalidTopK is returned when fewer than one result is requested
	ErrInvalidTopK = errors.New("top_k must be at least 1")
	// ErrUnknownStrategy is returned for strategy names that are not recognized
	ErrUnknownStrategy = errors.New("unknown scoring strategy")
)

// Scorer ranks the corpus it was built over against a query.
// Implementations are read-only after construction and safe for concurrent use.
type Scorer interface {
	Strategy() Strategy
	Recommend(query string, topK int) ([]types.Recommendation, error)
}

// Strategies returns every supported strategy
func Strategies() []Strategy {
	return []Strategy{StrategyContainment, StrategyOverlap, StrategySimilarity}
}

// ParseStrategy converts a configuration value into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	normalized := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Strategies() {
		if s == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewScorer builds the scorer for the given strategy over the corpus
func NewScorer(strategy Strategy, c *corpus.Corpus) (Scorer, error) {
	if c == nil {
		return nil, fmt.Errorf("corpus is required")
	}

	switch strategy {
	case StrategyContainment:
		return NewContainmentScorer(c), nil
	case StrategyOverlap:
		return NewOverlapScorer(c), nil
	case StrategySimilarity:
		scorer, err := NewSimilarityScorer(c)
		if err != nil {
			return nil, err
		}
		return scorer, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// roundScore clamps a percentage to [0, 100] and rounds it to one decimal.
// Exact halves round away from zero (12.25 -> 12.3), not to even.
func roundScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}

func truncate(recs []types.Recommendation, topK int) []types.Recommendation {
	if len(recs) > topK {
		return recs[:topK]
	}
	return recs
}
