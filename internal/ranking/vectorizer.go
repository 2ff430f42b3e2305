package ranking

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyVocabulary is returned when fitting finds no terms in the documents
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no terms")

// wordPattern matches runs of at least two letters, digits or underscores
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// VectorizerOptions configures term extraction
type VectorizerOptions struct {
	MinN        int // smallest n-gram size
	MaxN        int // largest n-gram size
	MaxFeatures int // vocabulary cap by corpus term count; 0 means unlimited
}

// DefaultVectorizerOptions returns unigrams and bigrams capped at 6000 features
func DefaultVectorizerOptions() VectorizerOptions {
	return VectorizerOptions{MinN: 1, MaxN: 2, MaxFeatures: 6000}
}

// SparseVector holds non-zero weights keyed by ascending vocabulary index
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries
func (v SparseVector) Len() int {
	return len(v.Indices)
}

// Vectorizer converts text into L2-normalized TF-IDF vectors over a fitted vocabulary.
// It is immutable after FitVectorizer returns.
type Vectorizer struct {
	opts       VectorizerOptions
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// FitVectorizer learns the vocabulary and inverse document frequencies of documents.
// IDF is smoothed: ln((1+n)/(1+df)) + 1.
func FitVectorizer(documents []string, opts VectorizerOptions) (*Vectorizer, error) {
	if opts.MinN < 1 {
		opts.MinN = 1
	}
	if opts.MaxN < opts.MinN {
		opts.MaxN = opts.MinN
	}

	termCounts := make(map[string]int)
	docFrequencies := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]struct{})
		for _, term := range analyze(doc, opts.MinN, opts.MaxN) {
			termCounts[term]++
			if _, exists := seen[term]; !exists {
				docFrequencies[term]++
				seen[term] = struct{}{}
			}
		}
	}

	if len(termCounts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(termCounts))
	for term := range termCounts {
		terms = append(terms, term)
	}

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if termCounts[terms[i]] != termCounts[terms[j]] {
				return termCounts[terms[i]] > termCounts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)

	v := &Vectorizer{
		opts:       opts,
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
	}

	n := float64(len(documents))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFrequencies[term]))) + 1
	}

	return v, nil
}

// Transform vectorizes text with the fitted vocabulary. Unknown terms are ignored.
func (v *Vectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range analyze(text, v.opts.MinN, v.opts.MaxN) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		weight := counts[idx] * v.idf[idx]
		vec.Values = append(vec.Values, weight)
		norm += weight * weight
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// VocabularySize returns the number of fitted terms
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// Terms returns the fitted vocabulary in index order
func (v *Vectorizer) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// CosineSimilarity computes the cosine of the angle between two sparse vectors.
// Returns 0 when either vector is zero; the result is clamped to [0, 1].
func CosineSimilarity(a, b SparseVector) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}

	var dot float64
	for i, j := 0, 0; i < a.Len() && j < b.Len(); {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}

	normA, normB := squaredNorm(a), squaredNorm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}

func squaredNorm(v SparseVector) float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return sum
}

// analyze lower-cases text, extracts words and builds n-grams of consecutive words
func analyze(text string, minN, maxN int) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	terms := make([]string, 0, len(words)*(maxN-minN+1))
	for n := minN; n <= maxN; n++ {
		if n == 1 {
			terms = append(terms, words...)
			continue
		}
		for i := 0; i+n <= len(words); i++ {
			terms = append(terms, strings.Join(words[i:i+n], " "))
		}
	}
	return terms
}
