package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"whitespace only", "  \t\n ", ""},
		{"separators only", ",;,;", ""},
		{"lower-cases", "Python, SQL", "python sql"},
		{"punctuation breaks tokens", "front-end (react)/[vue]", "front end react vue"},
		{"separator runs collapse", "python;;,sql", "python sql"},
		{"synonym expands before token", "ml", "machine learning ml"},
		{"synonym inside list", "python, nlp", "python natural language processing nlp"},
		{"deduplicates in first-seen order", "sql python sql", "sql python"},
		{"expansion dedupes against earlier words", "machine learning, ml", "machine learning ml"},
		{"keeps other punctuation", "c++, node.js", "c++ node.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"ml",
		"Python, SQL, Machine Learning",
		"HTML, CSS, JavaScript, React",
		"AWS; Docker / Kubernetes | k8s",
		"ci/cd, etl, (nlp) [cv] ds db js ts ai",
		"  spaced   out ,, input ;; ",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once), "normalize should be idempotent for %q", input)
	}
}

func TestNormalizeText_SynonymExpansion(t *testing.T) {
	assert.Contains(t, NormalizeText("ml"), "machine learning")
	assert.Contains(t, NormalizeText("JS"), "javascript")
	assert.Contains(t, NormalizeText("ci/cd"), "continuous integration")
	assert.Contains(t, NormalizeText("ci/cd"), "continuous delivery")
}

func TestSynonyms_ExpansionWordsAreNotKeys(t *testing.T) {
	for key, expansion := range Synonyms {
		for _, word := range strings.Fields(expansion) {
			_, isKey := Synonyms[word]
			assert.False(t, isKey, "expansion word %q of %q must not be a synonym key", word, key)
		}
	}
}

func TestSkillTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"semicolons", "python;sql;machine learning", []string{"python", "sql", "machine learning"}},
		{"mixed delimiters", "Python, SQL / Go | Rust", []string{"python", "sql", "go", "rust"}},
		{"delimiter runs", "python;;,sql", []string{"python", "sql"}},
		{"deduplicates case-insensitively", "Python;python;PYTHON", []string{"python"}},
		{"trims whitespace", "  python ;  sql  ", []string{"python", "sql"}},
		{"whitespace only", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillTokens(tt.input))
		})
	}
}

func TestQueryTokens(t *testing.T) {
	assert.Equal(t, []string{"machine", "learning", "ml"}, QueryTokens("machine learning ml"))
	assert.Equal(t, []string{"a", "b"}, QueryTokens("a, b a"))
	assert.Equal(t, []string{}, QueryTokens(""))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Learn Python", "Build models"}, SplitList(" Learn Python ; ;Build models;"))
	assert.Equal(t, []string{}, SplitList(""))
}
