// Package parsing provides text normalization for skill lists and free-text queries.
package parsing

import (
	"regexp"
	"strings"
)

// Synonyms maps common skill abbreviations to their expanded forms.
// Expansion words must not themselves be keys, otherwise NormalizeText stops being idempotent.
var Synonyms = map[string]string{
	"ml":  "machine learning",
	"ai":  "artificial intelligence",
	"nlp": "natural language processing",
	"cv":  "computer vision",
	"db":  "database",
	"js":  "javascript",
	"ts":  "typescript",
	"ds":  "data science",
	"etl": "extract transform load",
	"ci":  "continuous integration",
	"cd":  "continuous delivery",
	"k8s": "kubernetes",
}

var (
	tokenBreakChars = regexp.MustCompile(`[()\[\]\-/]`)
	separatorRun    = regexp.MustCompile(`[,;]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	tokenSeparators = regexp.MustCompile(`[,\s]+`)
	skillDelimiters = regexp.MustCompile(`[;,/|]+`)
)

// NormalizeText canonicalizes free text for vectorization.
// The result is lower-case, punctuation-free words joined by single spaces, with synonym
// expansions placed before the abbreviation they expand and duplicates removed in first-seen order.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = tokenBreakChars.ReplaceAllString(s, " ")
	s = separatorRun.ReplaceAllString(s, ",")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	words := make([]string, 0)
	seen := make(map[string]struct{})
	add := func(word string) {
		if _, exists := seen[word]; exists {
			return
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	for _, token := range tokenSeparators.Split(s, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if expansion, ok := Synonyms[token]; ok {
			for _, word := range strings.Fields(expansion) {
				add(word)
			}
		}
		add(token)
	}

	return strings.Join(words, " ")
}

// SkillTokens splits a delimited skill list on ';', ',', '/' and '|' into lower-cased,
// de-duplicated tokens. Multi-word skills such as "machine learning" stay a single token.
func SkillTokens(s string) []string {
	tokens := make([]string, 0)
	seen := make(map[string]struct{})

	for _, part := range skillDelimiters.Split(s, -1) {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		if _, exists := seen[token]; !exists {
			tokens = append(tokens, token)
			seen[token] = struct{}{}
		}
	}

	return tokens
}

// QueryTokens splits an already normalized string on commas and whitespace into unique tokens.
func QueryTokens(normalized string) []string {
	tokens := make([]string, 0)
	seen := make(map[string]struct{})

	for _, token := range tokenSeparators.Split(normalized, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, exists := seen[token]; !exists {
			tokens = append(tokens, token)
			seen[token] = struct{}{}
		}
	}

	return tokens
}

// SplitList splits a semicolon-delimited field into trimmed, non-empty items.
func SplitList(s string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(s, ";") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
