package search

import (
	"strings"
	"unicode/utf8"

	"worldforge/internal/entity"
)

const (
	exactMatchScore  = 10
	prefixMatchScore = 5
	substringScore   = 2
)

// Terms normalizes a query into search terms: lowercased, split on single
// spaces, tokens of one rune or less dropped.
func Terms(query string) []string {
	parts := strings.Split(strings.ToLower(query), " ")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) > 1 {
			terms = append(terms, p)
		}
	}
	return terms
}

// Score sums the relevance of every (field, term) pair. A field value is
// compared as one whole string and never tokenized, so exact and prefix
// matches mostly fire on short fields such as names; substring matches
// carry multi-word fields.
func Score(terms []string, fields []entity.Field) int {
	total := 0
	for _, f := range fields {
		value := strings.ToLower(f.Value)
		for _, term := range terms {
			switch {
			case value == term:
				total += exactMatchScore
			case strings.HasPrefix(value, term):
				total += prefixMatchScore
			case strings.Contains(value, term):
				total += substringScore
			}
		}
	}
	return total
}

// MatchedFields returns the names of fields containing at least one term,
// in field order.
func MatchedFields(terms []string, fields []entity.Field) []string {
	matched := make([]string, 0, len(fields))
	for _, f := range fields {
		value := strings.ToLower(f.Value)
		for _, term := range terms {
			if strings.Contains(value, term) {
				matched = append(matched, f.Name)
				break
			}
		}
	}
	return matched
}
