package tags

import (
	"math"
	"sort"
	"strings"
)

const (
	// RecommendThreshold is the confidence a tag must exceed to be recommended.
	RecommendThreshold = 0.3
	// MaxConfidence caps the confidence of any recommendation.
	MaxConfidence = 0.95
	// MaxRecommendations caps the number of analyzed tags returned.
	MaxRecommendations = 8

	matchWeight          = 0.2
	distinctKeywordBonus = 0.1
	maxMatchedKeywords   = 3
)

// Recommendation is a candidate tag with its confidence.
type Recommendation struct {
	Tag             string   `json:"tag"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

// Analyze scores title, content and category against the taxonomy and
// returns up to MaxRecommendations candidates, most confident first.
// Blank content yields no candidates.
func (t *Taxonomy) Analyze(content, title, category string) []Recommendation {
	recs := []Recommendation{}
	if strings.TrimSpace(content) == "" {
		return recs
	}

	fullText := strings.ToLower(title + " " + content + " " + category)

	for _, tk := range t.Tags {
		totalMatches := 0
		var matched []string
		for _, kw := range tk.Keywords {
			n := t.countMatches(kw, fullText)
			if n == 0 {
				continue
			}
			totalMatches += n
			matched = append(matched, kw)
		}
		if len(matched) == 0 {
			continue
		}

		confidence := math.Min(MaxConfidence,
			float64(totalMatches)*matchWeight+float64(len(matched))*distinctKeywordBonus)
		if len(matched) > maxMatchedKeywords {
			matched = matched[:maxMatchedKeywords]
		}
		recs = append(recs, Recommendation{
			Tag:             tk.Tag,
			Confidence:      confidence,
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// Recommended returns the names of analyzed tags whose confidence exceeds
// RecommendThreshold, in ranking order.
func (t *Taxonomy) Recommended(content, title, category string) []string {
	return Filter(t.Analyze(content, title, category))
}

// Filter keeps the names of recommendations whose confidence exceeds
// RecommendThreshold, preserving order.
func Filter(recs []Recommendation) []string {
	names := []string{}
	for _, r := range recs {
		if r.Confidence > RecommendThreshold {
			names = append(names, r.Tag)
		}
	}
	return names
}

// Analyze runs the default taxonomy's analysis.
func Analyze(content, title, category string) []Recommendation {
	return taxonomy.Analyze(content, title, category)
}

// Recommended runs the default taxonomy's recommendation filter.
func Recommended(content, title, category string) []string {
	return taxonomy.Recommended(content, title, category)
}

// CategoryBaseTags looks up seed tags in the default taxonomy.
func CategoryBaseTags(category string) []string {
	return taxonomy.CategoryBaseTags(category)
}
