package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRec(recs []Recommendation, tag string) (Recommendation, bool) {
	for _, r := range recs {
		if r.Tag == tag {
			return r, true
		}
	}
	return Recommendation{}, false
}

func TestAnalyze_BlankContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		got := Analyze(content, "Anything", "History")
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestAnalyze_ProphecyExample(t *testing.T) {
	got := Analyze("The ancient prophecy foretold a great war", "", "")
	require.Len(t, got, 3)

	assert.Equal(t, "prophecy", got[0].Tag)
	assert.InDelta(t, 0.6, got[0].Confidence, 1e-9)
	assert.Equal(t, []string{"prophecy", "foretold"}, got[0].MatchedKeywords)

	for _, tag := range []string{"ancient", "war"} {
		rec, ok := findRec(got, tag)
		require.True(t, ok, "expected %q among recommendations", tag)
		assert.Contains(t, rec.MatchedKeywords, tag)
		assert.LessOrEqual(t, rec.Confidence, MaxConfidence)
	}
	// equal confidences keep taxonomy order
	assert.Equal(t, "ancient", got[1].Tag)
	assert.Equal(t, "war", got[2].Tag)
}

func TestAnalyze_PrefixAtWordBoundary(t *testing.T) {
	got := Analyze("A magical sorcerer", "", "")
	rec, ok := findRec(got, "magic")
	require.True(t, ok)
	assert.Equal(t, []string{"magic", "sorcer"}, rec.MatchedKeywords)

	got = Analyze("the sward was green", "", "")
	_, ok = findRec(got, "war")
	assert.False(t, ok, "keyword inside a word must not match")
}

func TestAnalyze_TitleAndCategoryCount(t *testing.T) {
	got := Analyze("Nothing much here", "Dragon", "Creatures")
	rec, ok := findRec(got, "creature")
	require.True(t, ok)
	assert.Equal(t, []string{"creature", "dragon"}, rec.MatchedKeywords)
	assert.InDelta(t, 0.6, rec.Confidence, 1e-9)
}

func TestAnalyze_ConfidenceCapped(t *testing.T) {
	got := Analyze("magic magic magic magic magic spell", "", "")
	rec, ok := findRec(got, "magic")
	require.True(t, ok)
	assert.Equal(t, MaxConfidence, rec.Confidence)
}

func TestAnalyze_MatchedKeywordsLimitedInTaxonomyOrder(t *testing.T) {
	got := Analyze("wizard cast a spell of arcane magic with mana", "", "")
	rec, ok := findRec(got, "magic")
	require.True(t, ok)
	assert.Equal(t, []string{"magic", "spell", "arcane"}, rec.MatchedKeywords)
	// 5 matches over 5 distinct keywords
	assert.Equal(t, MaxConfidence, rec.Confidence)
}

func TestAnalyze_TopEight(t *testing.T) {
	content := "magic ancient prophecy war temple king secret history legend relic dragon forest"
	got := Analyze(content, "", "")
	assert.Len(t, got, MaxRecommendations)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
	}
}

func TestAnalyze_Monotonic(t *testing.T) {
	one, _ := findRec(Analyze("a battle", "", ""), "war")
	two, _ := findRec(Analyze("a battle and another battle", "", ""), "war")
	three, _ := findRec(Analyze("a battle and another battle in the war", "", ""), "war")
	assert.Less(t, one.Confidence, two.Confidence)
	assert.Less(t, two.Confidence, three.Confidence)
}

func TestRecommended_SubsetOfAnalyze(t *testing.T) {
	inputs := [][3]string{
		{"The ancient prophecy foretold a great war", "", ""},
		{"The king and queen ruled the kingdom from the throne", "Royal Court", "Politics"},
		{"A quiet afternoon", "", ""},
		{"", "War", "History"},
	}
	for _, in := range inputs {
		analyzed := Analyze(in[0], in[1], in[2])
		recommended := Recommended(in[0], in[1], in[2])
		require.NotNil(t, recommended)

		prev := -1
		for _, tag := range recommended {
			idx := -1
			for i, r := range analyzed {
				if r.Tag == tag {
					idx = i
					assert.Greater(t, r.Confidence, RecommendThreshold)
				}
			}
			require.NotEqual(t, -1, idx, "recommended tag %q missing from analysis", tag)
			assert.Greater(t, idx, prev, "recommended order must follow analysis order")
			prev = idx
		}
	}
}

func TestRecommended_Politics(t *testing.T) {
	got := Recommended("The king and queen ruled the kingdom from the throne", "", "")
	require.NotEmpty(t, got)
	assert.Equal(t, "politics", got[0])
}
