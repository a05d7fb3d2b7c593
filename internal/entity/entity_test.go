package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("  Magic ")
	require.NoError(t, err)
	assert.Equal(t, KindMagic, got)

	for _, bad := range []string{"", "dragon", "characters"} {
		_, err := ParseKind(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseRef(t *testing.T) {
	ref, err := ParseRef("location:12")
	require.NoError(t, err)
	assert.Equal(t, Ref{Kind: KindLocation, ID: 12}, ref)

	// round-trips with String
	again, err := ParseRef(ref.String())
	require.NoError(t, err)
	assert.Equal(t, ref, again)

	for _, bad := range []string{"location", "planet:1", "note:x", "note:0", "note:-3"} {
		_, err := ParseRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "", Snippet(""))

	exact := strings.Repeat("a", SnippetLength)
	assert.Equal(t, exact, Snippet(exact))

	long := strings.Repeat("é", SnippetLength+1)
	got := Snippet(long)
	assert.Equal(t, strings.Repeat("é", SnippetLength)+"...", got)
}

func TestVariants(t *testing.T) {
	lore := LoreEntry{ID: 4, Title: "The Prophecy", Category: "Religion", Content: strings.Repeat("x", 150)}
	assert.Equal(t, Ref{Kind: KindLore, ID: 4}, lore.Ref())
	assert.Equal(t, "Religion", lore.DisplayCategory())
	assert.Len(t, []rune(lore.DisplayDescription()), SnippetLength+3)

	event := TimelineEvent{ID: 2, Title: "Siege", Category: "war", Significance: "major"}
	assert.Equal(t, "major", event.DisplayCategory())

	loc := Location{ID: 1, Name: "Ashford", Type: "city"}
	assert.Equal(t, "city", loc.DisplayCategory())
	var names []string
	for _, f := range loc.SearchFields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "description", "geography", "culture"}, names)
}

func TestSummarize(t *testing.T) {
	s := Summarize(&Character{ID: 3, Name: "Aria"})
	assert.Equal(t, Summary{Ref: Ref{Kind: KindCharacter, ID: 3}, Name: "Aria"}, s)

	s = Summarize(Note{ID: 8, Title: "Draft"})
	assert.Equal(t, "note:8", s.Ref.String())
	assert.Equal(t, "Draft", s.Name)
}
