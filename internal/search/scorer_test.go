package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldforge/internal/entity"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "single term", query: "Fire", want: []string{"fire"}},
		{name: "short tokens dropped", query: "a Dragon of x fire", want: []string{"dragon", "of", "fire"}},
		{name: "double spaces yield empty tokens", query: "ice  storm", want: []string{"ice", "storm"}},
		{name: "only short tokens", query: "a b c", want: []string{}},
		{name: "multibyte rune counts once", query: "é ñu", want: []string{"ñu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terms(tt.query))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		terms  []string
		fields []entity.Field
		want   int
	}{
		{
			name:   "exact match",
			terms:  []string{"fire"},
			fields: []entity.Field{{Name: "name", Value: "Fire"}},
			want:   10,
		},
		{
			name:   "prefix match",
			terms:  []string{"fire"},
			fields: []entity.Field{{Name: "name", Value: "Fire Magic"}},
			want:   5,
		},
		{
			name:   "substring match",
			terms:  []string{"fire"},
			fields: []entity.Field{{Name: "name", Value: "The Fire Lord"}},
			want:   2,
		},
		{
			name:   "no match",
			terms:  []string{"water"},
			fields: []entity.Field{{Name: "name", Value: "The Fire Lord"}},
			want:   0,
		},
		{
			name:   "terms accumulate within a field",
			terms:  []string{"fire", "lord"},
			fields: []entity.Field{{Name: "name", Value: "Fire Lord"}},
			want:   7,
		},
		{
			name:  "fields accumulate for one term",
			terms: []string{"fire"},
			fields: []entity.Field{
				{Name: "name", Value: "Fire"},
				{Name: "description", Value: "born of fire"},
				{Name: "role", Value: ""},
			},
			want: 12,
		},
		{
			name:   "field value is not tokenized",
			terms:  []string{"lord"},
			fields: []entity.Field{{Name: "name", Value: "Fire Lord"}},
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.terms, tt.fields))
		})
	}
}

func TestMatchedFields(t *testing.T) {
	fields := []entity.Field{
		{Name: "name", Value: "Ember"},
		{Name: "description", Value: "A fire mage"},
		{Name: "role", Value: "Mentor"},
		{Name: "backstory", Value: "Lost her tower to FIRE"},
	}

	assert.Equal(t, []string{"description", "backstory"}, MatchedFields([]string{"fire"}, fields))
	assert.Equal(t, []string{"name", "description", "backstory"}, MatchedFields([]string{"fire", "ember"}, fields))
	assert.Empty(t, MatchedFields([]string{"ice"}, fields))
}
