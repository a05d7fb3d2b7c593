package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"worldforge/internal/entity"
)

// MaxResults caps the number of results returned by SearchAcrossEntities.
const MaxResults = 20

// Collections holds the entity lists of one project. Nil lists are empty.
type Collections struct {
	Characters     []entity.Character     `json:"characters,omitempty"`
	Locations      []entity.Location      `json:"locations,omitempty"`
	TimelineEvents []entity.TimelineEvent `json:"timelineEvents,omitempty"`
	MagicSystems   []entity.MagicSystem   `json:"magicSystems,omitempty"`
	LoreEntries    []entity.LoreEntry     `json:"loreEntries,omitempty"`
	Notes          []entity.Note          `json:"notes,omitempty"`
}

// Len returns the total number of entities across all collections.
func (c Collections) Len() int {
	return len(c.Characters) + len(c.Locations) + len(c.TimelineEvents) +
		len(c.MagicSystems) + len(c.LoreEntries) + len(c.Notes)
}

// Entities flattens the collections in search order.
func (c Collections) Entities() []entity.Entity {
	all := make([]entity.Entity, 0, c.Len())
	for _, e := range c.Characters {
		all = append(all, e)
	}
	for _, e := range c.Locations {
		all = append(all, e)
	}
	for _, e := range c.TimelineEvents {
		all = append(all, e)
	}
	for _, e := range c.MagicSystems {
		all = append(all, e)
	}
	for _, e := range c.LoreEntries {
		all = append(all, e)
	}
	for _, e := range c.Notes {
		all = append(all, e)
	}
	return all
}

// Result is one ranked search hit.
type Result struct {
	ID            int         `json:"id"`
	Type          entity.Kind `json:"type"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Category      string      `json:"category,omitempty"`
	Relevance     int         `json:"relevance"`
	MatchedFields []string    `json:"matchedFields"`
}

// SearchAcrossEntities scores every entity in c against query and returns
// the best hits, highest relevance first. Ties keep collection order.
// Queries of one visible character or less return no results.
func SearchAcrossEntities(query string, c Collections) []Result {
	results := []Result{}
	if utf8.RuneCountInString(strings.TrimSpace(query)) <= 1 {
		return results
	}

	terms := Terms(query)
	if len(terms) == 0 {
		return results
	}

	for _, e := range c.Entities() {
		fields := e.SearchFields()
		relevance := Score(terms, fields)
		if relevance <= 0 {
			continue
		}
		ref := e.Ref()
		results = append(results, Result{
			ID:            ref.ID,
			Type:          ref.Kind,
			Title:         e.DisplayTitle(),
			Description:   e.DisplayDescription(),
			Category:      e.DisplayCategory(),
			Relevance:     relevance,
			MatchedFields: MatchedFields(terms, fields),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
