package tags

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// taxonomy is decoded once at startup and never mutated afterwards.
var taxonomy = mustLoadTaxonomy(taxonomyYAML)

// Taxonomy maps tags to the keyword stems that suggest them and lore
// categories to their seed tags.
type Taxonomy struct {
	Tags       []TagKeywords  `yaml:"tags"`
	Categories []CategorySeed `yaml:"categories"`

	patterns   map[string]*regexp.Regexp
	categories map[string][]string
}

// TagKeywords lists the keyword stems of one tag, in priority order.
type TagKeywords struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// CategorySeed is the fixed list of seed tags for a lore category.
type CategorySeed struct {
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// ParseTaxonomy decodes and validates a taxonomy document and compiles a
// word-boundary prefix pattern for every keyword.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy: %w", err)
	}
	if len(t.Tags) == 0 {
		return nil, fmt.Errorf("taxonomy defines no tags")
	}

	t.patterns = make(map[string]*regexp.Regexp)
	seen := make(map[string]bool, len(t.Tags))
	for _, tk := range t.Tags {
		if tk.Tag == "" {
			return nil, fmt.Errorf("taxonomy contains a tag without a name")
		}
		if seen[tk.Tag] {
			return nil, fmt.Errorf("duplicate tag %q in taxonomy", tk.Tag)
		}
		seen[tk.Tag] = true
		if len(tk.Keywords) == 0 {
			return nil, fmt.Errorf("tag %q has no keywords", tk.Tag)
		}
		for _, kw := range tk.Keywords {
			if _, ok := t.patterns[kw]; ok {
				continue
			}
			// prefix match at a word start: "magic" also matches "magical"
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kw))
			if err != nil {
				return nil, fmt.Errorf("invalid keyword %q for tag %q: %w", kw, tk.Tag, err)
			}
			t.patterns[kw] = re
		}
	}

	t.categories = make(map[string][]string, len(t.Categories))
	for _, c := range t.Categories {
		t.categories[c.Category] = c.Tags
	}
	return &t, nil
}

// LoadTaxonomy reads a taxonomy document from path. An empty path selects
// the built-in taxonomy.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy: %w", err)
	}
	return ParseTaxonomy(data)
}

func mustLoadTaxonomy(data []byte) *Taxonomy {
	t, err := ParseTaxonomy(data)
	if err != nil {
		panic(err)
	}
	return t
}

// countMatches counts non-overlapping occurrences of kw in text.
func (t *Taxonomy) countMatches(kw, text string) int {
	return len(t.patterns[kw].FindAllStringIndex(text, -1))
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return taxonomy
}

// TagNames returns every tag of the vocabulary in taxonomy order.
func (t *Taxonomy) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tk := range t.Tags {
		names = append(names, tk.Tag)
	}
	return names
}

// CategoryNames returns every lore category that has seed tags.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Category)
	}
	return names
}

// CategoryBaseTags returns the seed tags of a lore category, or an empty
// slice when the category is unknown. Lookup is case-sensitive.
func (t *Taxonomy) CategoryBaseTags(category string) []string {
	seeds, ok := t.categories[category]
	if !ok {
		return []string{}
	}
	out := make([]string, len(seeds))
	copy(out, seeds)
	return out
}
