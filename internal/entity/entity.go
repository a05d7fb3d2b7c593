package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the worldbuilding entity variants.
type Kind string

const (
	KindCharacter Kind = "character"
	KindLocation  Kind = "location"
	KindTimeline  Kind = "timeline"
	KindMagic     Kind = "magic"
	KindLore      Kind = "lore"
	KindNote      Kind = "note"
)

// Kinds lists every entity kind in canonical order.
var Kinds = []Kind{KindCharacter, KindLocation, KindTimeline, KindMagic, KindLore, KindNote}

// ParseKind validates a kind string coming from a transport.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Valid() {
		return k, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Ref is the compound key of an entity: IDs are only unique within a kind.
type Ref struct {
	Kind Kind `json:"type"`
	ID   int  `json:"id"`
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// ParseRef parses the "kind:id" form produced by String.
func ParseRef(s string) (Ref, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok {
		return Ref{}, fmt.Errorf("invalid entity reference %q: want kind:id", s)
	}
	k, err := ParseKind(kind)
	if err != nil {
		return Ref{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n <= 0 {
		return Ref{}, fmt.Errorf("invalid entity id in %q", s)
	}
	return Ref{Kind: k, ID: n}, nil
}

// Field is a named free-text value of an entity.
type Field struct {
	Name  string
	Value string
}

// Summary is the minimal listing shape of an entity, used to resolve
// connection targets to display names.
type Summary struct {
	Ref
	Name string `json:"name"`
}

// Entity is implemented by every variant.
type Entity interface {
	Ref() Ref
	// DisplayTitle is the name or title shown in listings.
	DisplayTitle() string
	// SearchFields returns the fields scored by cross-entity search, in order.
	SearchFields() []Field
	// DisplayCategory is the role, type, significance or category of the variant.
	DisplayCategory() string
	// DisplayDescription is the descriptive text shown alongside search results.
	DisplayDescription() string
}

// Summarize builds the listing shape of any entity.
func Summarize(e Entity) Summary {
	return Summary{Ref: e.Ref(), Name: e.DisplayTitle()}
}
