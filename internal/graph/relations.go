package graph

import (
	"worldforge/internal/entity"
)

// Qualifier vocabularies of the relationship tables.
var (
	ProficiencyLevels = []string{"novice", "apprentice", "adept", "expert", "master"}
	EventRoles        = []string{"protagonist", "antagonist", "participant", "witness", "victim", "mentioned"}
	RelationshipTypes = []string{"friend", "enemy", "ally", "rival", "family", "mentor", "student", "romantic"}
	ReferenceLevels   = []string{"primary", "secondary", "mentioned"}
	HierarchyTypes    = []string{"contains", "part_of", "adjacent_to", "connected_to"}
)

// Edge is the traversal shape shared by user connections and
// relationship rows. Label is the connection type or qualifier.
type Edge struct {
	Source entity.Ref `json:"source"`
	Target entity.Ref `json:"target"`
	Label  string     `json:"label"`
	// Origin names the table or store the edge was read from.
	Origin string `json:"origin"`
}

// Edge converts a connection for traversal.
func (c Connection) Edge() Edge {
	return Edge{Source: c.Source, Target: c.Target, Label: c.ConnectionType, Origin: "entity_connections"}
}

// CharacterMagicSystem links a character to a magic system they practise.
type CharacterMagicSystem struct {
	CharacterID      int    `json:"characterId"`
	MagicSystemID    int    `json:"magicSystemId"`
	ProficiencyLevel string `json:"proficiencyLevel"`
	Notes            string `json:"notes,omitempty"`
}

func (r CharacterMagicSystem) Validate() error {
	return checkVocabulary("proficiencyLevel", r.ProficiencyLevel, ProficiencyLevels)
}

func (r CharacterMagicSystem) Edge() Edge {
	return Edge{
		Source: entity.Ref{Kind: entity.KindCharacter, ID: r.CharacterID},
		Target: entity.Ref{Kind: entity.KindMagic, ID: r.MagicSystemID},
		Label:  r.ProficiencyLevel,
		Origin: "character_magic_systems",
	}
}

// TimelineEventCharacter records a character's role in an event.
type TimelineEventCharacter struct {
	TimelineEventID int    `json:"timelineEventId"`
	CharacterID     int    `json:"characterId"`
	Role            string `json:"role"`
}

func (r TimelineEventCharacter) Validate() error {
	return checkVocabulary("role", r.Role, EventRoles)
}

func (r TimelineEventCharacter) Edge() Edge {
	return Edge{
		Source: entity.Ref{Kind: entity.KindTimeline, ID: r.TimelineEventID},
		Target: entity.Ref{Kind: entity.KindCharacter, ID: r.CharacterID},
		Label:  r.Role,
		Origin: "timeline_event_characters",
	}
}

// CharacterRelationship is a directed relationship between two characters.
type CharacterRelationship struct {
	CharacterID        int    `json:"characterId"`
	RelatedCharacterID int    `json:"relatedCharacterId"`
	RelationshipType   string `json:"relationshipType"`
	Description        string `json:"description,omitempty"`
}

func (r CharacterRelationship) Validate() error {
	if err := checkVocabulary("relationshipType", r.RelationshipType, RelationshipTypes); err != nil {
		return err
	}
	if r.CharacterID == r.RelatedCharacterID {
		return &ValidationError{Field: "relatedCharacterId", Value: "self"}
	}
	return nil
}

func (r CharacterRelationship) Edge() Edge {
	return Edge{
		Source: entity.Ref{Kind: entity.KindCharacter, ID: r.CharacterID},
		Target: entity.Ref{Kind: entity.KindCharacter, ID: r.RelatedCharacterID},
		Label:  r.RelationshipType,
		Origin: "character_relationships",
	}
}

// LoreEntityReference ties a lore entry to any entity it mentions.
type LoreEntityReference struct {
	LoreEntryID int        `json:"loreEntryId"`
	Entity      entity.Ref `json:"entity"`
	Relevance   string     `json:"relevance"`
}

func (r LoreEntityReference) Validate() error {
	if !r.Entity.Kind.Valid() {
		return &ValidationError{Field: "entityType", Value: string(r.Entity.Kind), Allowed: kindNames()}
	}
	return checkVocabulary("relevance", r.Relevance, ReferenceLevels)
}

func (r LoreEntityReference) Edge() Edge {
	return Edge{
		Source: entity.Ref{Kind: entity.KindLore, ID: r.LoreEntryID},
		Target: r.Entity,
		Label:  r.Relevance,
		Origin: "lore_entity_references",
	}
}

// LocationHierarchy nests or links two locations.
type LocationHierarchy struct {
	ParentLocationID int    `json:"parentLocationId"`
	ChildLocationID  int    `json:"childLocationId"`
	HierarchyType    string `json:"hierarchyType"`
}

func (r LocationHierarchy) Validate() error {
	if err := checkVocabulary("hierarchyType", r.HierarchyType, HierarchyTypes); err != nil {
		return err
	}
	if r.ParentLocationID == r.ChildLocationID {
		return &ValidationError{Field: "childLocationId", Value: "self"}
	}
	return nil
}

func (r LocationHierarchy) Edge() Edge {
	return Edge{
		Source: entity.Ref{Kind: entity.KindLocation, ID: r.ParentLocationID},
		Target: entity.Ref{Kind: entity.KindLocation, ID: r.ChildLocationID},
		Label:  r.HierarchyType,
		Origin: "location_hierarchies",
	}
}

func checkVocabulary(field, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	out := make([]string, len(allowed))
	copy(out, allowed)
	return &ValidationError{Field: field, Value: value, Allowed: out}
}
