package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_relation_store.go -package=mocks worldforge/internal/storage RelationStore

import (
	"context"
	"database/sql"
	"fmt"

	"worldforge/internal/entity"
	"worldforge/internal/graph"
)

// RelationStore defines the interface for the typed relationship tables.
// Adding a row that already exists updates its qualifier.
type RelationStore interface {
	AddCharacterMagicSystem(ctx context.Context, rel graph.CharacterMagicSystem) error
	AddTimelineEventCharacter(ctx context.Context, rel graph.TimelineEventCharacter) error
	AddCharacterRelationship(ctx context.Context, rel graph.CharacterRelationship) error
	AddLoreEntityReference(ctx context.Context, rel graph.LoreEntityReference) error
	AddLocationHierarchy(ctx context.Context, rel graph.LocationHierarchy) error
	// ListEdges returns every relationship row of a project as a graph edge.
	ListEdges(ctx context.Context, projectID int) ([]graph.Edge, error)
}

// RelationRepo provides methods for relationship table operations.
// It implements the RelationStore interface.
type RelationRepo struct {
	db *sql.DB
}

// NewRelationRepo creates a new RelationRepo.
func NewRelationRepo(db *sql.DB) *RelationRepo {
	return &RelationRepo{db: db}
}

func (r *RelationRepo) exec(ctx context.Context, table, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %s: %w", table, err)
	}
	return nil
}

func (r *RelationRepo) AddCharacterMagicSystem(ctx context.Context, rel graph.CharacterMagicSystem) error {
	return r.exec(ctx, "character_magic_systems",
		`INSERT INTO character_magic_systems (character_id, magic_system_id, proficiency_level, notes)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (character_id, magic_system_id) DO UPDATE SET
		 proficiency_level = excluded.proficiency_level, notes = excluded.notes`,
		rel.CharacterID, rel.MagicSystemID, rel.ProficiencyLevel, rel.Notes,
	)
}

func (r *RelationRepo) AddTimelineEventCharacter(ctx context.Context, rel graph.TimelineEventCharacter) error {
	return r.exec(ctx, "timeline_event_characters",
		`INSERT INTO timeline_event_characters (timeline_event_id, character_id, role)
		 VALUES (?, ?, ?)
		 ON CONFLICT (timeline_event_id, character_id) DO UPDATE SET role = excluded.role`,
		rel.TimelineEventID, rel.CharacterID, rel.Role,
	)
}

func (r *RelationRepo) AddCharacterRelationship(ctx context.Context, rel graph.CharacterRelationship) error {
	return r.exec(ctx, "character_relationships",
		`INSERT INTO character_relationships (character_id, related_character_id, relationship_type, description)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (character_id, related_character_id, relationship_type) DO UPDATE SET
		 description = excluded.description`,
		rel.CharacterID, rel.RelatedCharacterID, rel.RelationshipType, rel.Description,
	)
}

func (r *RelationRepo) AddLoreEntityReference(ctx context.Context, rel graph.LoreEntityReference) error {
	return r.exec(ctx, "lore_entity_references",
		`INSERT INTO lore_entity_references (lore_entry_id, entity_type, entity_id, relevance)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (lore_entry_id, entity_type, entity_id) DO UPDATE SET relevance = excluded.relevance`,
		rel.LoreEntryID, string(rel.Entity.Kind), rel.Entity.ID, rel.Relevance,
	)
}

func (r *RelationRepo) AddLocationHierarchy(ctx context.Context, rel graph.LocationHierarchy) error {
	return r.exec(ctx, "location_hierarchies",
		`INSERT INTO location_hierarchies (parent_location_id, child_location_id, hierarchy_type)
		 VALUES (?, ?, ?)
		 ON CONFLICT (parent_location_id, child_location_id) DO UPDATE SET hierarchy_type = excluded.hierarchy_type`,
		rel.ParentLocationID, rel.ChildLocationID, rel.HierarchyType,
	)
}

// Each relationship table is scoped to a project through its first endpoint.
const listEdgesQuery = `
SELECT 'character' AS source_type, cms.character_id AS source_id,
       'magic' AS target_type, cms.magic_system_id AS target_id,
       cms.proficiency_level AS label, 'character_magic_systems' AS origin,
       1 AS ord, cms.id AS row_id
FROM character_magic_systems cms JOIN characters c ON c.id = cms.character_id
WHERE c.project_id = ?
UNION ALL
SELECT 'timeline', tec.timeline_event_id, 'character', tec.character_id,
       tec.role, 'timeline_event_characters', 2, tec.id
FROM timeline_event_characters tec JOIN timeline_events te ON te.id = tec.timeline_event_id
WHERE te.project_id = ?
UNION ALL
SELECT 'character', cr.character_id, 'character', cr.related_character_id,
       cr.relationship_type, 'character_relationships', 3, cr.id
FROM character_relationships cr JOIN characters c ON c.id = cr.character_id
WHERE c.project_id = ?
UNION ALL
SELECT 'lore', ler.lore_entry_id, ler.entity_type, ler.entity_id,
       ler.relevance, 'lore_entity_references', 4, ler.id
FROM lore_entity_references ler JOIN lore_entries le ON le.id = ler.lore_entry_id
WHERE le.project_id = ?
UNION ALL
SELECT 'location', lh.parent_location_id, 'location', lh.child_location_id,
       lh.hierarchy_type, 'location_hierarchies', 5, lh.id
FROM location_hierarchies lh JOIN locations l ON l.id = lh.parent_location_id
WHERE l.project_id = ?
ORDER BY ord, row_id`

// ListEdges returns every relationship row of a project as a graph edge,
// grouped by table in a fixed order.
func (r *RelationRepo) ListEdges(ctx context.Context, projectID int) ([]graph.Edge, error) {
	rows, err := r.db.QueryContext(ctx, listEdgesQuery,
		projectID, projectID, projectID, projectID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	edges := []graph.Edge{}
	for rows.Next() {
		var e graph.Edge
		var sourceType, targetType string
		var ord, rowID int
		if err := rows.Scan(&sourceType, &e.Source.ID, &targetType, &e.Target.ID,
			&e.Label, &e.Origin, &ord, &rowID); err != nil {
			return nil, fmt.Errorf("failed to scan relation: %w", err)
		}
		e.Source.Kind = entity.Kind(sourceType)
		e.Target.Kind = entity.Kind(targetType)
		edges = append(edges, e)
	}

	return edges, rows.Err()
}
