package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_entity_store.go -package=mocks worldforge/internal/storage EntityStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"worldforge/internal/entity"
	"worldforge/internal/search"
)

// entityTables maps each entity kind to its table and display column.
var entityTables = map[entity.Kind]struct {
	table   string
	display string
}{
	entity.KindCharacter: {"characters", "name"},
	entity.KindLocation:  {"locations", "name"},
	entity.KindTimeline:  {"timeline_events", "title"},
	entity.KindMagic:     {"magic_systems", "name"},
	entity.KindLore:      {"lore_entries", "title"},
	entity.KindNote:      {"notes", "title"},
}

// EntityStore defines the interface for entity storage operations.
type EntityStore interface {
	// CreateCharacter inserts a character and sets its ID.
	CreateCharacter(ctx context.Context, c *entity.Character) error
	// CreateLocation inserts a location and sets its ID.
	CreateLocation(ctx context.Context, l *entity.Location) error
	// CreateTimelineEvent inserts a timeline event and sets its ID.
	CreateTimelineEvent(ctx context.Context, e *entity.TimelineEvent) error
	// CreateMagicSystem inserts a magic system and sets its ID.
	CreateMagicSystem(ctx context.Context, m *entity.MagicSystem) error
	// CreateLoreEntry inserts a lore entry and sets its ID.
	CreateLoreEntry(ctx context.Context, l *entity.LoreEntry) error
	// CreateNote inserts a note and sets its ID.
	CreateNote(ctx context.Context, n *entity.Note) error
	// LoadCollections returns every entity of a project, each list in ID order.
	LoadCollections(ctx context.Context, projectID int) (search.Collections, error)
	// ListSummaries returns the reference and display name of every entity of a project.
	ListSummaries(ctx context.Context, projectID int) ([]entity.Summary, error)
	// GetNote gets a note by ID within a project.
	// Returns nil and ErrNotFound if not found.
	GetNote(ctx context.Context, projectID, id int) (*entity.Note, error)
	// DeleteEntity removes an entity together with every connection and
	// lore reference pointing at it. Returns ErrNotFound if no entity was removed.
	DeleteEntity(ctx context.Context, projectID int, ref entity.Ref) error
}

// EntityRepo provides methods for entity operations.
// It implements the EntityStore interface.
type EntityRepo struct {
	db *sql.DB
}

// NewEntityRepo creates a new EntityRepo.
func NewEntityRepo(db *sql.DB) *EntityRepo {
	return &EntityRepo{db: db}
}

func (r *EntityRepo) insert(ctx context.Context, kind entity.Kind, query string, args ...any) (int, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", kind, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get %s id: %w", kind, err)
	}
	return int(id), nil
}

// CreateCharacter inserts a character and sets its ID.
func (r *EntityRepo) CreateCharacter(ctx context.Context, c *entity.Character) error {
	id, err := r.insert(ctx, entity.KindCharacter,
		`INSERT INTO characters (project_id, name, role, description, backstory, personality)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ProjectID, c.Name, c.Role, c.Description, c.Backstory, c.Personality,
	)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// CreateLocation inserts a location and sets its ID.
func (r *EntityRepo) CreateLocation(ctx context.Context, l *entity.Location) error {
	id, err := r.insert(ctx, entity.KindLocation,
		`INSERT INTO locations (project_id, name, type, description, geography, culture)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.ProjectID, l.Name, l.Type, l.Description, l.Geography, l.Culture,
	)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

// CreateTimelineEvent inserts a timeline event and sets its ID.
// The character names are stored as a JSON array.
func (r *EntityRepo) CreateTimelineEvent(ctx context.Context, e *entity.TimelineEvent) error {
	characters, err := encodeList(e.Characters)
	if err != nil {
		return err
	}
	id, err := r.insert(ctx, entity.KindTimeline,
		`INSERT INTO timeline_events (project_id, title, date, description, category, significance, location, characters)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ProjectID, e.Title, e.Date, e.Description, e.Category, e.Significance, e.Location, characters,
	)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// CreateMagicSystem inserts a magic system and sets its ID.
func (r *EntityRepo) CreateMagicSystem(ctx context.Context, m *entity.MagicSystem) error {
	id, err := r.insert(ctx, entity.KindMagic,
		`INSERT INTO magic_systems (project_id, name, category, description, rules, limitations, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ProjectID, m.Name, m.Category, m.Description, m.Rules, m.Limitations, m.Source,
	)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// CreateLoreEntry inserts a lore entry and sets its ID.
// Tags are stored as a JSON array.
func (r *EntityRepo) CreateLoreEntry(ctx context.Context, l *entity.LoreEntry) error {
	tags, err := encodeList(l.Tags)
	if err != nil {
		return err
	}
	id, err := r.insert(ctx, entity.KindLore,
		`INSERT INTO lore_entries (project_id, title, content, category, tags)
		 VALUES (?, ?, ?, ?, ?)`,
		l.ProjectID, l.Title, l.Content, l.Category, tags,
	)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

// CreateNote inserts a note and sets its ID.
func (r *EntityRepo) CreateNote(ctx context.Context, n *entity.Note) error {
	id, err := r.insert(ctx, entity.KindNote,
		"INSERT INTO notes (project_id, title, content, type) VALUES (?, ?, ?, ?)",
		n.ProjectID, n.Title, n.Content, n.Type,
	)
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

// LoadCollections returns every entity of a project, each list in ID order.
func (r *EntityRepo) LoadCollections(ctx context.Context, projectID int) (search.Collections, error) {
	var c search.Collections
	var err error

	if c.Characters, err = r.listCharacters(ctx, projectID); err != nil {
		return search.Collections{}, err
	}
	if c.Locations, err = r.listLocations(ctx, projectID); err != nil {
		return search.Collections{}, err
	}
	if c.TimelineEvents, err = r.listTimelineEvents(ctx, projectID); err != nil {
		return search.Collections{}, err
	}
	if c.MagicSystems, err = r.listMagicSystems(ctx, projectID); err != nil {
		return search.Collections{}, err
	}
	if c.LoreEntries, err = r.listLoreEntries(ctx, projectID); err != nil {
		return search.Collections{}, err
	}
	if c.Notes, err = r.listNotes(ctx, projectID); err != nil {
		return search.Collections{}, err
	}

	return c, nil
}

// queryRows runs query and calls scan for each row.
func (r *EntityRepo) queryRows(ctx context.Context, kind entity.Kind, scan func(*sql.Rows) error, query string, args ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan %s: %w", kind, err)
		}
	}
	return rows.Err()
}

func (r *EntityRepo) listCharacters(ctx context.Context, projectID int) ([]entity.Character, error) {
	var out []entity.Character
	err := r.queryRows(ctx, entity.KindCharacter, func(rows *sql.Rows) error {
		var c entity.Character
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Role, &c.Description, &c.Backstory, &c.Personality); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	}, `SELECT id, project_id, name, role, description, backstory, personality
	    FROM characters WHERE project_id = ? ORDER BY id`, projectID)
	return out, err
}

func (r *EntityRepo) listLocations(ctx context.Context, projectID int) ([]entity.Location, error) {
	var out []entity.Location
	err := r.queryRows(ctx, entity.KindLocation, func(rows *sql.Rows) error {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Name, &l.Type, &l.Description, &l.Geography, &l.Culture); err != nil {
			return err
		}
		out = append(out, l)
		return nil
	}, `SELECT id, project_id, name, type, description, geography, culture
	    FROM locations WHERE project_id = ? ORDER BY id`, projectID)
	return out, err
}

func (r *EntityRepo) listTimelineEvents(ctx context.Context, projectID int) ([]entity.TimelineEvent, error) {
	var out []entity.TimelineEvent
	err := r.queryRows(ctx, entity.KindTimeline, func(rows *sql.Rows) error {
		var e entity.TimelineEvent
		var characters string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Date, &e.Description, &e.Category,
			&e.Significance, &e.Location, &characters); err != nil {
			return err
		}
		list, err := decodeList(characters)
		if err != nil {
			return err
		}
		e.Characters = list
		out = append(out, e)
		return nil
	}, `SELECT id, project_id, title, date, description, category, significance, location, characters
	    FROM timeline_events WHERE project_id = ? ORDER BY id`, projectID)
	return out, err
}

func (r *EntityRepo) listMagicSystems(ctx context.Context, projectID int) ([]entity.MagicSystem, error) {
	var out []entity.MagicSystem
	err := r.queryRows(ctx, entity.KindMagic, func(rows *sql.Rows) error {
		var m entity.MagicSystem
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Category, &m.Description, &m.Rules,
			&m.Limitations, &m.Source); err != nil {
			return err
		}
		out = append(out, m)
		return nil
	}, `SELECT id, project_id, name, category, description, rules, limitations, source
	    FROM magic_systems WHERE project_id = ? ORDER BY id`, projectID)
	return out, err
}

func (r *EntityRepo) listLoreEntries(ctx context.Context, projectID int) ([]entity.LoreEntry, error) {
	var out []entity.LoreEntry
	err := r.queryRows(ctx, entity.KindLore, func(rows *sql.Rows) error {
		var l entity.LoreEntry
		var tags string
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Title, &l.Content, &l.Category, &tags); err != nil {
			return err
		}
		list, err := decodeList(tags)
		if err != nil {
			return err
		}
		l.Tags = list
		out = append(out, l)
		return nil
	}, `SELECT id, project_id, title, content, category, tags
	    FROM lore_entries WHERE project_id = ? ORDER BY id`, projectID)
	return out, err
}

func (r *EntityRepo) listNotes(ctx context.Context, projectID int) ([]entity.Note, error) {
	var out []entity.Note
	err := r.queryRows(ctx, entity.KindNote, func(rows *sql.Rows) error {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.Title, &n.Content, &n.Type); err != nil {
			return err
		}
		out = append(out, n)
		return nil
	}, "SELECT id, project_id, title, content, type FROM notes WHERE project_id = ? ORDER BY id", projectID)
	return out, err
}

// ListSummaries returns the reference and display name of every entity of
// a project, grouped by kind in canonical order.
func (r *EntityRepo) ListSummaries(ctx context.Context, projectID int) ([]entity.Summary, error) {
	summaries := []entity.Summary{}
	for _, kind := range entity.Kinds {
		t := entityTables[kind]
		query := fmt.Sprintf("SELECT id, %s FROM %s WHERE project_id = ? ORDER BY id", t.display, t.table)
		err := r.queryRows(ctx, kind, func(rows *sql.Rows) error {
			s := entity.Summary{Ref: entity.Ref{Kind: kind}}
			if err := rows.Scan(&s.ID, &s.Name); err != nil {
				return err
			}
			summaries = append(summaries, s)
			return nil
		}, query, projectID)
		if err != nil {
			return nil, err
		}
	}
	return summaries, nil
}

// GetNote gets a note by ID within a project.
// Returns nil and ErrNotFound if not found.
func (r *EntityRepo) GetNote(ctx context.Context, projectID, id int) (*entity.Note, error) {
	var n entity.Note
	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, content, type FROM notes WHERE project_id = ? AND id = ?",
		projectID, id,
	).Scan(&n.ID, &n.ProjectID, &n.Title, &n.Content, &n.Type)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}
	return &n, nil
}

// DeleteEntity removes an entity together with every connection and lore
// reference pointing at it, in one transaction. Rows of the typed
// relationship tables go through ON DELETE CASCADE.
func (r *EntityRepo) DeleteEntity(ctx context.Context, projectID int, ref entity.Ref) error {
	t, ok := entityTables[ref.Kind]
	if !ok {
		return fmt.Errorf("unknown entity kind %q", ref.Kind)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE project_id = ? AND id = ?", t.table),
		projectID, ref.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", ref.Kind, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM entity_connections WHERE project_id = ?
		 AND ((source_type = ? AND source_id = ?) OR (target_type = ? AND target_id = ?))`,
		projectID, ref.Kind, ref.ID, ref.Kind, ref.ID,
	); err != nil {
		return fmt.Errorf("failed to delete connections of %s: %w", ref, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM lore_entity_references WHERE entity_type = ? AND entity_id = ?
		 AND lore_entry_id IN (SELECT id FROM lore_entries WHERE project_id = ?)`,
		ref.Kind, ref.ID, projectID,
	); err != nil {
		return fmt.Errorf("failed to delete lore references of %s: %w", ref, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}
