package storage

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys on every pooled connection and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS characters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			backstory TEXT NOT NULL DEFAULT '',
			personality TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS locations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			geography TEXT NOT NULL DEFAULT '',
			culture TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS timeline_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			date TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			significance TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			characters TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS magic_systems (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			rules TEXT NOT NULL DEFAULT '',
			limitations TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS lore_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		// Endpoints are polymorphic (type, id) pairs, so they cannot carry
		// foreign keys. DeleteEntity removes rows pointing at a deleted entity.
		`CREATE TABLE IF NOT EXISTS entity_connections (
			id TEXT PRIMARY KEY,
			project_id INTEGER NOT NULL,
			source_type TEXT NOT NULL,
			source_id INTEGER NOT NULL,
			target_type TEXT NOT NULL,
			target_id INTEGER NOT NULL,
			target_name TEXT NOT NULL DEFAULT '',
			connection_type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entity_connections_source
			ON entity_connections (project_id, source_type, source_id);`,
		`CREATE INDEX IF NOT EXISTS idx_entity_connections_target
			ON entity_connections (project_id, target_type, target_id);`,
		`CREATE TABLE IF NOT EXISTS character_magic_systems (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			character_id INTEGER NOT NULL,
			magic_system_id INTEGER NOT NULL,
			proficiency_level TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (character_id) REFERENCES characters(id) ON DELETE CASCADE,
			FOREIGN KEY (magic_system_id) REFERENCES magic_systems(id) ON DELETE CASCADE,
			UNIQUE (character_id, magic_system_id)
		);`,
		`CREATE TABLE IF NOT EXISTS timeline_event_characters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timeline_event_id INTEGER NOT NULL,
			character_id INTEGER NOT NULL,
			role TEXT NOT NULL,
			FOREIGN KEY (timeline_event_id) REFERENCES timeline_events(id) ON DELETE CASCADE,
			FOREIGN KEY (character_id) REFERENCES characters(id) ON DELETE CASCADE,
			UNIQUE (timeline_event_id, character_id)
		);`,
		`CREATE TABLE IF NOT EXISTS character_relationships (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			character_id INTEGER NOT NULL,
			related_character_id INTEGER NOT NULL,
			relationship_type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (character_id) REFERENCES characters(id) ON DELETE CASCADE,
			FOREIGN KEY (related_character_id) REFERENCES characters(id) ON DELETE CASCADE,
			UNIQUE (character_id, related_character_id, relationship_type)
		);`,
		`CREATE TABLE IF NOT EXISTS lore_entity_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lore_entry_id INTEGER NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id INTEGER NOT NULL,
			relevance TEXT NOT NULL,
			FOREIGN KEY (lore_entry_id) REFERENCES lore_entries(id) ON DELETE CASCADE,
			UNIQUE (lore_entry_id, entity_type, entity_id)
		);`,
		`CREATE TABLE IF NOT EXISTS location_hierarchies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_location_id INTEGER NOT NULL,
			child_location_id INTEGER NOT NULL,
			hierarchy_type TEXT NOT NULL,
			FOREIGN KEY (parent_location_id) REFERENCES locations(id) ON DELETE CASCADE,
			FOREIGN KEY (child_location_id) REFERENCES locations(id) ON DELETE CASCADE,
			UNIQUE (parent_location_id, child_location_id)
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
