package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_connection_store.go -package=mocks worldforge/internal/storage ConnectionStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"worldforge/internal/entity"
	"worldforge/internal/graph"
)

// ConnectionStore defines the interface for entity connection storage operations.
type ConnectionStore interface {
	// Insert stores a connection and assigns it a UUID when ID is empty.
	Insert(ctx context.Context, projectID int, conn *graph.Connection) error
	// ListByProject returns every connection of a project in creation order.
	ListByProject(ctx context.Context, projectID int) ([]graph.Connection, error)
	// Delete removes a connection. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, projectID int, id string) error
}

// ConnectionRepo provides methods for entity connection operations.
// It implements the ConnectionStore interface.
type ConnectionRepo struct {
	db *sql.DB
}

// NewConnectionRepo creates a new ConnectionRepo.
func NewConnectionRepo(db *sql.DB) *ConnectionRepo {
	return &ConnectionRepo{db: db}
}

// Insert stores a connection and assigns it a UUID when ID is empty.
func (r *ConnectionRepo) Insert(ctx context.Context, projectID int, conn *graph.Connection) error {
	if conn.ID == "" {
		conn.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entity_connections
		 (id, project_id, source_type, source_id, target_type, target_id, target_name, connection_type, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		conn.ID, projectID,
		string(conn.Source.Kind), conn.Source.ID,
		string(conn.Target.Kind), conn.Target.ID,
		conn.TargetName, conn.ConnectionType, conn.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert connection: %w", err)
	}

	return nil
}

// ListByProject returns every connection of a project in creation order.
func (r *ConnectionRepo) ListByProject(ctx context.Context, projectID int) ([]graph.Connection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_type, source_id, target_type, target_id, target_name, connection_type, description
		 FROM entity_connections WHERE project_id = ? ORDER BY created_at, rowid`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	connections := []graph.Connection{}
	for rows.Next() {
		var c graph.Connection
		var sourceType, targetType string
		if err := rows.Scan(&c.ID, &sourceType, &c.Source.ID, &targetType, &c.Target.ID,
			&c.TargetName, &c.ConnectionType, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		c.Source.Kind = entity.Kind(sourceType)
		c.Target.Kind = entity.Kind(targetType)
		connections = append(connections, c)
	}

	return connections, rows.Err()
}

// Delete removes a connection. Returns ErrNotFound if it does not exist.
func (r *ConnectionRepo) Delete(ctx context.Context, projectID int, id string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM entity_connections WHERE project_id = ? AND id = ?",
		projectID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
