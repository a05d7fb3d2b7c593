package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_project_store.go -package=mocks worldforge/internal/storage ProjectStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ProjectStore defines the interface for project storage operations.
type ProjectStore interface {
	// Create inserts a new project and returns it with its ID and timestamp.
	Create(ctx context.Context, name, description string) (ProjectRecord, error)
	// GetByID gets a project by ID.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id int) (*ProjectRecord, error)
	// ListAll returns all projects ordered by name.
	ListAll(ctx context.Context) ([]ProjectRecord, error)
}

// ProjectRepo provides methods for project operations.
// It implements the ProjectStore interface.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create inserts a new project.
func (r *ProjectRepo) Create(ctx context.Context, name, description string) (ProjectRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (name, description) VALUES (?, ?)",
		name, description,
	)
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("failed to insert project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("failed to get project id: %w", err)
	}

	project, err := r.GetByID(ctx, int(id))
	if err != nil {
		return ProjectRecord{}, err
	}
	return *project, nil
}

// GetByID gets a project by ID.
// Returns nil and ErrNotFound if not found.
func (r *ProjectRepo) GetByID(ctx context.Context, id int) (*ProjectRecord, error) {
	var project ProjectRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at FROM projects WHERE id = ?",
		id,
	).Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, nil
}

// ListAll returns all projects ordered by name.
func (r *ProjectRepo) ListAll(ctx context.Context) ([]ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, created_at FROM projects ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []ProjectRecord
	for rows.Next() {
		var project ProjectRecord
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
