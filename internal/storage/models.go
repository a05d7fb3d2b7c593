package storage

import "time"

// ProjectRecord represents a worldbuilding project in the database.
// Every entity and connection belongs to exactly one project.
type ProjectRecord struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
}
