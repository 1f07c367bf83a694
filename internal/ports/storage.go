// Package ports defines the interfaces between the tock application and its
// infrastructure adapters.
package ports

import (
	"context"

	"github.com/palvaren/tock-cli/internal/domain"
)

// HistoryRepository defines the interface for timer history persistence.
// This is a driven port (implemented by adapters).
type HistoryRepository interface {
	// Save persists a completed timer record.
	Save(ctx context.Context, record *domain.TimerRecord) error

	// FindRecent retrieves the most recently completed records, newest first.
	FindRecent(ctx context.Context, limit int) ([]*domain.TimerRecord, error)
}

// Storage is the combined storage interface.
type Storage interface {
	// History provides access to timer record operations.
	History() HistoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
