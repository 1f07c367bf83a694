package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/palvaren/tock-cli/internal/domain"
	"github.com/palvaren/tock-cli/internal/ports"
)

// historyRepository implements ports.HistoryRepository using SQLite.
type historyRepository struct {
	db *sql.DB
}

// newHistoryRepository creates a new history repository.
func newHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

// Save persists a completed timer record.
func (r *historyRepository) Save(ctx context.Context, record *domain.TimerRecord) error {
	query := `
		INSERT INTO timers (id, label, duration_ms, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Label,
		record.Duration.Milliseconds(),
		record.StartedAt,
		record.CompletedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save timer record: %w", err)
	}

	return nil
}

// FindRecent retrieves the most recently completed records, newest first.
func (r *historyRepository) FindRecent(ctx context.Context, limit int) ([]*domain.TimerRecord, error) {
	query := `
		SELECT id, label, duration_ms, started_at, completed_at
		FROM timers
		ORDER BY completed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query timer records: %w", err)
	}
	defer rows.Close()

	var records []*domain.TimerRecord
	for rows.Next() {
		var record domain.TimerRecord
		var durationMs int64
		if err := rows.Scan(&record.ID, &record.Label, &durationMs, &record.StartedAt, &record.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timer record: %w", err)
		}
		record.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timer records: %w", err)
	}

	return records, nil
}
