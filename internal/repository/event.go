package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen/internal/model"
)

var ErrInvalidEvent = errors.New("generation event requires mode, size and count")

// EventRepository stores anonymous generation events.
type EventRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db, now: time.Now}
}

// Record inserts ev, assigning an ID and timestamp when they are unset.
func (r *EventRepository) Record(ctx context.Context, ev *model.GenerationEvent) error {
	if ev.Mode == "" || ev.Size < 1 || ev.Count < 1 {
		return ErrInvalidEvent
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = r.now().UTC()
	}

	query := `INSERT INTO generation_events (id, client, mode, size, item_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, ev.ID, ev.Client, ev.Mode, ev.Size, ev.Count, ev.CreatedAt)
	return err
}

// Summary aggregates events created at or after since, one row per mode.
func (r *EventRepository) Summary(ctx context.Context, since time.Time) ([]model.UsageSummary, error) {
	query := `SELECT mode, COUNT(*), COALESCE(SUM(item_count), 0)
		FROM generation_events WHERE created_at >= ? GROUP BY mode ORDER BY mode`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.UsageSummary{}
	for rows.Next() {
		var s model.UsageSummary
		if err := rows.Scan(&s.Mode, &s.Requests, &s.Items); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
