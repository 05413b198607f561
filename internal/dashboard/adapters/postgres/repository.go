package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// EventReader reads dashboard records straight from the catalog table.
type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const selectEventsSQL = `
SELECT
    id,
    title,
    event_type,
    total_seats,
    available_seats,
    ticket_price,
    event_date,
    created_at
FROM events`

func (r *EventReader) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.EventRecord, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.EventRecord, 0)
	for rows.Next() {
		var (
			e         domain.EventRecord
			eventDate sql.NullTime
			createdAt sql.NullTime
		)

		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.EventType,
			&e.TotalSeats,
			&e.AvailableSeats,
			&e.TicketPrice,
			&eventDate,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		if eventDate.Valid {
			y, m, d := eventDate.Time.Date()
			day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			e.EventDate = &day
		}
		if createdAt.Valid {
			ts := createdAt.Time
			e.CreatedAt = &ts
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

func buildListQuery(f ports.EventFilter) (string, []any) {
	query := selectEventsSQL
	var args []any

	where := ""
	if !f.IncludeInactive {
		where = " WHERE is_active = TRUE"
	}
	if len(f.EventTypes) > 0 {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += " event_type = ANY($1)"
		args = append(args, pq.Array(f.EventTypes))
	}

	return query + where + "\nORDER BY id", args
}
