package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventra-dashboard-service/internal/events/core/domain"
	"eventra-dashboard-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO events (
    title,
    event_type,
    organizer,
    venue,
    location,
    description,
    ticket_price,
    total_seats,
    available_seats,
    event_date,
    event_time,
    is_active,
    created_at,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8, $9, $10, $11, $12, $13, $14
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

const listActiveEventsSQL = `
SELECT
    id,
    title,
    event_type,
    organizer,
    venue,
    location,
    description,
    ticket_price,
    total_seats,
    available_seats,
    event_date,
    COALESCE(to_char(event_time, 'HH24:MI:SS'), ''),
    is_active,
    created_at
FROM events
WHERE is_active = TRUE
  AND ($1::text = '' OR event_type = $1::text)
ORDER BY event_date, id`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	var eventTime any
	if e.EventTime == "" {
		eventTime = nil
	} else {
		eventTime = e.EventTime
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.Title,
		e.EventType,
		e.Organizer,
		e.Venue,
		e.Location,
		e.Description,
		e.TicketPrice,
		e.TotalSeats,
		e.AvailableSeats,
		e.EventDate,
		eventTime,
		e.IsActive,
		e.CreatedAt,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *EventRepository) ListActiveEvents(ctx context.Context, f ports.ListFilter) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listActiveEventsSQL, f.EventType)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			e         domain.Event
			eventDate sql.NullTime
			createdAt sql.NullTime
		)
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.EventType,
			&e.Organizer,
			&e.Venue,
			&e.Location,
			&e.Description,
			&e.TicketPrice,
			&e.TotalSeats,
			&e.AvailableSeats,
			&eventDate,
			&e.EventTime,
			&e.IsActive,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if eventDate.Valid {
			e.EventDate = eventDate.Time
		}
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}
