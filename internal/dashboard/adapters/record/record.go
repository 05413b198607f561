// Package record converts loosely-typed event payloads (JSON numbers, numeric
// strings coming from form inputs, Django decimals) into domain records.
// It is the only place where the dashboard accepts untyped input.
package record

import (
	"errors"
	"fmt"
	"time"

	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/platform/jsonvalue"
)

var ErrInvalidRecord = errors.New("invalid event record")

// Payload is an event object as the backend API or the admin UI sends it.
type Payload struct {
	ID             jsonvalue.Value `json:"id"`
	Title          string          `json:"title"`
	EventType      string          `json:"event_type"`
	TotalSeats     jsonvalue.Value `json:"total_seats"`
	AvailableSeats jsonvalue.Value `json:"available_seats"`
	TicketPrice    jsonvalue.Value `json:"ticket_price"`
	EventDate      jsonvalue.Value `json:"event_date"`
	CreatedAt      jsonvalue.Value `json:"created_at"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// Active reports whether the payload is an active event. Missing flag means active.
func (p Payload) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// ToRecord validates numeric fields and parses dates. Missing numbers default
// to zero; unparsable numbers are an error. Missing or unparsable dates are
// left nil.
func (p Payload) ToRecord() (domain.EventRecord, error) {
	id, err := p.ID.Int64("id")
	if err != nil {
		return domain.EventRecord{}, invalid(err)
	}
	total, err := p.TotalSeats.Int64("total_seats")
	if err != nil {
		return domain.EventRecord{}, invalid(err)
	}
	available, err := p.AvailableSeats.Int64("available_seats")
	if err != nil {
		return domain.EventRecord{}, invalid(err)
	}
	price, err := p.TicketPrice.Float64("ticket_price")
	if err != nil {
		return domain.EventRecord{}, invalid(err)
	}

	return domain.EventRecord{
		ID:             id,
		Title:          p.Title,
		EventType:      p.EventType,
		TotalSeats:     total,
		AvailableSeats: available,
		TicketPrice:    price,
		EventDate:      ParseEventDate(string(p.EventDate)),
		CreatedAt:      ParseTimestamp(string(p.CreatedAt)),
	}, nil
}

// IndexError reports which payload of a batch failed.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("events[%d]: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// ParseAll converts every payload and stops at the first invalid one.
func ParseAll(payloads []Payload) ([]domain.EventRecord, error) {
	out := make([]domain.EventRecord, 0, len(payloads))
	for i, p := range payloads {
		rec, err := p.ToRecord()
		if err != nil {
			return nil, &IndexError{Index: i, Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseEventDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// calendar date at UTC midnight, or nil.
func ParseEventDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil
		}
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}

// ParseTimestamp accepts RFC3339 (fractional seconds allowed) or a zone-less
// ISO timestamp read as UTC, and returns nil otherwise.
func ParseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", time.DateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}
