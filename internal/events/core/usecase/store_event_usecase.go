package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"eventra-dashboard-service/internal/clock"
	"eventra-dashboard-service/internal/events/core/domain"
	"eventra-dashboard-service/internal/events/core/ports"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrInvalidEventType = errors.New("invalid event_type")
	ErrInvalidSeats     = errors.New("invalid seat counts")
	ErrInvalidPrice     = errors.New("ticket_price cannot be negative")
)

type StoreEventUseCase struct {
	repo  ports.EventRepositoryPort
	clock clock.Clock
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort, clk clock.Clock) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo, clock: clk}
}

type StoreEventInput struct {
	Title          string
	EventType      string
	Organizer      string
	Venue          string
	Location       string
	Description    string
	TicketPrice    float64
	TotalSeats     int64
	AvailableSeats *int64 // nil = all seats available
	EventDate      string // YYYY-MM-DD
	EventTime      string // HH:MM or HH:MM:SS, optional
	IsActive       *bool  // nil = active
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {
	e, err := uc.toEvent(in)
	if err != nil {
		return false, err
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates the whole batch before storing anything.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	events := make([]*domain.Event, 0, len(in.Events))
	for i, ev := range in.Events {
		e, err := uc.toEvent(ev)
		if err != nil {
			return res, fmt.Errorf("events[%d]: %w", i, err)
		}
		events = append(events, e)
	}

	for _, e := range events {
		ok, err := uc.repo.InsertEvent(ctx, e)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) toEvent(in StoreEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}

	eventType := strings.ToLower(strings.TrimSpace(in.EventType))
	if eventType == "" {
		eventType = domain.TypeOther
	}
	if !slices.Contains(domain.Types, eventType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, in.EventType)
	}

	available := in.TotalSeats
	if in.AvailableSeats != nil {
		available = *in.AvailableSeats
	}
	if in.TotalSeats < 0 || available < 0 || available > in.TotalSeats {
		return nil, fmt.Errorf("%w: total=%d available=%d", ErrInvalidSeats, in.TotalSeats, available)
	}

	if in.TicketPrice < 0 {
		return nil, ErrInvalidPrice
	}

	eventDate, err := time.Parse(time.DateOnly, strings.TrimSpace(in.EventDate))
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be YYYY-MM-DD", ErrInvalidEvent)
	}

	eventTime, err := normalizeEventTime(in.EventTime)
	if err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	e := &domain.Event{
		Title:          title,
		EventType:      eventType,
		Organizer:      strings.TrimSpace(in.Organizer),
		Venue:          strings.TrimSpace(in.Venue),
		Location:       strings.TrimSpace(in.Location),
		Description:    in.Description,
		TicketPrice:    in.TicketPrice,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: available,
		EventDate:      eventDate,
		EventTime:      eventTime,
		IsActive:       active,
		CreatedAt:      uc.clock.Now().UTC(),
	}
	e.DedupeKey = buildDedupeKey(e)

	return e, nil
}

func normalizeEventTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("%w: event_time must be HH:MM or HH:MM:SS", ErrInvalidEvent)
}

func buildDedupeKey(e *domain.Event) string {
	// title + event_date + venue
	return fmt.Sprintf("%s|%s|%s",
		strings.ToLower(e.Title),
		e.EventDate.Format(time.DateOnly),
		strings.ToLower(e.Venue),
	)
}
