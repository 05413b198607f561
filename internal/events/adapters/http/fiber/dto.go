package fiber

import (
	"time"

	"eventra-dashboard-service/internal/events/core/domain"
	"eventra-dashboard-service/internal/events/core/usecase"
	"eventra-dashboard-service/internal/platform/jsonvalue"
)

// CreateEventRequest represents event creation payload. Seat counts and
// price may be sent as numbers or numeric strings.
// @Description Event creation DTO
type CreateEventRequest struct {
	Title          string          `json:"title" example:"RRR Movie Screening"`
	EventType      string          `json:"event_type" example:"movie"`
	Organizer      string          `json:"organizer"`
	Venue          string          `json:"venue"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	TicketPrice    jsonvalue.Value `json:"ticket_price" swaggertype:"string" example:"50.00"`
	TotalSeats     jsonvalue.Value `json:"total_seats" swaggertype:"integer" example:"200"`
	AvailableSeats jsonvalue.Value `json:"available_seats" swaggertype:"integer"`
	EventDate      string          `json:"event_date" example:"2025-10-20"`
	EventTime      string          `json:"event_time" example:"18:30"`
	IsActive       *bool           `json:"is_active"`
}

func (r CreateEventRequest) toInput() (usecase.StoreEventInput, error) {
	price, err := r.TicketPrice.Float64("ticket_price")
	if err != nil {
		return usecase.StoreEventInput{}, err
	}
	total, err := r.TotalSeats.Int64("total_seats")
	if err != nil {
		return usecase.StoreEventInput{}, err
	}

	var available *int64
	if !r.AvailableSeats.IsEmpty() {
		n, err := r.AvailableSeats.Int64("available_seats")
		if err != nil {
			return usecase.StoreEventInput{}, err
		}
		available = &n
	}

	return usecase.StoreEventInput{
		Title:          r.Title,
		EventType:      r.EventType,
		Organizer:      r.Organizer,
		Venue:          r.Venue,
		Location:       r.Location,
		Description:    r.Description,
		TicketPrice:    price,
		TotalSeats:     total,
		AvailableSeats: available,
		EventDate:      r.EventDate,
		EventTime:      r.EventTime,
		IsActive:       r.IsActive,
	}, nil
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type EventResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	EventType      string    `json:"event_type"`
	Organizer      string    `json:"organizer"`
	Venue          string    `json:"venue"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	TicketPrice    float64   `json:"ticket_price"`
	TotalSeats     int64     `json:"total_seats"`
	AvailableSeats int64     `json:"available_seats"`
	EventDate      string    `json:"event_date,omitempty"`
	EventTime      string    `json:"event_time,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func toEventResponse(e domain.Event) EventResponse {
	var eventDate string
	if !e.EventDate.IsZero() {
		eventDate = e.EventDate.Format(time.DateOnly)
	}
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		EventType:      e.EventType,
		Organizer:      e.Organizer,
		Venue:          e.Venue,
		Location:       e.Location,
		Description:    e.Description,
		TicketPrice:    e.TicketPrice,
		TotalSeats:     e.TotalSeats,
		AvailableSeats: e.AvailableSeats,
		EventDate:      eventDate,
		EventTime:      e.EventTime,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
	}
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
