package domain

import "time"

const (
	TypeMovie      = "movie"
	TypeWorkshop   = "workshop"
	TypeSeminar    = "seminar"
	TypeConference = "conference"
	TypeOther      = "other"
)

var Types = []string{TypeMovie, TypeWorkshop, TypeSeminar, TypeConference, TypeOther}

// Event is a bookable catalog entry (screening, workshop, seminar...).
type Event struct {
	ID             int64
	Title          string
	EventType      string
	Organizer      string
	Venue          string
	Location       string
	Description    string
	TicketPrice    float64
	TotalSeats     int64
	AvailableSeats int64
	EventDate      time.Time // date only
	EventTime      string    // "15:04:05", empty when unset
	IsActive       bool
	CreatedAt      time.Time
	DedupeKey      string
}
