package domain

import "time"

// EventType values known to the catalog. Records may still carry other
// strings; they are counted verbatim.
const (
	EventTypeMovie      = "movie"
	EventTypeWorkshop   = "workshop"
	EventTypeSeminar    = "seminar"
	EventTypeConference = "conference"
	EventTypeOther      = "other"
)

// EventTypes lists the known types in display order.
var EventTypes = []string{
	EventTypeMovie,
	EventTypeWorkshop,
	EventTypeSeminar,
	EventTypeConference,
	EventTypeOther,
}

func IsKnownEventType(t string) bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EventRecord is the read-only view of an event the dashboard aggregates.
// EventDate and CreatedAt are nil when the source omitted them or sent
// something unparsable.
type EventRecord struct {
	ID             int64
	Title          string
	EventType      string
	TotalSeats     int64
	AvailableSeats int64
	TicketPrice    float64
	EventDate      *time.Time // calendar date, only Y/M/D is meaningful
	CreatedAt      *time.Time
}

type Summary struct {
	TotalEvents           int64
	TotalRegistrations    int64
	TotalRevenue          float64
	EventsThisWeek        int64
	EventTypeDistribution map[string]int64
}

type ActivityKind string

const (
	ActivityCreated        ActivityKind = "created"
	ActivityStartsTomorrow ActivityKind = "starts_tomorrow"
	ActivityThisWeek       ActivityKind = "this_week"
	ActivityCapacity       ActivityKind = "capacity"
	ActivitySoldOut        ActivityKind = "sold_out"
)

type Activity struct {
	Kind       ActivityKind
	EventID    int64
	EventTitle string
	Message    string
	Time       time.Time
}

type Dashboard struct {
	Summary     Summary
	Activity    []Activity
	GeneratedAt time.Time
}

// TypeShare is one row of the event type distribution.
type TypeShare struct {
	EventType string
	Count     int64
	Percent   float64
}
