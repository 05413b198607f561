package fiber

import (
	"time"

	"eventra-dashboard-service/internal/dashboard/adapters/record"
)

// ComputeDashboardRequest carries event objects as the backend serializes
// them. Numeric fields may be numbers or numeric strings.
// @Description Ad-hoc dashboard computation payload
type ComputeDashboardRequest struct {
	Events []record.Payload `json:"events"`
	Now    string           `json:"now,omitempty" example:"2025-10-15T10:30:00+05:30"`
}

type SummaryResponse struct {
	TotalEvents           int64            `json:"total_events"`
	TotalRegistrations    int64            `json:"total_registrations"`
	TotalRevenue          float64          `json:"total_revenue"`
	EventsThisWeek        int64            `json:"events_this_week"`
	EventTypeDistribution map[string]int64 `json:"event_type_distribution"`
}

type TypeShareResponse struct {
	EventType string  `json:"event_type"`
	Count     int64   `json:"count"`
	Percent   float64 `json:"percent"`
}

type ActivityResponse struct {
	Kind       string    `json:"kind" example:"sold_out"`
	EventID    int64     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Message    string    `json:"message" example:"AI/ML Workshop is SOLD OUT"`
	Time       time.Time `json:"time"`
}

type DashboardResponse struct {
	GeneratedAt    time.Time           `json:"generated_at"`
	Summary        SummaryResponse     `json:"summary"`
	Distribution   []TypeShareResponse `json:"distribution"`
	RecentActivity []ActivityResponse  `json:"recent_activity"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid event_type filter"`
}
