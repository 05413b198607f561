package ports

import (
	"context"

	"eventra-dashboard-service/internal/events/core/domain"
)

type ListFilter struct {
	EventType string // "" = all
}

type EventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.Event) (created bool, err error)

	// ListActiveEvents returns active events ordered by date.
	ListActiveEvents(ctx context.Context, f ListFilter) ([]domain.Event, error)
}
