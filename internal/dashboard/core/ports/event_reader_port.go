package ports

import (
	"context"
	"errors"

	"eventra-dashboard-service/internal/dashboard/core/domain"
)

type EventFilter struct {
	EventTypes      []string // empty = all types
	IncludeInactive bool
}

type EventReaderPort interface {
	ListEvents(ctx context.Context, f EventFilter) ([]domain.EventRecord, error)
}

// ErrSourceUnavailable is wrapped by readers whose backing store or upstream
// service cannot be reached.
var ErrSourceUnavailable = errors.New("event source unavailable")
