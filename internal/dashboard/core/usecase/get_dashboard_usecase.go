package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra-dashboard-service/internal/clock"
	"eventra-dashboard-service/internal/dashboard/core/aggregator"
	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/ports"
)

var (
	ErrInvalidEventType  = errors.New("invalid event_type filter")
	ErrSourceUnavailable = ports.ErrSourceUnavailable
)

type GetDashboardInput struct {
	EventTypes      []string
	IncludeInactive bool
}

type GetDashboardUseCase struct {
	reader ports.EventReaderPort
	clock  clock.Clock
}

func NewGetDashboardUseCase(reader ports.EventReaderPort, clk clock.Clock) *GetDashboardUseCase {
	return &GetDashboardUseCase{reader: reader, clock: clk}
}

// Execute validates the filter, loads the matching events and aggregates them
// against the clock's current instant.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	for _, t := range in.EventTypes {
		if !domain.IsKnownEventType(t) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, t)
		}
	}

	events, err := uc.reader.ListEvents(ctx, ports.EventFilter{
		EventTypes:      in.EventTypes,
		IncludeInactive: in.IncludeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return build(events, uc.clock.Now()), nil
}

type ComputeDashboardInput struct {
	Events []domain.EventRecord
	Now    time.Time // zero = clock
}

// ComputeDashboardUseCase aggregates caller-supplied records without touching
// any store.
type ComputeDashboardUseCase struct {
	clock clock.Clock
}

func NewComputeDashboardUseCase(clk clock.Clock) *ComputeDashboardUseCase {
	return &ComputeDashboardUseCase{clock: clk}
}

func (uc *ComputeDashboardUseCase) Execute(ctx context.Context, in ComputeDashboardInput) (*domain.Dashboard, error) {
	now := in.Now
	if now.IsZero() {
		now = uc.clock.Now()
	}
	return build(in.Events, now), nil
}

func build(events []domain.EventRecord, now time.Time) *domain.Dashboard {
	return &domain.Dashboard{
		Summary:     aggregator.ComputeSummary(events, now),
		Activity:    aggregator.ComputeRecentActivity(events, now),
		GeneratedAt: now,
	}
}
