package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"eventra-dashboard-service/internal/events/core/domain"
	"eventra-dashboard-service/internal/events/core/ports"
)

type ListEventsUseCase struct {
	repo ports.EventRepositoryPort
}

func NewListEventsUseCase(repo ports.EventRepositoryPort) *ListEventsUseCase {
	return &ListEventsUseCase{repo: repo}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, eventType string) ([]domain.Event, error) {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	if eventType != "" && !slices.Contains(domain.Types, eventType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}

	return uc.repo.ListActiveEvents(ctx, ports.ListFilter{EventType: eventType})
}
