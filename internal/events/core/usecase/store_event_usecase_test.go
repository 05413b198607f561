package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventra-dashboard-service/internal/clock"
	"eventra-dashboard-service/internal/events/core/domain"
	"eventra-dashboard-service/internal/events/core/ports"
)

var testNow = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

// fakeRepo implements EventRepositoryPort for tests.
type fakeRepo struct {
	InsertFn  func(ctx context.Context, e *domain.Event) (bool, error)
	ListFn    func(ctx context.Context, f ports.ListFilter) ([]domain.Event, error)
	lastEvent *domain.Event
	lastList  ports.ListFilter
	called    bool
}

func (f *fakeRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	f.called = true
	f.lastEvent = e
	if f.InsertFn != nil {
		return f.InsertFn(ctx, e)
	}
	return true, nil
}

func (f *fakeRepo) ListActiveEvents(ctx context.Context, flt ports.ListFilter) ([]domain.Event, error) {
	f.called = true
	f.lastList = flt
	if f.ListFn != nil {
		return f.ListFn(ctx, flt)
	}
	return nil, nil
}

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestStoreEvent_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewStoreEventUseCase(repo, clock.NewFixed(testNow))

	in := StoreEventInput{
		Title:          "  RRR Movie Screening ",
		EventType:      "Movie",
		Organizer:      "Film Club",
		Venue:          "Main Auditorium",
		Location:       "Block A",
		Description:    "Screening night",
		TicketPrice:    50,
		TotalSeats:     200,
		AvailableSeats: int64Ptr(150),
		EventDate:      "2025-10-20",
		EventTime:      "18:30",
	}

	created, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	e := repo.lastEvent
	if e.Title != "RRR Movie Screening" || e.EventType != "movie" {
		t.Fatalf("unexpected normalization: %+v", e)
	}
	if e.AvailableSeats != 150 || e.TotalSeats != 200 {
		t.Fatalf("unexpected seats: %+v", e)
	}
	if e.EventTime != "18:30:00" {
		t.Fatalf("expected event_time=18:30:00, got %s", e.EventTime)
	}
	if !e.IsActive {
		t.Fatalf("expected active by default")
	}
	if !e.CreatedAt.Equal(testNow) {
		t.Fatalf("expected created_at from clock, got %s", e.CreatedAt)
	}
	if e.DedupeKey != "rrr movie screening|2025-10-20|main auditorium" {
		t.Fatalf("unexpected dedupe key %q", e.DedupeKey)
	}
}

func TestStoreEvent_Defaults(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewStoreEventUseCase(repo, clock.NewFixed(testNow))

	_, err := uc.Execute(context.Background(), StoreEventInput{
		Title:      "Open Mic",
		TotalSeats: 30,
		EventDate:  "2025-10-20",
		IsActive:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := repo.lastEvent
	if e.EventType != domain.TypeOther {
		t.Fatalf("expected default type other, got %s", e.EventType)
	}
	if e.AvailableSeats != 30 {
		t.Fatalf("expected all seats available, got %d", e.AvailableSeats)
	}
	if e.EventTime != "" {
		t.Fatalf("expected empty event_time, got %q", e.EventTime)
	}
	if e.IsActive {
		t.Fatalf("expected inactive event")
	}
}

func TestStoreEvent_Duplicate(t *testing.T) {
	repo := &fakeRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, nil
		},
	}
	uc := NewStoreEventUseCase(repo, clock.NewFixed(testNow))

	created, err := uc.Execute(context.Background(), StoreEventInput{Title: "RRR", TotalSeats: 1, EventDate: "2025-10-20"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// VALIDATION ERRORS
// ------------------------------------------------------------

func TestStoreEvent_ValidationErrors(t *testing.T) {
	valid := func() StoreEventInput {
		return StoreEventInput{Title: "RRR", EventType: "movie", TotalSeats: 10, EventDate: "2025-10-20"}
	}

	cases := []struct {
		name   string
		mutate func(in *StoreEventInput)
		want   error
	}{
		{"empty title", func(in *StoreEventInput) { in.Title = "  " }, ErrInvalidEvent},
		{"unknown type", func(in *StoreEventInput) { in.EventType = "concert" }, ErrInvalidEventType},
		{"negative total", func(in *StoreEventInput) { in.TotalSeats = -1; in.AvailableSeats = int64Ptr(0) }, ErrInvalidSeats},
		{"negative available", func(in *StoreEventInput) { in.AvailableSeats = int64Ptr(-1) }, ErrInvalidSeats},
		{"available above total", func(in *StoreEventInput) { in.AvailableSeats = int64Ptr(11) }, ErrInvalidSeats},
		{"negative price", func(in *StoreEventInput) { in.TicketPrice = -5 }, ErrInvalidPrice},
		{"bad date", func(in *StoreEventInput) { in.EventDate = "20/10/2025" }, ErrInvalidEvent},
		{"missing date", func(in *StoreEventInput) { in.EventDate = "" }, ErrInvalidEvent},
		{"bad time", func(in *StoreEventInput) { in.EventTime = "7pm" }, ErrInvalidEvent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := NewStoreEventUseCase(repo, clock.NewFixed(testNow))

			in := valid()
			tc.mutate(&in)

			created, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if created {
				t.Fatalf("expected created=false")
			}
			if repo.called {
				t.Fatalf("repo must not be called on invalid input")
			}
		})
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR
// ------------------------------------------------------------

func TestStoreEvent_RepoError(t *testing.T) {
	repo := &fakeRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, errors.New("db error")
		},
	}
	uc := NewStoreEventUseCase(repo, clock.NewFixed(testNow))

	created, err := uc.Execute(context.Background(), StoreEventInput{Title: "RRR", TotalSeats: 1, EventDate: "2025-10-20"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestListEvents(t *testing.T) {
	repo := &fakeRepo{
		ListFn: func(ctx context.Context, f ports.ListFilter) ([]domain.Event, error) {
			return []domain.Event{{ID: 1, Title: "RRR", EventType: "movie"}}, nil
		},
	}
	uc := NewListEventsUseCase(repo)

	events, err := uc.Execute(context.Background(), " Movie ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if repo.lastList.EventType != "movie" {
		t.Fatalf("expected normalized filter, got %q", repo.lastList.EventType)
	}
}

func TestListEvents_InvalidType(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewListEventsUseCase(repo)

	_, err := uc.Execute(context.Background(), "concert")
	if !errors.Is(err, ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
	if repo.called {
		t.Fatalf("repo must not be called on invalid filter")
	}
}
