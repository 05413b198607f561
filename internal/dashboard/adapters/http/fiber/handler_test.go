package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "eventra-dashboard-service/internal/dashboard/adapters/http/fiber"
	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

var fixedNow = time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)

// Fake usecases implementing the interfaces the handler depends on.
type fakeGetDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
	lastInput usecase.GetDashboardInput
	called    bool
}

func (f *fakeGetDashboardUseCase) Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Dashboard{
		Summary:     domain.Summary{EventTypeDistribution: map[string]int64{}},
		Activity:    []domain.Activity{},
		GeneratedAt: fixedNow,
	}, nil
}

type fakeComputeDashboardUseCase struct {
	lastInput usecase.ComputeDashboardInput
	called    bool
}

func (f *fakeComputeDashboardUseCase) Execute(ctx context.Context, in usecase.ComputeDashboardInput) (*domain.Dashboard, error) {
	f.called = true
	f.lastInput = in
	return usecase.NewComputeDashboardUseCase(fixedClock{}).Execute(ctx, in)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

func setupApp(t *testing.T, getUC httpadapter.GetDashboardUseCase, computeUC httpadapter.ComputeDashboardUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDashboardHandler(getUC, computeUC)
	app.Get("/dashboard", h.GetDashboard)
	app.Post("/dashboard/compute", h.ComputeDashboard)
	return app
}

func decodeDashboard(t *testing.T, resp *http.Response) httpadapter.DashboardResponse {
	t.Helper()
	var out httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// ------------------------------------------------------------
// GET /dashboard SUCCESS
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				Summary: domain.Summary{
					TotalEvents:           3,
					TotalRegistrations:    187,
					TotalRevenue:          8750,
					EventsThisWeek:        2,
					EventTypeDistribution: map[string]int64{"movie": 2, "workshop": 1},
				},
				Activity: []domain.Activity{
					{Kind: domain.ActivitySoldOut, EventID: 4, EventTitle: "RRR", Message: "RRR is SOLD OUT", Time: fixedNow},
				},
				GeneratedAt: fixedNow,
			}, nil
		},
	}

	app := setupApp(t, uc, &fakeComputeDashboardUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	out := decodeDashboard(t, resp)
	if out.Summary.TotalEvents != 3 || out.Summary.TotalRevenue != 8750 || out.Summary.EventsThisWeek != 2 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if len(out.Distribution) != len(domain.EventTypes) {
		t.Fatalf("expected %d distribution rows, got %d", len(domain.EventTypes), len(out.Distribution))
	}
	if out.Distribution[0].EventType != "movie" || out.Distribution[0].Count != 2 {
		t.Fatalf("unexpected first distribution row: %+v", out.Distribution[0])
	}
	if len(out.RecentActivity) != 1 || out.RecentActivity[0].Kind != "sold_out" || out.RecentActivity[0].EventID != 4 {
		t.Fatalf("unexpected activity: %+v", out.RecentActivity)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}
}

func TestGetDashboard_ParsesFilters(t *testing.T) {
	uc := &fakeGetDashboardUseCase{}
	app := setupApp(t, uc, &fakeComputeDashboardUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?event_type=movie&event_type=seminar,workshop&include_inactive=true", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	want := []string{"movie", "seminar", "workshop"}
	if fmt.Sprint(uc.lastInput.EventTypes) != fmt.Sprint(want) {
		t.Fatalf("expected types %v, got %v", want, uc.lastInput.EventTypes)
	}
	if !uc.lastInput.IncludeInactive {
		t.Fatalf("expected include_inactive=true")
	}
}

// ------------------------------------------------------------
// GET /dashboard ERRORS
// ------------------------------------------------------------

func TestGetDashboard_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid type", fmt.Errorf("%w: %q", usecase.ErrInvalidEventType, "x"), http.StatusBadRequest, "invalid_query"},
		{"upstream", fmt.Errorf("list events: %w", usecase.ErrSourceUnavailable), http.StatusBadGateway, "upstream_unavailable"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeGetDashboardUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
					return nil, tc.err
				},
			}
			app := setupApp(t, uc, &fakeComputeDashboardUseCase{})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.StatusCode)
			}

			var body httpadapter.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tc.code {
				t.Fatalf("expected error=%s, got %s", tc.code, body.Error)
			}
		})
	}
}

// ------------------------------------------------------------
// POST /dashboard/compute
// ------------------------------------------------------------

func TestComputeDashboard_Success(t *testing.T) {
	compute := &fakeComputeDashboardUseCase{}
	app := setupApp(t, &fakeGetDashboardUseCase{}, compute)

	body := `{
		"now": "2025-10-15T10:30:00Z",
		"events": [
			{"id": 1, "title": "RRR", "event_type": "movie", "total_seats": "100", "available_seats": "0", "ticket_price": "50.00"},
			{"id": 2, "title": "Go 101", "event_type": "workshop", "total_seats": 100, "available_seats": 15, "event_date": "2025-10-16"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/dashboard/compute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if !compute.called {
		t.Fatalf("expected compute usecase to be called")
	}
	if len(compute.lastInput.Events) != 2 || compute.lastInput.Events[0].TotalSeats != 100 {
		t.Fatalf("unexpected parsed events: %+v", compute.lastInput.Events)
	}
	if !compute.lastInput.Now.Equal(fixedNow) {
		t.Fatalf("expected injected now, got %s", compute.lastInput.Now)
	}

	out := decodeDashboard(t, resp)
	if out.Summary.TotalRegistrations != 185 || out.Summary.TotalRevenue != 5000 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}

	var msgs []string
	for _, a := range out.RecentActivity {
		msgs = append(msgs, a.Message)
	}
	joined := strings.Join(msgs, "|")
	for _, want := range []string{"RRR is SOLD OUT", "Go 101 reached 80% capacity", "Go 101 starts tomorrow"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in activity, got %v", want, msgs)
		}
	}
}

func TestComputeDashboard_InvalidJSON(t *testing.T) {
	app := setupApp(t, &fakeGetDashboardUseCase{}, &fakeComputeDashboardUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/dashboard/compute", strings.NewReader(`{"events":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestComputeDashboard_InvalidRecord(t *testing.T) {
	compute := &fakeComputeDashboardUseCase{}
	app := setupApp(t, &fakeGetDashboardUseCase{}, compute)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/compute",
		strings.NewReader(`{"events":[{"title":"ok"},{"title":"bad","total_seats":"many"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "invalid_event" || !strings.Contains(body.Message, "events[1]") {
		t.Fatalf("unexpected error body: %+v", body)
	}
	if compute.called {
		t.Fatalf("usecase must not be called for invalid records")
	}
}

func TestComputeDashboard_InvalidNow(t *testing.T) {
	app := setupApp(t, &fakeGetDashboardUseCase{}, &fakeComputeDashboardUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/dashboard/compute",
		strings.NewReader(`{"now":"tomorrow","events":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestComputeDashboard_EmptyEvents(t *testing.T) {
	app := setupApp(t, &fakeGetDashboardUseCase{}, &fakeComputeDashboardUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/dashboard/compute", strings.NewReader(`{"events":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	out := decodeDashboard(t, resp)
	if out.Summary.TotalEvents != 0 || len(out.RecentActivity) != 0 || len(out.Summary.EventTypeDistribution) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", out)
	}
	if !out.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("expected clock time, got %s", out.GeneratedAt)
	}
}
