package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"eventra-dashboard-service/internal/dashboard/adapters/record"
	"eventra-dashboard-service/internal/dashboard/core/aggregator"
	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type ComputeDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.ComputeDashboardInput) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	getUC     GetDashboardUseCase
	computeUC ComputeDashboardUseCase
}

func NewDashboardHandler(getUC GetDashboardUseCase, computeUC ComputeDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{getUC: getUC, computeUC: computeUC}
}

// GetDashboard godoc
// @Summary Admin dashboard figures
// @Description Totals, revenue, events this week, type distribution and the five most recent activity notices
// @Tags Dashboard
// @Produce json
// @Param event_type query []string false "Restrict to event types (repeatable or comma separated)" collectionFormat(multi)
// @Param include_inactive query bool false "Include inactive events"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	in := usecase.GetDashboardInput{
		EventTypes:      queryList(c, "event_type"),
		IncludeInactive: c.QueryBool("include_inactive", false),
	}

	res, err := h.getUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEventType):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrSourceUnavailable):
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "event source is unavailable",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

// ComputeDashboard godoc
// @Summary Compute dashboard figures for a supplied event list
// @Description Runs the dashboard aggregation over the posted events, optionally at a given instant
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body ComputeDashboardRequest true "Events and optional now"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/compute [post]
func (h *DashboardHandler) ComputeDashboard(c *fiber.Ctx) error {
	var req ComputeDashboardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	var now time.Time
	if req.Now != "" {
		t, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_now",
				Message: "now must be an RFC3339 timestamp",
			})
		}
		now = t
	}

	events, err := record.ParseAll(req.Events)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}

	res, err := h.computeUC.Execute(c.UserContext(), usecase.ComputeDashboardInput{
		Events: events,
		Now:    now,
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

// queryList collects repeated and comma separated values of key.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func toResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		GeneratedAt: d.GeneratedAt,
		Summary: SummaryResponse{
			TotalEvents:           d.Summary.TotalEvents,
			TotalRegistrations:    d.Summary.TotalRegistrations,
			TotalRevenue:          d.Summary.TotalRevenue,
			EventsThisWeek:        d.Summary.EventsThisWeek,
			EventTypeDistribution: d.Summary.EventTypeDistribution,
		},
		Distribution:   make([]TypeShareResponse, 0, len(domain.EventTypes)),
		RecentActivity: make([]ActivityResponse, 0, len(d.Activity)),
	}

	for _, s := range aggregator.TypeShares(d.Summary) {
		resp.Distribution = append(resp.Distribution, TypeShareResponse{
			EventType: s.EventType,
			Count:     s.Count,
			Percent:   s.Percent,
		})
	}

	for _, a := range d.Activity {
		resp.RecentActivity = append(resp.RecentActivity, ActivityResponse{
			Kind:       string(a.Kind),
			EventID:    a.EventID,
			EventTitle: a.EventTitle,
			Message:    a.Message,
			Time:       a.Time,
		})
	}

	return resp
}
