// Package prometheus exposes dashboard figures as Prometheus gauges. Figures
// are computed on scrape, so they are as fresh as the event source.
package prometheus

import (
	"context"
	"log"
	"time"

	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/usecase"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "eventra_dashboard"

type DashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type Collector struct {
	uc      DashboardUseCase
	timeout time.Duration
	logger  *log.Logger

	events         *prometheus.Desc
	registrations  *prometheus.Desc
	revenue        *prometheus.Desc
	eventsThisWeek *prometheus.Desc
	eventsByType   *prometheus.Desc
	scrapeErrors   prometheus.Counter
}

func NewCollector(uc DashboardUseCase, timeout time.Duration, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.Default()
	}
	return &Collector{
		uc:      uc,
		timeout: timeout,
		logger:  logger,
		events: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "events_total"),
			"Number of active events.", nil, nil),
		registrations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "registrations_total"),
			"Seats sold across active events.", nil, nil),
		revenue: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "revenue_total"),
			"Seats sold times ticket price across active events.", nil, nil),
		eventsThisWeek: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "events_this_week"),
			"Events dated between today and seven days ahead.", nil, nil),
		eventsByType: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "events_by_type"),
			"Number of active events per event type.", []string{"event_type"}, nil),
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrape_errors_total",
			Help:      "Scrapes that failed to compute the dashboard.",
		}),
	}
}

var _ prometheus.Collector = (*Collector)(nil)

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.events
	ch <- c.registrations
	ch <- c.revenue
	ch <- c.eventsThisWeek
	ch <- c.eventsByType
	c.scrapeErrors.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	d, err := c.uc.Execute(ctx, usecase.GetDashboardInput{})
	if err != nil {
		c.logger.Printf("prometheus: dashboard scrape failed: %v", err)
		c.scrapeErrors.Inc()
		c.scrapeErrors.Collect(ch)
		return
	}

	s := d.Summary
	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue, float64(s.TotalEvents))
	ch <- prometheus.MustNewConstMetric(c.registrations, prometheus.GaugeValue, float64(s.TotalRegistrations))
	ch <- prometheus.MustNewConstMetric(c.revenue, prometheus.GaugeValue, s.TotalRevenue)
	ch <- prometheus.MustNewConstMetric(c.eventsThisWeek, prometheus.GaugeValue, float64(s.EventsThisWeek))
	for t, n := range s.EventTypeDistribution {
		ch <- prometheus.MustNewConstMetric(c.eventsByType, prometheus.GaugeValue, float64(n), t)
	}
	c.scrapeErrors.Collect(ch)
}
