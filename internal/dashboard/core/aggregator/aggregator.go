// Package aggregator derives dashboard figures from a list of event records.
//
// Every function here is pure: the records and the current instant are
// passed in, nothing is read from the environment, and malformed records
// only drop out of the rule they cannot satisfy.
package aggregator

import (
	"slices"
	"sort"
	"time"

	"eventra-dashboard-service/internal/dashboard/core/domain"
)

const (
	MaxRecentActivity = 5

	recentCreationWindow = 48 * time.Hour
	upcomingWindowDays   = 7
	capacityThreshold    = 0.8
)

// ComputeSummary returns totals, revenue, the number of events taking place
// between today and today+7 (calendar days in now's location) and a verbatim
// count per event type. Seat counts are summed as-is, without clamping.
func ComputeSummary(events []domain.EventRecord, now time.Time) domain.Summary {
	s := domain.Summary{
		TotalEvents:           int64(len(events)),
		EventTypeDistribution: make(map[string]int64),
	}

	today := midnight(now)
	weekEnd := today.AddDate(0, 0, upcomingWindowDays)

	for _, e := range events {
		sold := e.TotalSeats - e.AvailableSeats
		s.TotalRegistrations += sold
		s.TotalRevenue += float64(sold) * e.TicketPrice

		s.EventTypeDistribution[e.EventType]++

		if e.EventDate == nil {
			continue
		}
		day := calendarDay(*e.EventDate, now.Location())
		if !day.Before(today) && !day.After(weekEnd) {
			s.EventsThisWeek++
		}
	}

	return s
}

// ComputeRecentActivity evaluates the activity rules for every record, pools
// the resulting entries, orders them newest first (stable on ties) and keeps
// at most MaxRecentActivity of them.
func ComputeRecentActivity(events []domain.EventRecord, now time.Time) []domain.Activity {
	entries := make([]domain.Activity, 0)

	tomorrow := midnight(now).AddDate(0, 0, 1)
	weekAhead := now.AddDate(0, 0, upcomingWindowDays)

	for _, e := range events {
		if e.CreatedAt != nil && now.Sub(*e.CreatedAt) <= recentCreationWindow {
			entries = append(entries, newActivity(e, domain.ActivityCreated,
				"New event created: "+e.Title, *e.CreatedAt))
		}

		if e.EventDate != nil {
			day := calendarDay(*e.EventDate, now.Location())

			if day.Equal(tomorrow) {
				// stamped at now, not at the event date
				entries = append(entries, newActivity(e, domain.ActivityStartsTomorrow,
					e.Title+" starts tomorrow", now))
			}

			if !day.Before(now) && !day.After(weekAhead) {
				entries = append(entries, newActivity(e, domain.ActivityThisWeek,
					e.Title+" is happening this week", day))
			}
		}

		if reachedCapacity(e) {
			entries = append(entries, newActivity(e, domain.ActivityCapacity,
				e.Title+" reached 80% capacity", now))
		}

		if e.AvailableSeats == 0 {
			entries = append(entries, newActivity(e, domain.ActivitySoldOut,
				e.Title+" is SOLD OUT", now))
		}
	}

	slices.SortStableFunc(entries, func(a, b domain.Activity) int {
		return b.Time.Compare(a.Time)
	})

	if len(entries) > MaxRecentActivity {
		entries = entries[:MaxRecentActivity]
	}
	return entries
}

// TypeShares renders a distribution as rows: known types first in catalog
// order (zero counts included), then unknown types alphabetically.
func TypeShares(s domain.Summary) []domain.TypeShare {
	shares := make([]domain.TypeShare, 0, len(domain.EventTypes)+len(s.EventTypeDistribution))

	for _, t := range domain.EventTypes {
		shares = append(shares, share(t, s.EventTypeDistribution[t], s.TotalEvents))
	}

	var unknown []string
	for t := range s.EventTypeDistribution {
		if !domain.IsKnownEventType(t) {
			unknown = append(unknown, t)
		}
	}
	sort.Strings(unknown)
	for _, t := range unknown {
		shares = append(shares, share(t, s.EventTypeDistribution[t], s.TotalEvents))
	}

	return shares
}

func share(t string, count, total int64) domain.TypeShare {
	var pct float64
	if total > 0 {
		pct = float64(count) * 100 / float64(total)
	}
	return domain.TypeShare{EventType: t, Count: count, Percent: pct}
}

func reachedCapacity(e domain.EventRecord) bool {
	if e.TotalSeats == 0 || e.AvailableSeats <= 0 {
		return false
	}
	sold := e.TotalSeats - e.AvailableSeats
	return float64(sold)/float64(e.TotalSeats) >= capacityThreshold
}

func newActivity(e domain.EventRecord, kind domain.ActivityKind, msg string, at time.Time) domain.Activity {
	return domain.Activity{
		Kind:       kind,
		EventID:    e.ID,
		EventTitle: e.Title,
		Message:    msg,
		Time:       at,
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDay moves a date-only value onto midnight in loc, keeping its Y/M/D.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
