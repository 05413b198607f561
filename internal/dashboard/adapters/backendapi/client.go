// Package backendapi reads the event list from the platform's backend API.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"time"

	"eventra-dashboard-service/internal/dashboard/adapters/record"
	"eventra-dashboard-service/internal/dashboard/core/domain"
	"eventra-dashboard-service/internal/dashboard/core/ports"

	"github.com/valyala/fasthttp"
)

const (
	// maxPages bounds how many paginated responses are followed per call.
	maxPages       = 50
	defaultTimeout = 5 * time.Second
)

// Doer is the part of *fasthttp.Client the reader needs.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type EventReader struct {
	client   Doer
	url      string
	timeout  time.Duration
	maxPages int
	logger   *log.Logger
}

func NewEventReader(client Doer, url string, timeout time.Duration, logger *log.Logger) *EventReader {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &EventReader{
		client:   client,
		url:      url,
		timeout:  timeout,
		maxPages: maxPages,
		logger:   logger,
	}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

// page is the paginated list envelope; plain arrays are accepted as well.
// Results stay raw so one badly typed object does not fail the page.
type page struct {
	Next    *string           `json:"next"`
	Results []json.RawMessage `json:"results"`
}

// ListEvents fetches every page of the upstream list. Payloads failing the
// record parse are logged and skipped. Type and activity filters are applied
// locally.
func (r *EventReader) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.EventRecord, error) {
	events := make([]domain.EventRecord, 0)

	url := r.url
	for i := 0; i < r.maxPages && url != ""; i++ {
		p, err := r.fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		for j, raw := range p.Results {
			var payload record.Payload
			if err := json.Unmarshal(raw, &payload); err != nil {
				r.logger.Printf("backendapi: skipping record %d from %s: %v", j, url, err)
				continue
			}
			if !f.IncludeInactive && !payload.Active() {
				continue
			}
			if len(f.EventTypes) > 0 && !slices.Contains(f.EventTypes, payload.EventType) {
				continue
			}
			rec, err := payload.ToRecord()
			if err != nil {
				r.logger.Printf("backendapi: skipping record %d from %s: %v", j, url, err)
				continue
			}
			events = append(events, rec)
		}

		url = ""
		if p.Next != nil {
			url = *p.Next
		}
	}
	if url != "" {
		r.logger.Printf("backendapi: stopped after %d pages, %s not fetched; dashboard figures are partial", r.maxPages, url)
	}

	return events, nil
}

func (r *EventReader) fetch(ctx context.Context, url string) (*page, error) {
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := r.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ports.ErrSourceUnavailable, url, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d", ports.ErrSourceUnavailable, url, resp.StatusCode())
	}

	p, err := decodePage(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ports.ErrSourceUnavailable, url, err)
	}
	return p, nil
}

func decodePage(body []byte) (*page, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, err
		}
		return &page{Results: list}, nil
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
