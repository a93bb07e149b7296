package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ptxer/Ticket/internal/domain"
)

var tracer = otel.Tracer("github.com/Ptxer/Ticket/internal/remote")

// FetchError is a failed periodic pull: transport failure or a non-2xx
// response. StatusCode is 0 on transport errors.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch tickets: %v", e.Err)
	}
	return fmt.Sprintf("fetch tickets: upstream returned %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DeleteError is a failed ticket deletion.
type DeleteError struct {
	TicketID   string
	StatusCode int
	Err        error
}

func (e *DeleteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delete ticket %s: %v", e.TicketID, e.Err)
	}
	return fmt.Sprintf("delete ticket %s: upstream returned %d", e.TicketID, e.StatusCode)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Client talks to the upstream dashboard API.
type Client struct {
	base  string
	token string
	http  *http.Client
}

func NewClient(base, token string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), token: token, http: hc}
}

// FetchTickets pulls the full ticket set from GET /api/dashboard.
func (c *Client) FetchTickets(ctx context.Context) ([]domain.Ticket, error) {
	ctx, span := tracer.Start(ctx, "remote.FetchTickets", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/dashboard", nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var tickets []domain.Ticket
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		span.RecordError(err)
		return nil, &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return tickets, nil
}

// DeleteTicket issues DELETE /api/ticket/{id}.
func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "remote.DeleteTicket", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("ticket.id", id))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.base+"/api/ticket/"+url.PathEscape(id), nil)
	if err != nil {
		return &DeleteError{TicketID: id, Err: err}
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return &DeleteError{TicketID: id, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeleteError{TicketID: id, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
