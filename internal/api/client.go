package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"countdown/internal/domain"
	"countdown/internal/eventbus"
)

// maxBody bounds how much of a response is read
const maxBody = 1 << 20

// Client talks to the countdown REST service
type Client struct {
	baseURL    string
	httpClient *http.Client
	bus        eventbus.EventBus
}

// NewClient creates a client for the service rooted at baseURL
// (e.g. http://localhost:8000/api). bus may be nil.
func NewClient(baseURL string, timeout time.Duration, bus eventbus.EventBus) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		bus: bus,
	}
}

// ListEvents fetches every event, or only those with the given status
func (c *Client) ListEvents(ctx context.Context, status domain.Status) ([]domain.Event, error) {
	path := "/events"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var list domain.EventList
	if err := c.do(ctx, "list_events", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	if list.Events == nil {
		list.Events = []domain.Event{}
	}
	return list.Events, nil
}

// GetEvent fetches a single event by name
func (c *Client) GetEvent(ctx context.Context, name string) (*domain.Event, error) {
	var ev domain.Event
	if err := c.do(ctx, "get_event", http.MethodGet, eventPath(name), nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Stats fetches the aggregate counts
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var st domain.Stats
	if err := c.do(ctx, "stats", http.MethodGet, "/stats", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// CreateEvent creates a new event
func (c *Client) CreateEvent(ctx context.Context, name, date string) (*domain.Event, error) {
	var ev domain.Event
	body := domain.CreateEventRequest{Name: name, Date: date}
	if err := c.do(ctx, "create_event", http.MethodPost, "/events", body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent changes the date of the event called name
func (c *Client) UpdateEvent(ctx context.Context, name, date string) (*domain.Event, error) {
	var ev domain.Event
	body := domain.UpdateEventRequest{Date: date}
	if err := c.do(ctx, "update_event", http.MethodPut, eventPath(name), body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// DeleteEvent removes the event called name
func (c *Client) DeleteEvent(ctx context.Context, name string) error {
	return c.do(ctx, "delete_event", http.MethodDelete, eventPath(name), nil, nil)
}

// eventPath percent-encodes name as a single path segment
func eventPath(name string) string {
	return "/events/" + url.PathEscape(name)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		if c.bus != nil {
			c.bus.Publish(eventbus.RequestCompletedEvent{
				Op:         op,
				Method:     method,
				Path:       path,
				StatusCode: status,
				Duration:   time.Since(start),
				Err:        err,
			})
		}
	}()

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, StatusCode: resp.StatusCode, Detail: parseDetail(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
