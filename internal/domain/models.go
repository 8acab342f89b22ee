package domain

import "strings"

// Status is the server-assigned classification of an event relative to today
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusCurrent Status = "CURRENT"
	StatusExpired Status = "EXPIRED"
)

// Statuses lists the known statuses in filter-cycle order
var Statuses = []Status{StatusActive, StatusCurrent, StatusExpired}

// ParseStatus converts user input ("active", "EXPIRED", ...) into a Status.
// An empty string means "no status filter" and is returned as ok.
func ParseStatus(s string) (Status, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Event is a named date tracked for countdown display
type Event struct {
	Name          string `json:"name"`
	Date          string `json:"date"` // YYYY-MM-DD
	Status        Status `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// EventList is the body of GET /events
type EventList struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

// Stats is the server-computed aggregate returned by GET /stats
type Stats struct {
	TotalEvents   int     `json:"total_events"`
	ActiveEvents  int     `json:"active_events"`
	ExpiredEvents int     `json:"expired_events"`
	NextEvent     *string `json:"next_event,omitempty"`
	NextEventDays *int    `json:"next_event_days,omitempty"`
}

// CreateEventRequest is the body of POST /events
type CreateEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// UpdateEventRequest is the body of PUT /events/{name}; only the date is mutable
type UpdateEventRequest struct {
	Date string `json:"date"`
}

// MutationKind identifies a write against the server
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)
