package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRequestCompleted EventType = "RequestCompleted"
	EventMutationApplied  EventType = "MutationApplied"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RequestCompletedEvent is emitted after every API round trip, successful or not
type RequestCompletedEvent struct {
	Op         string // list_events, get_event, stats, create_event, update_event, delete_event
	Method     string
	Path       string
	StatusCode int // 0 when the request never got a response
	Duration   time.Duration
	Err        error
}

func (e RequestCompletedEvent) Type() EventType { return EventRequestCompleted }

// MutationAppliedEvent is emitted when the server accepted a create, update or delete
type MutationAppliedEvent struct {
	Kind MutationKind
	Name string
}

func (e MutationAppliedEvent) Type() EventType { return EventMutationApplied }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	APIBaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
