package commands

import (
	"time"

	"countdown/internal/domain"
	"countdown/internal/ui/state"
)

// EventsLoadedMsg carries a successful event list fetch
type EventsLoadedMsg struct {
	Status domain.Status
	Events []domain.Event
	Then   []Command
}

// EventsFailedMsg reports a failed event list fetch
type EventsFailedMsg struct {
	Status domain.Status
	Err    error
	Then   []Command
}

// StatsLoadedMsg carries fresh aggregate counts
type StatsLoadedMsg struct {
	Stats domain.Stats
	Then  []Command
}

// StatsFailedMsg reports a failed stats fetch
type StatsFailedMsg struct {
	Err  error
	Then []Command
}

// MutationDoneMsg reports the outcome of a create, update or delete
type MutationDoneMsg struct {
	Kind   domain.MutationKind
	Name   string
	Err    error
	Detail string // server-provided detail, "" when absent
}

// NotifyMsg asks the model to show a notification
type NotifyMsg struct {
	Level   state.Level
	Message string
}

// NotificationExpiredMsg fires when a hide timer elapses
type NotificationExpiredMsg struct{}

// StatsTickMsg fires on the periodic stats interval
type StatsTickMsg time.Time
