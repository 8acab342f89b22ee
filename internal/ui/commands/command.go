package commands

import (
	"time"

	"countdown/internal/domain"
	"countdown/internal/ui/state"
)

// Command is a side effect requested by a handler. Handlers only describe
// commands; the Executor runs them.
type Command interface {
	Type() string
}

// FetchEvents loads the event list. Then runs once the result is handled,
// whether the fetch succeeded or not.
type FetchEvents struct {
	Status domain.Status
	Then   []Command
}

func (c FetchEvents) Type() string { return "fetch_events" }

// FetchStats loads the aggregate counts
type FetchStats struct {
	Then []Command
}

func (c FetchStats) Type() string { return "fetch_stats" }

// CreateEvent posts a new event
type CreateEvent struct {
	Name string
	Date string
}

func (c CreateEvent) Type() string { return "create_event" }

// UpdateEvent changes the date of an existing event
type UpdateEvent struct {
	Name string
	Date string
}

func (c UpdateEvent) Type() string { return "update_event" }

// DeleteEvent removes an event
type DeleteEvent struct {
	Name string
}

func (c DeleteEvent) Type() string { return "delete_event" }

// ShowNotification asks for a notification as a later step of a chain
type ShowNotification struct {
	Level   state.Level
	Message string
}

func (c ShowNotification) Type() string { return "show_notification" }

// HideNotification hides the notification slot after a delay
type HideNotification struct {
	After time.Duration
}

func (c HideNotification) Type() string { return "hide_notification" }

// TickStats schedules the next periodic stats refresh
type TickStats struct {
	After time.Duration
}

func (c TickStats) Type() string { return "tick_stats" }

// Flatten walks commands and their Then chains depth-first
func Flatten(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		out = append(out, c)
		switch c := c.(type) {
		case FetchEvents:
			out = append(out, Flatten(c.Then)...)
		case FetchStats:
			out = append(out, Flatten(c.Then)...)
		}
	}
	return out
}
