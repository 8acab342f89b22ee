package handlers

import (
	"fmt"
	"strings"
	"time"

	"countdown/internal/domain"
	"countdown/internal/ui/commands"
	"countdown/internal/ui/logic"
	"countdown/internal/ui/state"
)

// User-facing messages
const (
	msgLoadFailed     = "Failed to load events"
	msgAddRequired    = "Please enter an event name and date"
	msgEditRequired   = "Please enter a new date"
	msgRefreshed      = "Refreshed"
	msgCreateFallback = "Failed to create event"
	msgUpdateFallback = "Failed to update event"
	msgDeleteFallback = "Failed to delete event"
)

// Timing holds the controller's intervals
type Timing struct {
	StatsInterval       time.Duration
	NotificationTimeout time.Duration
}

// Controller is the event store and sync controller. Every handler mutates
// the AppState it owns and returns the commands to run; it never performs
// I/O itself.
type Controller struct {
	state  *state.AppState
	timing Timing
}

// NewController creates a controller over appState
func NewController(appState *state.AppState, timing Timing) *Controller {
	if timing.StatsInterval <= 0 {
		timing.StatsInterval = 5 * time.Second
	}
	if timing.NotificationTimeout <= 0 {
		timing.NotificationTimeout = 3 * time.Second
	}
	return &Controller{state: appState, timing: timing}
}

// State exposes the controller's state for rendering
func (c *Controller) State() *state.AppState { return c.state }

// Start issues the initial fetches and arms the stats ticker
func (c *Controller) Start() []commands.Command {
	return []commands.Command{
		commands.FetchEvents{},
		commands.FetchStats{},
		commands.TickStats{After: c.timing.StatsInterval},
	}
}

// LoadEvents fetches events, optionally restricted to one status on the server
func (c *Controller) LoadEvents(status domain.Status) []commands.Command {
	return []commands.Command{commands.FetchEvents{Status: status}}
}

// CycleStatusFilter moves the server-side filter to the next status
func (c *Controller) CycleStatusFilter() []commands.Command {
	return c.LoadEvents(logic.NextStatusFilter(c.state.StatusFilter))
}

// OnEventsLoaded replaces the cache wholesale and re-renders
func (c *Controller) OnEventsLoaded(msg commands.EventsLoadedMsg) []commands.Command {
	c.state.StatusFilter = msg.Status
	c.state.ReplaceEvents(msg.Events)
	return msg.Then
}

// OnEventsFailed keeps the previous cache and tells the user
func (c *Controller) OnEventsFailed(msg commands.EventsFailedMsg) []commands.Command {
	return append(c.Notify(state.LevelError, msgLoadFailed), msg.Then...)
}

// OnStatsLoaded updates the four display fields
func (c *Controller) OnStatsLoaded(msg commands.StatsLoadedMsg) []commands.Command {
	c.state.Stats = state.StatsView{
		Total:   fmt.Sprint(msg.Stats.TotalEvents),
		Active:  fmt.Sprint(msg.Stats.ActiveEvents),
		Expired: fmt.Sprint(msg.Stats.ExpiredEvents),
		Next:    logic.NextEventText(msg.Stats),
	}
	return msg.Then
}

// OnStatsFailed leaves the previous values in place without notifying
func (c *Controller) OnStatsFailed(msg commands.StatsFailedMsg) []commands.Command {
	return msg.Then
}

// OnStatsTick refreshes stats and schedules the next tick
func (c *Controller) OnStatsTick() []commands.Command {
	return []commands.Command{
		commands.FetchStats{},
		commands.TickStats{After: c.timing.StatsInterval},
	}
}

// Search filters the cached events locally; no request is made
func (c *Controller) Search(term string) []commands.Command {
	c.state.SetSearchQuery(term)
	return nil
}

// FocusSearch moves keyboard focus to the search field
func (c *Controller) FocusSearch() { c.state.SearchFocused = true }

// BlurSearch leaves the search field, keeping the term
func (c *Controller) BlurSearch() { c.state.SearchFocused = false }

// MoveCursor moves the card selection by delta
func (c *Controller) MoveCursor(delta int) {
	c.state.Cursor = logic.ClampIndex(c.state.Cursor+delta, len(c.state.Visible))
}

// SetCursor jumps to index
func (c *Controller) SetCursor(index int) {
	c.state.Cursor = logic.ClampIndex(index, len(c.state.Visible))
}

// ToggleHelp shows or hides the full key help
func (c *Controller) ToggleHelp() { c.state.ShowHelp = !c.state.ShowHelp }

// OpenAdd opens the add dialog with an empty name and tomorrow's date
func (c *Controller) OpenAdd(now time.Time) {
	c.state.Form = state.Form{Date: logic.Tomorrow(now)}
	c.state.Dialogs.Add = true
}

// CloseAdd closes the add dialog
func (c *Controller) CloseAdd() { c.state.Dialogs.Add = false }

// SubmitAdd validates the form and requests creation
func (c *Controller) SubmitAdd(name, date string) []commands.Command {
	name = strings.TrimSpace(name)
	if name == "" || date == "" {
		return c.Notify(state.LevelWarning, msgAddRequired)
	}
	return []commands.Command{commands.CreateEvent{Name: name, Date: date}}
}

// OpenEdit targets name and opens the edit dialog prefilled with its date
func (c *Controller) OpenEdit(name, date string) {
	c.state.Target = name
	c.state.Form = state.Form{Name: name, Date: date}
	c.state.Dialogs.Edit = true
}

// CloseEdit closes the edit dialog and clears the target
func (c *Controller) CloseEdit() {
	c.state.Dialogs.Edit = false
	c.state.Target = ""
}

// SubmitEdit requests a date change for the targeted event
func (c *Controller) SubmitEdit(date string) []commands.Command {
	if c.state.Target == "" || date == "" {
		return c.Notify(state.LevelWarning, msgEditRequired)
	}
	return []commands.Command{commands.UpdateEvent{Name: c.state.Target, Date: date}}
}

// OpenDelete targets name and asks for confirmation
func (c *Controller) OpenDelete(name string) {
	c.state.Target = name
	c.state.DeletePrompt = fmt.Sprintf("Delete event \"%s\"? This cannot be undone.", name)
	c.state.Dialogs.Delete = true
}

// CloseDelete closes the delete dialog and clears the target
func (c *Controller) CloseDelete() {
	c.state.Dialogs.Delete = false
	c.state.Target = ""
}

// ConfirmDelete requests deletion of the targeted event
func (c *Controller) ConfirmDelete() []commands.Command {
	if c.state.Target == "" {
		return nil
	}
	return []commands.Command{commands.DeleteEvent{Name: c.state.Target}}
}

// Escape closes every dialog; closing an already closed one is a no-op
func (c *Controller) Escape() {
	c.CloseAdd()
	c.CloseEdit()
	c.CloseDelete()
}

// OnMutationDone reports the outcome of a write and re-syncs on success
func (c *Controller) OnMutationDone(msg commands.MutationDoneMsg) []commands.Command {
	if msg.Err != nil {
		text := msg.Detail
		if text == "" {
			text = fallbackFor(msg.Kind)
		}
		return c.Notify(state.LevelError, text)
	}

	var verb string
	switch msg.Kind {
	case domain.MutationCreate:
		c.CloseAdd()
		verb = "created"
	case domain.MutationUpdate:
		c.CloseEdit()
		verb = "updated"
	case domain.MutationDelete:
		c.CloseDelete()
		verb = "deleted"
	}

	cmds := c.Notify(state.LevelSuccess, fmt.Sprintf("Event \"%s\" %s", msg.Name, verb))
	return append(cmds, c.syncAfterMutation()...)
}

// Refresh re-fetches events then stats, then always confirms
func (c *Controller) Refresh() []commands.Command {
	return []commands.Command{
		commands.FetchEvents{Then: []commands.Command{
			commands.FetchStats{Then: []commands.Command{
				commands.ShowNotification{Level: state.LevelSuccess, Message: msgRefreshed},
			}},
		}},
	}
}

// syncAfterMutation reloads events, then stats once the events are in
func (c *Controller) syncAfterMutation() []commands.Command {
	return []commands.Command{
		commands.FetchEvents{Then: []commands.Command{commands.FetchStats{}}},
	}
}

// Notify overwrites the notification slot and schedules it to hide
func (c *Controller) Notify(level state.Level, message string) []commands.Command {
	c.state.Notification = state.Notification{Message: message, Level: level, Visible: true}
	return []commands.Command{commands.HideNotification{After: c.timing.NotificationTimeout}}
}

// OnNotificationExpired hides whatever is showing
func (c *Controller) OnNotificationExpired() {
	c.state.Notification.Visible = false
}

func fallbackFor(kind domain.MutationKind) string {
	switch kind {
	case domain.MutationUpdate:
		return msgUpdateFallback
	case domain.MutationDelete:
		return msgDeleteFallback
	default:
		return msgCreateFallback
	}
}
