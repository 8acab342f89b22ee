package state

import (
	"countdown/internal/domain"
	"countdown/internal/ui/logic"
)

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is the single shared transient message slot
type Notification struct {
	Message string
	Level   Level
	Visible bool
}

// Dialogs tracks the three independently open/closed dialogs
type Dialogs struct {
	Add    bool
	Edit   bool
	Delete bool
}

// AnyOpen reports whether at least one dialog is open
func (d Dialogs) AnyOpen() bool { return d.Add || d.Edit || d.Delete }

// Form holds the values a dialog was opened with
type Form struct {
	Name string
	Date string
}

// StatsView is what the stats header displays
type StatsView struct {
	Total   string
	Active  string
	Expired string
	Next    string
}

// AppState contains all the application state
type AppState struct {
	// Event data
	Events  []domain.Event // snapshot from the last successful fetch
	Visible []domain.Event // Events filtered by SearchQuery
	Loaded  bool           // at least one fetch has succeeded

	// Filters
	SearchQuery   string
	SearchFocused bool
	StatusFilter  domain.Status // server-side filter of the last fetch ("" = all)

	// Selection state
	Cursor int

	// Dialog state
	Dialogs      Dialogs
	Target       string // event an open edit/delete dialog refers to
	Form         Form
	DeletePrompt string

	// UI state
	Stats        StatsView
	Notification Notification
	ShowHelp     bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Events:  make([]domain.Event, 0),
		Visible: make([]domain.Event, 0),
		Stats: StatsView{
			Total:   "-",
			Active:  "-",
			Expired: "-",
			Next:    "-",
		},
	}
}

// ReplaceEvents swaps in a new snapshot and recomputes the visible view
func (s *AppState) ReplaceEvents(events []domain.Event) {
	if events == nil {
		events = make([]domain.Event, 0)
	}
	s.Events = events
	s.Loaded = true
	s.Rerender()
}

// SetSearchQuery changes the local filter and recomputes the visible view
func (s *AppState) SetSearchQuery(query string) {
	s.SearchQuery = query
	s.Rerender()
}

// Rerender derives Visible from Events and the search query
func (s *AppState) Rerender() {
	s.Visible = logic.FilterByName(s.Events, s.SearchQuery)
	s.Cursor = logic.ClampIndex(s.Cursor, len(s.Visible))
}

// Selected returns the event under the cursor
func (s *AppState) Selected() (domain.Event, bool) {
	if len(s.Visible) == 0 {
		return domain.Event{}, false
	}
	return s.Visible[logic.ClampIndex(s.Cursor, len(s.Visible))], true
}
