package adapters

import (
	"countdown/internal/ui/state"
)

// StateContext adapts AppState to the read-only context the input handler needs
type StateContext struct {
	appState *state.AppState
}

// NewStateContext creates a new adapter
func NewStateContext(appState *state.AppState) *StateContext {
	return &StateContext{appState: appState}
}

func (a *StateContext) AddOpen() bool     { return a.appState.Dialogs.Add }
func (a *StateContext) EditOpen() bool    { return a.appState.Dialogs.Edit }
func (a *StateContext) DeleteOpen() bool  { return a.appState.Dialogs.Delete }
func (a *StateContext) IsSearching() bool { return a.appState.SearchFocused }
func (a *StateContext) HelpVisible() bool { return a.appState.ShowHelp }
func (a *StateContext) TotalItems() int   { return len(a.appState.Visible) }

// SelectedName returns the name of the event under the cursor, or ""
func (a *StateContext) SelectedName() string {
	ev, ok := a.appState.Selected()
	if !ok {
		return ""
	}
	return ev.Name
}
