package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Search actions
type FocusSearchAction struct{}

func (a FocusSearchAction) Type() string { return "focus_search" }

type BlurSearchAction struct{}

func (a BlurSearchAction) Type() string { return "blur_search" }

type SearchAction struct {
	Term string
}

func (a SearchAction) Type() string { return "search" }

// Dialog actions
type OpenAddAction struct{}

func (a OpenAddAction) Type() string { return "open_add" }

type OpenEditAction struct{}

func (a OpenEditAction) Type() string { return "open_edit" }

type OpenDeleteAction struct{}

func (a OpenDeleteAction) Type() string { return "open_delete" }

type SubmitAddAction struct {
	Name string
	Date string
}

func (a SubmitAddAction) Type() string { return "submit_add" }

type SubmitEditAction struct {
	Date string
}

func (a SubmitEditAction) Type() string { return "submit_edit" }

type ConfirmDeleteAction struct{}

func (a ConfirmDeleteAction) Type() string { return "confirm_delete" }

type CloseDialogAction struct {
	Mode Mode // which dialog to close
}

func (a CloseDialogAction) Type() string { return "close_dialog" }

// EscapeAction closes every dialog at once
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type CycleStatusFilterAction struct{}

func (a CycleStatusFilterAction) Type() string { return "cycle_status_filter" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// ScrollHelpAction scrolls the help overlay by Delta lines
type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

// Pager contents
const (
	PagerHelp   = "help"
	PagerEvents = "events"
)

// PagerAction opens content in the external pager
type PagerAction struct {
	Content string // PagerHelp or PagerEvents
}

func (a PagerAction) Type() string { return "pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
