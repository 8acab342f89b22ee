package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAddForm
	ModeEditForm
	ModeDeleteConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeAddForm:
		return "add"
	case ModeEditForm:
		return "edit"
	case ModeDeleteConfirm:
		return "delete-confirm"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	AddOpen() bool
	EditOpen() bool
	DeleteOpen() bool
	IsSearching() bool
	HelpVisible() bool
	TotalItems() int
	SelectedName() string
}

// ModeFor derives the active mode from state; the topmost open dialog wins
func ModeFor(ctx Context) Mode {
	switch {
	case ctx.DeleteOpen():
		return ModeDeleteConfirm
	case ctx.EditOpen():
		return ModeEditForm
	case ctx.AddOpen():
		return ModeAddForm
	case ctx.IsSearching():
		return ModeSearch
	default:
		return ModeNormal
	}
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
