package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/input/modes"
	"countdown/internal/ui/input/types"
)

// Handler routes key presses to the handler of the active mode. The mode is
// derived from state on every key, so dialogs opened or closed by the
// controller take effect immediately.
type Handler struct {
	keys    KeyMap
	modes   map[types.Mode]types.ModeHandler
	addForm *modes.AddFormMode

	search   *textinput.Model
	addName  *textinput.Model
	addDate  *textinput.Model
	editDate *textinput.Model
}

func New() *Handler {
	keys := DefaultKeyMap()

	search := newInput("Search events...", 64)
	addName := newInput("Event name", 128)
	addDate := newInput("YYYY-MM-DD", 10)
	editDate := newInput("YYYY-MM-DD", 10)

	formKeys := modes.FormKeys{
		Submit:    keys.Submit,
		NextField: keys.NextField,
		PrevField: keys.PrevField,
	}

	h := &Handler{
		keys:     keys,
		modes:    make(map[types.Mode]types.ModeHandler),
		addForm:  modes.NewAddFormMode(formKeys, addName, addDate),
		search:   search,
		addName:  addName,
		addDate:  addDate,
		editDate: editDate,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(modes.NormalKeys{
		Up: keys.Up, Down: keys.Down, Home: keys.Home, End: keys.End,
		Add: keys.Add, Edit: keys.Edit, Delete: keys.Delete, Refresh: keys.Refresh,
		Search: keys.Search, Filter: keys.Filter, Help: keys.Help, Quit: keys.Quit,
		HelpPager: keys.HelpPager, Pager: keys.Pager,
	})
	h.modes[types.ModeSearch] = modes.NewSearchMode(keys.Submit)
	h.modes[types.ModeAddForm] = h.addForm
	h.modes[types.ModeEditForm] = modes.NewEditFormMode(formKeys, editDate)
	h.modes[types.ModeDeleteConfirm] = modes.NewConfirmMode(keys.Confirm, keys.Cancel)

	return h
}

func newInput(placeholder string, limit int) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "" // Prompt is handled in the UI layer
	return &ti
}

// Keys returns the key bindings, for the help view
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key press and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	// Global keys work in every mode
	switch {
	case key.Matches(msg, h.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, nil
	case key.Matches(msg, h.keys.Escape):
		h.search.Blur()
		return []types.Action{types.EscapeAction{}}, nil
	}

	mode := types.ModeFor(ctx)
	handler := h.modes[mode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}

	ti := h.inputFor(mode)
	if ti == nil {
		return actions, nil
	}

	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	if mode == types.ModeSearch {
		actions = append(actions, types.SearchAction{Term: ti.Value()})
	}
	return actions, cmd
}

func (h *Handler) inputFor(mode types.Mode) *textinput.Model {
	switch mode {
	case types.ModeSearch:
		return h.search
	case types.ModeAddForm:
		return h.addForm.Focused()
	case types.ModeEditForm:
		return h.editDate
	default:
		return nil
	}
}

// PrepareAdd fills the add form and focuses the name field
func (h *Handler) PrepareAdd(name, date string) tea.Cmd {
	h.addName.SetValue(name)
	h.addName.CursorEnd()
	h.addDate.SetValue(date)
	h.addDate.CursorEnd()
	h.search.Blur()
	return h.addForm.Reset()
}

// PrepareEdit fills the edit form and focuses the date field
func (h *Handler) PrepareEdit(date string) tea.Cmd {
	h.editDate.SetValue(date)
	h.editDate.CursorEnd()
	h.search.Blur()
	return h.editDate.Focus()
}

// CloseForms blurs every dialog field
func (h *Handler) CloseForms() {
	h.addName.Blur()
	h.addDate.Blur()
	h.editDate.Blur()
}

// FocusSearch gives the search field the keyboard
func (h *Handler) FocusSearch() tea.Cmd {
	return h.search.Focus()
}

// BlurSearch releases the search field; its text is kept
func (h *Handler) BlurSearch() {
	h.search.Blur()
}

// Update handles non-keyboard messages for the focused inputs
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, ti := range []*textinput.Model{h.search, h.addName, h.addDate, h.editDate} {
		if !ti.Focused() {
			continue
		}
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// SearchView renders the search field
func (h *Handler) SearchView() string { return h.search.View() }

// AddNameView renders the add dialog's name field
func (h *Handler) AddNameView() string { return h.addName.View() }

// AddDateView renders the add dialog's date field
func (h *Handler) AddDateView() string { return h.addDate.View() }

// EditDateView renders the edit dialog's date field
func (h *Handler) EditDateView() string { return h.editDate.View() }

// AddFocus reports which add field has focus: 0 name, 1 date
func (h *Handler) AddFocus() int { return h.addForm.FocusIndex() }
