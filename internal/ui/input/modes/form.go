package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/input/types"
)

// FormKeys are the bindings shared by the add and edit forms
type FormKeys struct {
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

// AddFormMode edits the name and date fields of the add dialog
type AddFormMode struct {
	keys  FormKeys
	name  *textinput.Model
	date  *textinput.Model
	focus int // 0 name, 1 date
}

func NewAddFormMode(keys FormKeys, name, date *textinput.Model) *AddFormMode {
	return &AddFormMode{keys: keys, name: name, date: date}
}

func (m *AddFormMode) Name() string {
	return "add"
}

// Reset puts focus back on the name field
func (m *AddFormMode) Reset() tea.Cmd {
	m.focus = 0
	m.date.Blur()
	return m.name.Focus()
}

// Focused returns the field receiving keystrokes
func (m *AddFormMode) Focused() *textinput.Model {
	if m.focus == 1 {
		return m.date
	}
	return m.name
}

// FocusIndex returns 0 for the name field and 1 for the date field
func (m *AddFormMode) FocusIndex() int {
	return m.focus
}

func (m *AddFormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitAddAction{
			Name: m.name.Value(),
			Date: m.date.Value(),
		}}, true

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		// Two fields, so next and previous are the same move
		m.Focused().Blur()
		m.focus = 1 - m.focus
		m.Focused().Focus()
		return nil, true
	}
	return nil, false
}

// EditFormMode edits the date of the event being changed
type EditFormMode struct {
	keys FormKeys
	date *textinput.Model
}

func NewEditFormMode(keys FormKeys, date *textinput.Model) *EditFormMode {
	return &EditFormMode{keys: keys, date: date}
}

func (m *EditFormMode) Name() string {
	return "edit"
}

func (m *EditFormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.Submit) {
		return []types.Action{types.SubmitEditAction{Date: m.date.Value()}}, true
	}
	return nil, false
}
