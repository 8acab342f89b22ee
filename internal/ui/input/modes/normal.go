package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/input/types"
)

// NormalKeys are the bindings normal mode listens to
type NormalKeys struct {
	Up, Down, Home, End        key.Binding
	Add, Edit, Delete, Refresh key.Binding
	Search, Filter, Help, Quit key.Binding
	HelpPager, Pager           key.Binding
}

type NormalMode struct {
	keys NormalKeys
}

func NewNormalMode(keys NormalKeys) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Up and down scroll the help overlay while it is open
	if ctx.HelpVisible() {
		switch {
		case key.Matches(msg, m.keys.Up):
			return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
		case key.Matches(msg, m.keys.Down):
			return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
		}
	}

	switch {
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Home, m.keys.End) && ctx.TotalItems() == 0:
		return nil, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Add):
		return []types.Action{types.OpenAddAction{}}, true

	case key.Matches(msg, m.keys.Edit):
		// Edit and delete act on the selected card
		if ctx.SelectedName() == "" {
			return nil, true
		}
		return []types.Action{types.OpenEditAction{}}, true

	case key.Matches(msg, m.keys.Delete):
		if ctx.SelectedName() == "" {
			return nil, true
		}
		return []types.Action{types.OpenDeleteAction{}}, true

	case key.Matches(msg, m.keys.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.FocusSearchAction{}}, true
	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.CycleStatusFilterAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.PagerAction{Content: types.PagerHelp}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.PagerAction{Content: types.PagerEvents}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
