package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/input/types"
)

// SearchMode leaves typing to the search input; enter hands focus back
type SearchMode struct {
	submit key.Binding
}

func NewSearchMode(submit key.Binding) *SearchMode {
	return &SearchMode{submit: submit}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.submit) {
		return []types.Action{types.BlurSearchAction{}}, true
	}
	// Let the handler update the search input
	return nil, false
}
