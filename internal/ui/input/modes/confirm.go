package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/ui/input/types"
)

type ConfirmMode struct {
	confirm key.Binding
	cancel  key.Binding
}

func NewConfirmMode(confirm, cancel key.Binding) *ConfirmMode {
	return &ConfirmMode{confirm: confirm, cancel: cancel}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.confirm):
		return []types.Action{types.ConfirmDeleteAction{}}, true
	case key.Matches(msg, m.cancel):
		return []types.Action{types.CloseDialogAction{Mode: types.ModeDeleteConfirm}}, true
	}
	// Swallow everything else while the prompt is up
	return nil, true
}
