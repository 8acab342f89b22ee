package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countdown/internal/ui/input/types"
)

type fakeContext struct {
	add, edit, del, searching bool
	help, empty               bool
	selected                  string
}

func (c fakeContext) AddOpen() bool     { return c.add }
func (c fakeContext) EditOpen() bool    { return c.edit }
func (c fakeContext) DeleteOpen() bool  { return c.del }
func (c fakeContext) IsSearching() bool { return c.searching }
func (c fakeContext) HelpVisible() bool { return c.help }
func (c fakeContext) TotalItems() int {
	if c.empty {
		return 0
	}
	return 1
}
func (c fakeContext) SelectedName() string { return c.selected }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Handler, ctx types.Context, s string) []types.Action {
	var all []types.Action
	for _, r := range s {
		actions, _ := h.HandleKey(runes(string(r)), ctx)
		all = append(all, actions...)
	}
	return all
}

func TestModeForPrefersTopmostDialog(t *testing.T) {
	assert.Equal(t, types.ModeNormal, types.ModeFor(fakeContext{}))
	assert.Equal(t, types.ModeSearch, types.ModeFor(fakeContext{searching: true}))
	assert.Equal(t, types.ModeAddForm, types.ModeFor(fakeContext{add: true, searching: true}))
	assert.Equal(t, types.ModeEditForm, types.ModeFor(fakeContext{add: true, edit: true}))
	assert.Equal(t, types.ModeDeleteConfirm, types.ModeFor(fakeContext{edit: true, del: true}))
}

func TestNormalModeKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{selected: "Launch"}

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{runes("a"), types.OpenAddAction{}},
		{runes("e"), types.OpenEditAction{}},
		{runes("d"), types.OpenDeleteAction{}},
		{runes("r"), types.RefreshAction{}},
		{runes("/"), types.FocusSearchAction{}},
		{runes("f"), types.CycleStatusFilterAction{}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("H"), types.PagerAction{Content: types.PagerHelp}},
		{runes("p"), types.PagerAction{Content: types.PagerEvents}},
		{runes("q"), types.QuitAction{Force: false}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
		{tea.KeyMsg{Type: tea.KeyEsc}, types.EscapeAction{}},
	}
	for _, tc := range cases {
		actions, _ := h.HandleKey(tc.msg, ctx)
		require.Len(t, actions, 1, tc.msg.String())
		assert.Equal(t, tc.want, actions[0], tc.msg.String())
	}
}

func TestEditAndDeleteNeedSelection(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("e"), fakeContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("d"), fakeContext{})
	assert.Empty(t, actions)
}

func TestSearchEmitsTermPerKeystroke(t *testing.T) {
	h := New()
	h.FocusSearch()
	ctx := fakeContext{searching: true}

	actions := typeText(h, ctx, "bd")
	assert.Equal(t, []types.Action{
		types.SearchAction{Term: "b"},
		types.SearchAction{Term: "bd"},
	}, actions)

	// Normal-mode letters are text while searching
	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.SearchAction{Term: "bdq"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.BlurSearchAction{}}, actions)
}

func TestAddFormSubmitsBothFields(t *testing.T) {
	h := New()
	h.PrepareAdd("", "2025-03-02")
	ctx := fakeContext{add: true}

	typeText(h, ctx, "Launch")
	assert.Equal(t, 0, h.AddFocus())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, 1, h.AddFocus())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitAddAction{Name: "Launch", Date: "2025-03-02"}}, actions)

	// Reopening resets focus to the name field
	h.PrepareAdd("", "2025-03-02")
	assert.Equal(t, 0, h.AddFocus())
}

func TestEditFormSubmitsDate(t *testing.T) {
	h := New()
	h.PrepareEdit("2025-01-01")
	ctx := fakeContext{edit: true}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitEditAction{Date: "2025-01-01"}}, actions)
}

func TestDeleteConfirmKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{del: true}

	actions, _ := h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.ConfirmDeleteAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ConfirmDeleteAction{}}, actions)

	actions, _ = h.HandleKey(runes("n"), ctx)
	assert.Equal(t, []types.Action{types.CloseDialogAction{Mode: types.ModeDeleteConfirm}}, actions)

	// Anything else is swallowed
	actions, _ = h.HandleKey(runes("a"), ctx)
	assert.Empty(t, actions)
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 5)
}

func TestHelpVisibleScrollsWithUpDown(t *testing.T) {
	h := New()
	ctx := fakeContext{help: true}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ScrollHelpAction{Delta: 1}, actions[0])

	actions, _ = h.HandleKey(runes("k"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ScrollHelpAction{Delta: -1}, actions[0])

	// Other keys still reach normal mode
	actions, _ = h.HandleKey(runes("?"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ToggleHelpAction{}, actions[0])
}

func TestNavigationIgnoredWithoutEvents(t *testing.T) {
	h := New()
	ctx := fakeContext{empty: true}

	for _, msg := range []tea.KeyMsg{runes("j"), runes("k"), {Type: tea.KeyHome}, {Type: tea.KeyEnd}} {
		actions, handled := h.HandleKey(msg, ctx)
		assert.True(t, handled, msg.String())
		assert.Empty(t, actions, msg.String())
	}

	actions, _ := h.HandleKey(runes("a"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.OpenAddAction{}, actions[0])
}

func TestAddFormFieldKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{add: true}
	h.PrepareAdd("", "2025-01-01")

	for _, next := range []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyDown}} {
		h.addForm.Reset()
		h.HandleKey(next, ctx)
		assert.Equal(t, 1, h.AddFocus(), next.String())
	}
	for _, prev := range []tea.KeyMsg{{Type: tea.KeyShiftTab}, {Type: tea.KeyUp}} {
		h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
		h.HandleKey(prev, ctx)
		assert.Equal(t, 0, h.AddFocus(), prev.String())
	}
}
