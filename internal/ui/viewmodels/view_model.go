package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"countdown/internal/config"
	"countdown/internal/ui/state"
	"countdown/internal/ui/views"
)

// InputViews exposes the rendered text inputs owned by the input handler
type InputViews interface {
	SearchView() string
	AddNameView() string
	AddDateView() string
	AddFocus() int
	EditDateView() string
}

// Layout answers the scrolling questions that depend on rendered sizes
type Layout interface {
	GridOffset(vs views.ViewState) int
	HelpScrollMax(groups [][]key.Binding, height int) int
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	inputs InputViews
	keys   help.KeyMap
	layout Layout
	width  int
	height int
	help   help.Model

	gridOffset int // first grid row shown on the last render
	helpOffset int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, inputs InputViews, keys help.KeyMap, layout Layout) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		inputs: inputs,
		keys:   keys,
		layout: layout,
		help:   help.New(),
	}
}

// ScrollHelp moves the help overlay by delta lines, clamped to its content
func (vm *ViewModel) ScrollHelp(delta int) {
	maxOffset := vm.layout.HelpScrollMax(vm.keys.FullHelp(), vm.height)
	vm.helpOffset += delta
	if vm.helpOffset > maxOffset {
		vm.helpOffset = maxOffset
	}
	if vm.helpOffset < 0 {
		vm.helpOffset = 0
	}
}

// ResetHelpScroll returns the help overlay to its first line
func (vm *ViewModel) ResetHelpScroll() {
	vm.helpOffset = 0
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// Ready reports whether a window size has arrived
func (vm *ViewModel) Ready() bool {
	return vm.width > 0
}

// BuildViewState creates a ViewState for rendering. The grid offset is
// carried between calls so the viewport only moves when the cursor leaves it.
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Stats:         vm.state.Stats,
		Events:        vm.state.Visible,
		Loaded:        vm.state.Loaded,
		Cursor:        vm.state.Cursor,
		StatusFilter:  vm.state.StatusFilter,
		SearchInput:   vm.inputs.SearchView(),
		SearchQuery:   vm.state.SearchQuery,
		SearchFocused: vm.state.SearchFocused,
		Notification:  vm.state.Notification,
		Dialog:        DialogFor(vm.state.Dialogs),
		DialogTarget:  vm.state.Target,
		DeletePrompt:  vm.state.DeletePrompt,
		AddName:       vm.inputs.AddNameView(),
		AddDate:       vm.inputs.AddDateView(),
		AddFocus:      vm.inputs.AddFocus(),
		EditDate:      vm.inputs.EditDateView(),
		ShowHelp:      vm.state.ShowHelp,
		ShowHelpLine:  vm.config.UISettings.ShowHelp,
		HelpModel:     vm.help,
		Keys:          vm.keys,

		HelpScrollOffset: vm.helpOffset,
		GridOffset:       vm.gridOffset,
	}
	vm.gridOffset = vm.layout.GridOffset(vs)
	vs.GridOffset = vm.gridOffset
	return vs
}
