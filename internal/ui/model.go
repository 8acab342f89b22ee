package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/config"
	"countdown/internal/eventbus"
	"countdown/internal/ui/adapters"
	"countdown/internal/ui/commands"
	"countdown/internal/ui/handlers"
	"countdown/internal/ui/input"
	inputtypes "countdown/internal/ui/input/types"
	"countdown/internal/ui/logic"
	"countdown/internal/ui/state"
	"countdown/internal/ui/viewmodels"
	"countdown/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// Handlers
	controller   *handlers.Controller   // event store and sync controller
	renderer     *views.Renderer        // view renderer
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	inputContext *adapters.StateContext // read-only view of state for input modes
	viewModel    *viewmodels.ViewModel  // state to view transformation

	now func() time.Time
}

// NewModel creates a new UI model. ctx bounds every request the model makes.
func NewModel(ctx context.Context, cfg *config.Config, client commands.EventsAPI, bus eventbus.EventBus) *Model {
	appState := state.NewAppState()

	dateLayout := cfg.UISettings.DateLayout
	if dateLayout == "" {
		dateLayout = logic.DefaultDateLayout
	}

	inputHandler := input.New()
	renderer := views.NewRenderer(dateLayout)

	return &Model{
		bus:    bus,
		config: cfg,
		state:  appState,
		controller: handlers.NewController(appState, handlers.Timing{
			StatsInterval:       cfg.StatsInterval.Std(),
			NotificationTimeout: cfg.NotificationTimeout.Std(),
		}),
		renderer:     renderer,
		cmdExecutor:  commands.NewExecutor(ctx, client, bus),
		inputHandler: inputHandler,
		inputContext: adapters.NewStateContext(appState),
		viewModel:    viewmodels.NewViewModel(appState, cfg, inputHandler, inputHandler.Keys(), renderer),
		now:          time.Now,
	}
}

// Init loads events and stats and starts the stats ticker
func (m *Model) Init() tea.Cmd {
	return m.cmdExecutor.Execute(m.controller.Start())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) execute(cmds []commands.Command) tea.Cmd {
	return m.cmdExecutor.Execute(cmds)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.controller.MoveCursor(-1)
		case "down":
			m.controller.MoveCursor(1)
		case "home":
			m.controller.SetCursor(0)
		case "end":
			m.controller.SetCursor(len(m.state.Visible) - 1)
		}

	case inputtypes.FocusSearchAction:
		m.controller.FocusSearch()
		return m.inputHandler.FocusSearch()

	case inputtypes.BlurSearchAction:
		m.controller.BlurSearch()
		m.inputHandler.BlurSearch()

	case inputtypes.SearchAction:
		return m.execute(m.controller.Search(a.Term))

	case inputtypes.OpenAddAction:
		m.controller.OpenAdd(m.now())
		return m.inputHandler.PrepareAdd(m.state.Form.Name, m.state.Form.Date)

	case inputtypes.OpenEditAction:
		ev, ok := m.state.Selected()
		if !ok {
			return nil
		}
		m.controller.OpenEdit(ev.Name, ev.Date)
		return m.inputHandler.PrepareEdit(m.state.Form.Date)

	case inputtypes.OpenDeleteAction:
		ev, ok := m.state.Selected()
		if !ok {
			return nil
		}
		m.controller.OpenDelete(ev.Name)

	case inputtypes.SubmitAddAction:
		return m.execute(m.controller.SubmitAdd(a.Name, a.Date))

	case inputtypes.SubmitEditAction:
		return m.execute(m.controller.SubmitEdit(a.Date))

	case inputtypes.ConfirmDeleteAction:
		return m.execute(m.controller.ConfirmDelete())

	case inputtypes.CloseDialogAction:
		switch a.Mode {
		case inputtypes.ModeDeleteConfirm:
			m.controller.CloseDelete()
		case inputtypes.ModeEditForm:
			m.controller.CloseEdit()
		case inputtypes.ModeAddForm:
			m.controller.CloseAdd()
		}
		m.syncInputs()

	case inputtypes.EscapeAction:
		m.controller.Escape()
		m.controller.BlurSearch()
		m.state.ShowHelp = false
		m.viewModel.ResetHelpScroll()
		m.syncInputs()

	case inputtypes.RefreshAction:
		return m.execute(m.controller.Refresh())

	case inputtypes.CycleStatusFilterAction:
		return m.execute(m.controller.CycleStatusFilter())

	case inputtypes.ToggleHelpAction:
		m.controller.ToggleHelp()
		m.viewModel.ResetHelpScroll()

	case inputtypes.ScrollHelpAction:
		m.viewModel.ScrollHelp(a.Delta)

	case inputtypes.PagerAction:
		if a.Content == inputtypes.PagerHelp {
			return showInPager(a.Content, views.PlainHelp(m.inputHandler.Keys().FullHelp()))
		}
		return showInPager(a.Content, logic.FormatEventList(m.state.Visible))

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }

	default:
		log.Printf("processAction: unhandled %T", action)
	}
	return nil
}

// syncInputs blurs dialog fields once their dialogs are closed
func (m *Model) syncInputs() {
	if !m.state.Dialogs.AnyOpen() {
		m.inputHandler.CloseForms()
	}
}

// handleNonKeyboardMsg routes command results back into the controller
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.EventsLoadedMsg:
		return m, m.execute(m.controller.OnEventsLoaded(msg))

	case commands.EventsFailedMsg:
		return m, m.execute(m.controller.OnEventsFailed(msg))

	case commands.StatsLoadedMsg:
		return m, m.execute(m.controller.OnStatsLoaded(msg))

	case commands.StatsFailedMsg:
		return m, m.execute(m.controller.OnStatsFailed(msg))

	case commands.StatsTickMsg:
		return m, m.execute(m.controller.OnStatsTick())

	case commands.MutationDoneMsg:
		cmd := m.execute(m.controller.OnMutationDone(msg))
		m.syncInputs()
		return m, cmd

	case commands.NotifyMsg:
		return m, m.execute(m.controller.Notify(msg.Level, msg.Message))

	case commands.NotificationExpiredMsg:
		m.controller.OnNotificationExpired()
		return m, nil

	case pagerExitMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.content, msg.err)
			return m, m.execute(m.controller.Notify(state.LevelError, "Failed to open pager"))
		}
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		// Cursor blink and other input messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if !m.viewModel.Ready() {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// State exposes the application state, for tests and the CLI
func (m *Model) State() *state.AppState {
	return m.state
}
