package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/api"
	"countdown/internal/domain"
	"countdown/internal/eventbus"
)

// EventsAPI is the part of the REST client the executor needs
type EventsAPI interface {
	ListEvents(ctx context.Context, status domain.Status) ([]domain.Event, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	CreateEvent(ctx context.Context, name, date string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, name, date string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, name string) error
}

// Executor turns commands into Bubble Tea commands
type Executor struct {
	ctx context.Context
	api EventsAPI
	bus eventbus.EventBus
}

// NewExecutor creates a new command executor. ctx bounds every request;
// bus may be nil.
func NewExecutor(ctx context.Context, client EventsAPI, bus eventbus.EventBus) *Executor {
	return &Executor{ctx: ctx, api: client, bus: bus}
}

// Execute runs cmds concurrently; chained work travels in each command's Then
func (e *Executor) Execute(cmds []Command) tea.Cmd {
	var teaCmds []tea.Cmd
	for _, c := range cmds {
		if tc := e.teaCmd(c); tc != nil {
			teaCmds = append(teaCmds, tc)
		}
	}
	switch len(teaCmds) {
	case 0:
		return nil
	case 1:
		return teaCmds[0]
	default:
		return tea.Batch(teaCmds...)
	}
}

func (e *Executor) teaCmd(c Command) tea.Cmd {
	switch c := c.(type) {
	case FetchEvents:
		return func() tea.Msg {
			events, err := e.api.ListEvents(e.ctx, c.Status)
			if err != nil {
				log.Printf("Failed to load events: %v", err)
				e.publishError("Failed to load events", err)
				return EventsFailedMsg{Status: c.Status, Err: err, Then: c.Then}
			}
			return EventsLoadedMsg{Status: c.Status, Events: events, Then: c.Then}
		}

	case FetchStats:
		return func() tea.Msg {
			st, err := e.api.Stats(e.ctx)
			if err != nil {
				// Polled every few seconds; logged only
				log.Printf("Failed to load stats: %v", err)
				return StatsFailedMsg{Err: err, Then: c.Then}
			}
			return StatsLoadedMsg{Stats: *st, Then: c.Then}
		}

	case CreateEvent:
		return e.mutation(domain.MutationCreate, c.Name, func() error {
			_, err := e.api.CreateEvent(e.ctx, c.Name, c.Date)
			return err
		})

	case UpdateEvent:
		return e.mutation(domain.MutationUpdate, c.Name, func() error {
			_, err := e.api.UpdateEvent(e.ctx, c.Name, c.Date)
			return err
		})

	case DeleteEvent:
		return e.mutation(domain.MutationDelete, c.Name, func() error {
			return e.api.DeleteEvent(e.ctx, c.Name)
		})

	case ShowNotification:
		return func() tea.Msg {
			return NotifyMsg{Level: c.Level, Message: c.Message}
		}

	case HideNotification:
		return tea.Tick(c.After, func(time.Time) tea.Msg {
			return NotificationExpiredMsg{}
		})

	case TickStats:
		return tea.Tick(c.After, func(t time.Time) tea.Msg {
			return StatsTickMsg(t)
		})

	default:
		log.Printf("Executor: unknown command %T", c)
		return nil
	}
}

func (e *Executor) mutation(kind domain.MutationKind, name string, call func() error) tea.Cmd {
	return func() tea.Msg {
		if err := call(); err != nil {
			log.Printf("Failed to %s event %q: %v", kind, name, err)
			e.publishError("Failed to "+string(kind)+" event", err)
			return MutationDoneMsg{Kind: kind, Name: name, Err: err, Detail: api.Detail(err)}
		}
		if e.bus != nil {
			e.bus.Publish(eventbus.MutationAppliedEvent{Kind: kind, Name: name})
		}
		return MutationDoneMsg{Kind: kind, Name: name}
	}
}

func (e *Executor) publishError(message string, err error) {
	if e.bus != nil {
		e.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
}
