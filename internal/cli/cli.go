// Package cli implements the one-shot subcommands that talk to the event
// service without starting the terminal UI.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"countdown/internal/api"
	"countdown/internal/domain"
	"countdown/internal/ui/logic"
	"countdown/internal/ui/views"
)

// API is the part of the REST client the commands need
type API interface {
	ListEvents(ctx context.Context, status domain.Status) ([]domain.Event, error)
	GetEvent(ctx context.Context, name string) (*domain.Event, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	CreateEvent(ctx context.Context, name, date string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, name, date string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, name string) error
}

// errUsage marks bad arguments; usage has already been printed
var errUsage = errors.New("usage")

type command struct {
	name    string
	args    string
	summary string
	run     func(r *Runner, ctx context.Context, fs *flag.FlagSet, args []string) error
}

var commandList = []command{
	{"list", "[-status S]", "List events", (*Runner).list},
	{"show", "NAME", "Show one event", (*Runner).show},
	{"add", "NAME DATE", "Create an event (DATE is YYYY-MM-DD)", (*Runner).add},
	{"edit", "NAME DATE", "Change the date of an event", (*Runner).edit},
	{"delete", "NAME", "Delete an event", (*Runner).remove},
	{"export-html", "[-o FILE]", "Write the events as an HTML page", (*Runner).exportHTML},
}

// IsCommand reports whether name is a subcommand
func IsCommand(name string) bool {
	for _, c := range commandList {
		if c.name == name {
			return true
		}
	}
	return name == "help"
}

// Runner executes subcommands against an API
type Runner struct {
	api        API
	out        io.Writer
	errOut     io.Writer
	dateLayout string
}

// New creates a runner writing results to out and errors to errOut
func New(client API, out, errOut io.Writer, dateLayout string) *Runner {
	return &Runner{api: client, out: out, errOut: errOut, dateLayout: dateLayout}
}

// Run executes args[0] with the remaining arguments and returns the exit code
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		r.usage(r.out)
		return 0
	}

	for _, c := range commandList {
		if c.name != args[0] {
			continue
		}
		fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
		fs.SetOutput(r.errOut)
		fs.Usage = func() {
			fmt.Fprintf(r.errOut, "Usage: countdown %s %s\n", c.name, c.args)
			fs.PrintDefaults()
		}

		err := c.run(r, ctx, fs, args[1:])
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			return 2
		default:
			fmt.Fprintf(r.errOut, "❌ Error: %s\n", message(err))
			return 1
		}
	}

	fmt.Fprintf(r.errOut, "Unknown command %q\n\n", args[0])
	r.usage(r.errOut)
	return 2
}

func (r *Runner) usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: countdown [flags] [command]")
	fmt.Fprintln(w, "\nWithout a command the interactive view starts.\n\nCommands:")
	for _, c := range commandList {
		fmt.Fprintf(w, "  %-28s %s\n", c.name+" "+c.args, c.summary)
	}
}

// message prefers the server's detail over the transport error text
func message(err error) string {
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return err.Error()
}

// positional parses flags and requires exactly n positional arguments
func positional(fs *flag.FlagSet, args []string, n int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != n {
		fs.Usage()
		return nil, errUsage
	}
	return fs.Args(), nil
}

func (r *Runner) list(ctx context.Context, fs *flag.FlagSet, args []string) error {
	statusFlag := fs.String("status", "", "only events with this status (ACTIVE, CURRENT, EXPIRED)")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}
	status, ok := domain.ParseStatus(*statusFlag)
	if !ok {
		return fmt.Errorf("invalid status %q", *statusFlag)
	}

	events, err := r.api.ListEvents(ctx, status)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, logic.FormatEventList(events))
	return nil
}

func (r *Runner) show(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pos, err := positional(fs, args, 1)
	if err != nil {
		return err
	}
	ev, err := r.api.GetEvent(ctx, pos[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, logic.FormatEventLine(*ev))
	return nil
}

func (r *Runner) add(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pos, err := positional(fs, args, 2)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(pos[0])
	if name == "" {
		return errors.New("event name cannot be empty")
	}
	ev, err := r.api.CreateEvent(ctx, name, pos[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✅ %s created, %d days left\n", ev.Name, ev.DaysRemaining)
	return nil
}

func (r *Runner) edit(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pos, err := positional(fs, args, 2)
	if err != nil {
		return err
	}
	ev, err := r.api.UpdateEvent(ctx, pos[0], pos[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✅ %s updated, %d days left\n", ev.Name, ev.DaysRemaining)
	return nil
}

func (r *Runner) remove(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pos, err := positional(fs, args, 1)
	if err != nil {
		return err
	}
	if err := r.api.DeleteEvent(ctx, pos[0]); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✅ %s deleted\n", pos[0])
	return nil
}

func (r *Runner) exportHTML(ctx context.Context, fs *flag.FlagSet, args []string) error {
	output := fs.String("o", "", "output file (default stdout)")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	events, err := r.api.ListEvents(ctx, "")
	if err != nil {
		return err
	}
	stats, err := r.api.Stats(ctx)
	if err != nil {
		return err
	}

	renderer := views.NewHTMLRenderer(r.dateLayout)
	if *output == "" {
		return renderer.WritePage(r.out, "Countdown", events, *stats)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %s: %w", *output, err)
	}
	if err := renderer.WritePage(f, "Countdown", events, *stats); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *output, err)
	}
	fmt.Fprintf(r.out, "✅ Exported %d events to %s\n", len(events), *output)
	return nil
}
