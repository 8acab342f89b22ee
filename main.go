package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/api"
	"countdown/internal/cli"
	"countdown/internal/config"
	"countdown/internal/eventbus"
	"countdown/internal/metrics"
	"countdown/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line arguments
	var configPath, apiURL string
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file (.toml, .yaml or .json)")
	flag.StringVar(&apiURL, "api", "", "Event service base URL (overrides api_base_url)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: countdown [flags] [command]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nRun \"countdown help\" for the list of commands.\n")
	}
	flag.Parse()

	if flag.NArg() > 0 && !cli.IsCommand(flag.Arg(0)) {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", flag.Arg(0))
		flag.Usage()
		return 2
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg := loadOrCreateConfig(configSvc)
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: invalid config %s: %v\n", configSvc.Path(), err)
		return 1
	}

	// Set up logging; the terminal belongs to the UI or to command output
	if closeLog := setupLogging(cfg.LogFile); closeLog != nil {
		defer closeLog()
	}
	log.Printf("Config: %s, API: %s", configSvc.Path(), cfg.APIBaseURL)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	subscribeLogging(bus)

	recorder := metrics.NewRecorder()
	unsubscribe := recorder.Subscribe(bus)
	defer unsubscribe()
	if addr := cfg.Metrics.ListenAddress; addr != "" {
		go func() {
			if err := recorder.Serve(ctx, addr); err != nil {
				log.Printf("Metrics server failed: %v", err)
			}
		}()
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout.Std(), bus)

	if flag.NArg() > 0 {
		return cli.New(client, os.Stdout, os.Stderr, cfg.UISettings.DateLayout).Run(ctx, flag.Args())
	}

	// Run the UI
	log.Printf("Starting UI...")
	p := tea.NewProgram(ui.NewModel(ctx, cfg, client, bus), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")
	return 0
}

// setupLogging sends the standard logger to path. It returns nil and
// discards log output when the file cannot be opened.
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

// subscribeLogging records failures and writes in the log file
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventMutationApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MutationAppliedEvent); ok {
			log.Printf("Applied %s to %q", event.Kind, event.Name)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); err == nil {
		cfg, err := configSvc.Load()
		if err == nil {
			return cfg
		}
		fmt.Fprintf(os.Stderr, "Could not read %s, using defaults: %v\n", configSvc.Path(), err)
		return config.DefaultConfig()
	}

	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
