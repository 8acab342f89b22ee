package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"countdown/internal/eventbus"
)

// Duration is a time.Duration written as "5s", "250ms" in config files
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config represents the application configuration
type Config struct {
	Version             int             `toml:"version" yaml:"version" json:"version"`
	APIBaseURL          string          `toml:"api_base_url" yaml:"api_base_url" json:"api_base_url"`
	RequestTimeout      Duration        `toml:"request_timeout" yaml:"request_timeout" json:"request_timeout"`
	StatsInterval       Duration        `toml:"stats_interval" yaml:"stats_interval" json:"stats_interval"`
	NotificationTimeout Duration        `toml:"notification_timeout" yaml:"notification_timeout" json:"notification_timeout"`
	LogFile             string          `toml:"log_file" yaml:"log_file" json:"log_file"`
	UISettings          UISettings      `toml:"ui" yaml:"ui" json:"ui"`
	Metrics             MetricsSettings `toml:"metrics" yaml:"metrics" json:"metrics"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DateLayout string `toml:"date_layout" yaml:"date_layout" json:"date_layout"` // Go reference layout
	ShowHelp   bool   `toml:"show_help" yaml:"show_help" json:"show_help"`
}

// MetricsSettings controls the optional Prometheus endpoint
type MetricsSettings struct {
	ListenAddress string `toml:"listen_address" yaml:"listen_address" json:"listen_address"` // empty disables it
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <user config dir>/countdown/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "countdown", "config.toml")
}

// NewConfigService creates a config service bound to path (DefaultPath when empty)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration from the service's file, falling back to
// defaults when the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, APIBaseURL: cfg.APIBaseURL})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. The format follows
// the extension: .toml (default), .yaml/.yml or .json. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch formatOf(path) {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "json":
		err = json.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case "yaml":
		data, err = yaml.Marshal(config)
	case "json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects settings the client cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.StatsInterval <= 0 {
		return fmt.Errorf("stats_interval must be positive")
	}
	if c.NotificationTimeout <= 0 {
		return fmt.Errorf("notification_timeout must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "toml"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             1,
		APIBaseURL:          "http://localhost:8000/api",
		RequestTimeout:      Duration(10 * time.Second),
		StatsInterval:       Duration(5 * time.Second),
		NotificationTimeout: Duration(3 * time.Second),
		LogFile:             "countdown.log",
		UISettings: UISettings{
			DateLayout: "Mon, January 2, 2006",
			ShowHelp:   true,
		},
	}
}
