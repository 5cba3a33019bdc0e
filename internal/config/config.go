// Package config loads the optional YAML configuration for vpnsheet.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/layout"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all vpnsheet configuration.
type Config struct {
	// Output is the workbook path used when none is given on the command line.
	Output string `yaml:"output"`

	Header  HeaderConfig  `yaml:"header"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// HeaderConfig configures header row styling.
type HeaderConfig struct {
	Bold      bool   `yaml:"bold"`
	FontColor string `yaml:"font_color"`
	FillColor string `yaml:"fill_color"`
}

// LayoutConfig configures column sizing and sheet view options.
type LayoutConfig struct {
	WidthPadding int  `yaml:"width_padding"`
	FreezeHeader bool `yaml:"freeze_header"`
	PrintArea    bool `yaml:"print_area"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultFile is the file name written by "vpnsheet config init".
const DefaultFile = "vpnsheet.yaml"

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	header := vpnsheet.DefaultHeaderStyle()
	return &Config{
		Output: vpnsheet.DefaultOutput,
		Header: HeaderConfig{
			Bold:      header.Bold,
			FontColor: header.FontColor,
			FillColor: header.FillColor,
		},
		Layout: LayoutConfig{
			WidthPadding: layout.DefaultPadding,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VPNSHEET_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("VPNSHEET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks colors, padding and log level.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("invalid config: output must not be empty")
	}
	if !hexColor.MatchString(c.Header.FontColor) {
		return fmt.Errorf("invalid config: header.font_color %q is not a hex RGB color", c.Header.FontColor)
	}
	if !hexColor.MatchString(c.Header.FillColor) {
		return fmt.Errorf("invalid config: header.fill_color %q is not a hex RGB color", c.Header.FillColor)
	}
	if c.Layout.WidthPadding < 0 {
		return fmt.Errorf("invalid config: layout.width_padding must be >= 0, got %d", c.Layout.WidthPadding)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("invalid config: logging.level: %w", err)
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Logging.Level)
}

// Options maps the configuration onto build options.
func (c *Config) Options() vpnsheet.Options {
	padding := c.Layout.WidthPadding
	return vpnsheet.Options{
		Header: vpnsheet.HeaderStyle{
			Bold:      c.Header.Bold,
			FontColor: c.Header.FontColor,
			FillColor: c.Header.FillColor,
		},
		WidthPadding: &padding,
		FreezeHeader: c.Layout.FreezeHeader,
		PrintArea:    c.Layout.PrintArea,
	}
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
