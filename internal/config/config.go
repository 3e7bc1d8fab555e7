package config

// Configuration loading and validation for cbusdefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tonylturner/cbusdefs/cbus"
	"github.com/tonylturner/cbusdefs/internal/errors"
)

// Environment overrides, applied after the config file.
const (
	EnvLogLevel     = "CBUSDEFS_LOG_LEVEL"
	EnvLogFile      = "CBUSDEFS_LOG_FILE"
	EnvManufacturer = "CBUSDEFS_MANUFACTURER"
	EnvNoColor      = "CBUSDEFS_NO_COLOR"
)

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// DefaultsConfig holds hints used when a command is not given them.
type DefaultsConfig struct {
	// Manufacturer selects the module-type namespace, by name or code.
	Manufacturer string `yaml:"manufacturer" toml:"manufacturer"`
	// ProcessorManufacturer is used by "processor" when only a cpu id is given.
	ProcessorManufacturer string `yaml:"processor_manufacturer" toml:"processor_manufacturer"`
}

// CatalogConfig locates the definition catalog.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" toml:"path,omitempty"`
	// Strict turns catalog warnings into failures.
	Strict bool `yaml:"strict" toml:"strict"`
}

// CaptureConfig controls capture summaries.
type CaptureConfig struct {
	// Top limits the opcode table; 0 shows every opcode.
	Top int `yaml:"top" toml:"top"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	NoColor bool `yaml:"no_color" toml:"no_color"`
}

// Config is the cbusdefs configuration file.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults" toml:"defaults"`
	Catalog  CatalogConfig  `yaml:"catalog" toml:"catalog"`
	Capture  CaptureConfig  `yaml:"capture" toml:"capture"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "info"},
		Defaults: DefaultsConfig{Manufacturer: "MERG", ProcessorManufacturer: "Microchip"},
		Capture:  CaptureConfig{Top: 20},
	}
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load reads a YAML or TOML config file over the defaults, applies
// environment overrides and validates the result. An empty path yields the
// defaults with overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapConfigError(fmt.Errorf("config file not found: %s", path), path)
			}
			return nil, errors.WrapConfigError(fmt.Errorf("read config file: %w", err), path)
		}
		if err := Decode(path, data, cfg); err != nil {
			return nil, errors.WrapConfigError(err, path)
		}
	}

	ApplyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Decode parses data into cfg using the encoding implied by path.
func Decode(path string, data []byte, cfg *Config) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	}
	return nil
}

// Encode renders cfg in format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(Default(), format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg from the environment.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvManufacturer)); v != "" {
		cfg.Defaults.Manufacturer = v
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvNoColor))) {
	case "1", "true", "yes", "on":
		cfg.Output.NoColor = true
	case "0", "false", "no", "off":
		cfg.Output.NoColor = false
	}
}

var logLevels = map[string]bool{
	"silent": true, "quiet": true, "off": true,
	"error": true, "info": true, "verbose": true, "debug": true, "trace": true,
}

// Validate checks cfg for values the CLI cannot use.
func Validate(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if !logLevels[strings.ToLower(strings.TrimSpace(cfg.Logging.Level))] {
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}
	if _, err := cfg.Manufacturer(); err != nil {
		return fmt.Errorf("defaults.manufacturer: %w", err)
	}
	if _, err := cfg.ProcessorManufacturer(); err != nil {
		return fmt.Errorf("defaults.processor_manufacturer: %w", err)
	}
	if cfg.Capture.Top < 0 {
		return fmt.Errorf("capture.top must be >= 0")
	}
	return nil
}

// Manufacturer resolves the default manufacturer. Unregistered numeric ids
// are accepted; they decode module types to the generic arm.
func (c *Config) Manufacturer() (cbus.Manufacturer, error) {
	raw := strings.TrimSpace(c.Defaults.Manufacturer)
	if raw == "" {
		return cbus.ManufacturerMERG, nil
	}
	if v, err := cbus.ParseByte(raw); err == nil {
		return cbus.ManufacturerFromCodeUnchecked(v), nil
	}
	e, err := cbus.Parse(cbus.SpaceManufacturer, raw)
	if err != nil {
		return 0, err
	}
	return cbus.ManufacturerFromCodeUnchecked(e.Code), nil
}

// ProcessorManufacturer resolves the default CPU manufacturer.
func (c *Config) ProcessorManufacturer() (cbus.ProcessorManufacturer, error) {
	raw := strings.TrimSpace(c.Defaults.ProcessorManufacturer)
	if raw == "" {
		return cbus.ProcessorMicrochip, nil
	}
	if v, err := cbus.ParseByte(raw); err == nil {
		return cbus.ProcessorManufacturerFromCodeUnchecked(v), nil
	}
	e, err := cbus.Parse(cbus.SpaceProcessorManufacturer, raw)
	if err != nil {
		return 0, err
	}
	return cbus.ProcessorManufacturerFromCodeUnchecked(e.Code), nil
}
