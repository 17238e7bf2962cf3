// Package config loads, validates and persists the fleettco configuration file.
//
// The file lives at $FLEETTCO_HOME/config.yaml (default ~/.fleettco/config.yaml). It seeds
// the calculator's default parameters, output preferences and logging. A missing file is
// not an error: built-in defaults apply. Selected values can be overridden through
// FLEETTCO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/greenops"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the semver range of config schemas this build understands.
const supportedVersions = ">= 1.0.0, < 2.0.0"

const configFileName = "config.yaml"

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Environment variables that override file values.
const (
	EnvHome         = "FLEETTCO_HOME"
	EnvOutputFormat = "FLEETTCO_OUTPUT_FORMAT"
	EnvLogLevel     = "FLEETTCO_LOG_LEVEL"
	EnvLogFormat    = "FLEETTCO_LOG_FORMAT"
	EnvLogFile      = "FLEETTCO_LOG_FILE"
)

// Configuration errors.
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnsupportedVersion = errors.New("unsupported configuration version")
	ErrUnknownKey         = errors.New("unknown configuration key")
)

// Config is the on-disk configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
}

// DefaultsConfig seeds the calculator parameters. Each fuel type keeps its own price so
// that switching fuel type picks up the matching default.
type DefaultsConfig struct {
	Mileage       float64 `yaml:"mileage"`
	Years         int     `yaml:"years"`
	Fleet         int     `yaml:"fleet"`
	FuelType      string  `yaml:"fuel_type"`
	DieselPrice   float64 `yaml:"diesel_price"`
	GasolinePrice float64 `yaml:"gasoline_price"`
	EnergyPrice   float64 `yaml:"energy_price"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	CO2Unit       string `yaml:"co2_unit"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := engine.DefaultParams()
	return &Config{
		Version: CurrentVersion,
		Defaults: DefaultsConfig{
			Mileage:       p.MonthlyMileage,
			Years:         p.UsageYears,
			Fleet:         p.FleetSize,
			FuelType:      p.FuelType.String(),
			DieselPrice:   engine.DefaultDieselCost,
			GasolinePrice: engine.DefaultGasolineCost,
			EnergyPrice:   p.EnergyCost,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			CO2Unit:       "kg",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the configuration at the default path. Any load failure is logged and the
// built-in defaults are used instead.
func New() *Config {
	path, err := DefaultConfigPath()
	if err != nil {
		log.Warn().Str("component", "config").Err(err).Msg("cannot resolve config path, using defaults")
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg
	}

	cfg, err := Load(path)
	if err != nil {
		log.Warn().
			Str("component", "config").
			Str("path", path).
			Err(err).
			Msg("failed to load config, using defaults")
		cfg = Default()
		cfg.configPath = path
		cfg.applyEnvOverrides()
	}
	return cfg
}

// Load reads the configuration at path over the built-in defaults and applies environment
// overrides. A missing file yields the defaults. The schema version is checked; the rest
// of the values are checked by Validate.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadFile is Load without environment overrides. Use it when the result is saved back so
// that FLEETTCO_* values are not persisted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = checkVersion(cfg.Version); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// checkVersion accepts an empty version as the current one.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, version, supportedVersions)
	}
	return nil
}

// ConfigPath returns the file this configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration to its path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if err := c.Defaults.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks the default calculator parameters.
func (d DefaultsConfig) Validate() error {
	if _, err := engine.ParseFuelType(d.FuelType); err != nil {
		return fmt.Errorf("%w: defaults.fuel_type: %w", ErrInvalidConfig, err)
	}

	numbers := []struct {
		key string
		v   float64
	}{
		{"defaults.mileage", d.Mileage},
		{"defaults.years", float64(d.Years)},
		{"defaults.fleet", float64(d.Fleet)},
		{"defaults.diesel_price", d.DieselPrice},
		{"defaults.gasoline_price", d.GasolinePrice},
		{"defaults.energy_price", d.EnergyPrice},
	}
	for _, n := range numbers {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) || n.v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, n.key, n.v)
		}
	}
	if d.Years > engine.MaxUsageYears {
		return fmt.Errorf("%w: defaults.years must be at most %d, got %d",
			ErrInvalidConfig, engine.MaxUsageYears, d.Years)
	}
	return nil
}

// Validate checks the output preferences.
func (o OutputConfig) Validate() error {
	if !IsValidOutputFormat(o.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q (want %s, %s or %s)",
			ErrInvalidConfig, o.DefaultFormat, FormatTable, FormatJSON, FormatNDJSON)
	}
	if !greenops.IsRecognizedUnit(o.CO2Unit) {
		return fmt.Errorf("%w: output.co2_unit %q", ErrInvalidConfig, o.CO2Unit)
	}
	return nil
}

// Validate checks the logging settings.
func (l LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil || l.Level == "" {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, l.Level)
	}
	switch l.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("%w: logging.format %q (want json or console)", ErrInvalidConfig, l.Format)
	}
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON:
		return true
	default:
		return false
	}
}

// Fuel returns the configured default fuel type, or diesel when it is not valid.
func (d DefaultsConfig) Fuel() engine.FuelType {
	f, err := engine.ParseFuelType(d.FuelType)
	if err != nil {
		return engine.FuelDiesel
	}
	return f
}

// FuelPrice returns the configured price for fuel.
func (d DefaultsConfig) FuelPrice(fuel engine.FuelType) float64 {
	if fuel.Class() == engine.ClassGasoline {
		return d.GasolinePrice
	}
	return d.DieselPrice
}

// Params builds calculator parameters for fuel from the configured defaults.
func (d DefaultsConfig) Params(fuel engine.FuelType) engine.Params {
	return engine.Params{
		MonthlyMileage: d.Mileage,
		UsageYears:     d.Years,
		FleetSize:      d.Fleet,
		FuelCost:       d.FuelPrice(fuel),
		EnergyCost:     d.EnergyPrice,
		FuelType:       fuel,
	}
}
