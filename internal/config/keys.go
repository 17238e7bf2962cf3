package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/locale"
)

// field binds a dotted key to a Config value.
type field struct {
	get func(c *Config) string
	set func(c *Config, value string) error
}

func floatField(ptr func(c *Config) *float64) field {
	return field{
		get: func(c *Config) string { return strconv.FormatFloat(*ptr(c), 'f', -1, 64) },
		set: func(c *Config, value string) error {
			v, err := locale.ParseNumber(value)
			if err != nil {
				return err
			}
			*ptr(c) = v
			return nil
		},
	}
}

func intField(ptr func(c *Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Config, value string) error {
			v, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || v < 0 {
				return fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidConfig, value)
			}
			*ptr(c) = v
			return nil
		},
	}
}

func stringField(ptr func(c *Config) *string, normalize func(string) (string, error)) field {
	return field{
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, value string) error {
			v, err := normalize(strings.TrimSpace(value))
			if err != nil {
				return err
			}
			*ptr(c) = v
			return nil
		},
	}
}

func asIs(s string) (string, error) { return s, nil }

func lower(s string) (string, error) { return strings.ToLower(s), nil }

func fuelTypeName(s string) (string, error) {
	f, err := engine.ParseFuelType(s)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var fields = map[string]field{
	"version": stringField(func(c *Config) *string { return &c.Version }, func(s string) (string, error) {
		return s, checkVersion(s)
	}),
	"defaults.mileage":        floatField(func(c *Config) *float64 { return &c.Defaults.Mileage }),
	"defaults.years":          intField(func(c *Config) *int { return &c.Defaults.Years }),
	"defaults.fleet":          intField(func(c *Config) *int { return &c.Defaults.Fleet }),
	"defaults.fuel_type":      stringField(func(c *Config) *string { return &c.Defaults.FuelType }, fuelTypeName),
	"defaults.diesel_price":   floatField(func(c *Config) *float64 { return &c.Defaults.DieselPrice }),
	"defaults.gasoline_price": floatField(func(c *Config) *float64 { return &c.Defaults.GasolinePrice }),
	"defaults.energy_price":   floatField(func(c *Config) *float64 { return &c.Defaults.EnergyPrice }),
	"output.default_format":   stringField(func(c *Config) *string { return &c.Output.DefaultFormat }, lower),
	"output.co2_unit":         stringField(func(c *Config) *string { return &c.Output.CO2Unit }, asIs),
	"logging.level":           stringField(func(c *Config) *string { return &c.Logging.Level }, lower),
	"logging.format":          stringField(func(c *Config) *string { return &c.Logging.Format }, lower),
	"logging.file":            stringField(func(c *Config) *string { return &c.Logging.File }, asIs),
}

// Keys returns every dotted key understood by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value at a dotted key such as "defaults.mileage".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns value to a dotted key. Numbers accept both "6.18" and the pt-BR "6,18".
// The whole configuration is validated afterwards and the change is rolled back if it
// leaves the configuration invalid.
func (c *Config) Set(key, value string) error {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	previous := *c
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := c.Validate(); err != nil {
		*c = previous
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
