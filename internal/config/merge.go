package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyVersion  = "version"
	keyDefaults = "defaults"
	keyOutput   = "output"
	keyLogging  = "logging"
)

// MergeYAML loads a YAML overlay file onto target. Within each known section the keys the
// overlay sets win and the keys it omits keep target's values. Unknown top-level keys are
// ignored. target is left untouched when the overlay fails to parse.
func MergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	merged := *target
	for key, node := range overlay {
		if err = mergeSection(&merged, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	*target = merged
	return nil
}

func mergeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		if err := checkVersion(v); err != nil {
			return err
		}
		target.Version = v
		return nil
	case keyDefaults:
		return node.Decode(&target.Defaults)
	case keyOutput:
		return node.Decode(&target.Output)
	case keyLogging:
		return node.Decode(&target.Logging)
	default:
		return nil
	}
}
