package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMergeYAML_OverridesOnlyGivenKeys(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
defaults:
  fleet: 40
  energy_price: 0.95
output:
  co2_unit: t
`)

	require.NoError(t, config.MergeYAML(target, overlay))

	assert.Equal(t, 40, target.Defaults.Fleet)
	assert.InDelta(t, 0.95, target.Defaults.EnergyPrice, 1e-9)
	assert.Equal(t, "t", target.Output.CO2Unit)

	// Untouched keys keep their values.
	assert.InDelta(t, 3000.0, target.Defaults.Mileage, 1e-9)
	assert.Equal(t, "diesel", target.Defaults.FuelType)
	assert.Equal(t, config.FormatTable, target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	require.NoError(t, config.MergeYAML(target, writeOverlay(t, "# nothing here\n")))
	assert.Equal(t, config.Default().Defaults, target.Defaults)
}

func TestMergeYAML_IgnoresUnknownKeys(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, "plugins:\n  aws: {}\nlogging:\n  level: debug\n")

	require.NoError(t, config.MergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}

func TestMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.MergeYAML(nil, "unused"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.MergeYAML(config.Default(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml leaves target untouched", func(t *testing.T) {
		target := config.Default()
		err := config.MergeYAML(target, writeOverlay(t, "defaults: [broken\n"))
		require.Error(t, err)
		assert.Equal(t, config.Default().Defaults, target.Defaults)
	})

	t.Run("type mismatch leaves target untouched", func(t *testing.T) {
		target := config.Default()
		overlay := writeOverlay(t, "output:\n  co2_unit: t\ndefaults:\n  fleet: many\n")
		err := config.MergeYAML(target, overlay)
		require.Error(t, err)
		assert.Equal(t, 3, target.Defaults.Fleet)
		assert.Equal(t, "kg", target.Output.CO2Unit)
	})

	t.Run("unsupported version", func(t *testing.T) {
		err := config.MergeYAML(config.Default(), writeOverlay(t, "version: 2.0.0\n"))
		require.ErrorIs(t, err, config.ErrUnsupportedVersion)
	})
}
