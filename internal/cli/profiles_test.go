package cli_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/engine"
)

func TestProfiles_Table(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "profiles")
	require.NoError(t, err)

	for _, want := range []string{
		"Diesel", "3,5 km/l", "R$ 350.000,00", "2,68",
		"Gasoline", "7,0 km/l", "2,31",
		"Electric", "2,0 km/kWh", "R$ 650.000,00",
	} {
		assert.Contains(t, out, want)
	}
}

func TestProfiles_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "profiles", "--output", "json")
	require.NoError(t, err)

	var profiles []engine.VehicleProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profiles))
	assert.Equal(t, engine.Profiles(), profiles)
}
