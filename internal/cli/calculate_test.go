package cli_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/cli"
	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/locale"
)

func decodeReport(t *testing.T, out string) cli.CalculationReport {
	t.Helper()
	var report cli.CalculationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output: %s", out)
	return report
}

func TestCalculate_DefaultScenarioPlain(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--plain")
	require.NoError(t, err)

	for _, want := range []string{
		"Diesel vs Electric",
		"3 vehicle(s), 3.000 km/month, 3 year(s), 324.000 km total",
		"R$ 1.767.891,43",
		"R$ 2.116.860,00",
		"-R$ 348.968,57",
		"CO2 avoided: 248.091,43 kg (248,1 t)",
		"Trees: 3.759 absorbing CO2 for 3 year(s)",
		"SUMMARY",
		"5 years",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCalculate_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--output", "json", "--co2-unit", "t")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, engine.DefaultParams(), report.Params)
	assert.InDelta(t, 1767891.43, report.Result.CombustionTotalCost, 0.01)
	assert.InDelta(t, 2116860.00, report.Result.ElectricTotalCost, 0.01)
	assert.InDelta(t, -348968.57, report.Result.TotalSavings, 0.01)
	assert.Len(t, report.Result.SummaryTableData, 4)
	assert.Len(t, report.Result.MaintenanceChartData, 3)

	assert.Equal(t, "t", report.CO2.Unit)
	assert.InDelta(t, 248.09, report.CO2.Value, 0.01)
	assert.Equal(t, "248,1 t", report.CO2.Formatted)
	assert.NotEmpty(t, report.CO2.Equivalencies)
}

func TestCalculate_NDJSONIsOneLine(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.InDelta(t, -348968.57, decodeReport(t, lines[0]).Result.TotalSavings, 0.01)
}

func TestCalculate_FlagsOverrideDefaults(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--output", "json",
		"--fuel-type", "gasolina", "--fleet", "10", "--mileage", "4500", "--years", "5",
		"--fuel-price", "7,00", "--energy-price", "0.80")
	require.NoError(t, err)

	p := decodeReport(t, out).Params
	assert.Equal(t, engine.FuelGasoline, p.FuelType)
	assert.Equal(t, 10, p.FleetSize)
	assert.InDelta(t, 4500.0, p.MonthlyMileage, 1e-9)
	assert.Equal(t, 5, p.UsageYears)
	assert.InDelta(t, 7.0, p.FuelCost, 1e-9)
	assert.InDelta(t, 0.80, p.EnergyCost, 1e-9)
}

func TestCalculate_FuelTypeUsesConfiguredPrice(t *testing.T) {
	setupCLITest(t)

	_, err := executeRoot(t, "config", "set", "defaults.gasoline_price", "6,99")
	require.NoError(t, err)

	out, err := executeRoot(t, "calculate", "--output", "json", "--fuel-type", "gasoline")
	require.NoError(t, err)
	assert.InDelta(t, 6.99, decodeReport(t, out).Params.FuelCost, 1e-9)
}

func TestCalculate_ZeroHorizon(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--output", "json", "--years", "0")
	require.NoError(t, err)

	r := decodeReport(t, out).Result
	assert.Zero(t, r.TotalFleetDistanceKm)
	assert.Zero(t, r.TreesSaved)
	assert.Empty(t, r.MaintenanceChartData)
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown fuel type",
			args:    []string{"--fuel-type", "hydrogen"},
			wantErr: engine.ErrUnknownFuelType,
		},
		{
			name:    "unparseable price",
			args:    []string{"--fuel-price", "abc"},
			wantErr: locale.ErrInvalidNumber,
		},
		{
			name:    "negative price",
			args:    []string{"--energy-price=-1"},
			wantErr: locale.ErrInvalidNumber,
		},
		{
			name:    "negative years",
			args:    []string{"--years", "-1"},
			wantErr: engine.ErrNegativeValue,
		},
		{
			name:    "horizon too long",
			args:    []string{"--years", "1125899906842624"},
			wantErr: engine.ErrInvalidHorizon,
		},
		{
			name:    "negative mileage",
			args:    []string{"--mileage", "-10"},
			wantErr: engine.ErrNegativeValue,
		},
		{
			name:    "unsupported output format",
			args:    []string{"--output", "xml"},
			wantMsg: "unsupported output format: xml",
		},
		{
			name:    "unknown CO2 unit",
			args:    []string{"--co2-unit", "stone"},
			wantMsg: "converting CO2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, err := executeRoot(t, append([]string{"calculate"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCalculate_InteractiveFallsBackWithoutTerminal(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "calculate", "--interactive", "--output", "json")
	require.NoError(t, err)
	assert.InDelta(t, -348968.57, decodeReport(t, out).Result.TotalSavings, 0.01)
}

func TestTUI_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, err := executeRoot(t, "tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}
