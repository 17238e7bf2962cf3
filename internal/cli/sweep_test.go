package cli_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/cli"
	"github.com/rshade/fleettco/internal/engine"
)

func TestSweep_JSONBreakEven(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "sweep", "--max-years", "6", "--output", "json")
	require.NoError(t, err)

	var report cli.SweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Points, 6)
	for i, pt := range report.Points {
		assert.Equal(t, i+1, pt.Years)
	}
	assert.True(t, report.BreaksEven)
	assert.Equal(t, 5, report.BreakEvenYears)
	assert.InDelta(t, -348968.57, report.Points[2].TotalSavings, 0.01)
}

func TestSweep_PlainReportsBreakEven(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "sweep", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "YEARS")
	assert.Contains(t, out, "Break-even at 5 year(s).")
}

func TestSweep_NoBreakEven(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "sweep", "--max-years", "3", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "No break-even within 3 year(s).")
}

func TestSweep_NDJSONOneLinePerHorizon(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "sweep", "--max-years", "4", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var last engine.HorizonPoint
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, 4, last.Years)
}

func TestSweep_InvalidHorizon(t *testing.T) {
	for _, maxYears := range []string{"0", "51"} {
		t.Run(maxYears, func(t *testing.T) {
			setupCLITest(t)

			_, err := executeRoot(t, "sweep", "--max-years", maxYears)
			require.Error(t, err)
			assert.ErrorIs(t, err, engine.ErrInvalidHorizon)
		})
	}
}
