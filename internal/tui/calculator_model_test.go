package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fleettco/internal/engine"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *CalculatorModel, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		require.Same(t, m, updated)
	}
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = msg
	}
	return out
}

func newTestModel() *CalculatorModel {
	return NewCalculatorModel(context.Background(), engine.DefaultParams())
}

func TestCalculatorModel_Initial(t *testing.T) {
	m := newTestModel()

	assert.Nil(t, m.Init())
	assert.Equal(t, fieldFuelType, m.focus)
	assert.Nil(t, m.Session().Result)
	assert.Equal(t, "6,18", m.fuelInput.Value())
	assert.Equal(t, "0,73", m.energyInput.Value())
	assert.Contains(t, m.View(), "Press enter to calculate.")
}

func TestCalculatorModel_CalculateKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, runes("c")} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel()
			press(t, m, msg)

			s := m.Session()
			require.NotNil(t, s.Result)
			assert.InDelta(t, -348968.57, s.Result.TotalSavings, 0.01)

			view := m.View()
			assert.Contains(t, view, "ENVIRONMENTAL IMPACT")
			assert.Contains(t, view, "248,1 t")
		})
	}
}

func TestCalculatorModel_ToggleFuelType(t *testing.T) {
	m := newTestModel()
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight})

	s := m.Session()
	assert.Equal(t, engine.FuelGasoline, s.Params.FuelType)
	assert.InDelta(t, 6.25, s.Params.FuelCost, 1e-9)
	assert.Equal(t, "6,25", m.fuelInput.Value())
	assert.Equal(t, engine.FuelDiesel, s.Result.FuelType, "result waits for the next calculate")
	assert.Contains(t, m.View(), "Parameters changed")

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, engine.FuelDiesel, m.Session().Params.FuelType)
	assert.InDelta(t, 6.18, m.Session().Params.FuelCost, 1e-9)
}

func TestCalculatorModel_ToggleUsesConfiguredPrices(t *testing.T) {
	prices := func(f engine.FuelType) float64 {
		if f == engine.FuelGasoline {
			return 5.79
		}
		return 6.01
	}
	m := NewCalculatorModel(context.Background(), engine.DefaultParams(), WithFuelPrices(prices))

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 5.79, m.Session().Params.FuelCost, 1e-9)
	assert.Equal(t, "5,79", m.fuelInput.Value())
}

func TestCalculatorModel_Sliders(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, fieldMileage, m.focus)
	assert.InDelta(t, 3010.0, m.Session().Params.MonthlyMileage, 1e-9)

	press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.InDelta(t, 2910.0, m.Session().Params.MonthlyMileage, 1e-9)

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyRight}, 20)...)
	assert.Equal(t, 10, m.Session().Params.UsageYears, "usage is capped at 10 years")
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyLeft}, 20)...)
	assert.Equal(t, 1, m.Session().Params.UsageYears, "usage floor is 1 year")

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyShiftRight}, 10)...)
	assert.Equal(t, 50, m.Session().Params.FleetSize, "fleet is capped at 50")
}

func TestCalculatorModel_MileageFloor(t *testing.T) {
	m := newTestModel()
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyShiftLeft}, 40)...)
	assert.Zero(t, m.Session().Params.MonthlyMileage)
}

func TestCalculatorModel_FocusWraps(t *testing.T) {
	m := newTestModel()
	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, fieldEnergyPrice, m.focus)
	assert.True(t, m.energyInput.Focused())

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, fieldFuelType, m.focus)
	assert.False(t, m.energyInput.Focused())
}

func TestCalculatorModel_PriceInput(t *testing.T) {
	m := newTestModel()
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyDown}, 4)...)
	require.Equal(t, fieldFuelPrice, m.focus)
	require.True(t, m.fuelInput.Focused())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyBackspace}, 4)...)
	assert.Empty(t, m.fuelInput.Value())
	assert.Zero(t, m.Session().Params.FuelCost, "empty input coerces to 0")

	press(t, m, runes("5"), runes(","), runes("4"), runes("9"))
	assert.Equal(t, "5,49", m.fuelInput.Value())
	assert.InDelta(t, 5.49, m.Session().Params.FuelCost, 1e-9)

	press(t, m, runes("x"))
	assert.Equal(t, "5,49", m.fuelInput.Value(), "letters are not accepted")

	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnd})
	press(t, m, repeat(tea.KeyMsg{Type: tea.KeyBackspace}, 4)...)
	press(t, m, runes("1.000,5"))
	assert.InDelta(t, 1000.5, m.Session().Params.EnergyCost, 1e-9)
}

func TestCalculatorModel_Reset(t *testing.T) {
	m := newTestModel()
	press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.NotNil(t, m.Session().Result)

	press(t, m, runes("r"))
	s := m.Session()
	assert.Nil(t, s.Result)
	assert.Equal(t, engine.DefaultParams(), s.Params)
	assert.Equal(t, "6,18", m.fuelInput.Value())
}

func TestCalculatorModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel()
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestCalculatorModel_HelpToggle(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.help.ShowAll)
	press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reset")
}

func TestCalculatorModel_WindowSize(t *testing.T) {
	m := newTestModel()
	press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 120+2)
	}
}
