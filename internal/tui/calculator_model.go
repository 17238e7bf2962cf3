package tui

import (
	"context"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/locale"
	"github.com/rshade/fleettco/internal/logging"
)

// field is an editable calculator input, in focus order.
type field int

const (
	fieldFuelType field = iota
	fieldMileage
	fieldYears
	fieldFleet
	fieldFuelPrice
	fieldEnergyPrice
	numFields
)

// slider bounds a numeric field.
type slider struct {
	label string
	min   float64
	max   float64
	step  float64
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var sliders = map[field]slider{
	fieldMileage: {label: "Monthly mileage", min: 0, max: 15000, step: 10},
	fieldYears:   {label: "Usage period", min: 1, max: 10, step: 1},
	fieldFleet:   {label: "Fleet size", min: 1, max: 50, step: 1},
}

const (
	labelWidth      = 18
	sliderWidth     = 30
	priceInputWidth = 10
	priceCharLimit  = 12
	bigStep         = 10
	allowedPriceKey = "0123456789,."
)

// CalculatorOption configures a CalculatorModel.
type CalculatorOption func(*CalculatorModel)

// WithFuelPrices sets the price applied when the fuel type is switched. The default is
// engine.DefaultFuelCost.
func WithFuelPrices(priceFor func(engine.FuelType) float64) CalculatorOption {
	return func(m *CalculatorModel) {
		if priceFor != nil {
			m.priceFor = priceFor
		}
	}
}

// CalculatorModel is the Bubble Tea model for the interactive fleet calculator.
type CalculatorModel struct {
	ctx      context.Context
	session  Session
	defaults engine.Params
	priceFor func(engine.FuelType) float64

	focus       field
	fuelInput   textinput.Model
	energyInput textinput.Model

	keys KeyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewCalculatorModel creates a calculator seeded with defaults. Reset returns to them.
func NewCalculatorModel(ctx context.Context, defaults engine.Params, opts ...CalculatorOption) *CalculatorModel {
	m := &CalculatorModel{
		ctx:         ctx,
		session:     NewSession(defaults),
		defaults:    defaults,
		priceFor:    engine.DefaultFuelCost,
		fuelInput:   newPriceInput(defaults.FuelCost),
		energyInput: newPriceInput(defaults.EnergyCost),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       defaultWidth,
		height:      defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newPriceInput(v float64) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = priceCharLimit
	ti.Width = priceInputWidth
	ti.Placeholder = "0,00"
	ti.SetValue(formatPrice(v))
	return ti
}

func formatPrice(v float64) string {
	return locale.FormatDecimal(v, 2)
}

// Session returns the current calculator state.
func (m *CalculatorModel) Session() Session {
	return m.session
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Calculate):
		m.calculate()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.moveFocus(1)
	}

	if input := m.focusedInput(); input != nil {
		return m, m.updateInput(input, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.StepDown):
		m.adjust(-bigStep)
	case key.Matches(msg, m.keys.StepUp):
		m.adjust(bigStep)
	}
	return m, nil
}

func (m *CalculatorModel) calculate() {
	m.session = m.session.Calculate()

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Str("component", "tui").
		Str("operation", "calculate").
		Str("fuel_type", m.session.Params.FuelType.String()).
		Float64("total_savings", m.session.Result.TotalSavings).
		Msg("calculated fleet TCO")
}

func (m *CalculatorModel) reset() {
	m.session = m.session.Reset(m.defaults)
	m.fuelInput.SetValue(formatPrice(m.defaults.FuelCost))
	m.energyInput.SetValue(formatPrice(m.defaults.EnergyCost))
}

// moveFocus cycles the focus by delta fields, wrapping at both ends.
func (m *CalculatorModel) moveFocus(delta int) tea.Cmd {
	m.fuelInput.Blur()
	m.energyInput.Blur()

	m.focus = field((int(m.focus) + delta + int(numFields)) % int(numFields))
	if input := m.focusedInput(); input != nil {
		return input.Focus()
	}
	return nil
}

func (m *CalculatorModel) focusedInput() *textinput.Model {
	switch m.focus {
	case fieldFuelPrice:
		return &m.fuelInput
	case fieldEnergyPrice:
		return &m.energyInput
	default:
		return nil
	}
}

// updateInput forwards editing keys to input and re-parses the price. Runes other than
// digits and separators are dropped.
func (m *CalculatorModel) updateInput(input *textinput.Model, msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && strings.Trim(string(msg.Runes), allowedPriceKey) != "" {
		return nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	p := m.session.Params
	v := locale.ParseDecimalOr(input.Value(), 0)
	if m.focus == fieldFuelPrice {
		p.FuelCost = v
	} else {
		p.EnergyCost = v
	}
	m.session = m.session.WithParams(p)
	return cmd
}

// adjust moves the focused slider by steps, or toggles the fuel type.
func (m *CalculatorModel) adjust(steps int) {
	if m.focus == fieldFuelType {
		next := engine.FuelGasoline
		if m.session.Params.FuelType.Class() == engine.ClassGasoline {
			next = engine.FuelDiesel
		}
		price := m.priceFor(next)
		m.session = m.session.WithFuelType(next, price)
		m.fuelInput.SetValue(formatPrice(price))
		return
	}

	s, ok := sliders[m.focus]
	if !ok {
		return
	}
	v := m.sliderValue(m.focus) + float64(steps)*s.step
	v = math.Max(s.min, math.Min(s.max, v))
	m.setSliderValue(m.focus, v)
}

func (m *CalculatorModel) sliderValue(f field) float64 {
	p := m.session.Params
	switch f {
	case fieldMileage:
		return p.MonthlyMileage
	case fieldYears:
		return float64(p.UsageYears)
	case fieldFleet:
		return float64(p.FleetSize)
	default:
		return 0
	}
}

func (m *CalculatorModel) setSliderValue(f field, v float64) {
	p := m.session.Params
	switch f {
	case fieldMileage:
		p.MonthlyMileage = v
	case fieldYears:
		p.UsageYears = int(v)
	case fieldFleet:
		p.FleetSize = int(v)
	default:
		return
	}
	m.session = m.session.WithParams(p)
}

// View renders the current view.
func (m *CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Fleet TCO Calculator"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderParams())
	sb.WriteString("\n")

	if params, ok := m.session.ComputedParams(); ok {
		if m.session.IsStale() {
			sb.WriteString(SubtleStyle.Render("Parameters changed. Press enter to recalculate."))
			sb.WriteString("\n")
		}
		sb.WriteString(RenderResult(params, *m.session.Result, m.width))
	} else {
		sb.WriteString(SubtleStyle.Render("Press enter to calculate."))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *CalculatorModel) renderParams() string {
	p := m.session.Params
	rows := []struct {
		f     field
		label string
		value string
	}{
		{fieldFuelType, "Fuel type", renderFuelToggle(p.FuelType)},
		{fieldMileage, sliders[fieldMileage].label, m.renderSlider(fieldMileage, locale.FormatDecimal(p.MonthlyMileage, 0)+" km/month")},
		{fieldYears, sliders[fieldYears].label, m.renderSlider(fieldYears, pluralize(p.UsageYears, "year", "years"))},
		{fieldFleet, sliders[fieldFleet].label, m.renderSlider(fieldFleet, pluralize(p.FleetSize, "vehicle", "vehicles"))},
		{fieldFuelPrice, p.FuelType.DisplayName() + " price", m.fuelInput.View() + LabelStyle.Render(" R$/l")},
		{fieldEnergyPrice, "Energy price", m.energyInput.View() + LabelStyle.Render(" R$/kWh")},
	}

	var sb strings.Builder
	for _, r := range rows {
		cursor := "  "
		label := LabelStyle.Width(labelWidth).Render(r.label)
		if r.f == m.focus {
			cursor = FocusedStyle.Render(IconCursor + " ")
			label = FocusedStyle.Width(labelWidth).Render(r.label)
		}
		sb.WriteString(cursor + label + r.value + "\n")
	}
	return sb.String()
}

func renderFuelToggle(f engine.FuelType) string {
	options := []engine.FuelType{engine.FuelDiesel, engine.FuelGasoline}
	parts := make([]string, len(options))
	for i, o := range options {
		if o.Class() == f.Class() {
			parts[i] = ValueStyle.Render("[" + o.DisplayName() + "]")
		} else {
			parts[i] = LabelStyle.Render(" " + o.DisplayName() + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m *CalculatorModel) renderSlider(f field, text string) string {
	s := sliders[f]
	width := sliderWidth
	if m.width-labelWidth-len(text)-borderPadding*4 < width {
		width = max(m.width-labelWidth-len(text)-borderPadding*4, 0)
	}
	if width == 0 {
		return ValueStyle.Render(text)
	}

	ratio := 0.0
	if s.max > s.min {
		ratio = (m.sliderValue(f) - s.min) / (s.max - s.min)
	}
	ratio = math.Max(0, math.Min(1, ratio))
	knob := int(math.Round(ratio * float64(width-1)))

	bar := FocusedStyle.Render(strings.Repeat(IconSliderFill, knob)+IconSliderKnob) +
		LabelStyle.Render(strings.Repeat(IconSliderRest, width-1-knob))
	return bar + " " + ValueStyle.Render(text)
}
