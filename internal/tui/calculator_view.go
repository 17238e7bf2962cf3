package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/greenops"
	"github.com/rshade/fleettco/internal/locale"
)

const (
	chartLabelWidth = 16
	chartValueWidth = 18
	maxChartWidth   = 60
)

// RenderResult renders a computed result as boxed sections: totals, environmental
// impact, fuel savings with a bar chart, cumulative maintenance per year and the
// per-period summary table. width is the available terminal width.
func RenderResult(p engine.Params, r engine.Result, width int) string {
	if width < minWidth {
		width = minWidth
	}
	inner := width - borderPadding*2

	sections := []string{
		renderOverview(p, r),
		renderEnvironment(p, r),
		renderFuelSavings(r, inner),
		renderMaintenance(r),
		renderSummaryTable(r),
	}

	boxed := make([]string, len(sections))
	for i, s := range sections {
		boxed[i] = BoxStyle.Width(width - borderPadding).Render(s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxed...)
}

func renderOverview(p engine.Params, r engine.Result) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%s vs Electric", r.FuelType.DisplayName())))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%s · %s km/month · %s · %s km total",
		pluralize(p.FleetSize, "vehicle", "vehicles"),
		locale.FormatDecimal(p.MonthlyMileage, 0),
		pluralize(p.UsageYears, "year", "years"),
		locale.FormatDecimal(r.TotalFleetDistanceKm, 0))))
	sb.WriteString("\n\n")

	writeLine(&sb, r.FuelType.DisplayName()+" fleet:", ValueStyle.Render(locale.FormatCurrency(r.CombustionTotalCost)))
	writeLine(&sb, "Electric fleet:", ValueStyle.Render(locale.FormatCurrency(r.ElectricTotalCost)))
	sb.WriteString(LabelStyle.Width(chartLabelWidth).Render("Total savings:"))
	sb.WriteString(RenderSavings(r.TotalSavings))
	return sb.String()
}

func renderEnvironment(p engine.Params, r engine.Result) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("ENVIRONMENTAL IMPACT"))
	sb.WriteString("\n")

	writeLine(&sb, IconLeaf+" CO2 avoided:", OKStyle.Render(greenops.FormatMass(r.CO2SavingsKg)))
	writeLine(&sb, IconTree+" Trees:", OKStyle.Render(locale.FormatNumber(int64(math.Round(r.TreesSaved)))+
		" trees absorbing CO2 for "+pluralize(p.UsageYears, "year", "years")))

	out, err := greenops.Calculate(greenops.CarbonInput{Value: r.CO2SavingsKg, Unit: "kg"}, r.TreesSaved)
	if err == nil && !out.IsEmpty {
		for _, eq := range out.Results[1:] {
			sb.WriteString(SubtleStyle.Render(fmt.Sprintf("≈ %s %s", eq.FormattedValue, eq.Label)))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderFuelSavings(r engine.Result, width int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("FUEL SAVINGS"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Width(chartLabelWidth).Render("Fuel vs energy:"))
	sb.WriteString(RenderSavings(r.FuelEnergySavings))
	sb.WriteString("\n\n")
	sb.WriteString(RenderBarChart(r.ChartData, width))
	return sb.String()
}

// RenderBarChart draws one horizontal bar per entry, scaled to the largest value.
func RenderBarChart(entries []engine.ChartEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = math.Max(e.Value, 0)
	}
	maxValue := floats.Max(values)

	barWidth := min(width-chartLabelWidth-chartValueWidth, maxChartWidth)
	barWidth = max(barWidth, 1)

	lines := make([]string, len(entries))
	for i, e := range entries {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(values[i] / maxValue * float64(barWidth)))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(strings.Repeat(IconBar, n))
		lines[i] = LabelStyle.Width(chartLabelWidth).Render(e.Label) +
			bar + strings.Repeat(" ", barWidth-n+1) +
			ValueStyle.Render(locale.FormatCompactCurrency(e.Value))
	}
	return strings.Join(lines, "\n")
}

func renderMaintenance(r engine.Result) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("CUMULATIVE MAINTENANCE"))
	sb.WriteString("\n")

	if len(r.MaintenanceChartData) == 0 {
		sb.WriteString(SubtleStyle.Render("No usage period."))
		return sb.String()
	}

	combustion := lipgloss.NewStyle().Foreground(ColorCombustion)
	electric := lipgloss.NewStyle().Foreground(ColorElectric)
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-8s %16s %16s", "Year", r.FuelType.DisplayName(), "Electric")))
	sb.WriteString("\n")
	for _, pt := range r.MaintenanceChartData {
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-8s ", strconv.Itoa(pt.Year))))
		sb.WriteString(combustion.Render(fmt.Sprintf("%16s", locale.FormatCurrency(pt.CombustionCost))))
		sb.WriteString(" ")
		sb.WriteString(electric.Render(fmt.Sprintf("%16s", locale.FormatCurrency(pt.ElectricCost))))
		sb.WriteString("\n")
	}
	sb.WriteString(LabelStyle.Width(chartLabelWidth).Render("Savings:"))
	sb.WriteString(RenderSavings(r.MaintenanceSavings))
	return sb.String()
}

func renderSummaryTable(r engine.Result) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("SUMMARY"))
	sb.WriteString("\n")

	header := fmt.Sprintf("%-9s %12s %16s %16s %16s",
		"Period", "Distance", r.FuelType.DisplayName(), "Electric", "Savings")
	sb.WriteString(TableHeaderStyle.Render(header))
	sb.WriteString("\n")

	for _, row := range r.SummaryTableData {
		sb.WriteString(fmt.Sprintf("%-9s %12s %16s %16s ",
			row.Period,
			locale.FormatDecimal(row.DistanceKm, 0)+" km",
			locale.FormatCurrency(row.CombustionCost),
			locale.FormatCurrency(row.ElectricCost)))
		sb.WriteString(savingsStyle(row.Savings()).Render(fmt.Sprintf("%16s", locale.FormatCurrency(row.Savings()))))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderSavings renders a savings amount with a direction arrow: green when the electric
// fleet is cheaper, red when it costs more.
func RenderSavings(v float64) string {
	rounded := math.Round(v*100) / 100 //nolint:mnd // Round to cents.
	icon := IconArrowRight
	switch {
	case rounded > 0:
		icon = IconArrowDown
	case rounded < 0:
		icon = IconArrowUp
	}
	return savingsStyle(rounded).Render(locale.FormatCurrency(v) + " " + icon)
}

func savingsStyle(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return OKStyle
	case v < 0:
		return CriticalStyle
	default:
		return ValueStyle
	}
}

func writeLine(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Width(chartLabelWidth).Render(label))
	sb.WriteString(value)
	sb.WriteString("\n")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return locale.FormatNumber(int64(n)) + " " + plural
}
