package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/rshade/fleettco/internal/engine"
	"github.com/rshade/fleettco/internal/greenops"
	"github.com/rshade/fleettco/internal/locale"
)

const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
)

// CalculationReport is the structured form of one calculation, emitted by --output json
// and ndjson.
type CalculationReport struct {
	Params engine.Params `json:"params"`
	Result engine.Result `json:"result"`
	CO2    CO2Report     `json:"co2"`
}

// CO2Report restates the CO2 avoided in the configured unit.
type CO2Report struct {
	Value         float64                       `json:"value"`
	Unit          string                        `json:"unit"`
	Formatted     string                        `json:"formatted"`
	Equivalencies []greenops.EquivalencyResult `json:"equivalencies,omitempty"`
}

// NewCalculationReport assembles the report for p and r with CO2 expressed in unit.
func NewCalculationReport(p engine.Params, r engine.Result, unit string) (CalculationReport, error) {
	value, err := greenops.ConvertFromKg(math.Max(r.CO2SavingsKg, 0), unit)
	if err != nil {
		return CalculationReport{}, fmt.Errorf("converting CO2 to %q: %w", unit, err)
	}

	eq, err := greenops.Calculate(greenops.CarbonInput{Value: r.CO2SavingsKg, Unit: "kg"}, r.TreesSaved)
	if err != nil {
		return CalculationReport{}, fmt.Errorf("computing CO2 equivalencies: %w", err)
	}

	return CalculationReport{
		Params: p,
		Result: r,
		CO2: CO2Report{
			Value:         value,
			Unit:          greenops.UnitSymbol(unit),
			Formatted:     eq.FormattedMass,
			Equivalencies: eq.Results,
		},
	}, nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// writeNDJSON writes each record as one compact JSON line.
func writeNDJSON[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return fmt.Errorf("encoding NDJSON record %d: %w", i, err)
		}
	}
	return nil
}

// renderPlainReport writes the report as unstyled aligned text.
func renderPlainReport(w io.Writer, report CalculationReport) error {
	p, r := report.Params, report.Result
	name := r.FuelType.DisplayName()

	fmt.Fprintf(w, "%s vs Electric\n", name)
	fmt.Fprintf(w, "%d vehicle(s), %s km/month, %d year(s), %s km total\n\n",
		p.FleetSize,
		locale.FormatDecimal(p.MonthlyMileage, 0),
		p.UsageYears,
		locale.FormatDecimal(r.TotalFleetDistanceKm, 0))

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "COST\t%s\tELECTRIC\tSAVINGS\t\n", name)
	costRows := []struct {
		label      string
		combustion float64
		electric   float64
	}{
		{"Acquisition", r.Combustion.Acquisition, r.Electric.Acquisition},
		{"Energy", r.Combustion.Energy, r.Electric.Energy},
		{"Maintenance", r.Combustion.Maintenance, r.Electric.Maintenance},
		{"Total", r.CombustionTotalCost, r.ElectricTotalCost},
	}
	for _, row := range costRows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			row.label,
			locale.FormatCurrency(row.combustion),
			locale.FormatCurrency(row.electric),
			locale.FormatCurrency(row.combustion-row.electric))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "ENVIRONMENT")
	fmt.Fprintf(w, "CO2 avoided: %s %s (%s)\n",
		locale.FormatDecimal(report.CO2.Value, 2), report.CO2.Unit, report.CO2.Formatted)
	fmt.Fprintf(w, "Trees: %s absorbing CO2 for %d year(s)\n",
		locale.FormatNumber(int64(math.Round(r.TreesSaved))), p.UsageYears)
	for _, eq := range report.CO2.Equivalencies {
		if eq.Type == greenops.EquivalencyHorizonTrees {
			continue
		}
		fmt.Fprintf(w, "  ~ %s %s\n", eq.FormattedValue, eq.Label)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SUMMARY")
	tw = tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "PERIOD\tDISTANCE\t%s\tELECTRIC\tSAVINGS\t\n", name)
	for _, row := range r.SummaryTableData {
		fmt.Fprintf(tw, "%s\t%s km\t%s\t%s\t%s\t\n",
			row.Period,
			locale.FormatDecimal(row.DistanceKm, 0),
			locale.FormatCurrency(row.CombustionCost),
			locale.FormatCurrency(row.ElectricCost),
			locale.FormatCurrency(row.Savings()))
	}
	return tw.Flush()
}

// renderPlainSweep writes a horizon sweep as aligned text followed by the break-even line.
func renderPlainSweep(w io.Writer, fuel engine.FuelType, points []engine.HorizonPoint) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "YEARS\t%s\tELECTRIC\tSAVINGS\tCO2 AVOIDED\t\n", fuel.DisplayName())
	for _, pt := range points {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			pt.Years,
			locale.FormatCurrency(pt.CombustionTotalCost),
			locale.FormatCurrency(pt.ElectricTotalCost),
			locale.FormatCurrency(pt.TotalSavings),
			greenops.FormatMass(pt.CO2SavingsKg))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, breakEvenText(points))
	return nil
}

func breakEvenText(points []engine.HorizonPoint) string {
	years, ok := engine.BreakEven(points)
	if !ok {
		return fmt.Sprintf("No break-even within %d year(s).", len(points))
	}
	return fmt.Sprintf("Break-even at %d year(s).", years)
}

// renderPlainProfiles writes the reference table as aligned text.
func renderPlainProfiles(w io.Writer, profiles []engine.VehicleProfile) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tEFFICIENCY\tMAINTENANCE/KM\tACQUISITION\tCO2 KG/L\t")
	for _, p := range profiles {
		co2 := "-"
		if p.IsCombustion() {
			co2 = locale.FormatDecimal(p.CO2KgPerLitre, 2)
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\t\n",
			p.DisplayName,
			locale.FormatDecimal(p.Efficiency, 1),
			p.EfficiencyUnit(),
			locale.FormatCurrency(p.MaintenancePerKm),
			locale.FormatCurrency(p.AcquisitionCost),
			co2)
	}
	return tw.Flush()
}
