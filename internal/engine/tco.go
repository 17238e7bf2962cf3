package engine

import "fmt"

const (
	monthsPerYear = 12
	daysPerMonth  = 30
	daysPerYear   = 365
)

//nolint:gochecknoglobals // Fixed horizon table; copied out by SummaryPeriods.
var summaryPeriods = []SummaryPeriod{
	{Name: "1 day", Days: 1},
	{Name: "1 month", Days: daysPerMonth},
	{Name: "1 year", Days: daysPerYear},
	{Name: "5 years", Days: 5 * daysPerYear},
}

// SummaryPeriods returns the fixed horizons of the summary table in display order.
func SummaryPeriods() []SummaryPeriod {
	out := make([]SummaryPeriod, len(summaryPeriods))
	copy(out, summaryPeriods)
	return out
}

// Compute calculates the TCO comparison for p.
//
// Compute never fails: every division is guarded so that a zero divisor yields zero, and
// for finite non-negative input no output is NaN or infinite. Validation of user input is
// the caller's job (see Params.Validate).
func Compute(p Params) Result {
	combustion := profiles[p.FuelType.Class()]
	electric := profiles[ClassElectric]

	fleetSize := float64(p.FleetSize)
	totalMonths := float64(p.UsageYears) * monthsPerYear
	fleetKm := p.MonthlyMileage * totalMonths * fleetSize

	comb := fleetCost(combustion, fleetKm, p.FuelCost, fleetSize)
	elec := fleetCost(electric, fleetKm, p.EnergyCost, fleetSize)

	co2Kg := safeDiv(fleetKm, combustion.Efficiency) * combustion.CO2KgPerLitre
	trees := safeDiv(co2Kg, CO2AbsorptionPerTreeKgPerYear*float64(p.UsageYears))

	return Result{
		FuelType:             FuelType(combustion.Class),
		TotalFleetDistanceKm: fleetKm,
		Combustion:           comb,
		Electric:             elec,
		CombustionTotalCost:  comb.Total,
		ElectricTotalCost:    elec.Total,
		TotalSavings:         comb.Total - elec.Total,
		FuelEnergySavings:    comb.Energy - elec.Energy,
		MaintenanceSavings:   comb.Maintenance - elec.Maintenance,
		CO2SavingsKg:         co2Kg,
		TreesSaved:           trees,
		ChartData: []ChartEntry{
			{
				Label: fmt.Sprintf("%s spend", combustion.DisplayName),
				Value: comb.Energy,
				Color: combustion.ChartColor,
			},
			{
				Label: fmt.Sprintf("%s spend", electric.DisplayName),
				Value: elec.Energy,
				Color: electric.ChartColor,
			},
		},
		MaintenanceChartData: maintenanceSeries(p, combustion, electric),
		SummaryTableData:     summaryTable(p, combustion, electric),
	}
}

// fleetCost returns the full-horizon cost of a fleet driving km in total, where price is
// the cost per unit of the profile's consumed resource.
func fleetCost(profile VehicleProfile, km, price, fleetSize float64) CostBreakdown {
	b := CostBreakdown{
		Acquisition: profile.AcquisitionCost * fleetSize,
		Energy:      safeDiv(km, profile.Efficiency) * price,
		Maintenance: km * profile.MaintenancePerKm,
	}
	b.Total = b.Acquisition + b.Energy + b.Maintenance
	return b
}

// operationalCost is the energy plus maintenance cost of driving km, without acquisition.
func operationalCost(profile VehicleProfile, km, price float64) float64 {
	return safeDiv(km, profile.Efficiency)*price + km*profile.MaintenancePerKm
}

func maintenanceSeries(p Params, combustion, electric VehicleProfile) []MaintenancePoint {
	// Horizons Validate rejects get no series rather than an unbounded allocation.
	if p.UsageYears <= 0 || p.UsageYears > MaxUsageYears {
		return []MaintenancePoint{}
	}

	points := make([]MaintenancePoint, 0, p.UsageYears)
	for year := 1; year <= p.UsageYears; year++ {
		km := p.MonthlyMileage * monthsPerYear * float64(year) * float64(p.FleetSize)
		points = append(points, MaintenancePoint{
			Year:           year,
			CombustionCost: km * combustion.MaintenancePerKm,
			ElectricCost:   km * electric.MaintenancePerKm,
		})
	}
	return points
}

func summaryTable(p Params, combustion, electric VehicleProfile) []SummaryRow {
	rows := make([]SummaryRow, 0, len(summaryPeriods))
	kmPerDay := p.MonthlyMileage / daysPerMonth
	for _, period := range summaryPeriods {
		km := kmPerDay * float64(period.Days) * float64(p.FleetSize)
		rows = append(rows, SummaryRow{
			Period:         period.Name,
			Days:           period.Days,
			DistanceKm:     km,
			CombustionCost: operationalCost(combustion, km, p.FuelCost),
			ElectricCost:   operationalCost(electric, km, p.EnergyCost),
		})
	}
	return rows
}

// safeDiv returns a/b, or 0 when b is zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
