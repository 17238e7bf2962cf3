package engine

// CostBreakdown holds one fleet's cost components over the full horizon.
type CostBreakdown struct {
	Acquisition float64 `json:"acquisition"`
	Energy      float64 `json:"energy"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"`
}

// Operational returns the cost excluding acquisition.
func (b CostBreakdown) Operational() float64 {
	return b.Energy + b.Maintenance
}

// ChartEntry is one bar of the fuel/energy spend chart.
type ChartEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// MaintenancePoint is the cumulative maintenance cost of both fleets at a year mark.
type MaintenancePoint struct {
	Year           int     `json:"year"`
	CombustionCost float64 `json:"combustion_cost"`
	ElectricCost   float64 `json:"electric_cost"`
}

// SummaryPeriod is one fixed horizon of the operational summary table.
type SummaryPeriod struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// SummaryRow is the operational cost (energy plus maintenance) of both fleets over one
// SummaryPeriod.
type SummaryRow struct {
	Period         string  `json:"period"`
	Days           int     `json:"days"`
	DistanceKm     float64 `json:"distance_km"`
	CombustionCost float64 `json:"combustion_cost"`
	ElectricCost   float64 `json:"electric_cost"`
}

// Savings returns the combustion cost minus the electric cost for the row.
func (r SummaryRow) Savings() float64 {
	return r.CombustionCost - r.ElectricCost
}

// Result is the complete output of one Compute call. It is produced atomically from a
// single Params snapshot and has no mutation path.
type Result struct {
	FuelType             FuelType `json:"fuel_type"`
	TotalFleetDistanceKm float64  `json:"total_fleet_distance_km"`

	Combustion CostBreakdown `json:"combustion"`
	Electric   CostBreakdown `json:"electric"`

	CombustionTotalCost float64 `json:"combustion_total_cost"`
	ElectricTotalCost   float64 `json:"electric_total_cost"`

	// TotalSavings is negative when the electric fleet costs more over the horizon.
	TotalSavings       float64 `json:"total_savings"`
	FuelEnergySavings  float64 `json:"fuel_energy_savings"`
	MaintenanceSavings float64 `json:"maintenance_savings"`

	CO2SavingsKg float64 `json:"co2_savings_kg"`
	TreesSaved   float64 `json:"trees_saved"`

	ChartData            []ChartEntry       `json:"chart_data"`
	MaintenanceChartData []MaintenancePoint `json:"maintenance_chart_data"`
	SummaryTableData     []SummaryRow       `json:"summary_table_data"`
}
