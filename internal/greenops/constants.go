package greenops

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e of one unit of the activity:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPAKmDrivenFactor is EPAMilesDrivenFactor expressed per kilometre.
	EPAKmDrivenFactor = EPAMilesDrivenFactor / KmPerMile

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling over 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity.
	EPAHomeDayFactor = 18.3
)

// KmPerMile converts miles to kilometres.
const KmPerMile = 1.609344

// Unit Conversion Constants for normalizing carbon values to kilograms.
const (
	// GramsToKg converts grams to kilograms.
	GramsToKg = 0.001

	// KgToKg is the identity conversion for kilograms.
	KgToKg = 1.0

	// TonsToKg converts metric tons to kilograms.
	TonsToKg = 1000.0

	// PoundsToKg converts pounds to kilograms.
	PoundsToKg = 0.453592
)

// Display Threshold Constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below it the equivalencies become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// TonneDisplayThresholdKg is the mass from which FormatMass switches to tonnes.
	TonneDisplayThresholdKg = 1000.0

	// LargeNumberThreshold is the threshold for abbreviated "~X,X mi" display.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for "~X,X bi" display.
	BillionThreshold = 1_000_000_000
)
