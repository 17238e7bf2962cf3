package greenops

import (
	"math"

	"github.com/rshade/fleettco/internal/locale"
)

// FormatMass formats a CO2 mass in kilograms for display.
//
// From TonneDisplayThresholdKg up the mass is shown in tonnes with one decimal
// ("1.234,5 t"); below it, as whole kilograms ("850 kg"). Negative or non-finite input
// is shown as "0 kg".
func FormatMass(kg float64) string {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < 0 {
		return "0 kg"
	}
	if kg >= TonneDisplayThresholdKg {
		return locale.FormatDecimal(kg/TonsToKg, 1) + " t"
	}
	return locale.FormatDecimal(kg, 0) + " kg"
}

// FormatLarge formats large counts with abbreviated notation.
//
// Values from BillionThreshold use "~X,X bi", values from LargeNumberThreshold use
// "~X,X mi", and smaller values are rounded to a grouped integer.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return "~" + locale.FormatDecimal(n/BillionThreshold, 1) + " bi"
	case n >= LargeNumberThreshold:
		return "~" + locale.FormatDecimal(n/LargeNumberThreshold, 1) + " mi"
	default:
		return locale.FormatNumber(int64(math.Round(n)))
	}
}
