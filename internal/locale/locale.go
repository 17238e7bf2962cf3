// Package locale parses and formats numbers in the calculator's single locale, Brazilian
// Portuguese: "." groups thousands, "," separates decimals, and money is shown in BRL.
package locale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag is the locale every number is formatted in.
//
//nolint:gochecknoglobals // Fixed locale tag.
var Tag = language.BrazilianPortuguese

// printer formats integers with pt-BR grouping separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(Tag)

// Separators and symbols for pt-BR.
const (
	DecimalSeparator  = ","
	GroupingSeparator = "."
	CurrencySymbol    = "R$"
	CurrencyCode      = "BRL"
)

// ParseDecimal converts user-entered pt-BR text into a number.
//
// Every "." is treated as a grouping separator and dropped, and the first "," becomes the
// decimal point, so "1.234,5" parses as 1234.5 and "6,18" as 6.18. Surrounding spaces and
// a leading "R$" are ignored.
//
// ParseDecimal never panics. It returns (value, true) only for a finite, non-negative
// number; any other input, including the empty string, yields (0, false).
func ParseDecimal(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, CurrencySymbol))
	if s == "" {
		return 0, false
	}

	s = strings.ReplaceAll(s, GroupingSeparator, "")
	s = strings.Replace(s, DecimalSeparator, ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseDecimalOr is ParseDecimal with a fallback: malformed text is coerced to fallback
// instead of being reported. The calculator uses a fallback of 0.
func ParseDecimalOr(raw string, fallback float64) float64 {
	if v, ok := ParseDecimal(raw); ok {
		return v
	}
	return fallback
}

// ErrInvalidNumber is returned by ParseNumber for text that is not a finite, non-negative
// number.
var ErrInvalidNumber = errors.New("invalid number")

// ParseNumber reads a number typed on a command line or in a config value. Text containing
// a "," is read as pt-BR (see ParseDecimal); anything else is read with "." as the decimal
// point, so both "6,18" and "6.18" mean 6.18.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, DecimalSeparator) {
		if v, ok := ParseDecimal(s); ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}

// FormatNumber formats an integer with pt-BR grouping.
// Example: FormatNumber(1234567) returns "1.234.567".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatDecimal formats f with exactly precision decimals and pt-BR separators.
// Example: FormatDecimal(1234.567, 2) returns "1.234,57".
func FormatDecimal(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + formatted
	}

	// Negative values that round to zero are shown unsigned.
	if n == 0 && strings.Trim(fracPart, "0") == "" {
		sign = ""
	}

	out := sign + FormatNumber(n)
	if precision > 0 {
		out += DecimalSeparator + fracPart
	}
	return out
}

// FormatCurrency formats v as BRL with two decimals.
// Example: FormatCurrency(-348968.57) returns "-R$ 348.968,57".
func FormatCurrency(v float64) string {
	const cents = 2
	if v < 0 && math.Round(-v*100) > 0 {
		return "-" + CurrencySymbol + " " + FormatDecimal(-v, cents)
	}
	return CurrencySymbol + " " + FormatDecimal(math.Abs(v), cents)
}

// Compact currency thresholds.
const (
	thousand = 1_000
	million  = 1_000_000
	billion  = 1_000_000_000
)

// FormatCompactCurrency formats v for chart axes and tight columns, e.g. "R$ 1,8 mi",
// "R$ 572 mil" or "R$ 950".
func FormatCompactCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	var body string
	switch {
	case v >= billion:
		body = FormatDecimal(v/billion, 1) + " bi"
	case v >= million:
		body = FormatDecimal(v/million, 1) + " mi"
	case v >= thousand:
		body = FormatDecimal(v/thousand, 0) + " mil"
	default:
		body = FormatDecimal(v, 0)
	}
	return sign + CurrencySymbol + " " + body
}
