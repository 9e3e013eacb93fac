package engine

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"questgen/domain/bank"
)

// printer renders numbers with English grouping: 450000 -> 450,000
var printer = message.NewPrinter(language.English)

// Round rounds to the given number of decimal places
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	r := math.Round(v*pow) / pow
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}

// FormatNumber renders a bare number with thousands separators
func FormatNumber(v float64, decimals int) string {
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", Round(v, decimals))
}

// FormatValue renders a value with its unit: $50.00, -10.2°C, 188.2 MB
func FormatValue(u bank.Unit, v float64, decimals int) string {
	rounded := Round(v, decimals)
	num := FormatNumber(math.Abs(rounded), decimals)

	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	switch u.Position {
	case bank.UnitPrefix:
		return sign + u.Symbol + num
	case bank.UnitSuffix:
		sep := ""
		if u.Spaced {
			sep = " "
		}
		return sign + num + sep + u.Symbol
	}
	return sign + num
}

// FormatList renders values as a comma separated run: $45, $52, $48
func FormatList(u bank.Unit, values []float64, decimals int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(u, v, decimals)
	}
	return strings.Join(parts, ", ")
}

// FormatOperand renders one term of a written-out sum. Negative values are
// parenthesized, suffix units drop to bare numbers so the arithmetic reads
// cleanly, prefix units stay on every term.
func FormatOperand(u bank.Unit, v float64, decimals int) string {
	rounded := Round(v, decimals)
	if rounded < 0 {
		return "(" + FormatNumber(rounded, decimals) + ")"
	}
	if u.Position == bank.UnitPrefix {
		return FormatValue(u, rounded, decimals)
	}
	return FormatNumber(rounded, decimals)
}

// FormatSum renders the written-out addition: $45 + $52 + $48
func FormatSum(u bank.Unit, values []float64, decimals int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatOperand(u, v, decimals)
	}
	return strings.Join(parts, " + ")
}

// FormatTotal renders a sum result: prefix units keep their symbol, suffix
// units stay bare to match the operands.
func FormatTotal(u bank.Unit, v float64, decimals int) string {
	if u.Position == bank.UnitPrefix {
		return FormatValue(u, v, decimals)
	}
	rounded := Round(v, decimals)
	return FormatNumber(rounded, decimals)
}
