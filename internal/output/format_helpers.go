package output

import (
	"strconv"
	"strings"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats an amount with thousands separators and 2 decimals.
// Amounts carry no currency symbol.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, decPart, _ := strings.Cut(fixed, ".")
	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}
	if amount.Round(2).IsNegative() {
		return "-" + intPart + "." + decPart
	}
	return intPart + "." + decPart
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.0792) as a percentage (7.92%).
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// BreakEvenDescription describes where the verdict flips as the rent changes.
func BreakEvenDescription(be *domain.BreakEvenRent) string {
	if be == nil {
		return "none (the verdict holds at any monthly rent)"
	}
	if be.BuyingCheaperAbove {
		return "buying is cheaper when monthly rent exceeds " + FormatCurrency(be.MonthlyRent)
	}
	return "buying is cheaper when monthly rent is below " + FormatCurrency(be.MonthlyRent)
}

func breakEvenAmount(be *domain.BreakEvenRent) string {
	if be == nil {
		return ""
	}
	return be.MonthlyRent.StringFixed(2)
}
