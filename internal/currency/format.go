// Package currency renders monetary amounts using the per-currency display rules
// registered in the types package.
package currency

import (
	"strings"

	"github.com/invocli/invocli/internal/types"
	"github.com/shopspring/decimal"
)

// fallbackDecimals is used for codes that have no rule
const fallbackDecimals = 2

// Format renders amount according to the rule for code.
// Unknown or empty codes fall back to "<amount with 2 decimals> <code>".
func Format(amount decimal.Decimal, code string) string {
	rule, ok := types.GetCurrencyRule(code)
	if !ok {
		return amount.StringFixed(fallbackDecimals) + " " + code
	}

	fixed := amount.StringFixed(int32(rule.DecimalDigits))
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	if negative && !isZeroDigits(intPart+fracPart) {
		sb.WriteByte('-')
	}
	sb.WriteString(groupThousands(intPart, rule.ThousandsSeparator))
	if rule.DecimalDigits > 0 && fracPart != "" {
		sb.WriteString(rule.DecimalSeparator)
		sb.WriteString(fracPart)
	}
	number := sb.String()

	space := ""
	if rule.SpaceBetweenAmountAndSymbol {
		space = " "
	}
	if rule.SymbolOnLeft {
		return rule.Symbol + space + number
	}
	return number + space + rule.Symbol
}

// FormatFloat is Format for callers holding a float64
func FormatFloat(amount float64, code string) string {
	return Format(decimal.NewFromFloat(amount), code)
}

// IsSupported reports whether code has a formatting rule, ignoring case
func IsSupported(code string) bool {
	_, ok := types.GetCurrencyRule(code)
	return ok
}

// Codes returns the supported currency codes sorted alphabetically
func Codes() []string {
	return types.SupportedCurrencyCodes()
}

// groupThousands inserts sep between every group of three digits counted from the right
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

func isZeroDigits(s string) bool {
	return strings.Trim(s, "0") == ""
}
