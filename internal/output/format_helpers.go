package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals ($1,234.56).
func FormatCurrency(amount decimal.Decimal) string {
	p := message.NewPrinter(language.AmericanEnglish)
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return p.Sprintf("-$%.2f", rounded.Neg().InexactFloat64())
	}
	return p.Sprintf("$%.2f", rounded.InexactFloat64())
}

// FormatPercentage formats a percentage value with 1 decimal (12.3%).
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatMonths renders a month count as "N years M months".
func FormatMonths(months int) string {
	sign := ""
	if months < 0 {
		sign = "-"
		months = -months
	}
	years, rem := months/12, months%12
	switch {
	case years == 0:
		return sign + plural(rem, "month")
	case rem == 0:
		return sign + plural(years, "year")
	default:
		return sign + plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	p := message.NewPrinter(language.AmericanEnglish)
	if n == 1 {
		return p.Sprintf("%d %s", n, unit)
	}
	return p.Sprintf("%d %ss", n, unit)
}
