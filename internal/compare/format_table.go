package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mortgo/internal/output"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing loan scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("MORTGAGE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Monthly",
		numWidth, "Payoff",
		numWidth, "Interest",
		numWidth, "Total Cost"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Monthly Payment:  %s%s\n",
				tf.deltaSymbol(alt.MonthlyPaymentDiff),
				output.FormatCurrency(alt.MonthlyPaymentDiff.Abs())))

			if alt.PayoffMonthsDiff != 0 {
				sign := "+"
				if alt.PayoffMonthsDiff < 0 {
					sign = ""
				}
				sb.WriteString(fmt.Sprintf("  Payoff:           %s%d months\n", sign, alt.PayoffMonthsDiff))
			}

			sb.WriteString(fmt.Sprintf("  Total Interest:   %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.InterestDiffFromBase),
				tf.formatDecimal(alt.InterestDiffFromBase.Abs()),
				alt.InterestPctFromBase.StringFixed(1)))

			if !alt.TotalCostDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Total Cost:       %s$%s\n",
					tf.deltaSymbol(alt.TotalCostDiffFromBase),
					tf.formatDecimal(alt.TotalCostDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCurrency(result.MonthlyPayment),
		numWidth, formatMonths(result.PayoffMonths),
		numWidth, "$"+tf.formatDecimal(result.TotalInterest),
		numWidth, "$"+tf.formatDecimal(result.TotalCost))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign prefix for a delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of interest deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		interestChange := "="
		if alt.InterestDiffFromBase.IsPositive() {
			interestChange = fmt.Sprintf("+$%s", tf.formatDecimal(alt.InterestDiffFromBase))
		} else if alt.InterestDiffFromBase.IsNegative() {
			interestChange = fmt.Sprintf("-$%s", tf.formatDecimal(alt.InterestDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s interest", alt.ScenarioName, interestChange))
	}

	return sb.String()
}
